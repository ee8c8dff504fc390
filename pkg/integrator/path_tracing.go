package integrator

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/scene"
)

// PathTracer is the stochastic Monte-Carlo estimator: every bounce
// scatters through Material.Scatter, combines the result with one
// next-event-estimation light sample, and terminates via Russian
// roulette once a minimum bounce count is reached.
type PathTracer struct {
	RussianRouletteMinBounces int
}

// NewPathTracer creates a PathTracer. minBounces is the number of
// bounces before Russian roulette termination may apply.
func NewPathTracer(minBounces int) *PathTracer {
	return &PathTracer{RussianRouletteMinBounces: minBounces}
}

// RayColor implements Integrator.
func (pt *PathTracer) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	return pt.radiance(ray, sc, sampler, 0, core.NewVec3(1, 1, 1))
}

func (pt *PathTracer) radiance(ray core.Ray, sc *scene.Scene, sampler core.Sampler, bounce int, throughput core.Vec3) core.Vec3 {
	if bounce >= sc.Limits.MaxRecursionDepth {
		return core.Vec3{}
	}

	terminate, compensation := pt.russianRoulette(bounce, throughput, sampler.Get1D())
	if terminate {
		return core.Vec3{}
	}

	hit, ok := sc.Hit(ray, core.PositiveInterval(sc.Limits.IntersectionEpsilon))
	if !ok {
		return sc.BackgroundAt(ray).Multiply(compensation)
	}

	emitted := core.Vec3{}
	if hit.IsEmissive {
		emitted = hit.EmittedRadiance
	}

	mat := sc.Material(hit)
	if mat == nil {
		return emitted.Multiply(compensation)
	}
	mat = resolveLeaf(mat, sampler)

	viewDir := ray.Direction.Negate()
	ambient := mat.Reflectance().Ambient.MultiplyVec(sc.Limits.AmbientLight)
	direct := sampleOneLightEstimate(sc, hit, viewDir, mat, sampler)

	scattered, didScatter := mat.Scatter(ray, *hit, sc.Limits.IntersectionEpsilon, sampler)
	indirect := core.Vec3{}
	if didScatter {
		newThroughput := throughput.MultiplyVec(scattered.Attenuation)
		incoming := pt.radiance(scattered.Ray, sc, sampler, bounce+1, newThroughput)
		indirect = scattered.Attenuation.MultiplyVec(incoming)
	}

	total := emitted.Add(ambient).Add(direct).Add(indirect)
	return total.Multiply(compensation)
}

// russianRoulette decides whether to terminate a path once bounce
// reaches RussianRouletteMinBounces, surviving with probability
// clamped to [0.5, 0.95] based on the current path throughput's
// luminance, with energy-conserving compensation on survival.
func (pt *PathTracer) russianRoulette(bounce int, throughput core.Vec3, sample float64) (terminate bool, compensation float64) {
	if bounce < pt.RussianRouletteMinBounces {
		return false, 1
	}
	survival := math.Min(0.95, math.Max(0.5, throughput.Luminance()))
	if sample > survival {
		return true, 0
	}
	return false, 1 / survival
}
