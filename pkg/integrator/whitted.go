package integrator

import (
	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/material"
	"github.com/prism-render/prism/pkg/scene"
)

// Whitted is the deterministic recursive estimator: diffuse surfaces
// (and dielectric front faces) are shaded directly against every
// light, while mirror, conductor, and dielectric surfaces additionally
// spawn one or two secondary rays through Material.Interact.
type Whitted struct{}

// NewWhitted creates a Whitted integrator.
func NewWhitted() *Whitted { return &Whitted{} }

// RayColor implements Integrator.
func (w *Whitted) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	return w.radiance(ray, sc, sampler, 0)
}

func (w *Whitted) radiance(ray core.Ray, sc *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	if depth >= sc.Limits.MaxRecursionDepth {
		return sc.BackgroundAt(ray)
	}

	hit, ok := sc.Hit(ray, core.PositiveInterval(sc.Limits.IntersectionEpsilon))
	if !ok {
		return sc.BackgroundAt(ray)
	}

	mat := sc.Material(hit)
	if mat == nil {
		return sc.Limits.Background
	}
	mat = resolveLeaf(mat, sampler)

	viewDir := ray.Direction.Negate()
	result := core.Vec3{}

	switch m := mat.(type) {
	case *material.Diffuse:
		result = result.Add(w.ambientAndDirect(sc, hit, viewDir, mat, sampler))

	case *material.Mirror, *material.Conductor:
		if spawned, ok := mat.Interact(ray, *hit, sc.Limits.IntersectionEpsilon, true, sampler); ok {
			incoming := w.radiance(spawned.Ray, sc, sampler, depth+1)
			result = result.Add(spawned.Attenuation.MultiplyVec(incoming))
		}

	case *material.Dielectric:
		if hit.FrontFace {
			result = result.Add(w.ambientAndDirect(sc, hit, viewDir, mat, sampler))
		}
		if reflected, ok := mat.Interact(ray, *hit, sc.Limits.IntersectionEpsilon, true, sampler); ok {
			incoming := w.radiance(reflected.Ray, sc, sampler, depth+1)
			result = result.Add(reflected.Attenuation.MultiplyVec(incoming))
		}
		if refracted, ok := mat.Interact(ray, *hit, sc.Limits.IntersectionEpsilon, false, sampler); ok {
			incoming := w.radiance(refracted.Ray, sc, sampler, depth+1)
			result = result.Add(refracted.Attenuation.MultiplyVec(incoming))
		}

	default:
		_ = m
		result = result.Add(w.ambientAndDirect(sc, hit, viewDir, mat, sampler))
	}

	return result
}

// ambientAndDirect evaluates the shading equation's k_a*ambient term
// plus the full sum over every light.
func (w *Whitted) ambientAndDirect(sc *scene.Scene, hit *core.HitRecord, viewDir core.Vec3, mat material.Material, sampler core.Sampler) core.Vec3 {
	ambient := mat.Reflectance().Ambient.MultiplyVec(sc.Limits.AmbientLight)
	return ambient.Add(directLightingSum(sc, hit, viewDir, mat, sampler))
}
