package core

import (
	"math"
	"math/rand"
)

// Sampler draws the random numbers consumed by jittered pixel
// sampling, area-light position sampling, and glossy perturbation
// perturbation. Each worker
// owns its own Sampler so no lock is needed around math/rand's global
// source.
type Sampler interface {
	Get1D() float64
	Get2D() (float64, float64)
}

// RandomSampler is a Sampler backed by a worker-local *rand.Rand.
type RandomSampler struct {
	rng *rand.Rand
}

// NewRandomSampler wraps an existing *rand.Rand as a Sampler. Callers
// construct one *rand.Rand per worker (e.g. seeded from a base seed
// plus the worker index) to keep streams independent and
// reproducible.
func NewRandomSampler(rng *rand.Rand) *RandomSampler {
	return &RandomSampler{rng: rng}
}

// Get1D returns a uniform sample in [0,1).
func (s *RandomSampler) Get1D() float64 { return s.rng.Float64() }

// Get2D returns two independent uniform samples in [0,1).
func (s *RandomSampler) Get2D() (float64, float64) {
	return s.rng.Float64(), s.rng.Float64()
}

// RandomInUnitDisk returns a uniformly distributed point in the unit
// disk, found by rejection sampling the enclosing square.
func RandomInUnitDisk(s Sampler) Vec2 {
	for {
		x, y := s.Get2D()
		p := Vec2{X: 2*x - 1, Y: 2*y - 1}
		if p.X*p.X+p.Y*p.Y < 1 {
			return p
		}
	}
}

// RandomCosineDirection returns a cosine-weighted random direction in
// the hemisphere around unit normal n, with p(w) = cos(theta)/pi
// for diffuse scatter.
func RandomCosineDirection(n Vec3, s Sampler) Vec3 {
	r1, r2 := s.Get2D()
	phi := 2 * math.Pi * r1
	cosTheta := math.Sqrt(math.Max(0, 1-r2))
	sinTheta := math.Sqrt(math.Max(0, r2))

	onb := NewONB(n)
	return onb.Local(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
}

// RandomInUnitSphere returns a uniformly distributed point inside the
// unit sphere, used for glossy reflection/refraction perturbation
// in glossy reflection and refraction.
func RandomInUnitSphere(s Sampler) Vec3 {
	for {
		x, y := s.Get2D()
		z := s.Get1D()
		p := Vec3{X: 2*x - 1, Y: 2*y - 1, Z: 2*z - 1}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
