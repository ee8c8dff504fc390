package material

import "github.com/prism-render/prism/pkg/core"

// Mix probabilistically chooses between two materials on every
// Interact/Scatter call, weighted by Ratio (0 = always Material1,
// 1 = always Material2).
type Mix struct {
	Material1 Material
	Material2 Material
	Ratio     float64
}

// NewMix creates a Mix material.
func NewMix(m1, m2 Material, ratio float64) *Mix {
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	return &Mix{Material1: m1, Material2: m2, Ratio: ratio}
}

func (m *Mix) choose(sampler core.Sampler) Material {
	if sampler.Get1D() < m.Ratio {
		return m.Material2
	}
	return m.Material1
}

// Resolve draws the Bernoulli choice and returns the selected
// component, recursing through nested Mix materials so callers that
// need to dispatch on a concrete material kind (the Whitted
// integrator's per-kind recursion) see a non-Mix leaf.
func (m *Mix) Resolve(sampler core.Sampler) Material {
	chosen := m.choose(sampler)
	if nested, ok := chosen.(*Mix); ok {
		return nested.Resolve(sampler)
	}
	return chosen
}

// Setup implements Material.
func (m *Mix) Setup() {
	m.Material1.Setup()
	m.Material2.Setup()
}

// Reflectance implements Material by blending both materials'
// reflectance linearly by Ratio.
func (m *Mix) Reflectance() ReflectanceParams {
	r1, r2 := m.Material1.Reflectance(), m.Material2.Reflectance()
	lerp := func(a, b core.Vec3) core.Vec3 {
		return a.Multiply(1 - m.Ratio).Add(b.Multiply(m.Ratio))
	}
	return ReflectanceParams{
		Ambient:  lerp(r1.Ambient, r2.Ambient),
		Diffuse:  lerp(r1.Diffuse, r2.Diffuse),
		Specular: lerp(r1.Specular, r2.Specular),
		Exponent: r1.Exponent*(1-m.Ratio) + r2.Exponent*m.Ratio,
	}
}

// BRDFID implements Material, deferring to Material1's BRDF.
func (m *Mix) BRDFID() *int { return m.Material1.BRDFID() }

// FresnelIndices implements Material, deferring to Material1.
func (m *Mix) FresnelIndices() (float64, float64, bool) { return m.Material1.FresnelIndices() }

// Interact implements Material by delegating to the chosen component.
func (m *Mix) Interact(rayIn core.Ray, hit core.HitRecord, eps float64, reflect bool, sampler core.Sampler) (InteractResult, bool) {
	return m.choose(sampler).Interact(rayIn, hit, eps, reflect, sampler)
}

// Scatter implements Material by delegating to the chosen component.
func (m *Mix) Scatter(rayIn core.Ray, hit core.HitRecord, eps float64, sampler core.Sampler) (InteractResult, bool) {
	return m.choose(sampler).Scatter(rayIn, hit, eps, sampler)
}
