package material

import "github.com/prism-render/prism/pkg/core"

// Conductor is an opaque metal: it only reflects, weighted by the
// complex-index Fresnel reflectance; there is no transmitted ray.
type Conductor struct {
	Reflect         ReflectanceParams
	BRDF            *int
	MirrorRF        core.Vec3
	AbsorptionIndex float64
	RefractionIndex float64
	Roughness       float64
}

// NewConductor creates a Conductor material.
func NewConductor(reflect ReflectanceParams, mirrorRF core.Vec3, absorptionIndex, refractionIndex, roughness float64) *Conductor {
	return &Conductor{
		Reflect:         reflect,
		MirrorRF:        mirrorRF,
		AbsorptionIndex: absorptionIndex,
		RefractionIndex: refractionIndex,
		Roughness:       roughness,
	}
}

// Setup implements Material.
func (m *Conductor) Setup() {
	if m.Reflect.Degamma {
		m.Reflect.ApplyDegamma()
	}
}

// Reflectance implements Material.
func (m *Conductor) Reflectance() ReflectanceParams { return m.Reflect }

// BRDFID implements Material.
func (m *Conductor) BRDFID() *int { return m.BRDF }

// FresnelIndices implements Material.
func (m *Conductor) FresnelIndices() (float64, float64, bool) {
	return m.AbsorptionIndex, m.RefractionIndex, true
}

func (m *Conductor) reflect(rayIn core.Ray, hit core.HitRecord, eps float64, sampler core.Sampler) (InteractResult, bool) {
	fr := conductorFresnel(rayIn.Direction, hit.Normal, m.RefractionIndex, m.AbsorptionIndex)
	if fr <= 1e-6 {
		return InteractResult{}, false
	}
	n := hit.Normal
	r := rayIn.Direction.Reflect(n)
	dir := glossyPerturb(r, m.Roughness, sampler)
	origin := hit.Point.Add(n.Multiply(eps))
	ray := core.NewRayAt(origin, dir, rayIn.Time)
	return InteractResult{Ray: ray, Attenuation: m.MirrorRF.Multiply(fr)}, true
}

// Interact implements Material: reflects when reflect is true; a
// conductor never transmits (Fresnel transmittance is always zero).
func (m *Conductor) Interact(rayIn core.Ray, hit core.HitRecord, eps float64, reflect bool, sampler core.Sampler) (InteractResult, bool) {
	if !reflect {
		return InteractResult{}, false
	}
	return m.reflect(rayIn, hit, eps, sampler)
}

// Scatter implements Material.
func (m *Conductor) Scatter(rayIn core.Ray, hit core.HitRecord, eps float64, sampler core.Sampler) (InteractResult, bool) {
	return m.reflect(rayIn, hit, eps, sampler)
}
