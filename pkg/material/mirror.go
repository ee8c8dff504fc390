package material

import "github.com/prism-render/prism/pkg/core"

// Mirror always reflects; Roughness > 0 perturbs the reflected
// direction for a glossy, rather than perfect, finish.
type Mirror struct {
	Reflect   ReflectanceParams
	BRDF      *int
	MirrorRF  core.Vec3
	Roughness float64
}

// NewMirror creates a Mirror material.
func NewMirror(reflect ReflectanceParams, mirrorRF core.Vec3, roughness float64) *Mirror {
	return &Mirror{Reflect: reflect, MirrorRF: mirrorRF, Roughness: roughness}
}

// Setup implements Material.
func (m *Mirror) Setup() {
	if m.Reflect.Degamma {
		m.Reflect.ApplyDegamma()
	}
}

// Reflectance implements Material.
func (m *Mirror) Reflectance() ReflectanceParams { return m.Reflect }

// BRDFID implements Material.
func (m *Mirror) BRDFID() *int { return m.BRDF }

// FresnelIndices implements Material.
func (m *Mirror) FresnelIndices() (float64, float64, bool) { return 0, 0, false }

func (m *Mirror) reflect(rayIn core.Ray, hit core.HitRecord, eps float64, sampler core.Sampler) (InteractResult, bool) {
	n := hit.Normal
	r := rayIn.Direction.Reflect(n)
	dir := glossyPerturb(r, m.Roughness, sampler)
	origin := hit.Point.Add(n.Multiply(eps))
	ray := core.NewRayAt(origin, dir, rayIn.Time)
	return InteractResult{Ray: ray, Attenuation: m.MirrorRF}, true
}

// Interact implements Material: Mirror always reflects regardless of
// the reflect flag.
func (m *Mirror) Interact(rayIn core.Ray, hit core.HitRecord, eps float64, _ bool, sampler core.Sampler) (InteractResult, bool) {
	return m.reflect(rayIn, hit, eps, sampler)
}

// Scatter implements Material.
func (m *Mirror) Scatter(rayIn core.Ray, hit core.HitRecord, eps float64, sampler core.Sampler) (InteractResult, bool) {
	return m.reflect(rayIn, hit, eps, sampler)
}
