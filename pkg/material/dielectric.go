package material

import "github.com/prism-render/prism/pkg/core"

// Dielectric is transparent glass: it reflects and refracts according
// to Fresnel's equations, attenuating refracted rays leaving the
// medium by Beer-Lambert absorption.
type Dielectric struct {
	Reflect         ReflectanceParams
	BRDF            *int
	MirrorRF        core.Vec3
	AbsorptionCoeff core.Vec3
	RefractionIndex float64
	Roughness       float64
}

// NewDielectric creates a Dielectric material.
func NewDielectric(reflect ReflectanceParams, mirrorRF, absorptionCoeff core.Vec3, refractionIndex, roughness float64) *Dielectric {
	return &Dielectric{
		Reflect:         reflect,
		MirrorRF:        mirrorRF,
		AbsorptionCoeff: absorptionCoeff,
		RefractionIndex: refractionIndex,
		Roughness:       roughness,
	}
}

// Setup implements Material.
func (m *Dielectric) Setup() {
	if m.Reflect.Degamma {
		m.Reflect.ApplyDegamma()
	}
}

// Reflectance implements Material.
func (m *Dielectric) Reflectance() ReflectanceParams { return m.Reflect }

// BRDFID implements Material.
func (m *Dielectric) BRDFID() *int { return m.BRDF }

// FresnelIndices implements Material: dielectrics carry no absorption
// index (that concept applies to conductors); only RefractionIndex is
// meaningful here.
func (m *Dielectric) FresnelIndices() (float64, float64, bool) { return 0, m.RefractionIndex, true }

func (m *Dielectric) reflect(rayIn core.Ray, hit core.HitRecord, eps, fr float64, sampler core.Sampler) (InteractResult, bool) {
	if fr <= 1e-16 {
		return InteractResult{}, false
	}
	n := hit.Normal
	r := rayIn.Direction.Reflect(n)
	dir := glossyPerturb(r, m.Roughness, sampler)
	origin := hit.Point.Add(n.Multiply(eps))
	ray := core.NewRayAt(origin, dir, rayIn.Time)
	return InteractResult{Ray: ray, Attenuation: m.MirrorRF.Multiply(fr)}, true
}

func (m *Dielectric) refract(rayIn core.Ray, hit core.HitRecord, eps float64, sampler core.Sampler) (InteractResult, bool) {
	fr, nRatio, cosPhi, ok := dielectricFresnel(rayIn.Direction, hit.Normal, hit.FrontFace, m.RefractionIndex)
	if !ok {
		return InteractResult{}, false // total internal reflection
	}

	n := hit.Normal
	d := rayIn.Direction
	cosTheta := n.Dot(d.Negate())
	refracted := d.Add(n.Multiply(cosTheta)).Multiply(nRatio).Subtract(n.Multiply(cosPhi))
	dir := glossyPerturb(refracted, m.Roughness, sampler)

	origin := hit.Point.Subtract(n.Multiply(eps))
	ray := core.NewRayAt(origin, dir, rayIn.Time)

	attenuation := core.NewVec3(1, 1, 1).Multiply(1 - fr)
	if !hit.FrontFace {
		distance := hit.EntryPoint.Subtract(hit.Point).Length()
		attenuation = attenuation.MultiplyVec(beerLambert(m.AbsorptionCoeff, distance))
	}
	return InteractResult{Ray: ray, Attenuation: attenuation}, true
}

// Interact implements Material: reflect when the caller's reflect flag
// is set, otherwise refract.
func (m *Dielectric) Interact(rayIn core.Ray, hit core.HitRecord, eps float64, reflect bool, sampler core.Sampler) (InteractResult, bool) {
	if reflect {
		fr, _, _, ok := dielectricFresnel(rayIn.Direction, hit.Normal, hit.FrontFace, m.RefractionIndex)
		if !ok {
			fr = 1
		}
		return m.reflect(rayIn, hit, eps, fr, sampler)
	}
	return m.refract(rayIn, hit, eps, sampler)
}

// Scatter implements Material: samples reflection vs. refraction with
// probability equal to the Fresnel reflectance, falling back to
// reflection on total internal reflection.
func (m *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, eps float64, sampler core.Sampler) (InteractResult, bool) {
	fr, _, _, ok := dielectricFresnel(rayIn.Direction, hit.Normal, hit.FrontFace, m.RefractionIndex)
	if !ok {
		return m.reflect(rayIn, hit, eps, 1, sampler)
	}
	if sampler.Get1D() < fr {
		return m.reflect(rayIn, hit, eps, fr, sampler)
	}
	return m.refract(rayIn, hit, eps, sampler)
}
