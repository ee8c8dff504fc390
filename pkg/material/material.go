// Package material implements the renderer's closed set of surface
// materials -- Diffuse, Mirror, Dielectric, Conductor -- each exposing
// a deterministic Interact for the Whitted-style recursive integrator
// and a stochastic Scatter for a Monte-Carlo path-tracing variant.
package material

import "github.com/prism-render/prism/pkg/core"

// ReflectanceParams holds the reflectance tint and shininess shared by
// every material.
type ReflectanceParams struct {
	Ambient  core.Vec3
	Diffuse  core.Vec3
	Specular core.Vec3
	Exponent float64

	// Degamma, when set, tells Setup to raise Ambient/Diffuse/Specular
	// to the 2.2 power once and then clear the flag.
	Degamma bool
}

// ApplyDegamma raises the three reflectance tints to the 2.2 power and
// clears Degamma; a one-shot side effect run once during setup.
func (p *ReflectanceParams) ApplyDegamma() {
	p.Ambient = p.Ambient.Degamma(2.2)
	p.Diffuse = p.Diffuse.Degamma(2.2)
	p.Specular = p.Specular.Degamma(2.2)
	p.Degamma = false
}

// InteractResult is the outcome of a deterministic interaction: a
// spawned ray paired with the attenuation to apply to its contribution.
type InteractResult struct {
	Ray         core.Ray
	Attenuation core.Vec3
}

// Material is the common operation set of Diffuse, Mirror, Dielectric,
// and Conductor.
type Material interface {
	// Setup applies any one-shot preprocessing (currently just
	// degamma) and must be called once before Interact/Scatter.
	Setup()

	// Reflectance returns the material's common reflectance data, used
	// by the BRDF layer for direct lighting.
	Reflectance() ReflectanceParams

	// BRDFID names an explicit BRDF from the scene's BRDF table, or
	// nil to fall back to the default Blinn-Phong evaluator.
	BRDFID() *int

	// FresnelIndices returns (absorption, refraction) for materials
	// that carry them (Dielectric, Conductor), or false otherwise.
	FresnelIndices() (absorption, refraction float64, ok bool)

	// Interact deterministically spawns the next ray for the Whitted
	// integrator. reflect selects the reflection branch for materials
	// that can do both (Dielectric); it is ignored by Mirror (always
	// reflects) and Diffuse (never spawns a ray; its surface is shaded
	// directly against lights instead). Conductor reflects when it is
	// set and spawns no ray when it is not.
	Interact(rayIn core.Ray, hit core.HitRecord, eps float64, reflect bool, sampler core.Sampler) (InteractResult, bool)

	// Scatter stochastically samples one outgoing ray with its
	// Monte-Carlo weight (BRDF/pdf * cosTheta), for a path-tracing
	// integrator.
	Scatter(rayIn core.Ray, hit core.HitRecord, eps float64, sampler core.Sampler) (InteractResult, bool)
}

// glossyPerturb perturbs direction r by roughness on an ONB built
// around r, then renormalizes; used by every material's reflection and
// refraction branches when Roughness > 0.
func glossyPerturb(r core.Vec3, roughness float64, sampler core.Sampler) core.Vec3 {
	if roughness <= 0 {
		return r
	}
	onb := core.NewONB(r)
	psi1, psi2 := sampler.Get2D()
	jitter := onb.U.Multiply(psi1 - 0.5).Add(onb.V.Multiply(psi2 - 0.5)).Multiply(roughness)
	return r.Add(jitter).Normalize()
}
