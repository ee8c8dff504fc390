package material

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
)

// Diffuse is a perfectly matte material. It never spawns a ray from
// Interact -- its surface is instead shaded directly against every
// light in the scene, evaluated through the BRDF layer.
type Diffuse struct {
	Reflect ReflectanceParams
	BRDF    *int
}

// NewDiffuse creates a Diffuse material.
func NewDiffuse(reflect ReflectanceParams) *Diffuse {
	return &Diffuse{Reflect: reflect}
}

// Setup implements Material.
func (d *Diffuse) Setup() {
	if d.Reflect.Degamma {
		d.Reflect.ApplyDegamma()
	}
}

// Reflectance implements Material.
func (d *Diffuse) Reflectance() ReflectanceParams { return d.Reflect }

// BRDFID implements Material.
func (d *Diffuse) BRDFID() *int { return d.BRDF }

// FresnelIndices implements Material.
func (d *Diffuse) FresnelIndices() (float64, float64, bool) { return 0, 0, false }

// Interact implements Material: diffuse surfaces are shaded directly
// against lights, so there is no deterministic secondary ray.
func (d *Diffuse) Interact(core.Ray, core.HitRecord, float64, bool, core.Sampler) (InteractResult, bool) {
	return InteractResult{}, false
}

// Scatter implements Material: cosine-weighted hemisphere sample about
// the shading normal, with Monte-Carlo weight kd/p * cosTheta = pi*kd.
func (d *Diffuse) Scatter(rayIn core.Ray, hit core.HitRecord, eps float64, sampler core.Sampler) (InteractResult, bool) {
	n := hit.Normal
	dir := core.RandomCosineDirection(n, sampler)
	origin := hit.Point.Add(n.Multiply(eps))
	ray := core.NewRayAt(origin, dir, rayIn.Time)

	cosTheta := dir.Dot(n)
	if cosTheta <= 0 {
		return InteractResult{}, false
	}
	pdf := cosTheta / math.Pi
	attenuation := d.Reflect.Diffuse.Multiply(1 / pdf).Multiply(cosTheta)

	return InteractResult{Ray: ray, Attenuation: attenuation}, true
}
