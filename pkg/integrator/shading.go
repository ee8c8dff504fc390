package integrator

import (
	"github.com/prism-render/prism/pkg/brdf"
	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/material"
	"github.com/prism-render/prism/pkg/scene"
)

// resolveLeaf draws a Mix material's Bernoulli choice, recursing until
// it reaches a non-Mix material the per-kind recursion below can
// dispatch on. Non-Mix materials are returned unchanged.
func resolveLeaf(m material.Material, sampler core.Sampler) material.Material {
	mix, ok := m.(*material.Mix)
	if !ok {
		return m
	}
	return mix.Resolve(sampler)
}

// shadowed reports whether the shadow ray toward a light is blocked,
// offsetting its origin along the shading normal by the scene's
// shadow epsilon.
func shadowed(sc *scene.Scene, hit *core.HitRecord, direction core.Vec3, distance float64) bool {
	origin := hit.Point.Add(hit.Normal.Multiply(sc.Limits.ShadowEpsilon))
	ray := core.NewRay(origin, direction)
	return sc.Occluded(ray, core.NewInterval(0, distance))
}

// directLightingSum evaluates the full Σ_lights term of the diffuse
// shading equation: for every unoccluded light, the BRDF response to
// its direction times its irradiance. Used by the Whitted integrator,
// which sums every light deterministically.
func directLightingSum(sc *scene.Scene, hit *core.HitRecord, viewDir core.Vec3, mat material.Material, sampler core.Sampler) core.Vec3 {
	refl := mat.Reflectance()
	eval := sc.BRDFFor(mat)
	total := core.Vec3{}

	params := brdfParams(mat, refl)
	for _, light := range sc.Lights {
		direction, distance := light.ShadowGeometry(hit.Point, sampler)
		if shadowed(sc, hit, direction, distance) {
			continue
		}
		irradiance := light.Irradiance(direction, distance)
		response := eval.Eval(direction, viewDir, hit.Normal, params)
		total = total.Add(response.MultiplyVec(irradiance))
	}
	return total
}

// sampleOneLightEstimate draws one light uniformly at random and
// returns an unbiased Monte-Carlo estimate of directLightingSum,
// dividing by the 1/len(Lights) selection probability. Used by the
// path tracer, which estimates the same sum stochastically.
func sampleOneLightEstimate(sc *scene.Scene, hit *core.HitRecord, viewDir core.Vec3, mat material.Material, sampler core.Sampler) core.Vec3 {
	n := len(sc.Lights)
	if n == 0 {
		return core.Vec3{}
	}
	idx := int(sampler.Get1D() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	light := sc.Lights[idx]

	direction, distance := light.ShadowGeometry(hit.Point, sampler)
	if shadowed(sc, hit, direction, distance) {
		return core.Vec3{}
	}
	irradiance := light.Irradiance(direction, distance)
	eval := sc.BRDFFor(mat)
	response := eval.Eval(direction, viewDir, hit.Normal, brdfParams(mat, mat.Reflectance()))
	return response.MultiplyVec(irradiance).Multiply(float64(n))
}

// brdfParams bundles a material's reflectance into brdf.Params,
// filling in RefractionIndex from FresnelIndices when the material
// carries one (Torrance-Sparrow is the only evaluator that uses it).
func brdfParams(mat material.Material, refl material.ReflectanceParams) brdf.Params {
	p := brdf.Params{Diffuse: refl.Diffuse, Specular: refl.Specular, Exponent: refl.Exponent}
	if _, refraction, ok := mat.FresnelIndices(); ok {
		p.RefractionIndex = refraction
	}
	return p
}
