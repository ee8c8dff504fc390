// Package brdf implements the reflectance evaluators shared by every
// material's direct-lighting term: Phong, modified Phong, Blinn-Phong,
// modified Blinn-Phong, and Torrance-Sparrow. Each evaluator shares
// the signature Eval(wi, wo, n, params) and returns the zero vector
// whenever the light is below the surface.
package brdf

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
)

// Params bundles the reflectance inputs an evaluator needs out of a
// material: diffuse and specular tint plus a shininess exponent.
type Params struct {
	Diffuse  core.Vec3
	Specular core.Vec3
	Exponent float64

	// RefractionIndex backs Torrance-Sparrow's Schlick-approximated
	// Fresnel term; unused by the other evaluators.
	RefractionIndex float64
}

// BRDF evaluates outgoing reflectance for a light direction wi, a view
// direction wo, and a shading normal n, all unit vectors pointing away
// from the surface.
type BRDF interface {
	Eval(wi, wo, n core.Vec3, params Params) core.Vec3
}

// Default is the Blinn-Phong evaluator used when a material names no
// explicit BRDF.
var Default BRDF = BlinnPhong{}

// BlinnPhong is the classic half-vector specular term, divided by
// cosTheta so its lobe stays normalized against the diffuse term.
type BlinnPhong struct{}

// Eval implements BRDF.
func (BlinnPhong) Eval(wi, wo, n core.Vec3, p Params) core.Vec3 {
	return blinnPhongEval(wi, wo, n, p.Exponent, p.Diffuse, p.Specular, false)
}

// ModifiedBlinnPhong skips the cosTheta division, trading energy
// conservation at grazing angles for a softer highlight falloff.
type ModifiedBlinnPhong struct{}

// Eval implements BRDF.
func (ModifiedBlinnPhong) Eval(wi, wo, n core.Vec3, p Params) core.Vec3 {
	return blinnPhongEval(wi, wo, n, p.Exponent, p.Diffuse, p.Specular, true)
}

func blinnPhongEval(wi, wo, n core.Vec3, exponent float64, kd, ks core.Vec3, modified bool) core.Vec3 {
	cosTheta := wi.Dot(n)
	if cosTheta < 0 {
		return core.Vec3{}
	}

	h := wi.Add(wo).Normalize()
	cosAlpha := n.Dot(h)
	if cosAlpha < 0 {
		cosAlpha = 0
	}
	specWeight := math.Pow(cosAlpha, exponent)
	if !modified {
		specWeight /= cosTheta
	}

	return kd.Add(ks.Multiply(specWeight))
}
