package brdf

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
)

// Phong is the original specular lobe built around the reflection
// vector r = 2(n.wi)n - wi rather than the half vector, with no
// normalization constant.
type Phong struct{}

// Eval implements BRDF.
func (Phong) Eval(wi, wo, n core.Vec3, p Params) core.Vec3 {
	return phongEval(wi, wo, n, p.Exponent, p.Diffuse, p.Specular, false)
}

// ModifiedPhong adds the (p+2)/(2*pi) normalization constant to Phong's
// specular lobe so its total reflected energy stays bounded as the
// exponent grows.
type ModifiedPhong struct{}

// Eval implements BRDF.
func (ModifiedPhong) Eval(wi, wo, n core.Vec3, p Params) core.Vec3 {
	return phongEval(wi, wo, n, p.Exponent, p.Diffuse, p.Specular, true)
}

func phongEval(wi, wo, n core.Vec3, exponent float64, kd, ks core.Vec3, normalized bool) core.Vec3 {
	cosTheta := wi.Dot(n)
	if cosTheta < 0 {
		return core.Vec3{}
	}

	r := n.Multiply(2 * n.Dot(wi)).Subtract(wi)
	cosAlpha := r.Dot(wo)
	if cosAlpha < 0 {
		cosAlpha = 0
	}
	specWeight := math.Pow(cosAlpha, exponent)
	if normalized {
		specWeight *= (exponent + 2) / (2 * math.Pi)
	}

	return kd.Add(ks.Multiply(specWeight))
}
