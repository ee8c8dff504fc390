package brdf

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
)

// TorranceSparrow is a microfacet BRDF using a Blinn distribution, a
// Cook-Torrance shadowing/masking term, and a Schlick-approximated
// Fresnel term driven by the material's refraction index.
type TorranceSparrow struct{}

// Eval implements BRDF.
func (TorranceSparrow) Eval(wi, wo, n core.Vec3, p Params) core.Vec3 {
	cosTheta := wi.Dot(n)
	if cosTheta < 0 {
		return core.Vec3{}
	}

	wh := wi.Add(wo).Normalize()
	cosAlpha := n.Dot(wh)
	if cosAlpha < 0 {
		cosAlpha = 0
	}
	blinnDist := (p.Exponent + 2) / (2 * math.Pi) * math.Pow(cosAlpha, p.Exponent)

	nDotWh := n.Dot(wh)
	nDotWo := n.Dot(wo)
	nDotWi := cosTheta
	woDotWh := wo.Dot(wh)

	geometry := math.Min(1, math.Min(2*nDotWh*nDotWo/woDotWh, 2*nDotWh*nDotWi/woDotWh))

	r0 := math.Pow((p.RefractionIndex-1)/(p.RefractionIndex+1), 2)
	cosBeta := woDotWh
	fresnel := r0 + (1-r0)*math.Pow(1-cosBeta, 5)

	specular := blinnDist * fresnel * geometry / (4 * cosTheta * nDotWo)

	return p.Diffuse.Multiply(1 / math.Pi).Add(p.Specular.Multiply(specular))
}
