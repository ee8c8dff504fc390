package material

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
)

// dielectricFresnel computes the dielectric Fresnel reflectance F_r
// (transmittance is 1-F_r) for a ray with unit direction d hitting a
// surface with unit normal n and the given refraction index, following
// a front-face hit's normal as the outside of the medium. ok is false
// on total internal reflection, in which case F_r is already 1 and
// refraction must not be attempted; nRatio and cosPhi are only
// meaningful when ok is true.
func dielectricFresnel(d, n core.Vec3, frontFace bool, refractionIndex float64) (fr, nRatio, cosPhi float64, ok bool) {
	cosTheta := n.Dot(d.Negate())

	n1, n2 := 1.0, refractionIndex
	if !frontFace {
		n1, n2 = n2, n1
	}

	ratio := n1 / n2
	ratioSq := ratio * ratio
	insideSqrt := 1 - ratioSq*(1-cosTheta*cosTheta)
	if insideSqrt < 0 {
		return 1, 0, 0, false
	}
	cosPhi = math.Sqrt(insideSqrt)

	n1CosP, n2CosP := n1*cosPhi, n2*cosPhi
	n1CosT, n2CosT := n1*cosTheta, n2*cosTheta

	rParallel := (n2CosT - n1CosP) / (n2CosT + n1CosP)
	rPerp := (n1CosT - n2CosP) / (n1CosT + n2CosP)

	fr = 0.5 * (rParallel*rParallel + rPerp*rPerp)
	return fr, ratio, cosPhi, true
}

// conductorFresnel computes the complex-index reflectance for a
// conductor with refraction index n2 and absorption index k2.
func conductorFresnel(d, n core.Vec3, refractionIndex, absorptionIndex float64) float64 {
	cosTheta := n.Dot(d.Negate())
	cosSq := cosTheta * cosTheta

	sumNK := refractionIndex*refractionIndex + absorptionIndex*absorptionIndex
	twoNCos := 2 * refractionIndex * cosTheta

	rs := (sumNK - twoNCos + cosSq) / (sumNK + twoNCos + cosSq)
	rp := (sumNK*cosSq - twoNCos + 1) / (sumNK*cosSq + twoNCos + 1)

	return 0.5 * (rs + rp)
}

// beerLambert returns the transmittance over a path of the given
// length through a medium with per-channel absorption coefficient c.
func beerLambert(c core.Vec3, distance float64) core.Vec3 {
	return c.Multiply(-distance).Exp()
}

// NormalIncidenceFresnel returns the dielectric Fresnel reflectance at
// normal incidence for a surface with the given refraction index,
// falling back to full reflectance (1) in the degenerate case where
// the incidence computation reports total internal reflection.
func NormalIncidenceFresnel(refractionIndex float64) float64 {
	fr, _, _, ok := dielectricFresnel(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), true, refractionIndex)
	if !ok {
		return 1
	}
	return fr
}
