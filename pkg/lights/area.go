package lights

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
)

// Area is a square emitter sampled uniformly over its surface,
// double-sided (contributes regardless of which face the shading
// point sees).
type Area struct {
	Position core.Vec3
	Normal   core.Vec3
	Size     float64 // side length of the square
	Radiance core.Vec3

	basis core.ONB // tangent basis spanning the square, derived from Normal
}

// NewArea creates an Area light, deriving its tangent basis from the
// (normalized) surface normal.
func NewArea(position, normal core.Vec3, size float64, radiance core.Vec3) *Area {
	n := normal.Normalize()
	return &Area{Position: position, Normal: n, Size: size, Radiance: radiance, basis: core.NewONB(n)}
}

// ShadowGeometry implements Light: samples a point uniformly over the
// square using two independent samples from sampler.
func (a *Area) ShadowGeometry(origin core.Vec3, sampler core.Sampler) (core.Vec3, float64) {
	s, t := sampler.Get2D()
	offset := a.basis.U.Multiply((s - 0.5) * a.Size).Add(a.basis.V.Multiply((t - 0.5) * a.Size))
	samplePoint := a.Position.Add(offset)

	toLight := samplePoint.Subtract(origin)
	distance := toLight.Length()
	return toLight.Multiply(1 / distance), distance
}

// Irradiance implements Light: radiance * |cos alpha| * area / distance^2.
func (a *Area) Irradiance(direction core.Vec3, distance float64) core.Vec3 {
	cosAlpha := math.Abs(a.Normal.Dot(direction))
	area := a.Size * a.Size
	return a.Radiance.Multiply(cosAlpha * area / (distance * distance))
}
