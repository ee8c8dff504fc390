package lights

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
)

// Spot is a point source restricted to a cone: full intensity inside
// the falloff angle, a smooth quartic rolloff out to the coverage
// angle, and nothing beyond it.
type Spot struct {
	Position      core.Vec3
	Direction     core.Vec3 // unit direction the spot points, outward from Position
	Intensity     core.Vec3
	FalloffAngle  float64 // half-angle (radians) of the full-intensity inner cone
	CoverageAngle float64 // half-angle (radians) of the outer cutoff cone
}

// NewSpot creates a Spot light.
func NewSpot(position, direction, intensity core.Vec3, falloffAngle, coverageAngle float64) *Spot {
	return &Spot{
		Position:      position,
		Direction:     direction.Normalize(),
		Intensity:     intensity,
		FalloffAngle:  falloffAngle,
		CoverageAngle: coverageAngle,
	}
}

// ShadowGeometry implements Light.
func (s *Spot) ShadowGeometry(origin core.Vec3, _ core.Sampler) (core.Vec3, float64) {
	toLight := s.Position.Subtract(origin)
	distance := toLight.Length()
	return toLight.Multiply(1 / distance), distance
}

// Irradiance implements Light: intensity/distance^2 inside the
// falloff cone, a quartic rolloff between the falloff and coverage
// angles, and zero beyond coverage.
func (s *Spot) Irradiance(direction core.Vec3, distance float64) core.Vec3 {
	cosAlpha := s.Direction.Dot(direction.Negate())
	cosFalloff := math.Cos(s.FalloffAngle)
	cosCoverage := math.Cos(s.CoverageAngle)
	base := s.Intensity.Multiply(1 / (distance * distance))

	switch {
	case cosAlpha >= cosFalloff:
		return base
	case cosAlpha <= cosCoverage:
		return core.Vec3{}
	default:
		t := (cosAlpha - cosCoverage) / (cosFalloff - cosCoverage)
		return base.Multiply(t * t * t * t)
	}
}
