package lights

import "github.com/prism-render/prism/pkg/core"

// Point is an isotropic point source with inverse-square falloff.
type Point struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPoint creates a Point light.
func NewPoint(position, intensity core.Vec3) *Point {
	return &Point{Position: position, Intensity: intensity}
}

// ShadowGeometry implements Light.
func (p *Point) ShadowGeometry(origin core.Vec3, _ core.Sampler) (core.Vec3, float64) {
	toLight := p.Position.Subtract(origin)
	distance := toLight.Length()
	return toLight.Multiply(1 / distance), distance
}

// Irradiance implements Light: intensity/distance^2.
func (p *Point) Irradiance(_ core.Vec3, distance float64) core.Vec3 {
	return p.Intensity.Multiply(1 / (distance * distance))
}
