package lights

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
)

// Directional is a light infinitely far away: every shadow ray points
// the same direction and carries no falloff.
type Directional struct {
	Direction core.Vec3 // unit direction the light travels, scene-ward
	Radiance  core.Vec3
}

// NewDirectional creates a Directional light.
func NewDirectional(direction, radiance core.Vec3) *Directional {
	return &Directional{Direction: direction.Normalize(), Radiance: radiance}
}

// ShadowGeometry implements Light: the shadow ray points back toward
// the light's source, at infinite distance.
func (d *Directional) ShadowGeometry(_ core.Vec3, _ core.Sampler) (core.Vec3, float64) {
	return d.Direction.Negate(), math.Inf(1)
}

// Irradiance implements Light: radiance with no distance falloff.
func (d *Directional) Irradiance(_ core.Vec3, _ float64) core.Vec3 {
	return d.Radiance
}
