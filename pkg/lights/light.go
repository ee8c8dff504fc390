// Package lights implements the renderer's closed set of direct-light
// sources -- Point, Area, Directional, Spot -- each reducible to a
// shadow ray and an irradiance value, plus SphericalEnvironment, an
// infinite background light queried directly by ray direction instead.
package lights

import "github.com/prism-render/prism/pkg/core"

// Light is the common operation set of Point, Area, Directional, and
// Spot: a shadow ray geometry query and the irradiance it carries.
type Light interface {
	// ShadowGeometry returns the unit direction from origin toward the
	// light and the distance to travel before reaching it (+Inf for
	// Directional). Area lights sample a position on their surface
	// using sampler; the other kinds ignore it.
	ShadowGeometry(origin core.Vec3, sampler core.Sampler) (direction core.Vec3, distance float64)

	// Irradiance returns the light's contribution along a shadow ray
	// that has already been confirmed unoccluded, given the direction
	// and distance ShadowGeometry returned.
	Irradiance(direction core.Vec3, distance float64) core.Vec3
}
