package lights

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/texture"
)

// Mapping selects how a ray direction is projected onto an
// environment image's UV space.
type Mapping int

const (
	// LatLong maps direction to equirectangular (longitude, latitude) UV.
	LatLong Mapping = iota
	// Probe maps direction using a mirror-ball light-probe projection.
	Probe
)

// SphericalEnvironment is an infinite background light queried
// directly by ray direction rather than through shadow-ray geometry:
// every ray that escapes the scene samples it once. When no image is
// bound it evaluates Fallback instead, and returns black when Fallback
// is nil too; NewSphericalEnvironment leaves Fallback nil.
type SphericalEnvironment struct {
	Image    texture.Texture // nil when no environment image is bound
	Mapping  Mapping
	Fallback texture.Texture // used in place of Image when it is nil
}

// NewSphericalEnvironment creates a SphericalEnvironment light bound
// to an image texture.
func NewSphericalEnvironment(image texture.Texture, mapping Mapping) *SphericalEnvironment {
	return &SphericalEnvironment{Image: image, Mapping: mapping}
}

// Emit returns the environment's radiance along ray, sampling the
// bound image (or the fallback sky) at the direction's projected UV.
func (e *SphericalEnvironment) Emit(ray core.Ray) core.Vec3 {
	d := ray.Direction.Normalize()
	uv := e.project(d)

	if e.Image != nil {
		return e.Image.Evaluate(uv, d)
	}
	if e.Fallback != nil {
		return e.Fallback.Evaluate(uv, d)
	}
	return core.Vec3{}
}

func (e *SphericalEnvironment) project(d core.Vec3) core.Vec2 {
	if e.Mapping == Probe {
		return probeUV(d)
	}
	return latLongUV(d)
}

// latLongUV maps a unit direction to equirectangular UV: U wraps
// around the horizon, V runs from the south pole (0) to the north
// pole (1).
func latLongUV(d core.Vec3) core.Vec2 {
	u := math.Atan2(d.X, -d.Z)/(2*math.Pi) + 0.5
	v := math.Acos(math.Max(-1, math.Min(1, d.Y))) / math.Pi
	return core.NewVec2(u, 1-v)
}

// probeUV maps a unit direction using the standard mirror-ball
// light-probe projection.
func probeUV(d core.Vec3) core.Vec2 {
	denom := 2 * math.Sqrt(d.X*d.X+d.Y*d.Y+(d.Z+1)*(d.Z+1))
	if denom < 1e-9 {
		return core.NewVec2(0.5, 0.5)
	}
	return core.NewVec2(d.X/denom+0.5, d.Y/denom+0.5)
}
