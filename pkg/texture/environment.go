package texture

import (
	"math"

	perlin "github.com/aquilax/go-perlin"

	"github.com/prism-render/prism/pkg/core"
)

// SkyDome is a procedural sky gradient that can be set as a spherical
// environment light's Fallback texture: a base horizon-to-zenith color
// gradient overlaid with library-generated 2D noise for cloud-like
// variation. Scene-file assembly does not create one.
type SkyDome struct {
	Horizon, Zenith core.Vec3
	NoiseStrength   float64
	noise           *perlin.Perlin
}

// NewSkyDome creates a SkyDome gradient seeded for reproducible noise.
func NewSkyDome(horizon, zenith core.Vec3, noiseStrength float64, seed int64) *SkyDome {
	return &SkyDome{
		Horizon:       horizon,
		Zenith:        zenith,
		NoiseStrength: noiseStrength,
		noise:         perlin.NewPerlin(2, 2, 3, seed),
	}
}

// Evaluate implements Texture: uv.Y is the elevation fraction (0 at
// the horizon, 1 at the zenith) used to interpolate the base gradient;
// point is the unit direction toward the dome, used to drive the noise
// field so it varies smoothly across the sky rather than by UV seams.
func (s *SkyDome) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	t := math.Max(0, math.Min(1, uv.Y))
	base := s.Horizon.Multiply(1 - t).Add(s.Zenith.Multiply(t))

	n := s.noise.Noise2D(point.X*2, point.Z*2)
	return base.Multiply(1 + s.NoiseStrength*n)
}
