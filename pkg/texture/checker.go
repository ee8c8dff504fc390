package texture

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
)

// Checkerboard is a 3D checker pattern evaluated directly in object
// space (not UV), so it tiles consistently across a curved or
// multi-part surface.
type Checkerboard struct {
	Scale  float64
	Offset float64
	Black  core.Vec3
	White  core.Vec3
}

// NewCheckerboard creates a Checkerboard texture.
func NewCheckerboard(scale, offset float64, black, white core.Vec3) *Checkerboard {
	return &Checkerboard{Scale: scale, Offset: offset, Black: black, White: white}
}

func checkerBit(coord, offset, scale float64) bool {
	return int64(math.Floor((coord+offset)*scale))%2 != 0
}

// Evaluate implements Texture: black when the XOR of the three axes'
// checker bits is odd, else white.
func (c *Checkerboard) Evaluate(_ core.Vec2, point core.Vec3) core.Vec3 {
	x := checkerBit(point.X, c.Offset, c.Scale)
	y := checkerBit(point.Y, c.Offset, c.Scale)
	z := checkerBit(point.Z, c.Offset, c.Scale)

	if (x != y) != z {
		return c.Black
	}
	return c.White
}
