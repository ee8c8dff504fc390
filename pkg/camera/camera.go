// Package camera builds primary rays from a pinhole camera
// configuration, including jittered supersampling for antialiasing.
package camera

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
)

// Config describes a camera before its basis vectors are derived.
// Either Gaze or GazePoint may be set; when UseGazePoint is true, Gaze
// is computed as GazePoint-Position during New.
type Config struct {
	Position     core.Vec3
	Gaze         core.Vec3 // looking direction; ignored if UseGazePoint is set
	GazePoint    core.Vec3
	UseGazePoint bool
	Up           core.Vec3
	FovY         float64 // vertical field of view, radians
	NearDistance float64
	Width        int
	Height       int
	Transform    core.Mat4 // applied to position (as a point) and u/v/w (as directions)
}

// Camera generates primary rays through a near-plane rectangle derived
// from a Config at construction time. Row 0 is the top of the image.
type Camera struct {
	position core.Vec3
	topLeft  core.Vec3
	right    core.Vec3 // vector spanning the near plane's full width, left edge to right edge
	down     core.Vec3 // vector spanning the near plane's full height, top edge to bottom edge
	width    int
	height   int
}

// New builds a Camera from cfg: derives the gaze/up basis (w, u, v),
// applies the composite transform to the eye position (as a point)
// and to u, v, w (as directions, without renormalizing, so a scale in
// the transform changes the effective focal distance), then computes
// the near-plane rectangle from field of view and near distance.
func New(cfg Config) *Camera {
	gaze := cfg.Gaze
	if cfg.UseGazePoint {
		gaze = cfg.GazePoint.Subtract(cfg.Position)
	}

	w := gaze.Normalize().Negate()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u).Normalize()

	position := cfg.Position
	if cfg.Transform != core.Identity4() {
		position = cfg.Transform.TransformPoint(position)
		u = cfg.Transform.TransformDirection(u)
		v = cfg.Transform.TransformDirection(v)
		w = cfg.Transform.TransformDirection(w)
	}

	aspect := float64(cfg.Width) / float64(cfg.Height)
	top := cfg.NearDistance * math.Tan(cfg.FovY/2)
	right := top * aspect

	center := position.Subtract(w.Multiply(cfg.NearDistance))
	topLeft := center.Subtract(u.Multiply(right)).Add(v.Multiply(top))

	return &Camera{
		position: position,
		topLeft:  topLeft,
		right:    u.Multiply(2 * right),
		down:     v.Multiply(-2 * top),
		width:    cfg.Width,
		height:   cfg.Height,
	}
}

// Width returns the configured image width in pixels.
func (c *Camera) Width() int { return c.width }

// Height returns the configured image height in pixels.
func (c *Camera) Height() int { return c.height }

// pointOn returns the near-plane point for fractional pixel
// coordinates (s, t) in [0,1)x[0,1): s=0 at the left edge, t=0 at the
// top edge.
func (c *Camera) pointOn(s, t float64) core.Vec3 {
	return c.topLeft.Add(c.right.Multiply(s)).Add(c.down.Multiply(t))
}

// Ray returns the primary ray through pixel (col, row)'s center.
func (c *Camera) Ray(col, row int) core.Ray {
	s := (float64(col) + 0.5) / float64(c.width)
	t := (float64(row) + 0.5) / float64(c.height)
	p := c.pointOn(s, t)
	return core.NewRay(c.position, p.Subtract(c.position))
}

// JitteredRay returns a supersampled primary ray through pixel (col,
// row), for subsample (x, y) of an n x n grid (n = SamplesPerAxis(numSamples)),
// jittered within its sub-pixel cell by sampler.
func (c *Camera) JitteredRay(col, row, x, y, n int, sampler core.Sampler) core.Ray {
	psi1, psi2 := sampler.Get2D()
	s := (float64(col) + (float64(x)+psi1)/float64(n)) / float64(c.width)
	t := (float64(row) + (float64(y)+psi2)/float64(n)) / float64(c.height)
	p := c.pointOn(s, t)
	return core.NewRay(c.position, p.Subtract(c.position))
}

// SamplesPerAxis returns floor(sqrt(numSamples)), the per-axis grid
// size for jittered supersampling, never less than 1.
func SamplesPerAxis(numSamples int) int {
	n := int(math.Sqrt(float64(numSamples)))
	if n < 1 {
		return 1
	}
	return n
}
