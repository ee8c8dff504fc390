package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/prism-render/prism/pkg/core"
)

func straightCamera(width, height int) *Camera {
	return New(Config{
		Position:     core.NewVec3(0, 0, 5),
		Gaze:         core.NewVec3(0, 0, -1),
		Up:           core.NewVec3(0, 1, 0),
		FovY:         math.Pi / 2,
		NearDistance: 1,
		Width:        width,
		Height:       height,
		Transform:    core.Identity4(),
	})
}

func TestRayCenterPixelPointsStraightAhead(t *testing.T) {
	c := straightCamera(100, 100)
	r := c.Ray(49, 49)
	if r.Direction.X > 0.05 || r.Direction.Y > 0.05 {
		t.Errorf("center pixel direction = %v, want close to straight ahead", r.Direction)
	}
	if r.Direction.Z >= 0 {
		t.Errorf("camera looks toward -Z, direction.Z = %v should be negative", r.Direction.Z)
	}
}

func TestRayTopRowPointsUp(t *testing.T) {
	c := straightCamera(100, 100)
	top := c.Ray(49, 0)
	bottom := c.Ray(49, 99)
	if !(top.Direction.Y > bottom.Direction.Y) {
		t.Errorf("row 0 should be the top of the image: top.Y=%v, bottom.Y=%v", top.Direction.Y, bottom.Direction.Y)
	}
	if top.Direction.Y <= 0 {
		t.Errorf("row 0 direction should point upward, got Y=%v", top.Direction.Y)
	}
	if bottom.Direction.Y >= 0 {
		t.Errorf("last row direction should point downward, got Y=%v", bottom.Direction.Y)
	}
}

func TestRayLeftColumnPointsLeft(t *testing.T) {
	c := straightCamera(100, 100)
	left := c.Ray(0, 49)
	right := c.Ray(99, 49)
	if !(left.Direction.X < right.Direction.X) {
		t.Errorf("col 0 should be the left of the image: left.X=%v, right.X=%v", left.Direction.X, right.Direction.X)
	}
	if left.Direction.X >= 0 {
		t.Errorf("col 0 direction should point leftward (negative X), got %v", left.Direction.X)
	}
	if right.Direction.X <= 0 {
		t.Errorf("last col direction should point rightward (positive X), got %v", right.Direction.X)
	}
}

func TestJitteredRaySubsamplesStayWithinPixelCell(t *testing.T) {
	c := straightCamera(10, 10)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))
	n := SamplesPerAxis(4)

	center := c.Ray(5, 5)
	jittered := c.JitteredRay(5, 5, 0, 0, n, sampler)

	// Both rays originate from the same eye position.
	if jittered.Origin != center.Origin {
		t.Errorf("jittered ray origin = %v, want %v", jittered.Origin, center.Origin)
	}

	// The near plane sits at z=4 and spans [-1,1] on both axes, so
	// pixel (5,5) of the 10x10 image covers x in [0,0.2], y in [-0.2,0].
	p := jittered.At(1 / -jittered.Direction.Z)
	const tol = 1e-9
	if p.X < -tol || p.X > 0.2+tol || p.Y < -0.2-tol || p.Y > tol {
		t.Errorf("jittered ray crosses the near plane at %v, outside pixel (5,5)", p)
	}
}

func TestSamplesPerAxis(t *testing.T) {
	cases := map[int]int{1: 1, 4: 2, 9: 3, 16: 4, 10: 3, 0: 1}
	for in, want := range cases {
		if got := SamplesPerAxis(in); got != want {
			t.Errorf("SamplesPerAxis(%d) = %d, want %d", in, got, want)
		}
	}
}
