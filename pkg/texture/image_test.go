package texture

import (
	"math"
	"testing"

	"github.com/prism-render/prism/pkg/core"
)

func checkerPixels() (int, int, []core.Vec3) {
	// 2x2 image: top-left red, top-right green, bottom-left blue, bottom-right white.
	return 2, 2, []core.Vec3{
		core.NewVec3(255, 0, 0), core.NewVec3(0, 255, 0),
		core.NewVec3(0, 0, 255), core.NewVec3(255, 255, 255),
	}
}

func TestImageNearestSampleAndNormalizer(t *testing.T) {
	w, h, pixels := checkerPixels()
	img := NewImage(w, h, pixels)

	got := img.Evaluate(core.NewVec2(0.25, 0.75), core.Vec3{})
	want := core.NewVec3(1, 0, 0)
	if got != want {
		t.Errorf("top-left sample = %v, want %v", got, want)
	}

	got = img.Evaluate(core.NewVec2(0.75, 0.25), core.Vec3{})
	want = core.NewVec3(1, 1, 1)
	if got != want {
		t.Errorf("bottom-right (v<0.5, image-row-bottom) sample = %v, want %v", got, want)
	}
}

func TestImageUVWrapsAroundTile(t *testing.T) {
	w, h, pixels := checkerPixels()
	img := NewImage(w, h, pixels)

	inTile := img.Evaluate(core.NewVec2(0.25, 0.75), core.Vec3{})
	wrapped := img.Evaluate(core.NewVec2(1.25, -0.25), core.Vec3{})
	if inTile != wrapped {
		t.Errorf("wrapped uv sample = %v, want %v (matching in-tile sample)", wrapped, inTile)
	}
}

func TestImageBilinearBlendsNeighbors(t *testing.T) {
	w, h, pixels := checkerPixels()
	img := &Image{Width: w, Height: h, Pixels: pixels, Interpolation: Bilinear, Normalizer: 255}

	nearest := &Image{Width: w, Height: h, Pixels: pixels, Interpolation: Nearest, Normalizer: 255}
	mid := img.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{})
	midNearest := nearest.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{})
	if mid == midNearest {
		t.Error("bilinear sample at a boundary should blend rather than match nearest exactly")
	}
}

func TestImageBumpNormalFallsBackWithoutTangentBasis(t *testing.T) {
	w, h, pixels := checkerPixels()
	img := NewImage(w, h, pixels)
	n := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{Normal: n}
	if got := img.BumpNormal(hit); got != n {
		t.Errorf("BumpNormal without tangent basis = %v, want unperturbed normal %v", got, n)
	}
}

func TestImageBumpNormalPerturbsWithGradient(t *testing.T) {
	w, h, pixels := checkerPixels()
	img := &Image{Width: w, Height: h, Pixels: pixels, Normalizer: 255, BumpFactor: 5}
	n := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{
		Point:           core.NewVec3(0, 0, 0),
		Normal:          n,
		HasTangentBasis: true,
		Tangent:         core.NewVec3(1, 0, 0),
		Bitangent:       core.NewVec3(0, 1, 0),
		HasUV:           true,
		UV:              core.NewVec2(0.25, 0.25),
	}
	got := img.BumpNormal(hit)
	if math.Abs(got.Length()-1) > 1e-6 {
		t.Errorf("perturbed normal should stay unit length, got length %v", got.Length())
	}
}
