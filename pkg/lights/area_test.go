package lights

import (
	"math"
	"math/rand"
	"testing"

	"github.com/prism-render/prism/pkg/core"
)

func TestAreaSamplePointStaysOnSquare(t *testing.T) {
	a := NewArea(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 2, core.NewVec3(1, 1, 1))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))

	for i := 0; i < 100; i++ {
		dir, dist := a.ShadowGeometry(core.NewVec3(0, 0, -5), sampler)
		samplePoint := core.NewVec3(0, 0, -5).Add(dir.Multiply(dist))
		if math.Abs(samplePoint.X) > 1.0001 || math.Abs(samplePoint.Y) > 1.0001 {
			t.Fatalf("sample point %v should stay within the 2x2 square", samplePoint)
		}
		if math.Abs(samplePoint.Z) > 1e-6 {
			t.Fatalf("sample point %v should stay on the light's plane", samplePoint)
		}
	}
}

func TestAreaIrradianceIsDoubleSided(t *testing.T) {
	a := NewArea(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 2, core.NewVec3(4, 4, 4))

	front := a.Irradiance(core.NewVec3(0, 0, 1), 2)
	back := a.Irradiance(core.NewVec3(0, 0, -1), 2)
	if front.X != back.X {
		t.Errorf("area light should be double-sided: front=%v back=%v", front.X, back.X)
	}
}

func TestAreaIrradianceScalesWithAreaAndCosine(t *testing.T) {
	small := NewArea(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 1, core.NewVec3(1, 1, 1))
	large := NewArea(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 2, core.NewVec3(1, 1, 1))

	dir := core.NewVec3(0, 0, 1)
	smallIrr := small.Irradiance(dir, 1)
	largeIrr := large.Irradiance(dir, 1)
	if largeIrr.X <= smallIrr.X {
		t.Error("quadrupling the square's area should increase irradiance")
	}

	grazing := core.NewVec3(1, 0, 0.01).Normalize()
	grazingIrr := small.Irradiance(grazing, 1)
	if grazingIrr.X >= smallIrr.X {
		t.Error("a grazing direction should have lower irradiance than straight-on")
	}
}
