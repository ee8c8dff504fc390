package texture

import (
	"math"
	"testing"

	"github.com/prism-render/prism/pkg/core"
)

func TestPerlinFadeIsZeroAtAndBeyondUnitDistance(t *testing.T) {
	if perlinFade(1) != 0 {
		t.Errorf("perlinFade(1) = %v, want 0", perlinFade(1))
	}
	if perlinFade(2) != 0 {
		t.Errorf("perlinFade(2) = %v, want 0", perlinFade(2))
	}
	if got := perlinFade(0); got != 1 {
		t.Errorf("perlinFade(0) = %v, want 1", got)
	}
}

func TestPerlinFadeIsSymmetric(t *testing.T) {
	if perlinFade(0.3) != perlinFade(-0.3) {
		t.Error("perlinFade should depend only on |x|")
	}
}

func TestPerlinLinearConversionIsWithinUnitRange(t *testing.T) {
	p := NewPerlin(1, 1, Linear)
	for i := 0; i < 50; i++ {
		point := core.NewVec3(float64(i)*0.37, float64(i)*0.11, float64(i)*0.53)
		c := p.Evaluate(core.Vec2{}, point)
		if c.X < -1e-9 || c.X > 1+1e-9 {
			t.Errorf("linear-converted noise %v out of [0,1] at %v", c.X, point)
		}
	}
}

func TestPerlinAbsoluteConversionIsNonNegative(t *testing.T) {
	p := NewPerlin(1, 1, Absolute)
	for i := 0; i < 50; i++ {
		point := core.NewVec3(float64(i)*0.37, float64(i)*0.11, float64(i)*0.53)
		c := p.Evaluate(core.Vec2{}, point)
		if c.X < 0 {
			t.Errorf("absolute-converted noise %v should be non-negative", c.X)
		}
	}
}

func TestPerlinIsContinuousAtLatticePoints(t *testing.T) {
	p := NewPerlin(1, 1, Linear)
	a := p.Evaluate(core.Vec2{}, core.NewVec3(0.999, 0, 0))
	b := p.Evaluate(core.Vec2{}, core.NewVec3(1.001, 0, 0))
	if math.Abs(a.X-b.X) > 0.2 {
		t.Errorf("noise should be continuous across a lattice boundary, got %v vs %v", a.X, b.X)
	}
}

func TestPerlinMoreOctavesAddsHighFrequencyDetail(t *testing.T) {
	single := NewPerlin(1, 4, Linear)
	multi := NewPerlin(4, 4, Linear)

	point := core.NewVec3(1.3, 0.7, 2.1)
	a := single.Evaluate(core.Vec2{}, point)
	b := multi.Evaluate(core.Vec2{}, point)
	if a == b {
		t.Error("adding octaves should, in general, change the noise value")
	}
}

func TestPerlinBumpNormalStaysUnit(t *testing.T) {
	p := NewPerlin(2, 1, Linear)
	p.BumpFactor = 2
	hit := core.HitRecord{Point: core.NewVec3(0.3, 0.4, 0.5), Normal: core.NewVec3(0, 0, 1)}
	got := p.BumpNormal(hit)
	if math.Abs(got.Length()-1) > 1e-6 {
		t.Errorf("bump-perturbed normal should stay unit length, got length %v", got.Length())
	}
}
