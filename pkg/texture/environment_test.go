package texture

import (
	"math"
	"testing"

	"github.com/prism-render/prism/pkg/core"
)

func TestSkyDomeInterpolatesHorizonToZenith(t *testing.T) {
	horizon := core.NewVec3(1, 1, 1)
	zenith := core.NewVec3(0, 0, 1)
	dome := NewSkyDome(horizon, zenith, 0, 7)

	atHorizon := dome.Evaluate(core.NewVec2(0, 0), core.NewVec3(1, 0, 0))
	atZenith := dome.Evaluate(core.NewVec2(0, 1), core.NewVec3(0, 1, 0))

	if math.Abs(atHorizon.X-1) > 1e-9 {
		t.Errorf("horizon sample = %v, want close to horizon color", atHorizon)
	}
	if math.Abs(atZenith.X-0) > 1e-9 {
		t.Errorf("zenith sample = %v, want close to zenith color", atZenith)
	}
}

func TestSkyDomeNoiseVariesByDirection(t *testing.T) {
	dome := NewSkyDome(core.NewVec3(1, 1, 1), core.NewVec3(0.2, 0.2, 1), 0.5, 99)
	a := dome.Evaluate(core.NewVec2(0, 0.5), core.NewVec3(1, 0, 0))
	b := dome.Evaluate(core.NewVec2(0, 0.5), core.NewVec3(0.2, 0, 0.9))
	if a == b {
		t.Error("noise should vary across different dome directions at the same elevation")
	}
}

func TestSkyDomeZeroStrengthIgnoresNoise(t *testing.T) {
	horizon, zenith := core.NewVec3(1, 0.5, 0.2), core.NewVec3(0.1, 0.1, 0.6)
	dome := NewSkyDome(horizon, zenith, 0, 1)
	a := dome.Evaluate(core.NewVec2(0, 0.3), core.NewVec3(0.5, 0.2, 0.1))
	b := dome.Evaluate(core.NewVec2(0, 0.3), core.NewVec3(-0.9, 0.7, 0.2))
	if a != b {
		t.Errorf("with zero noise strength, direction should not affect the result: %v vs %v", a, b)
	}
}
