package material

import (
	"math/rand"
	"testing"

	"github.com/prism-render/prism/pkg/core"
)

func TestMixChoosesByRatio(t *testing.T) {
	red := NewDiffuse(ReflectanceParams{Diffuse: core.NewVec3(1, 0, 0)})
	blue := NewDiffuse(ReflectanceParams{Diffuse: core.NewVec3(0, 0, 1)})
	mix := NewMix(red, blue, 0.5)

	n := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: n}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	sawRed, sawBlue := false, false
	for i := 0; i < 200; i++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(int64(i))))
		result, ok := mix.Scatter(ray, hit, 1e-4, sampler)
		if !ok {
			continue
		}
		if result.Attenuation.X > 0 {
			sawRed = true
		}
		if result.Attenuation.Z > 0 {
			sawBlue = true
		}
	}
	if !sawRed || !sawBlue {
		t.Error("expected a 50/50 Mix to sample both component materials")
	}
}

func TestMixRatioClampedToUnitRange(t *testing.T) {
	a := NewDiffuse(ReflectanceParams{})
	b := NewDiffuse(ReflectanceParams{})
	if m := NewMix(a, b, -1); m.Ratio != 0 {
		t.Errorf("ratio = %v, want clamped to 0", m.Ratio)
	}
	if m := NewMix(a, b, 2); m.Ratio != 1 {
		t.Errorf("ratio = %v, want clamped to 1", m.Ratio)
	}
}

func TestMixResolveRecursesThroughNestedMix(t *testing.T) {
	leaf := NewDiffuse(ReflectanceParams{Diffuse: core.NewVec3(1, 0, 0)})
	other := NewDiffuse(ReflectanceParams{})
	inner := NewMix(leaf, other, 0) // always resolves to leaf
	outer := NewMix(inner, other, 0)

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))
	resolved := outer.Resolve(sampler)
	if resolved != Material(leaf) {
		t.Errorf("Resolve() = %v, want the nested leaf material %v", resolved, leaf)
	}
}

func TestMixReflectanceInterpolatesLinearly(t *testing.T) {
	a := NewDiffuse(ReflectanceParams{Diffuse: core.NewVec3(0, 0, 0)})
	b := NewDiffuse(ReflectanceParams{Diffuse: core.NewVec3(1, 1, 1)})
	mix := NewMix(a, b, 0.25)

	got := mix.Reflectance().Diffuse
	want := core.NewVec3(0.25, 0.25, 0.25)
	if got != want {
		t.Errorf("blended diffuse = %v, want %v", got, want)
	}
}
