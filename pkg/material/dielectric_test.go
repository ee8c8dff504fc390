package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/prism-render/prism/pkg/core"
)

func TestDielectricInteractReflectVsRefractBranch(t *testing.T) {
	d := NewDielectric(ReflectanceParams{}, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), 1.5, 0)
	n := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: n, FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(2)))

	reflectResult, ok := d.Interact(ray, hit, 1e-4, true, sampler)
	if !ok {
		t.Fatal("reflect branch should succeed")
	}
	if reflectResult.Ray.Direction.Dot(n) <= 0 {
		t.Error("reflected direction should point away from the surface")
	}

	refractResult, ok := d.Interact(ray, hit, 1e-4, false, sampler)
	if !ok {
		t.Fatal("refract branch should succeed for a straight-through ray")
	}
	if refractResult.Ray.Direction.Dot(n) >= 0 {
		t.Error("refracted direction should continue into the surface")
	}
}

func TestDielectricRefractNoAbsorptionOnEntry(t *testing.T) {
	d := NewDielectric(ReflectanceParams{}, core.NewVec3(1, 1, 1), core.NewVec3(2, 2, 2), 1.5, 0)
	n := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), EntryPoint: core.NewVec3(0, 0, 5), Normal: n, FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(9)))

	result, ok := d.Interact(ray, hit, 1e-4, false, sampler)
	if !ok {
		t.Fatal("expected refraction to succeed")
	}
	want := 1 - 0.04 // 1-fr at normal incidence for index 1.5; e^-10 would follow if absorption applied
	if math.Abs(result.Attenuation.X-want) > 1e-9 {
		t.Errorf("entering attenuation %v should be (1-fr) with no Beer-Lambert term applied", result.Attenuation.X)
	}
}

func TestDielectricRefractAppliesBeerLambertOnExit(t *testing.T) {
	d := NewDielectric(ReflectanceParams{}, core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), 1.5, 0)
	n := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{
		Point:      core.NewVec3(0, 0, 0),
		EntryPoint: core.NewVec3(0, 0, 5),
		Normal:     n,
		FrontFace:  false,
	}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(9)))

	result, ok := d.Interact(ray, hit, 1e-4, false, sampler)
	if !ok {
		t.Fatal("expected refraction to succeed")
	}
	// distance = |EntryPoint - Point| = 5, absorption coeff 1 -> factor e^-5, far below (1-fr).
	if result.Attenuation.X > 0.1 {
		t.Errorf("expected strong Beer-Lambert attenuation over distance 5, got %v", result.Attenuation.X)
	}
}

func TestDielectricScatterChoosesReflectOrRefract(t *testing.T) {
	d := NewDielectric(ReflectanceParams{}, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), 1.5, 0)
	n := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: n, FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	sawReflect, sawRefract := false, false
	for i := 0; i < 100; i++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(int64(i))))
		result, ok := d.Scatter(ray, hit, 1e-4, sampler)
		if !ok {
			continue
		}
		if result.Ray.Direction.Dot(n) > 0 {
			sawReflect = true
		} else {
			sawRefract = true
		}
	}
	if !sawReflect || !sawRefract {
		t.Error("expected Scatter to sample both reflection and refraction across many trials")
	}
}

func TestDielectricTotalInternalReflectionFallsBackToReflect(t *testing.T) {
	d := NewDielectric(ReflectanceParams{}, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), 1.5, 0)
	n := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: n, FrontFace: false}
	// Shallow exit angle from the dense medium -> total internal reflection.
	ray := core.NewRay(core.NewVec3(-0.99, 0, 0.01), core.NewVec3(0.99, 0, -0.01))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(4)))

	result, ok := d.Scatter(ray, hit, 1e-4, sampler)
	if !ok {
		t.Fatal("total internal reflection should still produce a reflected ray")
	}
	if result.Ray.Direction.Dot(n) <= 0 {
		t.Error("fallback reflection should point away from the surface along the normal")
	}
}
