package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/prism-render/prism/pkg/core"
)

func TestMirrorReflectsAboutNormal(t *testing.T) {
	m := NewMirror(ReflectanceParams{}, core.NewVec3(1, 1, 1), 0)
	n := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: n}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, -1).Normalize())
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))

	result, ok := m.Interact(ray, hit, 1e-4, false, sampler)
	if !ok {
		t.Fatal("mirror must always reflect")
	}
	want := core.NewVec3(1, 0, 1).Normalize()
	if math.Abs(result.Ray.Direction.X-want.X) > 1e-9 || math.Abs(result.Ray.Direction.Z-want.Z) > 1e-9 {
		t.Errorf("reflected direction = %v, want %v", result.Ray.Direction, want)
	}
	if result.Attenuation != m.MirrorRF {
		t.Errorf("attenuation = %v, want %v", result.Attenuation, m.MirrorRF)
	}
}

func TestMirrorIgnoresReflectFlag(t *testing.T) {
	m := NewMirror(ReflectanceParams{}, core.NewVec3(1, 1, 1), 0)
	n := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{Normal: n}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))

	_, ok1 := m.Interact(ray, hit, 1e-4, true, sampler)
	_, ok2 := m.Interact(ray, hit, 1e-4, false, sampler)
	if !ok1 || !ok2 {
		t.Error("Mirror.Interact must succeed regardless of the reflect flag")
	}
}

func TestMirrorRoughnessPerturbsDirection(t *testing.T) {
	n := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{Normal: n}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	smooth := NewMirror(ReflectanceParams{}, core.NewVec3(1, 1, 1), 0)
	rough := NewMirror(ReflectanceParams{}, core.NewVec3(1, 1, 1), 0.5)

	sSampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))
	rSampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))

	smoothResult, _ := smooth.Interact(ray, hit, 1e-4, false, sSampler)
	roughResult, _ := rough.Interact(ray, hit, 1e-4, false, rSampler)

	if smoothResult.Ray.Direction == roughResult.Ray.Direction {
		t.Error("nonzero roughness should perturb the reflected direction")
	}
}
