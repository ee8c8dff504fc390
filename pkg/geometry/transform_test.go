package geometry

import (
	"math"
	"testing"

	"github.com/prism-render/prism/pkg/core"
)

func TestTransformRoundTrip(t *testing.T) {
	transform := NewTransform(core.Translation(core.NewVec3(1, 2, 3)))
	p := core.NewVec3(5, -1, 0.5)

	world := transform.ToWorldPoint(p)
	back := transform.ToObjectPoint(world)
	if !back.Equals(p) {
		t.Errorf("round trip through a transform should be identity: got %v, want %v", back, p)
	}
}

func TestTransformNormalUnaffectedByTranslation(t *testing.T) {
	transform := NewTransform(core.Translation(core.NewVec3(10, -5, 2)))
	n := core.NewVec3(0, 1, 0)
	got := transform.ToWorldNormal(n)
	if !got.Equals(n) {
		t.Errorf("a pure translation should not affect normals, got %v", got)
	}
}

func TestTransformNormalUnderNonUniformScale(t *testing.T) {
	transform := NewTransform(core.Scaling(core.NewVec3(2, 1, 1)))
	// Tangent direction along the stretched axis.
	tangent := core.NewVec3(1, 0, 0)
	normal := core.NewVec3(0, 1, 0)

	worldTangent := transform.ToWorldDirection(tangent)
	worldNormal := transform.ToWorldNormal(normal)

	if math.Abs(worldTangent.Dot(worldNormal)) > 1e-9 {
		t.Errorf("normal must stay perpendicular to the transformed tangent, got dot=%v", worldTangent.Dot(worldNormal))
	}
	if !worldNormal.IsNormalized() {
		t.Error("ToWorldNormal must return a unit vector")
	}
}

func TestComposeOrdersLeftToRight(t *testing.T) {
	translate := core.Translation(core.NewVec3(5, 0, 0))
	scale := core.Scaling(core.NewVec3(2, 2, 2))

	// "translate scale" should read as translate(scale(p)): scale first,
	// then translate.
	composed := Compose(translate, scale)
	p := core.NewVec3(1, 0, 0)
	got := composed.ToWorldPoint(p)
	want := core.NewVec3(7, 0, 0) // (1*2) + 5
	if !got.Equals(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIdentityTransformIsNoOp(t *testing.T) {
	id := Identity()
	p := core.NewVec3(3, 4, 5)
	if !id.ToWorldPoint(p).Equals(p) {
		t.Error("identity transform must not move points")
	}
}
