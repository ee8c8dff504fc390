package core

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add = %v, want {5 7 9}", got)
	}
	if got := a.Subtract(b); got != (Vec3{-3, -3, -3}) {
		t.Errorf("Subtract = %v, want {-3 -3 -3}", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
	if got := a.Cross(b); got != (Vec3{-3, 6, -3}) {
		t.Errorf("Cross = %v, want {-3 6 -3}", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4)
	n := v.Normalize()
	if !n.IsNormalized() {
		t.Errorf("expected normalized vector, got length %v", n.Length())
	}
	if math.Abs(n.X-0.6) > 1e-9 || math.Abs(n.Y) > 1e-9 || math.Abs(n.Z-0.8) > 1e-9 {
		t.Errorf("Normalize = %v, want {0.6 0 0.8}", n)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", z)
	}
}

func TestVec3Reflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	got := v.Reflect(n)
	want := NewVec3(1, 1, 0)
	if !got.Equals(want) {
		t.Errorf("Reflect = %v, want %v", got, want)
	}
}

func TestVec3Refract(t *testing.T) {
	// Straight-on incidence refracts straight through regardless of
	// the index ratio.
	v := NewVec3(0, -1, 0)
	n := NewVec3(0, 1, 0)
	refr, ok := v.Refract(n, 1.0/1.5)
	if !ok {
		t.Fatal("expected refraction to succeed at normal incidence")
	}
	if !refr.Normalize().Equals(v) {
		t.Errorf("Refract at normal incidence = %v, want %v", refr, v)
	}

	// Grazing incidence from the dense medium with a ratio > 1 should
	// trigger total internal reflection.
	grazing := NewVec3(0.999, -0.001, 0).Normalize()
	_, ok = grazing.Refract(n, 1.5)
	if ok {
		t.Error("expected total internal reflection at grazing angle with ratio 1.5")
	}
}

func TestONBOrthonormal(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, 0, 1),
		NewVec3(1, 1, 1).Normalize(),
	}
	for _, n := range normals {
		onb := NewONB(n)
		if !onb.U.IsNormalized() || !onb.V.IsNormalized() || !onb.N.IsNormalized() {
			t.Errorf("ONB(%v) not unit length: %+v", n, onb)
		}
		if math.Abs(onb.U.Dot(onb.V)) > 1e-9 || math.Abs(onb.U.Dot(onb.N)) > 1e-9 || math.Abs(onb.V.Dot(onb.N)) > 1e-9 {
			t.Errorf("ONB(%v) not orthogonal: %+v", n, onb)
		}
	}
}

func TestLuminance(t *testing.T) {
	white := NewVec3(1, 1, 1)
	if got := white.Luminance(); math.Abs(got-1) > 1e-9 {
		t.Errorf("Luminance(white) = %v, want 1", got)
	}
}
