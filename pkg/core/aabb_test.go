package core

import "testing"

func TestBBoxIntersects(t *testing.T) {
	box := BBox{Min: NewVec3(-1, -1, -1), Max: NewVec3(1, 1, 1)}

	hit := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))
	if !box.Intersects(hit, PositiveInterval(1e-8)) {
		t.Error("expected ray through the box center to hit")
	}

	miss := NewRay(NewVec3(5, 5, -5), NewVec3(0, 0, 1))
	if box.Intersects(miss, PositiveInterval(1e-8)) {
		t.Error("expected parallel ray well outside the box to miss")
	}
}

func TestBBoxUnionAndCenter(t *testing.T) {
	a := BBox{Min: NewVec3(0, 0, 0), Max: NewVec3(1, 1, 1)}
	b := BBox{Min: NewVec3(2, 2, 2), Max: NewVec3(3, 3, 3)}
	u := a.Union(b)
	if u.Min != (Vec3{0, 0, 0}) || u.Max != (Vec3{3, 3, 3}) {
		t.Errorf("Union = %+v, want [0,0,0]-[3,3,3]", u)
	}
	if c := u.Center(); c != (Vec3{1.5, 1.5, 1.5}) {
		t.Errorf("Center = %v, want {1.5 1.5 1.5}", c)
	}
}

func TestBBoxLongestAxis(t *testing.T) {
	box := BBox{Min: NewVec3(0, 0, 0), Max: NewVec3(10, 1, 2)}
	if axis := box.LongestAxis(); axis != 0 {
		t.Errorf("LongestAxis = %d, want 0", axis)
	}
}

func TestBBoxTransform(t *testing.T) {
	box := BBox{Min: NewVec3(-1, -1, -1), Max: NewVec3(1, 1, 1)}
	m := Translation(NewVec3(5, 0, 0))
	moved := box.Transform(m)
	if moved.Min != (Vec3{4, -1, -1}) || moved.Max != (Vec3{6, 1, 1}) {
		t.Errorf("Transform = %+v, want shifted by +5 on X", moved)
	}
}
