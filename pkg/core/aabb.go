package core

import "math"

// BBox is an axis-aligned bounding box.
type BBox struct {
	Min, Max Vec3
}

// NewBBox builds a BBox from three per-axis intervals.
func NewBBox(x, y, z Interval) BBox {
	return BBox{
		Min: Vec3{X: x.Min, Y: y.Min, Z: z.Min},
		Max: Vec3{X: x.Max, Y: y.Max, Z: z.Max},
	}
}

// NewBBoxFromPoints returns the smallest BBox enclosing the given
// points.
func NewBBoxFromPoints(points ...Vec3) BBox {
	if len(points) == 0 {
		return BBox{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return BBox{Min: min, Max: max}
}

// EmptyBBox returns a degenerate box that unions identity-safely with
// any other box.
func EmptyBBox() BBox {
	inf := math.Inf(1)
	return BBox{Min: Vec3{inf, inf, inf}, Max: Vec3{-inf, -inf, -inf}}
}

// Intersects tests a ray against the box with the slab method (spec
// §3: "entry t <= exit t after per-axis sort"), returning only whether
// the ray enters the box within tInterval -- not where.
func (b BBox) Intersects(ray Ray, tInterval Interval) bool {
	tMin, tMax := tInterval.Min, tInterval.Max
	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Axis(axis)
		dir := ray.Direction.Axis(axis)
		lo := b.Min.Axis(axis)
		hi := b.Max.Axis(axis)

		if math.Abs(dir) < 1e-12 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		invD := 1.0 / dir
		t1 := (lo - origin) * invD
		t2 := (hi - origin) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return false
		}
	}
	return true
}

// Union returns the smallest box enclosing both b and o.
func (b BBox) Union(o BBox) BBox {
	return BBox{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// UnionPoint returns the smallest box enclosing b and p.
func (b BBox) UnionPoint(p Vec3) BBox {
	return BBox{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Center returns the box's centroid.
func (b BBox) Center() Vec3 { return b.Min.Add(b.Max).Multiply(0.5) }

// Size returns the box's extent along each axis.
func (b BBox) Size() Vec3 { return b.Max.Subtract(b.Min) }

// SurfaceArea returns the total surface area of the box.
func (b BBox) SurfaceArea() float64 {
	s := b.Size()
	return 2.0 * (s.X*s.Y + s.Y*s.Z + s.Z*s.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the largest extent.
func (b BBox) LongestAxis() int {
	s := b.Size()
	if s.X > s.Y && s.X > s.Z {
		return 0
	}
	if s.Y > s.Z {
		return 1
	}
	return 2
}

// Valid reports whether min <= max on every axis.
func (b BBox) Valid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Expand returns the box padded by amount on every side.
func (b BBox) Expand(amount float64) BBox {
	pad := NewVec3(amount, amount, amount)
	return BBox{Min: b.Min.Subtract(pad), Max: b.Max.Add(pad)}
}

// Transform applies a 4x4 matrix to all eight corners of the box and
// returns the new axis-aligned bound (used when a Mesh's bounding box
// must account for its object-to-world transform).
func (b BBox) Transform(m Mat4) BBox {
	corners := [8]Vec3{
		{b.Min.X, b.Min.Y, b.Min.Z}, {b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z}, {b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z}, {b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z}, {b.Max.X, b.Max.Y, b.Max.Z},
	}
	out := EmptyBBox()
	for _, c := range corners {
		out = out.UnionPoint(m.TransformPoint(c))
	}
	return out
}
