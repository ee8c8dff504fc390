package geometry

import "github.com/prism-render/prism/pkg/core"

// Triangle is a single triangle referencing three positions in the
// scene's shared vertex cache by index. Optional per-vertex normals
// back smooth shading; optional per-vertex UVs back texture sampling.
type Triangle struct {
	V0, V1, V2 int // 1-based indices into the shared vertex cache

	MaterialIndex int
	TextureIndex  int // -1 if untextured

	GeometricNormal core.Vec3

	Smooth     bool // interpolate vertex normals instead of using GeometricNormal
	N0, N1, N2 core.Vec3

	HasUV          bool
	UV0, UV1, UV2  core.Vec2

	Transform *Transform // nil for an untransformed triangle (the common case for loose mesh triangles already in world space)
}

// NewTriangle computes the geometric normal of a counter-clockwise
// (v1, v2, v3) triangle: normalize((v3-v2) x (v1-v2)).
func NewTriangle(vertices []core.Vec3, v0, v1, v2, materialIndex int) *Triangle {
	p0, p1, p2 := vertices[v0], vertices[v1], vertices[v2]
	normal := p2.Subtract(p1).Cross(p0.Subtract(p1)).Normalize()
	return &Triangle{
		V0: v0, V1: v1, V2: v2,
		MaterialIndex:   materialIndex,
		TextureIndex:    -1,
		GeometricNormal: normal,
	}
}

// mollerTrumbore intersects a ray against the triangle (a, b, c):
// edges taken from the pivot a, the epsilon test folded into the
// caller-supplied tInterval.Min rather than a separate slab.
func mollerTrumbore(ray core.Ray, a, b, c core.Vec3, tInterval core.Interval) (u, v, t float64, ok bool) {
	edgeAB := b.Subtract(a)
	edgeAC := c.Subtract(a)
	p := ray.Direction.Cross(edgeAC)
	det := p.Dot(edgeAB)
	if det > -tInterval.Min && det < tInterval.Min {
		return 0, 0, 0, false
	}
	inv := 1.0 / det
	dist := ray.Origin.Subtract(a)
	u = dist.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}
	q := dist.Cross(edgeAB)
	v = ray.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}
	t = edgeAC.Dot(q) * inv
	if !tInterval.Contains(t) {
		return 0, 0, 0, false
	}
	return u, v, t, true
}

// Intersect implements core.Shape for Triangle.
func (tri *Triangle) Intersect(ray core.Ray, tInterval core.Interval, vertices []core.Vec3) (*core.HitRecord, bool) {
	localRay := ray
	if tri.Transform != nil {
		localRay = core.NewRay(tri.Transform.ToObjectPoint(ray.Origin), tri.Transform.ToObjectDirection(ray.Direction))
	}

	p0, p1, p2 := vertices[tri.V0], vertices[tri.V1], vertices[tri.V2]
	u, v, t, ok := mollerTrumbore(localRay, p0, p1, p2, tInterval)
	if !ok {
		return nil, false
	}
	w := 1 - u - v

	var normal core.Vec3
	if tri.Smooth {
		normal = tri.N0.Multiply(w).Add(tri.N1.Multiply(u)).Add(tri.N2.Multiply(v)).Normalize()
	} else {
		normal = tri.GeometricNormal
	}

	hitPointLocal := localRay.At(t)
	hit := &core.HitRecord{
		T:             t,
		MaterialIndex: tri.MaterialIndex,
		TextureIndex:  tri.TextureIndex,
	}

	if tri.Transform != nil {
		hit.Point = tri.Transform.ToWorldPoint(hitPointLocal)
		normal = tri.Transform.ToWorldNormal(normal)
	} else {
		hit.Point = hitPointLocal
	}
	hit.EntryPoint = ray.Origin
	hit.SetFaceNormal(ray, normal)

	if tri.HasUV {
		hit.HasUV = true
		hit.UV = core.Vec2{
			X: tri.UV0.X*w + tri.UV1.X*u + tri.UV2.X*v,
			Y: tri.UV0.Y*w + tri.UV1.Y*u + tri.UV2.Y*v,
		}
	}

	return hit, true
}

// BoundingBox implements core.Shape for Triangle.
func (tri *Triangle) BoundingBox(vertices []core.Vec3, applyTransform bool) core.BBox {
	p0, p1, p2 := vertices[tri.V0], vertices[tri.V1], vertices[tri.V2]
	box := core.NewBBoxFromPoints(p0, p1, p2)
	if applyTransform && tri.Transform != nil {
		box = box.Transform(tri.Transform.Forward)
	}
	return box
}
