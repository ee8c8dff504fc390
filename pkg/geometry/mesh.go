package geometry

import "github.com/prism-render/prism/pkg/core"

// Mesh owns a list of Triangles that share the scene's vertex cache
// and a per-mesh BLAS built over them. Intersect transforms the ray
// into object space, traverses the BLAS, then transforms the result
// back to world space.
type Mesh struct {
	Triangles []*Triangle
	BLAS      *core.BVH

	Transform *Transform
}

// NewMesh builds a mesh's BLAS over its triangles. Triangle.Transform
// is left nil on the individual triangles -- the Mesh applies the one
// shared transform itself, so per-triangle transforms would be
// redundant and are reserved for triangles used loosely outside a
// mesh.
func NewMesh(triangles []*Triangle, vertices []core.Vec3, transform *Transform) *Mesh {
	shapes := make([]core.Shape, len(triangles))
	for i, t := range triangles {
		shapes[i] = t
	}
	return &Mesh{
		Triangles: triangles,
		BLAS:      core.NewBVH(shapes, vertices, false),
		Transform: transform,
	}
}

// Intersect implements core.Shape for Mesh.
func (m *Mesh) Intersect(ray core.Ray, tInterval core.Interval, vertices []core.Vec3) (*core.HitRecord, bool) {
	localRay := ray
	if m.Transform != nil {
		localRay = core.NewRay(m.Transform.ToObjectPoint(ray.Origin), m.Transform.ToObjectDirection(ray.Direction))
	}

	hit, ok := m.BLAS.Intersect(localRay, tInterval)
	if !ok {
		return nil, false
	}

	if m.Transform != nil {
		hit.Point = m.Transform.ToWorldPoint(hit.Point)
		hit.Normal = m.Transform.ToWorldNormal(hit.Normal)
		// SetFaceNormal already ran in object space against the
		// object-space ray; front-facing-ness is invariant under a
		// transform that doesn't flip handedness, which scene assembly
		// is expected to enforce for mesh instance transforms.
	}
	hit.EntryPoint = ray.Origin
	return hit, true
}

// BoundingBox implements core.Shape for Mesh, unioning its triangles'
// bounds and applying the instance transform for world-space queries.
func (m *Mesh) BoundingBox(vertices []core.Vec3, applyTransform bool) core.BBox {
	box := core.EmptyBBox()
	for _, t := range m.Triangles {
		box = box.Union(t.BoundingBox(vertices, false))
	}
	if applyTransform && m.Transform != nil {
		box = box.Transform(m.Transform.Forward)
	}
	return box
}
