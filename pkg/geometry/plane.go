package geometry

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
)

// planeExtent bounds an otherwise-infinite plane for BVH purposes; the
// BVH's finite-world-bounds computation (pkg/core) already ignores
// shapes whose extent exceeds 1e5, so a plane this large behaves as
// "infinite" for every other purpose while still returning a valid
// (if enormous) BBox.
const planeExtent = 1e6

// Plane is an infinite flat primitive defined by a point and a unit
// normal.
type Plane struct {
	Point  core.Vec3
	Normal core.Vec3

	MaterialIndex int
	TextureIndex  int

	Transform *Transform
}

// NewPlane creates a plane through point with the given normal.
func NewPlane(point, normal core.Vec3, materialIndex int) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize(), MaterialIndex: materialIndex, TextureIndex: -1}
}

// Intersect implements core.Shape for Plane: solve (p - p0).n = 0 for
// t, missing when the ray is (near) parallel to the plane.
func (pl *Plane) Intersect(ray core.Ray, tInterval core.Interval, _ []core.Vec3) (*core.HitRecord, bool) {
	localRay := ray
	if pl.Transform != nil {
		localRay = core.NewRay(pl.Transform.ToObjectPoint(ray.Origin), pl.Transform.ToObjectDirection(ray.Direction))
	}

	denom := localRay.Direction.Dot(pl.Normal)
	if math.Abs(denom) < tInterval.Min {
		return nil, false
	}

	t := pl.Point.Subtract(localRay.Origin).Dot(pl.Normal) / denom
	if !tInterval.Contains(t) {
		return nil, false
	}

	pointLocal := localRay.At(t)
	hit := &core.HitRecord{T: t, MaterialIndex: pl.MaterialIndex, TextureIndex: pl.TextureIndex}

	var worldPoint, worldNormal core.Vec3
	if pl.Transform != nil {
		worldPoint = pl.Transform.ToWorldPoint(pointLocal)
		worldNormal = pl.Transform.ToWorldNormal(pl.Normal)
	} else {
		worldPoint = pointLocal
		worldNormal = pl.Normal
	}
	hit.Point = worldPoint
	hit.EntryPoint = ray.Origin
	hit.SetFaceNormal(ray, worldNormal)
	return hit, true
}

// BoundingBox implements core.Shape for Plane, returning a very large
// but finite box (see planeExtent).
func (pl *Plane) BoundingBox(_ []core.Vec3, applyTransform bool) core.BBox {
	ext := core.NewVec3(planeExtent, planeExtent, planeExtent)
	box := core.BBox{Min: pl.Point.Subtract(ext), Max: pl.Point.Add(ext)}
	if applyTransform && pl.Transform != nil {
		box = box.Transform(pl.Transform.Forward)
	}
	return box
}
