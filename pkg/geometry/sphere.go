package geometry

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
)

// Sphere is an analytic sphere primitive. A negative Radius describes
// the sphere's interior, used to build hollow glass shells by nesting
// two spheres of opposite sign.
type Sphere struct {
	Center core.Vec3
	Radius float64

	MaterialIndex int
	TextureIndex  int

	Transform *Transform
}

// NewSphere creates a sphere.
func NewSphere(center core.Vec3, radius float64, materialIndex int) *Sphere {
	return &Sphere{Center: center, Radius: radius, MaterialIndex: materialIndex, TextureIndex: -1}
}

// Intersect implements core.Shape for Sphere: solve
// |o + t*d - c|^2 = r^2 for the smallest t in tInterval.
func (s *Sphere) Intersect(ray core.Ray, tInterval core.Interval, _ []core.Vec3) (*core.HitRecord, bool) {
	localRay := ray
	if s.Transform != nil {
		localRay = core.NewRay(s.Transform.ToObjectPoint(ray.Origin), s.Transform.ToObjectDirection(ray.Direction))
	}

	oc := localRay.Origin.Subtract(s.Center)
	a := localRay.Direction.LengthSquared()
	halfB := oc.Dot(localRay.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius
	disc := halfB*halfB - a*c
	if disc < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(disc)

	root := (-halfB - sqrtD) / a
	if !tInterval.Contains(root) {
		root = (-halfB + sqrtD) / a
		if !tInterval.Contains(root) {
			return nil, false
		}
	}

	pointLocal := localRay.At(root)
	outwardNormal := pointLocal.Subtract(s.Center).Divide(s.Radius)

	hit := &core.HitRecord{T: root, MaterialIndex: s.MaterialIndex, TextureIndex: s.TextureIndex}
	var worldPoint, worldNormal core.Vec3
	if s.Transform != nil {
		worldPoint = s.Transform.ToWorldPoint(pointLocal)
		worldNormal = s.Transform.ToWorldNormal(outwardNormal)
	} else {
		worldPoint = pointLocal
		worldNormal = outwardNormal.Normalize()
	}
	hit.Point = worldPoint
	hit.EntryPoint = ray.Origin
	hit.SetFaceNormal(ray, worldNormal)

	// Spherical UV, used by Image/environment textures and bump maps.
	theta := math.Acos(clampAcos(-outwardNormal.Y))
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi
	hit.HasUV = true
	hit.UV = core.Vec2{X: phi / (2 * math.Pi), Y: theta / math.Pi}

	return hit, true
}

func clampAcos(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

// BoundingBox implements core.Shape for Sphere.
func (s *Sphere) BoundingBox(_ []core.Vec3, applyTransform bool) core.BBox {
	r := math.Abs(s.Radius)
	box := core.BBox{
		Min: s.Center.Subtract(core.NewVec3(r, r, r)),
		Max: s.Center.Add(core.NewVec3(r, r, r)),
	}
	if applyTransform && s.Transform != nil {
		box = box.Transform(s.Transform.Forward)
	}
	return box
}
