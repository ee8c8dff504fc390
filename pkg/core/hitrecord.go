package core

// HitRecord describes a ray/primitive intersection.
// Optional fields are zero-valued when not applicable to the
// primitive that produced the hit; HasUV/HasTangentBasis/IsEmissive
// flag which of them are meaningful.
type HitRecord struct {
	EntryPoint Vec3 // ray origin at the time of the intersection test
	Point      Vec3 // world-space hit point, ray.At(T)
	Normal     Vec3 // unit shading normal
	FrontFace  bool // dir . geometric_normal <= 0

	T float64 // ray parameter of the hit

	MaterialIndex int
	TextureIndex  int // -1 when the hit surface carries no texture

	HasUV bool
	UV    Vec2

	HasTangentBasis bool
	Tangent         Vec3
	Bitangent       Vec3

	IsEmissive      bool
	EmittedRadiance Vec3
	EmissiveShape   int // index into the scene's shape list, -1 if none
}

// SetFaceNormal orients outwardNormal against the ray direction and
// records whether the hit was on the front face: front-facing iff
// ray.Direction . outwardNormal <= 0.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) <= 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape is the common operation set every primitive (Triangle, Sphere,
// Plane, Mesh) exposes.
type Shape interface {
	// Intersect tests the ray against the shape, restricted to t
	// values in tInterval, given the scene's shared vertex cache.
	Intersect(ray Ray, tInterval Interval, vertices []Vec3) (*HitRecord, bool)

	// BoundingBox returns the shape's world-space bounds. When
	// applyTransform is false, callers that already incorporate a
	// transform elsewhere (e.g. per-triangle BLAS construction in
	// object space) get the untransformed bound.
	BoundingBox(vertices []Vec3, applyTransform bool) BBox
}

// Logger is the narrow logging surface kernel code (scene assembly,
// the renderer) logs warnings through, so it stays decoupled from any
// concrete logging library.
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything logged to it; used as the default
// when no logger is supplied to scene assembly or the renderer.
type NopLogger struct{}

// Printf implements Logger.
func (NopLogger) Printf(string, ...interface{}) {}
