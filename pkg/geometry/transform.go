// Package geometry implements the renderer's shapes (Triangle, Sphere,
// Plane, Mesh), their Möller-Trumbore and quadratic intersection
// kernels, and the affine transform that can be attached to any of
// them.
package geometry

import "github.com/prism-render/prism/pkg/core"

// Transform is a cached affine transform: the forward matrix plus its
// inverse and the inverse-transpose of its upper 3x3 block, so that
// object-space intersection never recomputes a matrix inverse per ray.
//
// Scene assembly resolves a named reference chain like "t3 s2 r1" into
// the single composed Forward matrix before building a Transform;
// composition order is left-to-right application of each named
// transform to the point being transformed, i.e. Forward = T3 * S2 * R1.
type Transform struct {
	Forward          core.Mat4
	inverse          core.Mat4
	inverseTranspose core.Mat3
}

// NewTransform builds a Transform from a composed forward matrix,
// precomputing the inverse and inverse-transpose once.
func NewTransform(forward core.Mat4) *Transform {
	inv, ok := forward.Inverse()
	if !ok {
		inv = core.Identity4()
	}
	return &Transform{
		Forward:          forward,
		inverse:          inv,
		inverseTranspose: forward.InverseTranspose(),
	}
}

// Identity returns the identity transform.
func Identity() *Transform {
	return NewTransform(core.Identity4())
}

// ToObjectPoint maps a world-space point into object space.
func (t *Transform) ToObjectPoint(p core.Vec3) core.Vec3 { return t.inverse.TransformPoint(p) }

// ToObjectDirection maps a world-space direction into object space
// (no renormalization: scale affects magnitude).
func (t *Transform) ToObjectDirection(d core.Vec3) core.Vec3 { return t.inverse.TransformDirection(d) }

// ToWorldPoint maps an object-space point into world space.
func (t *Transform) ToWorldPoint(p core.Vec3) core.Vec3 { return t.Forward.TransformPoint(p) }

// ToWorldDirection maps an object-space direction into world space.
func (t *Transform) ToWorldDirection(d core.Vec3) core.Vec3 { return t.Forward.TransformDirection(d) }

// ToWorldNormal maps an object-space normal into world space using the
// inverse-transpose of the upper 3x3 block, then renormalizes.
func (t *Transform) ToWorldNormal(n core.Vec3) core.Vec3 {
	return t.inverseTranspose.MulVec(n).Normalize()
}

// Compose resolves an ordered list of named transforms (each already
// built from its own token, e.g. "t3"=translation, "s2"=scale,
// "r1"=rotation) into a single composed Transform, applied
// left-to-right so the first token is the outermost (last-applied)
// transform -- matching how "t3 s2 r1" reads as "translate(scale(rotate(p)))".
func Compose(parts ...core.Mat4) *Transform {
	m := core.Identity4()
	for _, p := range parts {
		m = m.Mul(p)
	}
	return NewTransform(m)
}
