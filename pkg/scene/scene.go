// Package scene assembles the immutable scene graph an integrator
// renders against: shapes and their shared vertex cache, the BVH built
// over them, the material/texture/light tables they reference by
// index, and the scalar limits (recursion depth, epsilons, background)
// that bound a render.
package scene

import (
	"github.com/prism-render/prism/pkg/brdf"
	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/lights"
	"github.com/prism-render/prism/pkg/material"
	"github.com/prism-render/prism/pkg/texture"
)

// Limits holds the numeric bounds and fallbacks every render needs, with
// their substituted-when-zero defaults.
type Limits struct {
	MaxRecursionDepth   int
	ShadowEpsilon       float64
	IntersectionEpsilon float64
	Background          core.Vec3
	AmbientLight        core.Vec3
}

const (
	defaultMaxRecursionDepth   = 5
	defaultShadowEpsilon       = 1e-10
	defaultIntersectionEpsilon = 1e-10
)

// ApplyDefaults substitutes the standard fallback for any zero-valued
// limit; callers should run this once during scene assembly.
func (l *Limits) ApplyDefaults() {
	if l.MaxRecursionDepth == 0 {
		l.MaxRecursionDepth = defaultMaxRecursionDepth
	}
	if l.ShadowEpsilon == 0 {
		l.ShadowEpsilon = defaultShadowEpsilon
	}
	if l.IntersectionEpsilon == 0 {
		l.IntersectionEpsilon = defaultIntersectionEpsilon
	}
}

// Scene is the immutable graph a render reads concurrently without
// locks: shapes and their vertex cache are resolved into a BVH once
// during assembly, and materials/textures/lights are referenced by the
// stable integer indices stored on each HitRecord.
type Scene struct {
	Shapes   []core.Shape
	Vertices []core.Vec3
	BVH      *core.BVH

	Materials []material.Material
	Textures  []texture.Binding // indexed by HitRecord.TextureIndex, -1 means none
	BRDFs     []brdf.BRDF       // indexed by Material.BRDFID(), empty means every material uses brdf.Default

	Lights      []lights.Light
	Environment *lights.SphericalEnvironment // infinite background light, nil if none

	Limits Limits
}

// BRDFFor resolves the evaluator a material names via BRDFID, falling
// back to brdf.Default when it names none or an out-of-range id.
func (s *Scene) BRDFFor(mat material.Material) brdf.BRDF {
	id := mat.BRDFID()
	if id == nil || *id < 0 || *id >= len(s.BRDFs) {
		return brdf.Default
	}
	return s.BRDFs[*id]
}

// Build constructs the BVH over Shapes/Vertices and runs Setup on every
// material; call once after populating the Scene's fields.
func (s *Scene) Build() {
	s.BVH = core.NewBVH(s.Shapes, s.Vertices, true)
	s.Limits.ApplyDefaults()
	for _, m := range s.Materials {
		m.Setup()
	}
}

// Hit intersects the scene's BVH, restricted to tInterval.
func (s *Scene) Hit(ray core.Ray, tInterval core.Interval) (*core.HitRecord, bool) {
	return s.BVH.Intersect(ray, tInterval)
}

// Occluded reports whether anything lies on the shadow ray within
// tInterval, early-outing on the first hit.
func (s *Scene) Occluded(ray core.Ray, tInterval core.Interval) bool {
	return s.BVH.AnyHit(ray, tInterval)
}

// Material returns the material bound to a hit, or nil if the index is
// out of range (a malformed scene description).
func (s *Scene) Material(hit *core.HitRecord) material.Material {
	if hit.MaterialIndex < 0 || hit.MaterialIndex >= len(s.Materials) {
		return nil
	}
	return s.Materials[hit.MaterialIndex]
}

// TextureBinding returns the texture bound to a hit and whether one is
// present.
func (s *Scene) TextureBinding(hit *core.HitRecord) (texture.Binding, bool) {
	if hit.TextureIndex < 0 || hit.TextureIndex >= len(s.Textures) {
		return texture.Binding{}, false
	}
	return s.Textures[hit.TextureIndex], true
}

// BackgroundAt returns the background radiance seen along ray, from
// the environment light when bound, else the flat background color.
func (s *Scene) BackgroundAt(ray core.Ray) core.Vec3 {
	if s.Environment != nil {
		return s.Environment.Emit(ray)
	}
	return s.Limits.Background
}
