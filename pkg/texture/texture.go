// Package texture implements the renderer's spatially-varying color and
// bump sources -- Image, Perlin, and Checkerboard -- bound to a
// material through a decal mode that says which material channel the
// sampled value replaces.
package texture

import "github.com/prism-render/prism/pkg/core"

// Texture evaluates a color at a surface point, given both its UV
// coordinates (used by Image) and its 3D position (used by
// Checkerboard and Perlin -- both are evaluated in object space, not
// texture space).
type Texture interface {
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// DecalMode says which material channel a bound texture overrides.
type DecalMode int

const (
	ReplaceKd DecalMode = iota
	BlendKd
	ReplaceKs
	ReplaceBackground
	ReplaceNormal
	BumpNormal
	ReplaceAll
)

// Binding pairs a texture with the decal mode that says how its
// sampled value is applied at a hit point.
type Binding struct {
	Texture Texture
	Mode    DecalMode
}

// NormalPerturber is implemented by textures that can derive a
// perturbed shading normal from their height field (Image and Perlin,
// bound with BumpNormal).
type NormalPerturber interface {
	BumpNormal(hit core.HitRecord) core.Vec3
}
