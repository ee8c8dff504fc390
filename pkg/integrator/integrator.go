// Package integrator implements the renderer's two light-transport
// algorithms: Whitted, a deterministic recursive estimator driven by
// each material's Interact, and PathTracer, a stochastic Monte-Carlo
// estimator driven by Scatter with next-event estimation and Russian
// roulette termination.
package integrator

import (
	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/scene"
)

// Integrator computes the radiance arriving along a camera ray.
type Integrator interface {
	RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3
}
