package lights

import (
	"math"
	"testing"

	"github.com/prism-render/prism/pkg/core"
)

func TestDirectionalShadowGeometryPointsAtInfinity(t *testing.T) {
	d := NewDirectional(core.NewVec3(0, -1, 0), core.NewVec3(2, 2, 2))
	dir, dist := d.ShadowGeometry(core.NewVec3(5, 5, 5), nil)

	if !math.IsInf(dist, 1) {
		t.Errorf("distance = %v, want +Inf", dist)
	}
	want := core.NewVec3(0, 1, 0)
	if math.Abs(dir.Y-want.Y) > 1e-9 {
		t.Errorf("shadow direction = %v, want %v (opposite of travel direction)", dir, want)
	}
}

func TestDirectionalIrradianceHasNoFalloff(t *testing.T) {
	d := NewDirectional(core.NewVec3(0, -1, 0), core.NewVec3(3, 3, 3))
	near := d.Irradiance(core.Vec3{}, 1)
	far := d.Irradiance(core.Vec3{}, 1e9)
	if near != far || near != d.Radiance {
		t.Errorf("directional irradiance should equal radiance regardless of distance: near=%v far=%v", near, far)
	}
}
