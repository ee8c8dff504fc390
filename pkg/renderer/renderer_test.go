package renderer

import (
	"context"
	"testing"

	"github.com/prism-render/prism/pkg/camera"
	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/geometry"
	"github.com/prism-render/prism/pkg/integrator"
	"github.com/prism-render/prism/pkg/lights"
	"github.com/prism-render/prism/pkg/material"
	"github.com/prism-render/prism/pkg/scene"
)

func straightCamera(width, height int) *camera.Camera {
	return camera.New(camera.Config{
		Position: core.Vec3{}, Gaze: core.NewVec3(0, 0, -1), Up: core.NewVec3(0, 1, 0),
		FovY: 1.0, NearDistance: 1, Width: width, Height: height, Transform: core.Identity4(),
	})
}

func TestRenderProducesFullyCoveredBuffer(t *testing.T) {
	sc := &scene.Scene{
		Shapes: []core.Shape{geometry.NewSphere(core.NewVec3(0, 0, -5), 1, 0)},
		Materials: []material.Material{
			material.NewDiffuse(material.ReflectanceParams{Diffuse: core.NewVec3(1, 1, 1)}),
		},
		Lights: []lights.Light{lights.NewPoint(core.NewVec3(0, 5, 0), core.NewVec3(50, 50, 50))},
		Limits: scene.Limits{Background: core.NewVec3(0.2, 0.2, 0.2)},
	}
	sc.Build()

	cam := straightCamera(16, 16)
	buf, err := Render(context.Background(), sc, cam, integrator.NewWhitted(), 16, 16, Options{Samples: 4, TileRows: 4}, nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if buf.Width != 16 || buf.Height != 16 {
		t.Fatalf("buffer dims = %dx%d, want 16x16", buf.Width, buf.Height)
	}

	sawBackground, sawOther := false, false
	for row := 0; row < 16; row++ {
		for col := 0; col < 16; col++ {
			c := buf.At(col, row)
			if c == sc.Limits.Background {
				sawBackground = true
			} else {
				sawOther = true
			}
		}
	}
	if !sawBackground || !sawOther {
		t.Error("expected both background pixels (miss) and lit-sphere pixels")
	}
}

func TestSplitRowsCoversEveryRowExactlyOnce(t *testing.T) {
	tiles := splitRows(37, 10)
	total := 0
	for _, tl := range tiles {
		total += tl.rowEnd - tl.rowStart
	}
	if total != 37 {
		t.Errorf("total rows covered = %d, want 37", total)
	}
	if tiles[len(tiles)-1].rowEnd != 37 {
		t.Errorf("last tile rowEnd = %d, want 37", tiles[len(tiles)-1].rowEnd)
	}
}

func TestRenderRespectsWorkerLimitWithoutDeadlock(t *testing.T) {
	sc := &scene.Scene{Limits: scene.Limits{Background: core.NewVec3(0.5, 0.5, 0.5)}}
	sc.Build()
	cam := straightCamera(8, 8)
	buf, err := Render(context.Background(), sc, cam, integrator.NewWhitted(), 8, 8, Options{Samples: 1, TileRows: 2, Workers: 1}, nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if buf.At(0, 0) != sc.Limits.Background {
		t.Errorf("miss-everywhere scene pixel = %v, want background", buf.At(0, 0))
	}
}
