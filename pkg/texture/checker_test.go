package texture

import (
	"testing"

	"github.com/prism-render/prism/pkg/core"
)

func TestCheckerboardAlternatesAcrossCellBoundary(t *testing.T) {
	black, white := core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)
	c := NewCheckerboard(1, 0, black, white)

	a := c.Evaluate(core.Vec2{}, core.NewVec3(0.2, 0.2, 0.2))
	b := c.Evaluate(core.Vec2{}, core.NewVec3(1.2, 0.2, 0.2))
	if a == b {
		t.Error("crossing one cell boundary along x should flip the checker color")
	}
}

func TestCheckerboardScaleShrinksCellSize(t *testing.T) {
	black, white := core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)
	fine := NewCheckerboard(4, 0, black, white)
	coarse := NewCheckerboard(1, 0, black, white)

	p1 := core.NewVec3(0.2, 0, 0)
	p2 := core.NewVec3(0.3, 0, 0)
	// With scale 4, 0.2 and 0.3 land in different cells (0.8 vs 1.2);
	// with scale 1 they land in the same cell.
	if fine.Evaluate(core.Vec2{}, p1) == fine.Evaluate(core.Vec2{}, p2) {
		t.Error("expected a finer scale to separate these two points into different cells")
	}
	if coarse.Evaluate(core.Vec2{}, p1) != coarse.Evaluate(core.Vec2{}, p2) {
		t.Error("expected a coarser scale to keep these two points in the same cell")
	}
}

func TestCheckerboardOffsetShiftsPattern(t *testing.T) {
	black, white := core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)
	base := NewCheckerboard(1, 0, black, white)
	shifted := NewCheckerboard(1, 0.5, black, white)

	p := core.NewVec3(0.8, 0.8, 0.8)
	if base.Evaluate(core.Vec2{}, p) == shifted.Evaluate(core.Vec2{}, p) {
		t.Error("a half-cell offset should flip the color at the same point")
	}
}
