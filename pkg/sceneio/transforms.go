package sceneio

import (
	"fmt"
	"math"
	"strings"

	"github.com/prism-render/prism/pkg/core"
)

// transformTable indexes every named transform field by its id token
// ("t3", "r1", "s2", "c4", ...) so a reference chain can resolve each
// token to a composed matrix.
type transformTable map[string]core.Mat4

func buildTransformTable(spec TransformationsSpec) (transformTable, error) {
	table := transformTable{}
	for _, f := range spec.Translation {
		m, err := translationMat4(f.Data)
		if err != nil {
			return nil, fmt.Errorf("translation %q: %w", f.ID, err)
		}
		table[f.ID] = m
	}
	for _, f := range spec.Scaling {
		m, err := scalingMat4(f.Data)
		if err != nil {
			return nil, fmt.Errorf("scaling %q: %w", f.ID, err)
		}
		table[f.ID] = m
	}
	for _, f := range spec.Rotation {
		m, err := rotationMat4(f.Data)
		if err != nil {
			return nil, fmt.Errorf("rotation %q: %w", f.ID, err)
		}
		table[f.ID] = m
	}
	for _, f := range spec.Composite {
		m, err := compositeMat4(f.Data)
		if err != nil {
			return nil, fmt.Errorf("composite %q: %w", f.ID, err)
		}
		table[f.ID] = m
	}
	return table, nil
}

func translationMat4(d []float64) (core.Mat4, error) {
	if len(d) < 3 {
		return core.Mat4{}, fmt.Errorf("need 3 values, got %d", len(d))
	}
	return core.Translation(core.NewVec3(d[0], d[1], d[2])), nil
}

func scalingMat4(d []float64) (core.Mat4, error) {
	if len(d) < 3 {
		return core.Mat4{}, fmt.Errorf("need 3 values, got %d", len(d))
	}
	return core.Scaling(core.NewVec3(d[0], d[1], d[2])), nil
}

// rotationMat4 reads d[0] as a rotation angle in degrees and d[1:4] as
// the rotation axis, combined via Rodrigues' rotation formula.
func rotationMat4(d []float64) (core.Mat4, error) {
	if len(d) < 4 {
		return core.Mat4{}, fmt.Errorf("need 4 values (angle, axis xyz), got %d", len(d))
	}
	angle := d[0] * math.Pi / 180
	axis := core.NewVec3(d[1], d[2], d[3]).Normalize()
	return rodrigues(axis, angle), nil
}

func rodrigues(axis core.Vec3, angle float64) core.Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	m := core.Identity4()
	m[0][0], m[0][1], m[0][2] = t*x*x+c, t*x*y-s*z, t*x*z+s*y
	m[1][0], m[1][1], m[1][2] = t*x*y+s*z, t*y*y+c, t*y*z-s*x
	m[2][0], m[2][1], m[2][2] = t*x*z-s*y, t*y*z+s*x, t*z*z+c
	return m
}

// compositeMat4 builds a matrix directly from 16 raw floats given in
// column-major order (d[0:4] is the first column, etc.), the layout a
// modeling tool typically exports a 4x4 transform in.
func compositeMat4(d []float64) (core.Mat4, error) {
	if len(d) < 16 {
		return core.Mat4{}, fmt.Errorf("need 16 values, got %d", len(d))
	}
	var m core.Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			m[row][col] = d[col*4+row]
		}
	}
	return m, nil
}

// resolve composes a whitespace-separated reference chain like
// "t3 s2 r1" into a single forward matrix, applying each token
// left to right: Forward = M(tok[0]) * M(tok[1]) * ...
func (table transformTable) resolve(chain string) (core.Mat4, error) {
	chain = strings.TrimSpace(chain)
	if chain == "" {
		return core.Identity4(), nil
	}
	forward := core.Identity4()
	first := true
	for _, tok := range strings.Fields(chain) {
		m, ok := table[tok]
		if !ok {
			return core.Mat4{}, fmt.Errorf("unknown transform reference %q", tok)
		}
		if first {
			forward = m
			first = false
			continue
		}
		forward = forward.Mul(m)
	}
	return forward, nil
}
