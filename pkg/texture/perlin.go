package texture

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
)

// NoiseConversion selects how a raw Perlin sum is mapped into a usable
// noise value.
type NoiseConversion int

const (
	// Absolute takes the magnitude of the signed noise sum.
	Absolute NoiseConversion = iota
	// Linear remaps the signed noise sum from [-1,1] to [0,1].
	Linear
)

// perlinGradients is the fixed 16-entry gradient table: each lattice
// corner hashes to one of these unit-ish directions.
var perlinGradients = [16]core.Vec3{
	core.NewVec3(1, 1, 0), core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0), core.NewVec3(-1, -1, 0),
	core.NewVec3(1, 0, 1), core.NewVec3(-1, 0, 1), core.NewVec3(1, 0, -1), core.NewVec3(-1, 0, -1),
	core.NewVec3(0, 1, 1), core.NewVec3(0, -1, 1), core.NewVec3(0, 1, -1), core.NewVec3(0, -1, -1),
	core.NewVec3(1, 1, 0), core.NewVec3(-1, 1, 0), core.NewVec3(0, -1, 1), core.NewVec3(0, -1, -1),
}

// perlinPermutation is a fixed shuffle of 0..15, used to decorrelate
// the three lattice axes when hashing a corner to a gradient index.
var perlinPermutation = [16]int{8, 3, 11, 0, 15, 6, 1, 13, 4, 9, 14, 2, 7, 12, 5, 10}

func perlinHash(i, j, k int) int {
	idx := perlinPermutation[((k%16)+16)%16]
	idx = perlinPermutation[((j+idx)%16+16)%16]
	idx = perlinPermutation[((i+idx)%16+16)%16]
	return idx
}

// perlinFade is the quintic falloff weight f(x) = -6|x|^5+15|x|^4-10|x|^3+1
// for |x|<1, else 0.
func perlinFade(x float64) float64 {
	x = math.Abs(x)
	if x >= 1 {
		return 0
	}
	return -6*math.Pow(x, 5) + 15*math.Pow(x, 4) - 10*math.Pow(x, 3) + 1
}

// noise evaluates single-octave 3D gradient noise at p, converted by
// conv.
func noise(p core.Vec3, conv NoiseConversion) float64 {
	i0, j0, k0 := math.Floor(p.X), math.Floor(p.Y), math.Floor(p.Z)

	var sum float64
	for di := 0; di <= 1; di++ {
		for dj := 0; dj <= 1; dj++ {
			for dk := 0; dk <= 1; dk++ {
				i, j, k := i0+float64(di), j0+float64(dj), k0+float64(dk)
				g := perlinGradients[perlinHash(int(i), int(j), int(k))]
				d := core.NewVec3(p.X-i, p.Y-j, p.Z-k)
				sum += perlinFade(d.X) * perlinFade(d.Y) * perlinFade(d.Z) * g.Dot(d)
			}
		}
	}

	switch conv {
	case Absolute:
		return math.Abs(sum)
	default:
		return (sum + 1) / 2
	}
}

// octaves sums n_octaves of noise at p*scale, each higher octave at
// double the frequency and half the amplitude.
func octaves(n int, p core.Vec3, scale float64, conv NoiseConversion) float64 {
	var s float64
	for k := 0; k < n; k++ {
		amplify := math.Pow(2, float64(k))
		fade := math.Pow(2, -float64(k))
		s += fade * noise(p.Multiply(scale*amplify), conv)
	}
	return s
}

// Perlin is multi-octave 3D gradient noise evaluated in object space,
// turned into a grayscale color.
type Perlin struct {
	NumOctaves int
	Scale      float64
	Conversion NoiseConversion
	BumpFactor float64
}

// NewPerlin creates a Perlin texture.
func NewPerlin(numOctaves int, scale float64, conversion NoiseConversion) *Perlin {
	return &Perlin{NumOctaves: numOctaves, Scale: scale, Conversion: conversion}
}

// Evaluate implements Texture: returns a grayscale color from the
// noise value at point.
func (p *Perlin) Evaluate(_ core.Vec2, point core.Vec3) core.Vec3 {
	n := octaves(p.NumOctaves, point, p.Scale, p.Conversion)
	return core.NewVec3(n, n, n)
}

// BumpNormal implements NormalPerturber: computes the analytical noise
// gradient via epsilon-perturbed evaluations, projects out the
// component along the shading normal (the surface gradient), and
// subtracts it from the normal weighted by BumpFactor.
func (p *Perlin) BumpNormal(hit core.HitRecord) core.Vec3 {
	const epsilon = 0.001

	n := hit.Normal
	point := hit.Point
	h := octaves(p.NumOctaves, point, p.Scale, p.Conversion)

	dhdx := (octaves(p.NumOctaves, point.Add(core.NewVec3(epsilon, 0, 0)), p.Scale, p.Conversion) - h) / epsilon
	dhdy := (octaves(p.NumOctaves, point.Add(core.NewVec3(0, epsilon, 0)), p.Scale, p.Conversion) - h) / epsilon
	dhdz := (octaves(p.NumOctaves, point.Add(core.NewVec3(0, 0, epsilon)), p.Scale, p.Conversion) - h) / epsilon
	gradient := core.NewVec3(dhdx, dhdy, dhdz)

	gParallel := n.Multiply(gradient.Dot(n))
	gPerp := gradient.Subtract(gParallel)

	bump := p.BumpFactor
	if bump == 0 {
		bump = 1
	}
	return n.Subtract(gPerp.Multiply(bump)).Normalize()
}
