package texture

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
)

// Interpolation selects how Image samples between texel centers.
type Interpolation int

const (
	Nearest Interpolation = iota
	Bilinear
)

// Image samples color from a pre-decoded 2D image pool entry.
// Normalizer divides every sampled channel before use (default 255,
// for 8-bit-per-channel source images); set it to 1 for images already
// decoded to [0,1] floats.
type Image struct {
	Width         int
	Height        int
	Pixels        []core.Vec3 // row-major, Pixels[y*Width+x], row 0 at the top
	Interpolation Interpolation
	Normalizer    float64
	BumpFactor    float64
}

// NewImage creates an Image texture with normalizer 255 (raw 8-bit
// samples) and nearest-neighbor sampling.
func NewImage(width, height int, pixels []core.Vec3) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels, Normalizer: 255, Interpolation: Nearest}
}

func (img *Image) texel(x, y int) core.Vec3 {
	if x < 0 {
		x = 0
	} else if x >= img.Width {
		x = img.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= img.Height {
		y = img.Height - 1
	}
	return img.Pixels[y*img.Width+x]
}

// sample returns the raw (un-normalized) color at image-space
// coordinates (col, row), v flipped so row 0 is the top of the image.
func (img *Image) sample(col, row float64) core.Vec3 {
	if img.Interpolation == Nearest {
		return img.texel(int(col), int(row))
	}

	x0, y0 := math.Floor(col-0.5), math.Floor(row-0.5)
	fx, fy := col-0.5-x0, row-0.5-y0

	c00 := img.texel(int(x0), int(y0))
	c10 := img.texel(int(x0)+1, int(y0))
	c01 := img.texel(int(x0), int(y0)+1)
	c11 := img.texel(int(x0)+1, int(y0)+1)

	top := c00.Multiply(1 - fx).Add(c10.Multiply(fx))
	bottom := c01.Multiply(1 - fx).Add(c11.Multiply(fx))
	return top.Multiply(1 - fy).Add(bottom.Multiply(fy))
}

// Evaluate samples the image at uv, wrapped into [0,1) and divided by
// Normalizer. V=0 is the bottom of the image, V=1 the top, matching
// conventional texture-space orientation.
func (img *Image) Evaluate(uv core.Vec2, _ core.Vec3) core.Vec3 {
	u := uv.X - math.Floor(uv.X)
	v := uv.Y - math.Floor(uv.Y)

	col := u * float64(img.Width)
	row := (1 - v) * float64(img.Height)

	normalizer := img.Normalizer
	if normalizer == 0 {
		normalizer = 1
	}
	return img.sample(col, row).Multiply(1 / normalizer)
}

func (img *Image) height(u, v float64) float64 {
	c := img.Evaluate(core.NewVec2(u, v), core.Vec3{})
	gray := (c.X + c.Y + c.Z) / 3
	bump := img.BumpFactor
	if bump == 0 {
		bump = 1
	}
	return gray * bump
}

// BumpNormal implements NormalPerturber: recovers dp/du, dp/dv from the
// hit's tangent basis, re-orthonormalizes it against the shading
// normal, finite-differences the image's luminance height field by
// 1/Width and 1/Height, and returns the resulting perturbed normal.
func (img *Image) BumpNormal(hit core.HitRecord) core.Vec3 {
	if !hit.HasTangentBasis || !hit.HasUV {
		return hit.Normal
	}

	n := hit.Normal
	dpdu, dpdv := hit.Tangent, hit.Bitangent
	if math.Abs(dpdu.Dot(dpdv)) > 1e-6 {
		dpdu = dpdu.Subtract(n.Multiply(n.Dot(dpdu))).Normalize()
		dpdv = dpdu.Cross(n)
	}
	nuv := dpdv.Cross(dpdu).Normalize()

	u, v := hit.UV.X, hit.UV.Y
	deltaU, deltaV := 1/float64(img.Width), 1/float64(img.Height)

	h := img.height(u, v)
	dhdu := (img.height(u+deltaU, v) - h) / deltaU
	dhdv := (img.height(u, v+deltaV) - h) / deltaV

	dqdu := dpdu.Add(nuv.Multiply(dhdu))
	dqdv := dpdv.Add(nuv.Multiply(dhdv))

	return dqdv.Cross(dqdu).Normalize()
}
