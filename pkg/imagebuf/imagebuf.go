// Package imagebuf holds the row-major radiance buffer a render
// writes into and exports to disk, dispatching its encoding on the
// output path's file extension.
package imagebuf

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/prism-render/prism/pkg/core"
)

// Interpolation selects how Buffer.Sample reconstructs a value between
// texel centers.
type Interpolation int

const (
	Nearest Interpolation = iota
	Bilinear
)

// Buffer is a row-major array of linear-space radiance values.
type Buffer struct {
	Width, Height int
	Pixels        []core.Vec3
}

// New creates a zero-valued buffer of the given dimensions.
func New(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, Pixels: make([]core.Vec3, width*height)}
}

// At returns the radiance at (col, row), clamped to the buffer edges.
func (b *Buffer) At(col, row int) core.Vec3 {
	col = clampInt(col, 0, b.Width-1)
	row = clampInt(row, 0, b.Height-1)
	return b.Pixels[row*b.Width+col]
}

// Set stores the radiance at (col, row).
func (b *Buffer) Set(col, row int, c core.Vec3) {
	b.Pixels[row*b.Width+col] = c
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sample reconstructs a value at continuous texture coordinates
// (u*W, v*H), either rounding to the nearest texel or bilinearly
// blending the four enclosing texels, with edge clamping in both
// modes.
func (b *Buffer) Sample(u, v float64, mode Interpolation) core.Vec3 {
	x := u*float64(b.Width) - 0.5
	y := v*float64(b.Height) - 0.5

	if mode == Nearest {
		return b.At(int(math.Round(x)), int(math.Round(y)))
	}

	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	fx, fy := x-float64(x0), y-float64(y0)

	c00 := b.At(x0, y0)
	c10 := b.At(x0+1, y0)
	c01 := b.At(x0, y0+1)
	c11 := b.At(x0+1, y0+1)

	top := c00.Multiply(1 - fx).Add(c10.Multiply(fx))
	bottom := c01.Multiply(1 - fx).Add(c11.Multiply(fx))
	return top.Multiply(1 - fy).Add(bottom.Multiply(fy))
}

var hdrExtensions = map[string]bool{".hdr": true, ".pfm": true}

// Export writes the buffer to path, selecting LDR (PNG/JPEG, gamma
// corrected, clamped to [0,255], 8 bits per channel) or HDR (32-bit
// float, unchanged) encoding by the path's file extension.
func (b *Buffer) Export(path string) error {
	ext := strings.ToLower(filepath.Ext(path))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imagebuf: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	if hdrExtensions[ext] {
		return b.writeHDR(w)
	}
	return b.writeLDR(w, ext)
}

// writeHDR writes the buffer as a flat sequence of little-endian
// float32 triples, preceded by a width/height header -- a minimal
// unchanged-precision container when no third-party HDR codec is
// available to the build.
func (b *Buffer) writeHDR(w *bufio.Writer) error {
	header := [2]uint32{uint32(b.Width), uint32(b.Height)}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("imagebuf: write HDR header: %w", err)
	}
	for _, p := range b.Pixels {
		triple := [3]float32{float32(p.X), float32(p.Y), float32(p.Z)}
		if err := binary.Write(w, binary.LittleEndian, triple); err != nil {
			return fmt.Errorf("imagebuf: write HDR pixel: %w", err)
		}
	}
	return nil
}

func (b *Buffer) writeLDR(w *bufio.Writer, ext string) error {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			img.SetRGBA(col, row, toRGBA(b.At(col, row)))
		}
	}

	switch ext {
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	default:
		return png.Encode(w, img)
	}
}

// toRGBA gamma-corrects, clamps, and quantizes a linear radiance value
// to an 8-bit-per-channel color.
func toRGBA(c core.Vec3) color.RGBA {
	c = c.GammaCorrect(2.2).Clamp(0, 1)
	return color.RGBA{
		R: uint8(255*c.X + 0.5),
		G: uint8(255*c.Y + 0.5),
		B: uint8(255*c.Z + 0.5),
		A: 255,
	}
}
