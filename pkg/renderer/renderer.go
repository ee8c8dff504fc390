// Package renderer drives the tile-parallel render loop: it partitions
// the image into row-band tiles, dispatches one goroutine per tile
// through an errgroup, and has each worker accumulate jittered samples
// per pixel from its own independent RNG stream.
package renderer

import (
	"context"
	"math"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/prism-render/prism/pkg/camera"
	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/imagebuf"
	"github.com/prism-render/prism/pkg/integrator"
	"github.com/prism-render/prism/pkg/scene"
)

// Options configures a render pass.
type Options struct {
	Samples int // samples per pixel
	Workers int // 0 selects runtime.GOMAXPROCS
	TileRows int // rows per tile; 0 selects a default
	Seed     int64
}

// Logger is the narrow logging interface kernel and driver code share.
type Logger interface {
	Printf(format string, args ...any)
}

type tile struct {
	rowStart, rowEnd int
}

// Render rasterizes cam's view of sc using integ, splitting the image
// into row-band tiles processed concurrently. It returns as soon as
// every tile completes, or the first worker error, cancelling the
// rest via the errgroup's context.
func Render(ctx context.Context, sc *scene.Scene, cam *camera.Camera, integ integrator.Integrator, width, height int, opts Options, logger Logger) (*imagebuf.Buffer, error) {
	if opts.Samples <= 0 {
		opts.Samples = 16
	}
	if opts.TileRows <= 0 {
		opts.TileRows = 16
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	buf := imagebuf.New(width, height)
	tiles := splitRows(height, opts.TileRows)
	samplesPerAxis := camera.SamplesPerAxis(opts.Samples)

	g, gctx := errgroup.WithContext(ctx)
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(workers)

	for i, t := range tiles {
		i, t := i, t
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			rng := rand.New(rand.NewSource(opts.Seed + int64(i)))
			sampler := core.NewRandomSampler(rng)
			renderTile(sc, cam, integ, buf, t, opts.Samples, samplesPerAxis, sampler)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Printf("render complete: %dx%d, %d spp, %d tiles", width, height, opts.Samples, len(tiles))
	return buf, nil
}

func splitRows(height, tileRows int) []tile {
	var tiles []tile
	for y := 0; y < height; y += tileRows {
		end := y + tileRows
		if end > height {
			end = height
		}
		tiles = append(tiles, tile{rowStart: y, rowEnd: end})
	}
	return tiles
}

func renderTile(sc *scene.Scene, cam *camera.Camera, integ integrator.Integrator, buf *imagebuf.Buffer, t tile, numSamples, samplesPerAxis int, sampler core.Sampler) {
	n := samplesPerAxis
	for row := t.rowStart; row < t.rowEnd; row++ {
		for col := 0; col < buf.Width; col++ {
			sum := core.Vec3{}
			count := 0
			for y := 0; y < n; y++ {
				for x := 0; x < n; x++ {
					ray := cam.JitteredRay(col, row, x, y, n, sampler)
					sum = sum.Add(integ.RayColor(ray, sc, sampler))
					count++
				}
			}
			buf.Set(col, row, sum.Multiply(1/math.Max(1, float64(count))))
		}
	}
}
