// Command prism renders one scene file, or every scene file found
// recursively under a directory, to an image on disk.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prism-render/prism/internal/logging"
	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/integrator"
	"github.com/prism-render/prism/pkg/renderer"
	"github.com/prism-render/prism/pkg/sceneio"
)

type options struct {
	parseOnly bool
	out       string
	samples   int
	depth     int
	workers   int
	algorithm string
	verbose   bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "prism <scene-path-or-directory>",
		Short: "Prism renders physically-based scene descriptions offline.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.parseOnly, "parse-only", false, "parse and print scene summaries without rendering")
	flags.StringVar(&opts.out, "out", "", "output image path (single-scene mode only); defaults to the scene path with its extension replaced by .png")
	flags.IntVar(&opts.samples, "samples", 16, "samples per pixel")
	flags.IntVar(&opts.depth, "depth", 0, "max recursion depth override (0 keeps the scene file's own limit)")
	flags.IntVar(&opts.workers, "workers", 0, "worker goroutines (0 selects GOMAXPROCS)")
	flags.StringVar(&opts.algorithm, "integrator", "whitted", "rendering algorithm: \"whitted\" or \"path\"")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "human-readable development logging")

	return cmd
}

func run(ctx context.Context, path string, opts *options) error {
	logger, err := logging.New(opts.verbose)
	if err != nil {
		return fmt.Errorf("prism: build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	files, err := sceneio.DiscoverSceneFiles(path)
	if err != nil {
		return fmt.Errorf("prism: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("prism: no scene files found under %s", path)
	}
	if len(files) > 1 && opts.out != "" {
		return fmt.Errorf("prism: --out is only valid for a single scene file")
	}

	// Each scene file is isolated: a bad file is a description error
	// for that file, not a fatal process error, so the batch continues
	// past it and the accumulated failures surface as one nonzero exit.
	var failures []error
	for _, f := range files {
		if err := renderOne(ctx, f, opts, logging.KernelLogger{SugaredLogger: logger}); err != nil {
			logger.Errorf("%v", err)
			failures = append(failures, err)
		}
	}
	if len(failures) > 0 {
		return fmt.Errorf("prism: %d of %d scene file(s) failed", len(failures), len(files))
	}
	return nil
}

func renderOne(ctx context.Context, path string, opts *options, logger core.Logger) error {
	sc, cameras, err := sceneio.Load(path)
	if err != nil {
		return fmt.Errorf("prism: assemble %s: %w", path, err)
	}
	if opts.depth > 0 {
		sc.Limits.MaxRecursionDepth = opts.depth
	}

	if opts.parseOnly {
		logger.Printf("%s: %d shapes, %d materials, %d lights, %d cameras",
			path, len(sc.Shapes), len(sc.Materials), len(sc.Lights), len(cameras))
		return nil
	}
	if len(cameras) == 0 {
		return fmt.Errorf("prism: %s defines no cameras", path)
	}

	integ, err := buildIntegrator(opts.algorithm)
	if err != nil {
		return err
	}

	for i, cam := range cameras {
		outPath := outputPath(path, opts.out, i, len(cameras))
		buf, err := renderer.Render(ctx, sc, cam, integ, cam.Width(), cam.Height(),
			renderer.Options{Samples: opts.samples, Workers: opts.workers}, logger)
		if err != nil {
			return fmt.Errorf("prism: render %s: %w", path, err)
		}
		if err := buf.Export(outPath); err != nil {
			return fmt.Errorf("prism: export %s: %w", outPath, err)
		}
		logger.Printf("%s -> %s", path, outPath)
	}
	return nil
}

func buildIntegrator(name string) (integrator.Integrator, error) {
	switch name {
	case "whitted", "":
		return integrator.NewWhitted(), nil
	case "path":
		return integrator.NewPathTracer(3), nil
	default:
		return nil, fmt.Errorf("prism: unknown --integrator %q (want \"whitted\" or \"path\")", name)
	}
}

func outputPath(scenePath, explicit string, index, count int) string {
	if explicit != "" {
		return explicit
	}
	ext := filepath.Ext(scenePath)
	base := strings.TrimSuffix(scenePath, ext)
	if count > 1 {
		return fmt.Sprintf("%s.%d.png", base, index)
	}
	return base + ".png"
}
