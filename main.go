package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/df07/go-sphere-raytracer/pkg/config"
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/output"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

func main() {
	if err := run(context.Background(), os.Args[1:], ".env", os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders one image as described by args and the environment, writing progress to stdout
func run(ctx context.Context, args []string, envFile string, stdout io.Writer) error {
	cfg, err := config.Load(args, envFile, stdout)
	if err != nil {
		return err
	}

	logger := renderer.NewWriterLogger(stdout)
	logger.Printf("Starting Sphere Raytracer...\n")

	selectedScene, err := scene.Create(cfg.Scene)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene (%d objects)\n", selectedScene.Name, selectedScene.GetPrimitiveCount())

	raytracer := renderer.NewRaytracer(selectedScene, renderer.SamplingConfig{
		Width:           cfg.Width,
		Height:          cfg.Height,
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
	})

	var bar *progressbar.ProgressBar
	img, stats := raytracer.Render(renderer.RenderOptions{
		TileSize:   cfg.TileSize,
		NumWorkers: cfg.Workers,
		Seed:       cfg.Seed,
		Logger:     logger,
		TileCallback: func(info renderer.TileCompletionInfo) {
			if bar == nil {
				bar = newProgressBar(stdout, info.TotalTiles)
			}
			_ = bar.Add(1)
		},
	})
	if bar != nil {
		_ = bar.Finish()
	}

	logger.Printf("Samples per pixel: %.1f across %d tiles\n", stats.AverageSamples, stats.TilesRendered)

	if err := output.Save(img, cfg.Output); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", cfg.Output)

	if cfg.Thumbnail > 0 {
		thumbPath := output.ThumbnailPath(cfg.Output)
		if err := output.Save(output.Thumbnail(img, cfg.Thumbnail), thumbPath); err != nil {
			return err
		}
		logger.Printf("Thumbnail saved as %s\n", thumbPath)
	}

	if cfg.S3.Enabled() {
		if err := upload(ctx, cfg, img, logger); err != nil {
			return err
		}
	}

	return nil
}

// upload sends the render, encoded like the saved file, to the configured bucket
func upload(ctx context.Context, cfg config.Config, img image.Image, logger core.Logger) error {
	uploader, err := output.NewS3Uploader(cfg.S3, logger)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := output.Encode(&buf, img, cfg.Output); err != nil {
		return err
	}

	_, err = uploader.Upload(ctx, cfg.Output, buf.Bytes())
	return err
}

func newProgressBar(w io.Writer, totalTiles int) *progressbar.ProgressBar {
	return progressbar.NewOptions(totalTiles,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Rendering tiles"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}
