package renderer

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// WriterLogger implements core.Logger on top of any io.Writer
type WriterLogger struct {
	w io.Writer
}

func NewWriterLogger(w io.Writer) core.Logger {
	return &WriterLogger{w: w}
}

func (wl *WriterLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(wl.w, format, args...)
}

// RenderOptions configures how a full image is scheduled
type RenderOptions struct {
	TileSize     int                      // Tile edge length in pixels (0 = DefaultTileSize)
	NumWorkers   int                      // Number of parallel workers (0 = use CPU count)
	Seed         int64                    // Base seed for per-tile random sources
	Logger       core.Logger              // Optional; nil disables logging
	TileCallback func(TileCompletionInfo) // Optional; called from the render goroutine
}

// TileCompletionInfo describes progress after a tile finishes
type TileCompletionInfo struct {
	Bounds     image.Rectangle
	TileNumber int // 1-based count of completed tiles
	TotalTiles int
}

// Render renders the whole image in parallel and returns it with row 0 at the top
func (rt *Raytracer) Render(options RenderOptions) (*image.RGBA, RenderStats) {
	startTime := time.Now()

	tileSize := options.TileSize
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	img := image.NewRGBA(image.Rect(0, 0, rt.config.Width, rt.config.Height))
	tiles := NewTileGrid(rt.config.Width, rt.config.Height, tileSize, options.Seed)

	pool := NewWorkerPool(rt, img, options.NumWorkers, len(tiles))
	if options.Logger != nil {
		options.Logger.Printf("Rendering %dx%d, %d samples per pixel, max depth %d (%d tiles, %d workers)...\n",
			rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, rt.config.MaxDepth,
			len(tiles), pool.GetNumWorkers())
	}

	pool.Start()
	for taskID, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: taskID})
	}

	var stats RenderStats
	for completed := 1; completed <= len(tiles); completed++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Merge(result.Stats)

		if options.TileCallback != nil {
			options.TileCallback(TileCompletionInfo{
				Bounds:     tiles[result.TaskID].Bounds,
				TileNumber: completed,
				TotalTiles: len(tiles),
			})
		}
	}
	pool.Stop()

	stats.finalize(time.Since(startTime))

	if options.Logger != nil {
		options.Logger.Printf("Render completed in %v (%d pixels, %d samples)\n",
			stats.Elapsed, stats.TotalPixels, stats.TotalSamples)
	}

	return img, stats
}
