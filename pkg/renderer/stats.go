package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	TilesRendered  int           // Number of tiles completed
	Elapsed        time.Duration // Wall-clock render time
}

// Merge adds the counters of other into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.TilesRendered += other.TilesRendered
}

// finalize calculates derived statistics after all pixels are rendered
func (s *RenderStats) finalize(elapsed time.Duration) {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
	s.Elapsed = elapsed
}
