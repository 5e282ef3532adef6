package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	Rows            int           // Rows completed
	SamplesPerPixel int           // Samples taken per pixel
	TotalSamples    int           // Total number of camera rays traced
	Duration        time.Duration // Wall time of the parallel region
}

// SamplesPerSecond returns the camera-ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%dx%d, %d spp, %d samples in %v (%.0f samples/s)",
		s.Width, s.Height, s.SamplesPerPixel, s.TotalSamples,
		s.Duration.Round(time.Millisecond), s.SamplesPerSecond())
}
