package renderer

import (
	"bufio"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
)

// DefaultSeed is the base seed rows are offset from
const DefaultSeed int64 = 42

// RenderConfig contains everything a render needs besides the scene and camera
type RenderConfig struct {
	Sampling   SamplingConfig
	Seed       int64   // Row j uses Seed + j
	NumWorkers int     // Number of parallel workers (0 = use CPU count)
	Brightness float64 // Exposure multiplier (0 = 1.0)
	Label      string  // Shown by the progress reporter
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Sampling:   DefaultSamplingConfig(),
		Seed:       DefaultSeed,
		Brightness: 1.0,
	}
}

// ProgressReporter is told after every finished row.
// Implementations must return quickly and never fail the render.
type ProgressReporter interface {
	Report(done, total int, label string)
}

// nopReporter is used when no reporter is given
type nopReporter struct{}

func (nopReporter) Report(done, total int, label string) {}

// RenderImage traces every row of the image in parallel and assembles the rows in order.
// The result depends only on the scene, camera and config, never on scheduling.
func RenderImage(scene Scene, camera *Camera, config RenderConfig, progress ProgressReporter, logger core.Logger) (*image.RGBA, RenderStats) {
	if progress == nil {
		progress = nopReporter{}
	}
	if logger == nil {
		logger = NopLogger{}
	}

	raytracer := NewRaytracer(scene, camera, config.Sampling)
	if config.Brightness > 0 {
		raytracer.SetBrightness(config.Brightness)
	}

	width, height := camera.Width, camera.Height
	pool := NewWorkerPool(raytracer, height, config.NumWorkers)

	logger.Printf("Rendering %q: %dx%d, %d spp, depth %d, %d workers, seed %d\n",
		config.Label, width, height, raytracer.config.SamplesPerPixel, config.Sampling.MaxDepth,
		pool.GetNumWorkers(), config.Seed)

	startTime := time.Now()
	pool.Start()
	for j := 0; j < height; j++ {
		pool.SubmitTask(RowTask{Row: j, Seed: config.Seed + int64(j)})
	}

	// Fan-in by row index; completion order is irrelevant
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for received := 0; received < height; received++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		for i, pixel := range result.Pixels {
			img.SetRGBA(i, result.Row, pixel)
		}
		progress.Report(pool.Completed(), height, config.Label)
	}
	pool.Stop()

	stats := RenderStats{
		Width:           width,
		Height:          height,
		Rows:            height,
		SamplesPerPixel: raytracer.config.SamplesPerPixel,
		TotalSamples:    width * height * raytracer.config.SamplesPerPixel,
		Duration:        time.Since(startTime),
	}
	logger.Printf("Render completed: %s\n", stats)

	return img, stats
}

// Render renders the scene and writes it to path as a P3 PPM.
// The output file is created before tracing starts, so an unwritable path fails fast.
func Render(scene Scene, camera *Camera, path string, config RenderConfig, progress ProgressReporter, logger core.Logger) (*image.RGBA, RenderStats, error) {
	file, err := loaders.CreateOutput(path)
	if err != nil {
		return nil, RenderStats{}, err
	}
	defer file.Close()

	img, stats := RenderImage(scene, camera, config, progress, logger)

	writer := bufio.NewWriter(file)
	if err := loaders.WritePPM(writer, img); err != nil {
		return nil, stats, fmt.Errorf("write %s: %w", path, err)
	}
	if err := writer.Flush(); err != nil {
		return nil, stats, fmt.Errorf("write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return nil, stats, fmt.Errorf("close %s: %w", path, err)
	}

	return img, stats, nil
}
