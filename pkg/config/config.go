package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

const (
	defaultScene     = "basic"
	defaultOutputDir = "output"
)

// Config holds the render settings that are not part of a scene.
// Zero sampling fields and width defer to the scene's own recommendation.
type Config struct {
	Scene           string   `json:"scene"`
	Width           int      `json:"width"`
	SamplesPerPixel int      `json:"samples_per_pixel"`
	MaxDepth        int      `json:"max_depth"`
	Seed            int64    `json:"seed"` // 0 = renderer.DefaultSeed
	Workers         int      `json:"workers"`
	OutputDir       string   `json:"output_dir"`
	Brightness      float64  `json:"brightness"`
	Exports         []string `json:"exports"`   // extra formats written next to the PPM
	Thumbnail       int      `json:"thumbnail"` // longest side of a PNG preview, 0 = none
}

// Flags holds CLI flag values that override config file settings
type Flags struct {
	Scene      string
	Width      int
	Samples    int
	Depth      int
	Seed       int64
	Workers    int
	OutputDir  string
	Brightness float64
	Exports    string // comma separated
	Thumbnail  int
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI overrides and fills in defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Samples > 0 {
		c.SamplesPerPixel = flags.Samples
	}
	if flags.Depth > 0 {
		c.MaxDepth = flags.Depth
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Brightness > 0 {
		c.Brightness = flags.Brightness
	}
	if flags.Exports != "" {
		c.Exports = strings.Split(flags.Exports, ",")
	}
	if flags.Thumbnail > 0 {
		c.Thumbnail = flags.Thumbnail
	}

	if c.Scene == "" {
		c.Scene = defaultScene
	}
	if c.OutputDir == "" {
		c.OutputDir = defaultOutputDir
	}
	if c.Seed == 0 {
		c.Seed = renderer.DefaultSeed
	}
	if c.Brightness == 0 {
		c.Brightness = 1.0
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate rejects settings no render can use
func (c *Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("config: width %d must not be negative", c.Width)
	}
	if c.SamplesPerPixel < 0 {
		return fmt.Errorf("config: samples per pixel %d must not be negative", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("config: max depth %d must not be negative", c.MaxDepth)
	}
	if c.Brightness < 0 {
		return fmt.Errorf("config: brightness %g must not be negative", c.Brightness)
	}
	if c.Thumbnail < 0 {
		return fmt.Errorf("config: thumbnail size %d must not be negative", c.Thumbnail)
	}
	if _, err := c.Formats(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Formats parses the requested export formats
func (c *Config) Formats() ([]loaders.Format, error) {
	return loaders.ParseFormats(strings.Join(c.Exports, ","))
}

// RenderConfig combines these settings with a scene's recommended sampling
func (c *Config) RenderConfig(recommended renderer.SamplingConfig, label string) renderer.RenderConfig {
	sampling := recommended
	if c.SamplesPerPixel > 0 {
		sampling.SamplesPerPixel = c.SamplesPerPixel
	}
	if c.MaxDepth > 0 {
		sampling.MaxDepth = c.MaxDepth
	}

	return renderer.RenderConfig{
		Sampling:   sampling,
		Seed:       c.Seed,
		NumWorkers: c.Workers,
		Brightness: c.Brightness,
		Label:      label,
	}
}

// OutputPath is where the PPM for a scene is written
func (c *Config) OutputPath(sceneName string) string {
	return filepath.Join(c.OutputDir, sceneName+".ppm")
}
