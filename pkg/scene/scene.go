package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *geometry.HittableList
	CameraConfig renderer.CameraConfig
	Background   renderer.BackgroundFunc
	Sampling     renderer.SamplingConfig // Recommended sampling for this scene
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() geometry.Hittable {
	return s.World
}

// GetBackground implements renderer.Scene. A scene without a background is black.
func (s *Scene) GetBackground(ray core.Ray) core.Color {
	if s.Background == nil {
		return core.Black
	}
	return s.Background(ray)
}

// NewCamera builds the scene's camera. A positive width overrides the configured one.
func (s *Scene) NewCamera(width int) (*renderer.Camera, error) {
	config := s.CameraConfig
	if width > 0 {
		config.Width = width
	}
	camera, err := renderer.NewCamera(config)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.Name, err)
	}
	return camera, nil
}

// GradientSky blends vertically from bottom (looking straight down) to top (straight up)
func GradientSky(bottom, top core.Color) renderer.BackgroundFunc {
	return func(ray core.Ray) core.Color {
		t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
		return core.Lerp(bottom, top, t)
	}
}

// SolidSky returns the same color in every direction
func SolidSky(c core.Color) renderer.BackgroundFunc {
	return func(ray core.Ray) core.Color {
		return c
	}
}

// must unwraps a constructor result in code-built scenes, where a failure is a programming error
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
