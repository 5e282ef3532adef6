package renderer

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int  // Number of rays per pixel
	MaxDepth        int  // Maximum ray bounce depth
	DisableJitter   bool // Trace through exact pixel centers (regression tests)
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// selfIntersectionEpsilon keeps scattered rays from re-hitting their own surface
const selfIntersectionEpsilon = 0.001

// maxChannel keeps quantized channels below 256
const maxChannel = 0.999

// Scene is what the raytracer needs from a scene
type Scene interface {
	GetWorld() geometry.Hittable
	GetBackground(ray core.Ray) core.Color
}

// BackgroundFunc colors rays that escape the scene
type BackgroundFunc func(ray core.Ray) core.Color

// StaticScene pairs a world with a background
type StaticScene struct {
	World      geometry.Hittable
	Background BackgroundFunc
}

// GetWorld implements Scene
func (s *StaticScene) GetWorld() geometry.Hittable {
	return s.World
}

// GetBackground implements Scene
func (s *StaticScene) GetBackground(ray core.Ray) core.Color {
	if s.Background == nil {
		return core.Black
	}
	return s.Background(ray)
}

// Raytracer estimates pixel colors for one scene and camera.
// It holds no mutable state, so one instance serves all workers;
// each caller passes its own random generator.
type Raytracer struct {
	scene      Scene
	camera     *Camera
	config     SamplingConfig
	brightness float64
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, camera *Camera, config SamplingConfig) *Raytracer {
	if config.SamplesPerPixel <= 0 {
		config.SamplesPerPixel = 1
	}
	return &Raytracer{
		scene:      scene,
		camera:     camera,
		config:     config,
		brightness: 1.0,
	}
}

// SetBrightness sets the exposure multiplier applied before gamma encoding
func (rt *Raytracer) SetBrightness(brightness float64) {
	rt.brightness = brightness
}

// RayColor returns the radiance arriving along ray.
// An exhausted depth budget returns black even if the last surface emits.
func (rt *Raytracer) RayColor(ray core.Ray, depth int, random *rand.Rand) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Black
	}

	hit, isHit := rt.scene.GetWorld().Hit(ray, core.NewInterval(selfIntersectionEpsilon, math.Inf(1)), random)
	if !isHit {
		return rt.scene.GetBackground(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit.Point, hit.Normal, hit.FrontFace, random)
	if !didScatter {
		return material.Emitted(hit.Material, hit.Point)
	}

	return scatter.Attenuation.MultiplyColor(rt.RayColor(scatter.Scattered, depth-1, random))
}

// PixelColor returns the averaged linear color of pixel (i, j), brightness applied
func (rt *Raytracer) PixelColor(i, j int, random *rand.Rand) core.Color {
	colorAccum := core.Black
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		ray := rt.camera.GetRay(i, j, random, !rt.config.DisableJitter)
		colorAccum = colorAccum.Add(rt.RayColor(ray, rt.config.MaxDepth, random))
	}
	return colorAccum.Multiply(rt.brightness / float64(rt.config.SamplesPerPixel))
}

// RenderRow computes every pixel of image row j
func (rt *Raytracer) RenderRow(j int, random *rand.Rand) []color.RGBA {
	row := make([]color.RGBA, rt.camera.Width)
	for i := range row {
		row[i] = ToRGBA(rt.PixelColor(i, j, random))
	}
	return row
}

// ToRGBA gamma-encodes a linear color and quantizes it to 8 bits per channel
func ToRGBA(c core.Color) color.RGBA {
	encoded := c.Sqrt().Clamp(core.NewInterval(0, maxChannel))
	return color.RGBA{
		R: uint8(256 * encoded.R),
		G: uint8(256 * encoded.G),
		B: uint8(256 * encoded.B),
		A: 255,
	}
}
