package renderer

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// MockMaterial implements material.Material for testing
type MockMaterial struct {
	scatterFn func(rayIn core.Ray, point core.Point, normal core.Direction) (material.ScatterResult, bool)
}

func (m MockMaterial) Scatter(rayIn core.Ray, point core.Point, normal core.Direction, frontFace bool, random *rand.Rand) (material.ScatterResult, bool) {
	return m.scatterFn(rayIn, point, normal)
}

// MockShape implements geometry.Hittable for testing
type MockShape struct {
	hitFn func(ray core.Ray, rayT core.Interval) (*geometry.HitRecord, bool)
}

func (m MockShape) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (*geometry.HitRecord, bool) {
	return m.hitFn(ray, rayT)
}

// alwaysHit returns a shape that reports a hit at t=1 with the given material on every ray
func alwaysHit(mat material.Material) MockShape {
	return MockShape{hitFn: func(ray core.Ray, rayT core.Interval) (*geometry.HitRecord, bool) {
		hit := &geometry.HitRecord{T: 1, Point: ray.At(1), Material: mat}
		hit.SetFaceNormal(ray, ray.Direction.Negate())
		return hit, true
	}}
}

func solidBackground(c core.Color) BackgroundFunc {
	return func(core.Ray) core.Color { return c }
}

func newTestRaytracer(t *testing.T, world geometry.Hittable, background core.Color, config SamplingConfig) *Raytracer {
	t.Helper()
	camera, err := NewCamera(testCameraConfig())
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	return NewRaytracer(&StaticScene{World: world, Background: solidBackground(background)}, camera, config)
}

func TestRaytracer_MissReturnsBackground(t *testing.T) {
	background := core.NewColor(0.2, 0.4, 0.6)
	rt := newTestRaytracer(t, geometry.NewHittableList(), background, DefaultSamplingConfig())

	got := rt.RayColor(core.NewRay(core.Origin, core.NewDirection(0, 0, -1)), 10, rand.New(rand.NewSource(1)))
	if got != background {
		t.Errorf("Expected background %v, got %v", background, got)
	}
}

func TestRaytracer_DepthExhaustionIsBlack(t *testing.T) {
	light := material.NewLight(core.NewColor(5, 5, 5))
	rt := newTestRaytracer(t, alwaysHit(light), core.White, DefaultSamplingConfig())
	ray := core.NewRay(core.Origin, core.NewDirection(0, 0, -1))
	random := rand.New(rand.NewSource(1))

	if got := rt.RayColor(ray, 0, random); got != core.Black {
		t.Errorf("Expected black at depth 0, got %v", got)
	}
	// With budget left, the light is seen directly
	if got := rt.RayColor(ray, 1, random); got != light.Emission {
		t.Errorf("Expected emission %v at depth 1, got %v", light.Emission, got)
	}
}

func TestRaytracer_AttenuationChain(t *testing.T) {
	// A material that always bounces with 0.5 attenuation, over a white sky
	halving := MockMaterial{scatterFn: func(rayIn core.Ray, point core.Point, normal core.Direction) (material.ScatterResult, bool) {
		return material.ScatterResult{
			Scattered:   core.NewRay(point, rayIn.Direction),
			Attenuation: core.NewColor(0.5, 0.5, 0.5),
		}, true
	}}

	bounces := 0
	shape := MockShape{hitFn: func(ray core.Ray, rayT core.Interval) (*geometry.HitRecord, bool) {
		if bounces >= 3 {
			return nil, false
		}
		bounces++
		hit := &geometry.HitRecord{T: 1, Point: ray.At(1), Material: halving}
		hit.SetFaceNormal(ray, ray.Direction.Negate())
		return hit, true
	}}

	rt := newTestRaytracer(t, shape, core.White, DefaultSamplingConfig())
	got := rt.RayColor(core.NewRay(core.Origin, core.NewDirection(0, 0, -1)), 10, rand.New(rand.NewSource(1)))

	expected := core.NewColor(0.125, 0.125, 0.125)
	if !got.ApproxEqual(expected, 1e-12) {
		t.Errorf("Expected %v after three bounces, got %v", expected, got)
	}
}

func TestRaytracer_MirrorLoopTerminates(t *testing.T) {
	mirror := material.NewMetal(core.White, 0)
	rt := newTestRaytracer(t, alwaysHit(mirror), core.White, DefaultSamplingConfig())

	got := rt.RayColor(core.NewRay(core.Origin, core.NewDirection(0, 0, -1)), 50, rand.New(rand.NewSource(1)))
	if got != core.Black {
		t.Errorf("Expected black from an endless mirror, got %v", got)
	}
}

func TestRaytracer_IntervalExcludesSelfIntersection(t *testing.T) {
	var seen core.Interval
	shape := MockShape{hitFn: func(ray core.Ray, rayT core.Interval) (*geometry.HitRecord, bool) {
		seen = rayT
		return nil, false
	}}
	rt := newTestRaytracer(t, shape, core.White, DefaultSamplingConfig())
	rt.RayColor(core.NewRay(core.Origin, core.NewDirection(0, 0, -1)), 1, rand.New(rand.NewSource(1)))

	if seen.Min != 0.001 || !seen.Contains(1e300) {
		t.Errorf("Expected interval (0.001, +inf), got %v", seen)
	}
}

func TestRaytracer_BrightnessScalesLinearColor(t *testing.T) {
	config := SamplingConfig{SamplesPerPixel: 4, MaxDepth: 5}
	rt := newTestRaytracer(t, geometry.NewHittableList(), core.NewColor(0.1, 0.2, 0.3), config)
	rt.SetBrightness(2.0)

	got := rt.PixelColor(0, 0, rand.New(rand.NewSource(1)))
	expected := core.NewColor(0.2, 0.4, 0.6)
	if !got.ApproxEqual(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name     string
		input    core.Color
		expected color.RGBA
	}{
		{"black", core.Black, color.RGBA{0, 0, 0, 255}},
		{"white clamps below 256", core.White, color.RGBA{255, 255, 255, 255}},
		{"overexposed", core.NewColor(7, 7, 7), color.RGBA{255, 255, 255, 255}},
		{"negative", core.NewColor(-1, -1, -1), color.RGBA{0, 0, 0, 255}},
		// sqrt(0.25) = 0.5 -> 128
		{"quarter", core.NewColor(0.25, 0.25, 0.25), color.RGBA{128, 128, 128, 255}},
		// sqrt(0.0625) = 0.25 -> 64, sqrt(0.81) = 0.9 -> 230
		{"mixed", core.NewColor(0.0625, 0.81, 0), color.RGBA{64, 230, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGBA(tt.input); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
