package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestMetal_PerfectMirror(t *testing.T) {
	metal := NewMetal(core.NewColor(0.8, 0.8, 0.8), 0.0)
	random := rand.New(rand.NewSource(42))

	normal := core.NewDirection(0, 1, 0)
	ray := core.NewRay(core.NewPoint(-1, 1, 0), core.NewDirection(1, -1, 0))

	scatter, didScatter := metal.Scatter(ray, core.Origin, normal, true, random)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := core.NewDirection(1, 1, 0).Normalize()
	if !scatter.Scattered.Direction.ApproxEqual(expected, 1e-9) {
		t.Errorf("Expected reflection %v, got %v", expected, scatter.Scattered.Direction)
	}
	if scatter.Attenuation != metal.Albedo {
		t.Errorf("Expected attenuation %v, got %v", metal.Albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzClamped(t *testing.T) {
	tests := []struct {
		fuzz     float64
		expected float64
	}{
		{-0.5, 0.0},
		{0.3, 0.3},
		{2.0, 1.0},
	}

	for _, tt := range tests {
		metal := NewMetal(core.White, tt.fuzz)
		if metal.Fuzzness != tt.expected {
			t.Errorf("NewMetal(fuzz=%v): expected fuzz %v, got %v", tt.fuzz, tt.expected, metal.Fuzzness)
		}
	}
}

func TestMetal_FuzzyReflectionStaysNearMirror(t *testing.T) {
	metal := NewMetal(core.White, 0.2)
	random := rand.New(rand.NewSource(3))
	normal := core.NewDirection(0, 1, 0)
	ray := core.NewRay(core.NewPoint(0, 1, 0), core.NewDirection(0, -1, 0))

	for i := 0; i < 200; i++ {
		scatter, didScatter := metal.Scatter(ray, core.Origin, normal, true, random)
		if !didScatter {
			t.Fatal("Metal should always scatter")
		}
		// Fuzz 0.2 bends the mirror direction (0,1,0) by at most asin(0.2)
		if scatter.Scattered.Direction.Y < 0.97 {
			t.Errorf("Fuzzy reflection %v strayed too far from the mirror direction", scatter.Scattered.Direction)
		}
	}
}
