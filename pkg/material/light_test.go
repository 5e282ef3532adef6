package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLight_EmitsAndAbsorbs(t *testing.T) {
	emission := core.NewColor(4, 4, 4)
	light := NewLight(emission)
	random := rand.New(rand.NewSource(42))
	ray := core.NewRay(core.NewPoint(0, 1, 0), core.NewDirection(0, -1, 0))

	if _, didScatter := light.Scatter(ray, core.Origin, core.NewDirection(0, 1, 0), true, random); didScatter {
		t.Error("Light should not scatter")
	}
	if got := light.Emit(core.Origin); got != emission {
		t.Errorf("Expected emission %v, got %v", emission, got)
	}
}

func TestEmitted(t *testing.T) {
	tests := []struct {
		name     string
		material Material
		expected core.Color
	}{
		{"light", NewLight(core.NewColor(1, 2, 3)), core.NewColor(1, 2, 3)},
		{"lambertian", NewLambertian(core.White), core.Black},
		{"glass", NewDielectric(1.5), core.Black},
		{"mix with light", NewMix(NewLight(core.NewColor(4, 4, 4)), NewLambertian(core.White), 0.25), core.NewColor(3, 3, 3)},
		{"mix without light", NewMix(NewLambertian(core.White), NewDielectric(1.5), 0.5), core.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Emitted(tt.material, core.Origin); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestIsotropic_ScattersUnitDirections(t *testing.T) {
	albedo := core.NewColor(0.2, 0.4, 0.6)
	iso := NewIsotropic(albedo)
	random := rand.New(rand.NewSource(5))
	ray := core.NewRay(core.Origin, core.NewDirection(1, 0, 0))

	for i := 0; i < 100; i++ {
		scatter, didScatter := iso.Scatter(ray, core.Origin, core.NewDirection(1, 0, 0), true, random)
		if !didScatter {
			t.Fatal("Isotropic should always scatter")
		}
		if scatter.Attenuation != albedo {
			t.Errorf("Expected %v, got %v", albedo, scatter.Attenuation)
		}
		if l := scatter.Scattered.Direction.Length(); l < 1-1e-9 || l > 1+1e-9 {
			t.Errorf("Expected unit direction, got length %v", l)
		}
	}
}

func TestMix_Ratio(t *testing.T) {
	red := NewLambertian(core.NewColor(1, 0, 0))
	blue := NewLambertian(core.NewColor(0, 0, 1))
	random := rand.New(rand.NewSource(42))
	ray := core.NewRay(core.NewPoint(0, 1, 0), core.NewDirection(0, -1, 0))
	normal := core.NewDirection(0, 1, 0)

	tests := []struct {
		ratio    float64
		expected core.Color
	}{
		{0.0, core.NewColor(1, 0, 0)},
		{1.0, core.NewColor(0, 0, 1)},
	}

	for _, tt := range tests {
		mix := NewMix(red, blue, tt.ratio)
		for i := 0; i < 20; i++ {
			scatter, _ := mix.Scatter(ray, core.Origin, normal, true, random)
			if scatter.Attenuation != tt.expected {
				t.Errorf("ratio %v: expected %v, got %v", tt.ratio, tt.expected, scatter.Attenuation)
			}
		}
	}
}
