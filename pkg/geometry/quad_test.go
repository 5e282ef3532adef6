package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestQuad_Hit(t *testing.T) {
	// 2x1 rectangle in the z=0 plane, lower-left corner at the origin
	quad, err := NewQuad(core.Origin, core.NewDirection(2, 0, 0), core.NewDirection(0, 1, 0), testMaterial)
	if err != nil {
		t.Fatalf("NewQuad: %v", err)
	}

	tests := []struct {
		name      string
		x, y      float64
		expectHit bool
	}{
		{"center", 1, 0.5, true},
		{"near corner", 0.01, 0.01, true},
		{"far corner", 1.99, 0.99, true},
		{"left of quad", -0.1, 0.5, false},
		{"right of quad", 2.1, 0.5, false},
		{"above quad", 1, 1.1, false},
		{"below quad", 1, -0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewPoint(tt.x, tt.y, 3), core.NewDirection(0, 0, -1))
			hit, ok := quad.Hit(ray, defaultInterval, nil)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, ok)
			}
			if ok {
				if math.Abs(hit.T-3) > 1e-9 {
					t.Errorf("Expected t=3, got %v", hit.T)
				}
				if !hit.FrontFace {
					t.Error("Expected front face hit from +z")
				}
			}
		})
	}
}

func TestQuad_SkewedEdges(t *testing.T) {
	// Parallelogram: the planar coordinates follow the edges, not the axes
	quad, err := NewQuad(core.Origin, core.NewDirection(1, 0, 0), core.NewDirection(1, 1, 0), testMaterial)
	if err != nil {
		t.Fatalf("NewQuad: %v", err)
	}

	inside := core.NewRay(core.NewPoint(1.5, 0.9, 1), core.NewDirection(0, 0, -1))
	if _, ok := quad.Hit(inside, defaultInterval, nil); !ok {
		t.Error("Expected hit inside the parallelogram")
	}

	outside := core.NewRay(core.NewPoint(0.2, 0.9, 1), core.NewDirection(0, 0, -1))
	if _, ok := quad.Hit(outside, defaultInterval, nil); ok {
		t.Error("Expected miss outside the parallelogram")
	}
}

func TestQuad_Degenerate(t *testing.T) {
	_, err := NewQuad(core.Origin, core.NewDirection(1, 1, 0), core.NewDirection(2, 2, 0), testMaterial)
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("Expected ErrDegenerate, got %v", err)
	}
}
