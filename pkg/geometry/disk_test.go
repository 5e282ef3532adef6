package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDisk_Hit(t *testing.T) {
	disk, err := NewDisk(core.NewPoint(0, 1, 0), core.NewDirection(0, 1, 0), 2.0, testMaterial)
	if err != nil {
		t.Fatalf("NewDisk: %v", err)
	}

	tests := []struct {
		name          string
		origin        core.Point
		direction     core.Direction
		expectHit     bool
		expectedFront bool
	}{
		{"center from above", core.NewPoint(0, 5, 0), core.NewDirection(0, -1, 0), true, true},
		{"near rim", core.NewPoint(1.4, 5, 1.4), core.NewDirection(0, -1, 0), true, true},
		{"from below", core.NewPoint(0.5, -3, 0), core.NewDirection(0, 1, 0), true, false},
		{"outside radius", core.NewPoint(1.5, 5, 1.5), core.NewDirection(0, -1, 0), false, false},
		{"parallel", core.NewPoint(0, 1.5, 0), core.NewDirection(1, 0, 0), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			hit, ok := disk.Hit(ray, defaultInterval, nil)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, ok)
			}
			if !ok {
				return
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if math.Abs(hit.Point.Y-1) > 1e-9 {
				t.Errorf("Expected hit on the disk plane, got %v", hit.Point)
			}
		})
	}
}

func TestDisk_Degenerate(t *testing.T) {
	if _, err := NewDisk(core.Origin, core.NewDirection(0, 1, 0), 0, testMaterial); !errors.Is(err, ErrDegenerate) {
		t.Errorf("Expected ErrDegenerate for zero radius, got %v", err)
	}
	if _, err := NewDisk(core.Origin, core.Direction{}, 1, testMaterial); !errors.Is(err, ErrDegenerate) {
		t.Errorf("Expected ErrDegenerate for zero normal, got %v", err)
	}
}
