package geometry

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var testMaterial = material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))

var defaultInterval = core.NewInterval(0.001, math.Inf(1))

func mustSphere(t *testing.T, center core.Point, radius float64) *Sphere {
	t.Helper()
	sphere, err := NewSphere(center, radius, testMaterial)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return sphere
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := mustSphere(t, core.NewPoint(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewPoint(2, 0, 0), core.NewDirection(0, 1, 0))

	hit, isHit := sphere.Hit(ray, defaultInterval, nil)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := mustSphere(t, core.NewPoint(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Point
		rayDirection   core.Direction
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Direction
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewPoint(0, 0, 2),
			rayDirection:   core.NewDirection(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewDirection(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewPoint(0, 0, 0),
			rayDirection:   core.NewDirection(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewDirection(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, defaultInterval, nil)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !hit.Normal.ApproxEqual(tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_Exactness(t *testing.T) {
	center := core.NewPoint(1, 2, -7)
	radius := 1.5
	sphere := mustSphere(t, center, radius)

	origins := []core.Point{
		core.NewPoint(1, 2, 3),
		core.NewPoint(-8, 2, -7),
		core.NewPoint(4, 6, -7),
	}

	for _, origin := range origins {
		toCenter := center.Subtract(origin)
		ray := core.NewRay(origin, toCenter)
		hit, ok := sphere.Hit(ray, defaultInterval, nil)
		if !ok {
			t.Fatalf("Expected hit from %v", origin)
		}

		expectedT := toCenter.Length() - radius
		if math.Abs(hit.T-expectedT) > 1e-9 {
			t.Errorf("From %v: expected t=%v, got %v", origin, expectedT, hit.T)
		}

		radial := hit.Point.Subtract(center).Normalize()
		if !hit.Normal.ApproxEqual(radial, 1e-9) {
			t.Errorf("From %v: expected normal %v, got %v", origin, radial, hit.Normal)
		}
		if math.Abs(hit.Normal.Length()-1) > 1e-9 {
			t.Errorf("Expected unit normal, got length %v", hit.Normal.Length())
		}
	}
}

func TestSphere_Hit_IntervalRejectsRoots(t *testing.T) {
	sphere := mustSphere(t, core.NewPoint(0, 0, -5), 1.0)
	ray := core.NewRay(core.Origin, core.NewDirection(0, 0, -1))

	tests := []struct {
		name      string
		interval  core.Interval
		expectHit bool
		expectedT float64
	}{
		{"both roots inside", core.NewInterval(0.001, 100), true, 4},
		{"near root excluded", core.NewInterval(4.5, 100), true, 6},
		{"both roots excluded", core.NewInterval(0.001, 3), false, 0},
		{"window past the sphere", core.NewInterval(7, 100), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := sphere.Hit(ray, tt.interval, nil)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, ok)
			}
			if ok && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_Degenerate(t *testing.T) {
	for _, radius := range []float64{0, -1, 1e-10} {
		if _, err := NewSphere(core.Origin, radius, testMaterial); !errors.Is(err, ErrDegenerate) {
			t.Errorf("radius %v: expected ErrDegenerate, got %v", radius, err)
		}
	}
}

// TestFrontFaceConvention fires random rays at every primitive and checks that the
// returned normal always faces against the ray
func TestFrontFaceConvention(t *testing.T) {
	sphere := mustSphere(t, core.Origin, 1)
	plane, _ := NewPlane(core.Origin, core.NewDirection(0.3, 1, -0.2), testMaterial)
	spanPlane, _ := NewPlaneFromSpan(core.Origin, core.NewDirection(1, 0, 0), core.NewDirection(0, 0, 1), testMaterial)
	quad, _ := NewQuad(core.NewPoint(-1, -1, 0), core.NewDirection(2, 0, 0), core.NewDirection(0, 2, 0.5), testMaterial)
	disk, _ := NewDisk(core.Origin, core.NewDirection(1, 1, 0), 1.2, testMaterial)
	cube, _ := NewCube(core.Origin, 0.8, testMaterial)
	oriented, _ := NewOrientedCube(core.Origin, 0.8, core.RandomBasis(rand.New(rand.NewSource(9))), testMaterial)
	tube, _ := NewTube(core.NewPoint(0, -1, 0), core.NewDirection(0, 2, 0), 0.7, testMaterial)
	cylinder, _ := NewSolidCylinder(core.NewPoint(0, -1, 0), core.NewDirection(0.2, 2, 0), 0.7, testMaterial)
	boundary := mustSphere(t, core.Origin, 1)
	fog, _ := NewSmoke(boundary, 2.0, core.White)

	shapes := map[string]Hittable{
		"sphere":      sphere,
		"plane":       plane,
		"span plane":  spanPlane,
		"quad":        quad,
		"disk":        disk,
		"cube":        cube,
		"cube/rotate": oriented,
		"tube":        tube,
		"cylinder":    cylinder,
		"list":        NewHittableList(sphere, quad),
		"sorted list": NewSortedHittableList(cube, disk),
	}

	random := rand.New(rand.NewSource(42))
	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			hits := 0
			for i := 0; i < 2000; i++ {
				// Origins both inside and outside the shapes
				origin := core.Origin.Offset(core.RandomUnitVector(random), 3*random.Float64())
				ray := core.NewRay(origin, core.RandomUnitVector(random))
				hit, ok := shape.Hit(ray, defaultInterval, random)
				if !ok {
					continue
				}
				hits++
				if d := ray.Direction.Dot(hit.Normal); d > 1e-9 {
					t.Fatalf("Normal %v faces along ray %v (dot %v)", hit.Normal, ray.Direction, d)
				}
				if math.Abs(hit.Normal.Length()-1) > 1e-6 {
					t.Fatalf("Expected unit normal, got length %v", hit.Normal.Length())
				}
				if !hit.Point.ApproxEqual(ray.At(hit.T), 1e-9) {
					t.Fatalf("Hit point %v does not match ray.At(%v)", hit.Point, hit.T)
				}
			}
			if hits == 0 {
				t.Errorf("Expected some hits on %s", name)
			}
		})
	}

	// The medium's normal is arbitrary, but its record is always front facing
	t.Run("medium", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			ray := core.NewRay(core.NewPoint(0, 0, 5), core.NewDirection(0, 0, -1))
			if hit, ok := fog.Hit(ray, defaultInterval, random); ok && !hit.FrontFace {
				t.Fatal("Expected medium hits to be front facing")
			}
		}
	})
}
