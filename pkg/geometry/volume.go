package geometry

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// exitEpsilon separates the boundary's exit search from its entry point
const exitEpsilon = 1e-4

// ConstantMedium is a participating medium of uniform density (fog, smoke)
// filling the inside of a closed boundary
type ConstantMedium struct {
	Boundary      Hittable
	Density       float64
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium inside boundary that scatters with the given phase function
func NewConstantMedium(boundary Hittable, density float64, phase material.Material) (*ConstantMedium, error) {
	if density <= 0 || math.IsNaN(density) {
		return nil, fmt.Errorf("medium density %g: %w", density, ErrDegenerate)
	}
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: phase,
		negInvDensity: -1.0 / density,
	}, nil
}

// NewSmoke creates a medium with an isotropic phase function of the given color
func NewSmoke(boundary Hittable, density float64, albedo core.Color) (*ConstantMedium, error) {
	return NewConstantMedium(boundary, density, material.NewIsotropic(albedo))
}

// Hit samples an exponential free-flight distance through the boundary segment
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (*HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, core.FullInterval, random)
	if !ok {
		return nil, false
	}

	exit, ok := m.Boundary.Hit(ray, core.FullInterval.WithMin(entry.T+exitEpsilon), random)
	if !ok {
		return nil, false
	}

	t1 := math.Max(entry.T, rayT.Min)
	t2 := math.Min(exit.T, rayT.Max)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	insideDistance := (t2 - t1) * rayLength

	// U in (0, 1] keeps the logarithm finite
	hitDistance := m.negInvDensity * math.Log(1-random.Float64())
	if hitDistance > insideDistance {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &HitRecord{
		T:     t,
		Point: ray.At(t),
		// Arbitrary: isotropic scattering ignores the normal
		Normal:    core.NewDirection(1, 0, 0),
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}
