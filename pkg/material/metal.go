package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Color // Metal color
	Fuzzness float64    // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Color, fuzzness float64) *Metal {
	return &Metal{Albedo: albedo, Fuzzness: core.UnitInterval.Clamp(fuzzness)}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, point core.Point, normal core.Direction, frontFace bool, random *rand.Rand) (ScatterResult, bool) {
	// Calculate perfect reflection direction
	reflected := rayIn.Direction.Normalize().Reflect(normal)

	// Add fuzziness by perturbing the reflection direction
	if m.Fuzzness > 0 {
		reflected = reflected.Add(core.RandomUnitVector(random).Multiply(m.Fuzzness))
	}

	if reflected.NearZero() {
		reflected = normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(point, reflected),
		Attenuation: m.Albedo,
	}, true
}
