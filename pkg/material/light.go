package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Light represents a light-emitting material
type Light struct {
	Emission core.Color // Emitted light color/intensity
}

// NewLight creates a new emissive material
func NewLight(emission core.Color) *Light {
	return &Light{Emission: emission}
}

// Scatter implements the Material interface for emissive materials.
// Lights don't scatter rays: a path that reaches one ends there.
func (l *Light) Scatter(rayIn core.Ray, point core.Point, normal core.Direction, frontFace bool, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emit returns the emitted light for this material
func (l *Light) Emit(point core.Point) core.Color {
	return l.Emission
}
