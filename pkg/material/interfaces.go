package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Material interface for surfaces that can scatter rays.
// Implementations are immutable and safe to share between goroutines;
// all randomness comes from the caller's generator.
type Material interface {
	// Scatter returns the continuation ray and its attenuation,
	// or false if the ray is absorbed.
	Scatter(rayIn core.Ray, point core.Point, normal core.Direction, frontFace bool, random *rand.Rand) (ScatterResult, bool)
}

// Emitter interface for materials that emit light.
// Materials that do not implement it emit black.
type Emitter interface {
	Emit(point core.Point) core.Color
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray
	Attenuation core.Color // Color attenuation
}

// Emitted returns the emission of m at point, or black if m does not emit
func Emitted(m Material, point core.Point) core.Color {
	if emitter, ok := m.(Emitter); ok {
		return emitter.Emit(point)
	}
	return core.Black
}
