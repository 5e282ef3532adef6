package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Mix represents a material that probabilistically chooses between two materials
type Mix struct {
	Material1 Material
	Material2 Material
	Ratio     float64 // 0.0 = all material1, 1.0 = all material2
}

// NewMix creates a new mix material
func NewMix(material1, material2 Material, ratio float64) *Mix {
	return &Mix{
		Material1: material1,
		Material2: material2,
		Ratio:     core.UnitInterval.Clamp(ratio),
	}
}

// Scatter implements the Material interface for mix material
func (m *Mix) Scatter(rayIn core.Ray, point core.Point, normal core.Direction, frontFace bool, random *rand.Rand) (ScatterResult, bool) {
	if random.Float64() < m.Ratio {
		return m.Material2.Scatter(rayIn, point, normal, frontFace, random)
	}
	return m.Material1.Scatter(rayIn, point, normal, frontFace, random)
}

// Emit implements Emitter, weighting each component's emission by how often it is chosen
func (m *Mix) Emit(point core.Point) core.Color {
	return core.Lerp(Emitted(m.Material1, point), Emitted(m.Material2, point), m.Ratio)
}
