package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Isotropic is the phase function of a participating medium:
// it scatters uniformly in every direction
type Isotropic struct {
	Albedo ColorSource
}

// NewIsotropic creates a new isotropic phase function with solid color
func NewIsotropic(albedo core.Color) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// Scatter implements the Material interface
func (i *Isotropic) Scatter(rayIn core.Ray, point core.Point, normal core.Direction, frontFace bool, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRay(point, core.RandomUnitVector(random)),
		Attenuation: i.Albedo.Evaluate(point),
	}, true
}
