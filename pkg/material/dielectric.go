package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	// Eta is the refraction ratio applied when a ray hits the front face;
	// back-face hits use 1/Eta.
	Eta float64
}

// NewDielectric creates a new dielectric material with the given refractive index
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{Eta: refractiveIndex}
}

// RefractiveIndex returns the index the material was created with
func (d *Dielectric) RefractiveIndex() float64 {
	return d.Eta
}

// Scatter implements the Material interface for dielectric scattering.
// Glass never absorbs: the attenuation is always white.
func (d *Dielectric) Scatter(rayIn core.Ray, point core.Point, normal core.Direction, frontFace bool, random *rand.Rand) (ScatterResult, bool) {
	refractionRatio := d.Eta
	if !frontFace {
		refractionRatio = 1.0 / d.Eta
	}

	unitDirection := rayIn.Direction.Normalize()

	// Calculate the cosine of the angle between ray and normal
	cosTheta := math.Min(unitDirection.Negate().Dot(normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Check for total internal reflection
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Direction
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = unitDirection.Reflect(normal)
	} else {
		direction = unitDirection.Refract(normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRay(point, direction),
		Attenuation: core.White,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	// R0 is the reflectance at normal incidence
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
