package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo ColorSource // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter implements the Material interface for lambertian scattering.
// Normal plus a random unit vector gives a cosine-weighted direction,
// so the estimator weight is exactly the albedo.
func (l *Lambertian) Scatter(rayIn core.Ray, point core.Point, normal core.Direction, frontFace bool, random *rand.Rand) (ScatterResult, bool) {
	scatterDirection := normal.Add(core.RandomUnitVector(random))

	// Catch degenerate scatter direction
	if scatterDirection.NearZero() {
		scatterDirection = normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(point, scatterDirection),
		Attenuation: l.Albedo.Evaluate(point),
	}, true
}
