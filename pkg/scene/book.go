package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// randomSpheresSeed fixes the layout of the random-spheres scene
const randomSpheresSeed = 2024

// bookSky is the white-to-blue sky of the classic book renders
func bookSky() renderer.BackgroundFunc {
	return GradientSky(core.NewColor(1, 1, 1), core.NewColor(0.5, 0.7, 1.0))
}

// NewLambertianScene creates two gray diffuse spheres: a small one resting on a huge one
func NewLambertianScene() *Scene {
	gray := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))

	world := geometry.NewHittableList(
		must(geometry.NewSphere(core.NewPoint(0, 0, -1), 0.5, gray)),
		must(geometry.NewSphere(core.NewPoint(0, -100.5, -1), 100, gray)),
	)

	return &Scene{
		Name:         "lambertian",
		World:        world,
		CameraConfig: renderer.DefaultCameraConfig(),
		Background:   bookSky(),
		Sampling:     renderer.DefaultSamplingConfig(),
	}
}

// NewGlassScene creates a diffuse sphere between a hollow glass sphere and a gold mirror
func NewGlassScene() *Scene {
	ground := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	bubble := material.NewDielectric(1.0)
	gold := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.0)

	world := geometry.NewHittableList(
		must(geometry.NewSphere(core.NewPoint(0, -100.5, -1), 100, ground)),
		must(geometry.NewSphere(core.NewPoint(0, 0, -1), 0.5, center)),
		must(geometry.NewSphere(core.NewPoint(-1, 0, -1), 0.5, glass)),
		must(geometry.NewSphere(core.NewPoint(-1, 0, -1), 0.4, bubble)),
		must(geometry.NewSphere(core.NewPoint(1, 0, -1), 0.5, gold)),
	)

	return &Scene{
		Name:         "glass",
		World:        world,
		CameraConfig: renderer.DefaultCameraConfig(),
		Background:   bookSky(),
		Sampling:     renderer.DefaultSamplingConfig(),
	}
}

// NewRandomSpheresScene creates the book cover: a field of small random spheres around three large ones
func NewRandomSpheresScene() *Scene {
	random := rand.New(rand.NewSource(randomSpheresSeed))

	world := geometry.NewHittableList(
		must(geometry.NewSphere(core.NewPoint(0, -1000, 0), 1000,
			material.NewLambertian(core.NewColor(0.5, 0.5, 0.5)))),
	)

	clearing := core.NewPoint(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewPoint(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.RandomColor(random, 0, 1).MultiplyColor(core.RandomColor(random, 0, 1))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.RandomColor(random, 0.5, 1)
				mat = material.NewMetal(albedo, core.RandomFloat(random, 0, 0.5))
			default:
				mat = material.NewDielectric(1.5)
			}
			world.Add(must(geometry.NewSphere(center, 0.2, mat)))
		}
	}

	world.Add(
		must(geometry.NewSphere(core.NewPoint(0, 1, 0), 1.0, material.NewDielectric(1.5))),
		must(geometry.NewSphere(core.NewPoint(-4, 1, 0), 1.0, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1)))),
		must(geometry.NewSphere(core.NewPoint(4, 1, 0), 1.0, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0.0))),
	)

	return &Scene{
		Name:  "random-spheres",
		World: world,
		CameraConfig: renderer.CameraConfig{
			Center:        core.NewPoint(13, 2, 3),
			LookAt:        core.NewPoint(0, 0, 0),
			Up:            core.NewDirection(0, 1, 0),
			Width:         400,
			AspectRatio:   16.0 / 9.0,
			VFov:          20,
			DefocusAngle:  0.6,
			FocusDistance: 10,
		},
		Background: bookSky(),
		Sampling: renderer.SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}
}
