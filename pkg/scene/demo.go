package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

const (
	cubesOrientationSeed = 7
	smokeOrientationSeed = 11
	swarmSeed            = 12345
)

// closeUpCamera frames a single object a few units in front of the camera
func closeUpCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewPoint(0, 0.2, 4),
		LookAt:        core.NewPoint(0, 0, -1),
		Up:            core.NewDirection(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		FocusDistance: 10,
	}
}

// wideCamera looks at the hazy sphere row from far away
func wideCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewPoint(0, 1, 24),
		LookAt:        core.NewPoint(0, 2, -1),
		Up:            core.NewDirection(0, 1, 0),
		Width:         400,
		AspectRatio:   4.0 / 3.0,
		VFov:          20,
		FocusDistance: 10,
	}
}

// duskSky fades from a warm horizon to a deep blue zenith
func duskSky() renderer.BackgroundFunc {
	return GradientSky(core.NewColor(0.8, 0.6, 0.4), core.NewColor(0.2, 0.3, 0.5))
}

// NewBasicScene creates one diffuse sphere standing on a ground plane
func NewBasicScene() *Scene {
	ground := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	ball := material.NewLambertian(core.NewColor(0.8, 0.4, 0.4))

	world := geometry.NewHittableList(
		must(geometry.NewPlane(core.NewPoint(0, -0.5, 0), core.NewDirection(0, 1, 0), ground)),
		must(geometry.NewSphere(core.NewPoint(0, 0, -2.5), 0.5, ball)),
	)

	return &Scene{
		Name:         "basic",
		World:        world,
		CameraConfig: closeUpCamera(),
		Background:   SolidSky(core.NewColor(0.8, 0.8, 0.9)),
		Sampling:     renderer.DefaultSamplingConfig(),
	}
}

// NewSmokeScene creates a red smoke sphere next to a small tilted cube of green smoke
func NewSmokeScene() *Scene {
	ground := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	orientation := core.RandomBasis(rand.New(rand.NewSource(smokeOrientationSeed)))

	sphere := must(geometry.NewSphere(core.NewPoint(0, 0, -2.5), 0.5, ground))
	cube := must(geometry.NewOrientedCube(core.NewPoint(-0.5, 0.5, -4), 0.3, orientation, ground))

	world := geometry.NewHittableList(
		must(geometry.NewPlane(core.NewPoint(0, -0.5, 0), core.NewDirection(0, 1, 0), ground)),
		must(geometry.NewSmoke(sphere, 0.8, core.NewColor(0.8, 0.1, 0.1))),
		must(geometry.NewSmoke(cube, 0.999, core.NewColor(0.1, 0.8, 0.1))),
	)

	return &Scene{
		Name:         "smoke",
		World:        world,
		CameraConfig: closeUpCamera(),
		Background:   SolidSky(core.NewColor(0.8, 0.8, 0.9)),
		Sampling:     renderer.DefaultSamplingConfig(),
	}
}

// hazyRow builds the sphere row with two concentric black haze cylinders behind it.
// The fireflies and balloons scenes add their own particles on top.
func hazyRow() *geometry.HittableList {
	black := material.NewLambertian(core.NewColor(0, 0, 0))
	red := material.NewLambertian(core.NewColor(0.8, 0.1, 0.1))
	silver := material.NewMetal(core.NewColor(0.8, 0.8, 0.8), 0.0)
	gold := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.1)
	glass := material.NewDielectric(1.5)

	base := core.NewPoint(-8, 1, -2.9)
	axis := core.NewDirection(16, 0, 0)
	outerCylinder := must(geometry.NewSolidCylinder(base, axis, 0.5, black))
	innerCylinder := must(geometry.NewSolidCylinder(base, axis, 0.3, black))
	// The haze needs both the entry and the exit crossing of each three-part boundary
	outer := geometry.NewSortedHittableList(outerCylinder.Tube, outerCylinder.Top, outerCylinder.Bottom)
	inner := geometry.NewSortedHittableList(innerCylinder.Tube, innerCylinder.Top, innerCylinder.Bottom)

	return geometry.NewHittableList(
		must(geometry.NewPlane(core.NewPoint(0, -0.5, 0), core.NewDirection(0, 1, 0), black)),
		must(geometry.NewSphere(core.NewPoint(0, 0, -2.5), 0.5, red)),
		must(geometry.NewSphere(core.NewPoint(-0.5, 0, -3), 0.5, silver)),
		must(geometry.NewSphere(core.NewPoint(1, 0, -1.5), 0.5, gold)),
		must(geometry.NewSphere(core.NewPoint(1.3, 0, -0.5), 0.5, glass)),
		must(geometry.NewSmoke(outer, 0.3, core.Black)),
		must(geometry.NewSmoke(inner, 0.5, core.Black)),
	)
}

// NewFirefliesScene creates the hazy sphere row lit by a glowing orb and a cloud of tiny bright particles
func NewFirefliesScene() *Scene {
	glow := core.NewColor(4, 0.5, 0)
	world := hazyRow()
	world.Add(
		must(geometry.NewSphere(core.NewPoint(0, 1.5, -3), 0.4, material.NewLight(glow))),
		must(geometry.NewSwarm(core.Origin, 16, 0.1, material.NewLambertian(glow), 1000, 2, swarmSeed)),
	)

	return &Scene{
		Name:         "fireflies",
		World:        world,
		CameraConfig: wideCamera(),
		Background:   duskSky(),
		Sampling:     renderer.DefaultSamplingConfig(),
	}
}

// NewBalloonsScene creates the hazy sphere row under a loose cloud of particles floating above it
func NewBalloonsScene() *Scene {
	world := hazyRow()
	world.Add(
		must(geometry.NewSwarm(core.NewPoint(0, 5, -3), 16, 0.1,
			material.NewLambertian(core.NewColor(4, 0.5, 0)), 180, 2, swarmSeed)),
	)

	return &Scene{
		Name:         "balloons",
		World:        world,
		CameraConfig: wideCamera(),
		Background:   duskSky(),
		Sampling:     renderer.DefaultSamplingConfig(),
	}
}

// NewCubesScene creates nested tilted glass cubes with a metal core, next to a metal cube and sphere
func NewCubesScene() *Scene {
	water := material.NewDielectric(1.33)
	blueMetal := material.NewMetal(core.NewColor(0.1, 0.2, 0.5), 0.5)
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.1)

	random := rand.New(rand.NewSource(cubesOrientationSeed))
	nested := core.RandomBasis(random)
	tilted := core.RandomBasis(random)
	center := core.NewPoint(0, 0, -1)

	world := geometry.NewHittableList(
		must(geometry.NewSphere(core.NewPoint(0, -100.5, -1), 100, water)),
		must(geometry.NewOrientedCube(center, 0.3, nested, glass)),
		must(geometry.NewOrientedCube(center, 0.2, nested, glass)),
		must(geometry.NewOrientedCube(center, 0.1, nested, gold)),
		must(geometry.NewOrientedCube(core.NewPoint(-1, 0, -1), 0.2, tilted, blueMetal)),
		must(geometry.NewSphere(core.NewPoint(1, 0, -1), 0.5, gold)),
	)

	return &Scene{
		Name:  "cubes",
		World: world,
		CameraConfig: renderer.CameraConfig{
			Center:        core.NewPoint(0, 6, 9),
			LookAt:        core.NewPoint(0, 0, -1),
			Up:            core.NewDirection(0, 1, 0),
			Width:         400,
			AspectRatio:   4.0 / 3.0,
			VFov:          30,
			FocusDistance: 10,
		},
		Background: GradientSky(core.NewColor(1, 1, 1), core.NewColor(0.5, 0.7, 1.0)),
		Sampling:   renderer.DefaultSamplingConfig(),
	}
}

// NewCylindersScene creates capped and open cylinders, a disk and a quad around a sunset-lit orb
func NewCylindersScene() *Scene {
	ground := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	red := material.NewLambertian(core.NewColor(0.8, 0.2, 0.2))
	blue := material.NewLambertian(core.NewColor(0.2, 0.2, 0.8))
	gold := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.1)
	glass := material.NewDielectric(1.5)
	satin := material.NewMix(red, gold, 0.3)
	checker := material.NewTexturedLambertian(
		material.NewChecker(0.5, core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.2, 0.3, 0.1)))

	world := geometry.NewHittableList(
		must(geometry.NewPlaneFromSpan(core.NewPoint(0, -0.01, 0), core.NewDirection(0, 0, 1), core.NewDirection(1, 0, 0), checker)),
		// Upright, different cap colors
		must(geometry.NewCylinder(core.NewPoint(1.8, 0, 0), core.NewDirection(0, 2, 0), 0.5, satin, gold, red)),
		// Lying along X
		must(geometry.NewSolidCylinder(core.NewPoint(-2.5, 0.3, 0), core.NewDirection(1.2, 0, 0), 0.3, blue)),
		// Open tube tilted toward the camera
		must(geometry.NewTube(core.NewPoint(-0.3, 1.0, -1.5), core.NewDirection(0.3, 0.2, 3.5), 0.35, gold)),
		must(geometry.NewSphere(core.NewPoint(0, 0.5, 0.8), 0.5, glass)),
		must(geometry.NewDisk(core.NewPoint(0, 0.01, 0.8), core.NewDirection(0, 1, 0), 0.9, ground)),
		must(geometry.NewQuad(core.NewPoint(-3, 0, -3), core.NewDirection(6, 0, 0), core.NewDirection(0, 3, 0), ground)),
		must(geometry.NewSphere(core.NewPoint(0, 3.5, 1.5), 0.4, material.NewLight(core.NewColor(4, 3, 2)))),
	)

	return &Scene{
		Name:  "cylinders",
		World: world,
		CameraConfig: renderer.CameraConfig{
			Center:      core.NewPoint(0, 1.5, 6),
			LookAt:      core.NewPoint(0, 1, 0),
			Up:          core.NewDirection(0, 1, 0),
			Width:       400,
			AspectRatio: 16.0 / 9.0,
			VFov:        50,
		},
		Background: GradientSky(core.NewColor(0.7, 0.5, 0.0), core.NewColor(0.05, 0.05, 0.3)),
		Sampling:   renderer.DefaultSamplingConfig(),
	}
}
