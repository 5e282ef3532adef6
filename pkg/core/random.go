package core

import (
	"math"
	"math/rand"
)

// RandomUnitVector returns a direction distributed uniformly on the unit sphere
func RandomUnitVector(random *rand.Rand) Direction {
	z := 1.0 - 2.0*random.Float64() // z ∈ (-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * random.Float64()
	return Direction{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
}

// RandomInUnitDisk generates a random point in the unit disk (for depth of field).
// Only X and Y are set.
func RandomInUnitDisk(random *rand.Rand) Direction {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := Direction{X: 2*random.Float64() - 1, Y: 2*random.Float64() - 1}
		// Accept if inside unit disk
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomFloat returns a uniform value in [min, max)
func RandomFloat(random *rand.Rand, min, max float64) float64 {
	return min + (max-min)*random.Float64()
}

// RandomColor returns a color with each channel uniform in [min, max)
func RandomColor(random *rand.Rand, min, max float64) Color {
	return Color{
		R: RandomFloat(random, min, max),
		G: RandomFloat(random, min, max),
		B: RandomFloat(random, min, max),
	}
}
