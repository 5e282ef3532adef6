package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Checker is a procedural 3D checkerboard: space is split into cubes of
// side Scale that alternate between Even and Odd
type Checker struct {
	Scale float64
	Even  ColorSource
	Odd   ColorSource
}

// NewChecker creates a checkerboard from two solid colors
func NewChecker(scale float64, even, odd core.Color) *Checker {
	return &Checker{Scale: scale, Even: NewSolidColor(even), Odd: NewSolidColor(odd)}
}

// Evaluate returns the color of the cell that contains point
func (c *Checker) Evaluate(point core.Point) core.Color {
	inv := 1.0 / c.Scale
	x := int(math.Floor(inv * point.X))
	y := int(math.Floor(inv * point.Y))
	z := int(math.Floor(inv * point.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(point)
	}
	return c.Odd.Evaluate(point)
}
