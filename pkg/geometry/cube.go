package geometry

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cube represents a cube with an arbitrary orientation
type Cube struct {
	Center   core.Point        // Center point of the cube
	Size     float64           // Half the side length (center to face)
	Basis    core.Basis        // Local axes; the faces are perpendicular to them
	Material material.Material // Material for all faces
}

// NewCube creates a cube aligned with the world axes.
// size is the half side length, so a size of 1 gives a 2x2x2 cube.
func NewCube(center core.Point, size float64, mat material.Material) (*Cube, error) {
	return NewOrientedCube(center, size, core.StandardBasis(), mat)
}

// NewOrientedCube creates a cube whose faces are perpendicular to the axes of basis
func NewOrientedCube(center core.Point, size float64, basis core.Basis, mat material.Material) (*Cube, error) {
	if size <= degenerateEpsilon {
		return nil, fmt.Errorf("cube size %g: %w", size, ErrDegenerate)
	}
	if !basis.IsOrthonormal(1e-6) {
		return nil, fmt.Errorf("cube basis is not orthonormal: %w", ErrDegenerate)
	}
	return &Cube{
		Center:   center,
		Size:     size,
		Basis:    basis,
		Material: mat,
	}, nil
}

// Hit runs a slab test in the cube's local frame
func (c *Cube) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (*HitRecord, bool) {
	origin := c.Basis.ToLocal(ray.Origin.Subtract(c.Center))
	direction := c.Basis.ToLocal(ray.Direction)

	// Entry and exit across all three slabs, plus the face each came from
	tMin, tMax := math.Inf(-1), math.Inf(1)
	minAxis, maxAxis := -1, -1
	var minSign, maxSign float64

	for axis := 0; axis < 3; axis++ {
		o := origin.Axis(axis)
		d := direction.Axis(axis)

		if math.Abs(d) < parallelEpsilon {
			// Parallel to this slab: either always inside or never
			if math.Abs(o) > c.Size {
				return nil, false
			}
			continue
		}

		invD := 1.0 / d
		t0 := (-c.Size - o) * invD
		t1 := (c.Size - o) * invD

		// The near face of the slab faces against the ray
		nearSign, farSign := -1.0, 1.0
		if t0 > t1 {
			t0, t1 = t1, t0
			nearSign, farSign = 1.0, -1.0
		}

		if t0 > tMin {
			tMin, minAxis, minSign = t0, axis, nearSign
		}
		if t1 < tMax {
			tMax, maxAxis, maxSign = t1, axis, farSign
		}

		if tMin > tMax {
			return nil, false
		}
	}

	var t float64
	var axis int
	var sign float64
	switch {
	case rayT.Contains(tMin):
		t, axis, sign = tMin, minAxis, minSign
	case rayT.Contains(tMax):
		t, axis, sign = tMax, maxAxis, maxSign
	default:
		return nil, false
	}

	var local core.Direction
	switch axis {
	case 0:
		local.X = sign
	case 1:
		local.Y = sign
	case 2:
		local.Z = sign
	}

	return newHitRecord(ray, t, c.Basis.ToWorld(local), c.Material), true
}
