package geometry

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Tube is the open curved surface of a finite cylinder (no caps)
type Tube struct {
	BaseCenter core.Point
	Axis       core.Direction // Unit vector from base to top
	Radius     float64
	Height     float64
	Material   material.Material
}

// NewTube creates a tube from the center of its base and an axis vector
// whose length is the tube's height
func NewTube(baseCenter core.Point, axis core.Direction, radius float64, mat material.Material) (*Tube, error) {
	height := axis.Length()
	if height <= degenerateEpsilon {
		return nil, fmt.Errorf("tube axis %v: %w", axis, ErrDegenerate)
	}
	if radius <= degenerateEpsilon {
		return nil, fmt.Errorf("tube radius %g: %w", radius, ErrDegenerate)
	}
	return &Tube{
		BaseCenter: baseCenter,
		Axis:       axis.Normalize(),
		Radius:     radius,
		Height:     height,
		Material:   mat,
	}, nil
}

// Hit solves the circle equation in the plane perpendicular to the axis
func (tb *Tube) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (*HitRecord, bool) {
	oc := ray.Origin.Subtract(tb.BaseCenter)

	// Drop the components along the axis
	dPerp := ray.Direction.Subtract(tb.Axis.Multiply(ray.Direction.Dot(tb.Axis)))
	ocPerp := oc.Subtract(tb.Axis.Multiply(oc.Dot(tb.Axis)))

	a := dPerp.LengthSquared()
	if a < parallelEpsilon {
		return nil, false // Ray runs along the axis
	}
	h := dPerp.Dot(ocPerp)
	c := ocPerp.LengthSquared() - tb.Radius*tb.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	for _, t := range [2]float64{(-h - sqrtD) / a, (-h + sqrtD) / a} {
		if !rayT.Surrounds(t) {
			continue
		}

		point := ray.At(t)
		along := point.Subtract(tb.BaseCenter).Dot(tb.Axis)
		if along < 0 || along > tb.Height {
			continue
		}

		// Outward normal runs from the axis to the hit point
		onAxis := tb.BaseCenter.Offset(tb.Axis, along)
		outwardNormal := point.Subtract(onAxis).Normalize()
		return newHitRecord(ray, t, outwardNormal, tb.Material), true
	}

	return nil, false
}
