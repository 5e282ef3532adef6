package geometry

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cylinder represents a closed finite cylinder: a tube and two end caps.
// The parts are exposed so a scene can also place them individually.
type Cylinder struct {
	Tube   *Tube
	Top    *Disk
	Bottom *Disk
	whole  *HittableList
}

// NewCylinder creates a cylinder from the center of its base and an axis vector
// whose length is the height. Each part takes its own material.
func NewCylinder(baseCenter core.Point, axis core.Direction, radius float64, side, top, bottom material.Material) (*Cylinder, error) {
	tube, err := NewTube(baseCenter, axis, radius, side)
	if err != nil {
		return nil, fmt.Errorf("cylinder: %w", err)
	}

	topCap, err := NewDisk(baseCenter.Add(axis), axis, radius, top)
	if err != nil {
		return nil, fmt.Errorf("cylinder top: %w", err)
	}

	bottomCap, err := NewDisk(baseCenter, axis.Negate(), radius, bottom)
	if err != nil {
		return nil, fmt.Errorf("cylinder bottom: %w", err)
	}

	return &Cylinder{
		Tube:   tube,
		Top:    topCap,
		Bottom: bottomCap,
		whole:  NewHittableList(tube, topCap, bottomCap),
	}, nil
}

// NewSolidCylinder creates a cylinder with one material on every part
func NewSolidCylinder(baseCenter core.Point, axis core.Direction, radius float64, mat material.Material) (*Cylinder, error) {
	return NewCylinder(baseCenter, axis, radius, mat, mat, mat)
}

// Hit returns the nearest hit among the three parts
func (c *Cylinder) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (*HitRecord, bool) {
	return c.whole.Hit(ray, rayT, random)
}
