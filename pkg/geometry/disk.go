package geometry

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Disk represents a circular disk in 3D space
type Disk struct {
	Center   core.Point        // Center of the disk
	Normal   core.Direction    // Unit normal (front face side)
	Radius   float64           // Radius of the disk
	Material material.Material // Material of the disk
	basis    core.Basis        // U, V span the disk; W is the normal
	offset   float64
}

// NewDisk creates a new disk
func NewDisk(center core.Point, normal core.Direction, radius float64, mat material.Material) (*Disk, error) {
	if radius <= degenerateEpsilon {
		return nil, fmt.Errorf("disk radius %g: %w", radius, ErrDegenerate)
	}
	if normal.NearZero() {
		return nil, fmt.Errorf("disk normal %v: %w", normal, ErrDegenerate)
	}

	basis := core.NewBasisFromAxis(normal)
	return &Disk{
		Center:   center,
		Normal:   basis.W,
		Radius:   radius,
		Material: mat,
		basis:    basis,
		offset:   basis.W.Dot(center.Vector()),
	}, nil
}

// Hit implements the Hittable interface
func (d *Disk) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (*HitRecord, bool) {
	denominator := d.Normal.Dot(ray.Direction)
	if math.Abs(denominator) < parallelEpsilon {
		return nil, false // Ray is parallel to disk
	}

	t := (d.offset - d.Normal.Dot(ray.Origin.Vector())) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	// Planar coordinates relative to the center
	p := ray.At(t).Subtract(d.Center)
	alpha := d.basis.U.Dot(p)
	beta := d.basis.V.Dot(p)
	if alpha*alpha+beta*beta > d.Radius*d.Radius {
		return nil, false // Outside disk
	}

	return newHitRecord(ray, t, d.Normal, d.Material), true
}
