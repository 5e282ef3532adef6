package geometry

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Point        // A point on the plane
	Normal   core.Direction    // Unit normal
	Material material.Material // Material of the plane
	offset   float64           // n·Point
}

// NewPlane creates a new plane
func NewPlane(point core.Point, normal core.Direction, mat material.Material) (*Plane, error) {
	if normal.NearZero() {
		return nil, fmt.Errorf("plane normal %v: %w", normal, ErrDegenerate)
	}
	n := normal.Normalize()
	return &Plane{
		Point:    point,
		Normal:   n,
		Material: mat,
		offset:   n.Dot(point.Vector()),
	}, nil
}

// NewPlaneFromSpan creates the plane through point spanned by u and v.
// The front face is on the u×v side.
func NewPlaneFromSpan(point core.Point, u, v core.Direction, mat material.Material) (*Plane, error) {
	normal := u.Cross(v)
	if normal.NearZero() {
		return nil, fmt.Errorf("plane spanning vectors %v, %v: %w", u, v, ErrDegenerate)
	}
	return NewPlane(point, normal, mat)
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (*HitRecord, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Ray is parallel to the plane
	if math.Abs(denominator) < parallelEpsilon {
		return nil, false
	}

	t := (p.offset - p.Normal.Dot(ray.Origin.Vector())) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	return newHitRecord(ray, t, p.Normal, p.Material), true
}
