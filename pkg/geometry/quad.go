package geometry

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Point        // One corner of the quad
	U        core.Direction    // First edge vector
	V        core.Direction    // Second edge vector
	Normal   core.Direction    // Unit normal (U × V)
	Material material.Material // Material of the quad
	offset   float64           // Plane equation constant: n·p = offset
	w        core.Direction    // n / (n·(U×V)), for planar coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner core.Point, u, v core.Direction, mat material.Material) (*Quad, error) {
	cross := u.Cross(v)
	if cross.NearZero() {
		return nil, fmt.Errorf("quad edges %v, %v: %w", u, v, ErrDegenerate)
	}
	normal := cross.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: mat,
		offset:   normal.Dot(corner.Vector()),
		w:        cross.Multiply(1.0 / cross.LengthSquared()),
	}, nil
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (*HitRecord, bool) {
	denominator := q.Normal.Dot(ray.Direction)

	// Ray is parallel to the quad
	if math.Abs(denominator) < parallelEpsilon {
		return nil, false
	}

	t := (q.offset - q.Normal.Dot(ray.Origin.Vector())) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	// Planar coordinates of the hit point in the (U, V) frame
	p := ray.At(t).Subtract(q.Corner)
	alpha := q.w.Dot(p.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(p))

	if !core.UnitInterval.Contains(alpha) || !core.UnitInterval.Contains(beta) {
		return nil, false
	}

	return newHitRecord(ray, t, q.Normal, q.Material), true
}
