package geometry

import (
	"errors"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrDegenerate is returned by shape constructors whose parameters describe
// a shape with no valid intersection behaviour (zero radius, parallel spans, ...)
var ErrDegenerate = errors.New("degenerate geometry")

// degenerateEpsilon is the smallest size, radius or span length a shape accepts
const degenerateEpsilon = 1e-8

// parallelEpsilon is the |n·d| below which a ray counts as parallel to a plane
const parallelEpsilon = 1e-8

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point        // Point of intersection
	Normal    core.Direction    // Unit surface normal, facing against the ray
	T         float64           // Parameter t along the ray
	FrontFace bool              // Whether ray hit the front face
	Material  material.Material // Material at the hit point
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Direction) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable interface for objects that can be hit by rays.
// Hit returns the closest intersection with t inside rayT. Implementations
// are immutable after construction so one scene can be shared by every worker;
// random is only consumed by participating media.
type Hittable interface {
	Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (*HitRecord, bool)
}

// newHitRecord builds the record for a hit at t with the given outward normal
func newHitRecord(ray core.Ray, t float64, outwardNormal core.Direction, mat material.Material) *HitRecord {
	hitRecord := &HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: mat,
	}
	hitRecord.SetFaceNormal(ray, outwardNormal)
	return hitRecord
}
