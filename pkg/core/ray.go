package core

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Point
	Direction Direction
}

// NewRay creates a new ray. The direction is normalized, so the ray
// parameter t measures distance from the origin.
// Callers must not pass a zero direction.
func NewRay(origin Point, direction Direction) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point {
	return r.Origin.Offset(r.Direction, t)
}
