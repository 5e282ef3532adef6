package core

import (
	"math"
)

// nearZeroEpsilon is the per-component threshold below which a vector counts as zero
const nearZeroEpsilon = 1e-8

// Point is a position in world space.
// Points can be offset by a Direction and subtracted to give a Direction,
// but two points can never be added together.
type Point struct {
	X, Y, Z float64
}

// Direction is a displacement in world space (ray directions, normals, edge vectors)
type Direction struct {
	X, Y, Z float64
}

// Color is a linear RGB radiance or reflectance value
type Color struct {
	R, G, B float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// NewDirection creates a new Direction
func NewDirection(x, y, z float64) Direction {
	return Direction{X: x, Y: y, Z: z}
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Origin is the world-space origin
var Origin = Point{}

// Black and White are the two colors the integrator uses most
var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}
)

// Add offsets the point by a direction
func (p Point) Add(d Direction) Point {
	return Point{p.X + d.X, p.Y + d.Y, p.Z + d.Z}
}

// Subtract returns the direction that leads from other to p
func (p Point) Subtract(other Point) Direction {
	return Direction{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Offset returns the point moved scale units along d
func (p Point) Offset(d Direction, scale float64) Point {
	return Point{p.X + d.X*scale, p.Y + d.Y*scale, p.Z + d.Z*scale}
}

// Vector returns the displacement from the world origin to p
func (p Point) Vector() Direction {
	return Direction{p.X, p.Y, p.Z}
}

// Add returns the sum of two directions
func (d Direction) Add(other Direction) Direction {
	return Direction{d.X + other.X, d.Y + other.Y, d.Z + other.Z}
}

// Subtract returns the difference of two directions
func (d Direction) Subtract(other Direction) Direction {
	return Direction{d.X - other.X, d.Y - other.Y, d.Z - other.Z}
}

// Multiply returns the direction scaled by a scalar
func (d Direction) Multiply(scalar float64) Direction {
	return Direction{d.X * scalar, d.Y * scalar, d.Z * scalar}
}

// Negate returns the opposite direction
func (d Direction) Negate() Direction {
	return Direction{-d.X, -d.Y, -d.Z}
}

// Dot returns the dot product of two directions
func (d Direction) Dot(other Direction) float64 {
	return d.X*other.X + d.Y*other.Y + d.Z*other.Z
}

// Cross returns the cross product of two directions
func (d Direction) Cross(other Direction) Direction {
	return Direction{
		X: d.Y*other.Z - d.Z*other.Y,
		Y: d.Z*other.X - d.X*other.Z,
		Z: d.X*other.Y - d.Y*other.X,
	}
}

// Length returns the magnitude of the direction
func (d Direction) Length() float64 {
	return math.Sqrt(d.LengthSquared())
}

// LengthSquared returns the squared magnitude of the direction
func (d Direction) LengthSquared() float64 {
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (d Direction) Normalize() Direction {
	length := d.Length()
	if length == 0 {
		return d
	}
	return Direction{d.X / length, d.Y / length, d.Z / length}
}

// NearZero reports whether every component is close to zero
func (d Direction) NearZero() bool {
	return math.Abs(d.X) < nearZeroEpsilon &&
		math.Abs(d.Y) < nearZeroEpsilon &&
		math.Abs(d.Z) < nearZeroEpsilon
}

// Axis returns component 0 (X), 1 (Y) or 2 (Z)
func (d Direction) Axis(i int) float64 {
	switch i {
	case 0:
		return d.X
	case 1:
		return d.Y
	default:
		return d.Z
	}
}

// Reflect mirrors d about the unit normal n: r = d - 2(d·n)n
func (d Direction) Reflect(n Direction) Direction {
	return d.Subtract(n.Multiply(2 * d.Dot(n)))
}

// Refract bends the unit direction d through a surface with unit normal n using Snell's law.
// etaRatio is the ratio of the incident index over the transmitted index.
func (d Direction) Refract(n Direction, etaRatio float64) Direction {
	cosTheta := math.Min(d.Negate().Dot(n), 1.0)
	outPerp := d.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	outParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - outPerp.LengthSquared())))
	return outPerp.Add(outParallel)
}

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the component-wise product of two colors (attenuation)
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns a color with every channel clamped to the interval
func (c Color) Clamp(i Interval) Color {
	return Color{i.Clamp(c.R), i.Clamp(c.G), i.Clamp(c.B)}
}

// Sqrt applies the gamma-2 transfer function to every channel.
// Negative channels map to zero.
func (c Color) Sqrt() Color {
	return Color{linearToGamma(c.R), linearToGamma(c.G), linearToGamma(c.B)}
}

func linearToGamma(v float64) float64 {
	if v > 0 {
		return math.Sqrt(v)
	}
	return 0
}

// Lerp blends linearly from a (t=0) to b (t=1)
func Lerp(a, b Color, t float64) Color {
	return a.Multiply(1.0 - t).Add(b.Multiply(t))
}

// ApproxEqual reports whether two directions match within epsilon on every axis
func (d Direction) ApproxEqual(other Direction, epsilon float64) bool {
	return math.Abs(d.X-other.X) < epsilon &&
		math.Abs(d.Y-other.Y) < epsilon &&
		math.Abs(d.Z-other.Z) < epsilon
}

// ApproxEqual reports whether two points match within epsilon on every axis
func (p Point) ApproxEqual(other Point, epsilon float64) bool {
	return p.Subtract(other).ApproxEqual(Direction{}, epsilon)
}

// ApproxEqual reports whether two colors match within epsilon on every channel
func (c Color) ApproxEqual(other Color, epsilon float64) bool {
	return math.Abs(c.R-other.R) < epsilon &&
		math.Abs(c.G-other.G) < epsilon &&
		math.Abs(c.B-other.B) < epsilon
}
