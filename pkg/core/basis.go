package core

import (
	"math"
	"math/rand"
)

// Basis is a right-handed orthonormal frame
type Basis struct {
	U, V, W Direction
}

// StandardBasis returns the world axes
func StandardBasis() Basis {
	return Basis{
		U: Direction{X: 1},
		V: Direction{Y: 1},
		W: Direction{Z: 1},
	}
}

// NewBasisFromAxis builds a frame whose W axis points along axis
func NewBasisFromAxis(axis Direction) Basis {
	w := axis.Normalize()

	// Pick a helper vector that is not parallel to w
	var a Direction
	if math.Abs(w.X) > 0.9 {
		a = Direction{Y: 1}
	} else {
		a = Direction{X: 1}
	}

	v := w.Cross(a).Normalize()
	u := v.Cross(w)
	return Basis{U: u, V: v, W: w}
}

// RandomBasis returns a uniformly oriented random frame
func RandomBasis(random *rand.Rand) Basis {
	frame := NewBasisFromAxis(RandomUnitVector(random))

	// Spin the frame around W by a random angle
	angle := 2 * math.Pi * random.Float64()
	cos, sin := math.Cos(angle), math.Sin(angle)
	u := frame.U.Multiply(cos).Add(frame.V.Multiply(sin))
	v := frame.W.Cross(u)
	return Basis{U: u, V: v, W: frame.W}
}

// ToLocal expresses a world direction in this frame
func (b Basis) ToLocal(d Direction) Direction {
	return Direction{X: b.U.Dot(d), Y: b.V.Dot(d), Z: b.W.Dot(d)}
}

// ToWorld maps a direction expressed in this frame back to world space
func (b Basis) ToWorld(local Direction) Direction {
	return b.U.Multiply(local.X).Add(b.V.Multiply(local.Y)).Add(b.W.Multiply(local.Z))
}

// IsOrthonormal reports whether all three axes are unit length and mutually perpendicular
func (b Basis) IsOrthonormal(epsilon float64) bool {
	return math.Abs(b.U.Length()-1) < epsilon &&
		math.Abs(b.V.Length()-1) < epsilon &&
		math.Abs(b.W.Length()-1) < epsilon &&
		math.Abs(b.U.Dot(b.V)) < epsilon &&
		math.Abs(b.V.Dot(b.W)) < epsilon &&
		math.Abs(b.W.Dot(b.U)) < epsilon
}
