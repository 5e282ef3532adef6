package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomUnitVector(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	var sum Direction
	const n = 20000
	for i := 0; i < n; i++ {
		v := RandomUnitVector(random)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit vector, got length %f", v.Length())
		}
		sum = sum.Add(v)
	}

	// Uniform on the sphere means the mean tends to zero
	mean := sum.Multiply(1.0 / n)
	if mean.Length() > 0.05 {
		t.Errorf("Expected mean near zero, got %v", mean)
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	random := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(random)
		if p.Z != 0 {
			t.Fatalf("Expected point in the XY plane, got %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("Expected point inside unit disk, got %v", p)
		}
	}
}

func TestRandomColorRange(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	r := NewInterval(0.5, 1.0)

	for i := 0; i < 100; i++ {
		c := RandomColor(random, r.Min, r.Max)
		if !r.Contains(c.R) || !r.Contains(c.G) || !r.Contains(c.B) {
			t.Fatalf("Expected channels in [0.5,1), got %v", c)
		}
	}
}

func TestBasis(t *testing.T) {
	random := rand.New(rand.NewSource(3))

	tests := []struct {
		name  string
		basis Basis
	}{
		{"standard", StandardBasis()},
		{"from x axis", NewBasisFromAxis(NewDirection(4, 0, 0))},
		{"from oblique axis", NewBasisFromAxis(NewDirection(1, 2, 3))},
		{"random", RandomBasis(random)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.basis.IsOrthonormal(1e-9) {
				t.Fatalf("Expected orthonormal basis, got %+v", tt.basis)
			}
			if !tt.basis.U.Cross(tt.basis.V).ApproxEqual(tt.basis.W, 1e-9) {
				t.Errorf("Expected right-handed basis, got %+v", tt.basis)
			}

			d := NewDirection(0.3, -1.2, 2.5)
			roundTrip := tt.basis.ToWorld(tt.basis.ToLocal(d))
			if !roundTrip.ApproxEqual(d, 1e-9) {
				t.Errorf("Expected %v after round trip, got %v", d, roundTrip)
			}
		})
	}
}
