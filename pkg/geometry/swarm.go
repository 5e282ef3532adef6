package geometry

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewSwarm scatters count small spheres around center.
// Each particle sits at swarmRadius*U^bias from the center in a uniform random
// direction, so bias > 1 packs particles toward the middle. Particle i draws
// from its own generator seeded with seed+i, so the same arguments always
// build the same swarm.
func NewSwarm(center core.Point, swarmRadius, particleRadius float64, mat material.Material, count int, bias float64, seed int64) (*HittableList, error) {
	if count < 0 {
		return nil, fmt.Errorf("swarm count %d: %w", count, ErrDegenerate)
	}

	swarm := NewHittableList()
	for i := 0; i < count; i++ {
		random := rand.New(rand.NewSource(seed + int64(i)))
		direction := core.RandomUnitVector(random)
		distance := swarmRadius * math.Pow(random.Float64(), bias)

		particle, err := NewSphere(center.Offset(direction, distance), particleRadius, mat)
		if err != nil {
			return nil, fmt.Errorf("swarm particle %d: %w", i, err)
		}
		swarm.Add(particle)
	}
	return swarm, nil
}
