package geometry

import (
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
)

// maxHitsPerObject bounds how many crossings AllHits collects from one member
const maxHitsPerObject = 8

// hitStepEpsilon moves the search window past a crossing that was just found
const hitStepEpsilon = 1e-4

// HittableList is an ordered collection of hittables scanned linearly
type HittableList struct {
	Objects []Hittable
	sorted  bool
}

// NewHittableList creates a list that returns the nearest hit within the interval
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// NewSortedHittableList creates a list that collects every crossing of every
// member, sorts them by t and returns the first one inside the interval.
// Volume boundaries that are composites need this to find both their entry
// and their exit.
func NewSortedHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects, sorted: true}
}

// Add appends objects to the list
func (l *HittableList) Add(objects ...Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Len returns the number of members
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit implements the Hittable interface
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (*HitRecord, bool) {
	if l.sorted {
		for _, hit := range l.AllHits(ray, random) {
			if rayT.Contains(hit.T) {
				return hit, true
			}
		}
		return nil, false
	}

	var closest *HitRecord
	window := rayT

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, window, random); ok {
			closest = hit
			window = window.WithMax(hit.T)
		}
	}

	return closest, closest != nil
}

// AllHits returns every crossing of the ray with every member, ordered by t.
// Each member is queried repeatedly, starting just past its previous crossing.
func (l *HittableList) AllHits(ray core.Ray, random *rand.Rand) []*HitRecord {
	var hits []*HitRecord

	for _, object := range l.Objects {
		window := core.FullInterval
		for i := 0; i < maxHitsPerObject; i++ {
			hit, ok := object.Hit(ray, window, random)
			if !ok {
				break
			}
			hits = append(hits, hit)
			window = window.WithMin(hit.T + hitStepEpsilon)
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].T < hits[j].T })
	return hits
}
