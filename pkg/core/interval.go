package core

import "math"

// Interval is a range of real numbers [Min, Max].
// An interval with Min > Max is empty.
type Interval struct {
	Min, Max float64
}

// Named intervals
var (
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	FullInterval  = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
	UnitInterval  = Interval{Min: 0, Max: 1}
)

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns Max - Min (negative for empty intervals)
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether Min <= x <= Max
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether Min < x < Max
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp limits x to [Min, Max]
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// WithMax returns a copy of the interval with a new upper bound
func (i Interval) WithMax(max float64) Interval {
	return Interval{Min: i.Min, Max: max}
}

// WithMin returns a copy of the interval with a new lower bound
func (i Interval) WithMin(min float64) Interval {
	return Interval{Min: min, Max: i.Max}
}
