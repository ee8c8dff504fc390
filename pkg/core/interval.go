package core

import "math"

// Interval is a closed range [Min, Max] of ray parameters or scalar
// bounds.
type Interval struct {
	Min, Max float64
}

// NewInterval creates an interval [min, max].
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// EmptyInterval is an interval that contains no points.
func EmptyInterval() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// UniverseInterval is an interval that contains every point.
func UniverseInterval() Interval {
	return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
}

// PositiveInterval returns [eps, +inf), the usual interval for primary
// and secondary ray intersection.
func PositiveInterval(eps float64) Interval {
	return Interval{Min: eps, Max: math.Inf(1)}
}

// Size returns Max - Min.
func (iv Interval) Size() float64 { return iv.Max - iv.Min }

// Contains reports whether x lies in the closed interval.
func (iv Interval) Contains(x float64) bool { return iv.Min <= x && x <= iv.Max }

// Surrounds reports whether x lies strictly inside the interval.
func (iv Interval) Surrounds(x float64) bool { return iv.Min < x && x < iv.Max }

// Clamp restricts x to the interval.
func (iv Interval) Clamp(x float64) float64 {
	if x < iv.Min {
		return iv.Min
	}
	if x > iv.Max {
		return iv.Max
	}
	return x
}

// Expand returns the interval widened by delta in total, delta/2 on
// each end.
func (iv Interval) Expand(delta float64) Interval {
	pad := delta / 2
	return Interval{Min: iv.Min - pad, Max: iv.Max + pad}
}

// WithMax returns a copy of the interval with a new upper bound,
// used by BVH traversal to shrink the search window to the closest
// hit found so far.
func (iv Interval) WithMax(max float64) Interval {
	return Interval{Min: iv.Min, Max: max}
}
