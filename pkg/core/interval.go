package core

// Interval represents a closed numeric range [Min, Max]
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Intensity is the valid range for a color channel before byte
// conversion. The 0.999 upper bound keeps 256*value below 256.
var Intensity = Interval{Min: 0.0, Max: 0.999}

// HitEpsilon is the lower bound used for secondary ray intersection
// queries. Excluding near-zero t suppresses shadow acne caused by
// floating-point rounding at the origin of scattered rays.
const HitEpsilon = 1e-3

// Contains reports whether x lies within the interval, inclusive
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies strictly within the interval
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp saturates x to [Min, Max]
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}
