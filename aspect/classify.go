package aspect

import "math"

// fullCircle and halfCircle bound the wheel arithmetic.
const (
	fullCircle = 360.0
	halfCircle = 180.0
)

// Norm360 normalizes degrees to [0, 360).
func Norm360(x float64) float64 {
	d := math.Mod(x, fullCircle)
	if d < 0 {
		d += fullCircle
	}

	return d
}

// Separation returns the unsigned circular separation of two longitudes,
// always in [0, 180] (the smallest arc between the points).
func Separation(a, b float64) float64 {
	d := math.Abs(Norm360(a) - Norm360(b))
	if d > halfCircle {
		d = fullCircle - d
	}

	return d
}

// Within reports whether the separation of a and b lands inside the
// aspect's orb, together with the signed delta (separation − target).
func Within(a, b float64, asp Aspect) (float64, bool) {
	delta := Separation(a, b) - asp.Angle

	return delta, math.Abs(delta) <= asp.Orb
}

// Classify finds the best-matching aspect for two longitudes: over all
// catalog entries, the one whose target angle is closest to the pair's
// separation while still within its orb. Ties on |delta| resolve to the
// first-declared aspect. The second return is false when nothing matches.
//
// Pure function: no state, no side effects. O(len(catalog)).
func Classify(a, b float64, c *Catalog) (Match, bool) {
	var (
		best    Match
		bestAbs float64
		matched bool
	)
	for _, asp := range c.aspects {
		delta, ok := Within(a, b, asp)
		if !ok {
			continue
		}
		abs := math.Abs(delta)
		// Strict less-than keeps the first-declared aspect on exact ties.
		if !matched || abs < bestAbs {
			best = Match{Aspect: asp, Delta: delta}
			bestAbs = abs
			matched = true
		}
	}

	return best, matched
}
