package chart

import (
	"math"
	"sort"

	"github.com/katalvlaran/aspectra/aspect"
)

// BuildEdges classifies every unordered object pair once and partitions
// the matches into major and minor edge lists per the catalog's Major
// flag. Ids are scanned in sorted order, so output is deterministic for
// any map iteration order.
//
// Returns ErrNoPositions for an empty position map. Classification
// itself cannot fail: absence of a match simply produces no edge.
func BuildEdges(pos Positions, cat *aspect.Catalog, opts ...Option) (major, minor []Edge, err error) {
	if len(pos) == 0 {
		return nil, nil, ErrNoPositions
	}
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	ids := sortedIDs(pos)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			m, ok := aspect.Classify(pos[a], pos[b], cat)
			if !ok {
				continue
			}
			e := Edge{A: a, B: b, Aspect: m.Aspect.Name, Delta: m.Delta}
			if o.speeds != nil {
				e.AppSep = applyingOrSeparating(pos, o.speeds, a, b, m.Aspect.Angle)
			}
			if m.Aspect.Major {
				major = append(major, e)
			} else {
				minor = append(minor, e)
			}
		}
	}

	if o.compass {
		major = appendCompassAxis(major, pos, cat, o.speeds)
	}

	return major, minor, nil
}

// appendCompassAxis adds the synthetic Ascendant–Descendant Opposition
// unless one of the points is absent or a major edge already links them.
func appendCompassAxis(major []Edge, pos Positions, cat *aspect.Catalog, spd Speeds) []Edge {
	asc, okA := pos[Ascendant]
	dsc, okD := pos[Descendant]
	if !okA || !okD {
		return major
	}
	a, b := Ascendant, Descendant
	if b < a {
		a, b = b, a
	}
	for _, e := range major {
		if e.A == a && e.B == b {
			return major
		}
	}

	opp, err := cat.Get(aspect.Opposition)
	if err != nil {
		// Opposition is guaranteed by catalog validation.
		return major
	}
	e := Edge{A: a, B: b, Aspect: aspect.Opposition, Delta: aspect.Separation(asc, dsc) - opp.Angle}
	if spd != nil {
		e.AppSep = applyingOrSeparating(pos, spd, a, b, opp.Angle)
	}

	return append(major, e)
}

// applyingOrSeparating projects both objects one day ahead using linear
// motion and reports whether the distance to the exact target shrinks.
// Falls back to empty when either speed is unknown.
func applyingOrSeparating(pos Positions, spd Speeds, a, b string, target float64) string {
	sa, okA := spd[a]
	sb, okB := spd[b]
	if !okA || !okB {
		return ""
	}
	now := math.Abs(aspect.Separation(pos[a], pos[b]) - target)
	next := math.Abs(aspect.Separation(pos[a]+sa, pos[b]+sb) - target)
	if next < now {
		return Applying
	}

	return Separating
}

// sortedIDs returns the object ids in ascending order.
func sortedIDs(pos Positions) []string {
	ids := make([]string, 0, len(pos))
	for id := range pos {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
