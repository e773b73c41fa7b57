package motif

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors for detection.
var (
	// ErrNilCatalog is returned if a nil catalog pointer is passed.
	ErrNilCatalog = errors.New("motif: catalog is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("motif: invalid option supplied")
)

// Kind is the closed enumeration of motif names. Every shape the engine
// emits carries exactly one Kind; there are no ad hoc variants.
type Kind uint8

const (
	// GrandTrine: three nodes, pairwise Trine.
	GrandTrine Kind = iota
	// TSquare: an Opposition pair plus an apex Square to both ends.
	TSquare
	// GrandCross: two disjoint Oppositions plus a Square perimeter.
	GrandCross
	// MysticRectangle: two Sextile sides, Opposition and Trine diagonals.
	MysticRectangle
	// Cradle: a three-Sextile chain closed by an Opposition, with cross Trines.
	Cradle
	// Kite: a Grand Trine plus an apex opposing one vertex, sextile the others.
	Kite
	// Envelope: five nodes — two disjoint Oppositions, a center, a
	// four-Sextile chain, and Opposition/Trine diagonals.
	Envelope
	// Wedge: exactly one Opposition, one Trine, one Sextile among three nodes.
	Wedge
	// SextileWedge: one Trine and two Sextiles, no Opposition.
	SextileWedge
	// Yod: a Sextile pair with a third point Quincunx to both.
	Yod
	// WideYod: a Square pair with Sesquisquare arms.
	WideYod
	// Unnamed: a Square pair with a Trine to one end and a Quincunx to the other.
	Unnamed
	// LightningBolt: two Unnamed shapes fused over a shared Quincunx pair.
	LightningBolt
	// Remainder: a catch-all grouping of unclaimed major edges in a pattern.
	Remainder
)

// kindNames indexes the display names by Kind.
var kindNames = [...]string{
	GrandTrine:      "Grand Trine",
	TSquare:         "T-Square",
	GrandCross:      "Grand Cross",
	MysticRectangle: "Mystic Rectangle",
	Cradle:          "Cradle",
	Kite:            "Kite",
	Envelope:        "Envelope",
	Wedge:           "Wedge",
	SextileWedge:    "Sextile Wedge",
	Yod:             "Yod",
	WideYod:         "Wide Yod",
	Unnamed:         "Unnamed",
	LightningBolt:   "Lightning Bolt",
	Remainder:       "Remainder",
}

// String returns the motif's display name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Unknown"
}

// MemberSet is the canonical key for a set of raw object ids: sorted,
// de-duplicated, joined with "|". Suppress/keep declarations and the
// run-scoped dedup registry are keyed by (Kind, MemberSet).
type MemberSet string

// NewMemberSet builds the canonical key for ids.
func NewMemberSet(ids ...string) MemberSet {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	uniq := make([]string, 0, len(set))
	for id := range set {
		uniq = append(uniq, id)
	}
	sort.Strings(uniq)

	return MemberSet(strings.Join(uniq, "|"))
}

// Members splits the key back into its object ids.
func (m MemberSet) Members() []string {
	if m == "" {
		return nil
	}

	return strings.Split(string(m), "|")
}

// Directive carries a shape's suppression intent: member sets it removes
// and member sets it protects from removal by any other shape. Both maps
// hold fully expanded raw member sets, never cluster representatives.
// Only shapes that declare an intent carry a Directive.
type Directive struct {
	// Suppress names the (kind, member-set) victims this shape removes.
	Suppress map[Kind][]MemberSet

	// Keep names the (kind, member-set) shapes this shape protects.
	Keep map[Kind][]MemberSet
}

// EdgeSpec is one edge of a detected shape.
type EdgeSpec struct {
	// A and B are the endpoint node ids (cluster representatives for
	// pattern-pass shapes, raw objects for special-pass shapes).
	A, B string

	// Aspect is the base aspect name of the edge.
	Aspect string

	// Approx marks an edge accepted only via a relaxed (widened-orb or
	// slack) check rather than the precomputed strict edge set.
	Approx bool
}

// Shape is one detected motif instance.
type Shape struct {
	// ID is monotonic and run-scoped: the n-th registered shape of a
	// detection run has ID n, regardless of later suppression.
	ID int

	// Kind is the motif name.
	Kind Kind

	// Parent is the index of the pattern the shape belongs to.
	Parent int

	// Members lists every raw object in any matched cluster, sorted.
	Members []string

	// Edges lists the shape's edges, each tagged strict or approximate.
	Edges []EdgeSpec

	// Directive holds suppress/keep declarations, nil for most shapes.
	Directive *Directive

	// Approx marks shapes found only by the widened-orb fallback pass.
	Approx bool

	// Remainder marks catch-all shapes grouping unclaimed major edges.
	Remainder bool
}

// MemberSet returns the shape's canonical member key.
func (s *Shape) MemberSet() MemberSet {
	return NewMemberSet(s.Members...)
}
