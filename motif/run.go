package motif

import (
	"math"

	"github.com/katalvlaran/aspectra/aspect"
	"github.com/katalvlaran/aspectra/chart"
	"github.com/katalvlaran/aspectra/cluster"
)

// templateAspects holds the resolved catalog entries every motif
// template references, looked up once per run so the hot search paths
// never touch the catalog again.
type templateAspects struct {
	conjunction  aspect.Aspect
	sextile      aspect.Aspect
	square       aspect.Aspect
	trine        aspect.Aspect
	opposition   aspect.Aspect
	quincunx     aspect.Aspect
	sesquisquare aspect.Aspect
}

// resolveTemplateAspects fetches the seven template aspects. A missing
// name is a configuration error and aborts the run (the catalog is
// caller-supplied and normally validated at construction).
func resolveTemplateAspects(cat *aspect.Catalog) (templateAspects, error) {
	var (
		ta  templateAspects
		err error
	)
	for _, bind := range []struct {
		name string
		dst  *aspect.Aspect
	}{
		{aspect.Conjunction, &ta.conjunction},
		{aspect.Sextile, &ta.sextile},
		{aspect.Square, &ta.square},
		{aspect.Trine, &ta.trine},
		{aspect.Opposition, &ta.opposition},
		{aspect.Quincunx, &ta.quincunx},
		{aspect.Sesquisquare, &ta.sesquisquare},
	} {
		if *bind.dst, err = cat.Get(bind.name); err != nil {
			return ta, err
		}
	}

	return ta, nil
}

// seenKey identifies one (kind, member-set) combination; the run-scoped
// registry records each at most once.
type seenKey struct {
	kind    Kind
	members MemberSet
}

// edgeUse identifies one consumed edge: rep-mapped ordered endpoints
// plus the base aspect name.
type edgeUse struct {
	a, b, aspect string
}

// proto is a detected-but-unregistered shape. Pattern scanners produce
// protos (possibly concurrently); the run assigns ids and applies the
// global dedup registry serially, in deterministic merge order.
type proto struct {
	kind      Kind
	parent    int
	members   []string // raw, expanded, sorted
	edges     []EdgeSpec
	directive *Directive
	approx    bool
	remainder bool
}

// run is the per-invocation detection context. All ambient state of a
// detection — the monotonic id counter, the dedup registry, consumed
// members and edges — lives here; nothing survives between runs.
type run struct {
	pos       chart.Positions
	patterns  [][]string
	inPattern []map[string]struct{}
	major     []chart.Edge
	minor     []chart.Edge
	cat       *aspect.Catalog
	asp       templateAspects
	opts      Options

	// global clusters every object once; special-pass member collapse
	// and edge-usage keys map through it.
	global *cluster.Index

	nextID      int
	seen        map[seenKey]struct{}
	shapes      []Shape
	usedMembers map[string]struct{}
	usedEdges   map[edgeUse]struct{}
}

func newRun(pos chart.Positions, patterns [][]string, major, minor []chart.Edge,
	cat *aspect.Catalog, asp templateAspects, opts Options) *run {
	r := &run{
		pos:         pos,
		patterns:    patterns,
		inPattern:   make([]map[string]struct{}, len(patterns)),
		major:       major,
		minor:       minor,
		cat:         cat,
		asp:         asp,
		opts:        opts,
		seen:        make(map[seenKey]struct{}),
		usedMembers: make(map[string]struct{}),
		usedEdges:   make(map[edgeUse]struct{}),
	}
	all := make([]string, 0, len(pos))
	for id := range pos {
		all = append(all, id)
	}
	r.global = cluster.Build(pos, all, cat.ConjunctionOrb())
	for i, p := range patterns {
		set := make(map[string]struct{}, len(p))
		for _, m := range p {
			set[m] = struct{}{}
		}
		r.inPattern[i] = set
	}

	return r
}

// register applies the global (kind, member-set) registry to p and, when
// unseen, appends it as a Shape with the next monotonic id, marking its
// members and edges as consumed. Returns false for duplicates.
func (r *run) register(p proto) bool {
	key := seenKey{kind: p.kind, members: NewMemberSet(p.members...)}
	if _, dup := r.seen[key]; dup {
		return false
	}
	r.seen[key] = struct{}{}

	s := Shape{
		ID:        r.nextID,
		Kind:      p.kind,
		Parent:    p.parent,
		Members:   p.members,
		Edges:     p.edges,
		Directive: p.directive,
		Approx:    p.approx,
		Remainder: p.remainder,
	}
	r.nextID++
	r.shapes = append(r.shapes, s)

	for _, m := range p.members {
		r.usedMembers[m] = struct{}{}
	}
	for _, e := range p.edges {
		r.usedEdges[r.useOf(e)] = struct{}{}
	}

	return true
}

// useOf maps an edge spec onto its canonical usage key: endpoints pushed
// through the global cluster index, ordered, plus the base aspect name.
func (r *run) useOf(e EdgeSpec) edgeUse {
	a, b := r.global.RepOf(e.A), r.global.RepOf(e.B)
	if b < a {
		a, b = b, a
	}

	return edgeUse{a: a, b: b, aspect: e.Aspect}
}

// matches reports whether the raw positions of a and b sit within asp's
// orb. Used by the special-pass templates, which scan angles directly.
func (r *run) matches(a, b string, asp aspect.Aspect) bool {
	pa, okA := r.pos[a]
	pb, okB := r.pos[b]
	if !okA || !okB {
		return false
	}

	return math.Abs(aspect.Separation(pa, pb)-asp.Angle) <= asp.Orb
}

// assignParent picks the pattern index for a special-pass shape: the
// first pattern containing every member, else the first containing at
// least two, else pattern 0.
func (r *run) assignParent(members []string) int {
	for i, set := range r.inPattern {
		all := true
		for _, m := range members {
			if _, ok := set[m]; !ok {
				all = false

				break
			}
		}
		if all {
			return i
		}
	}
	for i, set := range r.inPattern {
		hits := 0
		for _, m := range members {
			if _, ok := set[m]; ok {
				hits++
			}
		}
		if hits >= 2 {
			return i
		}
	}

	return 0
}
