package motif

import (
	"sort"

	"github.com/katalvlaran/aspectra/aspect"
)

// specialPass detects the Yod family by scanning the full major+minor
// edge list directly — not the per-pattern cluster search — then fuses
// matching Unnamed pairs into Lightning Bolts. Members are collapsed
// through the global cluster index and fully expanded for output.
func (r *run) specialPass() {
	ids := make([]string, 0, len(r.pos))
	for id := range r.pos {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	edges := make([]chartEdgeRef, 0, len(r.major)+len(r.minor))
	for _, e := range r.major {
		edges = append(edges, chartEdgeRef{a: e.A, b: e.B})
	}
	for _, e := range r.minor {
		edges = append(edges, chartEdgeRef{a: e.A, b: e.B})
	}

	for _, e := range edges {
		a, b := e.a, e.b

		// Yod: Sextile base, Quincunx arms.
		if r.matches(a, b, r.asp.sextile) {
			for _, c := range ids {
				if c == a || c == b {
					continue
				}
				if r.matches(a, c, r.asp.quincunx) && r.matches(b, c, r.asp.quincunx) {
					r.addSpecial(Yod, []string{a, b, c}, []EdgeSpec{
						{A: a, B: b, Aspect: aspect.Sextile},
						{A: a, B: c, Aspect: aspect.Quincunx},
						{A: b, B: c, Aspect: aspect.Quincunx},
					}, nil)
				}
			}
		}

		if !r.matches(a, b, r.asp.square) {
			continue
		}

		// Wide Yod: Square base, Sesquisquare arms.
		for _, c := range ids {
			if c == a || c == b {
				continue
			}
			if r.matches(a, c, r.asp.sesquisquare) && r.matches(b, c, r.asp.sesquisquare) {
				r.addSpecial(WideYod, []string{a, b, c}, []EdgeSpec{
					{A: a, B: b, Aspect: aspect.Square},
					{A: a, B: c, Aspect: aspect.Sesquisquare},
					{A: b, B: c, Aspect: aspect.Sesquisquare},
				}, nil)
			}
		}

		// Unnamed: Square base, Trine to one end, Quincunx to the other.
		for _, c := range ids {
			if c == a || c == b {
				continue
			}
			switch {
			case r.matches(a, c, r.asp.trine) && r.matches(b, c, r.asp.quincunx):
				r.addSpecial(Unnamed, []string{a, b, c}, []EdgeSpec{
					{A: a, B: b, Aspect: aspect.Square},
					{A: a, B: c, Aspect: aspect.Trine},
					{A: b, B: c, Aspect: aspect.Quincunx},
				}, nil)
			case r.matches(b, c, r.asp.trine) && r.matches(a, c, r.asp.quincunx):
				r.addSpecial(Unnamed, []string{a, b, c}, []EdgeSpec{
					{A: a, B: b, Aspect: aspect.Square},
					{A: b, B: c, Aspect: aspect.Trine},
					{A: a, B: c, Aspect: aspect.Quincunx},
				}, nil)
			}
		}
	}

	r.lightningPass()
}

// chartEdgeRef is a lightweight endpoint pair for the special scan.
type chartEdgeRef struct {
	a, b string
}

// addSpecial collapses members through the global cluster index, picks
// the parent pattern, and registers the shape through the run registry.
func (r *run) addSpecial(kind Kind, members []string, edges []EdgeSpec, dir *Directive) {
	reps := make([]string, 0, len(members))
	for _, m := range members {
		reps = append(reps, r.global.RepOf(m))
	}
	expanded := r.global.Expand(reps...)
	r.register(proto{
		kind:      kind,
		parent:    r.assignParent(expanded),
		members:   expanded,
		edges:     edges,
		directive: dir,
	})
}

// unnamedInfo is the decomposition of one Unnamed shape used by the
// Lightning Bolt fusion: the Quincunx pair, the Square endpoint inside
// it (qNode), and the vertex outside it (extra).
type unnamedInfo struct {
	shape *Shape
	qPair pairKey
	qNode string
	extra string
}

// lightningPass fuses Unnamed pairs sharing an identical Quincunx pair
// with distinct extra vertices into Lightning Bolts, when the cross
// Square/Trine angles hold. Both source Unnamed shapes are suppressed.
func (r *run) lightningPass() {
	var infos []unnamedInfo
	for i := range r.shapes {
		s := &r.shapes[i]
		if s.Kind != Unnamed {
			continue
		}
		var qEdge, sqEdge *EdgeSpec
		for j := range s.Edges {
			switch s.Edges[j].Aspect {
			case aspect.Quincunx:
				qEdge = &s.Edges[j]
			case aspect.Square:
				sqEdge = &s.Edges[j]
			}
		}
		if qEdge == nil || sqEdge == nil {
			continue
		}
		info := unnamedInfo{shape: s, qPair: orderedPair(qEdge.A, qEdge.B)}
		switch {
		case inPair(info.qPair, sqEdge.A) && !inPair(info.qPair, sqEdge.B):
			info.qNode, info.extra = sqEdge.A, sqEdge.B
		case inPair(info.qPair, sqEdge.B) && !inPair(info.qPair, sqEdge.A):
			info.qNode, info.extra = sqEdge.B, sqEdge.A
		default:
			continue
		}
		infos = append(infos, info)
	}

	for i := 0; i < len(infos); i++ {
		for j := i + 1; j < len(infos); j++ {
			u1, u2 := infos[i], infos[j]
			if u1.qPair != u2.qPair || u1.qNode == u2.qNode || u1.extra == u2.extra {
				continue
			}
			q1, q2 := u1.qNode, u2.qNode
			r1, r2 := u1.extra, u2.extra
			if !(r.matches(q1, q2, r.asp.quincunx) &&
				r.matches(q1, r1, r.asp.square) &&
				r.matches(q2, r2, r.asp.square) &&
				r.matches(q1, r2, r.asp.trine) &&
				r.matches(q2, r1, r.asp.trine)) {
				continue
			}
			dir := &Directive{Suppress: map[Kind][]MemberSet{
				Unnamed: {
					NewMemberSet(u1.shape.Members...),
					NewMemberSet(u2.shape.Members...),
				},
			}}
			r.addSpecial(LightningBolt, []string{q1, q2, r1, r2}, []EdgeSpec{
				{A: q1, B: r1, Aspect: aspect.Square},
				{A: q1, B: r2, Aspect: aspect.Trine},
				{A: q2, B: r1, Aspect: aspect.Trine},
				{A: q2, B: r2, Aspect: aspect.Square},
				{A: q1, B: q2, Aspect: aspect.Quincunx},
			}, dir)
		}
	}
}

func inPair(p pairKey, id string) bool {
	return p.a == id || p.b == id
}
