package motif

import (
	"math"

	"github.com/katalvlaran/aspectra/aspect"
	"github.com/katalvlaran/aspectra/cluster"
)

// pairKey is an ordered rep-node pair, a < b.
type pairKey struct {
	a, b string
}

func orderedPair(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{a: a, b: b}
}

// scanner runs the combinatorial template search over one pattern's
// cluster-representative nodes. Strict mode consults only the
// precomputed major-edge set (mapped through representatives); widen
// mode additionally accepts direct angle checks within orb × factor.
// Scanners are independent per pattern and safe to run concurrently;
// results merge into the run serially.
type scanner struct {
	r      *run
	parent int
	idx    *cluster.Index
	reps   []string
	edges  map[pairKey]map[string]struct{}
	widen  bool
	local  map[seenKey]struct{}
	out    []proto
}

// newScanner clusters members and filters the precomputed major edges
// down to rep-node pairs inside this search domain. Intra-cluster
// self-edges are dropped.
func newScanner(r *run, parent int, members []string, widen bool) *scanner {
	s := &scanner{
		r:      r,
		parent: parent,
		idx:    cluster.Build(r.pos, members, r.cat.ConjunctionOrb()),
		widen:  widen,
		edges:  make(map[pairKey]map[string]struct{}),
		local:  make(map[seenKey]struct{}),
	}
	s.reps = s.idx.Reps()

	inDomain := make(map[string]struct{}, len(members))
	for _, m := range members {
		inDomain[m] = struct{}{}
	}
	for _, e := range r.major {
		if _, ok := inDomain[e.A]; !ok {
			continue
		}
		if _, ok := inDomain[e.B]; !ok {
			continue
		}
		ru, rv := s.idx.RepOf(e.A), s.idx.RepOf(e.B)
		if ru == rv {
			continue // self-edge within one cluster
		}
		key := orderedPair(ru, rv)
		if s.edges[key] == nil {
			s.edges[key] = make(map[string]struct{})
		}
		s.edges[key][e.Aspect] = struct{}{}
	}

	return s
}

// scan runs every template in fixed detection order and returns the
// pattern's proto shapes.
func (s *scanner) scan() []proto {
	s.envelope()
	s.grandCross()
	s.mysticRectangle()
	s.cradle()
	s.kite()
	s.grandTrine()
	s.tSquare()
	s.wedge()
	s.sextileWedge()

	return s.out
}

// meanOf returns the search position of a rep node: its cluster mean,
// falling back to the raw position for unclustered ids.
func (s *scanner) meanOf(rep string) (float64, bool) {
	if m, ok := s.idx.Mean(rep); ok {
		return m, true
	}
	m, ok := s.r.pos[rep]

	return m, ok
}

// hasEdge reports whether the rep pair carries the aspect in the strict
// edge set; in widen mode it additionally accepts a direct angle check
// within orb × WidenFactor, flagged approximate.
func (s *scanner) hasEdge(a, b string, asp aspect.Aspect) (ok, approx bool) {
	if set, hit := s.edges[orderedPair(a, b)]; hit {
		if _, found := set[asp.Name]; found {
			return true, false
		}
	}
	if !s.widen {
		return false, false
	}
	da, okA := s.meanOf(a)
	db, okB := s.meanOf(b)
	if !okA || !okB {
		return false, false
	}
	if math.Abs(aspect.Separation(da, db)-asp.Angle) <= asp.Orb*s.r.opts.WidenFactor {
		return true, true
	}

	return false, false
}

// aspectOK is the relaxed check for diagonal/secondary edges of
// composite shapes: a strict (or widened) edge, or an angle within
// orb + DiagonalSlack. Relaxed acceptance is flagged approximate.
func (s *scanner) aspectOK(a, b string, asp aspect.Aspect) (ok, approx bool) {
	if hit, apx := s.hasEdge(a, b, asp); hit {
		return true, apx
	}
	da, okA := s.meanOf(a)
	db, okB := s.meanOf(b)
	if !okA || !okB {
		return false, false
	}
	if math.Abs(aspect.Separation(da, db)-asp.Angle) <= asp.Orb+s.r.opts.DiagonalSlack {
		return true, true
	}

	return false, false
}

// spec builds one tagged edge of a shape under construction.
func (s *scanner) spec(a, b string, asp aspect.Aspect, approx bool) EdgeSpec {
	return EdgeSpec{A: a, B: b, Aspect: asp.Name, Approx: approx}
}

// ms expands rep nodes to their canonical raw member-set key.
func (s *scanner) ms(nodes ...string) MemberSet {
	return NewMemberSet(s.idx.Expand(nodes...)...)
}

// add registers a structurally valid instance once per (kind, expanded
// member-set) within this scan; the run applies the global registry at
// merge time. Returns false for local duplicates.
func (s *scanner) add(kind Kind, nodes []string, edges []EdgeSpec, dir *Directive) bool {
	members := s.idx.Expand(nodes...)
	key := seenKey{kind: kind, members: NewMemberSet(members...)}
	if _, dup := s.local[key]; dup {
		return false
	}
	s.local[key] = struct{}{}
	s.out = append(s.out, proto{
		kind:      kind,
		parent:    s.parent,
		members:   members,
		edges:     edges,
		directive: dir,
		approx:    s.widen,
	})

	return true
}

//-----------------------------------------------------------------------------
// Subset Enumeration
//-----------------------------------------------------------------------------

// eachCombo calls fn for every ascending k-subset of reps; fn returning
// false stops the enumeration early.
func (s *scanner) eachCombo(k int, fn func(sub []string) bool) {
	n := len(s.reps)
	if k > n {
		return
	}
	sub := make([]string, k)
	var walk func(start, depth int) bool
	walk = func(start, depth int) bool {
		if depth == k {
			return fn(sub)
		}
		for i := start; i <= n-(k-depth); i++ {
			sub[depth] = s.reps[i]
			if !walk(i+1, depth+1) {
				return false
			}
		}

		return true
	}
	walk(0, 0)
}

// eachPerm calls fn for every ordered k-arrangement of reps; fn
// returning false stops the enumeration early.
func (s *scanner) eachPerm(k int, fn func(arr []string) bool) {
	n := len(s.reps)
	if k > n {
		return
	}
	arr := make([]string, k)
	used := make([]bool, n)
	var walk func(depth int) bool
	walk = func(depth int) bool {
		if depth == k {
			return fn(arr)
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			arr[depth] = s.reps[i]
			if !walk(depth + 1) {
				return false
			}
			used[i] = false
		}

		return true
	}
	walk(0)
}

//-----------------------------------------------------------------------------
// Composite Templates (4–5 nodes)
//-----------------------------------------------------------------------------

// envelope searches five-node sets for two disjoint Oppositions, a sole
// center node, and a four-Sextile chain a–b–c–d–e, with Opposition and
// Trine diagonals allowed under the relaxed check. At most one Envelope
// is registered per five-node set.
func (s *scanner) envelope() {
	s.eachCombo(quintSize, func(quint []string) bool {
		var opps [][2]string
		for i := 0; i < len(quint); i++ {
			for j := i + 1; j < len(quint); j++ {
				if ok, _ := s.aspectOK(quint[i], quint[j], s.r.asp.opposition); ok {
					opps = append(opps, [2]string{quint[i], quint[j]})
				}
			}
		}
		if len(opps) < 2 {
			return true
		}
		for x := 0; x < len(opps); x++ {
			for y := x + 1; y < len(opps); y++ {
				if sharesVertex(opps[x], opps[y]) {
					continue // oppositions must be disjoint
				}
				center, ok := soleCenter(quint, opps[x], opps[y])
				if !ok {
					continue
				}
				if s.envelopeOrientations(opps[x], opps[y], center) {
					return true
				}
			}
		}

		return true
	})
}

// envelopeOrientations tries both pair roles and both directions of each
// Opposition until one orientation satisfies the chain and diagonals.
func (s *scanner) envelopeOrientations(p1, p2 [2]string, center string) bool {
	for _, roles := range [2][2][2]string{{p1, p2}, {p2, p1}} {
		primary, secondary := roles[0], roles[1]
		for _, ad := range [2][2]string{primary, {primary[1], primary[0]}} {
			for _, be := range [2][2]string{secondary, {secondary[1], secondary[0]}} {
				if s.tryEnvelope(ad[0], be[0], center, ad[1], be[1]) {
					return true
				}
			}
		}
	}

	return false
}

func (s *scanner) tryEnvelope(a, b, c, d, e string) bool {
	chain := [4][2]string{{a, b}, {b, c}, {c, d}, {d, e}}
	specs := make([]EdgeSpec, 0, 8)
	for _, p := range chain {
		ok, approx := s.hasEdge(p[0], p[1], s.r.asp.sextile)
		if !ok {
			return false
		}
		specs = append(specs, s.spec(p[0], p[1], s.r.asp.sextile, approx))
	}
	diagonals := []struct {
		x, y string
		asp  aspect.Aspect
	}{
		{a, d, s.r.asp.opposition},
		{b, e, s.r.asp.opposition},
		{a, e, s.r.asp.trine},
		{b, d, s.r.asp.trine},
	}
	for _, dg := range diagonals {
		ok, approx := s.aspectOK(dg.x, dg.y, dg.asp)
		if !ok {
			return false
		}
		specs = append(specs, s.spec(dg.x, dg.y, dg.asp, approx))
	}

	dir := &Directive{
		Suppress: map[Kind][]MemberSet{
			SextileWedge: {s.ms(a, b, c), s.ms(c, d, e)},
			Kite:         {s.ms(a, b, c, e), s.ms(a, c, d, e)},
			Cradle:       {s.ms(a, b, c, d), s.ms(b, c, d, e)},
			Wedge: {
				s.ms(a, b, d), s.ms(c, d, e), s.ms(a, c, d), s.ms(a, b, e),
				s.ms(a, d, e), s.ms(b, c, e), s.ms(b, d, e),
			},
		},
		Keep: map[Kind][]MemberSet{
			SextileWedge:    {s.ms(b, c, d)},
			MysticRectangle: {s.ms(a, b, d, e)},
			GrandTrine:      {s.ms(a, c, e)},
		},
	}
	s.add(Envelope, []string{a, b, c, d, e}, specs, dir)

	return true
}

// grandCross searches four-node sets for two diagonal Oppositions and a
// four-Square perimeter; constituent T-Squares are suppressed.
func (s *scanner) grandCross() {
	s.eachCombo(quadSize, func(quad []string) bool {
		a, b, c, d := quad[0], quad[1], quad[2], quad[3]
		checks := []struct {
			x, y string
			asp  aspect.Aspect
		}{
			{a, c, s.r.asp.opposition},
			{b, d, s.r.asp.opposition},
			{a, b, s.r.asp.square},
			{b, c, s.r.asp.square},
			{c, d, s.r.asp.square},
			{d, a, s.r.asp.square},
		}
		specs := make([]EdgeSpec, 0, len(checks))
		for _, ch := range checks {
			ok, approx := s.hasEdge(ch.x, ch.y, ch.asp)
			if !ok {
				return true
			}
			specs = append(specs, s.spec(ch.x, ch.y, ch.asp, approx))
		}
		dir := &Directive{Suppress: map[Kind][]MemberSet{
			TSquare: {s.ms(a, b, c), s.ms(b, c, d), s.ms(c, d, a), s.ms(d, a, b)},
		}}
		s.add(GrandCross, quad, specs, dir)

		return true
	})
}

// mysticRectangle searches four-node sets for two Sextile sides with
// Opposition and Trine diagonals (diagonals may be approximate);
// constituent Wedges are suppressed.
func (s *scanner) mysticRectangle() {
	s.eachCombo(quadSize, func(quad []string) bool {
		a, b, c, d := quad[0], quad[1], quad[2], quad[3]
		specs := make([]EdgeSpec, 0, 6)
		for _, side := range [2][2]string{{a, b}, {c, d}} {
			ok, approx := s.hasEdge(side[0], side[1], s.r.asp.sextile)
			if !ok {
				return true
			}
			specs = append(specs, s.spec(side[0], side[1], s.r.asp.sextile, approx))
		}
		diagonals := []struct {
			x, y string
			asp  aspect.Aspect
		}{
			{a, c, s.r.asp.opposition},
			{b, d, s.r.asp.opposition},
			{a, d, s.r.asp.trine},
			{b, c, s.r.asp.trine},
		}
		for _, dg := range diagonals {
			ok, approx := s.aspectOK(dg.x, dg.y, dg.asp)
			if !ok {
				return true
			}
			specs = append(specs, s.spec(dg.x, dg.y, dg.asp, approx))
		}
		dir := &Directive{Suppress: map[Kind][]MemberSet{
			Wedge: {s.ms(a, b, c), s.ms(a, b, d), s.ms(b, c, d), s.ms(a, c, d)},
		}}
		s.add(MysticRectangle, quad, specs, dir)

		return true
	})
}

// cradle searches ordered four-node arrangements for a three-Sextile
// chain closed by an Opposition, with both cross Trines. The scan stops
// at the first structural hit; constituent Wedges and Sextile Wedges
// are suppressed.
func (s *scanner) cradle() {
	s.eachPerm(quadSize, func(arr []string) bool {
		a, b, c, d := arr[0], arr[1], arr[2], arr[3]
		checks := []struct {
			x, y string
			asp  aspect.Aspect
		}{
			{a, b, s.r.asp.sextile},
			{b, c, s.r.asp.sextile},
			{c, d, s.r.asp.sextile},
			{a, d, s.r.asp.opposition},
			{a, c, s.r.asp.trine},
			{b, d, s.r.asp.trine},
		}
		specs := make([]EdgeSpec, 0, len(checks))
		for _, ch := range checks {
			ok, approx := s.hasEdge(ch.x, ch.y, ch.asp)
			if !ok {
				return true
			}
			specs = append(specs, s.spec(ch.x, ch.y, ch.asp, approx))
		}
		dir := &Directive{Suppress: map[Kind][]MemberSet{
			Wedge:        {s.ms(a, b, d), s.ms(a, c, d)},
			SextileWedge: {s.ms(a, b, c), s.ms(b, c, d)},
		}}
		s.add(Cradle, arr, specs, dir)

		return false // at most one Cradle per pattern per pass
	})
}

// kite searches four-node sets for a Grand Trine plus an apex opposing
// one trine vertex and sextile to the other two; the interior Grand
// Trine and the related Wedges are suppressed.
func (s *scanner) kite() {
	s.eachCombo(quadSize, func(quad []string) bool {
		for skip := 0; skip < quadSize; skip++ {
			apex := quad[skip]
			trio := make([]string, 0, trioSize)
			for i, n := range quad {
				if i != skip {
					trio = append(trio, n)
				}
			}
			a, b, c := trio[0], trio[1], trio[2]
			okAB, apxAB := s.hasEdge(a, b, s.r.asp.trine)
			okBC, apxBC := s.hasEdge(b, c, s.r.asp.trine)
			okAC, apxAC := s.hasEdge(a, c, s.r.asp.trine)
			if !okAB || !okBC || !okAC {
				continue
			}
			for _, tail := range trio {
				okOpp, apxOpp := s.hasEdge(apex, tail, s.r.asp.opposition)
				if !okOpp {
					continue
				}
				rest := make([]string, 0, 2)
				for _, n := range trio {
					if n != tail {
						rest = append(rest, n)
					}
				}
				okS1, apxS1 := s.hasEdge(apex, rest[0], s.r.asp.sextile)
				okS2, apxS2 := s.hasEdge(apex, rest[1], s.r.asp.sextile)
				if !okS1 || !okS2 {
					continue
				}
				specs := []EdgeSpec{
					s.spec(a, b, s.r.asp.trine, apxAB),
					s.spec(b, c, s.r.asp.trine, apxBC),
					s.spec(a, c, s.r.asp.trine, apxAC),
					s.spec(apex, tail, s.r.asp.opposition, apxOpp),
					s.spec(apex, rest[0], s.r.asp.sextile, apxS1),
					s.spec(apex, rest[1], s.r.asp.sextile, apxS2),
				}
				dir := &Directive{Suppress: map[Kind][]MemberSet{
					Wedge:        {s.ms(apex, tail, rest[0]), s.ms(apex, tail, rest[1])},
					SextileWedge: {s.ms(apex, rest[0], rest[1])},
					GrandTrine:   {s.ms(a, b, c)},
				}}
				s.add(Kite, []string{a, b, c, apex}, specs, dir)

				break
			}
		}

		return true
	})
}

//-----------------------------------------------------------------------------
// Simple Templates (3 nodes)
//-----------------------------------------------------------------------------

// grandTrine searches three-node sets for pairwise Trines.
func (s *scanner) grandTrine() {
	s.eachCombo(trioSize, func(trio []string) bool {
		a, b, c := trio[0], trio[1], trio[2]
		specs := make([]EdgeSpec, 0, trioSize)
		for _, p := range [3][2]string{{a, b}, {b, c}, {a, c}} {
			ok, approx := s.hasEdge(p[0], p[1], s.r.asp.trine)
			if !ok {
				return true
			}
			specs = append(specs, s.spec(p[0], p[1], s.r.asp.trine, approx))
		}
		s.add(GrandTrine, trio, specs, nil)

		return true
	})
}

// tSquare searches three-node sets for an Opposition pair squared by an
// apex; the first valid apex per trio wins.
func (s *scanner) tSquare() {
	s.eachCombo(trioSize, func(trio []string) bool {
		for skip := 0; skip < trioSize; skip++ {
			apex := trio[skip]
			ends := make([]string, 0, 2)
			for i, n := range trio {
				if i != skip {
					ends = append(ends, n)
				}
			}
			okOpp, apxOpp := s.hasEdge(ends[0], ends[1], s.r.asp.opposition)
			okS1, apxS1 := s.hasEdge(apex, ends[0], s.r.asp.square)
			okS2, apxS2 := s.hasEdge(apex, ends[1], s.r.asp.square)
			if !okOpp || !okS1 || !okS2 {
				continue
			}
			specs := []EdgeSpec{
				s.spec(ends[0], ends[1], s.r.asp.opposition, apxOpp),
				s.spec(apex, ends[0], s.r.asp.square, apxS1),
				s.spec(apex, ends[1], s.r.asp.square, apxS2),
			}
			s.add(TSquare, trio, specs, nil)

			break
		}

		return true
	})
}

// wedge searches three-node sets carrying exactly one Opposition, one
// Trine and one Sextile.
func (s *scanner) wedge() {
	s.eachCombo(trioSize, func(trio []string) bool {
		opp := s.pairsWith(trio, s.r.asp.opposition)
		tri := s.pairsWith(trio, s.r.asp.trine)
		sex := s.pairsWith(trio, s.r.asp.sextile)
		if len(opp) != 1 || len(tri) != 1 || len(sex) != 1 {
			return true
		}
		s.add(Wedge, trio, []EdgeSpec{opp[0], tri[0], sex[0]}, nil)

		return true
	})
}

// sextileWedge searches three-node sets carrying exactly one Trine and
// two Sextiles with no Opposition.
func (s *scanner) sextileWedge() {
	s.eachCombo(trioSize, func(trio []string) bool {
		opp := s.pairsWith(trio, s.r.asp.opposition)
		tri := s.pairsWith(trio, s.r.asp.trine)
		sex := s.pairsWith(trio, s.r.asp.sextile)
		if len(tri) != 1 || len(sex) != 2 || len(opp) != 0 {
			return true
		}
		s.add(SextileWedge, trio, []EdgeSpec{tri[0], sex[0], sex[1]}, nil)

		return true
	})
}

// pairsWith returns the tagged specs of trio pairs matching asp.
func (s *scanner) pairsWith(trio []string, asp aspect.Aspect) []EdgeSpec {
	var out []EdgeSpec
	for i := 0; i < len(trio); i++ {
		for j := i + 1; j < len(trio); j++ {
			if ok, approx := s.hasEdge(trio[i], trio[j], asp); ok {
				out = append(out, s.spec(trio[i], trio[j], asp, approx))
			}
		}
	}

	return out
}

//-----------------------------------------------------------------------------
// Small Helpers
//-----------------------------------------------------------------------------

func sharesVertex(p, q [2]string) bool {
	return p[0] == q[0] || p[0] == q[1] || p[1] == q[0] || p[1] == q[1]
}

// soleCenter returns the single node of quint not used by either
// Opposition pair; ok is false when the remainder is not exactly one.
func soleCenter(quint []string, p, q [2]string) (string, bool) {
	used := map[string]struct{}{
		p[0]: {}, p[1]: {}, q[0]: {}, q[1]: {},
	}
	center, count := "", 0
	for _, n := range quint {
		if _, ok := used[n]; !ok {
			center = n
			count++
		}
	}

	return center, count == 1
}
