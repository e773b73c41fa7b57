package motif

import "sort"

// envelopeChain is the canonical ordering of an Envelope and the kept
// sub-shapes it protects: the parent composite lists first, its
// protected children immediately after, in fixed slots.
var envelopeChain = []struct {
	kind Kind
	slot int
}{
	{MysticRectangle, 1},
	{GrandTrine, 2},
	{SextileWedge, 3},
}

// chainSlot places one shape inside an Envelope chain.
type chainSlot struct {
	envelopeID int
	slot       int
}

// sequence imposes the final deterministic order: remainder shapes last;
// an Envelope and its protected kept sub-shapes form a contiguous block
// anchored at the Envelope's detection id; every other shape sorts by
// its own detection id. Stable for reproducible output.
func sequence(shapes []Shape) {
	order := make(map[seenKey]chainSlot)
	for i := range shapes {
		s := &shapes[i]
		if s.Kind != Envelope {
			continue
		}
		envKey := seenKey{kind: Envelope, members: s.MemberSet()}
		if _, taken := order[envKey]; !taken {
			order[envKey] = chainSlot{envelopeID: s.ID, slot: 0}
		}
		if s.Directive == nil {
			continue
		}
		for _, link := range envelopeChain {
			for _, ms := range s.Directive.Keep[link.kind] {
				key := seenKey{kind: link.kind, members: ms}
				if _, taken := order[key]; !taken {
					order[key] = chainSlot{envelopeID: s.ID, slot: link.slot}
				}
			}
		}
	}

	type sortKey struct {
		remainder bool
		major     int
		slot      int
		id        int
	}
	keyOf := func(s *Shape) sortKey {
		if cs, ok := order[seenKey{kind: s.Kind, members: s.MemberSet()}]; ok {
			return sortKey{remainder: s.Remainder, major: cs.envelopeID, slot: cs.slot, id: s.ID}
		}

		return sortKey{remainder: s.Remainder, major: s.ID, id: s.ID}
	}

	sort.SliceStable(shapes, func(i, j int) bool {
		a, b := keyOf(&shapes[i]), keyOf(&shapes[j])
		if a.remainder != b.remainder {
			return !a.remainder
		}
		if a.major != b.major {
			return a.major < b.major
		}
		if a.slot != b.slot {
			return a.slot < b.slot
		}

		return a.id < b.id
	})
}
