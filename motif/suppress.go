package motif

import (
	"sort"

	"go.uber.org/zap"
)

// resolveSuppression applies every shape's suppress directive under the
// fixed priority ladder. A victim is removed iff it exists with an exact
// (kind, member-set) match, the suppressor's priority is >= the
// victim's, and no currently-present shape's keep-map protects that
// exact pair. Lightning Bolt shapes are exempt from removal.
//
// Directive maps are walked in fixed kind order with sorted member sets,
// so the outcome never depends on map iteration order.
func resolveSuppression(shapes []Shape, log *zap.Logger) []Shape {
	suppressed := make([]bool, len(shapes))

	for i := range shapes {
		big := &shapes[i]
		if big.Directive == nil || len(big.Directive.Suppress) == 0 {
			continue
		}
		for _, kind := range sortedKinds(big.Directive.Suppress) {
			targets := append([]MemberSet(nil), big.Directive.Suppress[kind]...)
			sort.Slice(targets, func(a, b int) bool { return targets[a] < targets[b] })
			for _, target := range targets {
				suppressTarget(shapes, suppressed, big, kind, target, log)
			}
		}
	}

	kept := make([]Shape, 0, len(shapes))
	for i := range shapes {
		if !suppressed[i] {
			kept = append(kept, shapes[i])
		}
	}

	return kept
}

// suppressTarget marks every present victim matching (kind, target),
// honoring priority, keep protection, and the Lightning Bolt exemption.
func suppressTarget(shapes []Shape, suppressed []bool, big *Shape, kind Kind, target MemberSet, log *zap.Logger) {
	for j := range shapes {
		victim := &shapes[j]
		if suppressed[j] || victim.Kind != kind || victim.Kind == LightningBolt {
			continue
		}
		if victim.MemberSet() != target {
			continue
		}
		if priorityOf(big.Kind) < priorityOf(victim.Kind) {
			continue
		}
		if keeper := protectedBy(shapes, suppressed, kind, target); keeper != nil {
			log.Debug("keep override",
				zap.Int("shape", victim.ID),
				zap.String("kind", victim.Kind.String()),
				zap.Strings("members", target.Members()),
				zap.Int("protectedBy", keeper.ID),
				zap.String("protectorKind", keeper.Kind.String()),
			)

			continue
		}
		suppressed[j] = true
		log.Debug("suppress",
			zap.Int("shape", victim.ID),
			zap.String("kind", victim.Kind.String()),
			zap.Strings("members", target.Members()),
			zap.Int("parent", victim.Parent),
			zap.Int("by", big.ID),
			zap.String("byKind", big.Kind.String()),
		)
	}
}

// protectedBy returns the first currently-present shape whose keep-map
// names (kind, target), or nil. Any keep wins, regardless of which
// shape declared it first.
func protectedBy(shapes []Shape, suppressed []bool, kind Kind, target MemberSet) *Shape {
	for k := range shapes {
		if suppressed[k] {
			continue
		}
		keeper := &shapes[k]
		if keeper.Directive == nil || keeper.Directive.Keep == nil {
			continue
		}
		for _, ms := range keeper.Directive.Keep[kind] {
			if ms == target {
				return keeper
			}
		}
	}

	return nil
}

// sortedKinds returns the map's kinds in ascending enum order.
func sortedKinds(m map[Kind][]MemberSet) []Kind {
	kinds := make([]Kind, 0, len(m))
	for k := range m {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(a, b int) bool { return kinds[a] < kinds[b] })

	return kinds
}
