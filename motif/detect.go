package motif

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aspectra/aspect"
	"github.com/katalvlaran/aspectra/chart"
)

// DetectShapes runs the full motif pipeline over precomputed patterns
// and edges:
//
//  1. strict per-pattern template search (major-edge set only)
//  2. global special-shape edge scan (Yod family, Lightning Bolt)
//  3. widened-orb fallback search over nodes no strict shape claimed
//  4. priority suppression with keep protection
//  5. remainder grouping of unclaimed major edges
//  6. canonical sequencing
//
// Determinism: identical input produces id-identical, order-identical
// output, with or without WithParallel. All run state lives in a
// per-invocation context; nothing is shared across calls.
//
// Returns ErrNilCatalog, ErrOptionViolation, or a catalog configuration
// error from aspect lookup; absence of any match yields an empty slice.
func DetectShapes(pos chart.Positions, patterns [][]string, major, minor []chart.Edge,
	cat *aspect.Catalog, opts ...Option) ([]Shape, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	asp, err := resolveTemplateAspects(cat)
	if err != nil {
		return nil, err
	}

	r := newRun(pos, patterns, major, minor, cat, asp, o)

	r.patternPass(false)
	r.specialPass()
	r.patternPass(true)
	r.shapes = resolveSuppression(r.shapes, o.Logger)
	r.remainderPass()
	sequence(r.shapes)

	return r.shapes, nil
}

// patternPass runs one template search per pattern — over the full
// member list in strict mode, or only over members no earlier shape
// claimed in widen mode — and merges results in pattern order.
//
// With Parallel enabled the scans run concurrently: each scanner owns
// its pattern-local state and reads only immutable run inputs, while id
// assignment and the dedup registry stay serialized in the merge loop,
// so output is identical to the sequential path.
func (r *run) patternPass(widen bool) {
	inputs := make([][]string, len(r.patterns))
	for i, members := range r.patterns {
		if !widen {
			inputs[i] = members

			continue
		}
		for _, m := range members {
			if _, claimed := r.usedMembers[m]; !claimed {
				inputs[i] = append(inputs[i], m)
			}
		}
	}

	protos := make([][]proto, len(inputs))
	if r.opts.Parallel {
		var g errgroup.Group
		for i := range inputs {
			if len(inputs[i]) == 0 {
				continue
			}
			g.Go(func() error {
				protos[i] = newScanner(r, i, inputs[i], widen).scan()

				return nil
			})
		}
		_ = g.Wait() // scanners never fail
	} else {
		for i := range inputs {
			if len(inputs[i]) == 0 {
				continue
			}
			protos[i] = newScanner(r, i, inputs[i], widen).scan()
		}
	}

	for _, ps := range protos {
		for _, p := range ps {
			r.register(p)
		}
	}
}
