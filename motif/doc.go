// Package motif detects named aspect figures inside connected chart
// patterns and resolves overlaps between them.
//
// 🚀 What the package gives you:
//
//   - DetectShapes: the full pipeline — strict template search over each
//     pattern, a global edge scan for the Yod family and Lightning Bolt,
//     a widened-orb fallback over unclaimed nodes, priority suppression
//     with keep protection, remainder grouping, and canonical output
//     ordering.
//   - Shape: one detected figure with its kind, member objects, tagged
//     edges, and lifecycle flags (approximate, remainder).
//   - Kind: the figure taxonomy, from Grand Trine to Lightning Bolt.
//
// ✨ Detection model:
//
//   - Objects within the Conjunction orb are chained into clusters; the
//     template search runs over cluster representatives and every match
//     is expanded back to the raw member list, so a stellium counts as
//     one vertex but reports all of its objects.
//   - Strict passes consult only the precomputed major-edge set. The
//     fallback pass widens orbs by WithWidenFactor and flags matches as
//     approximate; composite diagonals get a small fixed slack either
//     way.
//   - Composite figures carry suppression directives naming the simpler
//     figures they subsume, plus keep directives protecting the
//     sub-figures worth reporting alongside. Suppression honors the
//     priority ladder and removes a figure only on an exact kind and
//     member-set match with no surviving protector.
//
// ⚙️ Determinism & concurrency:
//
//   - Identical input yields identical output: ids, order, everything.
//     All mutable state lives in a per-call context.
//   - WithParallel runs the per-pattern searches concurrently; results
//     merge in pattern order, so output is unchanged.
//
// Quick start:
//
//	major, minor, _ := chart.BuildEdges(pos, cat)
//	patterns := chart.Components(pos, major)
//	shapes, err := motif.DetectShapes(pos, patterns, major, minor, cat)
//
// See engine.Detect for the one-call wrapper over the whole pipeline.
package motif
