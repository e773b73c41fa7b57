// Package cluster merges near-coincident objects into representative
// nodes for motif search, while preserving full member lists for output.
//
// 🚀 What is a cluster?
//
//	Objects within the Conjunction orb of each other act as a single
//	point geometrically. The engine therefore collapses them into one
//	representative node before enumerating motif candidates, and expands
//	the representative back to every raw member when a shape is emitted.
//
// Clustering is chained, not pairwise: objects are sorted by position
// and consecutive gaps ≤ orb join the current cluster, so a long run of
// slightly-overlapping objects merges even when its endpoints sit
// further apart than the orb.
//
// ✨ Key features:
//   - one bidirectional Index: rep → members, member → rep, rep → mean
//   - deterministic rep order (ascending mean position)
//   - defensive skip of members missing from the position map
//
// ⚙️ Usage:
//
//	idx := cluster.Build(pos, members, cat.ConjunctionOrb())
//	for _, rep := range idx.Reps() { ... }
//	raw := idx.Expand(rep1, rep2) // sorted raw object ids
//
// Complexity: O(n log n) build, O(1) lookups.
package cluster
