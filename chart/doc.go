// Package chart builds the aspect graph from object positions and
// partitions it into patterns (connected components).
//
// 🚀 What does chart do?
//
//	Given a map of object id → ecliptic longitude and a validated aspect
//	catalog, chart classifies every unordered pair exactly once and
//	splits the resulting edges into major (pattern-forming) and minor
//	sets. Major edges then drive a deterministic connected-component
//	partition: each component is one "pattern", an independent search
//	domain for motif detection. Objects with no major edge join no
//	component; the filament package assigns them synthetic singleton
//	indices.
//
// ✨ Key features:
//   - one classification per pair, ids scanned in sorted order
//   - optional compass-axis overlay: a synthetic Ascendant–Descendant
//     Opposition when both points are present and not already linked
//   - optional applying/separating annotation from daily-motion speeds
//   - stack-based component traversal with insertion-ordered membership
//
// ⚙️ Usage:
//
//	major, minor, err := chart.BuildEdges(pos, cat, chart.WithCompassAxis())
//	patterns := chart.Components(pos, major)
//
// Complexity: O(n²·|catalog|) edge building, O(V+E) partitioning.
package chart
