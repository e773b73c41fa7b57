// Package aspectra detects geometrically significant multi-point
// configurations ("motifs") among angular positions on a circle — the
// aspect-pattern core of an astrological chart engine.
//
// 🚀 What is aspectra?
//
//	A deterministic, pure-computation library that takes a set of named
//	points on the 360° wheel plus an aspect catalog, and produces a
//	de-duplicated, priority-resolved list of named shapes:
//		• Classification: best-matching aspect per object pair, within orb
//		• Graph building: major/minor edge partition, compass-axis overlay
//		• Clustering: near-coincident objects collapse into one search node
//		• Detection: Grand Trine, T-Square, Grand Cross, Mystic Rectangle,
//		  Cradle, Kite, Envelope, Wedge, Sextile Wedge, Yod, Wide Yod,
//		  Lightning Bolt — strict pass first, widened-orb fallback after
//		• Suppression: priority ordering with explicit suppress/keep maps
//		• Remainder: unclaimed major edges grouped per pattern
//		• Filaments: minor-aspect bridges between patterns and singletons
//
// ✨ Why choose aspectra?
//
//   - Deterministic – identical input yields id-identical output, always
//   - Pure – no I/O, no globals; every run builds its state from scratch
//   - Explicit – closed shape enum, typed suppress/keep directives
//   - Parallel-ready – opt-in per-pattern concurrency, same output
//
// Everything is organized under six subpackages:
//
//	aspect/   — aspect catalog, validation, best-match classifier
//	chart/    — positions, aspect-graph building, connected components
//	cluster/  — conjunction clustering with a bidirectional index
//	motif/    — shape detection, suppression, remainder, ordering
//	filament/ — minor links, singletons, combo groups
//	engine/   — one-call facade over the whole pipeline
//
// Quick ASCII example:
//
//	      A(0°)
//	     /     \
//	 C(240°)──B(120°)
//
//	three points 120° apart form one Grand Trine.
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/aspectra/engine
package aspectra
