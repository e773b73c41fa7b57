// Package aspect defines the aspect catalog — named angular relationships
// with target angle and orb — and the pure pairwise classifier.
//
// 🚀 What is an aspect?
//
//	An aspect is a named relationship between two points on the 360°
//	wheel, defined by a target separation (0° Conjunction, 60° Sextile,
//	90° Square, 120° Trine, 180° Opposition, …) and an orb: the allowed
//	deviation in degrees for the match to still count.
//
// ✨ Key features:
//   - ordered, validated Catalog (declaration order breaks classifier ties)
//   - built-in Default catalog matching traditional orbs
//   - YAML loading for caller-supplied catalogs (FromYAML)
//   - Classify: best in-orb aspect for a pair, smallest |delta| wins
//
// ⚙️ Usage:
//
//	cat := aspect.Default()
//	if m, ok := aspect.Classify(10, 128, cat); ok {
//	  fmt.Println(m.Aspect.Name, m.Delta) // "Trine" -2
//	}
//
// Classification is a pure function: no state, no side effects, O(len(catalog))
// per pair. Absence of a match is the expected negative result, not an error.
package aspect
