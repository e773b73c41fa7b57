// Package filament finds minor-aspect links between chart patterns.
//
// Patterns are connected components of the major-aspect graph; a
// filament is a Quincunx or Sesquisquare link between two objects,
// recorded with the pattern index of each endpoint. Objects carrying no
// major edge belong to no pattern and receive synthetic singleton
// indices past the real pattern range, so a filament can bridge a
// pattern and a lone object, or two lone objects.
//
// ✨ Operations:
//
//   - Links: scans every object pair for the two filament aspects and
//     returns the links plus the singleton index map.
//   - ComboGroups: groups pattern indices transitively connected by
//     cross-pattern filaments.
//   - InternalMinorEdges: the same minor scan restricted to one
//     pattern's members, for callers that render intra-pattern links.
//
// Output order is deterministic: pairs scan in sorted id order,
// singleton indices follow sorted object names, and combo groups sort
// by their smallest member.
package filament
