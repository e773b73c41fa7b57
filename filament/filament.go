package filament

import (
	"errors"
	"sort"

	"github.com/katalvlaran/aspectra/aspect"
	"github.com/katalvlaran/aspectra/chart"
)

// ErrNilCatalog is returned when Links or InternalMinorEdges receives a
// nil aspect catalog.
var ErrNilCatalog = errors.New("filament: nil catalog")

// filamentAspects are the minor aspects that form filaments, in match
// precedence order: a pair matching both records only the first.
var filamentAspects = []string{aspect.Quincunx, aspect.Sesquisquare}

// Filament is one minor-aspect link plus the pattern (or singleton)
// index of each endpoint. Endpoints inside the same pattern are
// recorded too; ComboGroups ignores them.
type Filament struct {
	A, B     string
	Aspect   string
	Delta    float64
	PatternA int
	PatternB int
}

// Links scans every unordered object pair for a filament aspect and
// returns the links plus the singleton map: objects outside every
// pattern, indexed past the real pattern range in sorted name order.
//
// Returns ErrNilCatalog, or a wrapped aspect.ErrUnknownAspect when the
// catalog lacks a filament aspect.
func Links(pos chart.Positions, patterns [][]string, cat *aspect.Catalog) ([]Filament, map[string]int, error) {
	if cat == nil {
		return nil, nil, ErrNilCatalog
	}
	defs, err := resolve(cat)
	if err != nil {
		return nil, nil, err
	}

	patternOf := make(map[string]int)
	for idx, members := range patterns {
		for _, m := range members {
			patternOf[m] = idx
		}
	}
	singletons := make(map[string]int)
	for _, id := range sortedIDs(pos) {
		if _, patterned := patternOf[id]; !patterned {
			singletons[id] = len(patterns) + len(singletons)
			patternOf[id] = singletons[id]
		}
	}

	var out []Filament
	ids := sortedIDs(pos)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			sep := aspect.Separation(pos[a], pos[b])
			for _, def := range defs {
				delta := sep - def.Angle
				if delta < -def.Orb || delta > def.Orb {
					continue
				}
				out = append(out, Filament{
					A: a, B: b,
					Aspect:   def.Name,
					Delta:    delta,
					PatternA: patternOf[a],
					PatternB: patternOf[b],
				})

				break
			}
		}
	}

	return out, singletons, nil
}

// ComboGroups groups pattern/singleton indices transitively connected
// by cross-index filaments. Only groups of two or more indices are
// reported; each group is sorted, and groups order by smallest member.
func ComboGroups(fils []Filament) [][]int {
	adj := make(map[int][]int)
	for _, f := range fils {
		if f.PatternA == f.PatternB {
			continue
		}
		adj[f.PatternA] = append(adj[f.PatternA], f.PatternB)
		adj[f.PatternB] = append(adj[f.PatternB], f.PatternA)
	}

	nodes := make([]int, 0, len(adj))
	for n := range adj {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes)

	var groups [][]int
	visited := make(map[int]bool, len(nodes))
	for _, seed := range nodes {
		if visited[seed] {
			continue
		}
		var group []int
		stack := []int{seed}
		visited[seed] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			group = append(group, cur)
			for _, nbr := range adj[cur] {
				if !visited[nbr] {
					visited[nbr] = true
					stack = append(stack, nbr)
				}
			}
		}
		if len(group) < 2 {
			continue
		}
		sort.Ints(group)
		groups = append(groups, group)
	}

	return groups
}

// InternalMinorEdges returns the filament-aspect links between members
// of a single pattern, for intra-pattern rendering. Members missing
// from pos are skipped.
func InternalMinorEdges(pos chart.Positions, members []string, cat *aspect.Catalog) ([]chart.Edge, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	defs, err := resolve(cat)
	if err != nil {
		return nil, err
	}

	present := make([]string, 0, len(members))
	for _, m := range members {
		if _, ok := pos[m]; ok {
			present = append(present, m)
		}
	}
	sort.Strings(present)

	var out []chart.Edge
	for i := 0; i < len(present); i++ {
		for j := i + 1; j < len(present); j++ {
			a, b := present[i], present[j]
			sep := aspect.Separation(pos[a], pos[b])
			for _, def := range defs {
				delta := sep - def.Angle
				if delta < -def.Orb || delta > def.Orb {
					continue
				}
				out = append(out, chart.Edge{A: a, B: b, Aspect: def.Name, Delta: delta})

				break
			}
		}
	}

	return out, nil
}

// resolve fetches the filament aspect definitions in precedence order.
func resolve(cat *aspect.Catalog) ([]aspect.Aspect, error) {
	defs := make([]aspect.Aspect, 0, len(filamentAspects))
	for _, name := range filamentAspects {
		a, err := cat.Get(name)
		if err != nil {
			return nil, err
		}
		defs = append(defs, a)
	}

	return defs, nil
}

// sortedIDs returns the object ids in ascending order.
func sortedIDs(pos chart.Positions) []string {
	ids := make([]string, 0, len(pos))
	for id := range pos {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
