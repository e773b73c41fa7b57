package chart

import "sort"

// Components partitions the objects into patterns: connected components
// of the major-edge graph. Objects without any major edge are excluded
// (the filament package handles them as singletons).
//
// The traversal is stack-based and fully deterministic: components are
// seeded in sorted id order, neighbors visited in sorted order, and each
// component lists its members in insertion (visit) order.
func Components(pos Positions, major []Edge) [][]string {
	adj := make(map[string][]string, len(pos))
	for _, e := range major {
		if _, ok := pos[e.A]; !ok {
			continue
		}
		if _, ok := pos[e.B]; !ok {
			continue
		}
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}
	for _, nbrs := range adj {
		sort.Strings(nbrs)
	}

	visited := make(map[string]bool, len(adj))
	var comps [][]string
	for _, id := range sortedIDs(pos) {
		if visited[id] || len(adj[id]) == 0 {
			continue
		}
		comps = append(comps, walkComponent(id, adj, visited))
	}

	return comps
}

// walkComponent collects one component starting at seed.
func walkComponent(seed string, adj map[string][]string, visited map[string]bool) []string {
	stack := []string{seed}
	visited[seed] = true
	comp := []string{seed}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nbr := range adj[cur] {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			stack = append(stack, nbr)
			comp = append(comp, nbr)
		}
	}

	return comp
}
