package motif

import (
	"sort"

	"github.com/katalvlaran/aspectra/cluster"
)

// remainderPass groups every major edge not attributed to a surviving
// shape into per-pattern Remainder shapes, one per connectivity group.
// Edge usage is recomputed from the post-suppression shape list, so
// edges that only ever belonged to suppressed shapes are reclaimed here.
func (r *run) remainderPass() {
	used := make(map[edgeUse]struct{})
	for i := range r.shapes {
		for _, e := range r.shapes[i].Edges {
			used[r.useOf(e)] = struct{}{}
		}
	}

	for parent, members := range r.patterns {
		if len(members) == 0 {
			continue
		}
		idx := cluster.Build(r.pos, members, r.cat.ConjunctionOrb())
		repSet := make(map[string]struct{}, len(idx.Reps()))
		for _, rep := range idx.Reps() {
			repSet[rep] = struct{}{}
		}

		// Unclaimed rep-mapped edges inside this pattern.
		type remEdge struct {
			a, b, aspect string
		}
		var (
			edges []remEdge
			adj   = make(map[string][]string)
		)
		seen := make(map[edgeUse]struct{})
		for _, e := range r.major {
			ru, rv := idx.RepOf(e.A), idx.RepOf(e.B)
			if ru == rv {
				continue // intra-cluster self-edge
			}
			if _, ok := repSet[ru]; !ok {
				continue
			}
			if _, ok := repSet[rv]; !ok {
				continue
			}
			a, b := ru, rv
			if b < a {
				a, b = b, a
			}
			key := edgeUse{a: a, b: b, aspect: e.Aspect}
			if _, claimed := used[key]; claimed {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, remEdge{a: a, b: b, aspect: e.Aspect})
			adj[a] = append(adj[a], b)
			adj[b] = append(adj[b], a)
		}
		if len(edges) == 0 {
			continue
		}

		// Group the unclaimed edges by connectivity, seeds sorted.
		nodes := make([]string, 0, len(adj))
		for n := range adj {
			nodes = append(nodes, n)
		}
		sort.Strings(nodes)
		visited := make(map[string]bool, len(nodes))
		for _, seed := range nodes {
			if visited[seed] {
				continue
			}
			comp := make(map[string]bool)
			stack := []string{seed}
			visited[seed] = true
			comp[seed] = true
			var order []string
			order = append(order, seed)
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, nbr := range adj[cur] {
					if visited[nbr] {
						continue
					}
					visited[nbr] = true
					comp[nbr] = true
					order = append(order, nbr)
					stack = append(stack, nbr)
				}
			}

			specs := make([]EdgeSpec, 0, len(edges))
			for _, e := range edges {
				if comp[e.a] && comp[e.b] {
					specs = append(specs, EdgeSpec{A: e.a, B: e.b, Aspect: e.aspect})
				}
			}
			r.register(proto{
				kind:      Remainder,
				parent:    parent,
				members:   idx.Expand(order...),
				edges:     specs,
				remainder: true,
			})
		}
	}
}
