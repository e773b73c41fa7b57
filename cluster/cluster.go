package cluster

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/aspectra/chart"
)

// Index is the bidirectional cluster lookup owned by one detection run:
// representative → members, member → representative, representative →
// mean position. Built once per search domain and passed by reference;
// never duplicated per call.
type Index struct {
	reps    []string
	members map[string][]string
	anchor  map[string]string
	mean    map[string]float64
}

// Build clusters the given members by position. Members are sorted by
// longitude (id as tie-break), then scanned in order: a gap ≤ orb to the
// previous member chains into the current cluster. The representative is
// the cluster's first (lowest-longitude) member; its position is the
// plain mean of member longitudes.
//
// Members absent from pos are skipped defensively. An empty member list
// yields an empty, usable Index.
func Build(pos chart.Positions, members []string, orb float64) *Index {
	present := make([]string, 0, len(members))
	for _, m := range members {
		if _, ok := pos[m]; ok {
			present = append(present, m)
		}
	}
	sort.Slice(present, func(i, j int) bool {
		if pos[present[i]] != pos[present[j]] {
			return pos[present[i]] < pos[present[j]]
		}

		return present[i] < present[j]
	})

	ix := &Index{
		members: make(map[string][]string),
		anchor:  make(map[string]string, len(present)),
		mean:    make(map[string]float64),
	}
	if len(present) == 0 {
		return ix
	}

	current := []string{present[0]}
	for _, m := range present[1:] {
		prev := current[len(current)-1]
		if math.Abs(pos[m]-pos[prev]) <= orb {
			current = append(current, m)
			continue
		}
		ix.commit(pos, current)
		current = []string{m}
	}
	ix.commit(pos, current)

	return ix
}

// commit registers one finished cluster.
func (ix *Index) commit(pos chart.Positions, cluster []string) {
	rep := cluster[0]
	degrees := make([]float64, len(cluster))
	for i, m := range cluster {
		degrees[i] = pos[m]
		ix.anchor[m] = rep
	}
	ix.reps = append(ix.reps, rep)
	ix.members[rep] = cluster
	ix.mean[rep] = stat.Mean(degrees, nil)
}

// Reps returns the representative ids in ascending position order.
// The returned slice is shared; callers must not mutate it.
func (ix *Index) Reps() []string { return ix.reps }

// RepOf returns the representative of id, or id itself when the object
// was never clustered (unknown ids map to themselves).
func (ix *Index) RepOf(id string) string {
	if rep, ok := ix.anchor[id]; ok {
		return rep
	}

	return id
}

// MembersOf returns the raw members of rep, or just {rep} when rep is
// not a known representative.
func (ix *Index) MembersOf(rep string) []string {
	if ms, ok := ix.members[rep]; ok {
		return ms
	}

	return []string{rep}
}

// Mean returns the mean position of rep's cluster. The second return is
// false for unknown representatives.
func (ix *Index) Mean(rep string) (float64, bool) {
	m, ok := ix.mean[rep]

	return m, ok
}

// Expand maps the given nodes through MembersOf and returns the union of
// raw object ids, sorted and de-duplicated. Shape member lists always
// come from here: output never contains cluster representatives standing
// in for their members.
func (ix *Index) Expand(nodes ...string) []string {
	set := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		for _, m := range ix.MembersOf(n) {
			set[m] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Strings(out)

	return out
}
