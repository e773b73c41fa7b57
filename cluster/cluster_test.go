package cluster_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aspectra/chart"
	"github.com/katalvlaran/aspectra/cluster"
)

// TestBuild_PairCollapse merges two objects within orb into one node.
func TestBuild_PairCollapse(t *testing.T) {
	pos := chart.Positions{"Sun": 10, "Mercury": 13, "Mars": 200}
	ix := cluster.Build(pos, []string{"Sun", "Mercury", "Mars"}, 4)

	require.Equal(t, []string{"Sun", "Mars"}, ix.Reps())
	assert.Equal(t, "Sun", ix.RepOf("Mercury"))
	assert.Equal(t, "Sun", ix.RepOf("Sun"))
	assert.Equal(t, "Mars", ix.RepOf("Mars"))
	assert.Equal(t, []string{"Sun", "Mercury"}, ix.MembersOf("Sun"))

	mean, ok := ix.Mean("Sun")
	require.True(t, ok)
	assert.InDelta(t, 11.5, mean, 1e-9)
}

// TestBuild_ChainedRun verifies chained (not pairwise) merging: each gap
// is within orb but the run endpoints are 8° apart.
func TestBuild_ChainedRun(t *testing.T) {
	pos := chart.Positions{"A": 0, "B": 3, "C": 6, "D": 8}
	ix := cluster.Build(pos, []string{"D", "C", "B", "A"}, 4)

	require.Len(t, ix.Reps(), 1)
	assert.Equal(t, "A", ix.Reps()[0])
	assert.Equal(t, []string{"A", "B", "C", "D"}, ix.MembersOf("A"))
	for _, m := range []string{"A", "B", "C", "D"} {
		assert.Equal(t, "A", ix.RepOf(m))
	}
}

// TestBuild_SkipsUnknownMembers drops ids missing from the position map.
func TestBuild_SkipsUnknownMembers(t *testing.T) {
	pos := chart.Positions{"A": 0}
	ix := cluster.Build(pos, []string{"A", "Ghost"}, 4)
	assert.Equal(t, []string{"A"}, ix.Reps())
	assert.Equal(t, "Ghost", ix.RepOf("Ghost"), "unknown ids map to themselves")
}

// TestExpand returns the sorted union of raw members.
func TestExpand(t *testing.T) {
	pos := chart.Positions{"Sun": 10, "Mercury": 12, "Venus": 14, "Mars": 100}
	ix := cluster.Build(pos, []string{"Sun", "Mercury", "Venus", "Mars"}, 4)

	got := ix.Expand("Sun", "Mars")
	want := []string{"Mars", "Mercury", "Sun", "Venus"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand = %v; want %v", got, want)
	}
}

// TestBuild_Empty yields a usable empty index.
func TestBuild_Empty(t *testing.T) {
	ix := cluster.Build(chart.Positions{}, nil, 4)
	assert.Empty(t, ix.Reps())
	assert.Equal(t, []string{"X"}, ix.MembersOf("X"))
	_, ok := ix.Mean("X")
	assert.False(t, ok)
}
