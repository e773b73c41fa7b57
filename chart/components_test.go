package chart_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/aspectra/aspect"
	"github.com/katalvlaran/aspectra/chart"
)

// buildMajor is a shorthand for edge-list construction in tests.
func buildMajor(t *testing.T, pos chart.Positions) []chart.Edge {
	t.Helper()
	major, _, err := chart.BuildEdges(pos, aspect.Default())
	if err != nil {
		t.Fatalf("BuildEdges: %v", err)
	}

	return major
}

// TestComponents_TwoPatternsAndSingleton splits a six-object chart into
// two patterns and leaves the aspect-free object out entirely.
func TestComponents_TwoPatternsAndSingleton(t *testing.T) {
	pos := chart.Positions{
		// pattern 1: Grand Trine
		"A": 0, "B": 120, "C": 240,
		// pattern 2: lone Square pair
		"D": 10, "E": 100,
		// singleton: aspects nothing (closest approach: 25° to D… none in orb)
		"F": 35,
	}
	// Verify F really has no major edge in this layout.
	for _, e := range buildMajor(t, pos) {
		if e.A == "F" || e.B == "F" {
			t.Fatalf("layout broken: F has edge %+v", e)
		}
	}

	comps := chart.Components(pos, buildMajor(t, pos))
	if len(comps) != 2 {
		t.Fatalf("components = %d; want 2 (%v)", len(comps), comps)
	}

	// Seeded in sorted order: A's component first.
	set1 := map[string]bool{}
	for _, m := range comps[0] {
		set1[m] = true
	}
	if !set1["A"] || !set1["B"] || !set1["C"] || len(set1) != 3 {
		t.Errorf("component 0 = %v; want {A,B,C}", comps[0])
	}
	if want := []string{"D", "E"}; !reflect.DeepEqual(comps[1], want) {
		t.Errorf("component 1 = %v; want %v", comps[1], want)
	}
}

// TestComponents_Deterministic runs the partition twice and demands
// identical ordering.
func TestComponents_Deterministic(t *testing.T) {
	pos := chart.Positions{"A": 0, "B": 90, "C": 180, "D": 270, "E": 45}
	major := buildMajor(t, pos)
	first := chart.Components(pos, major)
	second := chart.Components(pos, major)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("non-deterministic components: %v vs %v", first, second)
	}
}

// TestComponents_UnknownEndpointSkipped drops edges whose endpoint is
// absent from the position map.
func TestComponents_UnknownEndpointSkipped(t *testing.T) {
	pos := chart.Positions{"A": 0, "B": 120}
	edges := []chart.Edge{
		{A: "A", B: "B", Aspect: aspect.Trine},
		{A: "A", B: "Ghost", Aspect: aspect.Square},
	}
	comps := chart.Components(pos, edges)
	if len(comps) != 1 || len(comps[0]) != 2 {
		t.Fatalf("components = %v; want one {A,B}", comps)
	}
}
