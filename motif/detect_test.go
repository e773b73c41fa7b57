package motif

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aspectra/aspect"
	"github.com/katalvlaran/aspectra/chart"
)

// detect runs the full pipeline over pos with the default catalog.
func detect(t *testing.T, pos chart.Positions, opts ...Option) []Shape {
	t.Helper()
	cat := aspect.Default()
	major, minor, err := chart.BuildEdges(pos, cat)
	require.NoError(t, err)
	patterns := chart.Components(pos, major)
	shapes, err := DetectShapes(pos, patterns, major, minor, cat, opts...)
	require.NoError(t, err)

	return shapes
}

func kindsOf(shapes []Shape) []Kind {
	kinds := make([]Kind, len(shapes))
	for i, s := range shapes {
		kinds[i] = s.Kind
	}

	return kinds
}

func TestDetectShapes_GrandTrine(t *testing.T) {
	shapes := detect(t, chart.Positions{"Sun": 0, "Moon": 120, "Mars": 240})

	require.Len(t, shapes, 1)
	assert.Equal(t, GrandTrine, shapes[0].Kind)
	assert.Equal(t, []string{"Mars", "Moon", "Sun"}, shapes[0].Members)
	assert.False(t, shapes[0].Approx)
	assert.False(t, shapes[0].Remainder)
}

func TestDetectShapes_TSquare(t *testing.T) {
	shapes := detect(t, chart.Positions{"Sun": 0, "Moon": 90, "Mars": 180})

	require.Len(t, shapes, 1)
	assert.Equal(t, TSquare, shapes[0].Kind)
	assert.Equal(t, []string{"Mars", "Moon", "Sun"}, shapes[0].Members)

	var squares, oppositions int
	for _, e := range shapes[0].Edges {
		switch e.Aspect {
		case aspect.Square:
			squares++
		case aspect.Opposition:
			oppositions++
		}
	}
	assert.Equal(t, 2, squares)
	assert.Equal(t, 1, oppositions)
}

// Two objects within the Conjunction orb count as one search vertex but
// every detected shape reports both raw objects.
func TestDetectShapes_ConjunctionCollapse(t *testing.T) {
	shapes := detect(t, chart.Positions{
		"Sun": 0, "Mercury": 2, "Moon": 120, "Mars": 240,
	})

	require.Len(t, shapes, 1)
	assert.Equal(t, GrandTrine, shapes[0].Kind)
	assert.Equal(t, []string{"Mars", "Mercury", "Moon", "Sun"}, shapes[0].Members)
}

// A Kite subsumes its interior Grand Trine and every trio it covers.
func TestDetectShapes_KiteSuppressesGrandTrine(t *testing.T) {
	shapes := detect(t, chart.Positions{
		"Sun": 0, "Venus": 60, "Moon": 120, "Mars": 240,
	})

	require.Len(t, shapes, 1)
	assert.Equal(t, Kite, shapes[0].Kind)
	assert.Equal(t, []string{"Mars", "Moon", "Sun", "Venus"}, shapes[0].Members)
}

// An Envelope suppresses its sub-figures except the three its keep-map
// protects, and the survivors list in the canonical chain order.
func TestDetectShapes_EnvelopeKeepChain(t *testing.T) {
	shapes := detect(t, chart.Positions{
		"Sun": 0, "Venus": 60, "Moon": 120, "Mars": 180, "Jupiter": 240,
	})

	require.Equal(t,
		[]Kind{Envelope, MysticRectangle, GrandTrine, SextileWedge},
		kindsOf(shapes))
	assert.Equal(t, []string{"Jupiter", "Mars", "Moon", "Sun", "Venus"}, shapes[0].Members)
	assert.Equal(t, []string{"Jupiter", "Mars", "Sun", "Venus"}, shapes[1].Members)
	assert.Equal(t, []string{"Jupiter", "Moon", "Sun"}, shapes[2].Members)
	assert.Equal(t, []string{"Mars", "Moon", "Venus"}, shapes[3].Members)
}

// A trine edge outside the strict orb but inside orb × widen factor is
// only found by the fallback pass, and the shape is flagged approximate.
func TestDetectShapes_WidenPassApproximate(t *testing.T) {
	shapes := detect(t, chart.Positions{"Sun": 0, "Venus": 122, "Moon": 244})

	require.Len(t, shapes, 1)
	assert.Equal(t, GrandTrine, shapes[0].Kind)
	assert.True(t, shapes[0].Approx)

	var approxEdges int
	for _, e := range shapes[0].Edges {
		if e.Approx {
			approxEdges++
		}
	}
	assert.Equal(t, 1, approxEdges, "only the out-of-orb edge is approximate")
}

// A lone major edge matching no template surfaces as a Remainder shape.
func TestDetectShapes_RemainderLoneSquare(t *testing.T) {
	shapes := detect(t, chart.Positions{"Sun": 0, "Moon": 90})

	require.Len(t, shapes, 1)
	assert.Equal(t, Remainder, shapes[0].Kind)
	assert.True(t, shapes[0].Remainder)
	assert.Equal(t, []string{"Moon", "Sun"}, shapes[0].Members)
	require.Len(t, shapes[0].Edges, 1)
	assert.Equal(t, aspect.Square, shapes[0].Edges[0].Aspect)
}

// twoPatternChart holds a T-Square and a Grand Trine in separate
// components, with no major cross-links.
var twoPatternChart = chart.Positions{
	"Venus": 10, "Jupiter": 100, "Saturn": 190,
	"Sun": 0, "Moon": 120, "Mars": 240,
}

func TestDetectShapes_Idempotence(t *testing.T) {
	first := detect(t, twoPatternChart)
	second := detect(t, twoPatternChart)

	require.Equal(t, []Kind{TSquare, GrandTrine}, kindsOf(first))
	assert.Empty(t, cmp.Diff(first, second))
}

// shapeSet reduces shapes to their sorted (kind, member-set) keys, the
// content identity that must survive any input reordering.
func shapeSet(shapes []Shape) []string {
	keys := make([]string, 0, len(shapes))
	for i := range shapes {
		keys = append(keys, shapes[i].Kind.String()+" "+string(shapes[i].MemberSet()))
	}
	sort.Strings(keys)

	return keys
}

// Reversing the pattern list and every member slice must not change the
// de-duplicated shape set, only traversal order.
func TestDetectShapes_PermutationInvariance(t *testing.T) {
	for name, pos := range map[string]chart.Positions{
		"two patterns": twoPatternChart,
		"envelope": {
			"Sun": 0, "Venus": 60, "Moon": 120, "Mars": 180, "Jupiter": 240,
		},
	} {
		t.Run(name, func(t *testing.T) {
			cat := aspect.Default()
			major, minor, err := chart.BuildEdges(pos, cat)
			require.NoError(t, err)
			patterns := chart.Components(pos, major)

			baseline, err := DetectShapes(pos, patterns, major, minor, cat)
			require.NoError(t, err)
			require.NotEmpty(t, baseline)

			reversed := make([][]string, 0, len(patterns))
			for i := len(patterns) - 1; i >= 0; i-- {
				members := make([]string, 0, len(patterns[i]))
				for j := len(patterns[i]) - 1; j >= 0; j-- {
					members = append(members, patterns[i][j])
				}
				reversed = append(reversed, members)
			}
			permuted, err := DetectShapes(pos, reversed, major, minor, cat)
			require.NoError(t, err)

			assert.Equal(t, shapeSet(baseline), shapeSet(permuted))
		})
	}
}

func TestDetectShapes_ParallelMatchesSequential(t *testing.T) {
	sequential := detect(t, twoPatternChart)
	parallel := detect(t, twoPatternChart, WithParallel())

	assert.Empty(t, cmp.Diff(sequential, parallel))
}

func TestDetectShapes_NilCatalog(t *testing.T) {
	_, err := DetectShapes(chart.Positions{"Sun": 0}, nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrNilCatalog)
}

func TestDetectShapes_OptionViolation(t *testing.T) {
	_, err := DetectShapes(chart.Positions{"Sun": 0}, nil, nil, nil,
		aspect.Default(), WithWidenFactor(0.5))
	assert.ErrorIs(t, err, ErrOptionViolation)

	_, err = DetectShapes(chart.Positions{"Sun": 0}, nil, nil, nil,
		aspect.Default(), WithDiagonalSlack(-1))
	assert.ErrorIs(t, err, ErrOptionViolation)
}
