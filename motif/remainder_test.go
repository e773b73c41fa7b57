package motif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/aspectra/aspect"
	"github.com/katalvlaran/aspectra/chart"
)

func useKey(a, b, asp string) edgeUse {
	if b < a {
		a, b = b, a
	}

	return edgeUse{a: a, b: b, aspect: asp}
}

// A Kite pattern (with its suppressed sub-shapes) next to a pattern no
// template matches: the union of Remainder edge sets must equal exactly
// the major edges unclaimed by surviving named shapes.
func TestDetectShapes_RemainderUnionOfUnclaimedEdges(t *testing.T) {
	pos := chart.Positions{
		"Sun": 0, "Venus": 60, "Moon": 120, "Mars": 240,
		"Neptune": 105, "Pluto": 195, "Ceres": 75,
	}
	cat := aspect.Default()
	major, minor, err := chart.BuildEdges(pos, cat)
	require.NoError(t, err)
	patterns := chart.Components(pos, major)
	require.Len(t, patterns, 2)

	shapes, err := DetectShapes(pos, patterns, major, minor, cat)
	require.NoError(t, err)
	require.Equal(t, []Kind{Kite, Remainder}, kindsOf(shapes),
		"Grand Trine, Wedges and Sextile Wedge all fold into the Kite")

	claimed := make(map[edgeUse]struct{})
	reclaimed := make(map[edgeUse]struct{})
	for _, s := range shapes {
		for _, e := range s.Edges {
			if s.Remainder {
				reclaimed[useKey(e.A, e.B, e.Aspect)] = struct{}{}
			} else {
				claimed[useKey(e.A, e.B, e.Aspect)] = struct{}{}
			}
		}
	}

	unclaimed := make(map[edgeUse]struct{})
	for _, e := range major {
		key := useKey(e.A, e.B, e.Aspect)
		if _, ok := claimed[key]; !ok {
			unclaimed[key] = struct{}{}
		}
	}

	assert.Equal(t, unclaimed, reclaimed)
	assert.Len(t, reclaimed, 2, "the Neptune–Pluto Square and Pluto–Ceres Trine")
}

// Edge usage is recomputed from post-suppression survivors: a major edge
// claimed only by a suppressed shape surfaces again as remainder.
func TestRemainderPass_ReclaimsSuppressedShapeEdges(t *testing.T) {
	pos := chart.Positions{"Sun": 0, "Moon": 90, "Mars": 180}
	cat := aspect.Default()
	major, minor, err := chart.BuildEdges(pos, cat)
	require.NoError(t, err)
	asp, err := resolveTemplateAspects(cat)
	require.NoError(t, err)

	r := newRun(pos, [][]string{{"Mars", "Moon", "Sun"}}, major, minor, cat, asp, DefaultOptions())
	r.register(proto{
		kind:    TSquare,
		members: []string{"Mars", "Moon", "Sun"},
		edges: []EdgeSpec{
			{A: "Mars", B: "Sun", Aspect: aspect.Opposition},
			{A: "Moon", B: "Sun", Aspect: aspect.Square},
			{A: "Mars", B: "Moon", Aspect: aspect.Square},
		},
	})
	// A higher-priority shape that removes the T-Square while claiming
	// only the Opposition for itself.
	r.register(proto{
		kind:    GrandCross,
		members: []string{"Mars", "Moon", "Sun"},
		edges: []EdgeSpec{
			{A: "Mars", B: "Sun", Aspect: aspect.Opposition},
		},
		directive: &Directive{Suppress: map[Kind][]MemberSet{
			TSquare: {NewMemberSet("Mars", "Moon", "Sun")},
		}},
	})

	r.shapes = resolveSuppression(r.shapes, zap.NewNop())
	require.Equal(t, []Kind{GrandCross}, kindsOf(r.shapes))

	r.remainderPass()
	require.Equal(t, []Kind{GrandCross, Remainder}, kindsOf(r.shapes))

	rem := r.shapes[1]
	assert.True(t, rem.Remainder)
	assert.Equal(t, []string{"Mars", "Moon", "Sun"}, rem.Members)
	require.Len(t, rem.Edges, 2)
	for _, e := range rem.Edges {
		assert.Equal(t, aspect.Square, e.Aspect,
			"both Squares were owned only by the suppressed T-Square")
	}
}
