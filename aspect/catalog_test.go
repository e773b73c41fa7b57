package aspect_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aspectra/aspect"
)

// TestNewCatalog_Validation exercises every construction failure mode.
func TestNewCatalog_Validation(t *testing.T) {
	_, err := aspect.NewCatalog(nil)
	assert.ErrorIs(t, err, aspect.ErrEmptyCatalog, "nil defs")

	_, err = aspect.NewCatalog([]aspect.Aspect{
		{Name: aspect.Trine, Angle: 120, Orb: 3},
		{Name: aspect.Trine, Angle: 120, Orb: 3},
	})
	assert.ErrorIs(t, err, aspect.ErrDuplicateAspect, "duplicate name")

	_, err = aspect.NewCatalog([]aspect.Aspect{
		{Name: aspect.Trine, Angle: 200, Orb: 3},
	})
	assert.ErrorIs(t, err, aspect.ErrBadAngle, "angle > 180")

	_, err = aspect.NewCatalog([]aspect.Aspect{
		{Name: aspect.Trine, Angle: 120, Orb: 0},
	})
	assert.ErrorIs(t, err, aspect.ErrBadOrb, "zero orb")

	// Valid entries but missing the required detection names.
	_, err = aspect.NewCatalog([]aspect.Aspect{
		{Name: aspect.Trine, Angle: 120, Orb: 3, Major: true},
	})
	assert.ErrorIs(t, err, aspect.ErrAspectMissing, "incomplete catalog")
}

// TestDefault_RequiredNames asserts the built-in catalog carries every
// name the detection templates use, with the traditional orbs.
func TestDefault_RequiredNames(t *testing.T) {
	cat := aspect.Default()
	for _, name := range []string{
		aspect.Conjunction, aspect.Sextile, aspect.Square, aspect.Trine,
		aspect.Opposition, aspect.Quincunx, aspect.Sesquisquare,
	} {
		_, err := cat.Get(name)
		require.NoErrorf(t, err, "missing %q", name)
	}

	conj, err := cat.Get(aspect.Conjunction)
	require.NoError(t, err)
	assert.Equal(t, 5.0, conj.Orb)
	assert.True(t, conj.Major)
	assert.Equal(t, 5.0, cat.ConjunctionOrb())

	q, err := cat.Get(aspect.Quincunx)
	require.NoError(t, err)
	assert.False(t, q.Major, "Quincunx is a minor aspect")
}

// TestGet_Unknown covers the fatal-config lookup path.
func TestGet_Unknown(t *testing.T) {
	_, err := aspect.Default().Get("Novile")
	assert.ErrorIs(t, err, aspect.ErrUnknownAspect)
	assert.True(t, errors.Is(err, aspect.ErrUnknownAspect))
}

// TestFromYAML round-trips a small catalog through YAML.
func TestFromYAML(t *testing.T) {
	src := []byte(`
- {name: Conjunction, angle: 0, orb: 5, major: true}
- {name: Sextile, angle: 60, orb: 3, major: true}
- {name: Square, angle: 90, orb: 3, major: true}
- {name: Trine, angle: 120, orb: 3, major: true}
- {name: Sesquisquare, angle: 135, orb: 2}
- {name: Quincunx, angle: 150, orb: 3}
- {name: Opposition, angle: 180, orb: 3, major: true}
`)
	cat, err := aspect.FromYAML(src)
	require.NoError(t, err)
	assert.Len(t, cat.Aspects(), 7)

	tr, err := cat.Get(aspect.Trine)
	require.NoError(t, err)
	assert.Equal(t, 120.0, tr.Angle)
	assert.True(t, tr.Major)

	// Malformed document.
	_, err = aspect.FromYAML([]byte("{:"))
	assert.Error(t, err)

	// Well-formed but invalid catalog.
	_, err = aspect.FromYAML([]byte(`[{name: Trine, angle: 120, orb: 3}]`))
	assert.ErrorIs(t, err, aspect.ErrAspectMissing)
}

// TestMarshalYAML_RoundTrip renders the built-in catalog to YAML and
// parses it back: declaration order, angles, orbs and major flags must
// all survive, septile fractions included.
func TestMarshalYAML_RoundTrip(t *testing.T) {
	orig := aspect.Default()

	data, err := yaml.Marshal(orig)
	require.NoError(t, err)

	back, err := aspect.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, orig.Aspects(), back.Aspects())
}

// TestAspects_Copy ensures the accessor hands out a defensive copy.
func TestAspects_Copy(t *testing.T) {
	cat := aspect.Default()
	list := cat.Aspects()
	list[0].Orb = 99

	again, err := cat.Get(list[0].Name)
	require.NoError(t, err)
	assert.NotEqual(t, 99.0, again.Orb)
}
