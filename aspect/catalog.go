package aspect

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Degrees for the septile family:
// septile = 51°26′, biseptile = 102°52′, triseptile = 154°17′.
const (
	septileAngle    = 51 + 26.0/60
	biseptileAngle  = 102 + 52.0/60
	triseptileAngle = 154 + 17.0/60
)

// required lists the names every detection-capable catalog must define:
// the five pattern-forming majors plus the two minors used by the
// Yod-family templates and the filament scan.
var required = []string{
	Conjunction, Sextile, Square, Trine, Opposition, Quincunx, Sesquisquare,
}

// Catalog is an ordered, validated list of aspects indexed by name.
// Declaration order is significant: the classifier resolves exact
// delta ties in favor of the first-declared aspect.
type Catalog struct {
	aspects []Aspect
	byName  map[string]int
}

// NewCatalog validates defs and builds a Catalog.
// Returns ErrEmptyCatalog, ErrDuplicateAspect, ErrBadAngle, ErrBadOrb,
// or ErrAspectMissing (wrapped with the offending name) on invalid input.
func NewCatalog(defs []Aspect) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		aspects: make([]Aspect, 0, len(defs)),
		byName:  make(map[string]int, len(defs)),
	}
	for _, a := range defs {
		if _, dup := c.byName[a.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAspect, a.Name)
		}
		if a.Angle < 0 || a.Angle > 180 {
			return nil, fmt.Errorf("%w: %q has angle %v", ErrBadAngle, a.Name, a.Angle)
		}
		if a.Orb <= 0 {
			return nil, fmt.Errorf("%w: %q has orb %v", ErrBadOrb, a.Name, a.Orb)
		}
		c.byName[a.Name] = len(c.aspects)
		c.aspects = append(c.aspects, a)
	}
	for _, name := range required {
		if _, ok := c.byName[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrAspectMissing, name)
		}
	}

	return c, nil
}

// Default returns the built-in catalog with traditional orbs.
// Majors form patterns; minors feed filaments and special templates.
func Default() *Catalog {
	c, err := NewCatalog([]Aspect{
		{Name: Conjunction, Angle: 0, Orb: 5, Major: true},
		{Name: SemiSextile, Angle: 30, Orb: 2},
		{Name: SemiSquare, Angle: 45, Orb: 2},
		{Name: Sextile, Angle: 60, Orb: 3, Major: true},
		{Name: Quintile, Angle: 72, Orb: 2},
		{Name: Square, Angle: 90, Orb: 3, Major: true},
		{Name: Trine, Angle: 120, Orb: 3, Major: true},
		{Name: Sesquisquare, Angle: 135, Orb: 2},
		{Name: Biquintile, Angle: 144, Orb: 2},
		{Name: Quincunx, Angle: 150, Orb: 3},
		{Name: Opposition, Angle: 180, Orb: 3, Major: true},
		{Name: Septile, Angle: septileAngle, Orb: 2},
		{Name: Biseptile, Angle: biseptileAngle, Orb: 2},
		{Name: Triseptile, Angle: triseptileAngle, Orb: 2},
	})
	if err != nil {
		// The built-in table is a compile-time constant; failing to build
		// it is a programming error, not a runtime condition.
		panic(err)
	}

	return c
}

// FromYAML parses a caller-supplied YAML list of aspects and validates it.
// The expected document is a sequence of {name, angle, orb, major} maps.
func FromYAML(data []byte) (*Catalog, error) {
	var defs []Aspect
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("aspect: parse catalog: %w", err)
	}

	return NewCatalog(defs)
}

// MarshalYAML renders the catalog back to its YAML list form.
func (c *Catalog) MarshalYAML() (interface{}, error) {
	return c.aspects, nil
}

// Get returns the aspect registered under name.
// Returns ErrUnknownAspect (wrapped with the name) when absent: a name
// missing from a validated catalog is a configuration error.
func (c *Catalog) Get(name string) (Aspect, error) {
	i, ok := c.byName[name]
	if !ok {
		return Aspect{}, fmt.Errorf("%w: %q", ErrUnknownAspect, name)
	}

	return c.aspects[i], nil
}

// Aspects returns the catalog entries in declaration order.
// The returned slice is a copy; mutating it does not affect the catalog.
func (c *Catalog) Aspects() []Aspect {
	out := make([]Aspect, len(c.aspects))
	copy(out, c.aspects)

	return out
}

// ConjunctionOrb returns the orb of the Conjunction aspect, which doubles
// as the clustering threshold for merging near-coincident objects.
func (c *Catalog) ConjunctionOrb() float64 {
	a, _ := c.Get(Conjunction) // validated at construction

	return a.Orb
}
