package aspect

import "errors"

// Canonical aspect names used across the detection templates.
// The classifier itself is name-agnostic; these constants exist so that
// detection code never spells a catalog key ad hoc.
const (
	Conjunction  = "Conjunction"
	SemiSextile  = "Semi-sextile"
	SemiSquare   = "Semi-square"
	Sextile      = "Sextile"
	Quintile     = "Quintile"
	Square       = "Square"
	Trine        = "Trine"
	Sesquisquare = "Sesquisquare"
	Biquintile   = "Biquintile"
	Quincunx     = "Quincunx"
	Opposition   = "Opposition"
	Septile      = "Septile"
	Biseptile    = "Biseptile"
	Triseptile   = "Triseptile"
)

// Sentinel errors for catalog construction and lookup.
var (
	// ErrEmptyCatalog is returned when a catalog is built from no aspects.
	ErrEmptyCatalog = errors.New("aspect: empty catalog")

	// ErrDuplicateAspect is returned when two catalog entries share a name.
	ErrDuplicateAspect = errors.New("aspect: duplicate aspect name")

	// ErrBadAngle is returned for a target angle outside [0, 180].
	ErrBadAngle = errors.New("aspect: target angle out of range [0,180]")

	// ErrBadOrb is returned for a non-positive orb.
	ErrBadOrb = errors.New("aspect: orb must be positive")

	// ErrAspectMissing is returned when a catalog lacks a name the
	// detection templates require. The catalog is caller-supplied and
	// assumed validated before detection; this surfaces the config error
	// at construction time rather than mid-search.
	ErrAspectMissing = errors.New("aspect: required aspect missing from catalog")

	// ErrUnknownAspect is returned by lookups for names not in the catalog.
	ErrUnknownAspect = errors.New("aspect: unknown aspect name")
)

// Aspect describes one named angular relationship.
type Aspect struct {
	// Name identifies the aspect ("Trine", "Square", …).
	Name string `yaml:"name"`

	// Angle is the exact target separation in degrees, within [0, 180].
	Angle float64 `yaml:"angle"`

	// Orb is the allowed deviation from Angle, in degrees, > 0.
	Orb float64 `yaml:"orb"`

	// Major marks the aspect as part of the pattern-forming set.
	// Major edges drive connected components and motif templates;
	// minor edges only feed filaments and the Yod-family arm checks.
	Major bool `yaml:"major"`
}

// Match is the outcome of classifying one pair of positions.
type Match struct {
	// Aspect is the catalog entry that matched.
	Aspect Aspect

	// Delta is the signed orb delta: separation minus target angle.
	// Negative means the pair is tighter than exact, positive wider.
	Delta float64
}
