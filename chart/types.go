package chart

import "errors"

// Compass-point object ids recognized by the axis overlay.
const (
	// Ascendant is the rising point of the chart wheel.
	Ascendant = "Ascendant"
	// Descendant is the setting point, opposite the Ascendant.
	Descendant = "Descendant"
)

// Motion labels attached to edges when speeds are supplied.
const (
	// Applying marks a pair whose separation is closing on exact.
	Applying = "Applying"
	// Separating marks a pair whose separation is drifting from exact.
	Separating = "Separating"
)

// ErrNoPositions is returned when edge building receives no objects.
var ErrNoPositions = errors.New("chart: no positions supplied")

// Positions maps object id → ecliptic longitude in degrees [0, 360).
type Positions map[string]float64

// Speeds maps object id → daily motion in degrees/day.
// Used only for the optional applying/separating annotation.
type Speeds map[string]float64

// Edge is one classified unordered pair. A < B lexicographically and
// each pair appears at most once per build.
type Edge struct {
	// A and B are the endpoint object ids, A < B.
	A, B string

	// Aspect is the matched aspect name.
	Aspect string

	// Delta is the signed orb delta (separation − target angle).
	Delta float64

	// AppSep is "Applying", "Separating", or empty when speeds were
	// not supplied (or the endpoints lack speed data).
	AppSep string
}

// Option configures edge building.
type Option func(*buildOptions)

type buildOptions struct {
	compass bool
	speeds  Speeds
}

// WithCompassAxis synthesizes an Ascendant–Descendant Opposition edge
// when both points are present and no major edge already links them.
func WithCompassAxis() Option {
	return func(o *buildOptions) { o.compass = true }
}

// WithSpeeds enables applying/separating annotation using the supplied
// daily-motion map. Objects absent from the map stay unannotated.
func WithSpeeds(s Speeds) Option {
	return func(o *buildOptions) {
		if s != nil {
			o.speeds = s
		}
	}
}
