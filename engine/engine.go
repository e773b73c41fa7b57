package engine

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/aspectra/aspect"
	"github.com/katalvlaran/aspectra/chart"
	"github.com/katalvlaran/aspectra/filament"
	"github.com/katalvlaran/aspectra/motif"
)

// Sentinel errors for the facade.
var (
	// ErrNoPositions is returned when Detect receives no objects.
	ErrNoPositions = errors.New("engine: no positions supplied")

	// ErrNilCatalog is returned when Detect receives a nil catalog.
	ErrNilCatalog = errors.New("engine: catalog is nil")
)

// Result is the complete output of one detection run.
type Result struct {
	// Shapes lists every surviving shape in canonical order.
	Shapes []motif.Shape

	// Patterns are the connected components of the major-aspect graph;
	// Shape.Parent indexes into this slice.
	Patterns [][]string

	// MajorEdges and MinorEdges are the classified pair lists.
	MajorEdges []chart.Edge
	MinorEdges []chart.Edge

	// Filaments are the minor links between patterns and singletons.
	Filaments []filament.Filament

	// Singletons maps each object without a major edge to its synthetic
	// pattern index (offset past len(Patterns)).
	Singletons map[string]int

	// ComboGroups lists pattern indices transitively joined by filaments.
	ComboGroups [][]int
}

// Option configures a detection run.
type Option func(*options)

type options struct {
	compass  bool
	speeds   chart.Speeds
	logger   *zap.Logger
	parallel bool
}

// WithCompassAxis synthesizes the Ascendant–Descendant Opposition edge
// during graph building.
func WithCompassAxis() Option {
	return func(o *options) { o.compass = true }
}

// WithSpeeds enables applying/separating edge annotation.
func WithSpeeds(s chart.Speeds) Option {
	return func(o *options) { o.speeds = s }
}

// WithLogger routes shape-detection decision logs to log.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.logger = log }
}

// WithParallel runs the per-pattern motif searches concurrently.
func WithParallel() Option {
	return func(o *options) { o.parallel = true }
}

// Detect runs the full pipeline: classify all pairs, partition the major
// graph into patterns, detect and suppress shapes, then attach the
// filament layer. Returns ErrNoPositions or ErrNilCatalog on bad input;
// any deeper failure is a catalog configuration error, surfaced as-is.
func Detect(pos chart.Positions, cat *aspect.Catalog, opts ...Option) (*Result, error) {
	if len(pos) == 0 {
		return nil, ErrNoPositions
	}
	if cat == nil {
		return nil, ErrNilCatalog
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var chartOpts []chart.Option
	if o.compass {
		chartOpts = append(chartOpts, chart.WithCompassAxis())
	}
	if o.speeds != nil {
		chartOpts = append(chartOpts, chart.WithSpeeds(o.speeds))
	}
	major, minor, err := chart.BuildEdges(pos, cat, chartOpts...)
	if err != nil {
		return nil, err
	}
	patterns := chart.Components(pos, major)

	var motifOpts []motif.Option
	if o.logger != nil {
		motifOpts = append(motifOpts, motif.WithLogger(o.logger))
	}
	if o.parallel {
		motifOpts = append(motifOpts, motif.WithParallel())
	}
	shapes, err := motif.DetectShapes(pos, patterns, major, minor, cat, motifOpts...)
	if err != nil {
		return nil, err
	}

	fils, singletons, err := filament.Links(pos, patterns, cat)
	if err != nil {
		return nil, err
	}

	return &Result{
		Shapes:      shapes,
		Patterns:    patterns,
		MajorEdges:  major,
		MinorEdges:  minor,
		Filaments:   fils,
		Singletons:  singletons,
		ComboGroups: filament.ComboGroups(fils),
	}, nil
}
