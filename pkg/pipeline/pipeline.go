// Package pipeline runs the build → render flow shared by the CLI and the
// HTTP server.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Build: parse grid text into antennas and link every same-frequency
//     pair into the interference graph
//  2. Render: produce an artifact for a built graph (DOT, SVG or a JSON
//     report)
//
// Rendered SVGs and reports are cached under keys derived from the hash of
// the grid text and the empty-cell markers it was parsed with, so the same
// graph always maps to the same entries whichever process rendered them.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.BuildFile(ctx, "city.txt", pipeline.BuildOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg, err := runner.Render(ctx, res, pipeline.RenderOptions{Format: pipeline.FormatSVG})
package pipeline

import (
	"slices"
	"time"

	"github.com/matzehuels/antennas/pkg/antenna"
	"github.com/matzehuels/antennas/pkg/cache"
	errs "github.com/matzehuels/antennas/pkg/errors"
	"github.com/matzehuels/antennas/pkg/graph"
)

// DefaultTTL is how long rendered artifacts stay cached.
const DefaultTTL = 24 * time.Hour

// Format constants for rendered artifacts.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeUnsupported, "unsupported format %q (want dot, svg or json)", format)
	}
	return nil
}

// BuildOptions configure the build stage.
type BuildOptions struct {
	// EmptyMarkers are the characters treated as empty cells. Nil means
	// antenna.DefaultEmptyMarkers.
	EmptyMarkers []rune
}

// RenderOptions configure the render stage.
type RenderOptions struct {
	Format string
	// Detailed adds positions and degrees to DOT and SVG labels.
	Detailed bool
	// Effects draws the in-grid effect points in DOT and SVG output. JSON
	// reports always carry every effect point.
	Effects bool
}

// markers returns the effective empty-cell set, sorted and without
// duplicates.
func (o BuildOptions) markers() []rune {
	m := o.EmptyMarkers
	if len(m) == 0 {
		m = antenna.DefaultEmptyMarkers
	}
	m = slices.Clone(m)
	slices.Sort(m)
	return slices.Compact(m)
}

// ArtifactKeyOpts returns the cache key options for o.
func (o RenderOptions) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: o.Format, Effects: o.Effects}
	if o.Detailed {
		k.Detail = "detailed"
	}
	return k
}

// Result is a built grid.
type Result struct {
	// Source names the input, usually its file path.
	Source string
	// Hash identifies the grid text and its empty-cell markers in cache
	// keys. Two results share a hash only if they hold the same graph.
	Hash  string
	Grid  antenna.Grid
	Graph *graph.Graph
	Stats Stats
}

// Stats holds build statistics.
type Stats struct {
	BuildTime time.Duration
	Vertices  int
	Edges     int
}

// GridHash returns the cache identity of data parsed with opts.
func GridHash(data []byte, opts BuildOptions) string {
	return cache.Hash([]byte(cache.Hash(data) + ":" + string(opts.markers())))
}

// NewResult wraps an already built grid and graph.
func NewResult(source, hash string, grid antenna.Grid, g *graph.Graph) *Result {
	return &Result{
		Source: source,
		Hash:   hash,
		Grid:   grid,
		Graph:  g,
		Stats:  Stats{Vertices: g.NumVertices(), Edges: g.NumEdges()},
	}
}
