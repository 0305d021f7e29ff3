package cli

import (
	"context"
	"time"

	errs "github.com/matzehuels/antennas/pkg/errors"
	"github.com/matzehuels/antennas/pkg/graph"
	"github.com/matzehuels/antennas/pkg/observability"
	"github.com/matzehuels/antennas/pkg/pipeline"
)

// loadGrid reads the grid file at path and builds its graph, using the
// configured empty markers. Commands that render use their runner's
// BuildFile instead so the build shares the runner's cache.
func (c *CLI) loadGrid(ctx context.Context, path string) (*pipeline.Result, error) {
	return c.build(ctx, pipeline.NewRunner(nil, nil, loggerFromContext(ctx)), path)
}

func (c *CLI) build(ctx context.Context, runner *pipeline.Runner, path string) (*pipeline.Result, error) {
	prog := newProgress(loggerFromContext(ctx))
	res, err := runner.BuildFile(ctx, path, c.buildOptions())
	if err != nil {
		return nil, err
	}
	prog.done("Built graph")
	return res, nil
}

func (c *CLI) buildOptions() pipeline.BuildOptions {
	return pipeline.BuildOptions{EmptyMarkers: c.config.emptyMarkers()}
}

// vertexAt returns the vertex at a position given as "x,y".
func vertexAt(g *graph.Graph, s string) (*graph.Vertex, error) {
	p, err := errs.ParsePosition(s)
	if err != nil {
		return nil, err
	}
	v, ok := g.VertexAt(p.X, p.Y)
	if !ok {
		return nil, errs.New(errs.ErrCodeVertexNotFound, "no antenna at %s", p)
	}
	return v, nil
}

// timedQuery runs fn and reports it to the graph hooks.
func timedQuery(ctx context.Context, kind string, fn func() (int, error)) error {
	start := time.Now()
	n, err := fn()
	observability.Graph().OnQuery(ctx, kind, n, time.Since(start), err)
	return err
}
