package pipeline

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/antennas/pkg/antenna"
	"github.com/matzehuels/antennas/pkg/cache"
	errs "github.com/matzehuels/antennas/pkg/errors"
	"github.com/matzehuels/antennas/pkg/graph"
	"github.com/matzehuels/antennas/pkg/io"
	"github.com/matzehuels/antennas/pkg/observability"
	"github.com/matzehuels/antennas/pkg/render/nodelink"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	TTL    time.Duration
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		TTL:    DefaultTTL,
		Logger: logger,
	}
}

// BuildFile reads the grid file at path and builds its graph.
func (r *Runner) BuildFile(ctx context.Context, path string, opts BuildOptions) (*Result, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Classify(err)
	}
	return r.Build(ctx, path, data, opts)
}

// Build parses grid text and builds its graph. source names the input in
// logs and hooks.
func (r *Runner) Build(ctx context.Context, source string, data []byte, opts BuildOptions) (*Result, error) {
	hooks := observability.Graph()
	hooks.OnBuildStart(ctx, source)
	start := time.Now()

	grid, err := antenna.ParseGrid(bytes.NewReader(data), antenna.WithEmptyMarkers(opts.EmptyMarkers...))
	if err != nil {
		hooks.OnBuildComplete(ctx, source, 0, 0, time.Since(start), err)
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "parse %s", source)
	}
	g, err := graph.FromGrid(grid)
	if err != nil {
		hooks.OnBuildComplete(ctx, source, 0, 0, time.Since(start), err)
		return nil, errs.Classify(err)
	}

	res := NewResult(source, GridHash(data, opts), grid, g)
	res.Stats.BuildTime = time.Since(start)
	hooks.OnBuildComplete(ctx, source, res.Stats.Vertices, res.Stats.Edges, res.Stats.BuildTime, nil)

	r.Logger.Debug("built graph",
		"source", source,
		"width", grid.Width,
		"height", grid.Height,
		"vertices", res.Stats.Vertices,
		"edges", res.Stats.Edges,
		"duration", res.Stats.BuildTime)
	return res, nil
}

// RenderWithCacheInfo renders res in the requested format and reports
// whether the bytes came from the cache. DOT output is never cached.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, res *Result, opts RenderOptions) ([]byte, bool, error) {
	if err := ValidateFormat(opts.Format); err != nil {
		return nil, false, err
	}
	if opts.Format == FormatDOT {
		return []byte(r.dot(res, opts)), false, nil
	}

	keyType, key := "artifact", r.Keyer.ArtifactKey(res.Hash, opts.ArtifactKeyOpts())
	if opts.Format == FormatJSON {
		keyType, key = "report", r.Keyer.ReportKey(res.Hash)
	}
	if data, hit := r.lookup(ctx, keyType, key); hit {
		return data, true, nil
	}

	hooks := observability.Graph()
	hooks.OnRenderStart(ctx, opts.Format)
	start := time.Now()
	data, err := r.render(ctx, res, opts)
	hooks.OnRenderComplete(ctx, opts.Format, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, keyType, len(data))
	}
	return data, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, res *Result, opts RenderOptions) ([]byte, error) {
	data, _, err := r.RenderWithCacheInfo(ctx, res, opts)
	return data, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// lookup reads key from the cache. Read errors count as misses.
func (r *Runner) lookup(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "err", err)
		return nil, false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType)
		return data, true
	}
	observability.Cache().OnCacheMiss(ctx, keyType)
	return nil, false
}

func (r *Runner) render(ctx context.Context, res *Result, opts RenderOptions) ([]byte, error) {
	switch opts.Format {
	case FormatSVG:
		svg, err := nodelink.RenderSVG(ctx, r.dot(res, opts))
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "render svg")
		}
		return svg, nil
	default:
		var buf bytes.Buffer
		if err := io.WriteJSON(io.NewReport(res.Grid, res.Graph, res.Grid.Effects(false)), &buf); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "write report")
		}
		return buf.Bytes(), nil
	}
}

func (r *Runner) dot(res *Result, opts RenderOptions) string {
	nl := nodelink.Options{Detailed: opts.Detailed}
	if opts.Effects {
		nl.Effects = res.Grid.Effects(true)
	}
	return nodelink.ToDOT(res.Graph, nl)
}
