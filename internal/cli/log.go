package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Built graph with 12 vertices (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports graph and cache events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnBuildStart(_ context.Context, source string) {
	h.logger.Debug("Building graph", "source", source)
}

func (h *logHooks) OnBuildComplete(_ context.Context, source string, vertices, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Build failed", "source", source, "err", err)
		return
	}
	h.logger.Debug("Built graph", "source", source, "vertices", vertices, "edges", edges, "took", d)
}

func (h *logHooks) OnQuery(_ context.Context, kind string, results int, d time.Duration, err error) {
	h.logger.Debug("Query", "kind", kind, "results", results, "took", d, "err", err)
}

func (h *logHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("Rendering", "format", format)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	h.logger.Debug("Rendered", "format", format, "bytes", size, "took", d, "err", err)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("Cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("Cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("Cache set", "type", keyType, "bytes", size)
}
