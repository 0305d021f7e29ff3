// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about graph builds, queries, cache operations and API
// requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the core packages stay
// free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGraphHooks(&myGraphHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Callers emit events around the work they do:
//
//	observability.Graph().OnBuildStart(ctx, path)
//	g, err := graph.ReadFile(path)
//	observability.Graph().OnBuildComplete(ctx, path, g.NumVertices(), g.NumEdges(), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Graph Hooks
// =============================================================================

// GraphHooks receives events from graph construction, queries and rendering.
type GraphHooks interface {
	// Build events
	OnBuildStart(ctx context.Context, source string)
	OnBuildComplete(ctx context.Context, source string, vertices, edges int, duration time.Duration, err error)

	// OnQuery records one query (dfs, bfs, paths, intersections, ...) and
	// the number of results it produced.
	OnQuery(ctx context.Context, kind string, results int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, route string)

	// OnResponse records the response written for a request.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGraphHooks is a no-op implementation of GraphHooks.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnBuildStart(context.Context, string) {}
func (NoopGraphHooks) OnBuildComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopGraphHooks) OnQuery(context.Context, string, int, time.Duration, error)          {}
func (NoopGraphHooks) OnRenderStart(context.Context, string)                               {}
func (NoopGraphHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	graphHooks GraphHooks = NoopGraphHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetGraphHooks registers custom graph hooks.
// This should be called once at application startup.
func SetGraphHooks(h GraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		graphHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before the server starts.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Graph returns the registered graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	graphHooks = NoopGraphHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
