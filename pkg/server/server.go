package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/antennas/pkg/antenna"
	"github.com/matzehuels/antennas/pkg/graph"
	"github.com/matzehuels/antennas/pkg/pipeline"
)

// Defaults applied by [New] to zero Config fields.
const (
	DefaultMaxIntersections = 1000
	DefaultMaxPaths         = 1000
	shutdownTimeout         = 10 * time.Second
)

// ErrNoGraph is returned by [New] when the config carries no graph.
var ErrNoGraph = errors.New("server: graph is required")

// Config holds everything a server needs. Grid and Graph must describe the
// same input.
type Config struct {
	Grid  antenna.Grid
	Graph *graph.Graph

	// GridHash identifies the input in cache keys, typically the Hash of
	// the pipeline.Result the graph came from.
	GridHash string
	// Runner renders and caches artifacts. Nil means an uncached runner.
	Runner *pipeline.Runner

	// MaxIntersections is the default and the ceiling for the
	// intersections limit parameter.
	MaxIntersections int
	// MaxPaths caps the number of paths returned per request.
	MaxPaths int

	Logger *log.Logger
}

// Server answers graph queries over HTTP.
type Server struct {
	cfg    Config
	result *pipeline.Result
	router chi.Router
}

// New validates cfg, fills defaults and builds the router.
func New(cfg Config) (*Server, error) {
	if cfg.Graph == nil {
		return nil, ErrNoGraph
	}
	if cfg.MaxIntersections <= 0 {
		cfg.MaxIntersections = DefaultMaxIntersections
	}
	if cfg.MaxPaths <= 0 {
		cfg.MaxPaths = DefaultMaxPaths
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}

	s := &Server{
		cfg:    cfg,
		result: pipeline.NewResult("server", cfg.GridHash, cfg.Grid, cfg.Graph),
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", s.handleHealth)
	r.Get("/summary", s.handleSummary)
	r.Get("/vertices", s.handleVertices)
	r.Get("/vertices/{x}/{y}", s.handleVertex)
	r.Get("/traverse/{algo}", s.handleTraverse)
	r.Get("/paths", s.handlePaths)
	r.Get("/intersections", s.handleIntersections)
	r.Get("/effects", s.handleEffects)
	r.Get("/graph.dot", s.handleDOT)
	r.Get("/graph.svg", s.handleSVG)
	r.Get("/report.json", s.handleReport)
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.cfg.Logger.Info("Listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.cfg.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
