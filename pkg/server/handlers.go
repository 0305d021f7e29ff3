package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/antennas/pkg/antenna"
	"github.com/matzehuels/antennas/pkg/buildinfo"
	errs "github.com/matzehuels/antennas/pkg/errors"
	"github.com/matzehuels/antennas/pkg/graph"
	"github.com/matzehuels/antennas/pkg/io"
	"github.com/matzehuels/antennas/pkg/observability"
	"github.com/matzehuels/antennas/pkg/pipeline"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		graph.Summary
		Width  int `json:"width"`
		Height int `json:"height"`
	}{graph.Summarize(s.cfg.Graph), s.cfg.Grid.Width, s.cfg.Grid.Height})
}

func (s *Server) handleVertices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := errs.ParseLimit(q.Get("limit"), 0)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var vs []*graph.Vertex
	if fs := q.Get("frequency"); fs != "" {
		f, err := errs.ValidateFrequency(fs)
		if err != nil {
			s.writeError(w, err)
			return
		}
		vs = s.cfg.Graph.VerticesByFrequency(f, limit)
	} else {
		vs = s.cfg.Graph.Vertices()
		if limit > 0 && len(vs) > limit {
			vs = vs[:limit]
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(vs),
		"vertices": io.NewVertices(vs),
	})
}

func (s *Server) handleVertex(w http.ResponseWriter, r *http.Request) {
	p, err := errs.ParsePosition(chi.URLParam(r, "x") + "," + chi.URLParam(r, "y"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	v, err := s.vertexAt(p)
	if err != nil {
		s.writeError(w, err)
		return
	}
	ns, err := s.cfg.Graph.Neighbors(v)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"vertex":    io.NewVertex(v),
		"neighbors": io.NewVertices(ns),
	})
}

// vertexAt resolves a position to a vertex or a VERTEX_NOT_FOUND error.
func (s *Server) vertexAt(p antenna.Position) (*graph.Vertex, error) {
	v, ok := s.cfg.Graph.VertexAt(p.X, p.Y)
	if !ok {
		return nil, errs.Wrap(errs.ErrCodeVertexNotFound, graph.ErrVertexNotFound, "no antenna at %s", p)
	}
	return v, nil
}

// queryVertex parses the position in query parameter name and resolves it.
func (s *Server) queryVertex(r *http.Request, name string) (*graph.Vertex, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, errs.New(errs.ErrCodeInvalidInput, "missing %q parameter", name)
	}
	p, err := errs.ParsePosition(raw)
	if err != nil {
		return nil, err
	}
	return s.vertexAt(p)
}

func (s *Server) handleTraverse(w http.ResponseWriter, r *http.Request) {
	algo := chi.URLParam(r, "algo")
	var run func(*graph.Graph, *graph.Vertex) (*graph.Traversal, error)
	switch algo {
	case "dfs":
		run = graph.DFS
	case "bfs":
		run = graph.BFS
	default:
		s.writeError(w, errs.New(errs.ErrCodeInvalidInput, "unknown traversal %q (want dfs or bfs)", algo))
		return
	}

	start, err := s.queryVertex(r, "from")
	if err != nil {
		s.writeError(w, err)
		return
	}

	began := time.Now()
	t, err := run(s.cfg.Graph, start)
	observability.Graph().OnQuery(r.Context(), algo, t.Len(), time.Since(began), err)
	if err != nil {
		s.writeError(w, err)
		return
	}

	type step struct {
		io.Vertex
		Depth int `json:"depth"`
	}
	order := make([]step, len(t.Order))
	for i, v := range t.Order {
		order[i] = step{io.NewVertex(v), t.Depth[v.ID]}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"algorithm": algo,
		"start":     io.NewVertex(start),
		"count":     len(order),
		"order":     order,
	})
}

func (s *Server) handlePaths(w http.ResponseWriter, r *http.Request) {
	from, err := s.queryVertex(r, "from")
	if err != nil {
		s.writeError(w, err)
		return
	}
	to, err := s.queryVertex(r, "to")
	if err != nil {
		s.writeError(w, err)
		return
	}
	limit, err := errs.ParseLimit(r.URL.Query().Get("limit"), s.cfg.MaxPaths)
	if err != nil {
		s.writeError(w, err)
		return
	}
	limit = min(limit, s.cfg.MaxPaths)

	began := time.Now()
	paths := [][]antenna.Position{}
	truncated := false
	err = graph.WalkPaths(s.cfg.Graph, from, to, func(p graph.Path) error {
		if len(paths) == limit {
			truncated = true
			return graph.ErrStopWalk
		}
		paths = append(paths, p.Positions())
		return nil
	})
	observability.Graph().OnQuery(r.Context(), "paths", len(paths), time.Since(began), err)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"from":      from.Position(),
		"to":        to.Position(),
		"count":     len(paths),
		"truncated": truncated,
		"paths":     paths,
	})
}

func (s *Server) handleIntersections(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a, err := errs.ValidateFrequency(q.Get("a"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	b, err := errs.ValidateFrequency(q.Get("b"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	limit, err := errs.ParseLimit(q.Get("limit"), s.cfg.MaxIntersections)
	if err != nil {
		s.writeError(w, err)
		return
	}
	limit = min(limit, s.cfg.MaxIntersections)

	began := time.Now()
	pairs, err := graph.FindIntersections(s.cfg.Graph, a, b, limit)
	observability.Graph().OnQuery(r.Context(), "intersections", len(pairs), time.Since(began), err)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"a":             a,
		"b":             b,
		"count":         len(pairs),
		"intersections": pairs,
	})
}

func (s *Server) handleEffects(w http.ResponseWriter, r *http.Request) {
	clip, err := parseBool(r.URL.Query().Get("clip"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	effects := s.cfg.Grid.Effects(clip)
	if effects == nil {
		effects = []antenna.Effect{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"clipped": clip,
		"count":   len(effects),
		"effects": effects,
	})
}

// artifact renders the graph through the runner and writes it with the
// given content type. The effects and detailed query parameters apply to
// DOT and SVG.
func (s *Server) artifact(w http.ResponseWriter, r *http.Request, format, contentType string) {
	q := r.URL.Query()
	effects, err := parseBool(q.Get("effects"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	detailed, err := parseBool(q.Get("detailed"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, hit, err := s.cfg.Runner.RenderWithCacheInfo(r.Context(), s.result, pipeline.RenderOptions{
		Format:   format,
		Detailed: detailed,
		Effects:  effects,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	if hit {
		w.Header().Set("X-Cache", "hit")
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(data)
}

func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	s.artifact(w, r, pipeline.FormatDOT, "text/vnd.graphviz; charset=utf-8")
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	s.artifact(w, r, pipeline.FormatSVG, "image/svg+xml")
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	s.artifact(w, r, pipeline.FormatJSON, "application/json")
}

func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, errs.Wrap(errs.ErrCodeInvalidInput, errors.Unwrap(err), "invalid boolean %q", s)
	}
	return b, nil
}
