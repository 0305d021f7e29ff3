package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/antennas/pkg/antenna"
	"github.com/matzehuels/antennas/pkg/buildinfo"
	"github.com/matzehuels/antennas/pkg/graph"
)

// Report is the serializable result of one analysis run.
type Report struct {
	RunID     string        `json:"run_id"`
	Version   string        `json:"version"`
	Generator string        `json:"generator"`
	CreatedAt time.Time     `json:"created_at"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Summary   graph.Summary `json:"summary"`
	Vertices  []Vertex      `json:"vertices"`
	Edges     []graph.Edge  `json:"edges"`
	Effects   []effect      `json:"effects"`
}

// Vertex is the JSON form of a graph vertex. Reports, CLI output and the
// HTTP API all encode vertices this way.
type Vertex struct {
	ID        graph.VertexID    `json:"id"`
	Frequency antenna.Frequency `json:"frequency"`
	X         int               `json:"x"`
	Y         int               `json:"y"`
	Degree    int               `json:"degree"`
}

// NewVertex returns the JSON form of v.
func NewVertex(v *graph.Vertex) Vertex {
	p := v.Position()
	return Vertex{ID: v.ID, Frequency: v.Frequency(), X: p.X, Y: p.Y, Degree: v.Degree()}
}

// NewVertices converts vs in order. The result is never nil, so an empty
// set encodes as [].
func NewVertices(vs []*graph.Vertex) []Vertex {
	out := make([]Vertex, len(vs))
	for i, v := range vs {
		out[i] = NewVertex(v)
	}
	return out
}

type effect struct {
	X       int            `json:"x"`
	Y       int            `json:"y"`
	Source  graph.VertexID `json:"source"`
	Partner graph.VertexID `json:"partner"`
}

// NewReport builds a report for g. grid supplies the bounds; effects are
// matched to vertices by their source and partner positions, and effects
// whose antennas are not vertices of g are skipped.
func NewReport(grid antenna.Grid, g *graph.Graph, effects []antenna.Effect) *Report {
	r := &Report{
		RunID:     uuid.NewString(),
		Version:   buildinfo.Version,
		Generator: buildinfo.UserAgent(),
		CreatedAt: time.Now().UTC(),
		Width:     grid.Width,
		Height:    grid.Height,
		Summary:   graph.Summarize(g),
		Vertices:  []Vertex{},
		Edges:     []graph.Edge{},
		Effects:   []effect{},
	}
	if g == nil {
		return r
	}
	r.Vertices = NewVertices(g.Vertices())
	r.Edges = append(r.Edges, g.Edges()...)
	for _, e := range effects {
		src, ok1 := g.VertexAt(e.Source.Position.X, e.Source.Position.Y)
		dst, ok2 := g.VertexAt(e.Partner.Position.X, e.Partner.Position.Y)
		if !ok1 || !ok2 {
			continue
		}
		r.Effects = append(r.Effects, effect{X: e.Position.X, Y: e.Position.Y, Source: src.ID, Partner: dst.ID})
	}
	return r
}

// WriteJSON encodes a report as indented JSON and writes it to w.
// The output can be read back with [ReadJSON].
func WriteJSON(r *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a report to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(r *Report, path string) error {
	return writeFile(path, func(w io.Writer) error { return WriteJSON(r, w) })
}

// writeFile creates path and hands it to write. Errors from write and
// from closing the file are both returned.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
