package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/antennas/pkg/antenna"
	"github.com/matzehuels/antennas/pkg/graph"
)

// ErrInvalidReport is returned when a decoded report references vertices
// it does not contain or its edges disagree with its vertices.
var ErrInvalidReport = errors.New("io: invalid report")

// ReadJSON decodes a report from r.
//
// ReadJSON returns an error if the JSON is malformed, a vertex ID does not
// match its index, or an edge or effect references an unknown vertex.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := rep.validate(); err != nil {
		return nil, err
	}
	return &rep, nil
}

// ImportJSON reads a JSON report file at path.
//
// The error wraps the underlying cause with the file path for context.
func ImportJSON(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rep, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rep, nil
}

func (r *Report) validate() error {
	n := graph.VertexID(len(r.Vertices))
	for i, v := range r.Vertices {
		if v.ID != graph.VertexID(i) {
			return fmt.Errorf("%w: vertex %d has id %d", ErrInvalidReport, i, v.ID)
		}
	}
	for _, e := range r.Edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge %d->%d references unknown vertex", ErrInvalidReport, e.From, e.To)
		}
	}
	for _, e := range r.Effects {
		if e.Source < 0 || e.Source >= n || e.Partner < 0 || e.Partner >= n {
			return fmt.Errorf("%w: effect at (%d,%d) references unknown vertex", ErrInvalidReport, e.X, e.Y)
		}
	}
	return nil
}

// Antennas returns the report's vertices as antennas in ID order.
func (r *Report) Antennas() []antenna.Antenna {
	out := make([]antenna.Antenna, len(r.Vertices))
	for i, v := range r.Vertices {
		out[i] = antenna.New(v.Frequency, v.X, v.Y)
	}
	return out
}

// Graph rebuilds the interference graph from the report's vertices. The
// rebuilt edges must match the recorded ones.
func (r *Report) Graph() (*graph.Graph, error) {
	g, err := graph.FromAntennas(r.Antennas())
	if err != nil {
		return nil, err
	}
	if g.NumEdges() != len(r.Edges) {
		return nil, fmt.Errorf("%w: %d edges recorded, %d rebuilt", ErrInvalidReport, len(r.Edges), g.NumEdges())
	}
	for _, e := range r.Edges {
		from, _ := g.Vertex(e.From)
		to, _ := g.Vertex(e.To)
		if !g.HasEdge(from, to) {
			return nil, fmt.Errorf("%w: edge %d->%d does not join equal frequencies", ErrInvalidReport, e.From, e.To)
		}
	}
	return g, nil
}
