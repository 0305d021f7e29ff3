package graph

import (
	"fmt"
	"slices"

	"github.com/matzehuels/antennas/pkg/antenna"
)

// AddVertex inserts an antenna as a new vertex and returns it. If a vertex
// already sits at the antenna's position, that vertex is returned unchanged
// and the vertex count does not grow, even when the frequency differs.
// Returns ErrNegativeCoordinate for positions with a negative component.
func (g *Graph) AddVertex(a antenna.Antenna) (*Vertex, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if a.Position.Negative() {
		return nil, fmt.Errorf("%w: %s", ErrNegativeCoordinate, a.Position)
	}
	if id, ok := g.index[a.Position]; ok {
		return g.vertices[id], nil
	}
	v := &Vertex{ID: VertexID(len(g.vertices)), Antenna: a}
	g.vertices = append(g.vertices, v)
	g.index[a.Position] = v.ID
	return v, nil
}

// HasEdge reports whether the directed edge src→dst exists. It runs in
// O(deg(src)). Nil vertices have no edges.
func (g *Graph) HasEdge(src, dst *Vertex) bool {
	if src == nil || dst == nil {
		return false
	}
	return slices.Contains(src.adj, dst.ID)
}

// AddEdge inserts the directed edge src→dst. Adding an edge that already
// exists succeeds without creating a duplicate. Both vertices must belong
// to g.
func (g *Graph) AddEdge(src, dst *Vertex) error {
	if err := g.check(src, dst); err != nil {
		return err
	}
	if src == dst {
		return fmt.Errorf("%w: %s", ErrSelfLoop, src)
	}
	if g.HasEdge(src, dst) {
		return nil
	}
	src.adj = append(src.adj, dst.ID)
	g.edges++
	return nil
}

// connect adds the edge pair a→b and b→a.
func (g *Graph) connect(a, b *Vertex) error {
	if err := g.AddEdge(a, b); err != nil {
		return err
	}
	return g.AddEdge(b, a)
}

// NumVertices returns the number of vertices. A nil graph has none.
func (g *Graph) NumVertices() int {
	if g == nil {
		return 0
	}
	return len(g.vertices)
}

// NumEdges returns the number of directed edges. Every same-frequency pair
// contributes two.
func (g *Graph) NumEdges() int {
	if g == nil {
		return 0
	}
	return g.edges
}

// Vertices returns all vertices in insertion order. The slice is a copy;
// the vertices are shared with the graph.
func (g *Graph) Vertices() []*Vertex {
	if g == nil {
		return nil
	}
	return slices.Clone(g.vertices)
}

// Vertex returns the vertex with the given ID.
func (g *Graph) Vertex(id VertexID) (*Vertex, bool) {
	if g == nil || id < 0 || int(id) >= len(g.vertices) {
		return nil, false
	}
	return g.vertices[id], true
}

// Neighbors returns the vertices adjacent to v in adjacency order.
func (g *Graph) Neighbors(v *Vertex) ([]*Vertex, error) {
	if err := g.check(v); err != nil {
		return nil, err
	}
	out := make([]*Vertex, len(v.adj))
	for i, id := range v.adj {
		out[i] = g.vertices[id]
	}
	return out, nil
}

// Edges returns every directed edge, grouped by source vertex in insertion
// order and by adjacency order within a source.
func (g *Graph) Edges() []Edge {
	if g == nil {
		return nil
	}
	out := make([]Edge, 0, g.edges)
	for _, v := range g.vertices {
		for _, to := range v.adj {
			out = append(out, Edge{From: v.ID, To: to})
		}
	}
	return out
}
