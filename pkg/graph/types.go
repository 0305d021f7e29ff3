package graph

import (
	"errors"
	"strings"

	"github.com/matzehuels/antennas/pkg/antenna"
)

var (
	// ErrNilGraph is returned when a nil *Graph is passed to a query.
	ErrNilGraph = errors.New("graph: graph is nil")

	// ErrNilVertex is returned when a required vertex argument is nil.
	ErrNilVertex = errors.New("graph: vertex is nil")

	// ErrVertexNotFound is returned when a vertex does not belong to the
	// graph it is used with.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrNegativeCoordinate is returned by [Graph.AddVertex] for antennas
	// outside the non-negative quadrant. Well-formed grid input never
	// produces one.
	ErrNegativeCoordinate = errors.New("graph: negative coordinate")

	// ErrSelfLoop is returned by [Graph.AddEdge] when source and
	// destination are the same vertex.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrFrequencyNotFound is returned by [FindIntersections] when one of
	// the requested frequencies has no vertex.
	ErrFrequencyNotFound = errors.New("graph: no vertex with frequency")

	// ErrInvalidLimit is returned when a result limit is not positive
	// where one is required.
	ErrInvalidLimit = errors.New("graph: limit must be positive")

	// ErrStopWalk may be returned by a [WalkPaths] callback to end the
	// enumeration early. WalkPaths then returns nil.
	ErrStopWalk = errors.New("graph: stop walk")
)

// VertexID is the stable index of a vertex in its graph's arena.
type VertexID int

// Vertex is an antenna node. Its neighbours are stored as IDs into the
// owning graph, in the order the edges were added.
type Vertex struct {
	ID      VertexID
	Antenna antenna.Antenna

	adj []VertexID
}

// Position returns the antenna position.
func (v *Vertex) Position() antenna.Position { return v.Antenna.Position }

// Frequency returns the antenna frequency.
func (v *Vertex) Frequency() antenna.Frequency { return v.Antenna.Frequency }

// Degree returns the number of outgoing edges.
func (v *Vertex) Degree() int { return len(v.adj) }

// NeighborIDs returns a copy of the adjacency list.
func (v *Vertex) NeighborIDs() []VertexID {
	out := make([]VertexID, len(v.adj))
	copy(out, v.adj)
	return out
}

// String formats the vertex as its antenna, e.g. "A@(1,1)".
func (v *Vertex) String() string { return v.Antenna.String() }

// Edge is a directed adjacency from one vertex to another.
type Edge struct {
	From VertexID `json:"from" bson:"from"`
	To   VertexID `json:"to" bson:"to"`
}

// Graph owns every vertex and, through them, every edge.
//
// The zero value is not usable; create graphs with [New] or a builder.
type Graph struct {
	vertices []*Vertex
	index    map[antenna.Position]VertexID
	edges    int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{index: make(map[antenna.Position]VertexID)}
}

// owns reports whether v is a vertex of g.
func (g *Graph) owns(v *Vertex) bool {
	id := int(v.ID)
	return id >= 0 && id < len(g.vertices) && g.vertices[id] == v
}

// check validates the graph and every vertex argument of a query.
func (g *Graph) check(vs ...*Vertex) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, v := range vs {
		if v == nil {
			return ErrNilVertex
		}
		if !g.owns(v) {
			return ErrVertexNotFound
		}
	}
	return nil
}

// Path is a simple walk: consecutive vertices are adjacent and no vertex
// repeats.
type Path []*Vertex

// Len returns the number of vertices on the path.
func (p Path) Len() int { return len(p) }

// Hops returns the number of edges on the path.
func (p Path) Hops() int { return max(len(p)-1, 0) }

// Positions returns the vertex positions in path order.
func (p Path) Positions() []antenna.Position {
	out := make([]antenna.Position, len(p))
	for i, v := range p {
		out[i] = v.Position()
	}
	return out
}

// String formats the path as "A@(0,0) -> A@(1,1)".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = v.String()
	}
	return strings.Join(parts, " -> ")
}

// Paths is an append-only collection of paths in discovery order.
type Paths []Path

// Intersection pairs a position on one frequency with a position on
// another. It is not an edge.
type Intersection struct {
	A antenna.Position `json:"a" bson:"a"`
	B antenna.Position `json:"b" bson:"b"`
}
