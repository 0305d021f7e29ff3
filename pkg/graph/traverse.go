package graph

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/matzehuels/antennas/pkg/antenna"
)

// Traversal is the result of [DFS] or [BFS].
type Traversal struct {
	// Start is the vertex the search began at.
	Start *Vertex
	// Order lists the reached vertices in visit order. It never holds more
	// than NumVertices entries and only covers Start's component.
	Order []*Vertex
	// Depth maps each reached vertex to its depth in the search tree. For
	// BFS this is the edge distance from Start.
	Depth map[VertexID]int
}

// Len returns the number of vertices reached. A nil traversal has none.
func (t *Traversal) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Order)
}

// Contains reports whether v was reached.
func (t *Traversal) Contains(v *Vertex) bool {
	if v == nil {
		return false
	}
	_, ok := t.Depth[v.ID]
	return ok
}

// Positions returns the positions of the reached vertices in visit order.
func (t *Traversal) Positions() []antenna.Position {
	return Path(t.Order).Positions()
}

func newTraversal(g *Graph, start *Vertex) *Traversal {
	n := g.NumVertices()
	return &Traversal{
		Start: start,
		Order: make([]*Vertex, 0, n),
		Depth: make(map[VertexID]int, n),
	}
}

// dfsWalker carries the state of one depth-first search.
type dfsWalker struct {
	graph   *Graph
	visited map[VertexID]bool
	res     *Traversal
}

// DFS runs a recursive depth-first search from start and returns the
// reached vertices in preorder. Neighbours are explored in adjacency order.
// Returns ErrNilGraph, ErrNilVertex or ErrVertexNotFound for bad input.
func DFS(g *Graph, start *Vertex) (*Traversal, error) {
	if err := g.check(start); err != nil {
		return nil, err
	}
	w := &dfsWalker{
		graph:   g,
		visited: make(map[VertexID]bool, g.NumVertices()),
		res:     newTraversal(g, start),
	}
	w.visit(start, 0)
	return w.res, nil
}

func (w *dfsWalker) visit(v *Vertex, depth int) {
	w.visited[v.ID] = true
	w.res.Order = append(w.res.Order, v)
	w.res.Depth[v.ID] = depth
	for _, id := range v.adj {
		if !w.visited[id] {
			w.visit(w.graph.vertices[id], depth+1)
		}
	}
}

// BFS runs a breadth-first search from start and returns the reached
// vertices in level order. A vertex is marked visited when it is enqueued,
// so it is never queued twice.
// Returns ErrNilGraph, ErrNilVertex or ErrVertexNotFound for bad input.
func BFS(g *Graph, start *Vertex) (*Traversal, error) {
	if err := g.check(start); err != nil {
		return nil, err
	}
	res := newTraversal(g, start)
	visited := make(map[VertexID]bool, g.NumVertices())
	queue := linkedlistqueue.New()

	visited[start.ID] = true
	res.Depth[start.ID] = 0
	queue.Enqueue(start)

	for !queue.Empty() {
		item, _ := queue.Dequeue()
		v := item.(*Vertex)
		res.Order = append(res.Order, v)
		for _, id := range v.adj {
			if visited[id] {
				continue
			}
			visited[id] = true
			res.Depth[id] = res.Depth[v.ID] + 1
			queue.Enqueue(g.vertices[id])
		}
	}
	return res, nil
}
