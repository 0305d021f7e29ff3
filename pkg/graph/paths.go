package graph

import (
	"errors"
	"slices"
)

// FindAllPaths returns every simple path from origin to dest, in the order
// a depth-first search over adjacency order discovers them. When origin is
// dest the result is the single one-vertex path. When dest is unreachable
// the result is empty and the error is nil.
//
// The number of paths can grow exponentially with the size of a
// same-frequency cluster; see the package documentation.
func FindAllPaths(g *Graph, origin, dest *Vertex) (Paths, error) {
	var out Paths
	err := WalkPaths(g, origin, dest, func(p Path) error {
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WalkPaths enumerates the simple paths from origin to dest and calls fn
// with each one. Every path handed to fn is a fresh copy that fn may keep
// or modify. If fn returns ErrStopWalk the walk ends and WalkPaths returns
// nil; any other error ends the walk and is returned.
func WalkPaths(g *Graph, origin, dest *Vertex, fn func(Path) error) error {
	if err := g.check(origin, dest); err != nil {
		return err
	}
	w := &pathWalker{
		graph:   g,
		dest:    dest,
		visited: make(map[VertexID]bool, g.NumVertices()),
		fn:      fn,
	}
	err := w.walk(origin, make(Path, 0, g.NumVertices()))
	if errors.Is(err, ErrStopWalk) {
		return nil
	}
	return err
}

// pathWalker carries the state of one backtracking enumeration.
type pathWalker struct {
	graph   *Graph
	dest    *Vertex
	visited map[VertexID]bool
	fn      func(Path) error
}

// walk extends prefix with v. v is marked for the duration of the call and
// unmarked on return so other paths may pass through it.
func (w *pathWalker) walk(v *Vertex, prefix Path) error {
	w.visited[v.ID] = true
	defer delete(w.visited, v.ID)

	path := append(prefix, v)
	if v == w.dest {
		return w.fn(slices.Clone(path))
	}
	for _, id := range v.adj {
		if w.visited[id] {
			continue
		}
		if err := w.walk(w.graph.vertices[id], path); err != nil {
			return err
		}
	}
	return nil
}
