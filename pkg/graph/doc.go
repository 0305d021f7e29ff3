// Package graph holds antennas as an undirected interference graph and
// answers connectivity queries over it.
//
// # Overview
//
// Every antenna becomes a [Vertex]. Two vertices on the same frequency are
// joined by a pair of directed [Edge]s, one per direction, so the graph is
// logically undirected while the stored edges stay directed pairs. Vertices
// on different frequencies are never connected.
//
//	A.B         A(0,0) ─── A(1,1)
//	.A.   ==>
//	C..         B(2,0)     C(0,2)
//
// # Building
//
// [Build] parses rows of grid text; [FromGrid] and [FromAntennas] take data
// already parsed by package antenna; [ReadFile] reads a grid file:
//
//	g, err := graph.Build([]string{"A.B", ".A.", "C.."})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(g.NumVertices()) // 4
//
// A build either returns a complete graph or an error. Adding a vertex at
// a position that already holds one returns the existing vertex.
//
// # Storage
//
// The [Graph] owns an arena of vertices addressed by [VertexID]. IDs are
// stable and follow insertion order, which is also the order of every
// graph-wide scan ([Graph.Vertices], [Graph.VerticesByFrequency],
// [FindIntersections]). Each vertex keeps its neighbour IDs in insertion
// order, and traversals follow that order.
//
// # Queries
//
//   - [DFS] and [BFS] return the reachable component of a start vertex
//     in preorder or level order, with the depth of each vertex.
//   - [FindAllPaths] and [WalkPaths] enumerate every simple path between
//     two vertices by backtracking.
//   - [FindIntersections] pairs every position of one frequency with
//     every position of another, independent of edges.
//   - [Graph.VertexAt] and [Graph.VerticesByFrequency] look vertices up.
//   - [Components] and [Summarize] describe the whole graph.
//
// Visited state is keyed by vertex ID and private to each call, so queries
// never interfere with each other.
//
// # Complexity
//
// DFS, BFS and Components run in O(V+E). Building is O(V²) because every
// pair of vertices is compared. Path enumeration is exponential in the
// worst case: a cluster of k antennas on one frequency is a complete graph
// with about e·(k-2)! simple paths between any two of its vertices. The
// enumerator does not cap this; callers bound it through grid size, or stop
// early from a [WalkPaths] callback.
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. Once built it is never
// modified by any query, so concurrent readers are fine.
package graph
