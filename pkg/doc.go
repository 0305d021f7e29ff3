// Package pkg provides the libraries behind the antennas tools.
//
// # Overview
//
// Antennas turns a character grid of radio antennas into an interference
// graph: every antenna is a vertex and every pair sharing a frequency is
// linked. The pkg directory is organized into four areas:
//
//  1. Core: [antenna] (grid parsing, effect points) and [graph]
//     (construction, traversal, paths, intersections, lookups)
//  2. Output: [io] (JSON report, BSON dump, text matrix) and
//     [render/nodelink] (DOT and SVG)
//  3. Infrastructure: [cache], [observability], [errors], [buildinfo]
//  4. Orchestration: [pipeline] (build → render with caching) and
//     [server] (read-only HTTP API)
//
// # Architecture
//
// The typical data flow:
//
//	grid text
//	    ↓
//	[antenna] package (parse antennas)
//	    ↓
//	[graph] package (link same-frequency antennas, answer queries)
//	    ↓
//	[pipeline] / [server] / CLI (render, export, serve)
//
// # Quick Start
//
//	g, err := graph.ReadFile("city.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	a, _ := g.VertexAt(0, 0)
//	t, _ := graph.BFS(g, a)
//	fmt.Println(t.Positions())
package pkg
