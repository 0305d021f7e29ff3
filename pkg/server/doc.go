// Package server exposes one interference graph over a read-only JSON API.
//
// The graph is built once before the server starts and never changes, so
// handlers share it across goroutines without locking. Every query runs on
// the request goroutine; path enumeration is capped per request because its
// cost grows exponentially with cluster size.
//
// # Routes
//
//	GET /healthz                          liveness and version
//	GET /summary                          vertex, edge and component counts
//	GET /vertices?frequency=A&limit=n     vertices, optionally filtered
//	GET /vertices/{x}/{y}                 one vertex and its neighbours
//	GET /traverse/{dfs|bfs}?from=x,y      visit order from a start vertex
//	GET /paths?from=x,y&to=x,y&limit=n    simple paths between two vertices
//	GET /intersections?a=A&b=B&limit=n    cross-frequency position pairs
//	GET /effects?clip=true                nefarious effect points
//	GET /graph.dot?effects=1&detailed=1   Graphviz source
//	GET /graph.svg?effects=1&detailed=1   rendered diagram (cached)
//	GET /report.json                      full JSON report (cached)
//
// Errors are JSON objects {"code": "...", "message": "..."} with the HTTP
// status derived from the code.
package server
