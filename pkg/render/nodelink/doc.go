// Package nodelink renders interference graphs as node-link diagrams.
//
// # Overview
//
// Every antenna becomes a circle labelled with its frequency and pinned to
// its grid cell; antennas sharing a frequency are joined by a line. Each
// frequency gets its own fill colour, so clusters stand out at a glance.
// Nefarious effect points can be overlaid as red '#' marks.
//
// # Usage
//
// Convert a graph to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Effects: grid.Effects(true)})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # DOT Format
//
// The [ToDOT] function produces an undirected Graphviz graph with fixed
// node positions ("pos" attributes ending in '!'). It can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external tools (neato -n2 -Tpng)
//   - Customized before rendering
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package nodelink
