// Package render groups the visual outputs of the antennas tools.
//
// The [nodelink] subpackage draws the interference graph on its grid with
// Graphviz:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [nodelink]: github.com/matzehuels/antennas/pkg/render/nodelink
package render
