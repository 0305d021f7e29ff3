package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/antennas/pkg/antenna"
	"github.com/matzehuels/antennas/pkg/graph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the grid position and degree to node labels.
	// When false, only the frequency is shown.
	Detailed bool

	// Effects are drawn as small '#' points at their positions. Points
	// with negative coordinates are skipped.
	Effects []antenna.Effect

	// Spacing is the distance in inches between neighbouring grid cells.
	// Zero means 1.
	Spacing float64
}

// palette is cycled through in first-seen frequency order.
var palette = []string{
	"#8ecae6", "#ffb703", "#90be6d", "#f28482", "#cdb4db",
	"#f4a261", "#a8dadc", "#e9c46a", "#b5838d", "#84a59d",
}

// ToDOT converts an interference graph to Graphviz DOT. The output is an
// undirected graph with one edge per antenna pair and every node pinned to
// its grid cell, so it is meant for the neato engine used by [RenderSVG].
// Row 0 is drawn at the top. A nil graph yields an empty DOT graph.
func ToDOT(g *graph.Graph, opts Options) string {
	if g == nil {
		g = graph.New()
	}
	spacing := opts.Spacing
	if spacing <= 0 {
		spacing = 1
	}
	colors := make(map[antenna.Frequency]string)
	for i, f := range g.Frequencies() {
		colors[f] = palette[i%len(palette)]
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fixedsize=true, width=0.5, fontsize=14];\n")
	buf.WriteString("  edge [color=\"#555555\"];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		p := v.Position()
		attrs := []string{
			fmt.Sprintf("label=%q", fmtLabel(v, opts.Detailed)),
			fmt.Sprintf("fillcolor=%q", colors[v.Frequency()]),
			fmtPos(p, spacing),
		}
		fmt.Fprintf(&buf, "  v%d [%s];\n", v.ID, strings.Join(attrs, ", "))
	}

	seen := make(map[antenna.Position]bool)
	for _, e := range opts.Effects {
		p := e.Position
		if p.Negative() || seen[p] {
			continue
		}
		if _, ok := g.VertexAt(p.X, p.Y); ok {
			continue
		}
		seen[p] = true
		fmt.Fprintf(&buf, "  e_%d_%d [label=\"#\", shape=plaintext, style=\"\", fontcolor=\"#c1121f\", %s];\n", p.X, p.Y, fmtPos(p, spacing))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if e.From < e.To {
			fmt.Fprintf(&buf, "  v%d -- v%d;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(v *graph.Vertex, detailed bool) string {
	if !detailed {
		return v.Frequency().String()
	}
	return fmt.Sprintf("%s\n%s\ndeg %d", v.Frequency(), v.Position(), v.Degree())
}

func fmtPos(p antenna.Position, spacing float64) string {
	x := strconv.FormatFloat(float64(p.X)*spacing, 'f', -1, 64)
	y := strconv.FormatFloat(float64(-p.Y)*spacing, 'f', -1, 64)
	return fmt.Sprintf("pos=\"%s,%s!\"", x, y)
}

// RenderSVG renders a DOT graph to SVG with the neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the SVG scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
