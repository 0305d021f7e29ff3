package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/antennas/pkg/antenna"
	"github.com/matzehuels/antennas/pkg/graph"
)

func sample(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Build([]string{"A.B", ".A.", "C.."})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sample(t), Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("DOT should be an undirected graph:\n%s", dot)
	}
	for _, want := range []string{
		`v0 [label="A"`,
		`v1 [label="B"`,
		`pos="2,0!"`,
		`pos="1,-1!"`,
		"v0 -- v2;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Count(dot, " -- ") != 1 {
		t.Errorf("each antenna pair should produce one line:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Error("DOT should not contain directed edges")
	}
}

func TestToDOTColorsByFrequency(t *testing.T) {
	dot := ToDOT(sample(t), Options{})
	lines := strings.Split(dot, "\n")

	colorOf := func(id string) string {
		for _, l := range lines {
			if strings.HasPrefix(strings.TrimSpace(l), id+" [") {
				i := strings.Index(l, "fillcolor=")
				return l[i : i+len(`fillcolor="#000000"`)]
			}
		}
		t.Fatalf("node %s not found", id)
		return ""
	}
	if colorOf("v0") != colorOf("v2") {
		t.Error("same frequency should share a colour")
	}
	if colorOf("v0") == colorOf("v1") {
		t.Error("different frequencies should get different colours")
	}
}

func TestToDOTDetailedAndEffects(t *testing.T) {
	g := sample(t)
	effects := antenna.Effects([]antenna.Antenna{antenna.New('A', 0, 0), antenna.New('A', 1, 1)})

	dot := ToDOT(g, Options{Detailed: true, Effects: effects, Spacing: 2})
	if !strings.Contains(dot, `label="A\n(0,0)\ndeg 1"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
	if !strings.Contains(dot, `e_2_2 [label="#"`) {
		t.Errorf("effect at (2,2) missing:\n%s", dot)
	}
	if !strings.Contains(dot, `pos="4,-4!"`) {
		t.Errorf("spacing should scale positions:\n%s", dot)
	}
	if strings.Contains(dot, "e_-1") {
		t.Errorf("negative effects should be skipped:\n%s", dot)
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	svg, err := RenderSVG(context.Background(), ToDOT(sample(t), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Errorf("output is not SVG: %.200s", svg)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox = %s", out)
	}

	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("SVG without viewBox should be unchanged")
	}
}

func TestToDOTNilGraph(t *testing.T) {
	dot := ToDOT(nil, Options{Effects: []antenna.Effect{{Position: antenna.Position{X: 1, Y: 1}}}})
	if !strings.HasPrefix(dot, "graph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("nil graph should render as an empty graph:\n%s", dot)
	}
	if strings.Contains(dot, " -- ") || strings.Contains(dot, "v0") {
		t.Errorf("nil graph should have no vertices or edges:\n%s", dot)
	}
}
