package graph

import "github.com/matzehuels/antennas/pkg/antenna"

// VertexAt returns the vertex at column x, row y.
func (g *Graph) VertexAt(x, y int) (*Vertex, bool) {
	if g == nil {
		return nil, false
	}
	id, ok := g.index[antenna.Position{X: x, Y: y}]
	if !ok {
		return nil, false
	}
	return g.vertices[id], true
}

// VerticesByFrequency returns the vertices with frequency f in insertion
// order, stopping after limit matches. A limit of zero or less means no
// limit. The result is empty, never an error, when nothing matches.
func (g *Graph) VerticesByFrequency(f antenna.Frequency, limit int) []*Vertex {
	if g == nil {
		return nil
	}
	var out []*Vertex
	for _, v := range g.vertices {
		if limit > 0 && len(out) == limit {
			break
		}
		if v.Frequency() == f {
			out = append(out, v)
		}
	}
	return out
}

// Frequencies returns the distinct frequencies in the order they first
// appear among the vertices.
func (g *Graph) Frequencies() []antenna.Frequency {
	if g == nil {
		return nil
	}
	seen := make(map[antenna.Frequency]bool)
	var out []antenna.Frequency
	for _, v := range g.vertices {
		if f := v.Frequency(); !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
