package graph

import "github.com/matzehuels/antennas/pkg/antenna"

// Components splits the graph into connected components. Components are
// ordered by their lowest vertex ID and each lists its vertices in BFS
// order from that vertex. Since edges only join equal frequencies, every
// component holds a single frequency.
func Components(g *Graph) [][]*Vertex {
	if g == nil {
		return nil
	}
	seen := make(map[VertexID]bool, g.NumVertices())
	var out [][]*Vertex
	for _, v := range g.vertices {
		if seen[v.ID] {
			continue
		}
		t, err := BFS(g, v)
		if err != nil {
			// v is owned by g, so BFS cannot fail here.
			continue
		}
		for _, u := range t.Order {
			seen[u.ID] = true
		}
		out = append(out, t.Order)
	}
	return out
}

// Summary holds headline counts for a graph.
type Summary struct {
	Vertices    int                 `json:"vertices" bson:"vertices"`
	Edges       int                 `json:"edges" bson:"edges"`
	Frequencies []antenna.Frequency `json:"frequencies" bson:"frequencies"`
	Components  int                 `json:"components" bson:"components"`
	// Largest is the size of the biggest component.
	Largest int `json:"largest" bson:"largest"`
}

// Summarize computes the summary of g. A nil graph summarizes as empty.
func Summarize(g *Graph) Summary {
	if g == nil {
		return Summary{}
	}
	comps := Components(g)
	s := Summary{
		Vertices:    g.NumVertices(),
		Edges:       g.NumEdges(),
		Frequencies: g.Frequencies(),
		Components:  len(comps),
	}
	for _, c := range comps {
		s.Largest = max(s.Largest, len(c))
	}
	return s
}
