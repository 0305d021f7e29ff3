package graph

import (
	"fmt"

	"github.com/matzehuels/antennas/pkg/antenna"
)

// Build parses rows of grid text and returns the interference graph.
// Options control which characters count as empty cells.
func Build(rows []string, opts ...antenna.ParseOption) (*Graph, error) {
	grid, err := antenna.ParseRows(rows, opts...)
	if err != nil {
		return nil, err
	}
	return FromGrid(grid)
}

// ReadFile reads a grid file and returns the interference graph. A missing
// or unreadable file yields an error and no graph.
func ReadFile(path string, opts ...antenna.ParseOption) (*Graph, error) {
	grid, err := antenna.ReadGridFile(path, opts...)
	if err != nil {
		return nil, err
	}
	return FromGrid(grid)
}

// FromGrid builds the graph for a parsed grid.
func FromGrid(grid antenna.Grid) (*Graph, error) {
	return FromAntennas(grid.Antennas)
}

// FromAntennas builds a graph in two passes. The first adds one vertex per
// distinct position; the second joins every unordered pair of distinct
// vertices that share a frequency with an edge in each direction. On error
// nothing is returned.
func FromAntennas(antennas []antenna.Antenna) (*Graph, error) {
	g := New()
	for _, a := range antennas {
		if _, err := g.AddVertex(a); err != nil {
			return nil, fmt.Errorf("add vertex %s: %w", a, err)
		}
	}
	if err := g.connectByFrequency(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) connectByFrequency() error {
	for i, a := range g.vertices {
		for _, b := range g.vertices[i+1:] {
			if a.Frequency() != b.Frequency() {
				continue
			}
			if err := g.connect(a, b); err != nil {
				return fmt.Errorf("connect %s and %s: %w", a, b, err)
			}
		}
	}
	return nil
}
