package graph

import (
	"fmt"

	"github.com/matzehuels/antennas/pkg/antenna"
)

// FindIntersections pairs every vertex of frequency a with every vertex of
// frequency b and returns at most limit pairs. The outer loop runs over the
// a-vertices and the inner loop over the b-vertices, both in insertion
// order. Graph edges play no part.
//
// Returns ErrInvalidLimit when limit is not positive and
// ErrFrequencyNotFound when either frequency has no vertex. When a equals
// b every vertex is also paired with itself.
func FindIntersections(g *Graph, a, b antenna.Frequency, limit int) ([]Intersection, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	as := g.VerticesByFrequency(a, 0)
	if len(as) == 0 {
		return nil, fmt.Errorf("%w %s", ErrFrequencyNotFound, a)
	}
	bs := g.VerticesByFrequency(b, 0)
	if len(bs) == 0 {
		return nil, fmt.Errorf("%w %s", ErrFrequencyNotFound, b)
	}

	out := make([]Intersection, 0, min(limit, len(as)*len(bs)))
	for _, va := range as {
		for _, vb := range bs {
			if len(out) == limit {
				return out, nil
			}
			out = append(out, Intersection{A: va.Position(), B: vb.Position()})
		}
	}
	return out, nil
}
