package antenna

import (
	"cmp"
	"slices"
)

// Effect is a nefarious effect point. Source is the antenna the point is
// projected from and Partner the antenna it is projected away from, so
// Position == 2*Source - Partner.
type Effect struct {
	Position Position `json:"position" bson:"position"`
	Source   Antenna  `json:"source" bson:"source"`
	Partner  Antenna  `json:"partner" bson:"partner"`
}

// Effects computes the effect points for every unordered pair of antennas
// sharing a frequency. Each pair (a, b) contributes 2a-b and 2b-a. The
// result is sorted by row, then column; ties keep pair order. Points may
// be negative or lie outside any grid, and may coincide with antennas or
// with each other.
func Effects(antennas []Antenna) []Effect {
	var out []Effect
	for i, a := range antennas {
		for _, b := range antennas[i+1:] {
			if a.Frequency != b.Frequency || a.Position == b.Position {
				continue
			}
			out = append(out,
				Effect{Position: reflect(a.Position, b.Position), Source: a, Partner: b},
				Effect{Position: reflect(b.Position, a.Position), Source: b, Partner: a},
			)
		}
	}
	slices.SortStableFunc(out, func(x, y Effect) int {
		return ComparePositions(x.Position, y.Position)
	})
	return out
}

// ComparePositions orders positions by row, then column.
func ComparePositions(a, b Position) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// reflect mirrors q through p: 2p - q.
func reflect(p, q Position) Position {
	return Position{X: 2*p.X - q.X, Y: 2*p.Y - q.Y}
}

// EffectPositions returns the distinct effect positions. effects must be
// sorted as returned by [Effects].
func EffectPositions(effects []Effect) []Position {
	out := make([]Position, 0, len(effects))
	for _, e := range effects {
		if n := len(out); n == 0 || out[n-1] != e.Position {
			out = append(out, e.Position)
		}
	}
	return out
}
