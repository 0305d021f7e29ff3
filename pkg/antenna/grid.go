package antenna

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// maxLineSize bounds a single grid row. Rows longer than this are rejected
// by the scanner instead of being silently split.
const maxLineSize = 1 << 20

// Grid is the parsed content of a grid source.
type Grid struct {
	// Antennas in row-major order (top to bottom, left to right).
	Antennas []Antenna
	// Width is the length, in characters, of the widest row.
	Width int
	// Height is the number of rows read, including rows without antennas.
	Height int
}

// Contains reports whether p lies inside the grid bounds.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// Frequencies returns the distinct frequencies in first-seen order.
func (g Grid) Frequencies() []Frequency {
	var out []Frequency
	for _, a := range g.Antennas {
		if !slices.Contains(out, a.Frequency) {
			out = append(out, a.Frequency)
		}
	}
	return out
}

// Effects returns the effect points induced by the grid's antennas.
// When clip is true, points outside the grid are dropped.
func (g Grid) Effects(clip bool) []Effect {
	all := Effects(g.Antennas)
	if !clip {
		return all
	}
	return slices.DeleteFunc(all, func(e Effect) bool { return !g.Contains(e.Position) })
}

// ParseOption configures [ParseGrid].
type ParseOption func(*parseConfig)

type parseConfig struct {
	empty []rune
}

// WithEmptyMarkers replaces the set of characters treated as empty cells.
// An empty argument list keeps the defaults.
func WithEmptyMarkers(markers ...rune) ParseOption {
	return func(c *parseConfig) {
		if len(markers) > 0 {
			c.empty = markers
		}
	}
}

// ParseGrid reads a grid from r. Each line is a row; the trailing "\r" of
// CRLF input is removed. Every rune that is not an empty marker becomes an
// antenna at (column, row), where column counts runes, not bytes.
func ParseGrid(r io.Reader, opts ...ParseOption) (Grid, error) {
	cfg := parseConfig{empty: DefaultEmptyMarkers}
	for _, opt := range opts {
		opt(&cfg)
	}

	var g Grid
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	for y := 0; sc.Scan(); y++ {
		line := strings.TrimRight(sc.Text(), "\r")
		x := 0
		for _, c := range line {
			if !slices.Contains(cfg.empty, c) {
				g.Antennas = append(g.Antennas, New(Frequency(c), x, y))
			}
			x++
		}
		g.Width = max(g.Width, x)
		g.Height = y + 1
	}
	if err := sc.Err(); err != nil {
		return Grid{}, fmt.Errorf("read grid: %w", err)
	}
	return g, nil
}

// ParseRows parses an in-memory grid given as rows of text.
func ParseRows(rows []string, opts ...ParseOption) (Grid, error) {
	return ParseGrid(strings.NewReader(strings.Join(rows, "\n")), opts...)
}

// ReadGridFile opens path and parses it with [ParseGrid].
func ReadGridFile(path string, opts ...ParseOption) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return Grid{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseGrid(f, opts...)
}
