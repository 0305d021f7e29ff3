package io

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/antennas/pkg/antenna"
)

// Matrix cell markers.
const (
	EmptyCell  = '.'
	EffectCell = '#'
)

// WriteMatrix renders antennas and effect points as a text matrix. An
// antenna wins over an effect at the same cell.
func WriteMatrix(w io.Writer, antennas []antenna.Antenna, effects []antenna.Effect) error {
	cells := make(map[antenna.Position]rune, len(antennas)+len(effects))
	maxX, maxY := -1, -1
	mark := func(p antenna.Position, c rune, override bool) {
		if p.Negative() {
			return
		}
		if _, taken := cells[p]; taken && !override {
			return
		}
		cells[p] = c
		maxX, maxY = max(maxX, p.X), max(maxY, p.Y)
	}
	for _, e := range effects {
		mark(e.Position, EffectCell, false)
	}
	for _, a := range antennas {
		mark(a.Position, rune(a.Frequency), true)
	}

	bw := bufio.NewWriter(w)
	row := make([]string, maxX+1)
	for y := 0; y <= maxY; y++ {
		for x := 0; x <= maxX; x++ {
			c, ok := cells[antenna.Position{X: x, Y: y}]
			if !ok {
				c = EmptyCell
			}
			row[x] = string(c)
		}
		if _, err := fmt.Fprintln(bw, strings.Join(row, " ")); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return bw.Flush()
}

// ExportMatrix writes a text matrix to a file at path.
func ExportMatrix(path string, antennas []antenna.Antenna, effects []antenna.Effect) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteMatrix(w, antennas, effects)
	})
}
