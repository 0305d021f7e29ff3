package antenna

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrOccupied is returned by [Grid.Insert] when the cell already holds
	// an antenna.
	ErrOccupied = errors.New("antenna: position occupied")

	// ErrNoAntenna is returned when an edit targets an empty cell.
	ErrNoAntenna = errors.New("antenna: no antenna at position")

	// ErrNegativePosition is returned by [Grid.Insert] for positions left
	// of or above the grid origin.
	ErrNegativePosition = errors.New("antenna: negative position")
)

// The edit methods keep Antennas in row-major order. Effects are derived
// from Antennas on every call to [Grid.Effects], so they follow each edit.

// find returns the index of the antenna at p, or the index where one would
// be inserted.
func (g *Grid) find(p Position) (int, bool) {
	return slices.BinarySearchFunc(g.Antennas, p, func(a Antenna, p Position) int {
		return ComparePositions(a.Position, p)
	})
}

// At returns the antenna at p.
func (g *Grid) At(p Position) (Antenna, bool) {
	i, ok := g.find(p)
	if !ok {
		return Antenna{}, false
	}
	return g.Antennas[i], true
}

// Insert places a at its position. The grid grows to cover positions past
// its current bounds.
func (g *Grid) Insert(a Antenna) error {
	if a.Position.Negative() {
		return fmt.Errorf("%w: %s", ErrNegativePosition, a.Position)
	}
	i, ok := g.find(a.Position)
	if ok {
		return fmt.Errorf("%w: %s holds %s", ErrOccupied, a.Position, g.Antennas[i])
	}
	g.Antennas = slices.Insert(g.Antennas, i, a)
	g.Width = max(g.Width, a.Position.X+1)
	g.Height = max(g.Height, a.Position.Y+1)
	return nil
}

// Remove deletes the antenna at p and returns it. The grid bounds are
// unchanged.
func (g *Grid) Remove(p Position) (Antenna, error) {
	i, ok := g.find(p)
	if !ok {
		return Antenna{}, fmt.Errorf("%w %s", ErrNoAntenna, p)
	}
	a := g.Antennas[i]
	g.Antennas = slices.Delete(g.Antennas, i, i+1)
	return a, nil
}

// Retune changes the frequency of the antenna at p.
func (g *Grid) Retune(p Position, f Frequency) error {
	i, ok := g.find(p)
	if !ok {
		return fmt.Errorf("%w %s", ErrNoAntenna, p)
	}
	g.Antennas[i].Frequency = f
	return nil
}
