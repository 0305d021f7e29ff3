package antenna

import (
	"errors"
	"fmt"
)

// Sentinel errors for antenna parsing.
var (
	// ErrEmptyFrequency is returned when an antenna is built from an empty
	// marker or a zero rune.
	ErrEmptyFrequency = errors.New("antenna: frequency must not be empty")

	// ErrInvalidFrequency is returned when a frequency string is not exactly
	// one character.
	ErrInvalidFrequency = errors.New("antenna: frequency must be a single character")
)

// DefaultEmptyMarkers are the cell values treated as "no antenna".
var DefaultEmptyMarkers = []rune{'.', ' '}

// Frequency identifies the channel an antenna transmits on. Antennas that
// share a frequency interfere with each other.
type Frequency rune

// String returns the frequency as a one-character string.
func (f Frequency) String() string { return string(rune(f)) }

// ParseFrequency converts a one-character string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
	}
	if r[0] == 0 {
		return 0, ErrEmptyFrequency
	}
	return Frequency(r[0]), nil
}

// MarshalText encodes the frequency as its character so JSON reports stay
// readable.
func (f Frequency) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText decodes a one-character frequency.
func (f *Frequency) UnmarshalText(b []byte) error {
	v, err := ParseFrequency(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Position is a grid cell. X is the column, Y is the row.
type Position struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// String formats the position as "(x,y)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Negative reports whether either coordinate is below zero.
func (p Position) Negative() bool { return p.X < 0 || p.Y < 0 }

// Antenna is a transmitter at a fixed grid position.
type Antenna struct {
	Frequency Frequency `json:"frequency" bson:"frequency"`
	Position  Position  `json:"position" bson:"position"`
}

// New creates an antenna at (x, y) on frequency f.
func New(f Frequency, x, y int) Antenna {
	return Antenna{Frequency: f, Position: Position{X: x, Y: y}}
}

// String formats the antenna as "A@(x,y)".
func (a Antenna) String() string { return a.Frequency.String() + "@" + a.Position.String() }
