package errors

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/matzehuels/antennas/pkg/antenna"
)

// ValidatePath validates a grid file path supplied on the command line or
// in the config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//
// Absolute paths and parent references are allowed; the tools only read
// local files the user names.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ParsePosition parses "x,y" (column, row) into a position. Surrounding
// spaces and parentheses are ignored, so "(1, 2)" is accepted too.
// Negative coordinates are rejected.
func ParsePosition(s string) (antenna.Position, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimSuffix(strings.TrimPrefix(trimmed, "("), ")")
	xs, ys, ok := strings.Cut(trimmed, ",")
	if !ok {
		return antenna.Position{}, New(ErrCodeInvalidCoordinate, "position %q must be x,y", s)
	}

	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return antenna.Position{}, Wrap(ErrCodeInvalidCoordinate, err, "invalid column in %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return antenna.Position{}, Wrap(ErrCodeInvalidCoordinate, err, "invalid row in %q", s)
	}

	p := antenna.Position{X: x, Y: y}
	if p.Negative() {
		return antenna.Position{}, New(ErrCodeInvalidCoordinate, "position %s must not be negative", p)
	}
	return p, nil
}

// ValidateFrequency parses a single-character frequency. The empty-cell
// markers are not valid frequencies.
func ValidateFrequency(s string, empty ...rune) (antenna.Frequency, error) {
	f, err := antenna.ParseFrequency(s)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidFrequency, err, "invalid frequency %q", s)
	}
	if len(empty) == 0 {
		empty = antenna.DefaultEmptyMarkers
	}
	for _, m := range empty {
		if rune(f) == m {
			return 0, New(ErrCodeInvalidFrequency, "%q marks an empty cell, not a frequency", s)
		}
	}
	return f, nil
}

// ParseLimit parses a result limit. An empty string yields def. The limit
// must be a positive integer.
func ParseLimit(s string, def int) (int, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Wrap(ErrCodeInvalidInput, err, "invalid limit %q", s)
	}
	if n <= 0 {
		return 0, New(ErrCodeInvalidInput, "limit must be positive, got %d", n)
	}
	return n, nil
}
