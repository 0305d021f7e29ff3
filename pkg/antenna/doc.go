// Package antenna models radio antennas placed on a 2D grid and the
// "nefarious effect" points they induce.
//
// # Overview
//
// A grid is plain text: every character that is not an empty marker is an
// antenna whose frequency is that character. The row index is the Y
// coordinate and the column index is the X coordinate:
//
//	A.B
//	.A.
//	C..
//
// yields A@(0,0), B@(2,0), A@(1,1) and C@(0,2).
//
// # Parsing
//
// Use [ParseGrid] to read any io.Reader, or [ReadGridFile] for a path:
//
//	grid, err := antenna.ReadGridFile("antennas.txt")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(grid.Antennas), grid.Width, grid.Height)
//
// Rows are read with a line scanner, so row length is whatever the input
// holds. [Grid.Width] is the length of the widest row. By default '.' and
// ' ' are empty cells; [WithEmptyMarkers] replaces that set.
//
// # Effects
//
// Two antennas a and b on the same frequency induce an effect at 2a-b and
// another at 2b-a. [Effects] computes every such point for a list of
// antennas, sorted by row then column. [Grid.Effects] optionally drops
// points that fall outside the grid.
//
// # Concurrency
//
// All types are plain values. Functions do not share state and are safe
// to call concurrently.
package antenna
