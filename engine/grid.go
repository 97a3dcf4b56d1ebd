package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/ezrec/aheui/hangul"
)

// Point is a grid coordinate, or a direction of travel.
type Point struct {
	X int
	Y int
}

// Reverse returns the point mirrored through the origin.
func (pt Point) Reverse() Point {
	return Point{-pt.X, -pt.Y}
}

// Grid is the decoded program, padded to a rectangle.
type Grid struct {
	Cell   [][]hangul.KChar // Indexed by row, then column.
	Width  int
	Height int
}

// splitLines splits source text into lines. A trailing newline does not
// start another line, and CR/LF endings are accepted.
func splitLines(source string) (lines []string) {
	if len(source) == 0 {
		return
	}

	lines = strings.Split(source, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for n, line := range lines {
		lines[n] = strings.TrimSuffix(line, "\r")
	}

	return
}

// NewGrid decodes source text. Lines shorter than the longest are padded
// with hangul.PAD, which decodes to a blank cell.
func NewGrid(source string) (grid *Grid, err error) {
	lines := splitLines(source)

	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	if width == 0 || len(lines) == 0 {
		err = ErrEmptyProgram
		return
	}

	grid = &Grid{
		Cell:   make([][]hangul.KChar, 0, len(lines)),
		Width:  width,
		Height: len(lines),
	}

	pad := string(hangul.PAD)
	for _, line := range lines {
		line += strings.Repeat(pad, width-utf8.RuneCountInString(line))
		row := make([]hangul.KChar, 0, width)
		for _, r := range line {
			row = append(row, hangul.Decompose(r))
		}
		grid.Cell = append(grid.Cell, row)
	}

	return
}

// At returns the cell under a coordinate, which must be on the grid.
func (grid *Grid) At(pt Point) hangul.KChar {
	return grid.Cell[pt.Y][pt.X]
}

// Wrap folds a coordinate back onto the grid.
func (grid *Grid) Wrap(pt Point) Point {
	return Point{
		X: mod(pt.X, grid.Width),
		Y: mod(pt.Y, grid.Height),
	}
}

// Contains returns true if the coordinate is on the grid.
func (grid *Grid) Contains(pt Point) bool {
	return pt.X >= 0 && pt.X < grid.Width && pt.Y >= 0 && pt.Y < grid.Height
}

// mod is the non-negative remainder of a/b.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
