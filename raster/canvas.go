package raster

import "strings"

// Blank fills every cell of a fresh canvas.
const Blank = ' '

// Canvas is a fixed-size grid of characters, indexed [row][column].
type Canvas struct {
	cells [][]rune
	w, h  int
}

// NewCanvas returns a blank width×height canvas. Non-positive sizes give an
// empty canvas.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		return &Canvas{}
	}
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = Blank
		}
		cells[y] = row
	}
	return &Canvas{cells: cells, w: width, h: height}
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

// In reports whether (x, y) lies on the canvas.
func (c *Canvas) In(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

// At returns the character at column x, row y, or Blank off the canvas.
func (c *Canvas) At(x, y int) rune {
	if !c.In(x, y) {
		return Blank
	}
	return c.cells[y][x]
}

// Set writes r at column x, row y. Cells off the canvas are dropped.
func (c *Canvas) Set(x, y int, r rune) {
	if c.In(x, y) {
		c.cells[y][x] = r
	}
}

// Rows returns each row of the canvas as a string, top row first.
func (c *Canvas) Rows() []string {
	rows := make([]string, c.h)
	for y, row := range c.cells {
		rows[y] = string(row)
	}
	return rows
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for _, row := range c.cells {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
