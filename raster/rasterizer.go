// Package raster projects wireframe solids onto a character canvas.
package raster

import (
	"math"

	"spinny/solid"
)

// maxCoord bounds projected coordinates. Endpoints further out than this
// are treated like NaN and their edge is dropped.
const maxCoord = 1 << 20

// Project maps p onto canvas coordinates. X is stretched by two to make up
// for terminal cells being about twice as tall as they are wide, Y grows
// downwards and Z is ignored. ok is false when the result is not finite.
func Project(p solid.Point, width, height int, scale float64) (x, y int, ok bool) {
	fx := math.Round(float64(width/2) + p.X*scale*2)
	fy := math.Round(float64(height/2) - p.Y*scale)
	if !(math.Abs(fx) <= maxCoord && math.Abs(fy) <= maxCoord) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// Render draws every edge of every face of s onto a new width×height canvas.
// Edges are drawn in face order, then edge order, and later edges overwrite
// earlier ones.
func Render(s solid.Solid, width, height int, scale float64, policy Policy) *Canvas {
	c := NewCanvas(width, height)
	for _, f := range s.Faces {
		for _, e := range f.Edges() {
			x1, y1, ok1 := Project(e[0], width, height, scale)
			x2, y2, ok2 := Project(e[1], width, height, scale)
			if !ok1 || !ok2 {
				continue
			}
			DrawLine(c, x1, y1, x2, y2, policy)
		}
	}
	return c
}

// DrawLine draws a line on the canvas from (x1, y1) to (x2, y2), both ends
// included, using Bresenham's algorithm.
func DrawLine(c *Canvas, x1, y1, x2, y2 int, policy Policy) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	dist := lineDistance(x1, y1, x2, y2)

	x, y := x1, y1
	err := dx - dy
	for {
		c.Set(x, y, policy.glyph(dist(x, y)))
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// lineDistance returns a function giving the distance from a cell centre to
// the infinite line through (x1, y1) and (x2, y2).
func lineDistance(x1, y1, x2, y2 int) func(x, y int) float64 {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return func(int, int) float64 { return 0 }
	}
	return func(x, y int) float64 {
		return math.Abs(float64(x-x1)*dy-float64(y-y1)*dx) / length
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
