package raster

import (
	"math"
	"strings"
	"testing"

	"spinny/solid"
)

func square(z float64) solid.Face {
	return solid.Face{Points: []solid.Point{
		{100, 100, z}, {-100, 100, z}, {-100, -100, z}, {100, -100, z},
	}}
}

func checkCanvas(t *testing.T, c *Canvas, want []string) {
	t.Helper()
	got := c.Rows()
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("canvas mismatch at row %d:\n%s\nwant:\n%s", i, c, strings.Join(want, "\n"))
		}
	}
}

func TestRenderSquare(t *testing.T) {
	s := solid.Solid{Faces: []solid.Face{square(0)}}
	c := Render(s, 20, 10, 0.01, Solid)
	checkCanvas(t, c, []string{
		"                    ",
		"                    ",
		"                    ",
		"                    ",
		"        █████       ",
		"        █   █       ",
		"        █████       ",
		"                    ",
		"                    ",
		"                    ",
	})
}

func TestRenderCubeFragment(t *testing.T) {
	// Front and back faces project onto the same rectangle.
	s := solid.Solid{Faces: []solid.Face{square(100), square(-100)}}
	c := Render(s, 14, 8, 0.01, Solid)
	checkCanvas(t, c, []string{
		"              ",
		"              ",
		"              ",
		"     █████    ",
		"     █   █    ",
		"     █████    ",
		"              ",
		"              ",
	})
}

func TestRenderDegenerateFaces(t *testing.T) {
	tests := []struct {
		name string
		s    solid.Solid
	}{
		{"no faces", solid.Solid{}},
		{"empty face", solid.Solid{Faces: []solid.Face{{}}}},
		{"single point", solid.Solid{Faces: []solid.Face{{Points: []solid.Point{{0, 0, 0}}}}}},
		{"nan", solid.Solid{Faces: []solid.Face{{Points: []solid.Point{{math.NaN(), 0, 0}, {10, 10, 0}}}}}},
		{"inf", solid.Solid{Faces: []solid.Face{{Points: []solid.Point{{0, math.Inf(1), 0}, {10, 10, 0}}}}}},
	}
	blank := strings.Repeat(" ", 12)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Render(tt.s, 12, 6, 0.06, Solid)
			for i, row := range c.Rows() {
				if row != blank {
					t.Fatalf("row %d = %q, want blank", i, row)
				}
			}
		})
	}
}

func TestRenderDimensions(t *testing.T) {
	s := solid.Solid{Faces: []solid.Face{square(0), square(50)}}
	solid.Rotate(s, 0.3, 0.7, 1.1)
	for _, size := range [][2]int{{1, 1}, {3, 7}, {20, 10}, {50, 25}, {81, 40}} {
		for _, scale := range []float64{0.001, 0.06, 1, 10} {
			for _, p := range []Policy{Solid, Shaded} {
				c := Render(s, size[0], size[1], scale, p)
				if c.Height() != size[1] || c.Width() != size[0] {
					t.Fatalf("%v at %v: canvas is %dx%d", size, scale, c.Width(), c.Height())
				}
				rows := c.Rows()
				if len(rows) != size[1] {
					t.Fatalf("%v at %v: got %d rows", size, scale, len(rows))
				}
				for i, row := range rows {
					if n := len([]rune(row)); n != size[0] {
						t.Fatalf("%v at %v: row %d has %d runes", size, scale, i, n)
					}
				}
			}
		}
	}
}

func TestRenderNonPositiveSize(t *testing.T) {
	s := solid.Solid{Faces: []solid.Face{square(0)}}
	c := Render(s, 0, -3, 0.06, Solid)
	if len(c.Rows()) != 0 || c.String() != "" {
		t.Fatalf("expected empty canvas, got %q", c.String())
	}
}

func TestRenderClipsOffCanvas(t *testing.T) {
	s := solid.Solid{Faces: []solid.Face{{Points: []solid.Point{{-100, 0, 0}, {100, 0, 0}}}}}
	c := Render(s, 10, 5, 1, Solid)
	checkCanvas(t, c, []string{
		"          ",
		"          ",
		"██████████",
		"          ",
		"          ",
	})
}

func TestRenderLaterEdgesOverwrite(t *testing.T) {
	// Shaded plots light cells for the slanted edge; the solid square drawn
	// afterwards must win wherever they meet.
	slant := solid.Face{Points: []solid.Point{{-100, -100, 0}, {100, 50, 0}}}
	s := solid.Solid{Faces: []solid.Face{slant, square(0)}}
	c := Render(s, 20, 10, 0.01, Shaded)
	for x := 8; x <= 12; x++ {
		if c.At(x, 4) != FullBlock || c.At(x, 6) != FullBlock {
			t.Fatalf("square edge overwritten at column %d:\n%s", x, c)
		}
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		p      solid.Point
		x, y   int
		wantOK bool
	}{
		{solid.Point{0, 0, 0}, 25, 12, true},
		{solid.Point{100, 100, 0}, 37, 6, true},
		{solid.Point{-100, -100, 999}, 13, 18, true},
		{solid.Point{math.NaN(), 0, 0}, 0, 0, false},
		{solid.Point{0, math.Inf(-1), 0}, 0, 0, false},
		{solid.Point{1e300, 0, 0}, 0, 0, false},
	}
	for _, tt := range tests {
		x, y, ok := Project(tt.p, 50, 25, 0.06)
		if ok != tt.wantOK || (ok && (x != tt.x || y != tt.y)) {
			t.Errorf("Project(%+v) = %d, %d, %v; want %d, %d, %v", tt.p, x, y, ok, tt.x, tt.y, tt.wantOK)
		}
	}
}

func TestDrawLineShaded(t *testing.T) {
	c := NewCanvas(12, 5)
	DrawLine(c, 0, 0, 10, 3, Shaded)
	var full, light int
	for _, r := range c.String() {
		switch r {
		case FullBlock:
			full++
		case LightBlock:
			light++
		case Blank, '\n':
		default:
			t.Fatalf("unexpected glyph %q", r)
		}
	}
	if full == 0 || light == 0 {
		t.Fatalf("want both glyphs, got %d full and %d light:\n%s", full, light, c)
	}
	if full+light != 11 {
		t.Fatalf("plotted %d cells, want 11", full+light)
	}
	if c.At(0, 0) != FullBlock || c.At(10, 3) != FullBlock {
		t.Fatalf("endpoints should lie on the line:\n%s", c)
	}
}

func TestDrawLineShadedAxisAligned(t *testing.T) {
	c := NewCanvas(8, 8)
	DrawLine(c, 1, 1, 6, 1, Shaded)
	DrawLine(c, 1, 1, 1, 6, Shaded)
	DrawLine(c, 1, 1, 6, 6, Shaded)
	if strings.ContainsRune(c.String(), LightBlock) {
		t.Fatalf("axis-aligned and diagonal lines should be solid:\n%s", c)
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{Solid, Shaded} {
		got, err := ParsePolicy(p.String())
		if err != nil || got != p {
			t.Fatalf("ParsePolicy(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePolicy("dithered"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}
