// Package shapes resolves shape names and OBJ files to solids.
package shapes

import (
	"fmt"
	"sort"
	"strings"

	"spinny/solid"
)

// Radius is the half-size used by the built-in shapes.
const Radius = 100

type mesh struct {
	vertices []solid.Point
	faces    [][]int
}

func (m mesh) solid() solid.Solid {
	faces := make([]solid.Face, len(m.faces))
	for i, idx := range m.faces {
		pts := make([]solid.Point, len(idx))
		for j, v := range idx {
			pts[j] = m.vertices[v]
		}
		faces[i] = solid.Face{Points: pts}
	}
	return solid.Solid{Faces: faces}
}

const r = Radius

var catalogue = map[string]mesh{
	"cube": {
		vertices: []solid.Point{
			{r, r, r}, {-r, r, r}, {-r, -r, r}, {r, -r, r},
			{r, r, -r}, {-r, r, -r}, {-r, -r, -r}, {r, -r, -r},
		},
		faces: [][]int{
			{0, 1, 2, 3}, // front
			{4, 5, 6, 7}, // back
			{0, 4, 5, 1}, // top
			{3, 7, 6, 2}, // bottom
			{0, 3, 7, 4}, // right
			{1, 5, 6, 2}, // left
		},
	},
	"tetrahedron": {
		vertices: []solid.Point{
			{r, r, r}, {-r, -r, r}, {-r, r, -r}, {r, -r, -r},
		},
		faces: [][]int{
			{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2},
		},
	},
	"octahedron": {
		vertices: []solid.Point{
			{r, 0, 0}, {-r, 0, 0}, {0, r, 0}, {0, -r, 0}, {0, 0, r}, {0, 0, -r},
		},
		faces: [][]int{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
	},
	"pyramid": {
		vertices: []solid.Point{
			{r, -r, r}, {-r, -r, r}, {-r, -r, -r}, {r, -r, -r}, {0, r, 0},
		},
		faces: [][]int{
			{0, 1, 2, 3},
			{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4},
		},
	},
	"prism": {
		vertices: []solid.Point{
			{0, r, r}, {-r, -r, r}, {r, -r, r},
			{0, r, -r}, {-r, -r, -r}, {r, -r, -r},
		},
		faces: [][]int{
			{0, 1, 2}, {3, 4, 5},
			{0, 3, 4, 1}, {1, 4, 5, 2}, {2, 5, 3, 0},
		},
	},
}

// Names returns the names of the built-in shapes in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a fresh copy of the named built-in shape.
func Lookup(name string) (solid.Solid, error) {
	m, ok := catalogue[strings.ToLower(name)]
	if !ok {
		return solid.Solid{}, fmt.Errorf("unknown shape %q (known shapes: %s)", name, strings.Join(Names(), ", "))
	}
	return m.solid(), nil
}
