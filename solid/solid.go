// Package solid holds the wireframe geometry that spinny animates and the
// rotation engine that spins it in place.
package solid

import "github.com/go-gl/mathgl/mgl64"

// Point is a vertex in object space.
type Point struct {
	X, Y, Z float64
}

// ApplyMatrix replaces p with the product m·p. All three output coordinates
// are computed from the coordinates p had before the call.
func (p *Point) ApplyMatrix(m mgl64.Mat3) {
	v := m.Mul3x1(mgl64.Vec3{p.X, p.Y, p.Z})
	p.X, p.Y, p.Z = v[0], v[1], v[2]
}

// Face is a closed polygon. Consecutive points are joined by an edge and the
// last point is joined back to the first.
type Face struct {
	Points []Point
}

// Edges returns the edge cycle of f in drawing order.
// Faces with fewer than two points have no edges.
func (f Face) Edges() [][2]Point {
	n := len(f.Points)
	if n < 2 {
		return nil
	}
	edges := make([][2]Point, n)
	for i := range f.Points {
		edges[i] = [2]Point{f.Points[i], f.Points[(i+1)%n]}
	}
	return edges
}

// Solid is a polyhedron described by its faces. A Solid owns its faces and
// their points; nothing is shared between two solids unless copied by hand.
type Solid struct {
	Faces []Face
}

// Clone returns a deep copy of s.
func (s Solid) Clone() Solid {
	faces := make([]Face, len(s.Faces))
	for i, f := range s.Faces {
		faces[i] = Face{Points: append([]Point(nil), f.Points...)}
	}
	return Solid{Faces: faces}
}

// NumPoints returns the number of points over all faces. Points repeated
// across faces are counted once per face.
func (s Solid) NumPoints() int {
	n := 0
	for _, f := range s.Faces {
		n += len(f.Points)
	}
	return n
}
