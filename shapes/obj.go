package shapes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"spinny/solid"
)

// LoadOBJ reads the Wavefront OBJ file at path and scales it so that its
// farthest vertex lies Radius away from its centre.
func LoadOBJ(path string) (solid.Solid, error) {
	f, err := os.Open(path)
	if err != nil {
		return solid.Solid{}, err
	}
	defer f.Close()
	s, err := ReadOBJ(f)
	if err != nil {
		return solid.Solid{}, fmt.Errorf("%s: %w", path, err)
	}
	Normalize(s, Radius)
	return s, nil
}

// ReadOBJ parses the vertices and faces of a Wavefront OBJ stream. Only "v"
// and "f" statements are used; normals, texture coordinates, groups and
// materials are skipped. Face indices may be negative (relative to the last
// vertex read) and may carry /vt/vn suffixes.
func ReadOBJ(r io.Reader) (solid.Solid, error) {
	var (
		vertices []solid.Point
		s        solid.Solid
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return solid.Solid{}, fmt.Errorf("line %d: vertex needs 3 coordinates", line)
			}
			var xyz [3]float64
			for i := range xyz {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return solid.Solid{}, fmt.Errorf("line %d: %w", line, err)
				}
				xyz[i] = v
			}
			vertices = append(vertices, solid.Point{X: xyz[0], Y: xyz[1], Z: xyz[2]})

		case "f":
			if len(fields) < 3 {
				return solid.Solid{}, fmt.Errorf("line %d: face needs at least 2 vertices", line)
			}
			pts := make([]solid.Point, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				idx, err := vertexIndex(ref, len(vertices))
				if err != nil {
					return solid.Solid{}, fmt.Errorf("line %d: %w", line, err)
				}
				pts = append(pts, vertices[idx])
			}
			s.Faces = append(s.Faces, solid.Face{Points: pts})
		}
	}
	if err := sc.Err(); err != nil {
		return solid.Solid{}, err
	}
	if len(s.Faces) == 0 {
		return solid.Solid{}, errors.New("no faces")
	}
	return s, nil
}

// vertexIndex resolves a face vertex reference such as "3", "-1" or
// "3/1/2" to a zero-based index into n vertices.
func vertexIndex(ref string, n int) (int, error) {
	head, _, _ := strings.Cut(ref, "/")
	i, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("bad vertex reference %q", ref)
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return 0, fmt.Errorf("vertex reference %q out of range (%d vertices)", ref, n)
}

// Normalize centres s on the origin and scales it so that its farthest point
// lies radius away from the origin. Solids without points, or whose points
// all coincide, are only centred.
func Normalize(s solid.Solid, radius float64) {
	if s.NumPoints() == 0 {
		return
	}
	lo := r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, f := range s.Faces {
		for _, p := range f.Points {
			v := vec(p)
			lo = r3.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
			hi = r3.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
		}
	}
	centre := r3.Scale(0.5, r3.Add(lo, hi))

	var far float64
	for _, f := range s.Faces {
		for _, p := range f.Points {
			far = math.Max(far, r3.Norm(r3.Sub(vec(p), centre)))
		}
	}
	k := 1.0
	if far > 0 {
		k = radius / far
	}
	for i := range s.Faces {
		pts := s.Faces[i].Points
		for j := range pts {
			v := r3.Scale(k, r3.Sub(vec(pts[j]), centre))
			pts[j] = solid.Point{X: v.X, Y: v.Y, Z: v.Z}
		}
	}
}

func vec(p solid.Point) r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}
