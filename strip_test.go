package shadow

import (
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestTriangleCount(t *testing.T) {
	tests := []struct {
		mode     StripMode
		rayCount int
		want     int
	}{
		{SingleRing, 4, 8},
		{SingleRing, 20, 40},
		{DoubleRing, 4, 16},
		{DoubleRing, 20, 80},
		{SingleRing, 0, 0},
		{DoubleRing, -3, 0},
	}
	for _, tt := range tests {
		if got := TriangleCount(tt.mode, tt.rayCount); got != tt.want {
			t.Errorf("TriangleCount(%v, %d) = %d, want %d",
				tt.mode, tt.rayCount, got, tt.want)
		}
	}
}

// stripVerts builds a vertex buffer with recognizable alphas: ring r,
// vertex i gets alpha r + i/1000.
func stripVerts(rings, n int) []Vertex {
	verts := make([]Vertex, 0, rings*n)
	for r := range rings {
		for i := range n {
			verts = append(verts, Vertex{
				Pos:   vec.Vec2{X: float64(i), Y: float64(r)},
				Alpha: float64(r) + float64(i)/1000,
			})
		}
	}
	return verts
}

func TestTriangles(t *testing.T) {
	const n = 6

	for _, mode := range []StripMode{SingleRing, DoubleRing} {
		t.Run(mode.String(), func(t *testing.T) {
			rings := 2
			if mode == DoubleRing {
				rings = 3
			}
			verts := stripVerts(rings, n)

			var count int
			seen := make(map[float64]bool)
			Triangles(verts, mode, n, func(a, b, c Vertex) bool {
				count++
				seen[a.Alpha] = true
				seen[b.Alpha] = true
				seen[c.Alpha] = true
				return true
			})

			if want := TriangleCount(mode, n); count != want {
				t.Errorf("got %d triangles, want %d", count, want)
			}

			// Every ring vertex must appear in at least one triangle.
			for _, v := range verts {
				if !seen[v.Alpha] {
					t.Errorf("vertex with alpha %g never yielded", v.Alpha)
				}
			}
		})
	}
}

func TestTrianglesStop(t *testing.T) {
	verts := stripVerts(2, 8)

	var count int
	Triangles(verts, SingleRing, 8, func(a, b, c Vertex) bool {
		count++
		return count < 5
	})
	if count != 5 {
		t.Errorf("yield called %d times after early stop, want 5", count)
	}
}

func TestTrianglesInvalid(t *testing.T) {
	verts := stripVerts(2, 4)

	bad := func(a, b, c Vertex) bool {
		t.Error("yield called for invalid input")
		return true
	}
	Triangles(verts, SingleRing, 0, bad)     // no rays
	Triangles(verts, SingleRing, -2, bad)    // negative rays
	Triangles(verts[:7], SingleRing, 4, bad) // buffer too short
	Triangles(verts, DoubleRing, 4, bad)     // double ring needs 3n
	Triangles(nil, SingleRing, 4, bad)       // empty buffer
}
