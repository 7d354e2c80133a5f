package shadow_test

import (
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/shadow"
	"seehuhn.de/go/shadow/testcases"
)

// TestCorpus runs every test case through the tessellator and checks
// the output contracts that hold for all casters.
func TestCorpus(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				tess := tc.Tessellator()
				outline, centroid := tc.Caster()

				out := make([]shadow.Vertex, tess.VertexCount(tc.Opaque))
				mode, n := tess.Ambient(tc.Opaque, outline, centroid, out)

				if n == 0 {
					// Invalid input: the only degenerate outcome.
					if len(outline) >= 3 {
						t.Fatalf("no output for valid %d-vertex outline", len(outline))
					}
					if mode != shadow.SingleRing {
						t.Errorf("empty result with mode %v, want SingleRing", mode)
					}
					return
				}

				// Layout contract.
				rays := tess.RayCount
				switch {
				case tc.Opaque && (mode != shadow.SingleRing || n != 2*rays):
					t.Errorf("opaque caster: got (%v, %d), want (SingleRing, %d)",
						mode, n, 2*rays)
				case !tc.Opaque && (mode != shadow.DoubleRing || n != 3*rays):
					t.Errorf("translucent caster: got (%v, %d), want (DoubleRing, %d)",
						mode, n, 3*rays)
				}

				// Alpha contract: outer ring fully transparent, all
				// other rings in (0, 1].
				for i := range n {
					a := out[i].Alpha
					if i < rays {
						if a != 0 {
							t.Errorf("outer vertex %d: alpha %g, want 0", i, a)
						}
						continue
					}
					if a <= 0 || a > 1 || math.IsNaN(a) {
						t.Errorf("vertex %d: alpha %g outside (0,1]", i, a)
					}
				}

				// The strip must cover the whole ring: bounds are
				// non-degenerate unless the caster collapsed.
				bounds := shadow.Bounds(out[:n])
				if bounds.URx < bounds.LLx || bounds.URy < bounds.LLy {
					t.Errorf("invalid bounds %+v", bounds)
				}

				// Purity: a second run yields bit-identical vertices.
				out2 := make([]shadow.Vertex, len(out))
				mode2, n2 := tess.Ambient(tc.Opaque, outline, centroid, out2)
				if mode2 != mode || n2 != n {
					t.Fatalf("repeat run: got (%v, %d), want (%v, %d)",
						mode2, n2, mode, n)
				}
				for i := range n {
					if out[i] != out2[i] {
						t.Errorf("vertex %d not reproducible: %v vs %v",
							i, out[i], out2[i])
					}
				}
			})
		}
	}
}

// TestCorpusTriangles checks that every emitted buffer triangulates to
// the expected number of triangles.
func TestCorpusTriangles(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				tess := tc.Tessellator()
				outline, centroid := tc.Caster()

				out := make([]shadow.Vertex, tess.VertexCount(tc.Opaque))
				mode, n := tess.Ambient(tc.Opaque, outline, centroid, out)

				var count int
				shadow.Triangles(out[:n], mode, tess.RayCount, func(a, b, c shadow.Vertex) bool {
					count++
					return true
				})

				want := 0
				if n > 0 {
					want = shadow.TriangleCount(mode, tess.RayCount)
				}
				if count != want {
					t.Errorf("got %d triangles, want %d", count, want)
				}
			})
		}
	}
}
