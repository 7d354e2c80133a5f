// seehuhn.de/go/shadow - ambient shadow tessellation for 2D renderers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shadow

// TriangleCount returns the number of triangles implied by a vertex
// buffer with the given layout: 2n for a single ring, 4n for a double
// ring, where n is the ray count.
func TriangleCount(mode StripMode, rayCount int) int {
	if rayCount <= 0 {
		return 0
	}
	switch mode {
	case SingleRing:
		return 2 * rayCount
	case DoubleRing:
		return 4 * rayCount
	default:
		return 0
	}
}

// Triangles expands an emitted vertex buffer into individual triangles,
// calling yield for each one until the strip is exhausted or yield
// returns false.
//
// The ring pairs are triangulated as closed strips: the penumbra and
// inner rings interleave as outer[0], inner[0], outer[1], inner[1], ...
// wrapping back to outer[0], inner[0]. A DoubleRing buffer adds a second
// strip joining the inner ring to the umbra ring. Degenerate triangles
// (for example from duplicated umbra vertices) are yielded as-is;
// rasterizers cover no pixels for them.
//
// Triangles yields nothing if verts is shorter than the layout requires
// or rayCount is not positive.
func Triangles(verts []Vertex, mode StripMode, rayCount int, yield func(a, b, c Vertex) bool) {
	n := rayCount
	if n <= 0 {
		return
	}

	need := 2 * n
	if mode == DoubleRing {
		need = 3 * n
	}
	if len(verts) < need {
		return
	}

	if !ringStrip(verts[:n], verts[n:2*n], yield) {
		return
	}
	if mode == DoubleRing {
		ringStrip(verts[n:2*n], verts[2*n:3*n], yield)
	}
}

// ringStrip triangulates the closed strip between two rings of equal
// length. It reports whether the consumer wants more triangles.
func ringStrip(outer, inner []Vertex, yield func(a, b, c Vertex) bool) bool {
	n := len(outer)
	for k := range n {
		next := (k + 1) % n
		if !yield(outer[k], inner[k], outer[next]) {
			return false
		}
		if !yield(inner[k], outer[next], inner[next]) {
			return false
		}
	}
	return true
}
