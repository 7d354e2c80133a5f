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

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Tessellator computes ambient shadow vertex buffers. The caller creates
// one instance and reuses it across casters and frames. Internal buffers
// grow as needed but never shrink, achieving zero allocations in steady
// state.
//
// A Tessellator is not safe for concurrent use; use one instance per
// goroutine.
type Tessellator struct {
	// RayCount is the number of angular samples around the caster.
	// Must be positive.
	RayCount int

	// HeightFactor controls how much the caster's height lightens the
	// shadow. Must be positive.
	HeightFactor float64

	// GeomFactor scales the penumbra expansion along the outline
	// normals. Must be positive.
	GeomFactor float64

	// Internal buffers (reused across calls)
	dirs      []vec.Vec2 // unit ray directions
	rayDist   []float64  // per-ray centroid-to-outline distance
	rayHeight []float64  // per-ray interpolated caster height
}

// NewTessellator returns a Tessellator with the default ray count and
// falloff parameters.
func NewTessellator() *Tessellator {
	return &Tessellator{
		RayCount:     DefaultRayCount,
		HeightFactor: DefaultHeightFactor,
		GeomFactor:   DefaultGeomFactor,
	}
}

// VertexCount returns the number of vertices Ambient emits for the given
// caster opacity, i.e. the minimum capacity of the output buffer.
func (t *Tessellator) VertexCount(casterOpaque bool) int {
	if t.RayCount <= 0 {
		return 0
	}
	if casterOpaque {
		return 2 * t.RayCount
	}
	return 3 * t.RayCount
}

// Ambient tessellates the ambient shadow of one caster into out.
//
// The outline is the caster's silhouette polygon, a closed loop in
// polygon order (the last vertex connects back to the first). It must be
// star-shaped with respect to the centroid, which the caller supplies as
// the approximate horizontal center of the caster. The outline is only
// read for the duration of the call.
//
// Ambient writes the outer (penumbra) ring into out[0:n] with alpha 0,
// the inner ring into out[n:2n] with alpha 1/(1+height·HeightFactor),
// and, for a translucent caster, a third ring of n duplicated centroid
// vertices into out[2n:3n], where n is RayCount. It returns the strip
// layout and the number of vertices written.
//
// Invalid input (fewer than 3 outline vertices, non-positive RayCount,
// HeightFactor or GeomFactor, or an undersized output buffer) is not an
// error: Ambient returns (SingleRing, 0) and the caller skips the shadow
// for this caster.
func (t *Tessellator) Ambient(casterOpaque bool, outline []Point3, centroid Point3, out []Vertex) (StripMode, int) {
	mode := SingleRing
	n := t.RayCount
	if len(outline) < 3 || n <= 0 || t.HeightFactor <= 0 || t.GeomFactor <= 0 {
		return mode, 0
	}
	total := 2 * n
	if !casterOpaque {
		total = 3 * n
	}
	if len(out) < total {
		return mode, 0
	}

	t.dirs = slices.Grow(t.dirs[:0], n)[:n]
	t.rayDist = slices.Grow(t.rayDist[:0], n)[:n]
	t.rayHeight = slices.Grow(t.rayHeight[:0], n)[:n]
	rayDirections(t.dirs)

	// Intersect each ray with the outline and interpolate the caster
	// height at the intersection point.
	for i := range n {
		edge, frac, dist, ok := intersect(outline, centroid, t.dirs[i])
		if !ok {
			// The centroid lies outside a non-star-shaped outline.
			// Collapse this one ray to the centroid; the shadow is
			// visibly imperfect but the frame survives.
			edge, frac, dist = 0, 0, 0
		}
		t.rayDist[i] = dist
		h1 := outline[edge].Z
		h2 := outline[(edge+1)%len(outline)].Z
		t.rayHeight[i] = h1 + frac*(h2-h1)
	}

	// Emit the penumbra and inner rings. Each intersection point P is
	// pushed outward along the local outline normal, scaled by the
	// caster height at P.
	centroid2 := vec.Vec2{X: centroid.X, Y: centroid.Y}
	for i := range n {
		normal := t.normalAt(i, vec.Vec2{X: 1, Y: 0})
		p := centroid2.Add(t.dirs[i].Mul(t.rayDist[i]))

		expansion := t.rayHeight[i] * t.HeightFactor * t.GeomFactor
		out[i] = Vertex{
			Pos:   p.Add(normal.Mul(expansion)),
			Alpha: 0,
		}
		out[n+i] = Vertex{
			Pos:   p,
			Alpha: 1 / (1 + t.rayHeight[i]*t.HeightFactor),
		}
	}

	// A translucent caster does not hide the umbra, so fill it with a
	// ring of centroid vertices.
	if !casterOpaque {
		mode = DoubleRing
		umbra := Vertex{
			Pos:   centroid2,
			Alpha: 1 / (1 + centroid.Z*t.HeightFactor),
		}
		for i := range n {
			out[2*n+i] = umbra
		}
	}

	return mode, total
}

// rayDirections fills dirs with unit vectors evenly spaced around the
// full circle, starting along the positive y axis and sweeping clockwise
// in a y-up frame.
func rayDirections(dirs []vec.Vec2) {
	deltaAngle := 2 * math.Pi / float64(len(dirs))
	for i := range dirs {
		a := deltaAngle * float64(i)
		dirs[i] = vec.Vec2{X: math.Sin(a), Y: math.Cos(a)}
	}
}

// intersect finds the outline edge through which a ray cast from start
// in direction dir leaves the footprint. It returns the index of the
// edge's starting vertex, the fractional position along that edge in
// (0, 1], and the distance from start to the crossing point.
//
// The search solves the 2D line/line system
//
//	f(u, v) = p1x·(1-u) + p2x·u - (startX + dirX·v) = 0
//	g(u, v) = p1y·(1-u) + p2y·u - (startY + dirY·v) = 0
//
// for each edge in polygon order, beginning with the closing edge from
// the last vertex back to the first. Edges parallel to the ray and
// crossings behind the start point are rejected. For a star-shaped
// outline with start inside, exactly one edge matches.
func intersect(outline []Point3, start Point3, dir vec.Vec2) (edgeIndex int, edgeFraction, rayDist float64, ok bool) {
	p1 := len(outline) - 1
	for p2 := range outline {
		p1x := outline[p1].X
		p1y := outline[p1].Y
		p2x := outline[p2].X
		p2y := outline[p2].Y

		div := dir.X*(p1y-p2y) + dir.Y*p2x - dir.Y*p1x
		if div != 0 {
			u := (dir.X*(p1y-start.Y) + dir.Y*start.X - dir.Y*p1x) / div
			if u > 0 && u <= 1 {
				v := (p1x*(start.Y-p2y) + p2x*(p1y-start.Y) + start.X*(p2y-p1y)) / div
				if v > 0 {
					return p1, u, v, true
				}
			}
		}
		p1 = p2
	}
	return 0, 0, 0, false
}

// normalAt estimates the outward outline normal at ray i from the
// intersection points of the two neighboring rays: the neighbor
// difference approximates the local tangent, and rotating it 90°
// counter-clockwise faces outward for the clockwise ray sweep. If the
// neighbors coincide the fallback value is returned unchanged.
func (t *Tessellator) normalAt(i int, fallback vec.Vec2) vec.Vec2 {
	n := len(t.dirs)
	pre := (i - 1 + n) % n
	post := (i + 1) % n
	p1 := t.dirs[pre].Mul(t.rayDist[pre])
	p2 := t.dirs[post].Mul(t.rayDist[post])

	delta := p2.Sub(p1)
	length := delta.Length()
	if length == 0 {
		return fallback
	}
	delta = delta.Mul(1 / length)
	return vec.Vec2{X: -delta.Y, Y: delta.X}
}
