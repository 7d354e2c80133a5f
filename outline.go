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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Centroid returns the area-weighted centroid of the outline's footprint,
// with the average vertex height as its z value. For near-degenerate
// footprints (zero enclosed area) it falls back to the plain vertex
// average.
//
// The result is a suitable ray origin for Tessellator.Ambient whenever
// the outline is star-shaped with respect to its centroid, which holds
// for all convex footprints.
func Centroid(outline []Point3) Point3 {
	var area, cx, cy float64
	var sumX, sumY, sumZ float64

	j := len(outline) - 1
	for i := range outline {
		cross := outline[j].X*outline[i].Y - outline[i].X*outline[j].Y
		area += cross
		cx += (outline[j].X + outline[i].X) * cross
		cy += (outline[j].Y + outline[i].Y) * cross
		sumX += outline[i].X
		sumY += outline[i].Y
		sumZ += outline[i].Z
		j = i
	}
	area /= 2

	n := float64(len(outline))
	c := Point3{Z: sumZ / n}
	if math.Abs(area) < centroidAreaThreshold {
		c.X = sumX / n
		c.Y = sumY / n
	} else {
		c.X = cx / (6 * area)
		c.Y = cy / (6 * area)
	}
	return c
}

// TransformOutline applies the affine transform m to the footprint of
// each outline vertex, carrying the heights through unchanged. The
// result is appended to dst[:0]; dst may be nil.
func TransformOutline(m matrix.Matrix, outline, dst []Point3) []Point3 {
	dst = slices.Grow(dst[:0], len(outline))[:len(outline)]
	for i, p := range outline {
		dst[i] = Point3{
			X: m[0]*p.X + m[2]*p.Y + m[4],
			Y: m[1]*p.X + m[3]*p.Y + m[5],
			Z: p.Z,
		}
	}
	return dst
}

// OutlineFromPath converts the first subpath of p into a caster outline
// with uniform height z. The subpath must consist of line segments only;
// callers flatten curved silhouettes before tessellating. OutlineFromPath
// returns nil if p contains curve segments or has no subpath.
func OutlineFromPath(p *path.Data, z float64) []Point3 {
	var outline []Point3

	coordIdx := 0
walk:
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if len(outline) > 0 {
				break walk // only the first subpath is used
			}
			pt := p.Coords[coordIdx]
			outline = append(outline, Point3{X: pt.X, Y: pt.Y, Z: z})
			coordIdx++

		case path.CmdLineTo:
			pt := p.Coords[coordIdx]
			outline = append(outline, Point3{X: pt.X, Y: pt.Y, Z: z})
			coordIdx++

		case path.CmdClose:
			break walk

		default:
			return nil // curved silhouette, caller must flatten first
		}
	}

	// Drop an explicit closing point; the outline is an implicitly
	// closed loop.
	if n := len(outline); n > 1 {
		first, last := outline[0], outline[n-1]
		if first.X == last.X && first.Y == last.Y {
			outline = outline[:n-1]
		}
	}
	return outline
}

// Bounds returns the bounding rectangle of an emitted vertex buffer, for
// caller-side culling and damage tracking. It returns the zero rectangle
// if verts is empty.
func Bounds(verts []Vertex) rect.Rect {
	if len(verts) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{
		LLx: verts[0].Pos.X, LLy: verts[0].Pos.Y,
		URx: verts[0].Pos.X, URy: verts[0].Pos.Y,
	}
	for _, v := range verts[1:] {
		r.LLx = min(r.LLx, v.Pos.X)
		r.LLy = min(r.LLy, v.Pos.Y)
		r.URx = max(r.URx, v.Pos.X)
		r.URy = max(r.URy, v.Pos.Y)
	}
	return r
}

// centroidAreaThreshold is the minimum footprint area for the
// area-weighted centroid; below this the vertex average is used to
// avoid dividing by a vanishing area.
const centroidAreaThreshold = 1e-9
