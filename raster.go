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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rasterizer renders emitted shadow strips to per-pixel alpha values,
// interpolating the vertex alphas across each triangle. Production
// pipelines hand the vertex buffer to the GPU instead; this renderer
// exists for tests, reference images and debugging.
//
// Pixels are point-sampled at their centers (no anti-aliasing).
// The caller creates one instance and reuses it for multiple strips.
// Internal buffers grow as needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip defines the output region in device coordinates.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// alpha is the 2D accumulation buffer over the strip's bounding
	// box, reused across calls.
	alpha []float32
}

// NewRasterizer returns a Rasterizer with the given clip rectangle.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{Clip: clip}
}

// Reset resets the Rasterizer for a new clip rectangle, preserving
// internal buffer capacity for reuse.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.Clip = clip
	r.alpha = r.alpha[:0]
}

// Shade rasterizes a shadow strip. Alpha values are delivered row by
// row via the emit callback; the slice passed to emit is only valid for
// the duration of the callback. Rows without any shadow coverage are
// skipped.
//
// Overlapping triangles (the rings meet at the closing seam, and the
// umbra strip underlaps the inner ring) composite by maximum, so a
// pixel's value is the strongest shadow covering it.
func (r *Rasterizer) Shade(verts []Vertex, mode StripMode, rayCount int, emit func(y, xMin int, alpha []float32)) {
	if len(verts) == 0 {
		return
	}

	// Bounding box of the strip, clamped to the clip rectangle.
	bbox := Bounds(verts)
	xMin := max(int(math.Floor(bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	height := yMax - yMin
	size := width * height
	r.alpha = slices.Grow(r.alpha[:0], size)[:size]
	clear(r.alpha)

	Triangles(verts, mode, rayCount, func(a, b, c Vertex) bool {
		r.shadeTriangle(a, b, c, xMin, xMax, yMin, yMax, width)
		return true
	})

	// Emit the non-empty portion of each row.
	for row := range height {
		coverage := r.alpha[row*width : (row+1)*width]
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// shadeTriangle accumulates one triangle into the alpha buffer, using
// barycentric interpolation of the vertex alphas at pixel centers.
func (r *Rasterizer) shadeTriangle(a, b, c Vertex, xMin, xMax, yMin, yMax, width int) {
	// Twice the signed triangle area; near-zero means degenerate.
	det := (b.Pos.Y-c.Pos.Y)*(a.Pos.X-c.Pos.X) + (c.Pos.X-b.Pos.X)*(a.Pos.Y-c.Pos.Y)
	if math.Abs(det) < degenerateTriangleThreshold {
		return
	}

	txMin := max(int(math.Floor(min(a.Pos.X, b.Pos.X, c.Pos.X))), xMin)
	txMax := min(int(math.Floor(max(a.Pos.X, b.Pos.X, c.Pos.X)))+1, xMax)
	tyMin := max(int(math.Floor(min(a.Pos.Y, b.Pos.Y, c.Pos.Y))), yMin)
	tyMax := min(int(math.Floor(max(a.Pos.Y, b.Pos.Y, c.Pos.Y)))+1, yMax)

	for y := tyMin; y < tyMax; y++ {
		py := float64(y) + 0.5
		row := r.alpha[(y-yMin)*width:]
		for x := txMin; x < txMax; x++ {
			p := vec.Vec2{X: float64(x) + 0.5, Y: py}

			w1 := ((b.Pos.Y-c.Pos.Y)*(p.X-c.Pos.X) + (c.Pos.X-b.Pos.X)*(p.Y-c.Pos.Y)) / det
			w2 := ((c.Pos.Y-a.Pos.Y)*(p.X-c.Pos.X) + (a.Pos.X-c.Pos.X)*(p.Y-c.Pos.Y)) / det
			w3 := 1 - w1 - w2
			if w1 < -insideTolerance || w2 < -insideTolerance || w3 < -insideTolerance {
				continue
			}

			alpha := float32(w1*a.Alpha + w2*b.Alpha + w3*c.Alpha)
			idx := x - xMin
			if alpha > row[idx] {
				row[idx] = alpha
			}
		}
	}
}

// trimZeros returns the non-zero portion of a row and its starting
// offset. It returns nil, 0 if the row is entirely zero.
func trimZeros(alpha []float32) (trimmed []float32, offset int) {
	n := len(alpha)
	lo := 0
	for lo < n && alpha[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && alpha[hi] == 0 {
		hi--
	}
	return alpha[lo : hi+1], lo
}

// Numerical tolerances for the rasterizer.
const (
	// degenerateTriangleThreshold is the minimum absolute value of
	// twice the triangle area for a triangle to cover any pixels.
	degenerateTriangleThreshold = 1e-12

	// insideTolerance is how far a barycentric coordinate may fall
	// below zero before a pixel center counts as outside, so that
	// pixels on shared triangle edges are not dropped.
	insideTolerance = 1e-9
)
