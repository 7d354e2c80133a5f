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

// Command genpdf draws each test case's tessellation result into a PDF
// page: shadow triangles shaded with their mean alpha, and the caster
// footprint stroked on top. The PDFs serve as human-checkable views of
// the emitted geometry.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/shadow"
	"seehuhn.de/go/shadow/testcases"
)

const outDir = "testdata/contact"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; test cases assume top-left.
	// Apply Y-axis flip.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	t := tc.Tessellator()
	outline, centroid := tc.Caster()

	verts := make([]shadow.Vertex, t.VertexCount(tc.Opaque))
	mode, n := t.Ambient(tc.Opaque, outline, centroid, verts)

	// Shadow triangles, each filled with its mean alpha. Flat fills
	// per triangle are a coarse stand-in for the renderer's smooth
	// interpolation, but good enough to judge the geometry.
	if n > 0 {
		shadow.Triangles(verts[:n], mode, t.RayCount, func(a, b, c shadow.Vertex) bool {
			mean := (a.Alpha + b.Alpha + c.Alpha) / 3
			page.SetFillColor(color.DeviceGray(1 - mean))
			page.MoveTo(a.Pos.X, a.Pos.Y)
			page.LineTo(b.Pos.X, b.Pos.Y)
			page.LineTo(c.Pos.X, c.Pos.Y)
			page.ClosePath()
			page.Fill()
			return true
		})
	}

	// Caster footprint on top.
	if len(outline) >= 3 {
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(0.5)
		page.MoveTo(outline[0].X, outline[0].Y)
		for _, p := range outline[1:] {
			page.LineTo(p.X, p.Y)
		}
		page.ClosePath()
		page.Stroke()
	}

	return page.Close()
}
