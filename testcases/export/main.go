// Command export renders all test cases to grayscale PNG images for
// visual inspection. Run from the go-shadow module root directory.
package main

import (
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/shadow"
	"seehuhn.de/go/shadow/testcases"
)

const outDir = "testdata"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var verts []shadow.Vertex
	r := shadow.NewRasterizer(rect.Rect{})

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			t := tc.Tessellator()
			outline, centroid := tc.Caster()

			if n := t.VertexCount(tc.Opaque); n > len(verts) {
				verts = make([]shadow.Vertex, n)
			}
			mode, n := t.Ambient(tc.Opaque, outline, centroid, verts)
			if n == 0 {
				continue // invalid input, no shadow for this caster
			}

			img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
			r.Reset(rect.Rect{
				URx: float64(tc.Width),
				URy: float64(tc.Height),
			})
			r.Shade(verts[:n], mode, t.RayCount, func(y, xMin int, alpha []float32) {
				row := img.Pix[y*img.Stride+xMin:]
				for i, a := range alpha {
					row[i] = byte(max(0, min(255, int(a*256))))
				}
			})

			if err := writePNG(filepath.Join(outDir, name+".png"), img); err != nil {
				panic(err)
			}
		}
	}
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
