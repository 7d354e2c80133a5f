package shadow_test

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/shadow"
	"seehuhn.de/go/shadow/testcases"
)

// BenchmarkAmbient measures steady-state tessellation cost per caster
// for different ray counts.
func BenchmarkAmbient(b *testing.B) {
	tc := testcases.All["basic"][2] // hexagon
	outline, centroid := tc.Caster()

	for _, rays := range []int{4, 20, 128} {
		b.Run(fmt.Sprintf("rays%d", rays), func(b *testing.B) {
			tess := shadow.NewTessellator()
			tess.RayCount = rays
			out := make([]shadow.Vertex, tess.VertexCount(false))

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				tess.Ambient(false, outline, centroid, out)
			}
		})
	}
}

// BenchmarkCorpus tessellates the whole test corpus per iteration,
// reusing one Tessellator to exercise buffer reuse across casters.
func BenchmarkCorpus(b *testing.B) {
	type caster struct {
		outline  []shadow.Point3
		centroid shadow.Point3
		opaque   bool
		tess     *shadow.Tessellator
	}
	var casters []caster
	maxVerts := 0
	for _, cases := range testcases.All {
		for _, tc := range cases {
			outline, centroid := tc.Caster()
			t := tc.Tessellator()
			casters = append(casters, caster{outline, centroid, tc.Opaque, t})
			maxVerts = max(maxVerts, t.VertexCount(tc.Opaque))
		}
	}
	out := make([]shadow.Vertex, maxVerts)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		for _, c := range casters {
			c.tess.Ambient(c.opaque, c.outline, c.centroid, out)
		}
	}
}

// BenchmarkShade measures the software rasterizer on a tessellated
// shadow strip.
func BenchmarkShade(b *testing.B) {
	tc := testcases.All["height"][2] // tall tower
	tess := tc.Tessellator()
	outline, centroid := tc.Caster()

	verts := make([]shadow.Vertex, tess.VertexCount(tc.Opaque))
	mode, n := tess.Ambient(tc.Opaque, outline, centroid, verts)
	if n == 0 {
		b.Fatal("tessellation failed")
	}

	clip := rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
	r := shadow.NewRasterizer(clip)
	emit := func(y, xMin int, alpha []float32) {}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		r.Shade(verts[:n], mode, tess.RayCount, emit)
	}
}

// BenchmarkVectorUmbra is a baseline: filling just the caster footprint
// with uniform alpha using x/image/vector, i.e. a hard shadow without
// penumbra falloff.
func BenchmarkVectorUmbra(b *testing.B) {
	tc := testcases.All["basic"][2] // hexagon
	outline, _ := tc.Caster()

	r := vector.NewRasterizer(tc.Width, tc.Height)
	dst := image.NewAlpha(image.Rect(0, 0, tc.Width, tc.Height))
	src := image.NewUniform(color.Alpha{128})

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		r.Reset(tc.Width, tc.Height)
		r.MoveTo(float32(outline[0].X), float32(outline[0].Y))
		for _, p := range outline[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
		r.Draw(dst, dst.Bounds(), src, image.Point{})
	}
}
