package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/shadow"
)

var basicCases = []TestCase{
	{
		Name:     "square",
		Outline:  square(64, 64, 24, 8),
		Centroid: pt3(64, 64, 8),
		Opaque:   true,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "rectangle",
		Outline:  rectangle(24, 44, 104, 84, 6),
		Centroid: pt3(64, 64, 6),
		Opaque:   true,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "hexagon",
		Outline:  regularPolygon(64, 64, 30, 6, 10),
		Centroid: pt3(64, 64, 10),
		Opaque:   true,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "star",
		Outline:  star(64, 64, 34, 16, 5, 8),
		Centroid: pt3(64, 64, 8),
		Opaque:   true,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "square_few_rays",
		Outline:  square(64, 64, 24, 8),
		Centroid: pt3(64, 64, 8),
		RayCount: 4,
		Opaque:   true,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "square_many_rays",
		Outline:  square(64, 64, 24, 8),
		Centroid: pt3(64, 64, 8),
		RayCount: 128,
		Opaque:   true,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "square_rotated",
		Outline:  square(0, 0, 24, 8),
		Centroid: pt3(0, 0, 8),
		Opaque:   true,
		Width:    128,
		Height:   128,
		CTM:      rotateAbout(64, 64, math.Pi/6),
	},
}

// square builds a square footprint with uniform height z.
func square(cx, cy, half, z float64) []shadow.Point3 {
	return []shadow.Point3{
		pt3(cx-half, cy-half, z),
		pt3(cx+half, cy-half, z),
		pt3(cx+half, cy+half, z),
		pt3(cx-half, cy+half, z),
	}
}

// rectangle builds an axis-aligned rectangular footprint with uniform
// height z.
func rectangle(x1, y1, x2, y2, z float64) []shadow.Point3 {
	return []shadow.Point3{
		pt3(x1, y1, z),
		pt3(x2, y1, z),
		pt3(x2, y2, z),
		pt3(x1, y2, z),
	}
}

// regularPolygon builds a regular n-gon footprint with uniform height z.
func regularPolygon(cx, cy, r float64, n int, z float64) []shadow.Point3 {
	pts := make([]shadow.Point3, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		pts[i] = pt3(cx+r*math.Cos(angle), cy+r*math.Sin(angle), z)
	}
	return pts
}

// star builds a star-shaped footprint with points alternating between
// the outer and inner radius. The result is star-shaped with respect to
// its center, but not convex.
func star(cx, cy, rOuter, rInner float64, points int, z float64) []shadow.Point3 {
	pts := make([]shadow.Point3, 0, 2*points)
	for i := range 2 * points {
		r := rOuter
		if i%2 == 1 {
			r = rInner
		}
		angle := float64(i)*math.Pi/float64(points) - math.Pi/2
		pts = append(pts, pt3(cx+r*math.Cos(angle), cy+r*math.Sin(angle), z))
	}
	return pts
}

// rotateAbout returns the matrix rotating by angle around (cx, cy),
// mapping the origin-centered outline onto the canvas.
func rotateAbout(cx, cy, angle float64) matrix.Matrix {
	sin, cos := math.Sincos(angle)
	return matrix.Matrix{cos, sin, -sin, cos, cx, cy}
}
