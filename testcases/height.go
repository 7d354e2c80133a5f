package testcases

import "seehuhn.de/go/shadow"

var heightCases = []TestCase{
	{
		Name:     "raised_corner",
		Outline:  raisedCorner(64, 64, 24, 4, 40),
		Centroid: pt3(64, 64, 13),
		Opaque:   true,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "tilted_slab",
		Outline:  tiltedSlab(24, 44, 104, 84, 2, 30),
		Centroid: shadow.Centroid(tiltedSlab(24, 44, 104, 84, 2, 30)),
		Opaque:   true,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "tall_tower",
		Outline:  square(64, 64, 16, 120),
		Centroid: pt3(64, 64, 120),
		Opaque:   true,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "flat_on_ground",
		Outline:  square(64, 64, 24, 0),
		Centroid: pt3(64, 64, 0),
		Opaque:   true,
		Width:    128,
		Height:   128,
	},
	{
		Name:         "strong_falloff",
		Outline:      square(64, 64, 24, 20),
		Centroid:     pt3(64, 64, 20),
		HeightFactor: 1.0 / 16,
		Opaque:       true,
		Width:        128,
		Height:       128,
	},
}

// raisedCorner builds a square footprint with one corner lifted to
// zHigh and the remaining corners at zLow.
func raisedCorner(cx, cy, half, zLow, zHigh float64) []shadow.Point3 {
	pts := square(cx, cy, half, zLow)
	pts[0].Z = zHigh
	return pts
}

// tiltedSlab builds a rectangular footprint whose height rises linearly
// from zLeft on the x1 edge to zRight on the x2 edge.
func tiltedSlab(x1, y1, x2, y2, zLeft, zRight float64) []shadow.Point3 {
	return []shadow.Point3{
		pt3(x1, y1, zLeft),
		pt3(x2, y1, zRight),
		pt3(x2, y2, zRight),
		pt3(x1, y2, zLeft),
	}
}
