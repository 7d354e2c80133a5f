package testcases

import "seehuhn.de/go/shadow"

var degenerateCases = []TestCase{
	{
		// Fewer than three vertices: tessellation must produce nothing.
		Name:     "two_vertices",
		Outline:  []shadow.Point3{pt3(40, 64, 4), pt3(88, 64, 4)},
		Centroid: pt3(64, 64, 4),
		Opaque:   true,
		Width:    128,
		Height:   128,
	},
	{
		// Centroid far off-center but still inside: valid, asymmetric
		// ray distances.
		Name:     "off_center_centroid",
		Outline:  square(64, 64, 28, 10),
		Centroid: pt3(44, 46, 10),
		Opaque:   true,
		Width:    128,
		Height:   128,
	},
	{
		// Centroid outside the footprint: some rays cannot exit the
		// polygon and fall back to zero-length samples. The output is
		// imperfect but must not crash or report invalid alphas.
		Name:     "centroid_outside",
		Outline:  square(64, 64, 20, 10),
		Centroid: pt3(100, 100, 10),
		Opaque:   true,
		Width:    128,
		Height:   128,
	},
	{
		// Collapsed footprint (all vertices on one line): zero area,
		// intersections degenerate.
		Name:     "collinear",
		Outline:  []shadow.Point3{pt3(40, 64, 4), pt3(64, 64, 4), pt3(88, 64, 4)},
		Centroid: pt3(64, 64, 4),
		Opaque:   true,
		Width:    128,
		Height:   128,
	},
}
