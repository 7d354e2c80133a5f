package testcases

var translucentCases = []TestCase{
	{
		Name:     "square",
		Outline:  square(64, 64, 24, 12),
		Centroid: pt3(64, 64, 12),
		Opaque:   false,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "hexagon",
		Outline:  regularPolygon(64, 64, 30, 6, 16),
		Centroid: pt3(64, 64, 16),
		Opaque:   false,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "star",
		Outline:  star(64, 64, 34, 16, 5, 10),
		Centroid: pt3(64, 64, 10),
		Opaque:   false,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "flat",
		Outline:  square(64, 64, 24, 0),
		Centroid: pt3(64, 64, 0),
		Opaque:   false,
		Width:    128,
		Height:   128,
	},
}
