package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output image filenames.
var All = map[string][]TestCase{
	"basic":       basicCases,
	"height":      heightCases,
	"translucent": translucentCases,
	"degenerate":  degenerateCases,
}
