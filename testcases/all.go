package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]TestCase{
	"bar":     barCases,
	"scatter": scatterCases,
	"pie":     pieCases,
	"line":    lineCases,
	"spline":  splineCases,
	"area":    areaCases,
}
