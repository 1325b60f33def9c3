// Command export writes all hit testing scenarios, together with the
// computed hits, to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/chart/hittest"
	"seehuhn.de/go/chart/raster"
	"seehuhn.de/go/chart/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			surface := raster.NewSurface()
			surface.Clip = tc.Canvas()
			out.TestCases = append(out.TestCases, toJSON(category, tc, tc.Tester(surface)))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/hits.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string      `json:"name"`
	Kind   string      `json:"kind"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Points any         `json:"points"`
	Probes []jsonProbe `json:"probes"`
}

type jsonProbe struct {
	Pos  []float64 `json:"pos"`
	Want []jsonHit `json:"want"`
	Got  []jsonHit `json:"got"`
}

type jsonHit struct {
	Index    any     `json:"index"`
	Distance float64 `json:"distance"`
}

func toJSON(category string, tc testcases.TestCase, ht hittest.HitTester) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Kind:   category,
		Width:  tc.Width,
		Height: tc.Height,
		Points: tc.Series,
	}
	for _, probe := range tc.Probes {
		jp := jsonProbe{
			Pos:  []float64{probe.Pos.X, probe.Pos.Y},
			Want: hitsToJSON(probe.Want),
		}
		if res := ht.HitTest(probe.Pos); res != nil {
			jp.Got = hitsToJSON(res.Points)
		}
		jtc.Probes = append(jtc.Probes, jp)
	}
	return jtc
}

func hitsToJSON(points []hittest.HitPoint) []jsonHit {
	if points == nil {
		return nil
	}
	res := make([]jsonHit, len(points))
	for i, p := range points {
		res[i] = jsonHit{Index: p.Index, Distance: p.Distance}
	}
	return res
}
