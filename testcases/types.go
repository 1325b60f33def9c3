// seehuhn.de/go/chart - hit testing for chart series
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

// Package testcases contains a catalogue of hit testing scenarios.
//
// The scenarios are used by the tests of the hittest package, by the
// export command which writes the computed hits to JSON, and by the
// genpdf command which draws every scenario.
package testcases

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/hittest"
)

// TestCase defines a single series together with pointer positions and the
// expected hit test results.
type TestCase struct {
	Name   string  // lowercase a-z and _ only
	Series Series  // the plotted series
	Width  int     // canvas width in pixels
	Height int     // canvas height in pixels
	Probes []Probe // pointer positions to test
}

// Probe is a pointer position with the expected result.
type Probe struct {
	Pos  vec.Vec2
	Want []hittest.HitPoint // nil if no point should match
}

// Series is the plotted geometry of a series.
type Series interface {
	isSeries()
}

// Bars is a bar series.
type Bars []hittest.BarPoint

// Scatter is a scatter series.
type Scatter []hittest.ScatterPoint

// Pie is a pie or donut series.
type Pie []hittest.PiePoint

// Line is a line series.
type Line []hittest.LinePoint

// Spline is a spline series.
type Spline []hittest.LinePoint

// Area is an area series.
type Area []hittest.AreaPoint

func (Bars) isSeries()    {}
func (Scatter) isSeries() {}
func (Pie) isSeries()     {}
func (Line) isSeries()    {}
func (Spline) isSeries()  {}
func (Area) isSeries()    {}

// Tester returns the hit tester for the series of tc.
// The surface is only used by line, spline and area series.
func (tc TestCase) Tester(surface chart.Surface, opts ...hittest.Option) hittest.HitTester {
	switch s := tc.Series.(type) {
	case Bars:
		return hittest.NewBarHitTester(s)
	case Scatter:
		return hittest.NewScatterHitTester(s, opts...)
	case Pie:
		return hittest.NewPieHitTester(s)
	case Line:
		return hittest.NewLineHitTester(s, surface, opts...)
	case Spline:
		return hittest.NewSplineHitTester(s, surface, opts...)
	case Area:
		return hittest.NewAreaHitTester(s, surface, opts...)
	default:
		panic("unknown series type")
	}
}

// Canvas returns the canvas area of tc, in the form used for the clip
// rectangle of the rasterising surfaces.
func (tc TestCase) Canvas() rect.Rect {
	return rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
}

// hit is a helper to create an expected hit.
func hit(index any, distance float64) hittest.HitPoint {
	return hittest.HitPoint{Index: index, Distance: distance}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
