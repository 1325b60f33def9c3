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

package testcases

import (
	"seehuhn.de/go/chart/hittest"
)

// threePoints is the vertex sequence shared by the line, spline and area
// cases.  The middle vertex is a local extremum.
func threePoints() []hittest.LinePoint {
	return []hittest.LinePoint{
		{Index: "p1", X: 115, Y: 35},
		{Index: "p2", X: 165, Y: 65},
		{Index: "p3", X: 195, Y: 60},
	}
}

// Expected results for probes on the vertices, which do not depend on the
// shape of the curve.
var vertexProbes = []Probe{
	{Pos: pt(115, 35), Want: []hittest.HitPoint{hit("p1", 0)}},
	{Pos: pt(110, 40), Want: []hittest.HitPoint{hit("p1", 0.35)}},
	{Pos: pt(185, 65), Want: []hittest.HitPoint{hit("p2", 1), hit("p3", 0.56)}},
	{Pos: pt(190, 60), Want: []hittest.HitPoint{hit("p3", 0.25)}},
	{Pos: pt(90, 30)},
}

var lineCases = []TestCase{
	{
		Name:   "three_points",
		Series: Line(threePoints()),
		Width:  220,
		Height: 100,
		Probes: append([]Probe{
			{Pos: pt(135, 45), Want: []hittest.HitPoint{hit("p1", 1.12)}},
			{Pos: pt(141, 56), Want: []hittest.HitPoint{hit("p2", 1.28)}},
			{Pos: pt(140, 63)},
			{Pos: pt(140, 30)},
		}, vertexProbes...),
	},
	{
		Name: "long_segment",
		Series: Line{
			{Index: 0, X: 10, Y: 10},
			{Index: 1, X: 210, Y: 90},
		},
		Width:  220,
		Height: 100,
		Probes: []Probe{
			{Pos: pt(110, 50), Want: []hittest.HitPoint{hit(0, 5.39)}},
			{Pos: pt(160, 72), Want: []hittest.HitPoint{hit(1, 2.66)}},
			{Pos: pt(110, 65)},
			{Pos: pt(215, 92), Want: []hittest.HitPoint{hit(1, 0.27)}},
		},
	},
	{
		Name: "off_canvas",
		Series: Line{
			{Index: 0, X: 10, Y: 10},
			{Index: 1, X: 60, Y: 40},
			{Index: 2, X: 1e8, Y: 1e8},
		},
		Width:  220,
		Height: 100,
		Probes: []Probe{
			{Pos: pt(10, 10), Want: []hittest.HitPoint{hit(0, 0)}},
			{Pos: pt(100, 80), Want: []hittest.HitPoint{hit(1, 2.83)}},
			{Pos: pt(100, 95)},
		},
	},
}

var splineCases = []TestCase{
	{
		Name:   "three_points",
		Series: Spline(threePoints()),
		Width:  220,
		Height: 100,
		Probes: append([]Probe{
			{Pos: pt(135, 45), Want: []hittest.HitPoint{hit("p1", 1.12)}},
			{Pos: pt(141, 56), Want: []hittest.HitPoint{hit("p2", 1.28)}},
			// below the straight line, but on the spline
			{Pos: pt(140, 63), Want: []hittest.HitPoint{hit("p2", 1.25)}},
			{Pos: pt(140, 30)},
		}, vertexProbes...),
	},
}

var areaCases = []TestCase{
	{
		Name: "three_points",
		Series: Area{
			{Index: "p1", X: 115, Y: 35, Y0: 100},
			{Index: "p2", X: 165, Y: 65, Y0: 100},
			{Index: "p3", X: 195, Y: 60, Y0: 100},
		},
		Width:  220,
		Height: 110,
		Probes: append([]Probe{
			{Pos: pt(140, 80), Want: []hittest.HitPoint{hit("p2", 1.46)}},
			{Pos: pt(140, 40)},
			{Pos: pt(140, 105)},
		}, vertexProbes...),
	},
	{
		Name: "below_baseline",
		Series: Area{
			{Index: 0, X: 20, Y: 80, Y0: 50},
			{Index: 1, X: 80, Y: 120, Y0: 50},
			{Index: 2, X: 140, Y: 100, Y0: 50},
		},
		Width:  160,
		Height: 140,
		Probes: []Probe{
			{Pos: pt(80, 70), Want: []hittest.HitPoint{hit(1, 2.5)}},
			{Pos: pt(80, 40)},
			{Pos: pt(140, 100), Want: []hittest.HitPoint{hit(2, 0)}},
		},
	},
}
