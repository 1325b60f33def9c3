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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/hittest"
)

var barCases = []TestCase{
	{
		Name: "touching",
		Series: Bars{
			{Index: "p1", X: 10, Width: 4, Y: 2, Y1: 4},
			{Index: "p2", X: 20, Width: 8, Y: 3, Y1: 5},
			{Index: "p3", X: 30, Width: 5, Y: 1, Y1: 5},
			{Index: "p4", X: 31, Width: 5, Y: 0, Y1: 4},
		},
		Width:  40,
		Height: 6,
		Probes: []Probe{
			{Pos: pt(15, 1)},
			{Pos: pt(12, 4), Want: []hittest.HitPoint{hit("p1", 1)}},
			{Pos: pt(25, 3), Want: []hittest.HitPoint{hit("p2", 1)}},
			{Pos: pt(31, 2), Want: []hittest.HitPoint{hit("p3", 0.6), hit("p4", 1)}},
		},
	},
	{
		Name: "downward",
		Series: Bars{
			{Index: 0, X: 10, Width: 20, Y: 100, Y1: 40},
			{Index: 1, X: 30, Width: 20, Y: 100, Y1: 70},
		},
		Width:  60,
		Height: 110,
		Probes: []Probe{
			{Pos: pt(20, 70), Want: []hittest.HitPoint{hit(0, 0)}},
			{Pos: pt(30, 85), Want: []hittest.HitPoint{hit(0, 1), hit(1, 1)}},
			{Pos: pt(25, 40), Want: []hittest.HitPoint{hit(0, 1)}},
			{Pos: pt(40, 60)},
			{Pos: pt(5, 90)},
		},
	},
}

var scatterCases = []TestCase{
	{
		Name: "spread",
		Series: Scatter{
			{Index: "p1", X: 10, Y: 4},
			{Index: "p2", X: 30, Y: 5},
			{Index: "p3", X: 50, Y: 8},
			{Index: "p4", X: 55, Y: 10},
		},
		Width:  70,
		Height: 25,
		Probes: []Probe{
			{Pos: pt(15, -7)},
			{Pos: pt(14, 10), Want: []hittest.HitPoint{hit("p1", 0.72)}},
			{Pos: pt(32, 4), Want: []hittest.HitPoint{hit("p2", 0.22)}},
			{Pos: pt(49, 15), Want: []hittest.HitPoint{hit("p3", 0.71), hit("p4", 0.78)}},
		},
	},
	{
		Name: "overlap",
		Series: Scatter{
			{Index: "a", X: 20, Y: 20},
			{Index: "b", X: 26, Y: 20},
			{Index: "c", X: 60, Y: 40},
		},
		Width:  80,
		Height: 60,
		Probes: []Probe{
			{Pos: pt(23, 20), Want: []hittest.HitPoint{hit("a", 0.3), hit("b", 0.3)}},
			{Pos: pt(60, 50), Want: []hittest.HitPoint{hit("c", 1)}},
			{Pos: pt(40, 30)},
		},
	},
}

var pieCases = []TestCase{
	{
		Name: "quarters",
		Series: Pie{
			{Index: "p1", X: 60, Y: 50, InnerRadius: 1, OuterRadius: 10, StartAngle: 0, EndAngle: math.Pi / 4},
			{Index: "p2", X: 60, Y: 50, InnerRadius: 1, OuterRadius: 10, StartAngle: math.Pi / 2, EndAngle: math.Pi},
			{Index: "p3", X: 60, Y: 50, InnerRadius: 1, OuterRadius: 10, StartAngle: math.Pi, EndAngle: 3 * math.Pi / 2},
		},
		Width:  120,
		Height: 100,
		Probes: []Probe{
			{Pos: pt(60, 61)},
			{Pos: pt(64, 45), Want: []hittest.HitPoint{hit("p1", 0.72)}},
			{Pos: pt(68, 52), Want: []hittest.HitPoint{hit("p2", 0.69)}},
			{Pos: pt(60, 55), Want: []hittest.HitPoint{hit("p2", 1), hit("p3", 1)}},
		},
	},
	{
		Name: "donut_wrap",
		Series: Pie{
			{Index: "top", X: 50, Y: 50, InnerRadius: 10, OuterRadius: 30, StartAngle: 7 * math.Pi / 4, EndAngle: 9 * math.Pi / 4},
			{Index: "right", X: 50, Y: 50, InnerRadius: 10, OuterRadius: 30, StartAngle: math.Pi / 4, EndAngle: 3 * math.Pi / 4},
		},
		Width:  100,
		Height: 100,
		Probes: []Probe{
			{Pos: pt(50, 30), Want: []hittest.HitPoint{hit("top", 0)}},
			{Pos: polar(50, 50, 20, math.Pi/4), Want: []hittest.HitPoint{hit("top", 1), hit("right", 1)}},
			{Pos: polar(50, 50, 20, math.Pi/2), Want: []hittest.HitPoint{hit("right", 0)}},
			{Pos: polar(50, 50, 30, math.Pi/2), Want: []hittest.HitPoint{hit("right", 1)}},
			{Pos: polar(50, 50, 35, math.Pi/2)},
			{Pos: pt(50, 75)},
			{Pos: pt(50, 50)},
		},
	},
}

// polar returns the point at distance r from (cx, cy) in the direction
// given by angle, using the pie angle convention.
func polar(cx, cy, r, angle float64) vec.Vec2 {
	return vec.Vec2{
		X: cx + r*math.Sin(angle),
		Y: cy - r*math.Cos(angle),
	}
}
