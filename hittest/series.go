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

package hittest

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/curve"
)

// LinePoint is the plotted position of a point of a line or spline series.
type LinePoint struct {
	Index any
	X, Y  float64
}

// AreaPoint is the plotted position of a point of an area series.
// Y is the value, Y0 the baseline.
type AreaPoint struct {
	Index any
	X, Y  float64
	Y0    float64
}

// lineAccessors places a band of height 2*tol around the line.
type lineAccessors struct {
	tol float64
}

func (lineAccessors) Index(p LinePoint) any {
	return p.Index
}

func (lineAccessors) Vertex(p LinePoint) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

func (a lineAccessors) Span(p LinePoint) (x, y0, y1 float64) {
	return p.X, p.Y + a.tol, p.Y - a.tol
}

type areaAccessors struct{}

func (areaAccessors) Index(p AreaPoint) any {
	return p.Index
}

func (areaAccessors) Vertex(p AreaPoint) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

func (areaAccessors) Span(p AreaPoint) (x, y0, y1 float64) {
	return p.X, p.Y0, p.Y
}

// NewLineHitTester returns a hit tester for a line series.
// Between vertices, positions within the line tolerance of the line are
// matched.
func NewLineHitTester(points []LinePoint, surface chart.Surface, opts ...Option) *CurveHitTester {
	o := buildOptions(opts)
	if o.curve == nil {
		o.curve = curve.Linear
	}
	return newCurveHitTester(points, lineAccessors{tol: o.lineTolerance}, surface, o)
}

// NewSplineHitTester returns a hit tester for a spline series.
// This is the same as [NewLineHitTester], but the vertices are connected
// by [curve.MonotoneX] unless a different curve is set using [WithCurve].
func NewSplineHitTester(points []LinePoint, surface chart.Surface, opts ...Option) *CurveHitTester {
	o := buildOptions(opts)
	if o.curve == nil {
		o.curve = curve.MonotoneX
	}
	return newCurveHitTester(points, lineAccessors{tol: o.lineTolerance}, surface, o)
}

// NewAreaHitTester returns a hit tester for an area series.
// Between vertices, positions between the baseline and the value line are
// matched.
func NewAreaHitTester(points []AreaPoint, surface chart.Surface, opts ...Option) *CurveHitTester {
	o := buildOptions(opts)
	if o.curve == nil {
		o.curve = curve.Linear
	}
	return newCurveHitTester(points, areaAccessors{}, surface, o)
}
