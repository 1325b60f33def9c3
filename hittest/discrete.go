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
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/shape"
)

// BarPoint is the rendered rectangle of a bar.
// The bar covers x values from X to X+Width, and y values between Y and Y1.
type BarPoint struct {
	Index any
	X     float64
	Width float64
	Y, Y1 float64
}

func (p BarPoint) rect() rect.Rect {
	return rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X + p.Width, URy: p.Y1}
}

// ScatterPoint is the center of a scatter marker.
type ScatterPoint struct {
	Index any
	X, Y  float64
}

// PiePoint is a pie slice.  X and Y give the center of the pie.
// Angles are in radians, measured clockwise from twelve o'clock.
type PiePoint struct {
	Index       any
	X, Y        float64
	InnerRadius float64
	OuterRadius float64
	StartAngle  float64
	EndAngle    float64
}

func (p PiePoint) sector() shape.Sector {
	return shape.Sector{
		Center:      vec.Vec2{X: p.X, Y: p.Y},
		InnerRadius: p.InnerRadius,
		OuterRadius: p.OuterRadius,
		StartAngle:  p.StartAngle,
		EndAngle:    p.EndAngle,
	}
}

// DiscreteHitTester tests the points of a bar, scatter or pie series.
// Every point is tested independently, so that a position on the boundary
// between two points matches both.
type DiscreteHitTester[P any] struct {
	points []P
	index  func(P) any
	dist   func(vec.Vec2, P) (float64, bool)
}

// NewBarHitTester returns a hit tester for a bar series.
// The distance is 0 at the center of a bar and 1 on its edges.
func NewBarHitTester(points []BarPoint) *DiscreteHitTester[BarPoint] {
	return newDiscrete("bar", points,
		func(p BarPoint) any { return p.Index },
		func(c vec.Vec2, p BarPoint) (float64, bool) {
			return shape.Rect(c, p.rect())
		})
}

// NewScatterHitTester returns a hit tester for a scatter series.
// The distance is 0 at the center of a marker and 1 at the marker radius.
func NewScatterHitTester(points []ScatterPoint, opts ...Option) *DiscreteHitTester[ScatterPoint] {
	o := buildOptions(opts)
	radius := o.markerRadius
	return newDiscrete("scatter", points,
		func(p ScatterPoint) any { return p.Index },
		func(c vec.Vec2, p ScatterPoint) (float64, bool) {
			return shape.Circle(c, vec.Vec2{X: p.X, Y: p.Y}, radius)
		})
}

// NewPieHitTester returns a hit tester for a pie series.
// The distance is 0 on the bisector of a slice, half way between the inner
// and outer radius, and 1 on the boundary of the slice.
func NewPieHitTester(points []PiePoint) *DiscreteHitTester[PiePoint] {
	return newDiscrete("pie", points,
		func(p PiePoint) any { return p.Index },
		func(c vec.Vec2, p PiePoint) (float64, bool) {
			return p.sector().Distance(c)
		})
}

func newDiscrete[P any](kind string, points []P, index func(P) any, dist func(vec.Vec2, P) (float64, bool)) *DiscreteHitTester[P] {
	chart.Logger().Debug("discrete hit tester created", "kind", kind, "points", len(points))
	return &DiscreteHitTester[P]{
		points: slices.Clone(points),
		index:  index,
		dist:   dist,
	}
}

// HitTest returns all points whose hit region contains c, in series order.
// Points with a degenerate shape never match.
func (t *DiscreteHitTester[P]) HitTest(c vec.Vec2) *Result {
	if len(t.points) == 0 {
		return nil
	}
	if !shape.Finite(c) {
		chart.Logger().Debug("non-finite pointer position rejected", "pos", c)
		return nil
	}

	var hits []HitPoint
	for _, p := range t.points {
		d, ok := t.dist(c, p)
		if !ok {
			continue
		}
		if d, ok := within(d); ok {
			hits = append(hits, HitPoint{Index: t.index(p), Distance: d})
		}
	}
	return newResult(hits)
}
