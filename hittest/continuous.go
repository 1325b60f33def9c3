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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/curve"
	"seehuhn.de/go/chart/shape"
)

// Accessors maps the points of a continuous series to pixel coordinates.
type Accessors[P any] interface {
	// Index returns the identifier of p within its series.
	Index(p P) any

	// Vertex returns the plotted position of p.
	Vertex(p P) vec.Vec2

	// Span returns the vertical extent of the rendered series at p.
	// The outline of the series runs along y1 from the first to the last
	// point, and back along y0.
	Span(p P) (x, y0, y1 float64)
}

// CurveHitTester tests the points of a line, spline or area series.
type CurveHitTester struct {
	indices  []any
	vertices []vec.Vec2
	radius   float64
	member   chart.Membership
}

// NewCurveHitTester returns a hit tester for a continuous series.
//
// The outline of the series is built from the spans of the points, using
// the curve set by [WithCurve] ([curve.Linear] if none is set), and bound
// to surface.  If surface is nil, only the vertices are tested.
// Points with non-finite coordinates are ignored.
func NewCurveHitTester[P any](points []P, acc Accessors[P], surface chart.Surface, opts ...Option) *CurveHitTester {
	o := buildOptions(opts)
	if o.curve == nil {
		o.curve = curve.Linear
	}
	return newCurveHitTester(points, acc, surface, o)
}

func newCurveHitTester[P any](points []P, acc Accessors[P], surface chart.Surface, o options) *CurveHitTester {
	t := &CurveHitTester{
		indices:  make([]any, 0, len(points)),
		vertices: make([]vec.Vec2, 0, len(points)),
		radius:   o.vertexRadius,
	}

	spans := make([]curve.Span, 0, len(points))
	skipped := 0
	for _, p := range points {
		v := acc.Vertex(p)
		x, y0, y1 := acc.Span(p)
		if !shape.Finite(v) || !finite(x) || !finite(y0) || !finite(y1) {
			skipped++
			continue
		}
		t.indices = append(t.indices, acc.Index(p))
		t.vertices = append(t.vertices, v)
		spans = append(spans, curve.Span{X: x, Y0: y0, Y1: y1})
	}

	if surface != nil && len(spans) > 0 {
		t.member = surface.Bind(curve.Area(spans, o.curve))
	}

	chart.Logger().Debug("continuous hit tester created",
		"points", len(t.vertices), "skipped", skipped, "membership", t.member != nil)
	return t
}

// HitTest returns all points whose vertex is within the vertex radius of c,
// in series order.  If there are none and c is inside the outline of the
// series, the single nearest point is returned.  In this case the distance
// is larger than 1.
func (t *CurveHitTester) HitTest(c vec.Vec2) *Result {
	if len(t.vertices) == 0 {
		return nil
	}
	if !shape.Finite(c) {
		chart.Logger().Debug("non-finite pointer position rejected", "pos", c)
		return nil
	}

	var hits []HitPoint
	nearest, nearestDist := -1, math.Inf(1)
	for i, v := range t.vertices {
		d, ok := shape.Circle(c, v, t.radius)
		if !ok {
			continue
		}
		if d, ok := within(d); ok {
			hits = append(hits, HitPoint{Index: t.indices[i], Distance: d})
		}
		if d < nearestDist {
			nearest, nearestDist = i, d
		}
	}
	if len(hits) > 0 {
		return &Result{Points: hits}
	}

	if t.member == nil || nearest < 0 || !t.member.Contains(c) {
		return nil
	}
	return &Result{Points: []HitPoint{{Index: t.indices[nearest], Distance: nearestDist}}}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
