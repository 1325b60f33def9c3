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

// Package hittest finds the data points of a chart series which are under
// a pointer position.
//
// There is one hit tester per kind of series.  Bars, scatter markers and
// pie slices are tested against their exact geometry.  Lines, splines and
// areas are tested against their vertices first.  If no vertex is close
// enough, the rendered outline of the series decides whether the pointer
// is on the series, and the nearest vertex is reported.
//
// All hit testers are immutable after construction and can be used
// concurrently.
package hittest

import (
	"seehuhn.de/go/geom/vec"
)

// HitPoint is a single data point matched by a hit test.
type HitPoint struct {
	// Index identifies the point within its series.
	Index any

	// Distance is the normalized distance between the pointer and the
	// point.  The value 0 means the pointer is at the center of the
	// point, 1 means the pointer is at the boundary of the hit region.
	Distance float64
}

// Result lists the points matched by a hit test, in series order.
// A nil *Result means that no point was matched.
type Result struct {
	Points []HitPoint
}

// Indices returns the indices of all matched points.
// For a nil result, nil is returned.
func (r *Result) Indices() []any {
	if r == nil {
		return nil
	}
	res := make([]any, len(r.Points))
	for i, p := range r.Points {
		res[i] = p.Index
	}
	return res
}

// HitTester is implemented by all hit testers in this package.
type HitTester interface {
	// HitTest returns the points under the pointer position c, or nil if
	// no point is matched.
	HitTest(c vec.Vec2) *Result
}

// HitTesterFunc adapts an ordinary function to the [HitTester] interface.
type HitTesterFunc func(c vec.Vec2) *Result

// HitTest calls f(c).
func (f HitTesterFunc) HitTest(c vec.Vec2) *Result {
	return f(c)
}

// boundaryEpsilon absorbs rounding errors for positions exactly on the
// boundary of a hit region.
const boundaryEpsilon = 1e-9

// within reports whether the normalized distance d is inside the hit
// region.  Distances just above 1 due to rounding are reported as 1.
func within(d float64) (float64, bool) {
	switch {
	case d <= 1:
		return d, true
	case d <= 1+boundaryEpsilon:
		return 1, true
	default:
		return d, false
	}
}

func newResult(points []HitPoint) *Result {
	if len(points) == 0 {
		return nil
	}
	return &Result{Points: points}
}
