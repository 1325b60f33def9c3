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

// Package shape computes normalized distances between a cursor position
// and the shapes used to draw chart series.
//
// A normalized distance is 0 at the center of a shape and exactly 1 on
// its boundary, independent of the size of the shape.  This allows to
// compare hits on differently sized and shaped elements.
//
// All functions return ok == false if the shape is degenerate (zero
// extent) or if any coordinate is not finite.  In this case the distance
// must be ignored.
package shape

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Default hit radii, in pixels.
const (
	// MarkerRadius is the hit radius of a scatter marker.
	MarkerRadius = 10

	// VertexRadius is the hit radius of a vertex of a line, spline or
	// area series.
	VertexRadius = 20

	// LineTolerance is half the height of the band around a line which
	// counts as a hit between vertices.
	LineTolerance = 10
)

// Finite reports whether both coordinates of v are finite numbers.
func Finite(v vec.Vec2) bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Circle returns the Euclidean distance between c and center, divided by
// radius.
func Circle(c, center vec.Vec2, radius float64) (float64, bool) {
	if !(radius > 0) || !isFinite(radius) || !Finite(c) || !Finite(center) {
		return 0, false
	}
	return math.Hypot(c.X-center.X, c.Y-center.Y) / radius, true
}
