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

package curve

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// MonotoneX interpolates the vertices by a cubic spline which is monotone
// in y between consecutive vertices, provided the vertices are sorted by x.
// The curve never overshoots a local extremum of the data.
//
// Tangents are chosen using the method from Steffen, "A simple method for
// monotonic interpolation in one dimension", Astron. Astrophys. 239,
// 443-450 (1990).
var MonotoneX Curve = monotoneX{}

type monotoneX struct{}

func (monotoneX) AppendTo(p *path.Data, pts []vec.Vec2, join bool) *path.Data {
	pts = dropCoincident(pts)
	n := len(pts)
	if n == 0 {
		return p
	}
	p = start(p, pts[0], join)
	if n == 1 {
		return p
	}
	if n == 2 {
		return p.LineTo(pts[1])
	}

	t := make([]float64, n)
	for i := 1; i < n-1; i++ {
		t[i] = steffenSlope(pts[i-1], pts[i], pts[i+1])
	}
	t[0] = endSlope(pts[0], pts[1], t[1])
	t[n-1] = endSlope(pts[n-2], pts[n-1], t[n-2])

	for i := range n - 1 {
		p0, p1 := pts[i], pts[i+1]
		dx := (p1.X - p0.X) / 3
		p = p.CubeTo(
			vec.Vec2{X: p0.X + dx, Y: p0.Y + dx*t[i]},
			vec.Vec2{X: p1.X - dx, Y: p1.Y - dx*t[i+1]},
			p1)
	}
	return p
}

// steffenSlope returns the tangent slope at b, given its neighbours a and c.
func steffenSlope(a, b, c vec.Vec2) float64 {
	h0 := b.X - a.X
	h1 := c.X - b.X
	s0 := slope(a, b)
	s1 := slope(b, c)
	if h0+h1 == 0 {
		return 0
	}
	q := (s0*h1 + s1*h0) / (h0 + h1)

	m := min(math.Abs(s0), math.Abs(s1), 0.5*math.Abs(q))
	res := (sign(s0) + sign(s1)) * m
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return 0
	}
	return res
}

// endSlope returns the tangent slope at an end point of the curve, using a
// one-sided estimate from the segment a-b and the known slope t at the
// other end of this segment.
func endSlope(a, b vec.Vec2, t float64) float64 {
	h := b.X - a.X
	if h == 0 {
		return t
	}
	return (3*(b.Y-a.Y)/h - t) / 2
}

func slope(a, b vec.Vec2) float64 {
	h := b.X - a.X
	if h == 0 {
		return 0
	}
	return (b.Y - a.Y) / h
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
