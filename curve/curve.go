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

// Package curve builds the outlines of line, spline and area series.
//
// A [Curve] decides how consecutive vertices are connected.  [Area] uses a
// curve to build the closed band between an upper and a lower line, which
// is the shape rendered for area series and the hit region for lines.
package curve

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Curve appends an interpolated line through a sequence of vertices to a
// path.
type Curve interface {
	// AppendTo appends the line through pts to p and returns the extended
	// path.  If join is false, a new subpath is started at the first
	// vertex.  Otherwise the first vertex is connected to the current
	// point of p by a straight line.
	AppendTo(p *path.Data, pts []vec.Vec2, join bool) *path.Data
}

// Linear connects the vertices by straight line segments.
var Linear Curve = linear{}

type linear struct{}

func (linear) AppendTo(p *path.Data, pts []vec.Vec2, join bool) *path.Data {
	pts = dropCoincident(pts)
	if len(pts) == 0 {
		return p
	}
	p = start(p, pts[0], join)
	for _, pt := range pts[1:] {
		p = p.LineTo(pt)
	}
	return p
}

func start(p *path.Data, pt vec.Vec2, join bool) *path.Data {
	if join {
		return p.LineTo(pt)
	}
	return p.MoveTo(pt)
}

// dropCoincident removes vertices which coincide with their predecessor.
// The input slice is not modified.
func dropCoincident(pts []vec.Vec2) []vec.Vec2 {
	for i := 1; i < len(pts); i++ {
		if pts[i] != pts[i-1] {
			continue
		}
		out := make([]vec.Vec2, i, len(pts))
		copy(out, pts[:i])
		for _, pt := range pts[i+1:] {
			if pt != out[len(out)-1] {
				out = append(out, pt)
			}
		}
		return out
	}
	return pts
}

// Span is the vertical extent of a band at one x position.
type Span struct {
	X  float64
	Y0 float64 // lower line
	Y1 float64 // upper line
}

// Area returns the closed outline of the band described by spans.
// The upper line is traced from the first to the last span, the lower
// line back from the last to the first.  Both lines are shaped by c.
// If c is nil, [Linear] is used.
func Area(spans []Span, c Curve) *path.Data {
	p := &path.Data{}
	if len(spans) == 0 {
		return p
	}
	if c == nil {
		c = Linear
	}

	pts := make([]vec.Vec2, len(spans))
	for i, s := range spans {
		pts[i] = vec.Vec2{X: s.X, Y: s.Y1}
	}
	p = c.AppendTo(p, pts, false)

	for i, s := range spans {
		pts[len(spans)-1-i] = vec.Vec2{X: s.X, Y: s.Y0}
	}
	p = c.AppendTo(p, pts, true)

	return p.Close()
}
