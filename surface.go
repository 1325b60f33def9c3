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

package chart

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Membership reports whether a pixel position lies inside a path which was
// rendered earlier.
type Membership interface {
	Contains(c vec.Vec2) bool
}

// MembershipFunc adapts an ordinary function to the [Membership] interface.
type MembershipFunc func(c vec.Vec2) bool

// Contains calls f(c).
func (f MembershipFunc) Contains(c vec.Vec2) bool {
	return f(c)
}

// Surface renders paths, in the way a canvas would, and returns a
// [Membership] test for each rendered path.
//
// Hit testers for continuous series bind the outline of the series once,
// when they are constructed.  The returned Membership may be queried
// concurrently.
type Surface interface {
	Bind(p *path.Data) Membership
}

// SurfaceFunc adapts an ordinary function to the [Surface] interface.
type SurfaceFunc func(p *path.Data) Membership

// Bind calls f(p).
func (f SurfaceFunc) Bind(p *path.Data) Membership {
	return f(p)
}
