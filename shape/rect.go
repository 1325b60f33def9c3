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

package shape

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rect returns the normalized distance between c and the center of r.
//
// The offset from the center along each axis is divided by the half-extent
// of r along this axis, and the larger of the two absolute values is
// returned.  The result is 1 on every edge of r, independent of its aspect
// ratio.  The corners of r may be given in any order.
func Rect(c vec.Vec2, r rect.Rect) (float64, bool) {
	if !Finite(c) || !isFinite(r.LLx) || !isFinite(r.LLy) || !isFinite(r.URx) || !isFinite(r.URy) {
		return 0, false
	}

	halfW := math.Abs(r.URx-r.LLx) / 2
	halfH := math.Abs(r.URy-r.LLy) / 2
	if halfW == 0 || halfH == 0 {
		return 0, false
	}

	dx := math.Abs(c.X-(r.LLx+r.URx)/2) / halfW
	dy := math.Abs(c.Y-(r.LLy+r.URy)/2) / halfH
	return max(dx, dy), true
}
