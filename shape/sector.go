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

	"seehuhn.de/go/geom/vec"
)

// Sector is a slice of an annulus, as used for pie and donut charts.
//
// Angles are in radians.  Angle 0 points up (towards negative y) and
// angles increase clockwise, matching the pie layout on a y-down canvas.
type Sector struct {
	Center      vec.Vec2
	InnerRadius float64
	OuterRadius float64
	StartAngle  float64
	EndAngle    float64
}

// Distance returns the normalized distance between c and the sector.
//
// The radial part is the offset of c from the mid-radius, divided by half
// the ring width.  The angular part is the offset of the angle of c from
// the bisector, divided by half the opening angle.  The result is the
// larger of the two, so that it equals 1 on every edge of the sector.
// Adjacent sectors both report distance 1 on their shared edge.
func (s Sector) Distance(c vec.Vec2) (float64, bool) {
	if !Finite(c) || !Finite(s.Center) ||
		!isFinite(s.InnerRadius) || !isFinite(s.OuterRadius) ||
		!isFinite(s.StartAngle) || !isFinite(s.EndAngle) {
		return 0, false
	}

	halfRing := math.Abs(s.OuterRadius-s.InnerRadius) / 2
	halfOpening := math.Abs(s.EndAngle-s.StartAngle) / 2
	if halfRing == 0 || halfOpening == 0 {
		return 0, false
	}

	r := math.Hypot(c.X-s.Center.X, c.Y-s.Center.Y)
	radial := math.Abs(r-(s.InnerRadius+s.OuterRadius)/2) / halfRing

	offset := wrapAngle(Angle(c, s.Center) - (s.StartAngle+s.EndAngle)/2)
	angular := math.Abs(offset) / halfOpening

	return max(radial, angular), true
}

// Angle returns the direction of c as seen from center, in [0, 2π).
// Angle 0 points towards negative y, and angles increase clockwise on a
// y-down canvas.
func Angle(c, center vec.Vec2) float64 {
	a := math.Atan2(c.X-center.X, center.Y-c.Y)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// wrapAngle maps a to the equivalent angle in (-π, π].
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
