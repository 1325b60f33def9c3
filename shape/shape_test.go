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
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

const epsilon = 0.01

func TestRect(t *testing.T) {
	// bar {x:10, width:4, y:2, y1:4}
	bar := rect.Rect{LLx: 10, LLy: 2, URx: 14, URy: 4}

	cases := []struct {
		c    vec.Vec2
		want float64
	}{
		{vec.Vec2{X: 12, Y: 3}, 0},
		{vec.Vec2{X: 12, Y: 4}, 1},
		{vec.Vec2{X: 10, Y: 3}, 1},
		{vec.Vec2{X: 13, Y: 3.5}, 0.5},
		{vec.Vec2{X: 15, Y: 1}, 2},
	}
	for _, tc := range cases {
		got, ok := Rect(tc.c, bar)
		if !ok {
			t.Errorf("%v: unexpected miss", tc.c)
			continue
		}
		if math.Abs(got-tc.want) > epsilon {
			t.Errorf("%v: expected %.2f, got %.4f", tc.c, tc.want, got)
		}
	}
}

func TestRectCornerOrder(t *testing.T) {
	a := rect.Rect{LLx: 30, LLy: 1, URx: 35, URy: 5}
	b := rect.Rect{LLx: 35, LLy: 5, URx: 30, URy: 1}
	c := vec.Vec2{X: 31, Y: 2}

	da, _ := Rect(c, a)
	db, _ := Rect(c, b)
	if da != db || math.Abs(da-0.6) > epsilon {
		t.Errorf("expected 0.6 for both orders, got %.4f and %.4f", da, db)
	}
}

func TestRectDegenerate(t *testing.T) {
	cases := []rect.Rect{
		{LLx: 10, LLy: 2, URx: 10, URy: 4},
		{LLx: 10, LLy: 2, URx: 14, URy: 2},
		{LLx: math.NaN(), LLy: 2, URx: 14, URy: 4},
	}
	for _, r := range cases {
		if d, ok := Rect(vec.Vec2{X: 10, Y: 2}, r); ok {
			t.Errorf("%v: expected miss, got %g", r, d)
		}
	}
}

func TestCircle(t *testing.T) {
	center := vec.Vec2{X: 10, Y: 4}

	d, ok := Circle(vec.Vec2{X: 14, Y: 10}, center, MarkerRadius)
	if !ok || math.Abs(d-0.72) > epsilon {
		t.Errorf("expected 0.72, got %.4f (ok=%t)", d, ok)
	}

	d, ok = Circle(vec.Vec2{X: 15, Y: -7}, center, MarkerRadius)
	if !ok || math.Abs(d-1.21) > epsilon {
		t.Errorf("expected 1.21, got %.4f (ok=%t)", d, ok)
	}

	d, ok = Circle(vec.Vec2{X: 20, Y: 4}, center, MarkerRadius)
	if !ok || d != 1 {
		t.Errorf("expected exactly 1 on the boundary, got %g", d)
	}

	for _, radius := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, ok := Circle(center, center, radius); ok {
			t.Errorf("radius %g: expected miss", radius)
		}
	}
}

func TestFinite(t *testing.T) {
	cases := []struct {
		v    vec.Vec2
		want bool
	}{
		{vec.Vec2{X: 1, Y: 2}, true},
		{vec.Vec2{X: math.NaN(), Y: 2}, false},
		{vec.Vec2{X: 1, Y: math.Inf(-1)}, false},
		{vec.Vec2{X: math.Inf(1), Y: math.NaN()}, false},
	}
	for _, tc := range cases {
		if got := Finite(tc.v); got != tc.want {
			t.Errorf("Finite(%v) = %t, want %t", tc.v, got, tc.want)
		}
	}
}

func TestAngle(t *testing.T) {
	center := vec.Vec2{X: 60, Y: 50}
	cases := []struct {
		c    vec.Vec2
		want float64
	}{
		{vec.Vec2{X: 60, Y: 40}, 0},
		{vec.Vec2{X: 70, Y: 50}, math.Pi / 2},
		{vec.Vec2{X: 60, Y: 60}, math.Pi},
		{vec.Vec2{X: 50, Y: 50}, 3 * math.Pi / 2},
	}
	for _, tc := range cases {
		if got := Angle(tc.c, center); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Angle(%v) = %g, want %g", tc.c, got, tc.want)
		}
	}
}

func TestSector(t *testing.T) {
	center := vec.Vec2{X: 60, Y: 50}
	p1 := Sector{Center: center, InnerRadius: 1, OuterRadius: 10, StartAngle: 0, EndAngle: math.Pi / 4}
	p2 := Sector{Center: center, InnerRadius: 1, OuterRadius: 10, StartAngle: math.Pi / 2, EndAngle: math.Pi}
	p3 := Sector{Center: center, InnerRadius: 1, OuterRadius: 10, StartAngle: math.Pi, EndAngle: 3 * math.Pi / 2}

	cases := []struct {
		s    Sector
		c    vec.Vec2
		want float64
	}{
		{p1, vec.Vec2{X: 64, Y: 45}, 0.72},
		{p2, vec.Vec2{X: 68, Y: 52}, 0.69},
		{p2, vec.Vec2{X: 60, Y: 55}, 1},
		{p3, vec.Vec2{X: 60, Y: 55}, 1},
		{p2, vec.Vec2{X: 60, Y: 61}, 1.22},
	}
	for i, tc := range cases {
		got, ok := tc.s.Distance(tc.c)
		if !ok {
			t.Errorf("%d: unexpected miss", i)
			continue
		}
		if math.Abs(got-tc.want) > epsilon {
			t.Errorf("%d: expected %.2f, got %.4f", i, tc.want, got)
		}
	}
}

func TestSectorAcrossZero(t *testing.T) {
	// a slice from 11 o'clock to 1 o'clock
	s := Sector{
		Center:      vec.Vec2{X: 0, Y: 0},
		OuterRadius: 10,
		StartAngle:  -math.Pi / 6,
		EndAngle:    math.Pi / 6,
	}

	d, ok := s.Distance(vec.Vec2{X: 0, Y: -5})
	if !ok || math.Abs(d) > 1e-9 {
		t.Errorf("expected 0 on the bisector, got %g", d)
	}

	d, ok = s.Distance(vec.Vec2{X: -1, Y: -5})
	if !ok || d > 1 {
		t.Errorf("expected a hit left of twelve o'clock, got %g", d)
	}

	d, ok = s.Distance(vec.Vec2{X: 0, Y: 5})
	if !ok || d <= 1 {
		t.Errorf("expected a miss on the opposite side, got %g", d)
	}
}

func TestSectorDegenerate(t *testing.T) {
	cases := []Sector{
		{OuterRadius: 10, StartAngle: 1, EndAngle: 1},
		{InnerRadius: 5, OuterRadius: 5, StartAngle: 0, EndAngle: 1},
		{OuterRadius: math.Inf(1), StartAngle: 0, EndAngle: 1},
	}
	for i, s := range cases {
		if d, ok := s.Distance(vec.Vec2{X: 1, Y: -1}); ok {
			t.Errorf("%d: expected miss, got %g", i, d)
		}
	}
}
