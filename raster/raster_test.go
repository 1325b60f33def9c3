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

package raster

import (
	"image"
	"math"
	"sync"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/curve"
)

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasteriser(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1})

	coverage := make([]float32, 10)
	r.Fill(triangle, NonZero, func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

// square appends a square with the given corners, traversed clockwise on
// a y-down canvas.
func square(p *path.Data, x0, y0, x1, y1 float64) *path.Data {
	return p.
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

func TestFillRules(t *testing.T) {
	ring := square(square(&path.Data{}, 0, 0, 10, 10), 3, 3, 7, 7)

	cases := []struct {
		rule         FillRule
		inner, outer float32
	}{
		{NonZero, 1, 1},
		{EvenOdd, 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.rule.String(), func(t *testing.T) {
			img := make([]float32, 100)
			r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
			r.Fill(ring, tc.rule, func(y, xMin int, cov []float32) {
				copy(img[y*10+xMin:], cov)
			})

			if got := img[5*10+5]; got != tc.inner {
				t.Errorf("center: expected %g, got %g", tc.inner, got)
			}
			if got := img[1*10+1]; got != tc.outer {
				t.Errorf("ring: expected %g, got %g", tc.outer, got)
			}
		})
	}
}

func TestFillOpenSubpath(t *testing.T) {
	// The missing closing edges are added implicitly.
	open := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 4}).
		LineTo(vec.Vec2{X: 0, Y: 4}).
		MoveTo(vec.Vec2{X: 6, Y: 0}).
		LineTo(vec.Vec2{X: 8, Y: 0}).
		LineTo(vec.Vec2{X: 8, Y: 4}).
		LineTo(vec.Vec2{X: 6, Y: 4})

	var total float32
	r := NewRasteriser(rect.Rect{URx: 10, URy: 4})
	r.Fill(open, NonZero, func(y, xMin int, cov []float32) {
		for _, c := range cov {
			total += c
		}
	})
	if math.Abs(float64(total-24)) > 1e-4 {
		t.Errorf("expected total coverage 24, got %g", total)
	}
}

// lineBand returns the outline of the hit region around a three-vertex
// line, as used for line series.
func lineBand(c curve.Curve) *path.Data {
	pts := []vec.Vec2{{X: 115, Y: 35}, {X: 165, Y: 65}, {X: 195, Y: 60}}
	spans := make([]curve.Span, len(pts))
	for i, pt := range pts {
		spans[i] = curve.Span{X: pt.X, Y0: pt.Y + 10, Y1: pt.Y - 10}
	}
	return curve.Area(spans, c)
}

func TestMaskContains(t *testing.T) {
	m := NewSurface().Rasterise(lineBand(curve.Linear))

	inside := []vec.Vec2{
		{X: 140, Y: 50},
		{X: 140, Y: 57},
		{X: 140, Y: 43},
		{X: 120, Y: 40},
		{X: 180, Y: 60},
	}
	for _, c := range inside {
		if !m.Contains(c) {
			t.Errorf("%v: expected inside, coverage %.2f", c, m.Coverage(c))
		}
	}

	outside := []vec.Vec2{
		{X: 90, Y: 30},
		{X: 140, Y: 65},
		{X: 140, Y: 35},
		{X: 200, Y: 60},
		{X: 150, Y: 10},
		{X: math.NaN(), Y: 50},
		{X: 140, Y: math.Inf(1)},
	}
	for _, c := range outside {
		if m.Contains(c) {
			t.Errorf("%v: expected outside, coverage %.2f", c, m.Coverage(c))
		}
	}
}

func TestMaskEmptyPath(t *testing.T) {
	for _, s := range []interface{ Rasterise(*path.Data) *Mask }{NewSurface(), &VectorSurface{}} {
		m := s.Rasterise(&path.Data{})
		if !m.Bounds().Empty() {
			t.Errorf("%T: expected empty bounds, got %v", s, m.Bounds())
		}
		if m.Contains(vec.Vec2{}) {
			t.Errorf("%T: empty mask contains the origin", s)
		}
	}
}

// TestSurfacesAgree compares the two backends on all pixels which are
// clearly inside or clearly outside the path.
func TestSurfacesAgree(t *testing.T) {
	for _, c := range []curve.Curve{curve.Linear, curve.MonotoneX} {
		band := lineBand(c)
		ours := NewSurface().Rasterise(band)
		theirs := (&VectorSurface{Resolution: 1, Threshold: 0.5}).Rasterise(band)

		compared := 0
		b := ours.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				pos := vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
				cov := ours.Coverage(pos)
				if cov != 0 && cov != 1 {
					continue
				}
				compared++
				if want := cov == 1; theirs.Contains(pos) != want {
					t.Errorf("pixel (%d, %d): coverage %.2f, but vector backend says %t",
						x, y, cov, !want)
				}
			}
		}
		if compared == 0 {
			t.Error("no pixels compared")
		}
	}
}

func TestSurfaceResolution(t *testing.T) {
	s := NewSurface()
	s.Resolution = 4
	m := s.Rasterise(square(&path.Data{}, 10, 10, 20, 20))

	if got, want := m.Bounds(), image.Rect(39, 39, 81, 81); got != want {
		t.Errorf("bounds: got %v, want %v", got, want)
	}
	if !m.Contains(vec.Vec2{X: 10.1, Y: 19.9}) {
		t.Error("expected a position close to the corner to be inside")
	}
	if m.Contains(vec.Vec2{X: 9.9, Y: 15}) {
		t.Error("expected a position left of the square to be outside")
	}
}

func TestSurfaceClip(t *testing.T) {
	s := NewSurface()
	s.Clip = rect.Rect{LLx: 0, LLy: 0, URx: 15, URy: 100}
	m := s.Rasterise(square(&path.Data{}, 10, 10, 20, 20))

	if got, want := m.Bounds(), image.Rect(9, 9, 15, 21); got != want {
		t.Errorf("bounds: got %v, want %v", got, want)
	}
	if !m.Contains(vec.Vec2{X: 12, Y: 12}) {
		t.Error("expected (12, 12) to be inside")
	}
	if m.Contains(vec.Vec2{X: 17, Y: 12}) {
		t.Error("expected (17, 12) to be clipped")
	}
}

func TestSurfaceConcurrent(t *testing.T) {
	s := NewSurface()
	band := lineBand(curve.MonotoneX)
	want := s.Rasterise(band)

	var wg sync.WaitGroup
	errs := make(chan vec.Vec2, 64)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m := s.Bind(band)
			for x := 100.0; x < 210; x += 3 {
				for y := 20.0; y < 80; y += 3 {
					pos := vec.Vec2{X: x, Y: y}
					if m.Contains(pos) != want.Contains(pos) {
						errs <- pos
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for pos := range errs {
		t.Errorf("%v: concurrent result differs", pos)
	}
}

// TestSurfaceFarVertex checks that a path which extends far beyond the
// default clip region is rasterised into a bounded mask.
func TestSurfaceFarVertex(t *testing.T) {
	// band between the lines y = x-10 and y = x+10
	band := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 1e8, Y: 1e8 - 10}).
		LineTo(vec.Vec2{X: 1e8, Y: 1e8 + 10}).
		LineTo(vec.Vec2{X: 10, Y: 20}).
		Close()

	surfaces := []interface{ Rasterise(*path.Data) *Mask }{
		NewSurface(),
		&VectorSurface{Resolution: 1, Threshold: 0.5},
	}
	for _, s := range surfaces {
		m := s.Rasterise(band)

		b := m.Bounds()
		if want := image.Rect(9, -1, 4096, 4096); b != want {
			t.Errorf("%T: bounds: got %v, want %v", s, b, want)
		}
		if !m.Contains(vec.Vec2{X: 100, Y: 100}) {
			t.Errorf("%T: expected (100, 100) to be inside", s)
		}
		if !m.Contains(vec.Vec2{X: 4000, Y: 4002}) {
			t.Errorf("%T: expected (4000, 4002) to be inside", s)
		}
		if m.Contains(vec.Vec2{X: 100, Y: 120}) {
			t.Errorf("%T: expected (100, 120) to be outside", s)
		}
		if m.Contains(vec.Vec2{X: 5000, Y: 5000}) {
			t.Errorf("%T: expected (5000, 5000) to be outside the mask", s)
		}
	}
}

func TestSurfaceMaxPixels(t *testing.T) {
	s := NewSurface()
	s.Clip = rect.Rect{LLx: 0, LLy: 0, URx: 100_000, URy: 100_000}
	m := s.Rasterise(square(&path.Data{}, 0, 0, 100_000, 100_000))

	b := m.Bounds()
	if got := b.Dx() * b.Dy(); got > MaxPixels {
		t.Errorf("mask has %d pixels, more than %d", got, MaxPixels)
	}
	if want := image.Rect(0, 0, 100_000, MaxPixels/100_000); b != want {
		t.Errorf("bounds: got %v, want %v", b, want)
	}
	if !m.Contains(vec.Vec2{X: 50_000, Y: 10}) {
		t.Error("expected (50000, 10) to be inside")
	}
	if m.Contains(vec.Vec2{X: 50_000, Y: 50_000}) {
		t.Error("expected (50000, 50000) to be cut off")
	}
}

// TestRasteriserLongEdge uses an almost horizontal edge which spans many
// more pixels than the clip rectangle.
func TestRasteriserLongEdge(t *testing.T) {
	wedge := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 1e9, Y: 1}).
		LineTo(vec.Vec2{X: 0, Y: 2}).
		Close()

	r := NewRasteriser(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 2})
	coverage := make([][]float32, 2)
	for y := range coverage {
		coverage[y] = make([]float32, 10)
	}
	r.Fill(wedge, NonZero, func(y, xMin int, cov []float32) {
		copy(coverage[y][xMin:], cov)
	})

	for y := range 2 {
		for x := range 10 {
			if got := coverage[y][x]; math.Abs(float64(got)-1) > 1e-3 {
				t.Errorf("pixel (%d, %d): expected coverage 1, got %.4f", x, y, got)
			}
		}
	}
}
