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

// Package raster decides whether a position lies inside a rendered path.
//
// The path of a series is rasterised once into a coverage [Mask].
// Afterwards each membership query is a single pixel lookup.  Two
// backends are available: [Surface] uses the scanline [Rasteriser] from
// this package, [VectorSurface] uses golang.org/x/image/vector.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FillRule selects how the interior of a self-overlapping path is
// determined.
type FillRule int

// These are the supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// segment is a non-horizontal line segment in device coordinates.
type segment struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // inverse slope
}

func (s *segment) top() float64    { return min(s.y0, s.y1) }
func (s *segment) bottom() float64 { return max(s.y0, s.y1) }

// xAt returns the x coordinate of the segment's line at height y.
func (s *segment) xAt(y float64) float64 {
	return s.x0 + s.dxdy*(y-s.y0)
}

// Rasteriser computes anti-aliased pixel coverage for filled paths.
//
// A Rasteriser keeps its work buffers between calls, so that filling many
// paths does not allocate once the buffers have grown.  A Rasteriser must
// not be used concurrently.
type Rasteriser struct {
	// CTM maps path coordinates to device pixels.
	// It must be non-singular.
	CTM matrix.Matrix

	// Clip is the device region where coverage is computed.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments used to approximate it.  Must be > 0.
	Flatness float64

	segs      []segment
	active    []int
	cover     []float32 // signed height of segments crossing each pixel
	area      []float32 // cover, weighted by the uncovered part of the pixel
	crossings []float64

	haveBBox           bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, using
// the identity transformation and the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset prepares the Rasteriser for a new clip rectangle and restores the
// default settings.  The buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness

	r.segs = r.segs[:0]
	r.active = r.active[:0]
	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.crossings = r.crossings[:0]
}

// Fill rasterises the interior of p.
//
// Coverage values in [0, 1] are passed to emit one scanline at a time, for
// the pixels xMin, xMin+1, ... on row y.  Pixels outside the reported
// ranges have zero coverage.  The coverage slice is only valid until emit
// returns.
func (r *Rasteriser) Fill(p *path.Data, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.flatten(p)
	if !ok {
		return
	}
	r.scan(xMin, xMax, yMin, yMax, rule, emit)
}

// flatten converts p into device space line segments and returns the
// pixel range touched by them, clipped to r.Clip.
func (r *Rasteriser) flatten(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.segs = r.segs[:0]
	r.haveBBox = false

	var current, subpathStart vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != subpathStart {
				r.addSegment(current, subpathStart)
			}
			current = p.Coords[k]
			subpathStart = current
			k++
		case path.CmdLineTo:
			r.addSegment(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != subpathStart {
				r.addSegment(current, subpathStart)
			}
			current = subpathStart
		}
	}

	// Filling closes open subpaths implicitly.
	if current != subpathStart {
		r.addSegment(current, subpathStart)
	}

	if !r.haveBBox {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

func (r *Rasteriser) toDevice(v vec.Vec2) (x, y float64) {
	m := r.CTM
	return m[0]*v.X + m[2]*v.Y + m[4], m[1]*v.X + m[3]*v.Y + m[5]
}

// deviceLength returns the length of the vector v after applying the
// linear part of the CTM.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

// addSegment records the segment from a to b, given in path coordinates.
func (r *Rasteriser) addSegment(a, b vec.Vec2) {
	x0, y0 := r.toDevice(a)
	x1, y1 := r.toDevice(b)

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return // horizontal segments do not change the winding number
	}
	r.segs = append(r.segs, segment{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})

	if !r.haveBBox {
		r.bboxXMin, r.bboxXMax = x0, x0
		r.bboxYMin, r.bboxYMax = y0, y0
		r.haveBBox = true
	}
	r.bboxXMin = min(r.bboxXMin, x0, x1)
	r.bboxXMax = max(r.bboxXMax, x0, x1)
	r.bboxYMin = min(r.bboxYMin, y0, y1)
	r.bboxYMax = max(r.bboxYMax, y0, y1)
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// The maximal distance between the curve and its chord is |p0-2p1+p2|/4.
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addSegment(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, ..., p3 by line
// segments.  The number of segments is given by Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1, d2); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addSegment(prev, pt)
		prev = pt
	}
}

// scan walks the scanlines yMin, ..., yMax-1, keeping a list of the
// segments which intersect the current scanline.
//
// Coverage is computed by the signed area method: every segment adds its
// signed height to the pixel it passes through (cover), together with the
// part of that height to the right of the segment within the pixel (area).
// A running sum of cover over each row then gives the winding number
// carried into the next pixel.
func (r *Rasteriser) scan(xMin, xMax, yMin, yMax int, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.segs, func(a, b segment) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		for next < len(r.segs) && r.segs[next].top() < yBot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			s := &r.segs[r.active[i]]
			if s.bottom() <= yTop {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(s, yTop, yBot, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of s within the scanline [yTop, yBot)
// to the cover and area buffers.  It reports whether anything was added.
func (r *Rasteriser) accumulate(s *segment, yTop, yBot float64, xMin, xMax int) bool {
	yTop = max(yTop, s.top())
	yBot = min(yBot, s.bottom())
	if yBot <= yTop {
		return false
	}

	var sign float32 = 1
	if s.y1 < s.y0 {
		sign = -1
	}

	xa, xb := s.xAt(yTop), s.xAt(yBot)
	pixLeft := int(math.Floor(min(xa, xb)))
	pixRight := int(math.Floor(max(xa, xb)))

	if pixLeft >= xMax {
		return false
	}
	if pixLeft == pixRight || pixRight < xMin {
		r.addPiece(s, yTop, yBot, sign, xMin, xMax)
		return true
	}

	// Split the segment where it crosses vertical pixel boundaries.
	// Pieces left of xMin all add to the first pixel and pieces right of
	// xMax are dropped, so only boundaries inside the clip matter.
	r.crossings = append(r.crossings[:0], yTop, yBot)
	for x := max(pixLeft+1, xMin); x <= min(pixRight, xMax); x++ {
		yx := s.y0 + (float64(x)-s.x0)/s.dxdy
		if yx > yTop && yx < yBot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)
	for i := range len(r.crossings) - 1 {
		r.addPiece(s, r.crossings[i], r.crossings[i+1], sign, xMin, xMax)
	}
	return true
}

// addPiece adds the part of s between heights y0 and y1, which must lie
// within a single pixel column.
func (r *Rasteriser) addPiece(s *segment, y0, y1 float64, sign float32, xMin, xMax int) {
	h := sign * float32(y1-y0)
	if h == 0 {
		return
	}

	xMid := s.xAt((y0 + y1) / 2)
	pix := int(math.Floor(xMid))
	switch {
	case pix < xMin:
		// Left of the clip region: the whole pixel row to the right
		// is affected.
		r.cover[0] += h
		r.area[0] += h
	case pix < xMax:
		i := pix - xMin
		r.cover[i] += h
		r.area[i] += h * float32(1-(xMid-float64(pix)))
	}
}

// integrate turns the accumulated cover and area values of one row into
// coverage values, in place.
func integrate(cover, area []float32, rule FillRule) {
	var winding float32
	for i := range cover {
		w := winding + area[i]
		winding += cover[i]
		if w < 0 {
			w = -w
		}

		switch rule {
		case EvenOdd:
			w -= 2 * float32(int(w/2))
			if w > 1 {
				w = 2 - w
			}
		default:
			w = min(w, 1)
		}
		cover[i] = w
	}
}

// trimZeros returns the part of row between the first and the last
// non-zero value, together with its offset.  If all values are zero,
// nil is returned.
func trimZeros(row []float32) ([]float32, int) {
	lo := 0
	for lo < len(row) && row[lo] == 0 {
		lo++
	}
	if lo == len(row) {
		return nil, 0
	}
	hi := len(row)
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum height of a segment in
	// device pixels.  Flatter segments are ignored.
	horizontalEdgeThreshold = 1e-10
)
