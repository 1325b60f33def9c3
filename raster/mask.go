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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart"
)

// Mask is the rasterised coverage of a path.
// A Mask is immutable and can be queried concurrently.
type Mask struct {
	img       *image.Alpha
	ctm       matrix.Matrix
	threshold uint8
}

// Contains reports whether the pixel containing c is covered by the path.
// Positions outside the rasterised region are never covered.
func (m *Mask) Contains(c vec.Vec2) bool {
	a, ok := m.alphaAt(c)
	return ok && a >= m.threshold
}

// Coverage returns the coverage of the pixel containing c, in [0, 1].
func (m *Mask) Coverage(c vec.Vec2) float64 {
	a, _ := m.alphaAt(c)
	return float64(a) / 255
}

// Bounds returns the rasterised region in device pixels.
func (m *Mask) Bounds() image.Rectangle {
	return m.img.Rect
}

func (m *Mask) alphaAt(c vec.Vec2) (uint8, bool) {
	x := m.ctm[0]*c.X + m.ctm[2]*c.Y + m.ctm[4]
	y := m.ctm[1]*c.X + m.ctm[3]*c.Y + m.ctm[5]
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, false
	}
	// Compare as floats first, to avoid integer overflow for far away
	// positions.
	r := m.img.Rect
	if x < float64(r.Min.X) || x >= float64(r.Max.X) || y < float64(r.Min.Y) || y >= float64(r.Max.Y) {
		return 0, false
	}
	return m.img.AlphaAt(int(math.Floor(x)), int(math.Floor(y))).A, true
}

// DefaultClip is the rasterised region, in path coordinates, used by
// surfaces without a clip rectangle.
var DefaultClip = rect.Rect{LLx: -256, LLy: -256, URx: 4096, URy: 4096}

// MaxPixels is the maximal number of pixels in a mask.  Taller regions are
// cut off at the bottom.
const MaxPixels = 1 << 26

// Surface rasterises paths into coverage masks using a [Rasteriser].
//
// The zero value is not usable; use [NewSurface] or [SurfaceFor].
// A Surface can be used concurrently.
type Surface struct {
	// Resolution is the number of device pixels per unit of path
	// coordinates.  Must be > 0.
	Resolution float64

	// Flatness is the curve flattening tolerance in device pixels.
	// Must be > 0.
	Flatness float64

	// Threshold is the minimal coverage, in (0, 1], for a pixel to count
	// as inside the path.
	Threshold float64

	// Rule is the fill rule used for rasterisation.
	Rule FillRule

	// Clip limits the rasterised region.  The rectangle is given in path
	// coordinates, typically the canvas area.  If Clip is empty,
	// [DefaultClip] is used.  Positions outside the region are never
	// contained in a mask.
	Clip rect.Rect

	pool sync.Pool
}

// NewSurface returns a Surface with the default settings.
func NewSurface() *Surface {
	return SurfaceFor(chart.DefaultConfig())
}

// SurfaceFor returns a Surface which uses the rasterisation settings from
// cfg.
func SurfaceFor(cfg chart.Config) *Surface {
	return &Surface{
		Resolution: cfg.Resolution,
		Flatness:   cfg.Flatness,
		Threshold:  cfg.Threshold,
		Rule:       NonZero,
	}
}

// Bind rasterises p and returns the resulting mask.
// This implements the [chart.Surface] interface.
func (s *Surface) Bind(p *path.Data) chart.Membership {
	return s.Rasterise(p)
}

// Rasterise computes the coverage mask of p.
func (s *Surface) Rasterise(p *path.Data) *Mask {
	ctm := s.ctm()
	bounds := deviceBounds(p, ctm, deviceClip(s.Clip, ctm))
	m := &Mask{
		img:       image.NewAlpha(bounds),
		ctm:       ctm,
		threshold: alphaThreshold(s.Threshold),
	}
	if bounds.Empty() {
		return m
	}

	r, _ := s.pool.Get().(*Rasteriser)
	if r == nil {
		r = &Rasteriser{}
	}
	defer s.pool.Put(r)

	r.Reset(rect.Rect{
		LLx: float64(bounds.Min.X),
		LLy: float64(bounds.Min.Y),
		URx: float64(bounds.Max.X),
		URy: float64(bounds.Max.Y),
	})
	r.CTM = ctm
	if s.Flatness > 0 {
		r.Flatness = s.Flatness
	}

	img := m.img
	r.Fill(p, s.Rule, func(y, xMin int, coverage []float32) {
		row := img.Pix[img.PixOffset(xMin, y):]
		for i, c := range coverage {
			row[i] = uint8(c*255 + 0.5)
		}
	})

	chart.Logger().Debug("rasterised series outline",
		"bounds", bounds, "resolution", s.Resolution, "rule", s.Rule)
	return m
}

func (s *Surface) ctm() matrix.Matrix {
	res := s.Resolution
	if !(res > 0) {
		res = 1
	}
	return matrix.Matrix{res, 0, 0, res, 0, 0}
}

// deviceClip returns the device pixel rectangle covered by c, or by
// DefaultClip if c is empty.
func deviceClip(c rect.Rect, ctm matrix.Matrix) image.Rectangle {
	if !(c.URx > c.LLx && c.URy > c.LLy) {
		c = DefaultClip
	}
	corners := []vec.Vec2{{X: c.LLx, Y: c.LLy}, {X: c.URx, Y: c.URy}}
	return pixelBounds(corners, ctm, 0)
}

// deviceBounds returns the device pixel rectangle which contains the
// control polygon of p, with a margin of one pixel, intersected with clip.
// The result has at most MaxPixels pixels.
func deviceBounds(p *path.Data, ctm matrix.Matrix, clip image.Rectangle) image.Rectangle {
	if len(p.Coords) == 0 {
		return image.Rectangle{}
	}
	b := pixelBounds(p.Coords, ctm, 1).Intersect(clip)
	if w := b.Dx(); w > 0 && b.Dy() > MaxPixels/w {
		chart.Logger().Debug("rasterised region truncated", "bounds", b, "maxPixels", MaxPixels)
		b.Max.Y = b.Min.Y + MaxPixels/w
		if b.Empty() {
			return image.Rectangle{}
		}
	}
	return b
}

func pixelBounds(pts []vec.Vec2, ctm matrix.Matrix, margin int) image.Rectangle {
	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	for _, v := range pts {
		x := ctm[0]*v.X + ctm[2]*v.Y + ctm[4]
		y := ctm[1]*v.X + ctm[3]*v.Y + ctm[5]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		xMin, xMax = min(xMin, x), max(xMax, x)
		yMin, yMax = min(yMin, y), max(yMax, y)
	}
	if xMin > xMax {
		return image.Rectangle{}
	}
	const limit = 1 << 24
	clampInt := func(f float64) int {
		return int(max(-limit, min(limit, f)))
	}
	return image.Rect(
		clampInt(math.Floor(xMin))-margin, clampInt(math.Floor(yMin))-margin,
		clampInt(math.Ceil(xMax))+margin, clampInt(math.Ceil(yMax))+margin)
}

func alphaThreshold(t float64) uint8 {
	if !(t > 0) {
		return 1
	}
	return uint8(min(255, math.Ceil(t*255)))
}
