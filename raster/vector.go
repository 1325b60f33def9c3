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
	"image/draw"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/chart"
)

// VectorSurface rasterises paths using golang.org/x/image/vector.
// Only the nonzero fill rule is supported.
//
// A VectorSurface can be used concurrently.
type VectorSurface struct {
	// Resolution is the number of device pixels per unit of path
	// coordinates.  Must be > 0.
	Resolution float64

	// Threshold is the minimal coverage, in (0, 1], for a pixel to count
	// as inside the path.
	Threshold float64

	// Clip limits the rasterised region, in path coordinates.  If Clip is
	// empty, [DefaultClip] is used.
	Clip rect.Rect
}

// NewVectorSurface returns a VectorSurface which uses the settings from cfg.
func NewVectorSurface(cfg chart.Config) *VectorSurface {
	return &VectorSurface{
		Resolution: cfg.Resolution,
		Threshold:  cfg.Threshold,
	}
}

// Bind rasterises p and returns the resulting mask.
// This implements the [chart.Surface] interface.
func (s *VectorSurface) Bind(p *path.Data) chart.Membership {
	return s.Rasterise(p)
}

// Rasterise computes the coverage mask of p.
func (s *VectorSurface) Rasterise(p *path.Data) *Mask {
	res := s.Resolution
	if !(res > 0) {
		res = 1
	}
	ctm := matrix.Matrix{res, 0, 0, res, 0, 0}
	bounds := deviceBounds(p, ctm, deviceClip(s.Clip, ctm))
	m := &Mask{
		img:       image.NewAlpha(bounds),
		ctm:       ctm,
		threshold: alphaThreshold(s.Threshold),
	}
	if bounds.Empty() {
		return m
	}

	// The rasterizer works in coordinates relative to bounds.Min.
	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	pt := func(k int) (float32, float32) {
		v := p.Coords[k]
		x := ctm[0]*v.X + ctm[2]*v.Y + ctm[4]
		y := ctm[1]*v.X + ctm[3]*v.Y + ctm[5]
		return float32(x - ox), float32(y - oy)
	}

	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Src
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(pt(k))
			k++
		case path.CmdLineTo:
			z.LineTo(pt(k))
			k++
		case path.CmdQuadTo:
			bx, by := pt(k)
			cx, cy := pt(k + 1)
			z.QuadTo(bx, by, cx, cy)
			k += 2
		case path.CmdCubeTo:
			bx, by := pt(k)
			cx, cy := pt(k + 1)
			dx, dy := pt(k + 2)
			z.CubeTo(bx, by, cx, cy, dx, dy)
			k += 3
		case path.CmdClose:
			z.ClosePath()
		}
	}
	z.ClosePath()
	z.Draw(m.img, bounds, image.Opaque, image.Point{})

	return m
}
