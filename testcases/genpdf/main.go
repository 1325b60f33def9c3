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

// Command genpdf draws every hit testing scenario to a PDF file.
// Hit regions are shown in light gray, series lines in dark gray.  Probes
// which hit a point are drawn as black crosses, other probes in gray.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/curve"
	"seehuhn.de/go/chart/hittest"
	"seehuhn.de/go/chart/raster"
	"seehuhn.de/go/chart/shape"
	"seehuhn.de/go/chart/testcases"
)

const outDir = "testdata/pdf"

// minPageWidth is the minimal page width in points.  Smaller scenarios are
// scaled up.
const minPageWidth = 300

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	scale := max(1, minPageWidth/float64(tc.Width))
	w := float64(tc.Width) * scale
	h := float64(tc.Height) * scale

	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; chart coordinates start top-left.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, h})

	drawPath := func(p *path.Data) {
		for cmd, pts := range p.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	// hit regions
	page.SetFillColor(color.DeviceGray(0.85))
	page.SetStrokeColor(color.DeviceGray(0.3))
	page.SetLineWidth(1 / scale)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	switch s := tc.Series.(type) {
	case testcases.Bars:
		for _, b := range s {
			page.Rectangle(b.X, min(b.Y, b.Y1), b.Width, math.Abs(b.Y1-b.Y))
		}
		page.Fill()
	case testcases.Scatter:
		for _, p := range s {
			drawPath(circle(vec.Vec2{X: p.X, Y: p.Y}, shape.MarkerRadius))
		}
		page.Fill()
		for _, p := range s {
			drawPath(cross(vec.Vec2{X: p.X, Y: p.Y}, 1))
		}
		page.Stroke()
	case testcases.Pie:
		for _, p := range s {
			drawPath(sector(p))
		}
		page.Fill()
		for _, p := range s {
			drawPath(sector(p))
		}
		page.Stroke()
	case testcases.Line, testcases.Spline, testcases.Area:
		drawPath(band(tc))
		page.Fill()
		drawPath(seriesLine(tc.Series))
		page.Stroke()

		page.SetStrokeColor(color.DeviceGray(0.6))
		for _, v := range vertices(tc.Series) {
			drawPath(circle(v, shape.VertexRadius))
		}
		page.Stroke()
	}

	// probes
	surface := raster.NewSurface()
	surface.Clip = tc.Canvas()
	ht := tc.Tester(surface)
	page.SetLineWidth(1.5 / scale)
	for _, hit := range []bool{false, true} {
		n := 0
		for _, probe := range tc.Probes {
			if (ht.HitTest(probe.Pos) != nil) != hit {
				continue
			}
			drawPath(cross(probe.Pos, 3/scale))
			n++
		}
		if n == 0 {
			continue
		}
		if hit {
			page.SetStrokeColor(color.DeviceGray(0))
		} else {
			page.SetStrokeColor(color.DeviceGray(0.5))
		}
		page.Stroke()
	}

	return page.Close()
}

// band returns the outline which the hit tester binds for a continuous
// series.
func band(tc testcases.TestCase) *path.Data {
	res := &path.Data{}
	capture := chart.SurfaceFunc(func(p *path.Data) chart.Membership {
		res = p
		return chart.MembershipFunc(func(vec.Vec2) bool { return false })
	})
	tc.Tester(capture)
	return res
}

func seriesLine(s testcases.Series) *path.Data {
	c := curve.Linear
	if _, ok := s.(testcases.Spline); ok {
		c = curve.MonotoneX
	}
	return c.AppendTo(&path.Data{}, vertices(s), false)
}

func vertices(s testcases.Series) []vec.Vec2 {
	var res []vec.Vec2
	switch s := s.(type) {
	case testcases.Line:
		for _, p := range s {
			res = append(res, vec.Vec2{X: p.X, Y: p.Y})
		}
	case testcases.Spline:
		for _, p := range s {
			res = append(res, vec.Vec2{X: p.X, Y: p.Y})
		}
	case testcases.Area:
		for _, p := range s {
			res = append(res, vec.Vec2{X: p.X, Y: p.Y})
		}
	}
	return res
}

// cross returns a diagonal cross of the given half size.
func cross(c vec.Vec2, size float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: c.X - size, Y: c.Y - size}).
		LineTo(vec.Vec2{X: c.X + size, Y: c.Y + size}).
		MoveTo(vec.Vec2{X: c.X - size, Y: c.Y + size}).
		LineTo(vec.Vec2{X: c.X + size, Y: c.Y - size})
}

func circle(c vec.Vec2, r float64) *path.Data {
	p := (&path.Data{}).MoveTo(polar(c, r, 0))
	return arc(p, c, r, 0, 2*math.Pi).Close()
}

func sector(p hittest.PiePoint) *path.Data {
	c := vec.Vec2{X: p.X, Y: p.Y}
	res := (&path.Data{}).MoveTo(polar(c, p.OuterRadius, p.StartAngle))
	res = arc(res, c, p.OuterRadius, p.StartAngle, p.EndAngle)
	if p.InnerRadius > 0 {
		res = res.LineTo(polar(c, p.InnerRadius, p.EndAngle))
		res = arc(res, c, p.InnerRadius, p.EndAngle, p.StartAngle)
	} else {
		res = res.LineTo(c)
	}
	return res.Close()
}

// arc appends a circular arc from angle a0 to a1, using the pie angle
// convention, to p.  The current point of p must be at angle a0.
func arc(p *path.Data, c vec.Vec2, r, a0, a1 float64) *path.Data {
	n := int(math.Ceil(math.Abs(a1-a0) / (math.Pi / 2)))
	step := (a1 - a0) / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * r
	for i := range n {
		s := a0 + float64(i)*step
		e := s + step
		p0, p3 := polar(c, r, s), polar(c, r, e)
		p = p.CubeTo(
			vec.Vec2{X: p0.X + k*math.Cos(s), Y: p0.Y + k*math.Sin(s)},
			vec.Vec2{X: p3.X - k*math.Cos(e), Y: p3.Y - k*math.Sin(e)},
			p3)
	}
	return p
}

func polar(c vec.Vec2, r, angle float64) vec.Vec2 {
	return vec.Vec2{X: c.X + r*math.Sin(angle), Y: c.Y - r*math.Cos(angle)}
}
