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

package hittest

import (
	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/curve"
)

// Option configures a hit tester during construction.
//
// Example:
//
//	cfg, err := chart.ConfigFromEnv("CHART")
//	...
//	t := hittest.NewScatterHitTester(points, hittest.WithConfig(cfg))
type Option func(*options)

type options struct {
	markerRadius  float64
	vertexRadius  float64
	lineTolerance float64
	curve         curve.Curve
}

func defaultOptions() options {
	cfg := chart.DefaultConfig()
	return options{
		markerRadius:  cfg.MarkerRadius,
		vertexRadius:  cfg.VertexRadius,
		lineTolerance: cfg.LineTolerance,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithConfig takes the hit radii and the line tolerance from cfg.
// The rasterisation settings of cfg are used by the [chart.Surface], not
// by the hit testers.
func WithConfig(cfg chart.Config) Option {
	return func(o *options) {
		o.markerRadius = cfg.MarkerRadius
		o.vertexRadius = cfg.VertexRadius
		o.lineTolerance = cfg.LineTolerance
	}
}

// WithMarkerRadius sets the hit radius of scatter markers.
func WithMarkerRadius(r float64) Option {
	return func(o *options) {
		o.markerRadius = r
	}
}

// WithVertexRadius sets the hit radius around the vertices of line,
// spline and area series.
func WithVertexRadius(r float64) Option {
	return func(o *options) {
		o.vertexRadius = r
	}
}

// WithLineTolerance sets half the height of the band around lines and
// splines which is used when the pointer is between two vertices.
func WithLineTolerance(tol float64) Option {
	return func(o *options) {
		o.lineTolerance = tol
	}
}

// WithCurve sets the curve used to connect the vertices of line, spline
// and area series.  Lines and areas use [curve.Linear] by default, splines
// use [curve.MonotoneX].
func WithCurve(c curve.Curve) Option {
	return func(o *options) {
		o.curve = c
	}
}
