// Package chart answers which data points of a rendered chart sit under a
// pointer coordinate, and propagates interaction states onto the matched
// series and points.
//
// The work is split over several packages:
//
//   - [seehuhn.de/go/chart/shape] computes normalized distances for
//     rectangles, circles and annular sectors.
//   - [seehuhn.de/go/chart/hittest] implements the hit testers for bar,
//     scatter, pie, line, spline and area series.
//   - [seehuhn.de/go/chart/raster] rasterises the band of a continuous
//     series, so that hits between two vertices can be detected.
//   - [seehuhn.de/go/chart/state] applies an interaction state to a
//     series collection, sharing all unchanged objects with the input.
//
// A normalized distance is 0 at the center of a shape and 1 on its
// boundary.  All hit testers report the points with distance at most 1,
// in series order.
//
// This package holds the configuration and the logger shared by the
// sub-packages.
package chart

//go:generate go run ./testcases/export
