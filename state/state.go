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

// Package state attaches interaction states, like "hovered" or "selected",
// to chart series and their points.
//
// Series and points are treated as immutable values.  [ChangeSeriesState]
// returns a new version of a series list in which only the changed series
// and points are new objects.  Everything else keeps its identity, so that
// a renderer can compare pointers to find out what needs to be redrawn.
package state

import (
	"reflect"

	"seehuhn.de/go/chart"
)

// State is an application defined interaction state.
// The empty string means that no state is set.
type State string

// Commonly used states.
const (
	None     State = ""
	Hovered  State = "hovered"
	Selected State = "selected"
)

// Point is a single datum of a series.
type Point struct {
	// Index identifies the point within its series.  The value must be
	// comparable.  It need not be numeric or sequential.
	Index any

	Argument any
	Value    any

	State State
}

// Series is a named sequence of points.
type Series struct {
	Name   string
	Kind   string // "bar", "line", "pie", ...
	State  State
	Points []*Point
}

// Match selects a series, or a single point of a series, for a state
// change.  If Point is nil, only the state of the series is changed.
type Match struct {
	Series string
	Point  any
}

// PointMatches returns one match for each of the given point indices.
// The indices are typically taken from a hit test result.
func PointMatches(series string, indices []any) []Match {
	res := make([]Match, len(indices))
	for i, idx := range indices {
		res[i] = Match{Series: series, Point: idx}
	}
	return res
}

// ChangeSeriesState returns a version of list in which the matched series
// and points have state s.
//
// Series without a match are returned unchanged.  Matched series are
// replaced by copies with the new state.  Within a matched series, only
// the matched points are copied, all other points are shared with the
// original.  If nothing matches, list itself is returned.  The input is
// never modified.
//
// Matches for unknown series or points are ignored, as are matches with
// a point index which is not comparable.
func ChangeSeriesState(list []*Series, matches []Match, s State) []*Series {
	byName := make(map[string]map[any]bool, len(matches))
	for _, m := range matches {
		points, ok := byName[m.Series]
		if !ok {
			points = make(map[any]bool)
			byName[m.Series] = points
		}
		if m.Point == nil {
			continue
		}
		if !hashable(m.Point) {
			chart.Logger().Debug("ignoring match with non-comparable point index",
				"series", m.Series, "type", reflect.TypeOf(m.Point).String())
			continue
		}
		points[m.Point] = true
	}

	var res []*Series
	for i, series := range list {
		var points map[any]bool
		ok := false
		if series != nil {
			points, ok = byName[series.Name]
		}
		if !ok {
			if res != nil {
				res[i] = series
			}
			continue
		}
		if res == nil {
			res = make([]*Series, len(list))
			copy(res, list[:i])
		}
		res[i] = series.withState(s, points)
	}
	if res == nil {
		return list
	}
	return res
}

func (series *Series) withState(s State, points map[any]bool) *Series {
	changed := *series
	changed.State = s
	if series.Points != nil {
		changed.Points = make([]*Point, len(series.Points))
	}
	for j, p := range series.Points {
		if p != nil && len(points) > 0 && hashable(p.Index) && points[p.Index] {
			q := *p
			q.State = s
			changed.Points[j] = &q
		} else {
			changed.Points[j] = p
		}
	}
	return &changed
}

// hashable reports whether v can be used as a map key.
func hashable(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}
