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

package state

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeries() []*Series {
	return []*Series{
		{Name: "s1", Points: []*Point{}},
		{Name: "s2", Points: []*Point{}},
		{Name: "s3", Points: []*Point{{Index: 1}, {Index: 3}}},
		{Name: "s4", Points: []*Point{{Index: 2}, {Index: 5}, {Index: 6}}},
	}
}

// clone returns a deep copy, for checking that the input is not modified.
func clone(list []*Series) []*Series {
	res := make([]*Series, len(list))
	for i, s := range list {
		c := *s
		c.Points = make([]*Point, len(s.Points))
		for j, p := range s.Points {
			q := *p
			c.Points[j] = &q
		}
		res[i] = &c
	}
	return res
}

func TestChangeSeriesState(t *testing.T) {
	list := testSeries()
	before := clone(list)

	res := ChangeSeriesState(list, []Match{
		{Series: "s3", Point: 3},
		{Series: "s4", Point: 5},
		{Series: "s4", Point: 2},
	}, "test-state")
	require.Len(t, res, 4)

	assert.Same(t, list[0], res[0])
	assert.Same(t, list[1], res[1])

	assert.Equal(t, &Series{
		Name:  "s3",
		State: "test-state",
		Points: []*Point{
			{Index: 1},
			{Index: 3, State: "test-state"},
		},
	}, res[2])
	assert.Same(t, list[2].Points[0], res[2].Points[0])
	assert.NotSame(t, list[2].Points[1], res[2].Points[1])

	assert.Equal(t, &Series{
		Name:  "s4",
		State: "test-state",
		Points: []*Point{
			{Index: 2, State: "test-state"},
			{Index: 5, State: "test-state"},
			{Index: 6},
		},
	}, res[3])
	assert.Same(t, list[3].Points[2], res[3].Points[2])

	assert.Equal(t, before, list, "input was modified")
}

func TestChangeSeriesStateNoMatches(t *testing.T) {
	list := testSeries()

	res := ChangeSeriesState(list, []Match{
		{Series: "s5"},
		{Series: "s6", Point: 3},
		{Series: "s0", Point: 0},
	}, "test-state")
	assert.Same(t, &list[0], &res[0], "expected the same slice")

	res = ChangeSeriesState(list, nil, "test-state")
	assert.Same(t, &list[0], &res[0], "expected the same slice")
}

func TestChangeSeriesStateSeriesOnly(t *testing.T) {
	list := testSeries()

	res := ChangeSeriesState(list, []Match{{Series: "s4"}}, Selected)
	require.NotSame(t, list[3], res[3])
	assert.Equal(t, Selected, res[3].State)
	assert.Equal(t, None, list[3].State)
	for j := range list[3].Points {
		assert.Same(t, list[3].Points[j], res[3].Points[j])
	}
	for i := range 3 {
		assert.Same(t, list[i], res[i])
	}
}

func TestChangeSeriesStateUnknownPoint(t *testing.T) {
	list := testSeries()

	res := ChangeSeriesState(list, []Match{{Series: "s3", Point: 99}}, Hovered)
	assert.Equal(t, Hovered, res[2].State)
	assert.Same(t, list[2].Points[0], res[2].Points[0])
	assert.Same(t, list[2].Points[1], res[2].Points[1])
}

func TestChangeSeriesStateIdempotent(t *testing.T) {
	matches := []Match{{Series: "s3", Point: 1}, {Series: "s4"}}

	once := ChangeSeriesState(testSeries(), matches, Hovered)
	twice := ChangeSeriesState(once, matches, Hovered)
	assert.Equal(t, once, twice)
}

func TestChangeSeriesStateNonComparable(t *testing.T) {
	list := testSeries()

	res := ChangeSeriesState(list, []Match{{Series: "s3", Point: []int{1}}}, Hovered)
	assert.Equal(t, Hovered, res[2].State)
	assert.Same(t, list[2].Points[0], res[2].Points[0])

	list[2].Points[0].Index = map[string]int{}
	assert.NotPanics(t, func() {
		ChangeSeriesState(list, []Match{{Series: "s3", Point: 3}}, Hovered)
	})
}

func TestChangeSeriesStateIndexTypes(t *testing.T) {
	type key struct{ a, b int }
	list := []*Series{{Name: "s", Points: []*Point{
		{Index: "x"},
		{Index: key{1, 2}},
		{Index: 1.5},
	}}}

	res := ChangeSeriesState(list, []Match{
		{Series: "s", Point: key{1, 2}},
		{Series: "s", Point: "x"},
	}, Selected)
	assert.Equal(t, Selected, res[0].Points[0].State)
	assert.Equal(t, Selected, res[0].Points[1].State)
	assert.Same(t, list[0].Points[2], res[0].Points[2])
}

func TestPointMatches(t *testing.T) {
	assert.Equal(t, []Match{
		{Series: "s", Point: "a"},
		{Series: "s", Point: 7},
	}, PointMatches("s", []any{"a", 7}))
	assert.Empty(t, PointMatches("s", nil))
}

func TestDecodeMatches(t *testing.T) {
	in := `[{"series": "s3", "point": 3}, {"series": "s4", "point": "p1"},
		{"series": "s1"}, {"series": "s2", "point": 2.5}, {"series": "s5", "point": null},
		{"series": 12, "point": -1}]`
	var raw []map[string]any
	require.NoError(t, json.Unmarshal([]byte(in), &raw))

	matches, err := DecodeMatches(raw)
	require.NoError(t, err)
	assert.Equal(t, []Match{
		{Series: "s3", Point: 3},
		{Series: "s4", Point: "p1"},
		{Series: "s1"},
		{Series: "s2", Point: 2.5},
		{Series: "s5"},
		{Series: "12", Point: -1},
	}, matches)

	// The decoded matches select the same points as typed ones.
	res := ChangeSeriesState(testSeries(), matches, Hovered)
	assert.Equal(t, Hovered, res[2].Points[1].State)
	assert.Equal(t, None, res[2].Points[0].State)
}

func TestDecodeMatchesNumber(t *testing.T) {
	dec := json.NewDecoder(strings.NewReader(`[{"series": "n", "point": 5}, {"series": "x", "point": 0.25}]`))
	dec.UseNumber()
	var raw []map[string]any
	require.NoError(t, dec.Decode(&raw))

	matches, err := DecodeMatches(raw)
	require.NoError(t, err)
	assert.Equal(t, []Match{{Series: "n", Point: 5}, {Series: "x", Point: 0.25}}, matches)
}

func TestDecodeMatchesInvalid(t *testing.T) {
	cases := [][]map[string]any{
		{{"point": 1}},
		{{"series": []string{"a"}}},
		{{"series": "s", "point": []int{1}}},
		{{"series": "s", "point": json.Number("1e")}},
	}
	for _, raw := range cases {
		_, err := DecodeMatches(raw)
		assert.ErrorIs(t, err, ErrInvalidMatch, "input %v", raw)
	}
}

func TestNormalizeIndex(t *testing.T) {
	cases := []struct {
		in   any
		want any
	}{
		{float64(3), 3},
		{float32(-2), -2},
		{1.5, 1.5},
		{int64(7), 7},
		{uint8(9), 9},
		{json.Number("42"), 42},
		{json.Number("4.5"), 4.5},
		{"3", "3"},
		{true, true},
	}
	for _, tc := range cases {
		got, err := NormalizeIndex(tc.in)
		require.NoError(t, err, "input %v", tc.in)
		assert.Equal(t, tc.want, got, "input %v (%T)", tc.in, tc.in)
	}
}
