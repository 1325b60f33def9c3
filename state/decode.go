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
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// ErrInvalidMatch is returned (wrapped) by [DecodeMatches] for entries
// which cannot be turned into a [Match].
var ErrInvalidMatch = errors.New("invalid match")

// DecodeMatches converts loosely typed match requests, for example decoded
// from JSON, into matches.  Each entry must have a "series" key.  The
// optional "point" key gives the point index, which is normalized using
// [NormalizeIndex].
func DecodeMatches(raw []map[string]any) ([]Match, error) {
	res := make([]Match, 0, len(raw))
	for i, entry := range raw {
		name, ok := entry["series"]
		if !ok {
			return nil, fmt.Errorf("match %d: %w: missing series", i, ErrInvalidMatch)
		}
		series, err := cast.ToStringE(name)
		if err != nil {
			return nil, fmt.Errorf("match %d: %w: %w", i, ErrInvalidMatch, err)
		}

		var point any
		if v, ok := entry["point"]; ok && v != nil {
			point, err = NormalizeIndex(v)
			if err != nil {
				return nil, fmt.Errorf("match %d: %w", i, err)
			}
		}
		res = append(res, Match{Series: series, Point: point})
	}
	return res, nil
}

// NormalizeIndex maps numeric point indices to a canonical type, so that
// indices which went through JSON compare equal to the original values.
// Integral numbers become int, other numbers become float64.  Strings and
// other comparable values are returned unchanged.
func NormalizeIndex(v any) (any, error) {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return cast.ToIntE(i)
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: point index %q: %w", ErrInvalidMatch, x, err)
		}
		return normalizeFloat(f), nil
	case float32:
		return normalizeFloat(float64(x)), nil
	case float64:
		return normalizeFloat(x), nil
	case int8, int16, int32, int64, uint8, uint16, uint32, uint64, uint:
		i, err := cast.ToIntE(x)
		if err != nil {
			return nil, fmt.Errorf("%w: point index %v: %w", ErrInvalidMatch, x, err)
		}
		return i, nil
	}
	if !hashable(v) {
		return nil, fmt.Errorf("%w: point index of type %T is not comparable", ErrInvalidMatch, v)
	}
	return v, nil
}

func normalizeFloat(f float64) any {
	if f == math.Trunc(f) && math.Abs(f) <= 1<<53 {
		return int(f)
	}
	return f
}
