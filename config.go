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

package chart

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) when a [Config] fails validation.
var ErrInvalidConfig = errors.New("invalid chart config")

// Config holds the tolerances used for hit testing.
// All lengths are in pixels.
type Config struct {
	// MarkerRadius is the hit radius around scatter markers.
	MarkerRadius float64 `yaml:"marker_radius" envconfig:"MARKER_RADIUS" default:"10"`

	// VertexRadius is the hit radius around the vertices of line, spline
	// and area series.
	VertexRadius float64 `yaml:"vertex_radius" envconfig:"VERTEX_RADIUS" default:"20"`

	// LineTolerance is half the height of the band around a line or
	// spline which counts as a hit between two vertices.
	LineTolerance float64 `yaml:"line_tolerance" envconfig:"LINE_TOLERANCE" default:"10"`

	// Flatness is the curve flattening tolerance used when rasterising
	// series bands, in device pixels.
	Flatness float64 `yaml:"flatness" envconfig:"FLATNESS" default:"0.25"`

	// Resolution is the number of device pixels per chart pixel used when
	// rasterising series bands.
	Resolution float64 `yaml:"resolution" envconfig:"RESOLUTION" default:"1"`

	// Threshold is the minimum pixel coverage, in [0, 1], for a position
	// to count as inside a rasterised band.
	Threshold float64 `yaml:"threshold" envconfig:"THRESHOLD" default:"0.5"`
}

// DefaultConfig returns the tolerances used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		MarkerRadius:  10,
		VertexRadius:  20,
		LineTolerance: 10,
		Flatness:      0.25,
		Resolution:    1,
		Threshold:     0.5,
	}
}

// LoadConfig reads a YAML configuration.  Fields missing from the input
// keep their default values.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding chart config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigFromEnv reads the configuration from environment variables.
// With prefix "CHART", the marker radius is read from CHART_MARKER_RADIUS
// and so on.  Unset variables take their default values.
func ConfigFromEnv(prefix string) (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("reading chart config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that all tolerances are usable.
func (c Config) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"marker_radius", c.MarkerRadius},
		{"vertex_radius", c.VertexRadius},
		{"flatness", c.Flatness},
		{"resolution", c.Resolution},
	}
	for _, f := range positive {
		if !(f.val > 0) || math.IsInf(f.val, 0) {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidConfig, f.name, f.val)
		}
	}
	if !(c.LineTolerance >= 0) || math.IsInf(c.LineTolerance, 0) {
		return fmt.Errorf("%w: line_tolerance must be non-negative, got %g", ErrInvalidConfig, c.LineTolerance)
	}
	if !(c.Threshold > 0 && c.Threshold <= 1) {
		return fmt.Errorf("%w: threshold must be in (0, 1], got %g", ErrInvalidConfig, c.Threshold)
	}
	return nil
}
