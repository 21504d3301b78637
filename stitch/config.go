// threadcraft/digitizer - an embroidery digitization core
// Copyright (C) 2026 The Threadcraft Authors
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

package stitch

import "fmt"

// ProcessingConfig bundles the recognised options from the upstream
// digitization request. Fields not consumed by the core (DesignStyle,
// WidthMM, ColorCount) are still carried so callers can build one options
// struct for the whole pipeline, upstream and core alike.
type ProcessingConfig struct {
	DesignStyle        DesignStyle
	WidthMM            float64
	StitchType         StitchType
	DensityMM          float64
	SatinColumnWidthMM float64
	PullCompensationMM float64
	EnableUnderlay     bool
	TatamiAngleDeg     float64
	MaxStitchLengthMM  float64
	MinStitchLengthMM  float64
	TrimJumpDistanceMM float64
	ColorCount         int
}

// Defaults used when a length field is non-positive, per this module's
// generator-local fallback rules.
const (
	DefaultRunningMaxStitchLengthMM = 2.5
	DefaultSatinMaxStitchLengthMM   = 7.0
	DefaultTatamiMaxStitchLengthMM  = 7.0
)

// Validate surfaces ErrConfigOutOfRange for the config fields whose
// out-of-range values the pipeline cannot silently work around:
// density_mm and satin_column_width_mm (only when satin is selected).
// max_stitch_length_mm is deliberately not checked here: a non-positive
// value falls back to a generator-specific default (see
// RunningMaxStitchLengthMM et al.), it is not an error.
func (c ProcessingConfig) Validate() error {
	if c.DensityMM <= 0 {
		return fmt.Errorf("density_mm %v: %w", c.DensityMM, ErrConfigOutOfRange)
	}
	if c.StitchType == StitchTypeSatin && c.SatinColumnWidthMM <= 0 {
		return fmt.Errorf("satin_column_width_mm %v: %w", c.SatinColumnWidthMM, ErrConfigOutOfRange)
	}
	return nil
}

// RunningMaxStitchLengthMM returns MaxStitchLengthMM, defaulting to
// DefaultRunningMaxStitchLengthMM when non-positive.
func (c ProcessingConfig) RunningMaxStitchLengthMM() float64 {
	if c.MaxStitchLengthMM > 0 {
		return c.MaxStitchLengthMM
	}
	return DefaultRunningMaxStitchLengthMM
}

// SatinMaxStitchLengthMM returns MaxStitchLengthMM, defaulting to
// DefaultSatinMaxStitchLengthMM when non-positive.
func (c ProcessingConfig) SatinMaxStitchLengthMM() float64 {
	if c.MaxStitchLengthMM > 0 {
		return c.MaxStitchLengthMM
	}
	return DefaultSatinMaxStitchLengthMM
}

// TatamiMaxStitchLengthMM returns MaxStitchLengthMM, defaulting to
// DefaultTatamiMaxStitchLengthMM when non-positive.
func (c ProcessingConfig) TatamiMaxStitchLengthMM() float64 {
	if c.MaxStitchLengthMM > 0 {
		return c.MaxStitchLengthMM
	}
	return DefaultTatamiMaxStitchLengthMM
}
