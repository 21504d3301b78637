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

import "errors"

var (
	// ErrInvalidInput indicates a generator received a polygon with fewer
	// than 3 distinct vertices (fill generators) or a path with fewer
	// than 2 distinct vertices after de-duplication (running generator).
	// It is recovered locally: the generator returns an empty stitch list
	// and the composer proceeds with the next path.
	ErrInvalidInput = errors.New("stitch: invalid input geometry")

	// ErrConfigOutOfRange indicates a ProcessingConfig field is outside
	// its valid range (density_mm <= 0, or satin_column_width_mm <= 0
	// while satin is selected). Surfaced to the caller; the pipeline
	// refuses to run.
	ErrConfigOutOfRange = errors.New("stitch: config value out of range")

	// ErrCoordinateOverflow indicates an emitted stitch position falls
	// outside +-3276.7mm, the DST header's five-digit field limit.
	ErrCoordinateOverflow = errors.New("stitch: coordinate overflow")

	// ErrEmptyDesign indicates the pipeline produced zero non-structural
	// stitches.
	ErrEmptyDesign = errors.New("stitch: empty design")
)
