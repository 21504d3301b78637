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

// Package digitizer ties the geometry kernel, stitch generators,
// structural layer, and layer composer into one entry point, and
// exposes the binary encoders for the result.
package digitizer

import (
	"fmt"
	"io"

	"github.com/threadcraft/digitizer/compose"
	"github.com/threadcraft/digitizer/dst"
	"github.com/threadcraft/digitizer/exp"
	"github.com/threadcraft/digitizer/stitch"
)

// Design is the fully composed, ordered stitch sequence produced by Run.
// It is immutable: encoders only read it.
type Design struct {
	Stitches []stitch.Stitch
	Label    string
}

// Run executes the full pipeline over a set of colored vector layers:
// per-path generation (underlay + main, tied), per-layer sequencing with
// jumps and trims, per-design color changes, and a terminal end record.
// It returns ErrConfigOutOfRange if cfg fails validation and
// ErrEmptyDesign if the result has no face stitches.
func Run(layers []stitch.VectorLayer, cfg stitch.ProcessingConfig, label string) (Design, error) {
	if err := cfg.Validate(); err != nil {
		return Design{}, fmt.Errorf("digitizer: %w", err)
	}

	stitches := compose.Compose(layers, cfg, stitch.Point{})

	if !hasFaceStitch(stitches) {
		return Design{}, fmt.Errorf("digitizer: %w", stitch.ErrEmptyDesign)
	}

	return Design{Stitches: stitches, Label: label}, nil
}

func hasFaceStitch(stitches []stitch.Stitch) bool {
	for _, s := range stitches {
		if s.Kind == stitch.KindStitch && !s.IsStructure {
			return true
		}
	}
	return false
}

// colorChangeCount counts the color_change records in the design, the
// value the DST header's CO field expects.
func (d Design) colorChangeCount() int {
	n := 0
	for _, s := range d.Stitches {
		if s.Kind == stitch.KindColorChange {
			n++
		}
	}
	return n
}

// EncodeDST writes the design as a Tajima DST file.
func (d Design) EncodeDST(w io.Writer) error {
	return dst.Encode(d.Stitches, d.Label, d.colorChangeCount(), w)
}

// EncodeEXP writes the design as a Melco EXP file.
func (d Design) EncodeEXP(w io.Writer) error {
	return exp.Encode(d.Stitches, w)
}
