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

package structure

import (
	"github.com/threadcraft/digitizer/geom"
	"github.com/threadcraft/digitizer/stitch"
)

const smallStitchFloorMM = 0.01

// RemoveSmallStitches walks the sequence and drops any stitch record whose
// distance to the previous kept record is in (smallStitchFloorMM,
// minStitchLengthMM) — close enough to be noise, not close enough to be
// the zero-length tie-off backtrack that must be preserved. Non-stitch
// records are always kept; the first record is always kept.
func RemoveSmallStitches(stitches []stitch.Stitch, minStitchLengthMM float64) []stitch.Stitch {
	if len(stitches) == 0 {
		return stitches
	}

	out := make([]stitch.Stitch, 0, len(stitches))
	out = append(out, stitches[0])

	for i := 1; i < len(stitches); i++ {
		s := stitches[i]
		if s.Kind != stitch.KindStitch {
			out = append(out, s)
			continue
		}
		d := geom.Dist(out[len(out)-1].Pos(), s.Pos())
		if d > smallStitchFloorMM && d < minStitchLengthMM {
			continue
		}
		out = append(out, s)
	}
	return out
}
