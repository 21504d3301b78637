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

import "github.com/threadcraft/digitizer/stitch"

const backtrackMM = 0.5

// TieIn prepends a 0.5mm lateral backtrack to stitches: two stitches at
// (first.x+0.5, first.y) then (first.x, first.y). Skipped if the first
// record is a jump or end (or the slice is empty).
func TieIn(stitches []stitch.Stitch) []stitch.Stitch {
	if len(stitches) == 0 {
		return stitches
	}
	first := stitches[0]
	if first.Kind == stitch.KindJump || first.Kind == stitch.KindEnd {
		return stitches
	}

	lead := []stitch.Stitch{
		{X: first.X + backtrackMM, Y: first.Y, Kind: stitch.KindStitch, ColorHex: first.ColorHex, IsStructure: true},
		{X: first.X, Y: first.Y, Kind: stitch.KindStitch, ColorHex: first.ColorHex, IsStructure: true},
	}
	return append(lead, stitches...)
}

// TieOff appends a 0.5mm lateral backtrack followed by a trim: two
// stitches at (last.x-0.5, last.y) then (last.x, last.y), then a trim.
// Skipped if the last record is a jump or end (or the slice is empty).
func TieOff(stitches []stitch.Stitch) []stitch.Stitch {
	if len(stitches) == 0 {
		return stitches
	}
	last := stitches[len(stitches)-1]
	if last.Kind == stitch.KindJump || last.Kind == stitch.KindEnd {
		return stitches
	}

	tail := []stitch.Stitch{
		{X: last.X - backtrackMM, Y: last.Y, Kind: stitch.KindStitch, ColorHex: last.ColorHex, IsStructure: true},
		{X: last.X, Y: last.Y, Kind: stitch.KindStitch, ColorHex: last.ColorHex, IsStructure: true},
		{X: last.X, Y: last.Y, Kind: stitch.KindTrim, ColorHex: last.ColorHex, IsStructure: true},
	}
	return append(stitches, tail...)
}
