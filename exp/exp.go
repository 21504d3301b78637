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

// Package exp encodes a stitch sequence into the Melco EXP binary
// format: a header-less stream of 2- and 4-byte relative records.
package exp

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/threadcraft/digitizer/stitch"
)

const maxStepUnit = 120 // +-0.1mm units per record

// Encode writes stitches as a complete EXP byte stream to w. EXP has no
// file header; the stream is the body alone.
func Encode(stitches []stitch.Stitch, w io.Writer) error {
	body, err := encodeBody(stitches)
	if err != nil {
		return fmt.Errorf("exp: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("exp: write: %w", err)
	}
	return nil
}

func encodeBody(stitches []stitch.Stitch) ([]byte, error) {
	var buf bytes.Buffer
	curX, curY := 0, 0

	for _, s := range stitches {
		p := s.Pos()
		if math.Abs(p.X) > 3276.7 || math.Abs(p.Y) > 3276.7 {
			return nil, fmt.Errorf("%v mm: %w", p, stitch.ErrCoordinateOverflow)
		}

		switch s.Kind {
		case stitch.KindStitch:
			dx, dy := delta(curX, curY, p)
			writeClampedSteps(&buf, &curX, &curY, dx, dy, writeStitchRecord)

		case stitch.KindJump:
			dx, dy := delta(curX, curY, p)
			writeClampedSteps(&buf, &curX, &curY, dx, dy, writeJumpRecord)

		case stitch.KindColorChange:
			buf.Write([]byte{0x80, 0x01, 0x00, 0x00})

		case stitch.KindTrim:
			for i := 0; i < 3; i++ {
				buf.Write([]byte{0x80, 0x04, 0x00, 0x00})
			}

		case stitch.KindEnd:
			buf.Write([]byte{0x80, 0x01, 0x00, 0x00})
		}
	}

	return buf.Bytes(), nil
}

func delta(curX, curY int, p stitch.Point) (dx, dy int) {
	target := round01pair(p)
	return target[0] - curX, target[1] - curY
}

func round01pair(p stitch.Point) [2]int {
	return [2]int{int(math.Round(p.X * 10)), int(math.Round(p.Y * 10))}
}

// writeClampedSteps splits (dx,dy) into records of at most maxStepUnit
// magnitude per axis, advancing (curX,curY) as it goes, emitting each
// record through emit.
func writeClampedSteps(buf *bytes.Buffer, curX, curY *int, dx, dy int, emit func(*bytes.Buffer, int, int)) {
	for abs(dx) > maxStepUnit || abs(dy) > maxStepUnit {
		sx := clamp(dx)
		sy := clamp(dy)
		emit(buf, sx, sy)
		*curX += sx
		*curY += sy
		dx -= sx
		dy -= sy
	}
	emit(buf, dx, dy)
	*curX += dx
	*curY += dy
}

func writeStitchRecord(buf *bytes.Buffer, dx, dy int) {
	buf.WriteByte(byte(int8(dx)))
	buf.WriteByte(byte(int8(dy)))
}

func writeJumpRecord(buf *bytes.Buffer, dx, dy int) {
	buf.Write([]byte{0x80, 0x04, byte(int8(dx)), byte(int8(dy))})
}

func clamp(d int) int {
	if d > maxStepUnit {
		return maxStepUnit
	}
	if d < -maxStepUnit {
		return -maxStepUnit
	}
	return d
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
