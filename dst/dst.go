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

// Package dst encodes a stitch sequence into the Tajima DST binary
// format: a 512-byte ASCII header followed by 3-byte stitch records.
package dst

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/threadcraft/digitizer/geom"
	"github.com/threadcraft/digitizer/stitch"
)

const (
	headerSize   = 512
	maxStepUnit  = 121 // +-0.1mm units per record
	coordLimitMM = 3276.7
)

// Encode writes stitches as a complete DST file (header + body) to w.
func Encode(stitches []stitch.Stitch, label string, colorChanges int, w io.Writer) error {
	body, bbox, stitchCount, err := encodeBody(stitches)
	if err != nil {
		return fmt.Errorf("dst: %w", err)
	}

	header, err := buildHeader(label, stitchCount, colorChanges, bbox)
	if err != nil {
		return fmt.Errorf("dst: %w", err)
	}

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("dst: write header: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("dst: write body: %w", err)
	}
	return nil
}

// buildHeader lays out the fixed-offset ASCII header the Tajima DST
// format expects. Unused bytes stay 0x20 (space).
func buildHeader(label string, stitchCount, colorChanges int, bbox geom.BBox) ([]byte, error) {
	h := bytes.Repeat([]byte{0x20}, headerSize)

	put := func(offset int, s string) {
		copy(h[offset:], []byte(s))
	}

	if len(label) > 16 {
		label = label[:16]
	}
	put(0, fmt.Sprintf("LA:%-16s", label))
	put(23, fmt.Sprintf("ST:%07d", stitchCount))
	put(39, fmt.Sprintf("CO:%03d", colorChanges))

	plusX, minusX, plusY, minusY, err := boundsIn01MM(bbox)
	if err != nil {
		return nil, err
	}
	put(54, fmt.Sprintf("+X:%05d", plusX))
	put(69, fmt.Sprintf("-X:%05d", minusX))
	put(84, fmt.Sprintf("+Y:%05d", plusY))
	put(99, fmt.Sprintf("-Y:%05d", minusY))
	put(114, "AX:+00000")
	put(129, "AY:+00000")
	put(144, "MX:+00000")
	put(159, "MY:+00000")
	put(174, "PD:******")

	return h, nil
}

// boundsIn01MM converts a millimetre bounding box into the header's
// 0.1mm-unit, sign-separated fields: the largest positive extent on each
// axis and the magnitude of the largest negative extent.
func boundsIn01MM(bbox geom.BBox) (plusX, minusX, plusY, minusY int, err error) {
	for _, v := range []float64{bbox.MinX(), bbox.MaxX(), bbox.MinY(), bbox.MaxY()} {
		if v > coordLimitMM || v < -coordLimitMM {
			return 0, 0, 0, 0, fmt.Errorf("%v mm: %w", v, stitch.ErrCoordinateOverflow)
		}
	}

	plusX = clampZero(round01(bbox.MaxX()))
	minusX = clampZero(-round01(bbox.MinX()))
	plusY = clampZero(round01(bbox.MaxY()))
	minusY = clampZero(-round01(bbox.MinY()))
	return plusX, minusX, plusY, minusY, nil
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func round01(mm float64) int {
	return int(math.Round(mm * 10))
}

// encodeBody converts stitches into 3-byte Tajima records. The end
// record in the stream is not emitted directly; a synthetic zero-delta
// stop record (both control bits set) is appended instead.
func encodeBody(stitches []stitch.Stitch) (body []byte, bbox geom.BBox, stitchCount int, err error) {
	var buf bytes.Buffer
	bbox = geom.NewBBox()
	curX, curY := 0, 0 // current position, 0.1mm units

	for _, s := range stitches {
		if s.Kind == stitch.KindEnd {
			continue
		}

		p := s.Pos()
		if math.Abs(p.X) > coordLimitMM || math.Abs(p.Y) > coordLimitMM {
			return nil, bbox, 0, fmt.Errorf("%v mm: %w", p, stitch.ErrCoordinateOverflow)
		}
		bbox.Add(p)

		targetX := round01(p.X)
		targetY := round01(p.Y)
		dx := targetX - curX
		dy := targetY - curY

		jumpFlag, stopFlag := controlBits(s.Kind)

		for abs(dx) > maxStepUnit || abs(dy) > maxStepUnit {
			sx := clampStep(dx)
			sy := clampStep(dy)
			buf.Write(encodeRecord(sx, sy, true, false))
			curX += sx
			curY += sy
			dx -= sx
			dy -= sy
			stitchCount++
		}
		buf.Write(encodeRecord(dx, dy, jumpFlag, stopFlag))
		curX += dx
		curY += dy
		stitchCount++
	}

	// Synthetic terminator: zero delta, both control bits set. The header's
	// stitch count includes this record, matching the total number of
	// 3-byte records written to the body.
	buf.Write(encodeRecord(0, 0, true, true))
	stitchCount++

	return buf.Bytes(), bbox, stitchCount, nil
}

func controlBits(k stitch.Kind) (jump, stop bool) {
	switch k {
	case stitch.KindJump, stitch.KindTrim, stitch.KindColorChange:
		return true, false
	default:
		return false, false
	}
}

func clampStep(d int) int {
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

// weightBits is the Tajima signed-digit decomposition table: weight
// magnitude paired with the absolute bit index (0..23, byte*8+bit) for the
// positive and negative component of each axis. Order is largest weight
// first. The five weights are the powers of 3 up to 81, so every delta in
// [-121,121] has a unique representation as a sum of +-weight terms, one
// per tier (balanced ternary).
type weightBits struct {
	weight                             int
	yBitPos, yBitNeg, xBitPos, xBitNeg int
}

var weights = []weightBits{
	{81, 16 + 2, 16 + 3, 16 + 4, 16 + 5}, // byte2 b2/b3 (y), b4/b5 (x)
	{27, 8 + 5, 8 + 4, 8 + 1, 8 + 0},     // byte1 b5/b4 (y), b1/b0 (x)
	{9, 0 + 2, 0 + 3, 0 + 5, 0 + 4},      // byte0 b2/b3 (y), b5/b4 (x)
	{3, 8 + 7, 8 + 6, 8 + 3, 8 + 2},      // byte1 b7/b6 (y), b3/b2 (x)
	{1, 0 + 0, 0 + 1, 0 + 7, 0 + 6},      // byte0 b0/b1 (y), b7/b6 (x)
}

// encodeRecord packs one 3-byte Tajima stitch record for delta (dx,dy),
// both already known to fit within +-121, using the weighted bit-position
// table above. Bit index n (0..23) maps to byte n/8, bit n%8.
func encodeRecord(dx, dy int, jump, stop bool) []byte {
	var bits uint32

	setBit := func(n int) { bits |= 1 << uint(n) }

	// decompose walks the tiers largest to smallest. At each tier the
	// digit is +1, -1, or 0 depending on whether remaining exceeds the
	// sum of the still-smaller tiers (threshold): only then is this
	// tier's weight needed to keep the remainder representable by what's
	// left. A plain "subtract while >= weight" is wrong here because
	// each tier contributes its weight at most once.
	decompose := func(v int, posBit func(w weightBits) int, negBit func(w weightBits) int) {
		remaining := v
		threshold := 0
		for _, w := range weights[1:] {
			threshold += w.weight
		}
		for i, w := range weights {
			switch {
			case remaining > threshold:
				setBit(posBit(w))
				remaining -= w.weight
			case remaining < -threshold:
				setBit(negBit(w))
				remaining += w.weight
			}
			if i+1 < len(weights) {
				threshold -= weights[i+1].weight
			}
		}
	}

	decompose(dy, func(w weightBits) int { return w.yBitPos }, func(w weightBits) int { return w.yBitNeg })
	decompose(dx, func(w weightBits) int { return w.xBitPos }, func(w weightBits) int { return w.xBitNeg })

	if jump {
		setBit(23) // byte2 bit7
	}
	if stop {
		setBit(22) // byte2 bit6
	}

	return []byte{byte(bits), byte(bits >> 8), byte(bits >> 16)}
}
