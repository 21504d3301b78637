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

package dst

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/threadcraft/digitizer/stitch"
)

func field(t *testing.T, header []byte, offset, width int) string {
	t.Helper()
	return strings.TrimRight(string(header[offset:offset+width]), " ")
}

// TestBoundsHeader exercises the DST bounds header scenario: two stitches
// and an end, header fields must carry the absolute extents.
func TestBoundsHeader(t *testing.T) {
	stitches := []stitch.Stitch{
		{X: 0, Y: 0, Kind: stitch.KindStitch, ColorHex: "ff0000"},
		{X: 5.0, Y: -3.2, Kind: stitch.KindStitch, ColorHex: "ff0000"},
		{X: 5.0, Y: -3.2, Kind: stitch.KindEnd, ColorHex: "ff0000"},
	}

	var buf bytes.Buffer
	if err := Encode(stitches, "TEST", 0, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.Bytes()
	if len(out) != headerSize+3*3 {
		t.Fatalf("unexpected length %d", len(out))
	}
	header := out[:headerSize]

	cases := map[string]string{
		"+X:00050": "", "-X:00000": "", "+Y:00000": "", "-Y:00032": "", "ST:0000003": "",
	}
	for want := range cases {
		if !bytes.Contains(header, []byte(want)) {
			t.Errorf("header missing %q", want)
		}
	}
}

// TestBodyStitchCountMatchesRecords checks property #8: the ST field
// equals the number of 3-byte body records (including the terminator).
func TestBodyStitchCountMatchesRecords(t *testing.T) {
	stitches := []stitch.Stitch{
		{X: 1, Y: 1, Kind: stitch.KindStitch},
		{X: 2, Y: 1, Kind: stitch.KindJump},
		{X: 2, Y: 2, Kind: stitch.KindStitch},
		{X: 2, Y: 2, Kind: stitch.KindEnd},
	}
	var buf bytes.Buffer
	if err := Encode(stitches, "L", 0, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	body := buf.Bytes()[headerSize:]
	if len(body)%3 != 0 {
		t.Fatalf("body length %d not a multiple of 3", len(body))
	}
	recordCount := len(body) / 3
	st := field(t, buf.Bytes(), 23, 10)
	if st != "ST:0000004" {
		t.Errorf("ST field = %q, record count = %d", st, recordCount)
	}
	if recordCount != 4 {
		t.Errorf("record count = %d, want 4", recordCount)
	}
}

// TestOversizeStepSplitsIntoJumps checks that a delta exceeding +-121
// units is decomposed into synthetic jump records before the real one.
func TestOversizeStepSplitsIntoJumps(t *testing.T) {
	stitches := []stitch.Stitch{
		{X: 0, Y: 0, Kind: stitch.KindStitch},
		{X: 30.0, Y: 0, Kind: stitch.KindStitch}, // 300 units, needs splitting
		{X: 30.0, Y: 0, Kind: stitch.KindEnd},
	}
	var buf bytes.Buffer
	if err := Encode(stitches, "L", 0, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	body := buf.Bytes()[headerSize:]
	recordCount := len(body) / 3
	// 300 units needs ceil(300/121)=3 records for that step, plus the
	// initial zero-delta stitch, plus the terminator = 5.
	if recordCount != 5 {
		t.Errorf("record count = %d, want 5", recordCount)
	}
}

// TestOversizeStepHeaderCountIncludesSplitRecords checks that the header's
// ST field counts every synthetic jump record emitted by the oversize-delta
// splitting loop, not just one per input Stitch.
func TestOversizeStepHeaderCountIncludesSplitRecords(t *testing.T) {
	stitches := []stitch.Stitch{
		{X: 0, Y: 0, Kind: stitch.KindStitch},
		{X: 30.0, Y: 0, Kind: stitch.KindStitch}, // 300 units, splits into 3 records
		{X: 30.0, Y: 0, Kind: stitch.KindEnd},
	}
	var buf bytes.Buffer
	if err := Encode(stitches, "L", 0, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	body := buf.Bytes()[headerSize:]
	recordCount := len(body) / 3
	st := field(t, buf.Bytes(), 23, 10)
	want := fmt.Sprintf("ST:%07d", recordCount)
	if st != want {
		t.Errorf("ST field = %q, want %q (record count = %d)", st, want, recordCount)
	}
}

// TestCoordinateOverflow ensures out-of-range positions are rejected
// rather than silently wrapped.
func TestCoordinateOverflow(t *testing.T) {
	stitches := []stitch.Stitch{
		{X: 4000, Y: 0, Kind: stitch.KindStitch},
		{X: 4000, Y: 0, Kind: stitch.KindEnd},
	}
	var buf bytes.Buffer
	err := Encode(stitches, "L", 0, &buf)
	if err == nil {
		t.Fatal("expected an error for an out-of-range coordinate")
	}
}

func TestEncodeRecordRoundTripsThroughWeights(t *testing.T) {
	cases := []struct{ dx, dy int }{
		{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{121, -121}, {-121, 121}, {45, -67}, {100, 100},
	}
	for _, c := range cases {
		rec := encodeRecord(c.dx, c.dy, false, false)
		gotDx, gotDy := decodeForTest(rec)
		if gotDx != c.dx || gotDy != c.dy {
			t.Errorf("encodeRecord(%d,%d) round-trip = (%d,%d)", c.dx, c.dy, gotDx, gotDy)
		}
	}
}

// decodeForTest inverts encodeRecord by summing the signed weight of
// every set data bit; it exists only to cross-check the bit table.
func decodeForTest(rec []byte) (dx, dy int) {
	bits := uint32(rec[0]) | uint32(rec[1])<<8 | uint32(rec[2])<<16
	has := func(n int) bool { return bits&(1<<uint(n)) != 0 }
	for _, w := range weights {
		if has(w.yBitPos) {
			dy += w.weight
		}
		if has(w.yBitNeg) {
			dy -= w.weight
		}
		if has(w.xBitPos) {
			dx += w.weight
		}
		if has(w.xBitNeg) {
			dx -= w.weight
		}
	}
	return dx, dy
}
