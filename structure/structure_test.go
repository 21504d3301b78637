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
	"testing"

	"github.com/threadcraft/digitizer/stitch"
)

func TestUnderlayDisabledReturnsNil(t *testing.T) {
	spine := stitch.Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}}
	cfg := stitch.ProcessingConfig{EnableUnderlay: false, SatinColumnWidthMM: 5, DensityMM: 0.4}
	if out := Underlay(stitch.StitchTypeSatin, spine, "ff0000", cfg); out != nil {
		t.Fatalf("expected nil underlay when disabled, got %v", out)
	}
}

func TestUnderlayRunningHasNone(t *testing.T) {
	spine := stitch.Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}}
	cfg := stitch.ProcessingConfig{EnableUnderlay: true, DensityMM: 0.4}
	if out := Underlay(stitch.StitchTypeRunning, spine, "ff0000", cfg); out != nil {
		t.Fatalf("expected nil underlay for running, got %v", out)
	}
}

func TestUnderlayWideSatinIsMarkedStructural(t *testing.T) {
	spine := stitch.Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}}
	cfg := stitch.ProcessingConfig{EnableUnderlay: true, SatinColumnWidthMM: 4, DensityMM: 0.4}
	out := Underlay(stitch.StitchTypeSatin, spine, "ff0000", cfg)
	if len(out) == 0 {
		t.Fatal("expected underlay stitches for a wide satin column")
	}
	for _, s := range out {
		if !s.IsStructure {
			t.Error("underlay stitches must be marked structural")
		}
	}
}

func TestUnderlayNarrowSatinFallsBackToRunning(t *testing.T) {
	spine := stitch.Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}}
	cfg := stitch.ProcessingConfig{EnableUnderlay: true, SatinColumnWidthMM: 1.0, DensityMM: 0.4, MaxStitchLengthMM: 2.5}
	out := Underlay(stitch.StitchTypeSatin, spine, "ff0000", cfg)
	if len(out) == 0 {
		t.Fatal("expected a running underlay for a narrow satin column")
	}
}

func TestUnderlayTatamiInsetsEachPolygon(t *testing.T) {
	square := stitch.Polygon{{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5}, {X: -5, Y: -5}}
	cfg := stitch.ProcessingConfig{EnableUnderlay: true, MaxStitchLengthMM: 2.5}
	out := UnderlayTatami([]stitch.Polygon{square}, "0000ff", cfg)
	if len(out) == 0 {
		t.Fatal("expected an edge-walk underlay")
	}
	for _, s := range out {
		if !s.IsStructure {
			t.Error("tatami underlay stitches must be marked structural")
		}
		// Every point should lie strictly inside the original square.
		if s.X >= 5 || s.X <= -5 || s.Y >= 5 || s.Y <= -5 {
			t.Errorf("underlay point (%v,%v) not inset from the square", s.X, s.Y)
		}
	}
}

func TestTieInPrependsBacktrack(t *testing.T) {
	main := []stitch.Stitch{{X: 5, Y: 0, Kind: stitch.KindStitch}}
	out := TieIn(main)
	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3", len(out))
	}
	if out[0].X != 5+backtrackMM || out[0].Y != 0 {
		t.Errorf("lead stitch = (%v,%v), want (%v,0)", out[0].X, out[0].Y, 5+backtrackMM)
	}
	if out[1].X != 5 || out[1].Y != 0 {
		t.Errorf("second stitch = (%v,%v), want (5,0)", out[1].X, out[1].Y)
	}
	if out[2] != main[0] {
		t.Error("original stitches must follow the backtrack unchanged")
	}
}

func TestTieInSkipsJumpStart(t *testing.T) {
	main := []stitch.Stitch{{X: 5, Y: 0, Kind: stitch.KindJump}}
	out := TieIn(main)
	if len(out) != 1 {
		t.Fatalf("expected tie-in to be skipped for a jump start, got %d records", len(out))
	}
}

func TestTieOffAppendsBacktrackAndTrim(t *testing.T) {
	main := []stitch.Stitch{{X: 5, Y: 0, Kind: stitch.KindStitch}}
	out := TieOff(main)
	if len(out) != 4 {
		t.Fatalf("len(out) = %d, want 4", len(out))
	}
	last := out[len(out)-1]
	if last.Kind != stitch.KindTrim {
		t.Errorf("last record kind = %v, want trim", last.Kind)
	}
}

func TestCleanupDropsShortStitches(t *testing.T) {
	stitches := []stitch.Stitch{
		{X: 0, Y: 0, Kind: stitch.KindStitch},
		{X: 0.05, Y: 0, Kind: stitch.KindStitch},
		{X: 1, Y: 0, Kind: stitch.KindStitch},
	}
	out := RemoveSmallStitches(stitches, 0.3)
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if out[0].X != 0 || out[1].X != 1 {
		t.Errorf("kept points = (%v),(%v), want (0),(1)", out[0].X, out[1].X)
	}
}

func TestCleanupPreservesZeroLengthBacktrack(t *testing.T) {
	stitches := []stitch.Stitch{
		{X: 5, Y: 0, Kind: stitch.KindStitch},
		{X: 5, Y: 0, Kind: stitch.KindStitch}, // zero-length tie-off backtrack
	}
	out := RemoveSmallStitches(stitches, 0.3)
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want the zero-length stitch preserved", len(out))
	}
}

func TestCleanupIgnoresNonStitchRecords(t *testing.T) {
	stitches := []stitch.Stitch{
		{X: 0, Y: 0, Kind: stitch.KindStitch},
		{X: 0, Y: 0, Kind: stitch.KindTrim},
		{X: 0, Y: 0, Kind: stitch.KindJump},
	}
	out := RemoveSmallStitches(stitches, 0.3)
	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want all 3 non-stitch-distance records kept", len(out))
	}
}
