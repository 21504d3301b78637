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

package stitchgen

import (
	"testing"

	"github.com/threadcraft/digitizer/geom"
	"github.com/threadcraft/digitizer/stitch"
)

// TestRunningSplitsLongSegment exercises a single
// 10mm segment with max_stitch_length_mm=2.5 splits into four 2.5mm
// sub-segments at x = 0, 2.5, 5, 7.5, 10.
func TestRunningSplitsLongSegment(t *testing.T) {
	path := stitch.Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}}
	cfg := stitch.ProcessingConfig{MaxStitchLengthMM: 2.5}

	out := Running(path, "ff0000", cfg)
	wantX := []float64{0, 2.5, 5, 7.5, 10}
	if len(out) != len(wantX) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(wantX))
	}
	for i, want := range wantX {
		if out[i].X != want || out[i].Y != 0 {
			t.Errorf("out[%d] = (%v,%v), want (%v,0)", i, out[i].X, out[i].Y, want)
		}
	}
}

func TestRunningDefaultsMaxLengthWhenNonPositive(t *testing.T) {
	path := stitch.Polygon{{X: 0, Y: 0}, {X: 3, Y: 0}}
	cfg := stitch.ProcessingConfig{} // MaxStitchLengthMM left zero

	out := Running(path, "000000", cfg)
	if len(out) < 2 {
		t.Fatal("expected at least start and end stitches")
	}
	for i := 1; i < len(out); i++ {
		d := geom.Dist(out[i-1].Pos(), out[i].Pos())
		if d > stitch.DefaultRunningMaxStitchLengthMM+1e-9 {
			t.Errorf("segment %d length %v exceeds default max", i, d)
		}
	}
}

func TestRunningDedupesNearCoincidentPoints(t *testing.T) {
	path := stitch.Polygon{{X: 0, Y: 0}, {X: 0.001, Y: 0}, {X: 5, Y: 0}}
	out := Running(path, "ff00ff", stitch.ProcessingConfig{MaxStitchLengthMM: 10})
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2 after de-duplication", len(out))
	}
}

func TestRunningTooShortReturnsEmpty(t *testing.T) {
	path := stitch.Polygon{{X: 0, Y: 0}, {X: 0.001, Y: 0}}
	out := Running(path, "000000", stitch.ProcessingConfig{MaxStitchLengthMM: 2.5})
	if out != nil {
		t.Fatalf("expected nil for a degenerate path, got %v", out)
	}
}

func TestRunningStitchesCarryLayerColorAndAreNotStructure(t *testing.T) {
	path := stitch.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}
	out := Running(path, "123abc", stitch.ProcessingConfig{MaxStitchLengthMM: 2.5})
	for _, s := range out {
		if s.ColorHex != "123abc" {
			t.Errorf("ColorHex = %q, want 123abc", s.ColorHex)
		}
		if s.IsStructure {
			t.Error("running stitches must not be marked structural")
		}
		if s.Kind != stitch.KindStitch {
			t.Errorf("Kind = %v, want KindStitch", s.Kind)
		}
	}
}
