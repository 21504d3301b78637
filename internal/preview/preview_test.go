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

package preview

import (
	"bytes"
	"testing"

	"github.com/threadcraft/digitizer/stitch"
)

func TestRenderProducesNonEmptyCoverage(t *testing.T) {
	stitches := []stitch.Stitch{
		{X: 0, Y: 0, Kind: stitch.KindStitch},
		{X: 10, Y: 0, Kind: stitch.KindStitch},
		{X: 10, Y: 10, Kind: stitch.KindStitch},
	}
	img := Render(stitches, Options{Width: 32, Height: 32, ScalePxPerMM: 2, LineWidthMM: 0.5})

	var any bool
	for _, v := range img.Pix {
		if v != 0 {
			any = true
			break
		}
	}
	if !any {
		t.Fatal("expected non-zero coverage for a drawn path")
	}
}

func TestRenderSkipsJumpGaps(t *testing.T) {
	stitches := []stitch.Stitch{
		{X: 0, Y: 0, Kind: stitch.KindStitch},
		{X: 30, Y: 30, Kind: stitch.KindJump},
		{X: 30, Y: 30, Kind: stitch.KindStitch},
	}
	// Should not panic or draw a segment across the jump gap. The jump
	// breaks the only stitch-to-stitch pair, so nothing is drawn at all.
	img := Render(stitches, Options{Width: 40, Height: 40, ScalePxPerMM: 1, LineWidthMM: 0.5})
	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("pixel %d has coverage %d, want none across a jump gap", i, v)
		}
	}
}

func TestPNGRoundTrip(t *testing.T) {
	stitches := []stitch.Stitch{
		{X: 0, Y: 0, Kind: stitch.KindStitch},
		{X: 5, Y: 5, Kind: stitch.KindStitch},
	}
	img := Render(stitches, Options{Width: 16, Height: 16, ScalePxPerMM: 1, LineWidthMM: 0.4})

	var buf bytes.Buffer
	if err := EncodePNG(img, &buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	pix, w, h, err := DecodePNG(&buf)
	if err != nil {
		t.Fatalf("DecodePNG: %v", err)
	}
	if w != 16 || h != 16 {
		t.Fatalf("decoded size = %dx%d, want 16x16", w, h)
	}
	if len(pix) != 16*16 {
		t.Fatalf("decoded pixel count = %d, want 256", len(pix))
	}
}
