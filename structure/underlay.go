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

// Package structure wraps a generator's output with the structural
// stitches that stabilise the fabric and anchor the face stitches:
// underlay, tie-in/tie-off backtracks, and small-stitch cleanup.
package structure

import (
	"github.com/threadcraft/digitizer/geom"
	"github.com/threadcraft/digitizer/stitch"
	"github.com/threadcraft/digitizer/stitchgen"
)

const (
	narrowSatinColumnMM   = 2.0
	satinUnderlayDensity  = 2.0
	tatamiUnderlayInsetMM = 0.6
)

// Underlay generates the structural layer beneath a satin spine's main
// stitches. Returns nil if cfg.EnableUnderlay is false, or for
// StitchTypeRunning (running stitch has no underlay of its own). Tatami's
// underlay operates on whole polygons, not a single spine; see
// UnderlayTatami.
func Underlay(stitchType stitch.StitchType, spine stitch.Polygon, colorHex string, cfg stitch.ProcessingConfig) []stitch.Stitch {
	if !cfg.EnableUnderlay {
		return nil
	}

	switch stitchType {
	case stitch.StitchTypeSatin:
		if cfg.SatinColumnWidthMM < narrowSatinColumnMM {
			return markStructure(stitchgen.Running(spine, colorHex, cfg))
		}
		h := cfg.SatinColumnWidthMM/2 + cfg.PullCompensationMM/2
		underlayCfg := cfg
		underlayCfg.SatinColumnWidthMM = 2 * (h - 0.4)
		underlayCfg.DensityMM = satinUnderlayDensity
		underlayCfg.PullCompensationMM = 0
		return markStructure(stitchgen.Satin(spine, colorHex, underlayCfg))

	default: // running, tatami: no spine-based underlay
		return nil
	}
}

// UnderlayTatami generates the edge-walk run-stitch underlay for a tatami
// fill: a running stitch around each polygon inset by a fixed 0.6mm.
func UnderlayTatami(polys []stitch.Polygon, colorHex string, cfg stitch.ProcessingConfig) []stitch.Stitch {
	if !cfg.EnableUnderlay {
		return nil
	}
	var out []stitch.Stitch
	for _, p := range polys {
		if p.DistinctVertexCount() < 3 {
			continue
		}
		inset := geom.Offset(geom.Polygon(p), -tatamiUnderlayInsetMM)
		out = append(out, markStructure(stitchgen.Running(inset, colorHex, cfg))...)
	}
	return out
}

func markStructure(stitches []stitch.Stitch) []stitch.Stitch {
	for i := range stitches {
		stitches[i].IsStructure = true
	}
	return stitches
}
