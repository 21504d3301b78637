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

// Package stitchgen implements the three stitch-type generators
// (running, satin, tatami). Each is deterministic: same input and config
// produce the same output. Degenerate inputs are recovered locally,
// returning an empty stitch list rather than propagating an error, the
// contract shared by every generator in this package.
package stitchgen

import (
	"math"

	"github.com/threadcraft/digitizer/geom"
	"github.com/threadcraft/digitizer/stitch"
)

const dedupeEpsilonMM = 0.01

// Running generates a single row of stitches along path, splitting any
// segment longer than cfg's (defaulted) max stitch length into equal
// sub-segments. Returns an empty slice if fewer than 2 distinct points
// remain after de-duplicating points closer than dedupeEpsilonMM.
func Running(path stitch.Polygon, colorHex string, cfg stitch.ProcessingConfig) []stitch.Stitch {
	cleaned := dedupeAdjacent(path, dedupeEpsilonMM)
	if len(cleaned) < 2 {
		return nil
	}

	maxLen := cfg.RunningMaxStitchLengthMM()

	out := make([]stitch.Stitch, 0, len(cleaned))
	out = append(out, newStitch(cleaned[0], colorHex, false))

	for i := 1; i < len(cleaned); i++ {
		a, b := cleaned[i-1], cleaned[i]
		d := geom.Dist(a, b)
		if d <= maxLen {
			out = append(out, newStitch(b, colorHex, false))
			continue
		}
		k := int(math.Ceil(d / maxLen))
		for j := 1; j <= k; j++ {
			t := float64(j) / float64(k)
			p := geom.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			out = append(out, newStitch(p, colorHex, false))
		}
	}
	return out
}

// dedupeAdjacent drops points whose distance to the previous kept point
// is below eps.
func dedupeAdjacent(path stitch.Polygon, eps float64) stitch.Polygon {
	if len(path) == 0 {
		return nil
	}
	out := make(stitch.Polygon, 0, len(path))
	out = append(out, path[0])
	for _, p := range path[1:] {
		if geom.Dist(out[len(out)-1], p) >= eps {
			out = append(out, p)
		}
	}
	return out
}

func newStitch(p geom.Point, colorHex string, structure bool) stitch.Stitch {
	return stitch.Stitch{
		X: p.X, Y: p.Y,
		Kind:        stitch.KindStitch,
		ColorHex:    colorHex,
		IsStructure: structure,
	}
}
