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
	"math"

	"github.com/threadcraft/digitizer/geom"
	"github.com/threadcraft/digitizer/stitch"
)

const (
	minSegmentLengthMM = 0.5
	tatamiBrickStepMM  = 4.0
	tatamiRowJumpMM    = 2.0
	tatamiRowStitchMM  = 0.1
)

// Tatami fills one or more closed polygons (even-odd) with a rotated,
// brick-offset scanline sweep: offset outward by pull compensation,
// rotate so rows become horizontal, sweep, then rotate penetrations back.
// Returns an empty slice if the offset polygons have no edges to sweep.
func Tatami(polys []stitch.Polygon, colorHex string, cfg stitch.ProcessingConfig) []stitch.Stitch {
	offset := make([]geom.Polygon, 0, len(polys))
	for _, p := range polys {
		if p.DistinctVertexCount() < 3 {
			continue
		}
		offset = append(offset, geom.Offset(geom.Polygon(p), cfg.PullCompensationMM))
	}
	if len(offset) == 0 {
		return nil
	}

	rotated := make([]geom.Polygon, len(offset))
	for i, p := range offset {
		rotated[i] = geom.Rotate(p, -cfg.TatamiAngleDeg)
	}

	et := geom.BuildEdgeTable(rotated)
	if et.Empty() {
		return nil
	}
	minY, maxY := et.YRange()

	density := cfg.DensityMM
	maxStitch := cfg.TatamiMaxStitchLengthMM()

	out := make([]stitch.Stitch, 0, 256)
	var lastPoint geom.Point
	haveLast := false

	for y := minY + density; y <= maxY+1e-9; y += density {
		xs := et.Intersections(y)
		if len(xs) < 2 {
			continue
		}

		var rowPts []geom.Point
		for i := 0; i+1 < len(xs); i += 2 {
			x0, x1 := xs[i], xs[i+1]
			segLen := x1 - x0
			if segLen < minSegmentLengthMM {
				continue
			}
			rowPts = append(rowPts, brickPenetrations(x0, x1, y, maxStitch)...)
		}
		if len(rowPts) == 0 {
			continue
		}

		rowIndex := int(math.Round(y / density))
		if rowIndex%2 == 0 {
			reversePoints(rowPts)
		}

		for i, rp := range rowPts {
			rowPts[i] = geom.RotatePoint(rp, cfg.TatamiAngleDeg)
		}

		for i, p := range rowPts {
			if i > 0 {
				// Intra-row: consecutive brick penetrations always stitch,
				// regardless of how far apart the brick step put them.
				out = append(out, newStitch(p, colorHex, false))
				lastPoint = p
				haveLast = true
				continue
			}

			// Row boundary: the new row's first point connects to the
			// previous row's last point by the jump/stitch/drop rule.
			if !haveLast {
				out = append(out, stitch.Stitch{X: p.X, Y: p.Y, Kind: stitch.KindJump, ColorHex: colorHex, IsStructure: true})
			} else {
				d := geom.Dist(lastPoint, p)
				switch {
				case d > tatamiRowJumpMM:
					out = append(out, stitch.Stitch{X: p.X, Y: p.Y, Kind: stitch.KindJump, ColorHex: colorHex, IsStructure: true})
				case d > tatamiRowStitchMM:
					out = append(out, newStitch(p, colorHex, false))
				default:
					// Duplicate of the previous penetration: drop it.
					lastPoint = p
					haveLast = true
					continue
				}
			}
			lastPoint = p
			haveLast = true
		}
	}

	return out
}

// brickPenetrations returns the penetrations for one inside-segment
// [x0,x1] on row y: two endpoints if the segment is short, or an
// endpoint-anchored brick pattern with a deterministic per-row offset
// otherwise.
func brickPenetrations(x0, x1, y, maxStitch float64) []geom.Point {
	segLen := x1 - x0
	if segLen <= maxStitch {
		return []geom.Point{{X: x0, Y: y}, {X: x1, Y: y}}
	}

	offset := brickOffset(y) * tatamiBrickStepMM
	pts := []geom.Point{{X: x0, Y: y}}
	x := x0 + offset
	for x < x1 {
		pts = append(pts, geom.Point{X: x, Y: y})
		x += tatamiBrickStepMM
	}
	pts = append(pts, geom.Point{X: x1, Y: y})
	return pts
}

// brickOffset returns a deterministic function of y in roughly [0, 1.07):
// a 3-way cycling base shift plus a pseudo-random per-row jitter, which
// together break up the visual "ladders" between adjacent fill rows. Any
// pure, well-distributed function of y satisfies the contract; this is
// one concrete choice.
func brickOffset(y float64) float64 {
	base := float64(mod3(int(math.Round(y*10)))) / 3
	noise := fract(math.Sin(y*123.45)*10000) * 0.4
	return base + noise
}

func mod3(n int) int {
	m := n % 3
	if m < 0 {
		m += 3
	}
	return m
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}

func reversePoints(pts []geom.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
