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
	"seehuhn.de/go/pdf/graphics"
)

// defaultSatinJoinPolicy selects how satin rails handle corners. It reuses
// graphics.LineJoinStyle (seehuhn.de/go/pdf/graphics) to choose between a
// mitered corner and a bevel: LineJoinMiter (the default) offsets along the
// bisector with the miter length clamped to miterClampFactor*h,
// LineJoinBevel never attempts the miter at all, and LineJoinRound is
// accepted for config compatibility but treated like LineJoinBevel since a
// rounded corner has no meaning at stitch-penetration granularity.
const defaultSatinJoinPolicy = graphics.LineJoinMiter

const shortStitchThresholdMM = 0.4
const shortStitchRatio = 0.6
const shortStitchPullFraction = 0.3
const miterClampFactor = 3.0
const degenerateCornerThreshold = 0.001

// Satin generates twin-rail mitered crossings along spine, the medial
// axis of a column whose half-width is derived from
// satin_column_width_mm and pull_compensation_mm. Returns an empty slice
// when spine has fewer than 2 points (the EmptyPath case).
func Satin(spine stitch.Polygon, colorHex string, cfg stitch.ProcessingConfig) []stitch.Stitch {
	if len(spine) < 2 {
		return nil
	}

	pts := geom.Resample(spine, cfg.DensityMM)
	if len(pts) < 2 {
		return nil
	}

	h := cfg.SatinColumnWidthMM/2 + cfg.PullCompensationMM/2

	left := make([]geom.Point, len(pts))
	right := make([]geom.Point, len(pts))

	for i, p := range pts {
		t1, t2 := neighbourTangents(pts, i)
		miterVec, miterLen := satinMiter(t1, t2, h, defaultSatinJoinPolicy)
		left[i] = p.Add(miterVec.Mul(miterLen))
		right[i] = p.Sub(miterVec.Mul(miterLen))
	}

	shortenRailCorners(left, right)

	out := make([]stitch.Stitch, 0, len(pts)*2)
	maxLen := cfg.SatinMaxStitchLengthMM()
	for i := range pts {
		emitCrossing(&out, left[i], right[i], maxLen, colorHex)
	}
	return out
}

// neighbourTangents returns the unit incoming tangent (from the previous
// point to pts[i]) and unit outgoing tangent (from pts[i] to the next
// point). At the ends, the missing neighbour is obtained by mirroring the
// existing segment so the boundary behaves like an interior point.
func neighbourTangents(pts []geom.Point, i int) (t1, t2 geom.Point) {
	n := len(pts)
	cur := pts[i]

	var prev, next geom.Point
	if i == 0 {
		if n > 1 {
			next = pts[1]
			prev = cur.Sub(next.Sub(cur))
		} else {
			next = cur
			prev = cur
		}
	} else {
		prev = pts[i-1]
	}
	if i == n-1 {
		if n > 1 {
			prev = pts[n-2]
			next = cur.Add(cur.Sub(prev))
		} else {
			next = cur
		}
	} else if i != 0 {
		next = pts[i+1]
	}

	t1 = geom.Normalize(cur.Sub(prev))
	t2 = geom.Normalize(next.Sub(cur))
	return t1, t2
}

// satinMiter computes the bisector (miter) direction and its length for a
// rail corner: the bisector of the two tangents' normals, scaled by h over
// the cosine of the half-angle, and clamped. Degenerate (near-180-degree
// reversal) corners fall back to the incoming tangent's left normal at
// length h.
func satinMiter(t1, t2 geom.Point, h float64, policy graphics.LineJoinStyle) (vec geom.Point, length float64) {
	n1 := geom.LeftNormal(t1)

	sum := t1.Add(t2)
	if sum.Length() < degenerateCornerThreshold {
		return n1, h
	}

	bisector := geom.LeftNormal(geom.Normalize(sum))
	denom := math.Abs(bisector.Dot(n1))
	if denom < 0.1 {
		denom = 0.1
	}
	length = h / denom
	clamp := miterClampFactor * h
	if length > clamp {
		length = clamp
	}

	if policy == graphics.LineJoinBevel || policy == graphics.LineJoinRound {
		return n1, h
	}
	return bisector, length
}

// shortenRailCorners implements the short-stitch-shortening pass: every
// odd-indexed penetration whose incoming rail edge on one side is
// both much shorter than the other side's and below an absolute floor
// gets pulled 30% toward the opposite rail's point at the same index,
// avoiding thread pile-up on the inner curve of a sharp bend.
func shortenRailCorners(left, right []geom.Point) {
	for i := 1; i < len(left); i += 2 {
		dLeft := geom.Dist(left[i-1], left[i])
		dRight := geom.Dist(right[i-1], right[i])

		if dLeft < shortStitchRatio*dRight && dLeft < shortStitchThresholdMM {
			left[i] = left[i].Add(right[i].Sub(left[i]).Mul(shortStitchPullFraction))
		}
		if dRight < shortStitchRatio*dLeft && dRight < shortStitchThresholdMM {
			right[i] = right[i].Add(left[i].Sub(right[i]).Mul(shortStitchPullFraction))
		}
	}
}

// emitCrossing appends the stitches for one rail-to-rail crossing. Short
// crossings emit left then right directly; crossings longer than maxLen
// split into equal sub-crossings with a center/right/left
// anti-railroading shift applied to the interior points only.
func emitCrossing(out *[]stitch.Stitch, left, right geom.Point, maxLen float64, colorHex string) {
	L := geom.Dist(left, right)
	if L <= maxLen {
		*out = append(*out, newStitch(left, colorHex, false), newStitch(right, colorHex, false))
		return
	}

	k := int(math.Ceil(L / maxLen))
	shifts := [3]float64{0, 0.5, -0.5}
	for j := 0; j <= k; j++ {
		t := float64(j) / float64(k)
		if j > 0 && j < k && L > 0 {
			shiftMM := shifts[j%3] * min(maxLen-L/float64(k)-0.1, 2.0)
			t += shiftMM / L
		}
		p := geom.Point{
			X: left.X + (right.X-left.X)*t,
			Y: left.Y + (right.Y-left.Y)*t,
		}
		*out = append(*out, newStitch(p, colorHex, false))
	}
}
