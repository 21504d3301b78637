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

package geom

import "math"

// Offset displaces every vertex of a closed polygon along its averaged
// edge normal by d (positive offsets outward, negative insets, for a
// counter-clockwise polygon; a clockwise polygon moves the other way).
// The miter multiplier is 1 over the cosine of the half-angle between the
// two edge normals: the sharper the corner, the longer the miter, clamped
// at 2 to avoid runaway spikes on near-reversal corners.
//
// Polygons with fewer than 3 vertices are returned unchanged; no topology
// cleanup is performed on self-intersections produced by an over-large
// inset.
func Offset(poly Polygon, d float64) Polygon {
	pts := poly
	closed := poly.Closed()
	if closed {
		pts = poly[:len(poly)-1]
	}
	n := len(pts)
	if n < 3 {
		return poly.Clone()
	}

	out := make(Polygon, n)
	for i := 0; i < n; i++ {
		prev := pts[(i-1+n)%n]
		cur := pts[i]
		next := pts[(i+1)%n]

		ePrev := Normalize(cur.Sub(prev))
		eNext := Normalize(next.Sub(cur))

		// LeftNormal points into the interior for a CCW-wound polygon, so
		// the outward normal is its negation.
		nPrev := LeftNormal(ePrev).Mul(-1)
		nNext := LeftNormal(eNext).Mul(-1)

		avg := nPrev.Add(nNext)
		nAvg := Normalize(avg)

		cosAngle := nPrev.Dot(nNext)
		halfCos := math.Sqrt(max(0.01, (1+cosAngle)/2))
		m := 1 / halfCos
		if m > 2 {
			m = 2
		}

		out[i] = cur.Add(nAvg.Mul(d * m))
	}

	if closed {
		out = append(out, out[0])
	}
	return out
}
