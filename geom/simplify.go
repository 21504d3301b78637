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

// DefaultSimplifyEpsilon is the default Ramer-Douglas-Peucker tolerance.
const DefaultSimplifyEpsilon = 0.05

// Simplify reduces poly using the Ramer-Douglas-Peucker algorithm with
// tolerance eps. A polygon with 2 or fewer points is returned unchanged.
//
// Recursion is replaced by an explicit worklist of [lo,hi] index ranges
// (both ends are kept points that anchor the range's chord),
// per the source's own tail-safety note: the recursive formulation is not
// safe against pathological (near-collinear, very long) inputs.
func Simplify(poly Polygon, eps float64) Polygon {
	n := len(poly)
	if n <= 2 {
		return poly.Clone()
	}

	keep := make([]bool, n)
	keep[0] = true
	keep[n-1] = true

	type span struct{ lo, hi int }
	work := []span{{0, n - 1}}

	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		if s.hi-s.lo < 2 {
			continue
		}

		a, b := poly[s.lo], poly[s.hi]
		maxDist := -1.0
		maxIdx := -1
		for i := s.lo + 1; i < s.hi; i++ {
			d := perpendicularDistance(poly[i], a, b)
			if d > maxDist {
				maxDist = d
				maxIdx = i
			}
		}

		if maxDist > eps {
			keep[maxIdx] = true
			work = append(work, span{s.lo, maxIdx}, span{maxIdx, s.hi})
		}
	}

	out := make(Polygon, 0, n)
	for i, k := range keep {
		if k {
			out = append(out, poly[i])
		}
	}
	return out
}

// perpendicularDistance returns the distance from p to the infinite line
// through a and b (or to the point a if a==b).
func perpendicularDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	length := ab.Length()
	if length < 1e-12 {
		return Dist(p, a)
	}
	ap := p.Sub(a)
	cross := ab.X*ap.Y - ab.Y*ap.X
	return abs(cross) / length
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
