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

// Resample walks poly accumulating arc length and emits a point every
// spacing units. The first vertex is always preserved; the last vertex is
// always appended even if short of a full spacing step.
func Resample(poly Polygon, spacing float64) Polygon {
	if len(poly) == 0 {
		return nil
	}
	if len(poly) == 1 || spacing <= 0 {
		return poly.Clone()
	}

	out := make(Polygon, 0, len(poly))
	out = append(out, poly[0])

	next := spacing // distance remaining along the walk until the next sample
	for i := 1; i < len(poly); i++ {
		a, b := poly[i-1], poly[i]
		segLen := Dist(a, b)
		if segLen < 1e-12 {
			continue
		}
		dir := b.Sub(a).Mul(1 / segLen)

		for next <= segLen {
			out = append(out, a.Add(dir.Mul(next)))
			next += spacing
		}
		next -= segLen
	}

	last := poly[len(poly)-1]
	if len(out) == 0 || Dist(out[len(out)-1], last) > 1e-9 {
		out = append(out, last)
	}
	return out
}
