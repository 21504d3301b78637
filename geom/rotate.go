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

import (
	"math"

	"seehuhn.de/go/geom/matrix"
)

// rotationMatrix builds the linear part of a CCW rotation by angleRad,
// using the [a b c d e f] affine layout applied as X: a*x+c*y, Y: b*x+d*y.
func rotationMatrix(angleRad float64) matrix.Matrix {
	s, c := math.Sincos(angleRad)
	return matrix.Matrix{c, s, -s, c, 0, 0}
}

// applyLinear applies the linear (rotation) part of m to v, mirroring
// Rasterizer.transformLinear.
func applyLinear(m matrix.Matrix, v Point) Point {
	return Point{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// RotatePoint rotates p around the origin by angleDeg degrees
// counter-clockwise.
func RotatePoint(p Point, angleDeg float64) Point {
	m := rotationMatrix(angleDeg * math.Pi / 180)
	return applyLinear(m, p)
}

// Rotate rotates every vertex of poly around the origin by angleDeg
// degrees counter-clockwise. Used by the tatami generator to align fill
// rows with the x-axis before sweeping, and to rotate penetrations back
// afterwards.
func Rotate(poly Polygon, angleDeg float64) Polygon {
	m := rotationMatrix(angleDeg * math.Pi / 180)
	out := make(Polygon, len(poly))
	for i, p := range poly {
		out[i] = applyLinear(m, p)
	}
	return out
}
