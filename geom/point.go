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

// Package geom implements the 2-D geometry kernel shared by every stitch
// generator: point/vector arithmetic, polygon offsetting with mitered
// corners, Ramer-Douglas-Peucker simplification, uniform arc-length
// resampling, nearest-neighbour path sequencing and a scanline edge
// table for fill generation.
//
// All coordinates are millimetres, origin at the design centre, +x right,
// +y up.
package geom

import "seehuhn.de/go/geom/vec"

// Point is a position in millimetres. It is an alias for vec.Vec2 so that
// geometry built here composes directly with the rest of the
// seehuhn.de/go/geom ecosystem (matrix transforms, bounding rectangles).
type Point = vec.Vec2

// Polygon is an ordered sequence of points. A closed contour repeats its
// first point as its last; fill-bearing operations require at least 3
// distinct points.
type Polygon []Point

// Clone returns an independent copy of the polygon.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Closed reports whether the polygon's first and last points coincide.
func (p Polygon) Closed() bool {
	if len(p) < 2 {
		return false
	}
	return p[0] == p[len(p)-1]
}

// DistinctVertexCount returns the number of vertices ignoring a duplicated
// closing vertex.
func (p Polygon) DistinctVertexCount() int {
	if p.Closed() {
		return len(p) - 1
	}
	return len(p)
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	return a.Sub(b).Length()
}

// DistSq returns the squared Euclidean distance between two points,
// avoiding a square root where only comparison is needed.
func DistSq(a, b Point) float64 {
	d := a.Sub(b)
	return d.X*d.X + d.Y*d.Y
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged (callers that reach here on a degenerate edge are expected to
// have already special-cased the zero-length case).
func Normalize(v Point) Point {
	l := v.Length()
	if l < 1e-12 {
		return v
	}
	return v.Mul(1 / l)
}

// LeftNormal returns the unit vector 90 degrees counter-clockwise from a
// unit tangent, i.e. (-t.y, t.x).
func LeftNormal(t Point) Point {
	return Point{X: -t.Y, Y: t.X}
}
