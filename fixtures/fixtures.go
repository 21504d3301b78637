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

// Package fixtures builds sample VectorLayers for tests and examples:
// a handful of small polygon shapes in millimetre coordinates, shared
// across the module so generator and encoder tests don't each hand-roll
// their own geometry.
package fixtures

import (
	"math"

	"github.com/threadcraft/digitizer/stitch"
)

// Square returns a single closed square polygon of the given side length
// in mm, lower-left corner at the origin.
func Square(side float64) stitch.Polygon {
	return Rectangle(0, 0, side, side)
}

// Rectangle returns a closed rectangle spanning (x1,y1)-(x2,y2).
func Rectangle(x1, y1, x2, y2 float64) stitch.Polygon {
	return stitch.Polygon{
		{X: x1, Y: y1}, {X: x2, Y: y1}, {X: x2, Y: y2}, {X: x1, Y: y2}, {X: x1, Y: y1},
	}
}

// Triangle returns a closed triangle over the three given vertices.
func Triangle(x1, y1, x2, y2, x3, y3 float64) stitch.Polygon {
	return stitch.Polygon{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}, {X: x1, Y: y1}}
}

// FivePointStar returns a self-intersecting five-pointed star centred at
// (cx,cy) with outer radius r, the vertices connected every second point.
func FivePointStar(cx, cy, r float64) stitch.Polygon {
	var pts [5]stitch.Point
	for i := range pts {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = stitch.Point{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}

	order := [5]int{0, 2, 4, 1, 3}
	poly := make(stitch.Polygon, 0, 6)
	for _, i := range order {
		poly = append(poly, pts[i])
	}
	poly = append(poly, poly[0])
	return poly
}

// ConcentricRectangles returns two nested rectangles around (cx,cy): an
// outer one of half-size outerSize and an inner one of half-size
// innerSize, wound in opposite directions (useful for even-odd fill
// scenarios in the tatami generator).
func ConcentricRectangles(cx, cy, outerSize, innerSize float64) (outer, inner stitch.Polygon) {
	outer = stitch.Polygon{
		{X: cx - outerSize, Y: cy - outerSize},
		{X: cx + outerSize, Y: cy - outerSize},
		{X: cx + outerSize, Y: cy + outerSize},
		{X: cx - outerSize, Y: cy + outerSize},
		{X: cx - outerSize, Y: cy - outerSize},
	}
	inner = stitch.Polygon{
		{X: cx - innerSize, Y: cy - innerSize},
		{X: cx - innerSize, Y: cy + innerSize},
		{X: cx + innerSize, Y: cy + innerSize},
		{X: cx + innerSize, Y: cy - innerSize},
		{X: cx - innerSize, Y: cy - innerSize},
	}
	return outer, inner
}

// Spine returns a thin-column spine: a near-degenerate rectangle of the
// given length and a fixed 0.2mm width, used to exercise satin column
// generation on a straight run.
func Spine(lengthMM float64) stitch.Polygon {
	return Rectangle(0, -0.1, lengthMM, 0.1)
}

// RunningLayer bundles a single polygon into a one-layer design with the
// given color.
func RunningLayer(colorHex string, poly stitch.Polygon) stitch.VectorLayer {
	return stitch.VectorLayer{ColorHex: colorHex, Polygons: []stitch.Polygon{poly}}
}

// FillLayer bundles a set of polygons sharing one color, for tatami fills
// over multiple (possibly nested) contours.
func FillLayer(colorHex string, polys ...stitch.Polygon) stitch.VectorLayer {
	return stitch.VectorLayer{ColorHex: colorHex, Polygons: polys}
}
