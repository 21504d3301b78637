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

import "sort"

// edge is a non-horizontal polygon edge stored with p_lo.y < p_hi.y, ready
// to drive a half-open [y_lo,y_hi) active-edge scanline sweep.
type edge struct {
	loX, loY float64
	hiX, hiY float64
}

// EdgeTable is a scanline-ready set of polygon edges built once and
// queried for every fill row.
type EdgeTable struct {
	edges []edge
}

// BuildEdgeTable collects every non-near-horizontal edge from one or more
// polygons (treated as a single even-odd fill region) into an edge table.
func BuildEdgeTable(polys []Polygon) EdgeTable {
	var et EdgeTable
	for _, poly := range polys {
		pts := poly
		if !pts.Closed() && len(pts) > 0 {
			pts = append(Polygon{}, pts...)
			pts = append(pts, pts[0])
		}
		for i := 0; i+1 < len(pts); i++ {
			a, b := pts[i], pts[i+1]
			if abs(a.Y-b.Y) < 0.001 {
				continue
			}
			if a.Y < b.Y {
				et.edges = append(et.edges, edge{a.X, a.Y, b.X, b.Y})
			} else {
				et.edges = append(et.edges, edge{b.X, b.Y, a.X, a.Y})
			}
		}
	}
	return et
}

// Intersections returns the sorted x coordinates where every edge crosses
// row y, using the half-open [y_lo, y_hi) rule so a row passing exactly
// through a shared vertex is not counted twice (the source's scanline fill
// boundary rule, ported from rasteriser.go's active-edge y-interval test).
func (et EdgeTable) Intersections(y float64) []float64 {
	var xs []float64
	for _, e := range et.edges {
		if y < e.loY || y >= e.hiY {
			continue
		}
		t := (y - e.loY) / (e.hiY - e.loY)
		xs = append(xs, e.loX+t*(e.hiX-e.loX))
	}
	sort.Float64s(xs)
	return xs
}

// Empty reports whether the table has no edges to sweep.
func (et EdgeTable) Empty() bool { return len(et.edges) == 0 }

// YRange returns the minimum and maximum y among the table's edges.
func (et EdgeTable) YRange() (minY, maxY float64) {
	first := true
	for _, e := range et.edges {
		if first {
			minY, maxY = e.loY, e.hiY
			first = false
			continue
		}
		if e.loY < minY {
			minY = e.loY
		}
		if e.hiY > maxY {
			maxY = e.hiY
		}
	}
	return
}
