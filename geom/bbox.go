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

import "seehuhn.de/go/geom/rect"

// BBox accumulates an axis-aligned bounding box over a stream of points.
// It wraps rect.Rect so the DST encoder's header bounds and the geometry
// kernel share one representation.
type BBox struct {
	r     rect.Rect
	empty bool
}

// NewBBox returns an empty bounding box.
func NewBBox() BBox {
	return BBox{empty: true}
}

// Add extends the box to include p.
func (b *BBox) Add(p Point) {
	if b.empty {
		b.r = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
		b.empty = false
		return
	}
	if p.X < b.r.LLx {
		b.r.LLx = p.X
	}
	if p.X > b.r.URx {
		b.r.URx = p.X
	}
	if p.Y < b.r.LLy {
		b.r.LLy = p.Y
	}
	if p.Y > b.r.URy {
		b.r.URy = p.Y
	}
}

// Empty reports whether no point has been added yet.
func (b BBox) Empty() bool { return b.empty }

// Rect returns the accumulated rectangle. Zero-value if Empty.
func (b BBox) Rect() rect.Rect { return b.r }

// MaxX returns the largest x seen, or 0 if empty.
func (b BBox) MaxX() float64 {
	if b.empty {
		return 0
	}
	return b.r.URx
}

// MinX returns the smallest x seen, or 0 if empty.
func (b BBox) MinX() float64 {
	if b.empty {
		return 0
	}
	return b.r.LLx
}

// MaxY returns the largest y seen, or 0 if empty.
func (b BBox) MaxY() float64 {
	if b.empty {
		return 0
	}
	return b.r.URy
}

// MinY returns the smallest y seen, or 0 if empty.
func (b BBox) MinY() float64 {
	if b.empty {
		return 0
	}
	return b.r.LLy
}
