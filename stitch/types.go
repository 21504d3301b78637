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

// Package stitch holds the data model shared by every other package in
// this module: the Stitch record itself, the VectorLayer input contract,
// the ProcessingConfig option bundle, and the sentinel errors the
// pipeline can surface.
package stitch

import "github.com/threadcraft/digitizer/geom"

// Point and Polygon are re-exported from geom so that callers assembling
// a VectorLayer never need to import the geometry kernel directly.
type (
	Point   = geom.Point
	Polygon = geom.Polygon
)

// Kind tags what a Stitch record means to the machine.
type Kind int

const (
	// KindStitch: the needle penetrates at (x,y); thread is laid from the
	// previous penetration.
	KindStitch Kind = iota
	// KindJump: the needle lifts, the frame moves, no penetration.
	KindJump
	// KindColorChange: the machine pauses for an operator color swap.
	KindColorChange
	// KindTrim: the thread is cut; position is informational.
	KindTrim
	// KindEnd: terminal marker, position equals the last preceding
	// position.
	KindEnd
)

func (k Kind) String() string {
	switch k {
	case KindStitch:
		return "stitch"
	case KindJump:
		return "jump"
	case KindColorChange:
		return "color_change"
	case KindTrim:
		return "trim"
	case KindEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Stitch is a single record in the machine sequence.
type Stitch struct {
	X, Y        float64
	Kind        Kind
	ColorIndex  int
	ColorHex    string
	IsStructure bool
}

// Pos returns the stitch's position as a geometry point.
func (s Stitch) Pos() Point { return Point{X: s.X, Y: s.Y} }

// VectorLayer is a (color, polygons) pair: one layer of the upstream
// vectorizer's output. Polygons are closed (first == last) and share one
// millimetre coordinate space.
type VectorLayer struct {
	ColorHex string
	Polygons []Polygon
}

// DesignStyle selects the upstream defaults bundle. The core does not
// branch on it directly; it is carried through ProcessingConfig because
// callers pass it alongside the options that do affect generation.
type DesignStyle string

const (
	DesignStyleVintage   DesignStyle = "vintage"
	DesignStylePatchLine DesignStyle = "patch_line"
	DesignStylePatchFill DesignStyle = "patch_fill"
)

// StitchType selects which generator produces a path's main stitches.
type StitchType string

const (
	StitchTypeRunning StitchType = "running"
	StitchTypeSatin   StitchType = "satin"
	StitchTypeTatami  StitchType = "tatami"
)
