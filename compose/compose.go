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

// Package compose implements the layer composer: it iterates colored
// layers in order, inserts jumps/trims between successive paths, inserts
// a color-change command between layers, and appends the terminal end
// marker.
package compose

import (
	"github.com/threadcraft/digitizer/geom"
	"github.com/threadcraft/digitizer/stitch"
	"github.com/threadcraft/digitizer/stitchgen"
	"github.com/threadcraft/digitizer/structure"
)

// Compose runs every layer through its chosen generator and joins the
// results into one ordered Stitch sequence terminated by a single End
// record. head is the implicit starting frame position, (0,0) for a
// fresh design.
func Compose(layers []stitch.VectorLayer, cfg stitch.ProcessingConfig, head stitch.Point) []stitch.Stitch {
	var design []stitch.Stitch
	haveContent := false

	for _, layer := range layers {
		layerStitches, newHead := composeLayer(layer, cfg, head)
		head = newHead
		if len(layerStitches) == 0 {
			continue
		}

		if haveContent {
			last := design[len(design)-1]
			design = append(design, stitch.Stitch{
				X: last.X, Y: last.Y, Kind: stitch.KindColorChange,
				ColorHex: last.ColorHex, IsStructure: true,
			})
			first := layerStitches[0]
			design = append(design, stitch.Stitch{
				X: first.X, Y: first.Y, Kind: stitch.KindJump,
				ColorHex: first.ColorHex, IsStructure: true,
			})
		}

		design = append(design, layerStitches...)
		haveContent = true
	}

	design = structure.RemoveSmallStitches(design, cfg.MinStitchLengthMM)
	design = appendEnd(design)
	return design
}

// composeLayer builds one layer's stitch sequence and returns the frame's
// new head position.
func composeLayer(layer stitch.VectorLayer, cfg stitch.ProcessingConfig, head stitch.Point) ([]stitch.Stitch, stitch.Point) {
	var out []stitch.Stitch

	paths := layerPaths(layer, cfg, head)
	for _, p := range paths {
		if len(p) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, connector(out[len(out)-1], p[0], cfg.TrimJumpDistanceMM)...)
		}
		out = append(out, p...)
	}

	if len(out) > 0 {
		head = out[len(out)-1].Pos()
	}
	return out, head
}

// layerPaths returns the fully-built (underlay+main, tied) stitch
// sequence for every path in the layer, in visiting order. For running
// and satin, each polygon is its own path, ordered by nearest-join
// starting from head. For tatami, every polygon in the layer is fed to
// the fill generator together as a single path: one region, even-odd
// fill across all of its contours.
func layerPaths(layer stitch.VectorLayer, cfg stitch.ProcessingConfig, head stitch.Point) [][]stitch.Stitch {
	if cfg.StitchType == stitch.StitchTypeTatami {
		polys := geom.NearestJoin(toGeomPolys(layer.Polygons), head)
		underlay := structure.UnderlayTatami(fromGeomPolys(polys), layer.ColorHex, cfg)
		main := stitchgen.Tatami(fromGeomPolys(polys), layer.ColorHex, cfg)
		return [][]stitch.Stitch{buildPath(underlay, main)}
	}

	ordered := geom.NearestJoin(toGeomPolys(layer.Polygons), head)
	paths := make([][]stitch.Stitch, 0, len(ordered))
	for _, poly := range ordered {
		spine := stitch.Polygon(poly)
		underlay := structure.Underlay(cfg.StitchType, spine, layer.ColorHex, cfg)
		main := generateMain(cfg.StitchType, spine, layer.ColorHex, cfg)
		paths = append(paths, buildPath(underlay, main))
	}
	return paths
}

func generateMain(stitchType stitch.StitchType, spine stitch.Polygon, colorHex string, cfg stitch.ProcessingConfig) []stitch.Stitch {
	switch stitchType {
	case stitch.StitchTypeSatin:
		return stitchgen.Satin(spine, colorHex, cfg)
	default:
		return stitchgen.Running(spine, colorHex, cfg)
	}
}

// buildPath ties in the underlay when present, or the main stitches when
// there is no underlay, ties off the main stitches, and concatenates
// underlay directly onto main: the underlay traces the same spine, so its
// end sits at or near the main block's start and no extra connector is
// inserted between them.
func buildPath(underlay, main []stitch.Stitch) []stitch.Stitch {
	if len(underlay) > 0 {
		underlay = structure.TieIn(underlay)
	} else {
		main = structure.TieIn(main)
	}
	main = structure.TieOff(main)

	out := make([]stitch.Stitch, 0, len(underlay)+len(main))
	out = append(out, underlay...)
	out = append(out, main...)
	return out
}

// connector inserts the inter-path travel stitches between the previous
// path's last record and the next path's first record: a trim+jump when
// the gap exceeds trim_jump_distance_mm, otherwise just a jump. A trim is
// not repeated when the previous path already ends in one.
func connector(from, to stitch.Stitch, trimJumpDistanceMM float64) []stitch.Stitch {
	d := geom.Dist(from.Pos(), to.Pos())
	var out []stitch.Stitch
	if d > trimJumpDistanceMM && from.Kind != stitch.KindTrim {
		out = append(out, stitch.Stitch{X: from.X, Y: from.Y, Kind: stitch.KindTrim, ColorHex: from.ColorHex, IsStructure: true})
	}
	out = append(out, stitch.Stitch{X: to.X, Y: to.Y, Kind: stitch.KindJump, ColorHex: to.ColorHex, IsStructure: true})
	return out
}

func appendEnd(stitches []stitch.Stitch) []stitch.Stitch {
	var x, y float64
	var color string
	if len(stitches) > 0 {
		last := stitches[len(stitches)-1]
		x, y, color = last.X, last.Y, last.ColorHex
	}
	return append(stitches, stitch.Stitch{X: x, Y: y, Kind: stitch.KindEnd, ColorHex: color, IsStructure: true})
}

func toGeomPolys(polys []stitch.Polygon) []geom.Polygon {
	out := make([]geom.Polygon, len(polys))
	for i, p := range polys {
		out[i] = geom.Polygon(p)
	}
	return out
}

func fromGeomPolys(polys []geom.Polygon) []stitch.Polygon {
	out := make([]stitch.Polygon, len(polys))
	for i, p := range polys {
		out[i] = stitch.Polygon(p)
	}
	return out
}
