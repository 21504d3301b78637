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

// Package preview rasterizes a stitch sequence to a grayscale coverage
// buffer for test-only visual sanity checks. It has no place in the
// production pipeline: neither the root digitizer package nor compose or
// stitchgen imports it.
package preview

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/threadcraft/digitizer/stitch"
)

// Options controls how a Render maps millimetre coordinates to pixels.
type Options struct {
	Width, Height int
	ScalePxPerMM  float64
	OriginX       float64 // mm position mapped to pixel column 0
	OriginY       float64 // mm position mapped to pixel row Height (Y-up to Y-down flip)
	LineWidthMM   float64 // thickness used to draw each penetrating segment
}

// DefaultLineWidthMM is the segment thickness used when
// Options.LineWidthMM is not positive: thin enough not to obscure adjacent
// rows at typical preview scales.
const DefaultLineWidthMM = 0.3

// Render draws every stitch-to-stitch segment between consecutive
// KindStitch records as a thin filled quad; jumps, trims, color changes
// and the end marker break the pen up without drawing anything. Returns
// an *image.Alpha coverage buffer the caller can PNG-encode or inspect
// pixel-by-pixel.
func Render(stitches []stitch.Stitch, opts Options) *image.Alpha {
	r := vector.NewRasterizer(opts.Width, opts.Height)
	lineWidth := opts.LineWidthMM
	if lineWidth <= 0 {
		lineWidth = DefaultLineWidthMM
	}

	toPixel := func(p stitch.Point) (float32, float32) {
		x := (p.X - opts.OriginX) * opts.ScalePxPerMM
		y := float64(opts.Height) - (p.Y-opts.OriginY)*opts.ScalePxPerMM
		return float32(x), float32(y)
	}

	var havePrev bool
	var prev stitch.Stitch

	for _, s := range stitches {
		if s.Kind != stitch.KindStitch {
			havePrev = false
			continue
		}
		if havePrev {
			addSegmentQuad(r, toPixel, prev.Pos(), s.Pos(), lineWidth*opts.ScalePxPerMM)
		}
		prev = s
		havePrev = true
	}

	dst := image.NewAlpha(image.Rect(0, 0, opts.Width, opts.Height))
	src := image.NewUniform(color.Alpha{A: 255})
	r.Draw(dst, dst.Bounds(), src, image.Point{})
	return dst
}

// addSegmentQuad fills a thin rectangle along the segment a->b, width
// pixels wide, by tracing its four corners into the rasterizer. This is
// how a zero-width penetration line becomes visible coverage.
func addSegmentQuad(r *vector.Rasterizer, toPixel func(stitch.Point) (float32, float32), a, b stitch.Point, widthPx float64) {
	ax, ay := toPixel(a)
	bx, by := toPixel(b)

	dx, dy := float64(bx-ax), float64(by-ay)
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return
	}
	nx, ny := -dy/length*widthPx/2, dx/length*widthPx/2

	p0 := fPoint{float64(ax) + nx, float64(ay) + ny}
	p1 := fPoint{float64(bx) + nx, float64(by) + ny}
	p2 := fPoint{float64(bx) - nx, float64(by) - ny}
	p3 := fPoint{float64(ax) - nx, float64(ay) - ny}

	r.MoveTo(float32(p0.x), float32(p0.y))
	r.LineTo(float32(p1.x), float32(p1.y))
	r.LineTo(float32(p2.x), float32(p2.y))
	r.LineTo(float32(p3.x), float32(p3.y))
	r.ClosePath()
}

type fPoint struct{ x, y float64 }

// EncodePNG writes img as a PNG to w.
func EncodePNG(img image.Image, w io.Writer) error {
	return png.Encode(w, img)
}

// DecodePNG reads a grayscale/alpha coverage PNG and flattens it to a
// byte-per-pixel buffer for pixel-by-pixel comparison in tests.
func DecodePNG(r io.Reader) (pix []byte, width, height int, err error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, 0, 0, err
	}
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	pix = make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			_, _, _, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pix[y*width+x] = uint8(a >> 8)
		}
	}
	return pix, width, height, nil
}
