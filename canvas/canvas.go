// seehuhn.de/go/wheel - a spinning game wheel
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Package canvas draws wheels into in-memory RGBA images.
//
// A [Canvas] implements the drawing primitives of [wheel.Surface] using
// an anti-aliased scanline rasterizer.  A [Target] hands out canvases as
// off-screen frames and copies finished frames to a visible image.
package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/wheel"
	"seehuhn.de/go/wheel/raster"
	"seehuhn.de/go/wheel/shape"
)

// Canvas is a [wheel.Surface] backed by an RGBA image.  Shapes are
// composited onto the image using the source-over operator.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	Image *image.RGBA

	r *raster.Rasterizer
}

var _ wheel.Surface = (*Canvas)(nil)

// New allocates a transparent canvas of the given size.
func New(width, height int) *Canvas {
	return NewFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewFromImage returns a canvas which draws onto img.  Pixel coordinates
// are relative to the image origin.
func NewFromImage(img *image.RGBA) *Canvas {
	return &Canvas{
		Image: img,
		r:     raster.NewRasterizer(clipRect(img.Bounds())),
	}
}

func clipRect(b image.Rectangle) rect.Rect {
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}

// Clear sets every pixel of the canvas to c.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.Image, c.Image.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawArc implements the [wheel.Surface] interface.
func (c *Canvas) DrawArc(s wheel.Style, box rect.Rect, start, sweep float64) {
	c.stroke(s, shape.Arc(box, start, sweep))
}

// DrawLine implements the [wheel.Surface] interface.
func (c *Canvas) DrawLine(s wheel.Style, a, b vec.Vec2) {
	c.stroke(s, shape.Segment(a, b))
}

// FillPie implements the [wheel.Surface] interface.
func (c *Canvas) FillPie(col color.RGBA, box rect.Rect, start, sweep float64) {
	c.fill(col, shape.Pie(box, start, sweep))
}

// DrawPie implements the [wheel.Surface] interface.
func (c *Canvas) DrawPie(s wheel.Style, box rect.Rect, start, sweep float64) {
	c.stroke(s, shape.Pie(box, start, sweep))
}

// FillPolygon implements the [wheel.Surface] interface.
func (c *Canvas) FillPolygon(col color.RGBA, pts []vec.Vec2) {
	c.fill(col, shape.Polygon(pts))
}

func (c *Canvas) fill(col color.RGBA, p *path.Data) {
	c.r.Fill(p, c.blend(col))
}

func (c *Canvas) stroke(s wheel.Style, p *path.Data) {
	c.r.Width = s.Width
	c.r.Stroke(p, c.blend(s.Color))
}

// blend returns an emit function which composites col onto the image,
// scaled by the pixel coverage.
func (c *Canvas) blend(col color.RGBA) raster.EmitFunc {
	sr, sg, sb, sa := float32(col.R), float32(col.G), float32(col.B), float32(col.A)
	img := c.Image
	return func(y, xMin int, coverage []float32) {
		b := img.Bounds()
		if y < b.Min.Y || y >= b.Max.Y {
			return
		}
		for i, cov := range coverage {
			x := xMin + i
			if cov <= 0 || x < b.Min.X || x >= b.Max.X {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			off := img.PixOffset(x, y)
			pix := img.Pix[off : off+4 : off+4]
			keep := 1 - cov*sa/255
			pix[0] = toByte(sr*cov + float32(pix[0])*keep)
			pix[1] = toByte(sg*cov + float32(pix[1])*keep)
			pix[2] = toByte(sb*cov + float32(pix[2])*keep)
			pix[3] = toByte(sa*cov + float32(pix[3])*keep)
		}
	}
}

func toByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
