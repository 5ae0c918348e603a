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

// Package pdfsurface draws wheels as vector graphics into PDF files.
//
// Each frame becomes a single-page PDF file.  Drawing uses the same
// screen coordinate system as the other surfaces, with the origin in the
// top-left corner and the y-axis pointing down.
package pdfsurface

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/wheel"
	"seehuhn.de/go/wheel/shape"
)

// Target is a [wheel.Target] which writes every frame to the PDF file
// at Path, replacing the previous frame.
type Target struct {
	Path string

	// Background, if non-nil, is painted over the whole page before
	// the wheel.
	Background *color.RGBA
}

var _ wheel.Target = (*Target)(nil)

// NewFrame implements the [wheel.Target] interface.  Errors creating the
// file are reported by Flush.
func (t *Target) NewFrame(width, height int) wheel.Frame {
	w, h := float64(width), float64(height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(t.Path, paper, pdf.V1_7, nil)
	if err != nil {
		return &Frame{err: err}
	}

	if bg := t.Background; bg != nil {
		page.SetFillColor(deviceColor(*bg))
		page.Rectangle(0, 0, w, h)
		page.Fill()
	}

	// PDF places the origin in the bottom-left corner.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	return &Frame{page: page}
}

// Frame is a single PDF page.
type Frame struct {
	page *document.Page
	err  error
}

var _ wheel.Frame = (*Frame)(nil)

// DrawArc implements the [wheel.Surface] interface.
func (f *Frame) DrawArc(s wheel.Style, box rect.Rect, start, sweep float64) {
	f.stroke(s, shape.Arc(box, start, sweep))
}

// DrawLine implements the [wheel.Surface] interface.
func (f *Frame) DrawLine(s wheel.Style, a, b vec.Vec2) {
	f.stroke(s, shape.Segment(a, b))
}

// FillPie implements the [wheel.Surface] interface.
func (f *Frame) FillPie(c color.RGBA, box rect.Rect, start, sweep float64) {
	f.fill(c, shape.Pie(box, start, sweep))
}

// DrawPie implements the [wheel.Surface] interface.
func (f *Frame) DrawPie(s wheel.Style, box rect.Rect, start, sweep float64) {
	f.stroke(s, shape.Pie(box, start, sweep))
}

// FillPolygon implements the [wheel.Surface] interface.
func (f *Frame) FillPolygon(c color.RGBA, pts []vec.Vec2) {
	f.fill(c, shape.Polygon(pts))
}

// Flush finishes the page and closes the file.
func (f *Frame) Flush() error {
	if f.err != nil {
		return f.err
	}
	if f.page == nil {
		return nil
	}
	err := f.page.Close()
	f.page = nil
	return err
}

func (f *Frame) fill(c color.RGBA, p *path.Data) {
	if f.page == nil || len(p.Cmds) == 0 {
		return
	}
	f.page.SetFillColor(deviceColor(c))
	f.appendPath(p)
	f.page.Fill()
}

func (f *Frame) stroke(s wheel.Style, p *path.Data) {
	if f.page == nil || len(p.Cmds) == 0 {
		return
	}
	f.page.SetStrokeColor(deviceColor(s.Color))
	f.page.SetLineWidth(s.Width)
	f.appendPath(p)
	f.page.Stroke()
}

// appendPath adds p to the current path.  PDF has no quadratic curves,
// so these are converted to cubics.
func (f *Frame) appendPath(p *path.Data) {
	page := f.page
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// deviceColor converts c to the DeviceRGB color space, ignoring alpha.
func deviceColor(c color.RGBA) pdfcolor.Color {
	return pdfcolor.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
