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

package wheel

import (
	"image/color"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Style describes how lines are drawn.
type Style struct {
	Color color.RGBA
	Width float64
}

// Surface is the set of drawing primitives needed to paint a wheel.
//
// Coordinates are in pixels with the y-axis pointing down.  Angles are in
// degrees, measured clockwise from the positive x-axis.  Arcs and pies are
// taken from the ellipse inscribed in the given box.
type Surface interface {
	// DrawArc strokes the arc from start through sweep degrees.
	DrawArc(s Style, box rect.Rect, start, sweep float64)

	// DrawLine strokes the straight line from a to b.
	DrawLine(s Style, a, b vec.Vec2)

	// FillPie fills the wedge from start through sweep degrees.
	FillPie(c color.RGBA, box rect.Rect, start, sweep float64)

	// DrawPie strokes the outline of the wedge.
	DrawPie(s Style, box rect.Rect, start, sweep float64)

	// FillPolygon fills the closed polygon through pts.
	FillPolygon(c color.RGBA, pts []vec.Vec2)
}

// Frame is an off-screen Surface.  Flush copies the finished frame to the
// visible destination in a single operation.
type Frame interface {
	Surface
	Flush() error
}

// Target is a visible drawing destination.  Each call to NewFrame returns
// an empty frame of the given size; the frame is only valid until it has
// been flushed.
type Target interface {
	NewFrame(width, height int) Frame
}

var (
	borderStyle = Style{Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}, Width: 2}
	glyphStyle  = Style{Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}, Width: 3}
	markerColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
