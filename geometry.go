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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FrameMargin is the extra space, in pixels, added around the wheel's
// bounding box for the off-screen frame.
const FrameMargin = 60

// markerSide is the side length of the triangular marker.
const markerSide = 25

// Geometry describes the placement of a wheel on the screen.
type Geometry struct {
	Center vec.Vec2
	Radius float64

	// Bounds is the bounding square of the wheel.
	Bounds rect.Rect

	// Marker holds the vertices of the triangle at 12 o'clock which
	// points at the winning sector.
	Marker [3]vec.Vec2
}

func newGeometry(center vec.Vec2, radius float64) Geometry {
	apex := vec.Vec2{X: center.X, Y: center.Y - (radius + 3) + markerSide}
	return Geometry{
		Center: center,
		Radius: radius,
		Bounds: rect.Rect{
			LLx: center.X - radius,
			LLy: center.Y - radius,
			URx: center.X + radius,
			URy: center.Y + radius,
		},
		Marker: [3]vec.Vec2{
			apex,
			polar(apex, markerSide, 60),
			polar(apex, markerSide, 120),
		},
	}
}

// FrameSize returns the size of an off-screen frame which holds the
// whole wheel.  Frames have their origin at the screen origin.
func (g Geometry) FrameSize() (width, height int) {
	width = int(math.Ceil(g.Bounds.URx)) + FrameMargin/2
	height = int(math.Ceil(g.Bounds.URy)) + FrameMargin/2
	return width, height
}
