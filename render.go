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

// Package wheel implements a spinning game wheel.
//
// A wheel is divided into sectors, each carrying a short label made of
// the digits 0-9 and the letters A-G.  [Model.Spin] draws a random total
// rotation and immediately returns the label which will win.  Repeated
// calls to [Model.Advance] then animate the spin: an initial phase of
// constant speed, a phase of linear deceleration, and finally a pulsing
// highlight of the winning sector.
//
// Drawing is done through the [Surface] interface, so that the wheel can
// be rendered to raster images, PDF files or any other device which can
// draw lines, arcs and filled wedges.  Labels are drawn using a small
// built-in stroke font, see [Glyph].
package wheel

// Render draws the wheel into a fresh frame obtained from t and then
// flushes the frame.
func (w *Model) Render(t Target) error {
	width, height := w.geom.FrameSize()
	f := t.NewFrame(width, height)
	w.Paint(f)
	return f.Flush()
}

// Draw renders the wheel to the attached target.
func (w *Model) Draw() error {
	if w.target == nil {
		return ErrNoSurface
	}
	return w.Render(w.target)
}

// Paint draws all sectors, their labels and the marker onto s.
// Labels are drawn after all wedges, so that no wedge covers a label.
func (w *Model) Paint(s Surface) {
	sa := w.m.sectorAngle
	n := len(w.m.sectors)
	for i := range w.m.sectors {
		w.m.sectors[i].drawWedge(s, w.geom, sa)
	}
	for i := range w.m.sectors {
		w.m.sectors[i].drawLabel(s, w.geom, sa, n)
	}
	s.FillPolygon(markerColor, w.geom.Marker[:])
}
