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

// call records one drawing operation.
type call struct {
	op    string
	style Style
	color color.RGBA
	box   rect.Rect
	start float64
	sweep float64
	a, b  vec.Vec2
	pts   []vec.Vec2
}

// recorder is a Target and Frame which remembers all drawing calls of the
// most recent frame.
type recorder struct {
	calls   []call
	width   int
	height  int
	flushed int
	err     error
}

func (r *recorder) NewFrame(width, height int) Frame {
	r.width, r.height = width, height
	r.calls = r.calls[:0]
	return r
}

func (r *recorder) Flush() error {
	r.flushed++
	return r.err
}

func (r *recorder) DrawArc(s Style, box rect.Rect, start, sweep float64) {
	r.calls = append(r.calls, call{op: "arc", style: s, box: box, start: start, sweep: sweep})
}

func (r *recorder) DrawLine(s Style, a, b vec.Vec2) {
	r.calls = append(r.calls, call{op: "line", style: s, a: a, b: b})
}

func (r *recorder) FillPie(c color.RGBA, box rect.Rect, start, sweep float64) {
	r.calls = append(r.calls, call{op: "fillpie", color: c, box: box, start: start, sweep: sweep})
}

func (r *recorder) DrawPie(s Style, box rect.Rect, start, sweep float64) {
	r.calls = append(r.calls, call{op: "drawpie", style: s, box: box, start: start, sweep: sweep})
}

func (r *recorder) FillPolygon(c color.RGBA, pts []vec.Vec2) {
	r.calls = append(r.calls, call{op: "polygon", color: c, pts: append([]vec.Vec2(nil), pts...)})
}

// count returns the number of recorded calls with the given op.
func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}
