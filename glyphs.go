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

// A recipe emits the strokes of one character through a pen.
type recipe func(p *pen)

// glyphs maps each drawable character to its stroke recipe.
// To support a new character, add an entry here.
var glyphs = map[rune]recipe{
	'0': func(p *pen) {
		p.circle(p.c, 10)
	},
	'1': func(p *pen) {
		top := p.pt(p.c, 10, 90)
		btm := p.pt(p.c, 10, 270)
		tip := p.pt(top, 7, 225)
		p.line(tip, top)
		p.line(top, btm)
		p.line(p.pt(btm, 7, 180), p.pt(btm, 7, 0))
	},
	'2': func(p *pen) {
		topRight := p.pt(p.c, 10, 45)
		btmLeft := p.pt(p.c, 10, 225)
		p.line(btmLeft, topRight)
		p.line(btmLeft, p.pt(btmLeft, 15, 0))
		p.arc(p.pt(topRight, 7, 180), 7, 180, 180)
	},
	'3': func(p *pen) {
		p.arc(p.pt(p.c, 7, 90), 7, 170, 260)
		p.arc(p.pt(p.c, 7, 270), 7, 260, 260)
	},
	'4': func(p *pen) {
		x := p.pt(p.c, 3, 315)
		top := p.pt(x, 15, 90)
		left := p.pt(x, 15, 180)
		p.line(p.pt(x, 8, 270), top)
		p.line(left, top)
		p.line(left, p.pt(x, 8, 0))
	},
	'5': func(p *pen) {
		midLeft := p.pt(p.c, 3, 135)
		topLeft := p.pt(midLeft, 11, 80)
		p.line(topLeft, p.pt(topLeft, 12, 0))
		p.line(midLeft, topLeft)
		p.arc(p.pt(p.c, 5, 270), 8, 245, 250)
	},
	'6': func(p *pen) {
		left := p.pt(p.c, 7, 180)
		p.line(left, p.pt(left, 20, 60))
		p.circle(p.pt(p.c, 2, 270), 7)
	},
	'7': func(p *pen) {
		topLeft := p.pt(p.c, 15, 135)
		topRight := p.pt(p.c, 15, 45)
		p.line(topLeft, topRight)
		p.line(topRight, p.pt(topRight, 28, 225))
	},
	'8': func(p *pen) {
		p.circle(p.pt(p.c, 7, 90), 7)
		p.circle(p.pt(p.c, 7, 270), 7)
	},
	'9': func(p *pen) {
		right := p.pt(p.c, 7, 0)
		p.line(right, p.pt(right, 20, 240))
		p.circle(p.pt(p.c, 2, 90), 7)
	},

	'A': func(p *pen) {
		top := p.pt(p.c, 10, 90)
		p.line(p.pt(top, 20, 240), top)
		p.line(p.pt(top, 20, 300), top)
		p.line(p.pt(p.c, 7, 180), p.pt(p.c, 7, 0))
	},
	'B': func(p *pen) {
		midLeft := p.pt(p.c, 7, 180)
		topLeft := p.pt(midLeft, 10, 90)
		btmLeft := p.pt(midLeft, 10, 270)
		p.line(topLeft, btmLeft)
		p.line(topLeft, p.pt(p.c, 10, 90))
		p.line(midLeft, p.c)
		p.line(btmLeft, p.pt(p.c, 10, 270))
		p.arc(p.pt(p.c, 5, 90), 5, 270, 180)
		p.arc(p.pt(p.c, 5, 270), 5, 270, 180)
	},
	'C': func(p *pen) {
		p.arc(p.c, 11, 45, 270)
	},
	'D': func(p *pen) {
		// the bowl is shifted by a fixed 5 pixels, independent of size
		left := p.pt(p.c, 12-5/p.size, 180)
		p.line(p.pt(left, 12, 270), p.pt(left, 12, 90))
		p.arc(left, 12, 270, 180)
	},
	'E': func(p *pen) {
		midLeft := p.pt(p.c, 7, 180)
		topLeft := p.pt(midLeft, 10, 90)
		btmLeft := p.pt(midLeft, 10, 270)
		p.line(topLeft, btmLeft)
		p.line(topLeft, p.pt(topLeft, 10, 0))
		p.line(midLeft, p.c)
		p.line(btmLeft, p.pt(btmLeft, 10, 0))
	},
	'F': func(p *pen) {
		midLeft := p.pt(p.c, 9, 180)
		topLeft := p.pt(midLeft, 10, 90)
		p.line(topLeft, p.pt(midLeft, 10, 270))
		p.line(topLeft, p.pt(topLeft, 12, 0))
		p.line(midLeft, p.c)
	},
	'G': func(p *pen) {
		inner := p.pt(p.c, 4, 0)
		p.line(inner, p.pt(inner, 11, 0))
		p.arc(p.c, 10, 0, 290)
	},
}
