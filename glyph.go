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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/wheel/shape"
)

// Placement positions a glyph on the wheel.
type Placement struct {
	// Center is the middle of the glyph.
	Center vec.Vec2

	// Angle rotates the glyph clockwise, in degrees.
	Angle float64

	// Size scales all glyph dimensions.  Wheels use 1 or 2.
	Size int
}

// Stroke is one element of a rendered glyph: a Line or an Arc.
type Stroke interface {
	drawOn(s Surface, style Style)
}

// Line is a straight glyph stroke.
type Line struct {
	From, To vec.Vec2
}

func (l Line) drawOn(s Surface, style Style) {
	s.DrawLine(style, l.From, l.To)
}

// Arc is a circular glyph stroke.  Start and Sweep follow the clockwise
// screen convention of [Surface].
type Arc struct {
	Center vec.Vec2
	Radius float64
	Start  float64
	Sweep  float64
}

func (a Arc) drawOn(s Surface, style Style) {
	s.DrawArc(style, shape.Square(a.Center, a.Radius), a.Start, a.Sweep)
}

// Glyph returns the strokes which draw c at the given placement.
// The second return value is false if there is no glyph for c.
func Glyph(c rune, p Placement) ([]Stroke, bool) {
	draw, ok := glyphs[c]
	if !ok {
		return nil, false
	}
	pen := &pen{
		c:     p.Center,
		angle: p.Angle,
		size:  float64(p.Size),
	}
	draw(pen)
	return pen.out, true
}

// DrawGlyph draws c onto s.  Characters without a glyph are skipped.
func DrawGlyph(s Surface, style Style, c rune, p Placement) {
	strokes, _ := Glyph(c, p)
	for _, st := range strokes {
		st.drawOn(s, style)
	}
}

// HasGlyph reports whether c can be drawn.
func HasGlyph(c rune) bool {
	_, ok := glyphs[c]
	return ok
}

// polar returns the point at distance length from start, in the
// counter-clockwise direction angle (in degrees).  The y-axis points down.
func polar(start vec.Vec2, length, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return vec.Vec2{X: start.X + length*cos, Y: start.Y - length*sin}
}

// pen collects the strokes of one glyph.  Lengths passed to its methods
// are in glyph units and get multiplied by the size; directions are
// rotated by the placement angle.
type pen struct {
	c     vec.Vec2
	angle float64
	size  float64
	out   []Stroke
}

// pt returns the point length units away from from, in the unrotated
// counter-clockwise direction dir.
func (p *pen) pt(from vec.Vec2, length, dir float64) vec.Vec2 {
	return polar(from, length*p.size, dir-p.angle)
}

func (p *pen) line(a, b vec.Vec2) {
	p.out = append(p.out, Line{From: a, To: b})
}

// arc adds an arc whose start angle is given in the unrotated clockwise
// convention.
func (p *pen) arc(center vec.Vec2, radius, start, sweep float64) {
	p.out = append(p.out, Arc{
		Center: center,
		Radius: radius * p.size,
		Start:  start + p.angle,
		Sweep:  sweep,
	})
}

// circle adds a full circle, which looks the same at every rotation.
func (p *pen) circle(center vec.Vec2, radius float64) {
	p.out = append(p.out, Arc{Center: center, Radius: radius * p.size, Sweep: 360})
}
