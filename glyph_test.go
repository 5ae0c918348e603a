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
	"testing"

	"seehuhn.de/go/geom/vec"
)

const drawable = "0123456789ABCDEFG"

func TestGlyphCoverage(t *testing.T) {
	for _, c := range drawable {
		strokes, ok := Glyph(c, Placement{Center: vec.Vec2{X: 50, Y: 50}, Size: 1})
		if !ok || len(strokes) == 0 {
			t.Errorf("no strokes for %q", c)
		}
		if !HasGlyph(c) {
			t.Errorf("HasGlyph(%q) = false", c)
		}
	}
	for _, c := range "Hah-. ÄZ" {
		if strokes, ok := Glyph(c, Placement{Size: 1}); ok || strokes != nil {
			t.Errorf("unexpected glyph for %q", c)
		}
	}
}

func TestDrawGlyphUnsupported(t *testing.T) {
	rec := &recorder{}
	DrawGlyph(rec, glyphStyle, 'x', Placement{Size: 2})
	if len(rec.calls) != 0 {
		t.Errorf("unsupported character drew %d strokes", len(rec.calls))
	}

	DrawGlyph(rec, glyphStyle, '8', Placement{Size: 2})
	if len(rec.calls) != 2 || rec.count("arc") != 2 {
		t.Fatalf("'8' drew %v", rec.calls)
	}
	for _, c := range rec.calls {
		if c.style != glyphStyle {
			t.Errorf("stroke drawn with style %v, want %v", c.style, glyphStyle)
		}
		if w := c.box.URx - c.box.LLx; math.Abs(w-28) > 1e-9 {
			t.Errorf("circle of '8' has diameter %g, want 28", w)
		}
	}
}

func near(a, b vec.Vec2) bool {
	return a.Sub(b).Length() < 1e-9
}

func TestGlyphOne(t *testing.T) {
	strokes, _ := Glyph('1', Placement{Size: 1})
	if len(strokes) != 3 {
		t.Fatalf("got %d strokes, want 3", len(strokes))
	}
	s := math.Sqrt2 / 2 * 7
	want := []Line{
		{From: vec.Vec2{X: -s, Y: -10 + s}, To: vec.Vec2{X: 0, Y: -10}},
		{From: vec.Vec2{X: 0, Y: -10}, To: vec.Vec2{X: 0, Y: 10}},
		{From: vec.Vec2{X: -7, Y: 10}, To: vec.Vec2{X: 7, Y: 10}},
	}
	for i, st := range strokes {
		l, ok := st.(Line)
		if !ok {
			t.Fatalf("stroke %d is %T, want Line", i, st)
		}
		if !near(l.From, want[i].From) || !near(l.To, want[i].To) {
			t.Errorf("stroke %d: got %v, want %v", i, l, want[i])
		}
	}
}

func TestGlyphZero(t *testing.T) {
	c := vec.Vec2{X: 12, Y: 34}
	strokes, _ := Glyph('0', Placement{Center: c, Angle: 33, Size: 2})
	if len(strokes) != 1 {
		t.Fatalf("got %d strokes, want 1", len(strokes))
	}
	a, ok := strokes[0].(Arc)
	if !ok || a.Center != c || a.Radius != 20 || a.Sweep != 360 {
		t.Errorf("got %v, want a full circle of radius 20 around %v", strokes[0], c)
	}
}

// rotate turns p clockwise on screen by angle degrees around c.
func rotate(p, c vec.Vec2, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	d := p.Sub(c)
	return vec.Vec2{
		X: c.X + d.X*cos - d.Y*sin,
		Y: c.Y + d.X*sin + d.Y*cos,
	}
}

// TestGlyphRotation checks that rotating a placement turns the whole
// glyph rigidly around its center.
func TestGlyphRotation(t *testing.T) {
	c := vec.Vec2{X: 200, Y: 150}
	for _, ch := range drawable {
		for _, size := range []int{1, 2} {
			upright, _ := Glyph(ch, Placement{Center: c, Size: size})
			for _, angle := range []float64{30, 90, 200, -45} {
				turned, _ := Glyph(ch, Placement{Center: c, Angle: angle, Size: size})
				if len(turned) != len(upright) {
					t.Fatalf("%q: rotation changed the number of strokes", ch)
				}
				for i := range upright {
					switch u := upright[i].(type) {
					case Line:
						r := turned[i].(Line)
						if !near(rotate(u.From, c, angle), r.From) || !near(rotate(u.To, c, angle), r.To) {
							t.Errorf("%q size %d angle %g: line %d not rotated", ch, size, angle, i)
						}
					case Arc:
						r := turned[i].(Arc)
						if !near(rotate(u.Center, c, angle), r.Center) || u.Radius != r.Radius || u.Sweep != r.Sweep {
							t.Errorf("%q size %d angle %g: arc %d not rotated", ch, size, angle, i)
						}
						if u.Sweep < 360 && math.Abs(r.Start-u.Start-angle) > 1e-9 {
							t.Errorf("%q size %d angle %g: arc %d starts at %g, want %g",
								ch, size, angle, i, r.Start, u.Start+angle)
						}
					}
				}
			}
		}
	}
}

// TestGlyphSize checks that size 2 glyphs are size 1 glyphs scaled by two.
// The bowl of 'D' is offset by a fixed amount and is excluded.
func TestGlyphSize(t *testing.T) {
	c := vec.Vec2{X: 100, Y: 100}
	scale := func(p vec.Vec2) vec.Vec2 { return c.Add(p.Sub(c).Mul(2)) }
	for _, ch := range drawable {
		if ch == 'D' {
			continue
		}
		small, _ := Glyph(ch, Placement{Center: c, Angle: 17, Size: 1})
		large, _ := Glyph(ch, Placement{Center: c, Angle: 17, Size: 2})
		for i := range small {
			switch s := small[i].(type) {
			case Line:
				l := large[i].(Line)
				if !near(scale(s.From), l.From) || !near(scale(s.To), l.To) {
					t.Errorf("%q: line %d does not scale", ch, i)
				}
			case Arc:
				l := large[i].(Arc)
				if !near(scale(s.Center), l.Center) || l.Radius != 2*s.Radius || l.Start != s.Start {
					t.Errorf("%q: arc %d does not scale", ch, i)
				}
			}
		}
	}
}

func TestGlyphD(t *testing.T) {
	for _, size := range []int{1, 2} {
		strokes, _ := Glyph('D', Placement{Size: size})
		a := strokes[1].(Arc)
		want := vec.Vec2{X: -(12*float64(size) - 5)}
		if !near(a.Center, want) {
			t.Errorf("size %d: bowl centered at %v, want %v", size, a.Center, want)
		}
	}
}

func TestPolar(t *testing.T) {
	p := vec.Vec2{X: 10, Y: 10}
	cases := []struct {
		angle float64
		want  vec.Vec2
	}{
		{0, vec.Vec2{X: 15, Y: 10}},
		{90, vec.Vec2{X: 10, Y: 5}}, // counter-clockwise: up on screen
		{180, vec.Vec2{X: 5, Y: 10}},
		{270, vec.Vec2{X: 10, Y: 15}},
	}
	for _, tc := range cases {
		if got := polar(p, 5, tc.angle); !near(got, tc.want) {
			t.Errorf("polar(%g) = %v, want %v", tc.angle, got, tc.want)
		}
	}
}
