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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	trianglePath := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	clip := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1}
	r := NewRasterizer(clip)

	coverage := make([]float32, 10)
	emit := func(y, xMin int, cov []float32) {
		if y == 0 {
			for i, c := range cov {
				coverage[xMin+i] = c
			}
		}
	}

	r.Fill(trianglePath, emit)

	const epsilon = 1e-5
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		actual := coverage[x]
		if math.Abs(float64(actual-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, actual)
		}
	}
}

// render rasterizes into a w×h coverage buffer.
func render(w, h int, draw func(r *Rasterizer, emit EmitFunc)) []float32 {
	buf := make([]float32, w*h)
	r := NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	draw(r, func(y, xMin int, coverage []float32) {
		if y < 0 || y >= h {
			panic("row outside clip")
		}
		for i, c := range coverage {
			x := xMin + i
			if x < 0 || x >= w {
				panic("column outside clip")
			}
			buf[y*w+x] = c
		}
	})
	return buf
}

func total(buf []float32) float64 {
	var sum float64
	for _, c := range buf {
		sum += float64(c)
	}
	return sum
}

func TestFillArea(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 6, Y: 2}).
		LineTo(vec.Vec2{X: 6, Y: 6}).
		LineTo(vec.Vec2{X: 2, Y: 6})
	halfPixel := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1.5, Y: 1}).
		LineTo(vec.Vec2{X: 5.5, Y: 1}).
		LineTo(vec.Vec2{X: 5.5, Y: 3}).
		LineTo(vec.Vec2{X: 1.5, Y: 3}).
		Close()

	cases := []struct {
		name string
		p    *path.Data
		ctm  matrix.Matrix
		area float64
	}{
		{"implicit_close", square, matrix.Identity, 16},
		{"unaligned", halfPixel, matrix.Identity, 8},
		{"scaled", square, matrix.Matrix{0.5, 0, 0, 0.5, 0, 0}, 4},
		{"translated", square, matrix.Matrix{1, 0, 0, 1, 1, 1}, 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := render(8, 8, func(r *Rasterizer, emit EmitFunc) {
				r.CTM = tc.ctm
				r.Fill(tc.p, emit)
			})
			if got := total(buf); math.Abs(got-tc.area) > 1e-4 {
				t.Errorf("area: got %.4f, want %.4f", got, tc.area)
			}
		})
	}
}

func TestFillNonZeroOverlap(t *testing.T) {
	// two overlapping squares with the same orientation
	p := &path.Data{}
	for _, x := range []float64{1, 3} {
		p.MoveTo(vec.Vec2{X: x, Y: 1}).
			LineTo(vec.Vec2{X: x + 4, Y: 1}).
			LineTo(vec.Vec2{X: x + 4, Y: 5}).
			LineTo(vec.Vec2{X: x, Y: 5}).
			Close()
	}
	buf := render(10, 10, func(r *Rasterizer, emit EmitFunc) {
		r.Fill(p, emit)
	})
	for _, c := range buf {
		if c > 1 {
			t.Fatalf("coverage %g exceeds 1", c)
		}
	}
	if got := total(buf); math.Abs(got-24) > 1e-4 {
		t.Errorf("area: got %.4f, want 24", got)
	}
}

func TestFillClip(t *testing.T) {
	big := (&path.Data{}).
		MoveTo(vec.Vec2{X: -5, Y: -5}).
		LineTo(vec.Vec2{X: 20, Y: -5}).
		LineTo(vec.Vec2{X: 20, Y: 20}).
		LineTo(vec.Vec2{X: -5, Y: 20}).
		Close()
	buf := render(6, 4, func(r *Rasterizer, emit EmitFunc) {
		r.Fill(big, emit)
	})
	for i, c := range buf {
		if math.Abs(float64(c)-1) > 1e-5 {
			t.Fatalf("pixel %d: coverage %g, want 1", i, c)
		}
	}
}

func TestFillEmpty(t *testing.T) {
	calls := 0
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.Fill(&path.Data{}, func(int, int, []float32) { calls++ })

	// a degenerate, horizontal shape
	flat := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 8, Y: 1}).
		Close()
	r.Fill(flat, func(int, int, []float32) { calls++ })

	if calls != 0 {
		t.Errorf("emit called %d times for empty shapes", calls)
	}
}

func TestFillCurve(t *testing.T) {
	// circle of radius 10 built from four cubic arcs
	const k = 0.5522847498
	c := vec.Vec2{X: 16, Y: 16}
	const rad = 10.0
	p := (&path.Data{}).MoveTo(vec.Vec2{X: c.X + rad, Y: c.Y})
	p.CubeTo(vec.Vec2{X: c.X + rad, Y: c.Y + k*rad}, vec.Vec2{X: c.X + k*rad, Y: c.Y + rad}, vec.Vec2{X: c.X, Y: c.Y + rad})
	p.CubeTo(vec.Vec2{X: c.X - k*rad, Y: c.Y + rad}, vec.Vec2{X: c.X - rad, Y: c.Y + k*rad}, vec.Vec2{X: c.X - rad, Y: c.Y})
	p.CubeTo(vec.Vec2{X: c.X - rad, Y: c.Y - k*rad}, vec.Vec2{X: c.X - k*rad, Y: c.Y - rad}, vec.Vec2{X: c.X, Y: c.Y - rad})
	p.CubeTo(vec.Vec2{X: c.X + k*rad, Y: c.Y - rad}, vec.Vec2{X: c.X + rad, Y: c.Y - k*rad}, vec.Vec2{X: c.X + rad, Y: c.Y})
	p.Close()

	buf := render(32, 32, func(r *Rasterizer, emit EmitFunc) {
		r.Fill(p, emit)
	})
	// flattening cuts off thin slivers, up to the flatness tolerance
	want := math.Pi * rad * rad
	if got := total(buf); got > want+0.1 || got < 0.96*want {
		t.Errorf("area: got %.3f, want about %.3f", got, want)
	}
}

func TestStroke(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 5}).
		LineTo(vec.Vec2{X: 18, Y: 5})

	buf := render(20, 10, func(r *Rasterizer, emit EmitFunc) {
		r.Width = 2
		r.Stroke(line, emit)
	})

	// rectangle plus two half discs for the round caps; the discs are
	// approximated by inscribed polygons
	got := total(buf)
	if got < 32+2.5 || got > 32+math.Pi+1e-3 {
		t.Errorf("area: got %.3f, want about %.3f", got, 32+math.Pi)
	}

	at := func(x, y int) float32 { return buf[y*20+x] }
	for _, y := range []int{4, 5} {
		if c := at(10, y); math.Abs(float64(c)-1) > 1e-5 {
			t.Errorf("pixel (10,%d): coverage %g, want 1", y, c)
		}
	}
	for _, y := range []int{2, 3, 6, 7} {
		if c := at(10, y); c != 0 {
			t.Errorf("pixel (10,%d): coverage %g, want 0", y, c)
		}
	}
}

func TestStrokeJoins(t *testing.T) {
	// an open polyline with a sharp corner must not double-count the
	// overlap at the joint
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 12, Y: 12}).
		LineTo(vec.Vec2{X: 22, Y: 2})
	buf := render(24, 16, func(r *Rasterizer, emit EmitFunc) {
		r.Width = 3
		r.Stroke(p, emit)
	})
	for i, c := range buf {
		if c < 0 || c > 1 {
			t.Fatalf("pixel %d: coverage %g outside [0,1]", i, c)
		}
	}
	if total(buf) == 0 {
		t.Error("nothing drawn")
	}
}

func TestStrokeZeroWidth(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 8, Y: 8})
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.Width = 0
	r.Stroke(line, func(int, int, []float32) {
		t.Error("emit called for zero width")
	})
}
