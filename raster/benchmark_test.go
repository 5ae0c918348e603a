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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/wheel/shape"
)

var oSizes = []int{20, 200, 2000}

// oShape returns the "O" used by the comparison benchmarks, centered in a
// square of the given size.
func oShape(size int) *path.Data {
	c := float64(size) / 2
	return makeOPath(c, float64(size)*0.45, float64(size)*0.30)
}

// BenchmarkRasterizerO fills an "O" shape with the wheel rasterizer.
func BenchmarkRasterizerO(b *testing.B) {
	for _, size := range oSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			mask := image.NewAlpha(image.Rect(0, 0, size, size))
			o := oShape(size)
			emit := func(y, xMin int, coverage []float32) {
				off := mask.PixOffset(xMin, y)
				for i, c := range coverage {
					mask.Pix[off+i] = uint8(c * 255)
				}
			}

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Fill(o, emit)
			}
		})
	}
}

// BenchmarkVectorO fills the same "O" shape with x/image/vector.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range oSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			z := vector.NewRasterizer(size, size)
			mask := image.NewAlpha(image.Rect(0, 0, size, size))
			opaque := image.NewUniform(color.Alpha{A: 255})
			o := oShape(size)

			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				replay(z, o)
				z.Draw(mask, mask.Bounds(), opaque, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeRing measures round-capped strokes of the kind used for
// glyphs and sector borders.
func BenchmarkStrokeRing(b *testing.B) {
	const size = 400
	clip := rect.Rect{URx: size, URy: size}
	r := NewRasterizer(clip)
	ring := shape.Arc(shape.Square(vec.Vec2{X: size / 2, Y: size / 2}, size*0.4), 0, 360)
	emit := func(y, xMin int, coverage []float32) {}

	b.ReportAllocs()
	for b.Loop() {
		r.Width = 3
		r.Stroke(ring, emit)
	}
}

// makeOPath creates an "O" shape: the outer circle runs clockwise on
// screen, the inner one counter-clockwise.
func makeOPath(center, outerR, innerR float64) *path.Data {
	c := vec.Vec2{X: center, Y: center}
	p := shape.Arc(shape.Square(c, outerR), 0, 360).Close()
	inner := shape.Arc(shape.Square(c, innerR), 0, -360)
	p.Cmds = append(p.Cmds, inner.Cmds...)
	p.Coords = append(p.Coords, inner.Coords...)
	return p.Close()
}

// replay feeds p into a vector.Rasterizer.
func replay(z *vector.Rasterizer, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdLineTo:
			z.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdCubeTo:
			z.CubeTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case path.CmdClose:
			z.ClosePath()
		}
	}
}
