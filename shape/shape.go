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

// Package shape builds the paths used to draw a game wheel.
//
// All angles are in degrees and follow the screen convention of the wheel:
// zero points along the positive x-axis and positive angles turn clockwise,
// since the y-axis points down.  Ellipses and circles are given by their
// bounding box, with the minimum corner stored in LLx/LLy.
package shape

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// maxSegmentSweep is the largest angle (in degrees) covered by a single
// cubic Bézier segment.
const maxSegmentSweep = 90

// Square returns the bounding box of the circle with the given center and
// radius.
func Square(center vec.Vec2, radius float64) rect.Rect {
	return rect.Rect{
		LLx: center.X - radius,
		LLy: center.Y - radius,
		URx: center.X + radius,
		URy: center.Y + radius,
	}
}

// Center returns the center of the box.
func Center(box rect.Rect) vec.Vec2 {
	return vec.Vec2{X: (box.LLx + box.URx) / 2, Y: (box.LLy + box.URy) / 2}
}

// EllipsePoint returns the point at the given angle on the ellipse
// inscribed in box.
func EllipsePoint(box rect.Rect, angle float64) vec.Vec2 {
	c := Center(box)
	rx := (box.URx - box.LLx) / 2
	ry := (box.URy - box.LLy) / 2
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return vec.Vec2{X: c.X + rx*cos, Y: c.Y + ry*sin}
}

// Arc returns an open path which follows the ellipse inscribed in box,
// starting at angle start and sweeping through sweep degrees.
func Arc(box rect.Rect, start, sweep float64) *path.Data {
	p := (&path.Data{}).MoveTo(EllipsePoint(box, start))
	return appendArc(p, box, start, sweep)
}

// Pie returns the closed wedge bounded by two radii and the elliptical arc
// between them.
func Pie(box rect.Rect, start, sweep float64) *path.Data {
	p := (&path.Data{}).
		MoveTo(Center(box)).
		LineTo(EllipsePoint(box, start))
	return appendArc(p, box, start, sweep).Close()
}

// Polygon returns the closed polygon through the given points.
// Fewer than two points give an empty path.
func Polygon(pts []vec.Vec2) *path.Data {
	p := &path.Data{}
	if len(pts) < 2 {
		return p
	}
	p = p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p = p.LineTo(pt)
	}
	return p.Close()
}

// Segment returns the open path consisting of the single line from a to b.
func Segment(a, b vec.Vec2) *path.Data {
	return (&path.Data{}).MoveTo(a).LineTo(b)
}

// appendArc continues p from the point at angle start along the ellipse.
// The sweep is split into pieces of at most 90 degrees, each approximated
// by a cubic Bézier curve with arm length 4/3·tan(θ/4).
func appendArc(p *path.Data, box rect.Rect, start, sweep float64) *path.Data {
	n := int(math.Ceil(math.Abs(sweep) / maxSegmentSweep))
	if n == 0 {
		return p
	}

	c := Center(box)
	rx := (box.URx - box.LLx) / 2
	ry := (box.URy - box.LLy) / 2

	step := sweep / float64(n) * math.Pi / 180
	arm := 4.0 / 3.0 * math.Tan(step/4)

	theta0 := start * math.Pi / 180
	sin0, cos0 := math.Sincos(theta0)
	for i := 1; i <= n; i++ {
		theta1 := theta0 + step
		sin1, cos1 := math.Sincos(theta1)

		p0 := vec.Vec2{X: c.X + rx*cos0, Y: c.Y + ry*sin0}
		p3 := vec.Vec2{X: c.X + rx*cos1, Y: c.Y + ry*sin1}
		d0 := vec.Vec2{X: -rx * sin0, Y: ry * cos0} // derivative at theta0
		d1 := vec.Vec2{X: -rx * sin1, Y: ry * cos1} // derivative at theta1

		p = p.CubeTo(p0.Add(d0.Mul(arm)), p3.Sub(d1.Mul(arm)), p3)

		theta0, sin0, cos0 = theta1, sin1, cos1
	}
	return p
}
