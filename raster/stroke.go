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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Stroke renders the outline of p with line width Width, using round caps
// and round joins.  The emit callback receives coverage row by row.
//
// The stroke is built as the union of one rectangle per flattened segment
// and one disc per vertex.  All polygons share the same orientation, so
// that filling them together with the nonzero rule paints overlaps once.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]

	d := r.Width / 2
	if d <= 0 {
		return
	}

	var last vec.Vec2
	haveLast := false
	r.walkPath(p, false, func(a, b vec.Vec2) {
		if !haveLast || a != last {
			r.addDisc(a, d)
		}
		r.addSegment(a, b, d)
		r.addDisc(b, d)
		last, haveLast = b, true
	})
	if len(r.strokeOffsets) == 0 {
		return
	}

	r.beginEdges()
	for i, start := range r.strokeOffsets {
		end := len(r.stroke)
		if i+1 < len(r.strokeOffsets) {
			end = r.strokeOffsets[i+1]
		}
		poly := r.stroke[start:end]
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.scan(emit)
}

// addSegment adds the rectangle of half-width d around the segment a→b.
// The corners are listed clockwise with respect to the y-up convention.
func (r *Rasterizer) addSegment(a, b vec.Vec2, d float64) {
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := delta.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)

	r.strokeOffsets = append(r.strokeOffsets, len(r.stroke))
	r.stroke = append(r.stroke, a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// addDisc adds a circle of radius d around center, traversed with
// decreasing angle to match the orientation of addSegment.
func (r *Rasterizer) addDisc(center vec.Vec2, d float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: d}).Length(),
		r.transformLinear(vec.Vec2{Y: d}).Length(),
	)

	// A chord subtending θ on a circle of radius ρ deviates from the arc
	// by at most ρ(1 - cos(θ/2)).  Choose θ so this equals the flatness.
	n := minDiscVertices
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}

	r.strokeOffsets = append(r.strokeOffsets, len(r.stroke))
	for i := range n {
		sin, cos := math.Sincos(-2 * math.Pi * float64(i) / float64(n))
		r.stroke = append(r.stroke, vec.Vec2{X: center.X + d*cos, Y: center.Y + d*sin})
	}
}

// minDiscVertices is the smallest number of vertices used for a round cap
// or join.
const minDiscVertices = 8
