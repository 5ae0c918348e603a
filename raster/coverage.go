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
	"cmp"
	"math"
	"slices"
)

// Coverage accumulation model:
//
// For each pixel of a scanline, two values are tracked:
//   cover: signed vertical extent of the edges crossing this pixel column
//   area:  the part of that extent which lies inside the pixel itself
//
// Walking the scanline from left to right, the coverage of pixel i is
//   accumulated_cover + area[i]
// after which cover[i] is added to the running total.  With the nonzero
// rule the absolute value of this sum, clamped to 1, is the fraction of
// the pixel covered by the shape.

// scan rasterises the collected edges with the nonzero winding rule,
// processing scanlines from top to bottom with an active edge list.
func (r *Rasterizer) scan(emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.edgeBounds()
	if !ok {
		return
	}
	width := xMax - xMin

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		yfNext := float64(y + 1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yfNext {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		r.cover = grow(r.cover, width)
		r.area = grow(r.area, width)

		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				// swap-remove finished edges
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			if r.accumulateEdge(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateScanline(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// accumulateEdge adds the contribution of e within scanline y to the
// cover and area buffers, which are indexed by x - bboxXMin.  Contributions
// left of the buffer are folded into its first pixel.  The return value
// reports whether anything was added.
func (r *Rasterizer) accumulateEdge(e *edge, y int, bboxXMin, bboxXMax int) bool {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return false
	}

	// +1 for downward edges, -1 for upward ones
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	if pixLeft >= bboxXMax {
		return false
	}
	if pixRight < bboxXMin {
		v := sign * float32(yBot-yTop)
		r.cover[0] += v
		r.area[0] += v
		return true
	}

	if pixLeft == pixRight {
		r.addCoverage(e, yTop, yBot, sign, pixLeft, bboxXMin, bboxXMax)
		return true
	}

	// The edge crosses several pixel columns: split it at the column
	// boundaries and handle each piece separately.
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		yA := e.y0 + dydx*(float64(pix)-e.x0)
		yB := e.y0 + dydx*(float64(pix+1)-e.x0)
		segTop := max(min(yA, yB), yTop)
		segBot := min(max(yA, yB), yBot)
		if segBot <= segTop {
			continue
		}
		r.addCoverage(e, segTop, segBot, sign, pix, bboxXMin, bboxXMax)
	}
	return true
}

// addCoverage adds the part of e between yTop and yBot, which lies within
// the single pixel column pix.
func (r *Rasterizer) addCoverage(e *edge, yTop, yBot float64, sign float32, pix, bboxXMin, bboxXMax int) {
	v := sign * float32(yBot-yTop)
	switch {
	case pix < bboxXMin:
		r.cover[0] += v
		r.area[0] += v
	case pix < bboxXMax:
		xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
		xFrac := xMid - float64(pix)
		idx := pix - bboxXMin
		r.cover[idx] += v
		r.area[idx] += v * float32(1-xFrac)
	}
}

// integrateScanline converts accumulated cover/area values to coverage
// using the nonzero winding rule.  The result replaces cover.
func integrateScanline(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the non-zero part of coverage and its start offset,
// or nil if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}
