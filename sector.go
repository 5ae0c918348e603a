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
	"math"
)

// Sector is one wedge of the wheel.
type Sector struct {
	Index int
	Label string

	// OffsetAngle is the angle of the sector's leading edge, in degrees
	// clockwise from the 3 o'clock axis.
	OffsetAngle float64

	Fill color.RGBA
}

const (
	// Wheels with at most largeLabelSectors sectors use large glyphs.
	largeLabelSectors = 10

	largeGlyphSize     = 2
	largeGlyphInterval = 75
	smallGlyphSize     = 1
	smallGlyphInterval = 35
)

// numericColor returns the fill of sector i on a numeric wheel with n
// sectors.
func numericColor(i, n int) color.RGBA {
	step := 5
	if n <= 10 {
		step = 25
	}
	return color.RGBA{
		R: clampChannel(i * step),
		G: 0,
		B: clampChannel(255 - i*step),
		A: 255,
	}
}

// labeledColor returns the fill of sector i on a labeled wheel with n
// sectors.
func labeledColor(i, n int) color.RGBA {
	if n > 7 {
		return color.RGBA{B: 255, A: 255}
	}
	return color.RGBA{
		G: clampChannel(i * 35),
		B: clampChannel(255 - i*35),
		A: 255,
	}
}

func clampChannel(v int) uint8 {
	return uint8(max(0, min(255, v)))
}

// drawWedge fills the sector and outlines it with the border style.
func (s *Sector) drawWedge(surf Surface, g Geometry, sectorAngle float64) {
	surf.FillPie(s.Fill, g.Bounds, s.OffsetAngle, sectorAngle)
	surf.DrawPie(borderStyle, g.Bounds, s.OffsetAngle, sectorAngle)
}

// drawLabel writes the label radially along the middle of the sector,
// starting at the rim and moving towards the center.
func (s *Sector) drawLabel(surf Surface, g Geometry, sectorAngle float64, n int) {
	size, interval := smallGlyphSize, float64(smallGlyphInterval)
	if n <= largeLabelSectors {
		size, interval = largeGlyphSize, largeGlyphInterval
	}

	centerAngle := 360 - (s.OffsetAngle + sectorAngle/2)
	glyphAngle := 90 - centerAngle

	k := 0
	for _, c := range s.Label {
		k++
		dist := g.Radius - interval*float64(k)
		p := Placement{
			Center: polar(g.Center, dist, centerAngle),
			Angle:  glyphAngle,
			Size:   size,
		}
		DrawGlyph(surf, glyphStyle, c, p)
	}
}

// labelCapacity returns how many glyphs fit between rim and center.
func labelCapacity(radius float64, n int) int {
	interval := float64(smallGlyphInterval)
	if n <= largeLabelSectors {
		interval = largeGlyphInterval
	}
	return int(math.Floor(radius / interval))
}
