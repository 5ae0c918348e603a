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

package testcases

import "seehuhn.de/go/geom/vec"

var numericCases = []Scenario{
	{
		Name:   "two_sectors",
		Dial:   Numeric{Min: 1, Max: 2, Interval: 1},
		Center: pt(160, 160),
		Radius: 150,
		Width:  320,
		Height: 320,
		Total:  360,
	},
	{
		Name:   "single_digits",
		Dial:   Numeric{Min: 0, Max: 9, Interval: 1},
		Center: pt(210, 210),
		Radius: 200,
		Width:  420,
		Height: 420,
		Total:  613,
	},
	{
		Name:   "hundreds",
		Dial:   Numeric{Min: 100, Max: 1000, Interval: 100},
		Center: pt(260, 260),
		Radius: 250,
		Width:  520,
		Height: 520,
		Total:  719,
	},
	{
		Name:   "fine_steps",
		Dial:   Numeric{Min: 5, Max: 300, Interval: 5},
		Center: pt(310, 310),
		Radius: 300,
		Width:  620,
		Height: 620,
		Total:  444,
	},
	{
		// 90 is not reached; the last sector is 89
		Name:   "partial_interval",
		Dial:   Numeric{Min: 1, Max: 90, Interval: 11},
		Center: pt(210, 210),
		Radius: 200,
		Width:  420,
		Height: 420,
		Total:  555,
	},
}

var labeledCases = []Scenario{
	{
		Name:   "letters",
		Dial:   Labeled{Labels: []string{"a", "b", "c", "d", "e", "f", "g"}},
		Center: pt(210, 210),
		Radius: 200,
		Width:  420,
		Height: 420,
		Total:  401,
	},
	{
		Name:   "mixed",
		Dial:   Labeled{Labels: []string{"A0", "B9", "C8", "D7"}},
		Center: pt(210, 210),
		Radius: 200,
		Width:  420,
		Height: 420,
		Total:  650,
	},
	{
		// more than seven labels are all drawn in blue
		Name:   "many_labels",
		Dial:   Labeled{Labels: []string{"a1", "a2", "b1", "b2", "c1", "c2", "d1", "d2", "e1"}},
		Center: pt(260, 260),
		Radius: 250,
		Width:  520,
		Height: 520,
		Total:  390,
	},
}

var edgeCases = []Scenario{
	{
		Name:   "single_sector",
		Dial:   Labeled{Labels: []string{"g"}},
		Center: pt(110, 110),
		Radius: 100,
		Width:  220,
		Height: 220,
		Total:  360,
	},
	{
		// characters without a glyph are skipped
		Name:   "unsupported_chars",
		Dial:   Labeled{Labels: []string{"h1", "x", "a-b"}},
		Center: pt(210, 210),
		Radius: 200,
		Width:  420,
		Height: 420,
		Total:  480,
	},
	{
		Name:   "empty_label",
		Dial:   Labeled{Labels: []string{"a", "", "c"}},
		Center: pt(160, 160),
		Radius: 150,
		Width:  320,
		Height: 320,
		Total:  700,
	},
	{
		Name:   "small_radius",
		Dial:   Numeric{Min: 1, Max: 5, Interval: 1},
		Center: pt(40, 40),
		Radius: 30,
		Width:  80,
		Height: 80,
		Total:  600,
	},
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
