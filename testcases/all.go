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

// DefaultHeight is the panel height of the demo scenarios.
const DefaultHeight = 600

// All contains all scenarios, grouped by category.
// The category name is used as a prefix in reference file names.
var All = map[string][]Scenario{
	"demo":    demoCases,
	"numeric": numericCases,
	"labeled": labeledCases,
	"edge":    edgeCases,
}

var demoCases = []Scenario{
	NumericDemo(DefaultHeight),
	AlphanumericDemo(DefaultHeight),
}

// Lookup finds a scenario by name.  The name may be given either as
// "category_name", as used for reference files, or as the bare scenario
// name.
func Lookup(name string) (Scenario, bool) {
	for category, cases := range All {
		for _, s := range cases {
			if s.Name == name || category+"_"+s.Name == name {
				return s, true
			}
		}
	}
	return Scenario{}, false
}
