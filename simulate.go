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

// Simulate runs a spin of the given sectors to completion on a private
// copy and returns the winning label.  The sectors are not modified.
func Simulate(sectors []Sector, plan SpinPlan) string {
	if len(sectors) == 0 || plan.InitialRotations <= 0 {
		return ""
	}
	m := newMachine(append([]Sector(nil), sectors...))
	m.rotation = wrapAngle(sectors[0].OffsetAngle - 270)
	m.updateOffsets()
	m.start(plan)
	for m.state != Highlighting {
		m.step()
	}
	return m.result
}
