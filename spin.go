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
	"fmt"
	"image/color"
	"math"
)

// State is the phase of a spin.
type State int

// These are the phases a wheel passes through, in order.
const (
	NotStarted State = iota
	InitialSpin
	SlowingDown
	Highlighting
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InitialSpin:
		return "initial spin"
	case SlowingDown:
		return "slowing down"
	case Highlighting:
		return "highlighting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// The total rotation of the initial spin is drawn from
// [MinTotalRotation, MaxTotalRotation).
const (
	MinTotalRotation = 360
	MaxTotalRotation = 720
)

const (
	// approxRotateAngle is the target per-tick rotation during the
	// initial spin, in degrees.
	approxRotateAngle = 15

	// slowdown is subtracted from the per-tick rotation on every tick
	// of the slow-down phase.
	slowdown = 0.15

	highlightStep  = 15
	highlightUpper = 235
	highlightLower = 20
)

// SpinPlan holds the parameters of one spin, derived from a single draw
// of the random source.
type SpinPlan struct {
	// TotalRotation is the rotation of the initial spin, in degrees.
	TotalRotation int

	// InitialRotations is the number of ticks in the initial spin.
	InitialRotations int

	// RotateAnglePerTick is the rotation per tick during the initial
	// spin.  The slow-down phase starts from this value.
	RotateAnglePerTick float64
}

// NewSpinPlan returns the plan for the given total rotation.
func NewSpinPlan(total int) (SpinPlan, error) {
	if total < MinTotalRotation || total >= MaxTotalRotation {
		return SpinPlan{}, fmt.Errorf("total rotation %d not in [%d, %d): %w",
			total, MinTotalRotation, MaxTotalRotation, ErrInvalidPlan)
	}
	n := int(math.Round(float64(total) / approxRotateAngle))
	return SpinPlan{
		TotalRotation:      total,
		InitialRotations:   n,
		RotateAnglePerTick: float64(total) / float64(n),
	}, nil
}

// machine is the spin state machine.  The live model and the outcome
// simulator both drive a machine, so that they agree on the result.
type machine struct {
	sectors     []Sector
	sectorAngle float64

	// rotation is the cumulative rotation, reduced to [0, 360).
	rotation float64

	state       State
	plan        SpinPlan
	rotateAngle float64
	ticks       int

	final     int
	result    string
	ascending bool
}

func newMachine(sectors []Sector) *machine {
	m := &machine{
		sectors:     sectors,
		sectorAngle: 360 / float64(len(sectors)),
		final:       -1,
	}
	m.updateOffsets()
	return m
}

// start begins the initial spin.
func (m *machine) start(plan SpinPlan) {
	m.plan = plan
	m.rotateAngle = plan.RotateAnglePerTick
	m.ticks = 0
	m.state = InitialSpin
}

// step advances the machine by one tick.
func (m *machine) step() {
	switch m.state {
	case InitialSpin:
		m.rotate(m.rotateAngle)
		m.ticks++
		if m.ticks >= m.plan.InitialRotations {
			m.ticks = 0
			m.state = SlowingDown
		}
	case SlowingDown:
		m.rotateAngle -= slowdown
		if m.rotateAngle <= 0 {
			m.settle()
		} else {
			m.rotate(m.rotateAngle)
		}
	case Highlighting:
		m.pulse()
	}
}

func (m *machine) rotate(angle float64) {
	m.rotation = wrapAngle(m.rotation + angle)
	m.updateOffsets()
}

func (m *machine) updateOffsets() {
	for i := range m.sectors {
		m.sectors[i].OffsetAngle = wrapAngle(270 + float64(i)*m.sectorAngle + m.rotation)
	}
}

// settle determines the winning sector from the sector under the marker
// at 12 o'clock and enters the highlighting phase.
func (m *machine) settle() {
	n := len(m.sectors)
	k := int(wrapAngle(m.sectors[0].OffsetAngle+90) / m.sectorAngle)
	// Rounding can give k == n when sector 0 starts just before the
	// marker.  Sector 0 then holds the marker, which the clamp selects.
	final := max(0, min(n-1, n-k-1))

	m.state = Highlighting
	m.final = final
	m.result = m.sectors[final].Label
	m.sectors[final].Fill = color.RGBA{A: 255}
}

// pulse moves the red and green channels of the winning sector one step
// between black and yellow.
func (m *machine) pulse() {
	s := &m.sectors[m.final]
	r := int(s.Fill.R)
	if r > highlightUpper && m.ascending {
		m.ascending = false
	} else if r < highlightLower && !m.ascending {
		m.ascending = true
	}
	if m.ascending {
		r += highlightStep
	} else {
		r -= highlightStep
	}
	r = max(0, min(255, r))
	s.Fill = color.RGBA{R: uint8(r), G: uint8(r), B: 0, A: 255}
}

// wrapAngle reduces a to the range [0, 360).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}
