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

// Package testcases provides named wheel scenarios, grouped by category.
// The scenarios are shared by the package tests, the reference generator
// and the wheelspin command.
package testcases

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/wheel"
)

// Scenario defines a single wheel setup.
type Scenario struct {
	Name   string   // lowercase a-z, 0-9 and _ only
	Dial   Dial     // the sector labels
	Center vec.Vec2 // wheel center in pixels
	Radius float64  // wheel radius in pixels
	Width  int      // panel width in pixels
	Height int      // panel height in pixels

	// Total is the total rotation used for reproducible spins,
	// in [wheel.MinTotalRotation, wheel.MaxTotalRotation).
	Total int
}

// Dial describes the labels of a wheel.
type Dial interface {
	isDial()
}

// Numeric labels sectors Min, Min+Interval, ... up to at most Max.
type Numeric struct {
	Min, Max, Interval int
}

func (Numeric) isDial() {}

// Labeled uses the given labels, one sector each.
type Labeled struct {
	Labels []string
}

func (Labeled) isDial() {}

// Build constructs the wheel described by s.
func (s Scenario) Build(opts ...wheel.Option) (*wheel.Model, error) {
	switch d := s.Dial.(type) {
	case Numeric:
		return wheel.NewNumeric(s.Center, s.Radius, d.Min, d.Max, d.Interval, opts...)
	case Labeled:
		return wheel.NewLabeled(s.Center, s.Radius, d.Labels, opts...)
	default:
		return nil, fmt.Errorf("scenario %q: unknown dial type %T", s.Name, s.Dial)
	}
}

// NumericDemo returns the numeric demo dial (50 to 1000 in steps of 25)
// for a panel of the given height.
func NumericDemo(height int) Scenario {
	return panel("numeric_demo", Numeric{Min: 50, Max: 1000, Interval: 25}, height, 20)
}

// AlphanumericDemo returns the alphanumeric demo dial for a panel of the
// given height.
func AlphanumericDemo(height int) Scenario {
	labels := []string{"a1", "b2", "c1", "d2", "e1", "f2", "g1"}
	return panel("alphanumeric_demo", Labeled{Labels: labels}, height, 60)
}

// panel places a wheel in a panel which is extra pixels wider than high.
// The wheel leaves a 10 pixel border at the top and bottom.
func panel(name string, d Dial, height, extra int) Scenario {
	width := height + extra
	return Scenario{
		Name:   name,
		Dial:   d,
		Center: vec.Vec2{X: float64(width / 2), Y: float64(height / 2)},
		Radius: float64((height - 20) / 2),
		Width:  width,
		Height: height,
		Total:  500,
	}
}
