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

import "errors"

var (
	// ErrInvalidWheel is returned when a wheel cannot be constructed
	// from the given parameters.
	ErrInvalidWheel = errors.New("invalid wheel")

	// ErrInvalidPlan is returned for a total rotation outside [360, 720).
	ErrInvalidPlan = errors.New("invalid spin plan")

	// ErrNoSurface is returned by Draw when no target has been attached.
	ErrNoSurface = errors.New("no drawing surface attached")
)
