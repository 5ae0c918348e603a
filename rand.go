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

import "math/rand/v2"

// RandomSource supplies uniformly distributed integers.
type RandomSource interface {
	// IntRange returns a value in the half-open interval [lo, hi).
	IntRange(lo, hi int) int
}

// Rand adapts a math/rand/v2 generator to RandomSource.
type Rand struct {
	r *rand.Rand
}

// NewRand wraps r.  If r is nil, the global generator is used.
func NewRand(r *rand.Rand) *Rand {
	return &Rand{r: r}
}

// NewSeededRand returns a reproducible generator for the given seed.
func NewSeededRand(seed uint64) *Rand {
	return NewRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// IntRange implements the [RandomSource] interface.
func (r *Rand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	if r.r == nil {
		return lo + rand.IntN(hi-lo)
	}
	return lo + r.r.IntN(hi-lo)
}

// Sequence replays a fixed list of values, cycling when exhausted.
// The values are returned as given, without regard to the requested
// range.
type Sequence struct {
	Values []int
	pos    int
}

// IntRange implements the [RandomSource] interface.
// An empty sequence always returns lo.
func (s *Sequence) IntRange(lo, hi int) int {
	if len(s.Values) == 0 {
		return lo
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}
