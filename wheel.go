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
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"seehuhn.de/go/geom/vec"
)

// DefaultTickInterval is the nominal time between two calls to Advance.
const DefaultTickInterval = 55 * time.Millisecond

// MaxSectors is the largest number of sectors a wheel can have.
const MaxSectors = 3600

// Model is a game wheel together with the state of its spin.
//
// A Model is not safe for concurrent use.
type Model struct {
	m       *machine
	geom    Geometry
	target  Target
	outcome string
	log     zerolog.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for spin events.  By default, nothing
// is logged.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Model) {
		m.log = l
	}
}

// NewNumeric returns a wheel whose sectors are labelled min, min+interval,
// min+2*interval, ..., up to at most max.
func NewNumeric(center vec.Vec2, radius float64, min, max, interval int, opts ...Option) (*Model, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("interval %d must be positive: %w", interval, ErrInvalidWheel)
	}
	if min >= max {
		return nil, fmt.Errorf("min %d must be less than max %d: %w", min, max, ErrInvalidWheel)
	}

	// The difference is taken unsigned, since max-min can overflow int.
	steps := (uint64(max) - uint64(min)) / uint64(interval)
	if steps >= MaxSectors {
		return nil, fmt.Errorf("range %d..%d in steps of %d gives more than %d sectors: %w",
			min, max, interval, MaxSectors, ErrInvalidWheel)
	}
	n := int(steps) + 1
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(min + i*interval)
	}
	return newModel(center, radius, labels, numericColor, opts)
}

// NewLabeled returns a wheel with one sector per label.  Labels are
// converted to upper case.
func NewLabeled(center vec.Vec2, radius float64, labels []string, opts ...Option) (*Model, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("no labels: %w", ErrInvalidWheel)
	}

	upper := cases.Upper(language.Und)
	converted := make([]string, len(labels))
	for i, l := range labels {
		converted[i] = upper.String(l)
	}
	return newModel(center, radius, converted, labeledColor, opts)
}

func newModel(center vec.Vec2, radius float64, labels []string, fill func(i, n int) color.RGBA, opts []Option) (*Model, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("radius %g must be positive: %w", radius, ErrInvalidWheel)
	}
	n := len(labels)
	if n < 1 || n > MaxSectors {
		return nil, fmt.Errorf("sector count %d not in [1, %d]: %w", n, MaxSectors, ErrInvalidWheel)
	}
	sectorAngle := 360 / float64(n)
	if math.Abs(float64(n)*sectorAngle-360) > 1e-9 {
		return nil, fmt.Errorf("%d sectors do not divide the circle: %w", n, ErrInvalidWheel)
	}

	sectors := make([]Sector, n)
	for i, l := range labels {
		sectors[i] = Sector{Index: i, Label: l, Fill: fill(i, n)}
	}

	w := &Model{
		m:    newMachine(sectors),
		geom: newGeometry(center, radius),
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if capacity := labelCapacity(radius, n); capacity > 0 {
		for _, s := range sectors {
			if len([]rune(s.Label)) > capacity {
				w.log.Warn().Str("label", s.Label).Int("capacity", capacity).
					Msg("label extends past the wheel center")
			}
		}
	}
	for _, s := range sectors {
		for _, c := range s.Label {
			if !HasGlyph(c) {
				w.log.Debug().Str("label", s.Label).Str("char", string(c)).
					Msg("character cannot be drawn")
			}
		}
	}
	w.log.Debug().Int("sectors", n).Float64("radius", radius).Msg("wheel created")
	return w, nil
}

// Spin starts the wheel.  It draws the total rotation from rng, runs the
// spin to completion on a copy of the wheel, and returns the label which
// will win.  Spin does not advance the animation.
//
// Calling Spin on a wheel which has already been spun has no effect and
// returns the known outcome.
func (w *Model) Spin(rng RandomSource) string {
	if w.m.state != NotStarted {
		w.log.Debug().Stringer("state", w.m.state).Msg("wheel already spun")
		return w.outcome
	}

	total := rng.IntRange(MinTotalRotation, MaxTotalRotation)
	if total < MinTotalRotation || total >= MaxTotalRotation {
		w.log.Warn().Int("total", total).Msg("random rotation out of range, clamping")
		total = max(MinTotalRotation, min(MaxTotalRotation-1, total))
	}
	plan, _ := NewSpinPlan(total)

	w.outcome = Simulate(w.m.sectors, plan)
	w.m.start(plan)
	w.log.Debug().
		Int("total", plan.TotalRotation).
		Int("ticks", plan.InitialRotations).
		Float64("angle", plan.RotateAnglePerTick).
		Str("outcome", w.outcome).
		Msg("spin started")
	return w.outcome
}

// PredictOutcome returns the label a spin with the given total rotation
// would select, starting from the wheel's initial position.  The wheel
// itself is not changed.
func (w *Model) PredictOutcome(total int) (string, error) {
	plan, err := NewSpinPlan(total)
	if err != nil {
		return "", err
	}
	fresh := newMachine(w.Sectors())
	return Simulate(fresh.sectors, plan), nil
}

// Advance moves the animation forward by one tick.  If render is true,
// the wheel is drawn to the attached target afterwards.
//
// Before Spin has been called, Advance does not change the wheel.
func (w *Model) Advance(render bool) error {
	before := w.m.state
	if before == NotStarted {
		w.log.Debug().Msg("advance before spin")
	} else {
		w.m.step()
		if after := w.m.state; after != before {
			ev := w.log.Debug().Stringer("state", after)
			if after == Highlighting {
				ev = ev.Int("sector", w.m.final).Str("result", w.m.result)
			}
			ev.Msg("state changed")
		}
	}

	if render {
		return w.Draw()
	}
	return nil
}

// AttachSurface sets the target used by Draw and by Advance(true).
func (w *Model) AttachSurface(t Target) {
	w.target = t
}

// LastLabel returns the label of the last sector.  For numeric wheels,
// this is the largest value.
func (w *Model) LastLabel() (string, bool) {
	n := len(w.m.sectors)
	if n == 0 {
		return "", false
	}
	return w.m.sectors[n-1].Label, true
}

// State returns the current phase of the spin.
func (w *Model) State() State {
	return w.m.state
}

// Result returns the winning label once the wheel has come to rest,
// and the empty string before.
func (w *Model) Result() string {
	return w.m.result
}

// FinalSector returns the index of the winning sector once the wheel has
// come to rest, and -1 before.
func (w *Model) FinalSector() int {
	return w.m.final
}

// Outcome returns the label predicted by Spin, or the empty string if
// the wheel has not been spun.
func (w *Model) Outcome() string {
	return w.outcome
}

// Sectors returns a copy of the current sectors.
func (w *Model) Sectors() []Sector {
	return append([]Sector(nil), w.m.sectors...)
}

// SectorAngle returns the angle covered by each sector, in degrees.
func (w *Model) SectorAngle() float64 {
	return w.m.sectorAngle
}

// Geometry returns the placement of the wheel.
func (w *Model) Geometry() Geometry {
	return w.geom
}

// Plan returns the parameters of the current spin.  The zero SpinPlan is
// returned before Spin has been called.
func (w *Model) Plan() SpinPlan {
	return w.m.plan
}
