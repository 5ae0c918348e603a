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

// Wheelspin spins a game wheel without a window.
//
// The wheel is built from one of the scenarios in the testcases package,
// spun against a seeded or random source, and animated tick by tick.
// Frames can be written as PNG images, and the final frame as PNG and
// PDF.  Run "wheelspin --help" for the list of settings.
package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"seehuhn.de/go/wheel"
	"seehuhn.de/go/wheel/canvas"
	"seehuhn.de/go/wheel/internal/config"
	"seehuhn.de/go/wheel/internal/logging"
	"seehuhn.de/go/wheel/pdfsurface"
	"seehuhn.de/go/wheel/testcases"
)

var background = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

func main() {
	fs := pflag.NewFlagSet("wheelspin", pflag.ExitOnError)
	config.Flags(fs)
	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "wheelspin:", err)
		os.Exit(2)
	}
	log := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("wheelspin failed")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	s, err := scenario(cfg)
	if err != nil {
		return err
	}
	w, err := s.Build(wheel.WithLogger(log))
	if err != nil {
		return fmt.Errorf("building %s: %w", s.Name, err)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	canvas.NewFromImage(img).Clear(background)
	screen := canvas.NewTarget(img)
	w.AttachSurface(screen)
	if err := w.Draw(); err != nil {
		return err
	}

	outcome := w.Spin(randomSource(cfg))
	plan := w.Plan()
	log.Info().
		Str("preset", s.Name).
		Int("total", plan.TotalRotation).
		Str("outcome", outcome).
		Msg("wheel spun")

	a := &animation{
		w:      w,
		img:    img,
		dir:    cfg.FramesDir,
		remain: cfg.Extra,
	}
	if cfg.FramesDir != "" {
		if err := os.MkdirAll(cfg.FramesDir, 0755); err != nil {
			return err
		}
	}
	if cfg.Realtime {
		err = a.runTicker(ctx, cfg.Interval)
	} else {
		err = a.runAll(ctx)
	}
	if err != nil {
		return err
	}

	if w.State() == wheel.Highlighting {
		if res := w.Result(); res != outcome {
			return fmt.Errorf("wheel stopped at %q, expected %q", res, outcome)
		}
		log.Info().Str("result", w.Result()).Int("sector", w.FinalSector()).
			Int("ticks", a.ticks).Msg("wheel stopped")
	} else {
		log.Warn().Stringer("state", w.State()).Int("ticks", a.ticks).
			Msg("animation interrupted")
	}

	if cfg.PNG != "" {
		if err := writePNG(cfg.PNG, img); err != nil {
			return err
		}
		log.Debug().Str("file", cfg.PNG).Msg("final frame written")
	}
	if cfg.PDF != "" {
		if err := w.Render(&pdfsurface.Target{Path: cfg.PDF, Background: &background}); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.PDF, err)
		}
		log.Debug().Str("file", cfg.PDF).Msg("final frame written")
	}
	return nil
}

// scenario returns the wheel selected by the configuration.  The demo
// presets are scaled to the configured height.
func scenario(cfg *config.Config) (testcases.Scenario, error) {
	var s testcases.Scenario
	switch cfg.Preset {
	case "numeric_demo", "demo_numeric_demo":
		s = testcases.NumericDemo(cfg.Height)
	case "alphanumeric_demo", "demo_alphanumeric_demo":
		s = testcases.AlphanumericDemo(cfg.Height)
	default:
		var ok bool
		s, ok = testcases.Lookup(cfg.Preset)
		if !ok {
			return s, fmt.Errorf("unknown preset %q", cfg.Preset)
		}
	}
	return s, nil
}

func randomSource(cfg *config.Config) wheel.RandomSource {
	switch {
	case cfg.Total != 0:
		return &wheel.Sequence{Values: []int{cfg.Total}}
	case cfg.Seed != 0:
		return wheel.NewSeededRand(cfg.Seed)
	default:
		return wheel.NewRand(nil)
	}
}

// animation advances a spun wheel until it has come to rest and then
// for a fixed number of extra ticks.
type animation struct {
	w      *wheel.Model
	img    image.Image
	dir    string
	ticks  int
	remain int
}

func (a *animation) done() bool {
	return a.w.State() == wheel.Highlighting && a.remain <= 0
}

func (a *animation) tick() error {
	if a.w.State() == wheel.Highlighting {
		a.remain--
	}
	if err := a.w.Advance(true); err != nil {
		return err
	}
	a.ticks++
	if a.dir != "" {
		name := filepath.Join(a.dir, fmt.Sprintf("frame%04d.png", a.ticks))
		return writePNG(name, a.img)
	}
	return nil
}

// runAll advances the wheel as fast as possible.
func (a *animation) runAll(ctx context.Context) error {
	for !a.done() {
		if ctx.Err() != nil {
			return nil
		}
		if err := a.tick(); err != nil {
			return err
		}
	}
	return nil
}

// runTicker advances the wheel once per interval.  Cancelling ctx
// freezes the animation.
func (a *animation) runTicker(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for !a.done() {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := a.tick(); err != nil {
				return err
			}
		}
	}
	return nil
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
