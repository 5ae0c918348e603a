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

// Package config loads the settings of the wheelspin command.
//
// Values are taken, in order of increasing priority, from built-in
// defaults, an optional config file, WHEELSPIN_* environment variables
// and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"seehuhn.de/go/wheel"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "WHEELSPIN"

// Config holds the settings of one wheelspin run.
type Config struct {
	Preset   string        `mapstructure:"preset"`
	Height   int           `mapstructure:"height"`
	Seed     uint64        `mapstructure:"seed"`
	Total    int           `mapstructure:"total"`
	Extra    int           `mapstructure:"extra"`
	Realtime bool          `mapstructure:"realtime"`
	Interval time.Duration `mapstructure:"interval"`

	// FramesDir receives one PNG file per tick if non-empty.
	FramesDir string `mapstructure:"frames"`

	// PNG and PDF receive the final frame if non-empty.
	PNG string `mapstructure:"png"`
	PDF string `mapstructure:"pdf"`

	LogLevel string `mapstructure:"log-level"`
}

// Flags registers the command-line flags on fs.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default: ./wheelspin.{yaml,json,toml} if present)")
	fs.String("preset", "numeric_demo", "scenario to spin")
	fs.Int("height", 600, "panel height of the demo presets, in pixels")
	fs.Uint64("seed", 0, "random seed (0: random)")
	fs.Int("total", 0, "total rotation of the initial spin (0: draw at random)")
	fs.Int("extra", 20, "ticks to animate after the wheel has come to rest")
	fs.Bool("realtime", false, "advance the wheel on a real-time ticker")
	fs.Duration("interval", wheel.DefaultTickInterval, "time between ticks in real-time mode")
	fs.String("frames", "", "directory for per-tick PNG frames")
	fs.String("png", "", "PNG file for the final frame")
	fs.String("pdf", "", "PDF file for the final frame")
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
}

// Load parses args with the flags registered on fs and merges the result
// with the config file and the environment.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if fs.Lookup("preset") == nil {
		Flags(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("wheelspin")
		v.AddConfigPath(".")
		err := v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		if err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if c.Preset == "" {
		return errors.New("no preset given")
	}
	if c.Height < 40 {
		return fmt.Errorf("height %d is too small", c.Height)
	}
	if c.Total != 0 && (c.Total < wheel.MinTotalRotation || c.Total >= wheel.MaxTotalRotation) {
		return fmt.Errorf("total rotation %d not in [%d, %d)",
			c.Total, wheel.MinTotalRotation, wheel.MaxTotalRotation)
	}
	if c.Extra < 0 {
		return fmt.Errorf("negative number of extra ticks %d", c.Extra)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("tick interval %s must be positive", c.Interval)
	}
	return nil
}
