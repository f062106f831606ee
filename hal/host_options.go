//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// HostOptions describes the simulated board. It is read from the `sim:`
// section of the badge YAML file.
type HostOptions struct {
	// BatteryVolts is the simulated cell voltage seen by the divider.
	BatteryVolts float64 `yaml:"battery_volts"`
	// AccessPoints lists the channel of every simulated access point.
	AccessPoints []int `yaml:"access_points"`
	// PageRows is the height of one e-ink page pass.
	PageRows int `yaml:"page_rows"`
	// TouchBaseline and TouchActive are the raw pad readings when idle
	// and when touched.
	TouchBaseline uint32 `yaml:"touch_baseline"`
	TouchActive   uint32 `yaml:"touch_active"`
	// Script is a timeline of pad presses, in simulated time.
	Script []ScriptedTouch `yaml:"script"`
}

// ScriptedTouch holds menu channel Channel (1..5) from At for Hold.
type ScriptedTouch struct {
	At      time.Duration `yaml:"at"`
	Channel int           `yaml:"channel"`
	Hold    time.Duration `yaml:"hold"`
}

// DefaultHostOptions returns a healthy board in a busy 2.4 GHz environment.
func DefaultHostOptions() HostOptions {
	return HostOptions{
		BatteryVolts:  3.95,
		AccessPoints:  []int{1, 1, 6, 6, 6, 11, 11, 3, 13},
		PageRows:      32,
		TouchBaseline: 15000,
		TouchActive:   30000,
	}
}

// LoadHostOptions reads the `sim:` section of path over the defaults.
// A missing file yields the defaults.
func LoadHostOptions(path string) (HostOptions, error) {
	opts := DefaultHostOptions()
	if path == "" {
		return opts, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return opts, nil
	}
	if err != nil {
		return opts, fmt.Errorf("read sim options %q: %w", path, err)
	}

	var doc struct {
		Sim *HostOptions `yaml:"sim"`
	}
	doc.Sim = &opts
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return opts, fmt.Errorf("parse sim options %q: %w", path, err)
	}
	if err := opts.validate(); err != nil {
		return opts, fmt.Errorf("sim options %q: %w", path, err)
	}
	return opts, nil
}

func (o HostOptions) validate() error {
	if o.BatteryVolts < 0 || o.BatteryVolts > 6 {
		return fmt.Errorf("battery_volts %.2f out of range", o.BatteryVolts)
	}
	if o.PageRows <= 0 {
		return fmt.Errorf("page_rows must be positive, got %d", o.PageRows)
	}
	if o.TouchActive <= o.TouchBaseline {
		return fmt.Errorf("touch_active (%d) must exceed touch_baseline (%d)", o.TouchActive, o.TouchBaseline)
	}
	for i, s := range o.Script {
		if s.Channel < 1 || s.Channel > TouchPads {
			return fmt.Errorf("script[%d]: channel %d out of range", i, s.Channel)
		}
		if s.Hold <= 0 {
			return fmt.Errorf("script[%d]: hold must be positive", i)
		}
	}
	return nil
}
