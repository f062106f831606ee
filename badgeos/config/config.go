// Package config holds the badge calibration and timing.
package config

import (
	"errors"
	"fmt"
	"time"
)

type Config struct {
	Badge   BadgeConfig   `yaml:"badge"`
	Touch   TouchConfig   `yaml:"touch"`
	Battery BatteryConfig `yaml:"battery"`
	Sleep   SleepConfig   `yaml:"sleep"`
	Menu    MenuConfig    `yaml:"menu"`
	Scan    ScanConfig    `yaml:"scan"`
}

// ---- PAGES ----

type BadgeConfig struct {
	// Title is printed above the menu items.
	Title string `yaml:"title"`
	// QRText is encoded on the QR page.
	QRText string `yaml:"qr_text"`
}

// ---- TOUCH ----

type TouchConfig struct {
	// Threshold is the raw reading above which a pad counts as touched.
	Threshold uint32 `yaml:"threshold"`
	// WakeChannel is the menu channel that wakes the badge from sleep.
	WakeChannel int `yaml:"wake_channel"`
	// WakeThreshold is handed to the touch controller for sleep wake.
	WakeThreshold uint32 `yaml:"wake_threshold"`
}

// ---- BATTERY ----

type BatteryConfig struct {
	Scale     float64       `yaml:"scale"`
	Reference float64       `yaml:"reference"`
	FullScale float64       `yaml:"full_scale"`
	Cutoff    float64       `yaml:"cutoff"`
	Settle    time.Duration `yaml:"settle"`
}

// ---- SLEEP ----

type SleepConfig struct {
	// Badge is the refresh interval of the badge page.
	Badge time.Duration `yaml:"badge"`
	// Scan is how long the scan results stay up before the menu returns.
	Scan time.Duration `yaml:"scan"`
	// ColdBoot is the detour sleep after power-on.
	ColdBoot time.Duration `yaml:"cold_boot"`
}

// ---- MENU ----

type MenuConfig struct {
	Poll      time.Duration `yaml:"poll"`
	Heartbeat time.Duration `yaml:"heartbeat"`
	// IdleTicks is the number of heartbeats without a selection before the
	// badge gives up and sleeps until touched.
	IdleTicks int `yaml:"idle_ticks"`
}

// ---- SCAN ----

type ScanConfig struct {
	// Settle is the pause between starting the radio and scanning.
	Settle time.Duration `yaml:"settle"`
}

// Default returns the reference calibration of revision D hardware.
func Default() Config {
	return Config{
		Badge: BadgeConfig{
			Title:  "Prague 2023",
			QRText: "https://makerfaire.cz",
		},
		Touch: TouchConfig{
			Threshold:     20000,
			WakeChannel:   5,
			WakeThreshold: 1000,
		},
		Battery: BatteryConfig{
			Scale:     1.05,
			Reference: 2.50,
			FullScale: 4096,
			Cutoff:    3.45,
			Settle:    150 * time.Microsecond,
		},
		Sleep: SleepConfig{
			Badge:    360 * time.Second,
			Scan:     30 * time.Second,
			ColdBoot: 1 * time.Second,
		},
		Menu: MenuConfig{
			Poll:      150 * time.Millisecond,
			Heartbeat: 600 * time.Millisecond,
			IdleTicks: 100,
		},
		Scan: ScanConfig{
			Settle: 100 * time.Millisecond,
		},
	}
}

var errTimedSleepRequired = errors.New("timed sleeps must be at least one second")

// Validate checks configuration correctness. It does not mutate cfg.
func Validate(cfg *Config) error {
	if cfg.Touch.WakeChannel < 1 || cfg.Touch.WakeChannel > 5 {
		return fmt.Errorf("touch: wake_channel %d out of range 1..5", cfg.Touch.WakeChannel)
	}
	if cfg.Touch.Threshold == 0 {
		return errors.New("touch: threshold must be positive")
	}

	b := cfg.Battery
	if b.Scale <= 0 || b.Reference <= 0 || b.FullScale <= 0 {
		return fmt.Errorf("battery: scale, reference and full_scale must be positive (got %g, %g, %g)",
			b.Scale, b.Reference, b.FullScale)
	}
	if b.Cutoff < 0 {
		return fmt.Errorf("battery: cutoff %g is negative", b.Cutoff)
	}
	if b.Settle < 0 {
		return errors.New("battery: settle is negative")
	}

	// A zero timer means "sleep until touched", which would strand the
	// cold-boot detour and the badge refresh.
	for name, d := range map[string]time.Duration{
		"badge":     cfg.Sleep.Badge,
		"scan":      cfg.Sleep.Scan,
		"cold_boot": cfg.Sleep.ColdBoot,
	} {
		if d < time.Second {
			return fmt.Errorf("sleep: %s: %w", name, errTimedSleepRequired)
		}
	}

	m := cfg.Menu
	if m.Poll <= 0 || m.Heartbeat <= 0 {
		return errors.New("menu: poll and heartbeat must be positive")
	}
	if m.IdleTicks <= 0 {
		return fmt.Errorf("menu: idle_ticks must be positive, got %d", m.IdleTicks)
	}

	for i := 0; i < len(cfg.Badge.Title); i++ {
		if cfg.Badge.Title[i] > 0x7E {
			return errors.New("badge: title must be printable ASCII (panel fonts have no other glyphs)")
		}
	}
	return nil
}
