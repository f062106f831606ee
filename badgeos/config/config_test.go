package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := Validate(&cfg); err != nil {
		t.Fatalf("Validate(Default()): %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badge.yaml")
	doc := `
badge:
  title: "Brno 2024"
battery:
  cutoff: 3.3
menu:
  idle_ticks: 10
sleep:
  badge: 10m
sim:
  battery_volts: 3.7
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Badge.Title != "Brno 2024" {
		t.Fatalf("title: got %q", cfg.Badge.Title)
	}
	if cfg.Badge.QRText != Default().Badge.QRText {
		t.Fatalf("qr_text should keep its default, got %q", cfg.Badge.QRText)
	}
	if cfg.Battery.Cutoff != 3.3 || cfg.Battery.Scale != 1.05 {
		t.Fatalf("battery: got %+v", cfg.Battery)
	}
	if cfg.Menu.IdleTicks != 10 || cfg.Menu.Poll != 150*time.Millisecond {
		t.Fatalf("menu: got %+v", cfg.Menu)
	}
	if cfg.Sleep.Badge != 10*time.Minute {
		t.Fatalf("sleep.badge: got %v", cfg.Sleep.Badge)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badge.yaml")
	if err := os.WriteFile(path, []byte("touch:\n  wake_channel: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "wake_channel") {
		t.Fatalf("expected wake_channel error, got %v", err)
	}
}

func TestValidateRejectsUntimedSleep(t *testing.T) {
	cfg := Default()
	cfg.Sleep.ColdBoot = 0
	err := Validate(&cfg)
	if !errors.Is(err, errTimedSleepRequired) {
		t.Fatalf("expected errTimedSleepRequired, got %v", err)
	}
}

func TestValidateRejectsNonASCIITitle(t *testing.T) {
	cfg := Default()
	cfg.Badge.Title = "Praha ✓"
	if err := Validate(&cfg); err == nil {
		t.Fatal("expected error for non-ASCII title")
	}
}
