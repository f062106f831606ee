package state

import (
	"math"
	"testing"

	"makerbadge/hal"
)

func TestOpenColdBootResets(t *testing.T) {
	mem := &hal.SimRetained{}
	mem.Store(uint8(WifiScan), 41)

	s, reset := Open(mem, hal.WakeColdBoot)
	if !reset {
		t.Fatalf("cold boot did not reset")
	}
	if s.Mode() != Badge || s.WakeCount() != 0 {
		t.Fatalf("state = {%s, %d}, want {badge, 0}", s.Mode(), s.WakeCount())
	}
	if mode, wakes, ok := mem.Load(); !ok || mode != 0 || wakes != 0 {
		t.Fatalf("retained = {%d, %d, %v}, want written through", mode, wakes, ok)
	}
}

func TestOpenKeepsRecordAcrossWakes(t *testing.T) {
	mem := &hal.SimRetained{}
	mem.Store(uint8(QrCode), 7)

	for _, cause := range []hal.WakeCause{hal.WakeTimer, hal.WakeTouch, hal.WakeUnknown} {
		s, reset := Open(mem, cause)
		if reset {
			t.Fatalf("%s: unexpected reset", cause)
		}
		if s.Mode() != QrCode || s.WakeCount() != 7 {
			t.Fatalf("%s: state = {%s, %d}", cause, s.Mode(), s.WakeCount())
		}
	}
}

func TestOpenInvalidRecordResets(t *testing.T) {
	mem := &hal.SimRetained{}
	s, reset := Open(mem, hal.WakeTimer)
	if !reset || s.Mode() != Badge || s.WakeCount() != 0 {
		t.Fatalf("empty memory: reset=%v state={%s, %d}", reset, s.Mode(), s.WakeCount())
	}
}

func TestWriteThrough(t *testing.T) {
	mem := &hal.SimRetained{}
	s, _ := Open(mem, hal.WakeColdBoot)

	s.SetMode(Menu)
	if mode, _, _ := mem.Load(); Mode(mode) != Menu {
		t.Fatalf("SetMode not written through: %d", mode)
	}
	if got := s.IncrementWake(); got != 1 {
		t.Fatalf("IncrementWake = %d, want 1", got)
	}
	if _, wakes, _ := mem.Load(); wakes != 1 {
		t.Fatalf("IncrementWake not written through: %d", wakes)
	}
}

func TestWakeCountWraps(t *testing.T) {
	mem := &hal.SimRetained{}
	mem.Store(uint8(Badge), math.MaxUint32)
	s, _ := Open(mem, hal.WakeTimer)
	if got := s.IncrementWake(); got != 0 {
		t.Fatalf("IncrementWake = %d, want wrap to 0", got)
	}
}

func TestModeString(t *testing.T) {
	if Mode(9).Valid() {
		t.Fatalf("mode 9 reported valid")
	}
	if got := Mode(9).String(); got != "mode(9)" {
		t.Fatalf("String() = %q", got)
	}
	if got := WifiScan.String(); got != "wifi-scan" {
		t.Fatalf("String() = %q", got)
	}
}
