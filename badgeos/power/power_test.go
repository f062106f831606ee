package power

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"makerbadge/hal"
)

func newHost(t *testing.T) *hal.Host {
	t.Helper()
	h := hal.NewHost(hal.DefaultHostOptions(), hal.NewVirtualClock(), nil)
	h.Boot(hal.WakeColdBoot)
	return h
}

func TestAsSleepThroughWrapping(t *testing.T) {
	err := fmt.Errorf("battery: %w", Indefinite("low battery"))
	s, ok := AsSleep(err)
	if !ok {
		t.Fatalf("AsSleep(%v) = false", err)
	}
	if !s.Indefinite() || s.Reason != "low battery" {
		t.Fatalf("unexpected sleep %+v", s)
	}

	if _, ok := AsSleep(errors.New("boom")); ok {
		t.Fatalf("plain error classified as sleep")
	}
	if _, ok := AsSleep(nil); ok {
		t.Fatalf("nil classified as sleep")
	}
}

func TestSleepError(t *testing.T) {
	if got, want := After(30*time.Second, "scan").Error(), "sleep for 30s (scan)"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if got, want := Indefinite("").Error(), "sleep until touched"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestPowerUp(t *testing.T) {
	h := newHost(t)
	s := NewSequencer(h, hal.PadForChannel(5), 1000)
	s.PowerUp()

	if got, want := h.Rails().Describe(), "led=off epd=on bat=off"; got != want {
		t.Fatalf("rails = %q, want %q", got, want)
	}
	if w, hh := h.Panel().Size(); w != hal.PanelWidth || hh != hal.PanelHeight {
		t.Fatalf("panel size = %dx%d, want landscape", w, hh)
	}
	if got := h.SimRadio().Mode(); got != hal.RadioOff {
		t.Fatalf("radio mode = %s, want off", got)
	}
	if got := h.SimTouch().WakePad(); got != 1 {
		t.Fatalf("wake pad = %d, want 1", got)
	}
	if !h.SimPower().State().TouchArmed {
		t.Fatalf("touch wake not armed")
	}
}

func TestEnterSleepTimed(t *testing.T) {
	h := newHost(t)
	s := NewSequencer(h, hal.PadForChannel(5), 1000)
	s.PowerUp()
	s.EnableLEDs()
	s.EnableBatteryDivider(true)
	h.Radio().SetMode(hal.RadioStation)

	s.EnterSleep(After(360*time.Second, "badge"))

	if got, want := h.Rails().Describe(), "led=off epd=off bat=off"; got != want {
		t.Fatalf("rails = %q, want %q", got, want)
	}
	if h.Panel().Powered() {
		t.Fatalf("panel still powered")
	}
	if got := h.SimRadio().Mode(); got != hal.RadioOff {
		t.Fatalf("radio mode = %s, want off", got)
	}
	if got := h.SimRadio().Disconnects(); got != 1 {
		t.Fatalf("disconnects = %d, want 1", got)
	}
	st := h.SimPower().State()
	if !st.Asleep || st.Timer != 360*time.Second || !st.TouchArmed {
		t.Fatalf("sleep state = %+v", st)
	}
}

func TestEnterSleepIndefiniteArmsNoTimer(t *testing.T) {
	h := newHost(t)
	s := NewSequencer(h, hal.PadForChannel(5), 1000)
	s.PowerUp()
	s.EnterSleep(nil)

	st := h.SimPower().State()
	if !st.Asleep || st.Timer != 0 {
		t.Fatalf("sleep state = %+v, want asleep without timer", st)
	}
}
