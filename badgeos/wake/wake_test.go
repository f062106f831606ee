package wake

import (
	"testing"
	"time"

	"makerbadge/badgeos/battery"
	"makerbadge/badgeos/config"
	"makerbadge/badgeos/modes"
	"makerbadge/badgeos/pages"
	"makerbadge/badgeos/power"
	"makerbadge/badgeos/state"
	"makerbadge/badgeos/touch"
	"makerbadge/badgeos/wifiscan"
	"makerbadge/hal"
)

type rig struct {
	host  *hal.Host
	store *state.Store
	d     *Dispatcher
}

// boot starts a cycle on h with cause and wires the dispatcher the way
// the firmware does.
func boot(h *hal.Host, cause hal.WakeCause) *rig {
	cfg := config.Default()
	h.Boot(cause)
	power.NewSequencer(h, hal.PadForChannel(cfg.Touch.WakeChannel), cfg.Touch.WakeThreshold).PowerUp()

	store, _ := state.Open(h.Retained(), cause)
	r := pages.NewRenderer(h, cfg.Badge,
		battery.NewMonitor(h, cfg.Battery),
		wifiscan.NewScanner(h, cfg.Scan.Settle))
	m := modes.NewMachine(store, r, touch.NewReader(h.Touch(), cfg.Touch.Threshold), h.Clock(), h.Logger(), cfg)
	return &rig{host: h, store: store, d: NewDispatcher(h.Power(), store, m, h.Logger(), cfg.Sleep)}
}

func newHost() *hal.Host {
	return hal.NewHost(hal.DefaultHostOptions(), hal.NewVirtualClock(), nil)
}

func seed(h *hal.Host, mode state.Mode, wakes uint32) {
	h.Retained().Store(uint8(mode), wakes)
}

func TestColdBootMenuSelectionDetours(t *testing.T) {
	h := newHost()
	seed(h, state.QrCode, 12)
	h.SimTouch().Hold(3, true)
	r := boot(h, hal.WakeColdBoot)
	res := r.d.Dispatch()

	if res.Page != pages.Menu {
		t.Fatalf("page = %s, want menu", res.Page)
	}
	if res.Sleep == nil || res.Sleep.Wake != time.Second {
		t.Fatalf("sleep = %v, want 1s", res.Sleep)
	}
	if res.WakeCount != 0 || res.Mode != state.WifiScan {
		t.Fatalf("state = {%s, %d}, want {wifi-scan, 0}", res.Mode, res.WakeCount)
	}
	if _, refreshes, _ := h.Panel().Stats(); refreshes != 1 {
		t.Fatalf("refreshes = %d, want one menu frame", refreshes)
	}
}

func TestColdBootIdleMenuSleepsUntilTouched(t *testing.T) {
	h := newHost()
	r := boot(h, hal.WakeColdBoot)
	res := r.d.Dispatch()

	if res.Page != pages.Menu || res.Sleep == nil || !res.Sleep.Indefinite() {
		t.Fatalf("result = %+v, want menu then indefinite sleep", res)
	}
	if res.Mode != state.Menu {
		t.Fatalf("mode = %s, want menu", res.Mode)
	}
}

func TestUnknownCauseKeepsState(t *testing.T) {
	h := newHost()
	seed(h, state.QrCode, 12)
	h.SimTouch().Hold(1, true)
	r := boot(h, hal.WakeUnknown)
	res := r.d.Dispatch()
	if res.Page != pages.Menu || res.Sleep == nil || res.Sleep.Wake != time.Second {
		t.Fatalf("unknown cause did not take the cold-boot path: %+v", res)
	}
	if res.WakeCount != 12 || res.Mode != state.Badge {
		t.Fatalf("state = {%s, %d}, want {badge, 12}", res.Mode, res.WakeCount)
	}
	if _, wakes, ok := h.Retained().Load(); !ok || wakes != 12 {
		t.Fatalf("retained wakes = %d, want 12", wakes)
	}
}

func TestBadgeTouchShowsQR(t *testing.T) {
	h := newHost()
	seed(h, state.Badge, 4)
	r := boot(h, hal.WakeTouch)
	res := r.d.Dispatch()

	if res.WakeCount != 5 || res.Mode != state.QrCode || res.Page != pages.QR {
		t.Fatalf("result = %+v", res)
	}
	if res.Sleep == nil || !res.Sleep.Indefinite() {
		t.Fatalf("sleep = %v, want indefinite", res.Sleep)
	}
	if _, wakes, _ := h.Retained().Load(); wakes != 5 {
		t.Fatalf("retained wakes = %d, want 5", wakes)
	}
}

func TestWifiScanTimerWake(t *testing.T) {
	h := newHost()
	seed(h, state.WifiScan, 0)
	r := boot(h, hal.WakeTimer)
	res := r.d.Dispatch()

	if res.Mode != state.Menu || res.Page != pages.WifiScan {
		t.Fatalf("result = %+v", res)
	}
	if res.Sleep == nil || res.Sleep.Wake != 30*time.Second {
		t.Fatalf("sleep = %v, want 30s", res.Sleep)
	}
	if h.SimRadio().Scans() != 1 {
		t.Fatalf("scans = %d, want 1", h.SimRadio().Scans())
	}
}

func TestMenuIdleSleepsIndefinitely(t *testing.T) {
	h := newHost()
	seed(h, state.Menu, 0)
	r := boot(h, hal.WakeTimer)
	res := r.d.Dispatch()

	if res.Sleep == nil || !res.Sleep.Indefinite() || res.Mode != state.Menu {
		t.Fatalf("result = %+v", res)
	}
}

func TestMenuSelectionReturnsAwake(t *testing.T) {
	h := newHost()
	seed(h, state.Menu, 0)
	h.SimTouch().Hold(2, true)
	r := boot(h, hal.WakeTouch)
	res := r.d.Dispatch()

	if res.Sleep != nil {
		t.Fatalf("sleep = %v, want none on a menu selection", res.Sleep)
	}
	if res.Mode != state.QrCode || res.WakeCount != 1 {
		t.Fatalf("result = %+v", res)
	}
}

func TestLowBatteryBadgeWake(t *testing.T) {
	opts := hal.DefaultHostOptions()
	opts.BatteryVolts = 3.2
	h := hal.NewHost(opts, hal.NewVirtualClock(), nil)
	seed(h, state.QrCode, 0)
	r := boot(h, hal.WakeTouch)
	res := r.d.Dispatch()

	if res.Sleep == nil || !res.Sleep.Indefinite() {
		t.Fatalf("sleep = %v, want indefinite", res.Sleep)
	}
	if res.Mode != state.Badge {
		t.Fatalf("mode = %s, want badge persisted before the cutoff", res.Mode)
	}
	if _, refreshes, _ := h.Panel().Stats(); refreshes != 0 {
		t.Fatalf("badge page drawn below cutoff")
	}
}

func TestWakeCountAcrossCycles(t *testing.T) {
	h := newHost()
	causes := []hal.WakeCause{hal.WakeColdBoot, hal.WakeTimer, hal.WakeTimer, hal.WakeTouch, hal.WakeTimer}
	want := []uint32{0, 1, 2, 3, 4}
	for i, cause := range causes {
		res := boot(h, cause).d.Dispatch()
		if res.WakeCount != want[i] {
			t.Fatalf("cycle %d (%s): wakes = %d, want %d", i, cause, res.WakeCount, want[i])
		}
	}
}
