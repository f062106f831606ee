package modes

import (
	"image/color"
	"testing"
	"time"

	"makerbadge/badgeos/config"
	"makerbadge/badgeos/pages"
	"makerbadge/badgeos/power"
	"makerbadge/badgeos/state"
	"makerbadge/badgeos/touch"
	"makerbadge/hal"
)

type fakePages struct {
	rendered   []pages.Page
	wakes      []uint32
	indicators [][2]color.RGBA
	err        error
	// modeAtRender records the persisted mode when each page is drawn.
	modeAtRender []state.Mode
	store        *state.Store
}

func (f *fakePages) Render(p pages.Page, wakes uint32) error {
	f.rendered = append(f.rendered, p)
	f.wakes = append(f.wakes, wakes)
	if f.store != nil {
		f.modeAtRender = append(f.modeAtRender, f.store.Mode())
	}
	return f.err
}

func (f *fakePages) SetIndicators(first, second color.RGBA) {
	f.indicators = append(f.indicators, [2]color.RGBA{first, second})
}

// scriptedTouch returns mask from time at onward.
type scriptedTouch struct {
	clock hal.Clock
	at    time.Duration
	mask  touch.Mask
	reads int
}

func (s *scriptedTouch) ReadMask() touch.Mask {
	s.reads++
	if s.mask != 0 && s.clock.Now() >= s.at {
		return s.mask
	}
	return 0
}

type discard struct{}

func (discard) WriteLineString(string) {}
func (discard) WriteLineBytes([]byte)  {}

func newMachine(mode state.Mode, wakes uint32, t *scriptedTouch) (*Machine, *fakePages, *state.Store, *hal.VirtualClock) {
	mem := &hal.SimRetained{}
	mem.Store(uint8(mode), wakes)
	store, _ := state.Open(mem, hal.WakeTimer)
	clock := hal.NewVirtualClock()
	if t == nil {
		t = &scriptedTouch{}
	}
	t.clock = clock
	p := &fakePages{store: store}
	return NewMachine(store, p, t, clock, discard{}, config.Default()), p, store, clock
}

func TestTransitionTable(t *testing.T) {
	sleep := config.Default().Sleep
	for _, tc := range []struct {
		mode    state.Mode
		touched bool
		next    state.Mode
		page    pages.Page
		wake    time.Duration
		loop    bool
	}{
		{state.Badge, true, state.QrCode, pages.QR, 0, false},
		{state.Badge, false, state.Badge, pages.Badge, 360 * time.Second, false},
		{state.QrCode, true, state.Badge, pages.Badge, 360 * time.Second, false},
		{state.QrCode, false, state.QrCode, pages.QR, 0, false},
		{state.WifiScan, true, state.Menu, pages.WifiScan, 30 * time.Second, false},
		{state.WifiScan, false, state.Menu, pages.WifiScan, 30 * time.Second, false},
		{state.Menu, true, state.Menu, pages.Menu, 0, true},
		{state.Menu, false, state.Menu, pages.Menu, 0, true},
		{state.Mode(7), false, state.Mode(7), pages.Menu, 0, true},
	} {
		got := Transition(tc.mode, tc.touched, sleep)
		if got.Next != tc.next || got.Page != tc.page || got.Interactive != tc.loop {
			t.Fatalf("Transition(%s, %v) = %+v", tc.mode, tc.touched, got)
		}
		if tc.loop {
			if got.After != nil {
				t.Fatalf("Transition(%s, %v): interactive step with a sleep", tc.mode, tc.touched)
			}
			continue
		}
		if got.After == nil || got.After.Wake != tc.wake {
			t.Fatalf("Transition(%s, %v): after = %v, want %v", tc.mode, tc.touched, got.After, tc.wake)
		}
	}
}

func TestRunWritesModeBeforeDrawing(t *testing.T) {
	m, p, store, _ := newMachine(state.Badge, 3, nil)
	_, err := m.Run(true)
	s, ok := power.AsSleep(err)
	if !ok || !s.Indefinite() {
		t.Fatalf("err = %v, want indefinite sleep", err)
	}
	if store.Mode() != state.QrCode {
		t.Fatalf("mode = %s, want qr", store.Mode())
	}
	if len(p.rendered) != 1 || p.rendered[0] != pages.QR || p.modeAtRender[0] != state.QrCode {
		t.Fatalf("rendered %v with modes %v", p.rendered, p.modeAtRender)
	}
}

func TestRunBatteryCutoffKeepsToggledMode(t *testing.T) {
	m, p, store, _ := newMachine(state.QrCode, 0, nil)
	p.err = power.Indefinite("low battery")
	_, err := m.Run(true)
	if s, ok := power.AsSleep(err); !ok || s.Reason != "low battery" {
		t.Fatalf("err = %v, want the battery sleep", err)
	}
	if store.Mode() != state.Badge {
		t.Fatalf("mode = %s, want badge persisted before the cutoff", store.Mode())
	}
}

func TestRunWifiScanReturnsToMenu(t *testing.T) {
	m, p, store, _ := newMachine(state.WifiScan, 0, nil)
	_, err := m.Run(false)
	if s, ok := power.AsSleep(err); !ok || s.Wake != 30*time.Second {
		t.Fatalf("err = %v, want 30s sleep", err)
	}
	if store.Mode() != state.Menu || p.rendered[0] != pages.WifiScan {
		t.Fatalf("mode = %s, rendered %v", store.Mode(), p.rendered)
	}
}

func TestMenuSelection(t *testing.T) {
	for _, tc := range []struct {
		mask touch.Mask
		want state.Mode
	}{
		{0b00001, state.Badge},
		{0b00010, state.QrCode},
		{0b00100, state.WifiScan},
	} {
		tt := &scriptedTouch{at: 2 * time.Second, mask: tc.mask}
		m, p, store, clock := newMachine(state.Menu, 5, tt)
		if _, err := m.Run(true); err != nil {
			t.Fatalf("mask %05b: err = %v, want return without sleep", tc.mask, err)
		}
		if store.Mode() != tc.want {
			t.Fatalf("mask %05b: mode = %s, want %s", tc.mask, store.Mode(), tc.want)
		}
		if len(p.rendered) != 1 || p.rendered[0] != pages.Menu {
			t.Fatalf("rendered %v, want only the menu", p.rendered)
		}
		if now := clock.Now(); now < 2*time.Second || now > 2*time.Second+150*time.Millisecond {
			t.Fatalf("selection noticed at %v", now)
		}
	}
}

func TestMenuIgnoresOtherMasks(t *testing.T) {
	for _, mask := range []touch.Mask{0b01000, 0b10000, 0b00011, 0b11111} {
		tt := &scriptedTouch{mask: mask}
		m, _, store, _ := newMachine(state.Mode(9), 0, tt)
		err := m.Menu()
		if s, ok := power.AsSleep(err); !ok || !s.Indefinite() {
			t.Fatalf("mask %05b: err = %v, want idle sleep", mask, err)
		}
		if store.Mode() != state.Menu {
			t.Fatalf("mask %05b: mode = %s, want menu", mask, store.Mode())
		}
	}
}

func TestMenuHeartbeatAndIdleBudget(t *testing.T) {
	tt := &scriptedTouch{}
	m, p, _, clock := newMachine(state.Menu, 0, tt)
	err := m.Menu()
	if s, ok := power.AsSleep(err); !ok || !s.Indefinite() {
		t.Fatalf("err = %v, want indefinite sleep", err)
	}

	ticks := config.Default().Menu.IdleTicks
	if len(p.indicators) != ticks {
		t.Fatalf("heartbeats = %d, want %d", len(p.indicators), ticks)
	}
	first := [2]color.RGBA{pages.Off, pages.IdleColor}
	second := [2]color.RGBA{pages.IdleColor, pages.Off}
	for i, got := range p.indicators {
		want := first
		if i%2 == 1 {
			want = second
		}
		if got != want {
			t.Fatalf("heartbeat %d = %v, want %v", i, got, want)
		}
	}

	// The first heartbeat fires on the first poll, the rest on the first
	// poll past 600 ms, i.e. every 750 ms.
	want := 150*time.Millisecond + time.Duration(ticks-1)*750*time.Millisecond
	if got := clock.Now(); got != want {
		t.Fatalf("idle sleep after %v, want %v", got, want)
	}
	if want := 1 + (ticks-1)*5; tt.reads != want {
		t.Fatalf("polled %d times, want %d", tt.reads, want)
	}
}

func TestMenuFirstHeartbeatOnFirstPoll(t *testing.T) {
	tt := &scriptedTouch{at: 200 * time.Millisecond, mask: 0b00001}
	m, p, _, _ := newMachine(state.Menu, 0, tt)
	if err := m.Menu(); err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(p.indicators) != 1 || p.indicators[0] != [2]color.RGBA{pages.Off, pages.IdleColor} {
		t.Fatalf("indicators = %v, want one heartbeat before the selection", p.indicators)
	}
}
