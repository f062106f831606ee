//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"testing"
	"time"

	"tinygo.org/x/drivers"
)

func TestVirtualPinRequiresOutputMode(t *testing.T) {
	p := newVirtualPin("X", GPIOCapInput|GPIOCapOutput)
	if err := p.Write(true); err == nil {
		t.Fatalf("write to unconfigured pin succeeded")
	}
	if _, err := p.Read(); err == nil {
		t.Fatalf("read of unconfigured pin succeeded")
	}
	if err := p.Configure(GPIOModeInput, GPIOPullUp); err == nil {
		t.Fatalf("pull-up accepted without the capability")
	}
	if err := ConfigureOutput(p, true); err != nil {
		t.Fatalf("ConfigureOutput: %v", err)
	}
	if level, err := p.Read(); err != nil || !level {
		t.Fatalf("Read = %v, %v", level, err)
	}
	if err := ConfigureOutput(nil, true); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("nil pin: %v", err)
	}
}

func TestRailsDescribe(t *testing.T) {
	h := NewHost(DefaultHostOptions(), NewVirtualClock(), nil)
	if got := h.Rails().Describe(); got != "led=? epd=? bat=?" {
		t.Fatalf("floating rails = %q", got)
	}
	r := h.Rails()
	_ = ConfigureOutput(r.LEDDisable, true)
	_ = ConfigureOutput(r.EPaperDisable, false)
	_ = ConfigureOutput(r.BatteryDisable, true)
	if got, want := r.Describe(), "led=off epd=on bat=off"; got != want {
		t.Fatalf("Describe = %q, want %q", got, want)
	}
	if got := (Rails{}).Describe(); got != "led=n/a epd=n/a bat=n/a" {
		t.Fatalf("empty rails = %q", got)
	}
}

func TestBatteryReadsZeroWhileDividerDisabled(t *testing.T) {
	opts := DefaultHostOptions()
	opts.BatteryVolts = 4.2
	h := NewHost(opts, NewVirtualClock(), nil)
	bat := h.Rails().BatteryDisable

	_ = ConfigureOutput(bat, true)
	if got := h.Analog().Read(BatteryChannel); got != 0 {
		t.Fatalf("disabled divider read %d", got)
	}
	_ = ConfigureOutput(bat, false)
	got := h.Analog().Read(BatteryChannel)
	volts := 4.2
	want := uint16(volts / simADCGain / 2 / 2.5 * 4096)
	if got != want {
		t.Fatalf("raw = %d, want %d", got, want)
	}
	if h.Analog().Read(3) != 0 {
		t.Fatalf("unused channel reads non-zero")
	}
}

func TestColdBootClearsRetained(t *testing.T) {
	h := NewHost(DefaultHostOptions(), NewVirtualClock(), nil)
	h.Retained().Store(2, 9)

	h.Boot(WakeTimer)
	if _, wakes, ok := h.Retained().Load(); !ok || wakes != 9 {
		t.Fatalf("timer wake lost retained memory")
	}
	h.Boot(WakeColdBoot)
	if _, _, ok := h.Retained().Load(); ok {
		t.Fatalf("cold boot kept retained memory")
	}
	if h.Power().WakeCause() != WakeColdBoot {
		t.Fatalf("cause = %s", h.Power().WakeCause())
	}
}

func TestPanelKeepsOnlyCurrentPage(t *testing.T) {
	p := newSimPanel(32)
	_ = p.Init()
	_ = p.SetRotation(drivers.Rotation270)
	if w, h := p.Size(); w != PanelWidth || h != PanelHeight {
		t.Fatalf("size = %dx%d", w, h)
	}

	// Draw only during the first pass: later pages come out blank.
	p.FirstPage()
	first := true
	for {
		if first {
			p.SetPixel(10, 5, Black)
			p.SetPixel(10, 100, Black)
		}
		first = false
		if !p.NextPage() {
			break
		}
	}
	if !p.Ink(10, 5) {
		t.Fatalf("pixel on the first page lost")
	}
	if p.Ink(10, 100) {
		t.Fatalf("pixel outside the first page survived")
	}
	passes, refreshes, aborted := p.Stats()
	if passes != 4 || refreshes != 1 || aborted != 0 {
		t.Fatalf("stats = %d %d %d", passes, refreshes, aborted)
	}

	p.FirstPage()
	p.PowerOff()
	if _, _, aborted := p.Stats(); aborted != 1 {
		t.Fatalf("aborted = %d", aborted)
	}
}

func TestTouchWakeNeedsMarginOverBaseline(t *testing.T) {
	clock := NewVirtualClock()
	opts := DefaultHostOptions()
	tt := newSimTouch(clock, opts)
	_ = tt.EnableWake(PadForChannel(5), 1000)
	tt.Hold(5, true)
	if !tt.wakeActive() {
		t.Fatalf("held wake pad did not wake")
	}
	_ = tt.EnableWake(PadForChannel(5), opts.TouchActive)
	if tt.wakeActive() {
		t.Fatalf("woke below the wake threshold")
	}
	if err := tt.EnableWake(0, 1); err == nil {
		t.Fatalf("pad 0 accepted")
	}
}

func TestSimulatorWakesOnTimerAndScript(t *testing.T) {
	opts := DefaultHostOptions()
	opts.Script = []ScriptedTouch{{At: 5 * time.Second, Channel: 5, Hold: 200 * time.Millisecond}}
	clock := NewVirtualClock()
	h := NewHost(opts, clock, nil)

	var causes []WakeCause
	sim := NewSimulator(h, func(hh HAL) {
		causes = append(causes, hh.Power().WakeCause())
		hh.Clock().Sleep(500 * time.Millisecond)
		_ = hh.Touch().EnableWake(PadForChannel(5), 500)
		hh.Power().ArmTouch()
		if len(causes) == 1 {
			hh.Power().ArmTimer(time.Second)
		}
		hh.Power().DeepSleep()
	})

	err := sim.Run(context.Background(), 0)
	if !errors.Is(err, ErrNoWakeSource) {
		t.Fatalf("Run = %v", err)
	}
	want := []WakeCause{WakeColdBoot, WakeTimer, WakeTouch}
	if len(causes) != len(want) {
		t.Fatalf("causes = %v", causes)
	}
	for i := range want {
		if causes[i] != want[i] {
			t.Fatalf("causes = %v, want %v", causes, want)
		}
	}
	if now := clock.Now(); now < 5*time.Second || now > 6*time.Second {
		t.Fatalf("clock = %v", now)
	}
}

func TestSimulatorStopsWhenAwake(t *testing.T) {
	h := NewHost(DefaultHostOptions(), NewVirtualClock(), nil)
	sim := NewSimulator(h, func(HAL) {})
	if err := sim.Run(context.Background(), 0); !errors.Is(err, ErrAwake) {
		t.Fatalf("Run = %v", err)
	}
	if !sim.Awake() || sim.Cycles() != 1 {
		t.Fatalf("awake=%v cycles=%d", sim.Awake(), sim.Cycles())
	}
}

func TestRunHeadlessCycleLimit(t *testing.T) {
	h := NewHost(DefaultHostOptions(), NewVirtualClock(), nil)
	n := 0
	err := RunHeadless(context.Background(), h, func(hh HAL) {
		n++
		hh.Power().ArmTimer(time.Minute)
		hh.Power().DeepSleep()
	}, HeadlessConfig{Enabled: true, Cycles: 3})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if n != 3 {
		t.Fatalf("cycles = %d", n)
	}
	tail := h.Tail(1)
	if len(tail) != 1 || tail[0] != "sim: stopped after 3 cycles: cycle limit" {
		t.Fatalf("tail = %q", tail)
	}
}

func TestPanelKeepsImageAcrossSameRotation(t *testing.T) {
	p := newSimPanel(PanelHeight)
	_ = p.Init()
	_ = p.SetRotation(drivers.Rotation270)
	p.FirstPage()
	p.SetPixel(3, 4, Black)
	p.NextPage()

	// Every wake re-applies the rotation during bring-up.
	_ = p.SetRotation(drivers.Rotation270)
	if !p.Ink(3, 4) {
		t.Fatalf("image lost when the rotation was re-applied")
	}
	_ = p.SetRotation(drivers.Rotation0)
	if w, h := p.Size(); w != PanelHeight || h != PanelWidth {
		t.Fatalf("size after rotation = %dx%d", w, h)
	}
}
