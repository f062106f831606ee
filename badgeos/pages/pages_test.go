package pages

import (
	"errors"
	"strings"
	"testing"

	"makerbadge/badgeos/assets"
	"makerbadge/badgeos/config"
	"makerbadge/badgeos/power"
	"makerbadge/badgeos/wifiscan"
	"makerbadge/hal"

	"tinygo.org/x/drivers"
)

type fixedVolts struct {
	v   float64
	err error
}

func (f fixedVolts) ReadVoltage() (float64, error) { return f.v, f.err }

type fixedScan struct {
	hist wifiscan.Histogram
	err  error
	runs int
}

func (f *fixedScan) Scan() (wifiscan.Histogram, error) {
	f.runs++
	return f.hist, f.err
}

func newRenderer(t *testing.T, v Voltmeter, s Scanner) (*hal.Host, *Renderer) {
	t.Helper()
	h := hal.NewHost(hal.DefaultHostOptions(), hal.NewVirtualClock(), nil)
	h.Boot(hal.WakeColdBoot)
	if err := h.Display().Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := h.Display().SetRotation(drivers.Rotation270); err != nil {
		t.Fatalf("SetRotation: %v", err)
	}
	if s == nil {
		s = &fixedScan{}
	}
	return h, NewRenderer(h, config.Default().Badge, v, s)
}

func inkIn(p *hal.SimPanel, x0, y0, x1, y1 int) int {
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if p.Ink(x, y) {
				n++
			}
		}
	}
	return n
}

func checkRefreshed(t *testing.T, h *hal.Host) {
	t.Helper()
	passes, refreshes, aborted := h.Panel().Stats()
	if refreshes != 1 || aborted != 0 {
		t.Fatalf("refreshes=%d aborted=%d, want one clean refresh", refreshes, aborted)
	}
	rows := h.Options().PageRows
	if want := (hal.PanelHeight + rows - 1) / rows; passes != want {
		t.Fatalf("passes = %d, want %d", passes, want)
	}
	if h.Panel().Powered() {
		t.Fatalf("panel left powered after the frame")
	}
}

func TestMenuPage(t *testing.T) {
	h, r := newRenderer(t, fixedVolts{v: 4}, nil)
	if err := r.Render(Menu, 0); err != nil {
		t.Fatalf("Render: %v", err)
	}
	checkRefreshed(t, h)

	// Every text line lands in the clear column of the artwork.
	for _, baseline := range []int{42, 67, 83, 99, 115} {
		if inkIn(h.Panel(), 110, baseline-12, 244, baseline+1) == 0 {
			t.Fatalf("no text ink on the line at y=%d", baseline)
		}
	}
	// Artwork on the left is intact, including the bottom page band.
	if !h.Panel().Ink(0, 0) || !h.Panel().Ink(0, hal.PanelHeight-1) {
		t.Fatalf("menu frame missing")
	}

	lit := h.SimLEDs().Lit()
	if lit[0] != IdleColor || lit[1] != IdleColor {
		t.Fatalf("leds = %v, want idle on both indicators", lit[:2])
	}
}

func TestBadgePageWhiteText(t *testing.T) {
	h, r := newRenderer(t, fixedVolts{v: 3.95}, nil)
	if err := r.Render(Badge, 42); err != nil {
		t.Fatalf("Render: %v", err)
	}
	checkRefreshed(t, h)

	box := (245 - 155) * (45 - 5)
	if ink := inkIn(h.Panel(), 155, 5, 245, 45); ink == box {
		t.Fatalf("no white text punched into the text box")
	}
	if got := h.SimLEDs().Lit()[0]; got != PageColor {
		t.Fatalf("led0 = %v, want page color", got)
	}
}

func TestBadgePageLowBatteryDrawsNothing(t *testing.T) {
	h, r := newRenderer(t, fixedVolts{err: power.Indefinite("low battery")}, nil)
	err := r.Render(Badge, 1)
	if _, ok := power.AsSleep(err); !ok {
		t.Fatalf("err = %v, want sleep request", err)
	}
	if passes, refreshes, _ := h.Panel().Stats(); passes != 0 || refreshes != 0 {
		t.Fatalf("panel drawn below cutoff: passes=%d refreshes=%d", passes, refreshes)
	}
}

func TestQRPage(t *testing.T) {
	h, r := newRenderer(t, fixedVolts{v: 4}, nil)
	if err := r.Render(QR, 0); err != nil {
		t.Fatalf("Render: %v", err)
	}
	checkRefreshed(t, h)

	code, err := assets.QR(config.Default().Badge.QRText, qrSide)
	if err != nil {
		t.Fatalf("QR: %v", err)
	}
	x0 := int(hal.PanelHeight-code.W) / 2
	y0 := int(hal.PanelHeight-code.H) / 2
	for y := 0; y < int(code.H); y += 3 {
		for x := 0; x < int(code.W); x += 3 {
			if h.Panel().Ink(x0+x, y0+y) != code.At(int16(x), int16(y)) {
				t.Fatalf("qr pixel (%d,%d) differs from the encoder", x, y)
			}
		}
	}
}

func TestWifiPage(t *testing.T) {
	var hist wifiscan.Histogram
	for _, ch := range []int{1, 6, 6, 11} {
		hist.Add(ch)
	}
	scan := &fixedScan{hist: hist}
	h, r := newRenderer(t, fixedVolts{v: 4}, scan)
	if err := r.Render(WifiScan, 0); err != nil {
		t.Fatalf("Render: %v", err)
	}
	checkRefreshed(t, h)

	if scan.runs != 1 {
		t.Fatalf("scanned %d times, want 1", scan.runs)
	}
	lit := h.SimLEDs().Lit()
	if lit[0] != PageColor || lit[1] != ScanColor {
		t.Fatalf("leds = %v, want page and scan indicators", lit[:2])
	}
	if inkIn(h.Panel(), 210, 5, 248, 69) == 0 {
		t.Fatalf("wifi icon missing")
	}
	for row := 0; row < 7; row++ {
		y := 17 + 17*row
		if inkIn(h.Panel(), 0, y-11, 90, y+1) == 0 || inkIn(h.Panel(), 95, y-11, 200, y+1) == 0 {
			t.Fatalf("channel grid row %d missing", row)
		}
	}
}

func TestWifiPageScanErrorShowsEmpty(t *testing.T) {
	scan := &fixedScan{err: errors.New("radio down")}
	h, r := newRenderer(t, fixedVolts{v: 4}, scan)
	if err := r.Render(WifiScan, 0); err != nil {
		t.Fatalf("Render: %v", err)
	}
	checkRefreshed(t, h)
	found := false
	for _, line := range h.Tail(0) {
		if strings.Contains(line, "radio down") {
			found = true
		}
	}
	if !found {
		t.Fatalf("scan error not logged: %q", h.Tail(0))
	}
}

func TestChannelLabel(t *testing.T) {
	for ch, want := range map[int]string{
		1:  "CH 1: 0",
		7:  "CH 7: 0",
		8:  "CH  8: 0",
		9:  "CH  9: 0",
		10: "CH 10: 0",
	} {
		if got := channelLabel(ch, 0); got != want {
			t.Fatalf("channelLabel(%d) = %q, want %q", ch, got, want)
		}
	}
}

func TestFramePowersOffOnPanic(t *testing.T) {
	h, r := newRenderer(t, fixedVolts{v: 4}, nil)
	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("panic swallowed")
			}
		}()
		r.frame(func(drivers.Displayer) { panic("draw failed") })
	}()
	if h.Panel().Powered() {
		t.Fatalf("panel still powered after a panicking frame")
	}
	if _, _, aborted := h.Panel().Stats(); aborted != 1 {
		t.Fatalf("aborted = %d, want 1", aborted)
	}
}

func TestFitWidth(t *testing.T) {
	long := strings.Repeat("x", 200)
	got := fitWidth(small, long, 100)
	if len(got) == 0 || len(got) >= len(long) {
		t.Fatalf("fitWidth kept %d of %d bytes", len(got), len(long))
	}
}
