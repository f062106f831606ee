// Package pages draws the badge pages on the e-ink panel and drives the
// indicator LEDs that go with them.
package pages

import (
	"fmt"
	"image/color"

	"makerbadge/badgeos/assets"
	"makerbadge/badgeos/config"
	"makerbadge/badgeos/wifiscan"
	"makerbadge/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyfont/proggy"
)

// Page identifies one full-screen composition.
type Page uint8

const (
	Menu Page = iota
	Badge
	QR
	WifiScan
)

func (p Page) String() string {
	switch p {
	case Menu:
		return "menu"
	case Badge:
		return "badge"
	case QR:
		return "qr"
	case WifiScan:
		return "wifi-scan"
	default:
		return fmt.Sprintf("page(%d)", uint8(p))
	}
}

// Indicator colors.
var (
	IdleColor = color.RGBA{R: 5, G: 10}
	PageColor = color.RGBA{G: 10}
	ScanColor = color.RGBA{R: 50}
	Off       = color.RGBA{}
)

var (
	regular = &freesans.Regular9pt7b
	bold    = &freesans.Bold9pt7b
	mono    = &freemono.Regular9pt7b
	small   = &proggy.TinySZ8pt7b
)

// Voltmeter reads the battery. A *power.Sleep error ends the cycle.
type Voltmeter interface {
	ReadVoltage() (float64, error)
}

// Scanner counts access points per channel.
type Scanner interface {
	Scan() (wifiscan.Histogram, error)
}

type Renderer struct {
	display hal.EPaper
	leds    hal.LEDStrip
	ledRail hal.GPIOPin
	log     hal.Logger

	badge   config.BadgeConfig
	battery Voltmeter
	scanner Scanner

	qr    assets.Bitmap
	qrErr error
}

func NewRenderer(h hal.HAL, badge config.BadgeConfig, battery Voltmeter, scanner Scanner) *Renderer {
	return &Renderer{
		display: h.Display(),
		leds:    h.LEDs(),
		ledRail: h.Rails().LEDDisable,
		log:     h.Logger(),
		badge:   badge,
		battery: battery,
		scanner: scanner,
	}
}

// Render draws page p. wakes is printed on the badge page. The only error
// it returns is a sleep request from the battery check.
func (r *Renderer) Render(p Page, wakes uint32) error {
	r.logf("pages: %s", p)
	switch p {
	case Badge:
		return r.drawBadge(wakes)
	case QR:
		r.drawQR()
	case WifiScan:
		r.drawWifi()
	default:
		r.drawMenu()
	}
	return nil
}

// SetIndicators sets the two indicator LEDs and flushes the strip.
func (r *Renderer) SetIndicators(first, second color.RGBA) {
	r.leds.Set(0, first)
	r.leds.Set(1, second)
	r.showLEDs()
}

func (r *Renderer) enableLEDs() {
	if err := hal.ConfigureOutput(r.ledRail, false); err != nil {
		r.logf("pages: led rail: %v", err)
	}
	r.showLEDs()
}

func (r *Renderer) showLEDs() {
	if err := r.leds.Show(); err != nil {
		r.logf("pages: leds: %v", err)
	}
}

// frame runs one paged refresh. draw is replayed for every page pass, and
// the panel is powered off however the session ends.
func (r *Renderer) frame(draw func(d drivers.Displayer)) {
	r.display.FirstPage()
	defer r.display.PowerOff()
	for {
		r.display.FillScreen(hal.White)
		draw(r.display)
		if !r.display.NextPage() {
			return
		}
	}
}

func (r *Renderer) drawMenu() {
	r.leds.Set(0, IdleColor)
	r.leds.Set(1, IdleColor)
	r.enableLEDs()

	title := r.badge.Title
	r.frame(func(d drivers.Displayer) {
		assets.Menu.Draw(d, 0, 0, hal.Black)
		tinyfont.WriteLine(d, bold, 110, 42, title, hal.Black)
		tinyfont.WriteLine(d, regular, 110, 67, "1. Badge", hal.Black)
		tinyfont.WriteLine(d, regular, 110, 83, "2. QR code", hal.Black)
		tinyfont.WriteLine(d, regular, 110, 99, "3. WiFi CH rating", hal.Black)
		tinyfont.WriteLine(d, regular, 110, 115, "5. Wake up", hal.Black)
	})
}

func (r *Renderer) drawBadge(wakes uint32) error {
	r.leds.Set(0, PageColor)
	r.enableLEDs()

	v, err := r.battery.ReadVoltage()
	if err != nil {
		return err
	}
	battery := fmt.Sprintf("B: %.2f V", v)
	count := fmt.Sprintf("W: x %d", wakes)

	r.frame(func(d drivers.Displayer) {
		assets.Badge.Draw(d, 0, 0, hal.Black)
		tinyfont.WriteLine(d, regular, 165, 17, battery, hal.White)
		tinyfont.WriteLine(d, regular, 160, 40, count, hal.White)
	})
	return nil
}

const (
	qrSide    = hal.PanelHeight - 8
	qrCaption = 130
)

func (r *Renderer) drawQR() {
	r.leds.Set(0, PageColor)
	r.enableLEDs()

	if r.qr.Bits == nil && r.qrErr == nil {
		r.qr, r.qrErr = assets.QR(r.badge.QRText, qrSide)
		if r.qrErr != nil {
			r.logf("pages: %v", r.qrErr)
		}
	}
	code := r.qr
	title := r.badge.Title
	link := fitWidth(small, r.badge.QRText, hal.PanelWidth-qrCaption-4)

	r.frame(func(d drivers.Displayer) {
		if code.Bits != nil {
			code.Draw(d, (hal.PanelHeight-code.W)/2, (hal.PanelHeight-code.H)/2, hal.Black)
		}
		tinyfont.WriteLine(d, bold, qrCaption, 52, title, hal.Black)
		tinyfont.WriteLine(d, small, qrCaption, 76, link, hal.Black)
	})
}

func (r *Renderer) drawWifi() {
	if err := hal.ConfigureOutput(r.ledRail, false); err != nil {
		r.logf("pages: led rail: %v", err)
	}
	r.leds.Set(1, ScanColor)
	r.showLEDs()

	hist, err := r.scanner.Scan()
	if err != nil {
		r.logf("pages: %v", err)
		hist = wifiscan.Histogram{}
	}
	total := fmt.Sprintf("%3d", hist.Total)

	r.leds.Set(0, PageColor)
	r.enableLEDs()

	r.frame(func(d drivers.Displayer) {
		assets.Wifi.Draw(d, 210, 5, hal.Black)
		tinyfont.WriteLine(d, bold, 215, 88, "All", hal.Black)
		tinyfont.WriteLine(d, mono, 210, 112, total, hal.Black)

		x, y := int16(0), int16(17)
		for ch := 1; ch <= wifiscan.Channels; ch++ {
			if ch == 8 {
				x, y = 95, 17
			}
			tinyfont.WriteLine(d, mono, x, y, channelLabel(ch, hist.Count(ch)), hal.Black)
			y += 17
		}
	})
}

// channelLabel pads single-digit channels in the second column so the
// colons line up with CH 10..CH 14.
func channelLabel(ch, n int) string {
	if ch == 8 || ch == 9 {
		return fmt.Sprintf("CH  %d: %d", ch, n)
	}
	return fmt.Sprintf("CH %d: %d", ch, n)
}

func fitWidth(f tinyfont.Fonter, s string, max int) string {
	for len(s) > 0 {
		if w, _ := tinyfont.LineWidth(f, s); int(w) <= max {
			return s
		}
		s = s[:len(s)-1]
	}
	return s
}

func (r *Renderer) logf(format string, args ...any) {
	r.log.WriteLineString(fmt.Sprintf(format, args...))
}
