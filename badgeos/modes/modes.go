// Package modes decides what a wake shows and where the badge goes next.
package modes

import (
	"fmt"
	"image/color"
	"time"

	"makerbadge/badgeos/config"
	"makerbadge/badgeos/pages"
	"makerbadge/badgeos/power"
	"makerbadge/badgeos/state"
	"makerbadge/badgeos/touch"
	"makerbadge/hal"
)

// Step is the outcome of one transition.
type Step struct {
	Next state.Mode
	Page pages.Page
	// After ends the cycle. Nil when Interactive is set.
	After *power.Sleep
	// Interactive hands control to the menu loop.
	Interactive bool
}

// Transition maps the stored mode and the wake source to the next mode,
// the page to draw and the sleep that follows it.
func Transition(mode state.Mode, touched bool, sleep config.SleepConfig) Step {
	switch mode {
	case state.Badge:
		if touched {
			return Step{Next: state.QrCode, Page: pages.QR, After: power.Indefinite("qr")}
		}
		return Step{Next: state.Badge, Page: pages.Badge, After: power.After(sleep.Badge, "badge")}
	case state.QrCode:
		if touched {
			return Step{Next: state.Badge, Page: pages.Badge, After: power.After(sleep.Badge, "badge")}
		}
		return Step{Next: state.QrCode, Page: pages.QR, After: power.Indefinite("qr")}
	case state.WifiScan:
		return Step{Next: state.Menu, Page: pages.WifiScan, After: power.After(sleep.Scan, "wifi scan")}
	default:
		return Step{Next: mode, Page: pages.Menu, Interactive: true}
	}
}

// Pages draws pages and drives the indicator LEDs.
type Pages interface {
	Render(p pages.Page, wakes uint32) error
	SetIndicators(first, second color.RGBA)
}

// Touch samples the pads.
type Touch interface {
	ReadMask() touch.Mask
}

type Machine struct {
	store *state.Store
	pages Pages
	touch Touch
	clock hal.Clock
	log   hal.Logger
	cfg   config.Config
}

func NewMachine(store *state.Store, p Pages, t Touch, clock hal.Clock, log hal.Logger, cfg config.Config) *Machine {
	return &Machine{store: store, pages: p, touch: t, clock: clock, log: log, cfg: cfg}
}

// Run performs one transition from the stored mode and returns the step
// taken. The error is a *power.Sleep when the cycle must end in sleep and
// nil when the menu loop returned on a selection.
func (m *Machine) Run(touched bool) (Step, error) {
	from := m.store.Mode()
	step := Transition(from, touched, m.cfg.Sleep)
	if step.Interactive {
		m.logf("modes: %s -> menu loop", from)
		return step, m.Menu()
	}

	m.logf("modes: %s touch=%v -> %s", from, touched, step.Next)
	m.store.SetMode(step.Next)
	if err := m.pages.Render(step.Page, m.store.WakeCount()); err != nil {
		return step, err
	}
	return step, step.After
}

// Menu draws the menu and polls the pads until a selection is made or the
// idle budget runs out.
func (m *Machine) Menu() error {
	if err := m.pages.Render(pages.Menu, m.store.WakeCount()); err != nil {
		return err
	}

	mc := m.cfg.Menu
	flip := uint8(1)
	idle := mc.IdleTicks
	// The first heartbeat fires on the first poll.
	var last time.Duration
	beat := false
	for {
		m.clock.Sleep(mc.Poll)

		if next, ok := selection(m.touch.ReadMask()); ok {
			m.logf("modes: menu selected %s", next)
			m.store.SetMode(next)
			return nil
		}
		if m.store.Mode() != state.Menu {
			m.store.SetMode(state.Menu)
		}

		if now := m.clock.Now(); !beat || now-last > mc.Heartbeat {
			beat = true
			last = now
			leds := [2]color.RGBA{pages.Off, pages.Off}
			leds[flip&1] = pages.IdleColor
			flip++
			m.pages.SetIndicators(leds[0], leds[1])

			idle--
			if idle <= 0 {
				m.logf("modes: menu idle, sleeping")
				return power.Indefinite("menu idle")
			}
		}
	}
}

// selection maps a single touched channel to the mode it selects. Several
// pads at once select nothing.
func selection(mask touch.Mask) (state.Mode, bool) {
	switch mask.Channel() {
	case 1:
		return state.Badge, true
	case 2:
		return state.QrCode, true
	case 3:
		return state.WifiScan, true
	}
	return 0, false
}

func (m *Machine) logf(format string, args ...any) {
	m.log.WriteLineString(fmt.Sprintf(format, args...))
}
