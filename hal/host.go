//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"sync"
)

// Host is the simulated badge. It implements HAL and exposes the simulated
// devices so runners and tests can drive inputs and inspect outputs.
type Host struct {
	opts   HostOptions
	logger *hostLogger
	panel  *SimPanel
	leds   *SimLEDs
	rails  Rails
	pins   []*virtualPin
	radio  *SimRadio
	analog *SimAnalog
	touch  *SimTouch
	power  *SimPower
	mem    *SimRetained
	clock  Clock
}

// NewHost returns a powered-off simulated badge. Log lines go to w (nil
// discards them).
func NewHost(opts HostOptions, clock Clock, w io.Writer) *Host {
	if clock == nil {
		clock = NewRealClock(1)
	}
	if w == nil {
		w = io.Discard
	}
	logger := newHostLogger(w)

	railCaps := GPIOCapOutput | GPIOCapInput
	ledRail := newVirtualPin("LED_DISABLE", railCaps)
	epdRail := newVirtualPin("EPD_POWER_DISABLE", railCaps)
	batRail := newVirtualPin("BAT_MEAS_DISABLE", railCaps)

	h := &Host{
		opts:   opts,
		logger: logger,
		panel:  newSimPanel(opts.PageRows),
		rails:  Rails{LEDDisable: ledRail, EPaperDisable: epdRail, BatteryDisable: batRail},
		pins:   []*virtualPin{ledRail, epdRail, batRail},
		radio:  newSimRadio(opts.AccessPoints),
		analog: newSimAnalog(opts.BatteryVolts, batRail),
		touch:  newSimTouch(clock, opts),
		power:  &SimPower{},
		mem:    &SimRetained{},
		clock:  clock,
	}
	h.leds = newSimLEDs(NumLEDs, ledRail)
	return h
}

func (h *Host) Logger() Logger     { return h.logger }
func (h *Host) Display() EPaper    { return h.panel }
func (h *Host) LEDs() LEDStrip     { return h.leds }
func (h *Host) Rails() Rails       { return h.rails }
func (h *Host) Radio() Radio       { return h.radio }
func (h *Host) Analog() Analog     { return h.analog }
func (h *Host) Touch() TouchSensor { return h.touch }
func (h *Host) Power() Power       { return h.power }
func (h *Host) Retained() Retained { return h.mem }
func (h *Host) Clock() Clock       { return h.clock }

// Simulator-side accessors.

func (h *Host) Panel() *SimPanel          { return h.panel }
func (h *Host) SimLEDs() *SimLEDs         { return h.leds }
func (h *Host) SimRadio() *SimRadio       { return h.radio }
func (h *Host) SimAnalog() *SimAnalog     { return h.analog }
func (h *Host) SimTouch() *SimTouch       { return h.touch }
func (h *Host) SimPower() *SimPower       { return h.power }
func (h *Host) SimRetained() *SimRetained { return h.mem }
func (h *Host) Options() HostOptions      { return h.opts }

// Tail returns up to n most recent log lines.
func (h *Host) Tail(n int) []string { return h.logger.tail(n) }

// Subscribe returns a channel receiving every subsequent log line. Lines
// are dropped when the subscriber falls behind.
func (h *Host) Subscribe() <-chan string { return h.logger.subscribe() }

// Boot starts a wake cycle with the given cause. A cold boot models a
// power-on: retained memory is lost and every pin floats again.
func (h *Host) Boot(cause WakeCause) {
	if cause == WakeColdBoot {
		h.mem.Clear()
		for _, p := range h.pins {
			p.mu.Lock()
			p.configured = false
			p.mode = GPIOModeInput
			p.level = false
			p.mu.Unlock()
		}
		h.leds.reset()
		h.panel.PowerOff()
	}
	h.power.begin(cause)
	h.logger.WriteLineString(fmt.Sprintf("sim: boot cause=%s", cause))
}

const hostLogTail = 64

type hostLogger struct {
	mu   sync.Mutex
	w    io.Writer
	ring []string
	subs []chan string
}

func newHostLogger(w io.Writer) *hostLogger {
	return &hostLogger{w: w}
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
	l.ring = append(l.ring, s)
	if len(l.ring) > hostLogTail {
		l.ring = l.ring[len(l.ring)-hostLogTail:]
	}
	for _, ch := range l.subs {
		select {
		case ch <- s:
		default:
		}
	}
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}

func (l *hostLogger) tail(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n <= 0 || n > len(l.ring) {
		n = len(l.ring)
	}
	out := make([]string, n)
	copy(out, l.ring[len(l.ring)-n:])
	return out
}

func (l *hostLogger) subscribe() <-chan string {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch := make(chan string, 256)
	l.subs = append(l.subs, ch)
	return ch
}
