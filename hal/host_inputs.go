//go:build !tinygo

package hal

import (
	"fmt"
	"sync"
	"time"
)

// simADCGain is the error of the simulated ADC: it reads 5% low, which is
// what the firmware's 1.05 calibration factor compensates.
const simADCGain = 1.05

// SimAnalog models the battery divider behind BatteryChannel.
type SimAnalog struct {
	mu    sync.Mutex
	volts float64
	rail  GPIOPin
	reads int
}

func newSimAnalog(volts float64, rail GPIOPin) *SimAnalog {
	return &SimAnalog{volts: volts, rail: rail}
}

// SetBatteryVolts changes the simulated cell voltage.
func (a *SimAnalog) SetBatteryVolts(v float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.volts = v
}

func (a *SimAnalog) Read(channel int) uint16 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reads++
	if channel != BatteryChannel {
		return 0
	}
	// The divider only conducts while its rail is enabled.
	if a.rail != nil {
		if disabled, err := a.rail.Read(); err != nil || disabled {
			return 0
		}
	}
	raw := a.volts / simADCGain / 2 / 2.5 * 4096
	if raw < 0 {
		return 0
	}
	if raw > 4095 {
		return 4095
	}
	return uint16(raw)
}

// Reads counts samples taken on any channel.
func (a *SimAnalog) Reads() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reads
}

// SimTouch models the five capacitive pads. A pad reads the active level
// while it is held from the UI or covered by a scripted press.
type SimTouch struct {
	mu       sync.Mutex
	clock    Clock
	baseline uint32
	active   uint32
	held     [TouchPads + 1]bool
	script   []ScriptedTouch

	wakePad       int
	wakeThreshold uint32
}

func newSimTouch(clock Clock, opts HostOptions) *SimTouch {
	return &SimTouch{
		clock:    clock,
		baseline: opts.TouchBaseline,
		active:   opts.TouchActive,
		script:   append([]ScriptedTouch(nil), opts.Script...),
	}
}

func (t *SimTouch) Read(pad int) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.activeLocked(pad) {
		return t.active
	}
	return t.baseline
}

func (t *SimTouch) activeLocked(pad int) bool {
	if pad < 1 || pad > TouchPads {
		return false
	}
	if t.held[pad] {
		return true
	}
	now := t.clock.Now()
	for _, s := range t.script {
		if PadForChannel(s.Channel) == pad && now >= s.At && now < s.At+s.Hold {
			return true
		}
	}
	return false
}

func (t *SimTouch) EnableWake(pad int, threshold uint32) error {
	if pad < 1 || pad > TouchPads {
		return fmt.Errorf("touch: pad %d out of range", pad)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.wakePad = pad
	t.wakeThreshold = threshold
	return nil
}

// Hold presses (or releases) menu channel ch.
func (t *SimTouch) Hold(channel int, pressed bool) {
	pad := PadForChannel(channel)
	if pad < 1 || pad > TouchPads {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.held[pad] = pressed
}

// Press adds a scripted press of menu channel ch starting now.
func (t *SimTouch) Press(channel int, hold time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.script = append(t.script, ScriptedTouch{At: t.clock.Now(), Channel: channel, Hold: hold})
}

// WakePad returns the pad registered as wake source, or 0.
func (t *SimTouch) WakePad() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.wakePad
}

func (t *SimTouch) wakeActive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.wakePad == 0 || !t.activeLocked(t.wakePad) {
		return false
	}
	return t.active > t.baseline+t.wakeThreshold
}

// pendingWake reports whether a scripted press of the wake pad is still
// ahead on the timeline.
func (t *SimTouch) pendingWake() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.clock.Now()
	for _, s := range t.script {
		if PadForChannel(s.Channel) == t.wakePad && s.At+s.Hold > now {
			return true
		}
	}
	return false
}
