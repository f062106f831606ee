// Package wake classifies why the badge is running and starts the matching
// path through the mode machine.
package wake

import (
	"fmt"

	"makerbadge/badgeos/config"
	"makerbadge/badgeos/modes"
	"makerbadge/badgeos/pages"
	"makerbadge/badgeos/power"
	"makerbadge/badgeos/state"
	"makerbadge/hal"
)

// Result describes one dispatched wake.
type Result struct {
	Cause     hal.WakeCause
	Page      pages.Page
	Mode      state.Mode
	WakeCount uint32
	// Sleep is the terminal request. Nil only when the menu returned on a
	// selection.
	Sleep *power.Sleep
}

type Dispatcher struct {
	power   hal.Power
	store   *state.Store
	machine *modes.Machine
	log     hal.Logger
	cold    config.SleepConfig
}

func NewDispatcher(p hal.Power, store *state.Store, machine *modes.Machine, log hal.Logger, sleep config.SleepConfig) *Dispatcher {
	return &Dispatcher{power: p, store: store, machine: machine, log: log, cold: sleep}
}

// Dispatch runs the wake cycle for the reported cause. It does not enter
// sleep; the caller hands Result.Sleep to the power sequencer.
func (d *Dispatcher) Dispatch() Result {
	res := Result{Cause: d.power.WakeCause()}

	switch res.Cause {
	case hal.WakeTimer, hal.WakeTouch:
		res.WakeCount = d.store.IncrementWake()
		d.logf("wake: %s #%d mode=%s", res.Cause, res.WakeCount, d.store.Mode())
		step, err := d.machine.Run(res.Cause == hal.WakeTouch)
		res.Page = step.Page
		res.Sleep = d.sleepFrom(err)
	default:
		// After power-on, run the menu. A selection is shown after a short
		// timed sleep so the next wake classifies as a timer wake; an idle
		// menu sleeps until touched.
		res.WakeCount = d.store.WakeCount()
		d.logf("wake: %s, menu then %s", res.Cause, d.cold.ColdBoot)
		res.Page = pages.Menu
		res.Sleep = d.sleepFrom(d.machine.Menu())
		if res.Sleep == nil {
			res.Sleep = power.After(d.cold.ColdBoot, "cold boot")
		}
	}

	res.Mode = d.store.Mode()
	return res
}

func (d *Dispatcher) sleepFrom(err error) *power.Sleep {
	if err == nil {
		return nil
	}
	if s, ok := power.AsSleep(err); ok {
		return s
	}
	d.logf("wake: %v", err)
	return power.Indefinite("error")
}

func (d *Dispatcher) logf(format string, args ...any) {
	d.log.WriteLineString(fmt.Sprintf(format, args...))
}
