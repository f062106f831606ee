// Package app wires the badge components onto a HAL and runs wake cycles.
package app

import (
	"fmt"

	"makerbadge/badgeos/battery"
	"makerbadge/badgeos/config"
	"makerbadge/badgeos/modes"
	"makerbadge/badgeos/pages"
	"makerbadge/badgeos/power"
	"makerbadge/badgeos/state"
	"makerbadge/badgeos/touch"
	"makerbadge/badgeos/wake"
	"makerbadge/badgeos/wifiscan"
	"makerbadge/hal"
	"makerbadge/internal/buildinfo"
)

type system struct {
	h   hal.HAL
	cfg config.Config

	seq        *power.Sequencer
	store      *state.Store
	dispatcher *wake.Dispatcher
}

func newSystem(h hal.HAL, cfg config.Config) *system {
	cause := h.Power().WakeCause()
	store, reset := state.Open(h.Retained(), cause)
	if reset {
		h.Logger().WriteLineString("app: retained state reset")
	}

	r := pages.NewRenderer(h, cfg.Badge,
		battery.NewMonitor(h, cfg.Battery),
		wifiscan.NewScanner(h, cfg.Scan.Settle))
	m := modes.NewMachine(store, r,
		touch.NewReader(h.Touch(), cfg.Touch.Threshold),
		h.Clock(), h.Logger(), cfg)

	return &system{
		h:          h,
		cfg:        cfg,
		seq:        power.NewSequencer(h, hal.PadForChannel(cfg.Touch.WakeChannel), cfg.Touch.WakeThreshold),
		store:      store,
		dispatcher: wake.NewDispatcher(h.Power(), store, m, h.Logger(), cfg.Sleep),
	}
}

// Cycle runs one wake cycle: bring-up, dispatch, then sleep. It returns
// after DeepSleep only on hosts whose DeepSleep returns, or when the menu
// returned on a selection without scheduling a sleep.
func Cycle(h hal.HAL, cfg config.Config) (res wake.Result) {
	l := h.Logger()
	defer recoverToSleep(h, &res)

	bootDiagSetStep(h, "power up")
	l.WriteLineString(fmt.Sprintf("app: makerbadge %s cause=%s", buildinfo.Short(), h.Power().WakeCause()))
	s := newSystem(h, cfg)
	s.seq.PowerUp()

	bootDiagSetStep(h, "dispatch")
	res = s.dispatcher.Dispatch()
	l.WriteLineString(fmt.Sprintf("app: page=%s mode=%s wakes=%d", res.Page, res.Mode, res.WakeCount))

	if res.Sleep == nil {
		bootDiagSetStep(h, "awake")
		l.WriteLineString("app: awake without sleep")
		return res
	}
	bootDiagSetStep(h, "sleep")
	s.seq.EnterSleep(res.Sleep)
	return res
}

// Run executes one cycle on the board. Deep sleep does not return; a menu
// selection leaves the badge awake and idle.
func Run(h hal.HAL, cfg config.Config) {
	bootDiagStart(h)
	Cycle(h, cfg)
	select {}
}
