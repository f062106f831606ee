//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

var (
	// ErrNoWakeSource ends a virtual-time run when the badge sleeps and no
	// timer or scripted touch can ever wake it.
	ErrNoWakeSource = errors.New("sim: asleep with no wake source ahead")
	// ErrAwake ends a virtual-time run when the firmware returned without
	// entering deep sleep.
	ErrAwake = errors.New("sim: firmware returned without sleeping")
)

const wakePollInterval = 10 * time.Millisecond

// Cycle runs the firmware from its entry point until it sleeps or returns.
type Cycle func(HAL)

// Simulator restarts the firmware after every simulated deep sleep, just as
// the chip does after a wake.
type Simulator struct {
	host  *Host
	cycle Cycle

	mu     sync.Mutex
	reset  bool
	cycles uint64
	awake  bool
}

func NewSimulator(h *Host, cycle Cycle) *Simulator {
	return &Simulator{host: h, cycle: cycle}
}

func (s *Simulator) Host() *Host { return s.host }

// Reset requests a power-on reset at the next opportunity.
func (s *Simulator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset = true
}

func (s *Simulator) takeReset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.reset
	s.reset = false
	return r
}

// Cycles returns the number of completed wake cycles.
func (s *Simulator) Cycles() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cycles
}

// Awake reports whether the last cycle returned without sleeping.
func (s *Simulator) Awake() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.awake
}

// Run boots the badge cold and keeps cycling until ctx is done, maxCycles
// cycles completed (0 = unbounded), or a virtual-time run can make no
// further progress.
func (s *Simulator) Run(ctx context.Context, maxCycles uint64) error {
	cause := WakeColdBoot
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if maxCycles > 0 && s.Cycles() >= maxCycles {
			return nil
		}

		s.host.Boot(cause)
		s.cycle(s.host)

		st := s.host.power.State()
		s.mu.Lock()
		s.cycles++
		s.awake = !st.Asleep
		s.mu.Unlock()

		next, err := s.waitWake(ctx, st)
		if err != nil {
			return err
		}
		cause = next
	}
}

func (s *Simulator) waitWake(ctx context.Context, st SleepState) (WakeCause, error) {
	_, virtual := s.host.clock.(*VirtualClock)
	start := s.host.clock.Now()
	for {
		if err := ctx.Err(); err != nil {
			return WakeUnknown, err
		}
		if s.takeReset() {
			return WakeColdBoot, nil
		}
		if !st.Asleep {
			if virtual {
				return WakeUnknown, ErrAwake
			}
		} else {
			if st.TouchArmed && s.host.touch.wakeActive() {
				return WakeTouch, nil
			}
			if st.Timer > 0 && s.host.clock.Now()-start >= st.Timer {
				return WakeTimer, nil
			}
			if virtual && st.Timer == 0 && (!st.TouchArmed || !s.host.touch.pendingWake()) {
				return WakeUnknown, ErrNoWakeSource
			}
		}
		s.host.clock.Sleep(wakePollInterval)
	}
}

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Enabled bool
	// Cycles stops the run after N wake cycles (0 = run until idle).
	Cycles uint64
	// Show prints every refreshed frame to the log.
	Show bool
}

// RunHeadless runs the simulator in virtual time and logs each frame.
func RunHeadless(ctx context.Context, h *Host, cycle Cycle, cfg HeadlessConfig) error {
	var lastVersion uint64
	sim := NewSimulator(h, func(hh HAL) {
		cycle(hh)
		if !cfg.Show {
			return
		}
		var v uint64
		var lines []string
		lines, v = RenderBraille(h.panel)
		if v == lastVersion {
			return
		}
		lastVersion = v
		for _, line := range lines {
			h.logger.WriteLineString(line)
		}
	})

	err := sim.Run(ctx, cfg.Cycles)
	h.logger.WriteLineString(fmt.Sprintf("sim: stopped after %d cycles: %s", sim.Cycles(), describeStop(err)))
	if errors.Is(err, ErrNoWakeSource) || errors.Is(err, ErrAwake) {
		return nil
	}
	return err
}

func describeStop(err error) string {
	if err == nil {
		return "cycle limit"
	}
	return strings.TrimPrefix(err.Error(), "sim: ")
}
