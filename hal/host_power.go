//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

// SimPower records wake-source arming and sleep entry. DeepSleep returns on
// the host; the simulator treats the end of the cycle as the restart point.
type SimPower struct {
	mu         sync.Mutex
	cause      WakeCause
	timer      time.Duration
	touchArmed bool
	asleep     bool
	sleeps     int
}

func (p *SimPower) WakeCause() WakeCause {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cause
}

func (p *SimPower) ArmTimer(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.timer = d
}

func (p *SimPower) ArmTouch() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.touchArmed = true
}

func (p *SimPower) DeepSleep() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.asleep = true
	p.sleeps++
}

// SleepState describes how the last cycle ended.
type SleepState struct {
	Asleep     bool
	Timer      time.Duration // 0 when no timer wake was armed
	TouchArmed bool
}

// State returns the sleep state reached by the current cycle.
func (p *SimPower) State() SleepState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return SleepState{Asleep: p.asleep, Timer: p.timer, TouchArmed: p.touchArmed}
}

// Sleeps counts DeepSleep calls since the simulator started.
func (p *SimPower) Sleeps() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sleeps
}

// begin starts a new cycle: the chip boots with no wake source armed.
func (p *SimPower) begin(cause WakeCause) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cause = cause
	p.timer = 0
	p.touchArmed = false
	p.asleep = false
}
