//go:build tinygo && baremetal && rp2040

package hal

import (
	"device/rp"
	"machine"
	"time"
)

// Watchdog scratch registers survive a CPU reset but not a power cycle,
// which is exactly the retention the firmware relies on. SCRATCH4..7 are
// reserved for the boot ROM.
const scratchMagic = 0x6D6B6264 // "mkbd"

type scratchRetained struct{}

func (scratchRetained) Load() (uint8, uint32, bool) {
	if rp.WATCHDOG.SCRATCH0.Get() != scratchMagic {
		return 0, 0, false
	}
	return uint8(rp.WATCHDOG.SCRATCH1.Get()), rp.WATCHDOG.SCRATCH2.Get(), true
}

func (scratchRetained) Store(mode uint8, wakes uint32) {
	rp.WATCHDOG.SCRATCH1.Set(uint32(mode))
	rp.WATCHDOG.SCRATCH2.Set(wakes)
	rp.WATCHDOG.SCRATCH0.Set(scratchMagic)
}

func (scratchRetained) Clear() {
	rp.WATCHDOG.SCRATCH0.Set(0)
}

const sleepPoll = 50 * time.Millisecond

// badgePower emulates deep sleep: with every rail off the core idles,
// polling the armed wake sources, and resets into the entry point. The
// wake cause is handed over in SCRATCH3.
type badgePower struct {
	cause WakeCause
	touch *mpr121Touch
	clock Clock

	timer      time.Duration
	touchArmed bool
}

func newBadgePower(mem scratchRetained, touch *mpr121Touch, clock Clock) *badgePower {
	p := &badgePower{cause: WakeColdBoot, touch: touch, clock: clock}
	if _, _, ok := mem.Load(); ok {
		switch c := WakeCause(rp.WATCHDOG.SCRATCH3.Get()); c {
		case WakeTimer, WakeTouch:
			p.cause = c
		default:
			p.cause = WakeUnknown
		}
	}
	rp.WATCHDOG.SCRATCH3.Set(uint32(WakeUnknown))
	return p
}

func (p *badgePower) WakeCause() WakeCause     { return p.cause }
func (p *badgePower) ArmTimer(d time.Duration) { p.timer = d }
func (p *badgePower) ArmTouch()                { p.touchArmed = true }

func (p *badgePower) DeepSleep() {
	start := p.clock.Now()
	for {
		if p.touchArmed && p.touch.wakeTouched() {
			p.wake(WakeTouch)
		}
		if p.timer > 0 && p.clock.Now()-start >= p.timer {
			p.wake(WakeTimer)
		}
		p.clock.Sleep(sleepPoll)
	}
}

func (p *badgePower) wake(cause WakeCause) {
	rp.WATCHDOG.SCRATCH3.Set(uint32(cause))
	machine.CPUReset()
}
