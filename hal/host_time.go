//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

// realClock measures wall time since it was created. Speed > 1 compresses
// delays so that long timer wakes pass quickly in the simulator.
type realClock struct {
	start time.Time
	speed float64
}

// NewRealClock returns a clock backed by the host's monotonic clock.
func NewRealClock(speed float64) Clock {
	if speed <= 0 {
		speed = 1
	}
	return &realClock{start: time.Now(), speed: speed}
}

func (c *realClock) Now() time.Duration {
	return time.Duration(float64(time.Since(c.start)) * c.speed)
}

func (c *realClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(time.Duration(float64(d) / c.speed))
}

// VirtualClock only advances when Sleep is called. It makes simulated wake
// cycles deterministic.
type VirtualClock struct {
	mu  sync.Mutex
	now time.Duration
}

func NewVirtualClock() *VirtualClock { return &VirtualClock{} }

func (c *VirtualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *VirtualClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.now += d
	c.mu.Unlock()
}

// Advance is Sleep without the blocking connotation, for tests.
func (c *VirtualClock) Advance(d time.Duration) { c.Sleep(d) }
