//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// SimLEDs is the simulated LED chain. Pending colors become visible on
// Show, and only while the LED rail is enabled.
type SimLEDs struct {
	mu      sync.Mutex
	pending []color.RGBA
	shown   []color.RGBA
	shows   int
	rail    GPIOPin
}

func newSimLEDs(n int, rail GPIOPin) *SimLEDs {
	return &SimLEDs{
		pending: make([]color.RGBA, n),
		shown:   make([]color.RGBA, n),
		rail:    rail,
	}
}

func (l *SimLEDs) Len() int { return len(l.pending) }

func (l *SimLEDs) Set(i int, c color.RGBA) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.pending) {
		return
	}
	l.pending[i] = c
}

func (l *SimLEDs) Show() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	copy(l.shown, l.pending)
	l.shows++
	return nil
}

// Lit returns what an observer sees: the last shown colors, or dark LEDs
// when the driver rail is disabled.
func (l *SimLEDs) Lit() []color.RGBA {
	out := make([]color.RGBA, len(l.shown))
	if l.rail != nil {
		if disabled, err := l.rail.Read(); err != nil || disabled {
			return out
		}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	copy(out, l.shown)
	return out
}

// Shown returns the last flushed colors regardless of the rail.
func (l *SimLEDs) Shown() []color.RGBA {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]color.RGBA, len(l.shown))
	copy(out, l.shown)
	return out
}

// Shows counts Show calls.
func (l *SimLEDs) Shows() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.shows
}

func (l *SimLEDs) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.pending {
		l.pending[i] = color.RGBA{}
		l.shown[i] = color.RGBA{}
	}
}
