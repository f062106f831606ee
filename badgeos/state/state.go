// Package state keeps the badge mode and wake counter in memory that
// survives deep sleep.
package state

import (
	"fmt"

	"makerbadge/hal"
)

// Mode selects what the badge shows on its next wake.
type Mode uint8

const (
	Badge Mode = iota
	QrCode
	WifiScan
	Menu
)

// Valid reports whether m is a recognized mode.
func (m Mode) Valid() bool { return m <= Menu }

func (m Mode) String() string {
	switch m {
	case Badge:
		return "badge"
	case QrCode:
		return "qr"
	case WifiScan:
		return "wifi-scan"
	case Menu:
		return "menu"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Store is the write-through view of the retained record.
type Store struct {
	mem   hal.Retained
	mode  Mode
	wakes uint32
}

// Open loads the retained record. A cold boot, or memory holding no valid
// record, resets the state to {Badge, 0}; reset reports whether that
// happened.
func Open(mem hal.Retained, cause hal.WakeCause) (s *Store, reset bool) {
	s = &Store{mem: mem}
	mode, wakes, ok := mem.Load()
	if cause == hal.WakeColdBoot || !ok {
		s.mode, s.wakes = Badge, 0
		s.flush()
		return s, true
	}
	s.mode, s.wakes = Mode(mode), wakes
	return s, false
}

func (s *Store) Mode() Mode        { return s.mode }
func (s *Store) WakeCount() uint32 { return s.wakes }

func (s *Store) SetMode(m Mode) {
	s.mode = m
	s.flush()
}

// IncrementWake bumps the wake counter; it wraps at 2^32.
func (s *Store) IncrementWake() uint32 {
	s.wakes++
	s.flush()
	return s.wakes
}

func (s *Store) flush() {
	s.mem.Store(uint8(s.mode), s.wakes)
}
