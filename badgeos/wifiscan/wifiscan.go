// Package wifiscan counts nearby access points per 2.4 GHz channel.
package wifiscan

import (
	"fmt"
	"time"

	"makerbadge/hal"
)

// Channels is the number of 2.4 GHz channels tracked (1..14).
const Channels = 14

// Histogram counts access points per channel. Counts[i] is channel i+1.
// Access points reported outside 1..Channels are only counted in Dropped.
type Histogram struct {
	Counts  [Channels]int
	Total   int
	Dropped int
}

// Add records one access point seen on channel.
func (h *Histogram) Add(channel int) {
	if channel < 1 || channel > Channels {
		h.Dropped++
		return
	}
	h.Counts[channel-1]++
	h.Total++
}

// Count returns the number of access points on channel (1..Channels).
func (h *Histogram) Count(channel int) int {
	if channel < 1 || channel > Channels {
		return 0
	}
	return h.Counts[channel-1]
}

// Busiest returns the channel with the most access points, or 0 when the
// histogram is empty. Ties go to the lower channel.
func (h *Histogram) Busiest() int {
	best, n := 0, 0
	for i, c := range h.Counts {
		if c > n {
			best, n = i+1, c
		}
	}
	return best
}

type Scanner struct {
	radio  hal.Radio
	clock  hal.Clock
	log    hal.Logger
	settle time.Duration
}

func NewScanner(h hal.HAL, settle time.Duration) *Scanner {
	return &Scanner{radio: h.Radio(), clock: h.Clock(), log: h.Logger(), settle: settle}
}

// Scan puts the radio in station mode and classifies one scan. The radio
// stays on; it is shut down on the way into sleep.
func (s *Scanner) Scan() (Histogram, error) {
	var hist Histogram
	if err := s.radio.SetMode(hal.RadioStation); err != nil {
		return hist, fmt.Errorf("wifiscan: station mode: %w", err)
	}
	if err := s.radio.Disconnect(); err != nil {
		return hist, fmt.Errorf("wifiscan: disconnect: %w", err)
	}
	s.clock.Sleep(s.settle)

	n, err := s.radio.Scan()
	if err != nil {
		return hist, fmt.Errorf("wifiscan: scan: %w", err)
	}
	for i := 0; i < n; i++ {
		hist.Add(s.radio.Channel(i))
	}
	s.log.WriteLineString(fmt.Sprintf("wifiscan: %d networks, busiest channel %d", hist.Total, hist.Busiest()))
	if hist.Dropped > 0 {
		s.log.WriteLineString(fmt.Sprintf("wifiscan: ignored %d networks outside channels 1-%d", hist.Dropped, Channels))
	}
	return hist, nil
}
