//go:build !tinygo

package hal

import (
	"errors"
	"sync"
)

var errRadioOff = errors.New("radio: not in station mode")

// SimRadio returns a fixed set of access points on every scan.
type SimRadio struct {
	mu          sync.Mutex
	mode        RadioMode
	aps         []int
	results     []int
	scans       int
	disconnects int
}

func newSimRadio(aps []int) *SimRadio {
	r := &SimRadio{}
	r.SetAccessPoints(aps)
	return r
}

// SetAccessPoints replaces the simulated environment.
func (r *SimRadio) SetAccessPoints(channels []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aps = append(r.aps[:0], channels...)
}

func (r *SimRadio) SetMode(m RadioMode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mode = m
	if m == RadioOff {
		r.results = nil
	}
	return nil
}

func (r *SimRadio) Disconnect() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disconnects++
	return nil
}

func (r *SimRadio) Scan() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.mode != RadioStation {
		return 0, errRadioOff
	}
	r.scans++
	r.results = append(r.results[:0], r.aps...)
	return len(r.results), nil
}

func (r *SimRadio) Channel(i int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < 0 || i >= len(r.results) {
		return 0
	}
	return r.results[i]
}

// Mode returns the current radio mode.
func (r *SimRadio) Mode() RadioMode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

// Scans counts completed scans.
func (r *SimRadio) Scans() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scans
}

// Disconnects counts Disconnect calls.
func (r *SimRadio) Disconnects() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.disconnects
}
