//go:build !tinygo

package hal

import "sync"

// SimRetained is the simulator's always-on memory. It keeps its contents
// across simulated deep sleep and is cleared by a simulated power-on.
type SimRetained struct {
	mu    sync.Mutex
	mode  uint8
	wakes uint32
	valid bool

	stores int
}

func (m *SimRetained) Load() (uint8, uint32, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode, m.wakes, m.valid
}

func (m *SimRetained) Store(mode uint8, wakes uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = mode
	m.wakes = wakes
	m.valid = true
	m.stores++
}

func (m *SimRetained) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = 0
	m.wakes = 0
	m.valid = false
}

// Stores counts writes.
func (m *SimRetained) Stores() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stores
}
