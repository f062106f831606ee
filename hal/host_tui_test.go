//go:build !tinygo

package hal

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTUIKeysDriveTouchAndReset(t *testing.T) {
	h := NewHost(DefaultHostOptions(), NewVirtualClock(), nil)
	sim := NewSimulator(h, func(HAL) {})
	m := newTUIModel(sim, make(chan error))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = next.(tuiModel)
	if got := h.SimTouch().Read(PadForChannel(2)); got != h.Options().TouchActive {
		t.Fatalf("pad reading = %d, want active", got)
	}
	if got := h.SimTouch().Read(PadForChannel(3)); got != h.Options().TouchBaseline {
		t.Fatalf("untouched pad reading = %d", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if !sim.takeReset() {
		t.Fatalf("r did not request a reset")
	}

	h.clock.Sleep(time.Second)
	if got := h.SimTouch().Read(PadForChannel(2)); got != h.Options().TouchBaseline {
		t.Fatalf("press did not release after the hold")
	}
}

func TestTUIViewShowsFrameAndHelp(t *testing.T) {
	h := NewHost(DefaultHostOptions(), NewVirtualClock(), nil)
	sim := NewSimulator(h, func(HAL) {})
	m := newTUIModel(sim, make(chan error))

	next, cmd := m.Update(tuiTickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("tick did not reschedule")
	}
	view := next.(tuiModel).View()
	if !strings.Contains(view, "q quit") || !strings.Contains(view, "⠀") {
		t.Fatalf("view missing panel or help:\n%s", view)
	}

	_, cmd = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("q did not quit")
	}
}
