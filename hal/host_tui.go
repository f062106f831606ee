//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	"makerbadge/internal/buildinfo"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tuiRefresh   = 100 * time.Millisecond
	tuiTouchHold = 300 * time.Millisecond
	tuiLogLines  = 8
)

var (
	tuiTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	tuiPanel  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#555555")).Padding(0, 1)
	tuiDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
	tuiStatus = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8CC8C"))
)

type tuiTickMsg time.Time

type tuiDoneMsg struct{ err error }

// tuiModel draws the panel as braille and maps keys to the pads.
type tuiModel struct {
	sim  *Simulator
	host *Host
	done <-chan error

	frame   []string
	version uint64
	err     error
}

func newTUIModel(sim *Simulator, done <-chan error) tuiModel {
	return tuiModel{sim: sim, host: sim.Host(), done: done}
}

func (m tuiModel) Init() tea.Cmd {
	return tea.Batch(tuiTick(), m.waitDone())
}

func tuiTick() tea.Cmd {
	return tea.Tick(tuiRefresh, func(t time.Time) tea.Msg { return tuiTickMsg(t) })
}

func (m tuiModel) waitDone() tea.Cmd {
	return func() tea.Msg { return tuiDoneMsg{err: <-m.done} }
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.sim.Reset()
		case "1", "2", "3", "4", "5":
			m.host.SimTouch().Press(int(key[0]-'0'), tuiTouchHold)
		}
		return m, nil
	case tuiTickMsg:
		lines, v := RenderBraille(m.host.Panel())
		if v != m.version || m.frame == nil {
			m.frame, m.version = lines, v
		}
		return m, tuiTick()
	case tuiDoneMsg:
		if msg.err != nil && msg.err != context.Canceled {
			m.err = msg.err
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m tuiModel) View() string {
	var b strings.Builder
	b.WriteString(tuiTitle.Render(buildinfo.Title()))
	b.WriteByte('\n')
	b.WriteString(tuiPanel.Render(strings.Join(m.frame, "\n")))
	b.WriteByte('\n')

	leds := make([]string, 0, NumLEDs)
	for _, c := range m.host.SimLEDs().Lit() {
		leds = append(leds, lipgloss.NewStyle().Foreground(tuiLEDColor(c)).Render("●"))
	}
	st := m.host.SimPower().State()
	state := "awake"
	switch {
	case st.Asleep && st.Timer > 0:
		state = "asleep, timer " + st.Timer.String()
	case st.Asleep:
		state = "asleep until touched"
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(leds, " "), "   ",
		tuiStatus.Render(fmt.Sprintf("%s | radio %s | cycle %d | %s",
			m.host.Rails().Describe(), m.host.SimRadio().Mode(), m.sim.Cycles(), state))))
	b.WriteByte('\n')

	for _, line := range m.host.Tail(tuiLogLines) {
		b.WriteString(tuiDim.Render(line))
		b.WriteByte('\n')
	}
	b.WriteString(tuiDim.Render("1-5 touch  r reset  q quit"))
	if m.err != nil {
		b.WriteString("\n" + m.err.Error())
	}
	return b.String()
}

func tuiLEDColor(c color.RGBA) lipgloss.Color {
	g := ledGlowRGB(c)
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", g.R, g.G, g.B))
}

// ledGlowRGB scales the dim LED drive levels up to something visible on a
// monitor.
func ledGlowRGB(c color.RGBA) color.RGBA {
	boost := func(v uint8) uint8 {
		if v == 0 {
			return 0x18
		}
		x := 0x40 + int(v)*12
		if x > 0xFF {
			x = 0xFF
		}
		return uint8(x)
	}
	return color.RGBA{R: boost(c.R), G: boost(c.G), B: boost(c.B), A: 0xFF}
}

// RunTUI runs the simulator with a terminal front end until the user
// quits or the simulator stops.
func RunTUI(ctx context.Context, sim *Simulator) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- sim.Run(ctx, 0) }()

	p := tea.NewProgram(newTUIModel(sim, done), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(tuiModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
