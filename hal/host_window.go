//go:build !tinygo && cgo

package hal

import (
	"context"
	"fmt"
	"image/color"

	"makerbadge/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	windowMargin  = 10
	windowScale   = 2
	windowLEDRow  = 28
	windowConsole = 120

	windowWidth  = PanelWidth*windowScale + 2*windowMargin
	windowHeight = PanelHeight*windowScale + windowLEDRow + windowConsole + 4*windowMargin
)

var (
	paperColor = color.RGBA{R: 0xEE, G: 0xEC, B: 0xE1, A: 0xFF}
	inkColor   = color.RGBA{R: 0x1E, G: 0x1E, B: 0x24, A: 0xFF}
	bezelColor = color.RGBA{R: 0x2B, G: 0x2F, B: 0x3A, A: 0xFF}
)

// RunWindow shows the simulated badge in a desktop window and runs the
// simulator behind it until the window closes or the simulator stops.
// Keys 1-5 touch the pads while held, R power-cycles the badge.
func RunWindow(ctx context.Context, sim *Simulator) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g := &badgeGame{
		sim:     sim,
		host:    sim.Host(),
		console: NewConsole(PanelWidth*windowScale, windowConsole),
		logs:    sim.Host().Subscribe(),
		done:    make(chan error, 1),
	}
	g.kbd = newHostKeyboard(g.host.SimTouch(), sim)
	go func() { g.done <- sim.Run(ctx, 0) }()

	ebiten.SetWindowTitle(buildinfo.Title())
	ebiten.SetWindowSize(windowWidth*2, windowHeight*2)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type badgeGame struct {
	sim     *Simulator
	host    *Host
	kbd     *hostKeyboard
	console *Console
	logs    <-chan string
	done    chan error

	ink      []bool
	panelPix []byte
	panelImg *ebiten.Image
	version  uint64

	consolePix []byte
	consoleImg *ebiten.Image
}

func (g *badgeGame) Update() error {
	select {
	case err := <-g.done:
		if err != nil && err != context.Canceled {
			return err
		}
		return ebiten.Termination
	default:
	}

	g.kbd.poll()
	for {
		select {
		case line := <-g.logs:
			g.console.WriteLine(line)
			continue
		default:
		}
		break
	}
	return nil
}

func (g *badgeGame) Draw(screen *ebiten.Image) {
	screen.Fill(bezelColor)
	g.drawPanel(screen)
	g.drawLEDs(screen)
	g.drawConsole(screen)
}

func (g *badgeGame) drawPanel(screen *ebiten.Image) {
	var w, h int
	var v uint64
	g.ink, w, h, v = g.host.Panel().Snapshot(g.ink)
	if g.panelImg == nil || g.panelImg.Bounds().Dx() != w || g.panelImg.Bounds().Dy() != h {
		g.panelImg = ebiten.NewImage(w, h)
		g.panelPix = make([]byte, w*h*4)
		g.version = 0
	}
	if v != g.version || v == 0 {
		for i, ink := range g.ink {
			c := paperColor
			if ink {
				c = inkColor
			}
			g.panelPix[i*4+0] = c.R
			g.panelPix[i*4+1] = c.G
			g.panelPix[i*4+2] = c.B
			g.panelPix[i*4+3] = 0xFF
		}
		g.panelImg.WritePixels(g.panelPix)
		g.version = v
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(windowScale, windowScale)
	op.GeoM.Translate(windowMargin, windowMargin)
	screen.DrawImage(g.panelImg, op)
}

func (g *badgeGame) drawLEDs(screen *ebiten.Image) {
	y := float32(windowMargin*2 + PanelHeight*windowScale)
	for i, c := range g.host.SimLEDs().Lit() {
		x := float32(windowMargin + 12 + i*30)
		vector.DrawFilledCircle(screen, x, y+12, 9, color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xFF}, true)
		vector.DrawFilledCircle(screen, x, y+12, 7, ledGlowRGB(c), true)
	}

	st := g.host.SimPower().State()
	status := "awake"
	switch {
	case st.Asleep && st.Timer > 0:
		status = fmt.Sprintf("asleep, timer %s", st.Timer)
	case st.Asleep:
		status = "asleep until touched"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s | %s | cycle %d | %s",
		g.host.Rails().Describe(), g.host.SimRadio().Mode(), g.sim.Cycles(), status),
		windowMargin+130, int(y)+4)
}

func (g *badgeGame) drawConsole(screen *ebiten.Image) {
	w, h := g.console.Size()
	if g.consoleImg == nil {
		g.consoleImg = ebiten.NewImage(w, h)
	}
	g.consolePix = g.console.Pixels(g.consolePix)
	g.consoleImg.WritePixels(g.consolePix)

	y := float64(windowMargin*3 + PanelHeight*windowScale + windowLEDRow)
	vector.DrawFilledRect(screen, windowMargin-1, float32(y)-1, float32(w)+2, float32(h)+2, color.Black, false)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(windowMargin, y)
	screen.DrawImage(g.consoleImg, op)
}

func (g *badgeGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}
