//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var padKeys = [TouchPads]ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
}

// hostKeyboard maps keys 1-5 to the touch channels and R to a power-on
// reset.
type hostKeyboard struct {
	touch *SimTouch
	sim   *Simulator
}

func newHostKeyboard(t *SimTouch, sim *Simulator) *hostKeyboard {
	return &hostKeyboard{touch: t, sim: sim}
}

func (k *hostKeyboard) poll() {
	for i, key := range padKeys {
		if inpututil.IsKeyJustPressed(key) {
			k.touch.Hold(i+1, true)
		}
		if inpututil.IsKeyJustReleased(key) {
			k.touch.Hold(i+1, false)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		k.sim.Reset()
	}
}
