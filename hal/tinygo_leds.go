//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

type badgeLEDs struct {
	dev ws2812.Device
	buf []color.RGBA
}

func newBadgeLEDs(pin machine.Pin, n int) *badgeLEDs {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &badgeLEDs{dev: ws2812.New(pin), buf: make([]color.RGBA, n)}
}

func (l *badgeLEDs) Len() int { return len(l.buf) }

func (l *badgeLEDs) Set(i int, c color.RGBA) {
	if i < 0 || i >= len(l.buf) {
		return
	}
	l.buf[i] = c
}

func (l *badgeLEDs) Show() error { return l.dev.WriteColors(l.buf) }
