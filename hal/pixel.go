package hal

import "image/color"

var (
	Black = color.RGBA{A: 0xFF}
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// IsInk reports whether c lands as a black pixel on a 1-bit panel.
func IsInk(c color.RGBA) bool {
	// Rec. 601 luma, integer form.
	y := (299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B)) / 1000
	return y < 0x80
}

// monoBuffer is a packed 1-bit image, MSB first, set bit = ink.
type monoBuffer struct {
	w, h   int
	stride int
	bits   []byte
}

func newMonoBuffer(w, h int) monoBuffer {
	stride := (w + 7) / 8
	return monoBuffer{w: w, h: h, stride: stride, bits: make([]byte, stride*h)}
}

func (b monoBuffer) set(x, y int, ink bool) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	i := y*b.stride + x/8
	mask := byte(0x80) >> (x % 8)
	if ink {
		b.bits[i] |= mask
	} else {
		b.bits[i] &^= mask
	}
}

func (b monoBuffer) get(x, y int) bool {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return false
	}
	return b.bits[y*b.stride+x/8]&(byte(0x80)>>(x%8)) != 0
}

func (b monoBuffer) fill(ink bool) {
	v := byte(0)
	if ink {
		v = 0xFF
	}
	for i := range b.bits {
		b.bits[i] = v
	}
}
