//go:build !tinygo

package hal

import (
	"image"
	"image/color"
	"sync"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

const (
	consoleFontHeight = 10
	consoleFontOffset = 7
)

// consoleDisplay is an RGBA surface with the hardware-scroll register that
// tinyterm expects from a real display.
type consoleDisplay struct {
	img    *image.RGBA
	scroll int16
}

func (d *consoleDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *consoleDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.img.SetRGBA(int(x), int(y), c)
}

func (d *consoleDisplay) Display() error { return nil }

func (d *consoleDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	for yy := y; yy < y+height; yy++ {
		for xx := x; xx < x+width; xx++ {
			d.img.SetRGBA(int(xx), int(yy), c)
		}
	}
	return nil
}

func (d *consoleDisplay) SetScroll(line int16) { d.scroll = line }

func (d *consoleDisplay) SetRotation(drivers.Rotation) error { return nil }

// Console renders log lines the way a serial terminal would.
type Console struct {
	mu   sync.Mutex
	d    *consoleDisplay
	term *tinyterm.Terminal
}

func NewConsole(width, height int) *Console {
	d := &consoleDisplay{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	t := tinyterm.NewTerminal(d)
	t.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: consoleFontHeight,
		FontOffset: consoleFontOffset,
	})
	return &Console{d: d, term: t}
}

func (c *Console) WriteLine(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.term.Write([]byte(s + "\r\n"))
}

// Pixels copies the visible console, scroll applied, into dst as RGBA
// bytes and returns it. dst is reallocated when short.
func (c *Console) Pixels(dst []byte) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	src := c.d.img
	h := src.Bounds().Dy()
	if cap(dst) < len(src.Pix) {
		dst = make([]byte, len(src.Pix))
	}
	dst = dst[:len(src.Pix)]
	top := int(c.d.scroll) % h
	if top < 0 {
		top += h
	}
	split := (h - top) * src.Stride
	copy(dst, src.Pix[top*src.Stride:])
	copy(dst[split:], src.Pix[:top*src.Stride])
	return dst
}

// Size returns the console size in pixels.
func (c *Console) Size() (int, int) {
	b := c.d.img.Bounds()
	return b.Dx(), b.Dy()
}
