//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/uc8151"
)

// badgeEPaper drives the UC8151 panel. The controller keeps the whole frame
// in RAM, so a session is a single page pass.
type badgeEPaper struct {
	dev      uc8151.Device
	rotation drivers.Rotation
	inited   bool
	open     bool
}

func newBadgeEPaper() *badgeEPaper {
	return &badgeEPaper{}
}

func (p *badgeEPaper) Init() error {
	if !p.inited {
		machine.SPI0.Configure(machine.SPIConfig{
			SCK:       pinEPaperSCK,
			SDO:       pinEPaperSDO,
			Frequency: 12_000_000,
		})
		p.dev = uc8151.New(machine.SPI0, pinEPaperCS, pinEPaperDC, pinEPaperRST, pinEPaperBusy)
		p.inited = true
	}
	p.dev.Configure(uc8151.Config{
		Width:    PanelHeight,
		Height:   PanelWidth,
		Rotation: p.rotation,
		Speed:    uc8151.MEDIUM,
	})
	return nil
}

func (p *badgeEPaper) SetRotation(rotation drivers.Rotation) error {
	p.rotation = rotation
	if !p.inited {
		return nil
	}
	return p.dev.SetRotation(rotation)
}

func (p *badgeEPaper) Size() (x, y int16) {
	switch p.rotation {
	case drivers.Rotation90, drivers.Rotation270:
		return PanelWidth, PanelHeight
	default:
		return PanelHeight, PanelWidth
	}
}

func (p *badgeEPaper) SetPixel(x, y int16, c color.RGBA) {
	if !p.open {
		return
	}
	if IsInk(c) {
		p.dev.SetPixel(x, y, Black)
	} else {
		p.dev.SetPixel(x, y, White)
	}
}

func (p *badgeEPaper) FillScreen(c color.RGBA) {
	if !p.open {
		return
	}
	p.dev.ClearBuffer()
	if !IsInk(c) {
		return
	}
	w, h := p.Size()
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			p.dev.SetPixel(x, y, Black)
		}
	}
}

func (p *badgeEPaper) Display() error {
	if !p.inited {
		return ErrNotImplemented
	}
	return p.dev.Display()
}

func (p *badgeEPaper) FirstPage() {
	if !p.inited {
		return
	}
	p.dev.PowerOn()
	p.dev.ClearBuffer()
	p.open = true
}

func (p *badgeEPaper) NextPage() bool {
	if !p.open {
		return false
	}
	p.open = false
	_ = p.dev.Display()
	p.dev.WaitUntilIdle()
	return false
}

func (p *badgeEPaper) PowerOff() {
	p.open = false
	if p.inited {
		p.dev.PowerOff()
	}
}
