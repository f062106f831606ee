//go:build !tinygo

package hal

import (
	"errors"
	"image/color"
	"sync"

	"tinygo.org/x/drivers"
)

// Native panel geometry (portrait).
const (
	panelNativeWidth  = PanelHeight
	panelNativeHeight = PanelWidth
)

var errPanelNotInit = errors.New("epaper: not initialized")

// SimPanel simulates a paged 1-bit e-ink controller. Only the rows of the
// current page window are kept between FirstPage and NextPage, so a caller
// that does not replay its drawing on every pass ends up with a torn frame.
type SimPanel struct {
	mu sync.Mutex

	rotation drivers.Rotation
	pageRows int

	inited  bool
	powered bool
	page    int // -1 when no session is open

	window  monoBuffer // current page, full width x pageRows
	pending monoBuffer
	frame   monoBuffer // last refreshed image

	passes    int
	refreshes int
	aborted   int
	version   uint64
}

func newSimPanel(pageRows int) *SimPanel {
	if pageRows <= 0 {
		pageRows = PanelHeight
	}
	p := &SimPanel{pageRows: pageRows, page: -1}
	p.resize()
	return p
}

func (p *SimPanel) logicalSize() (int, int) {
	switch p.rotation {
	case drivers.Rotation90, drivers.Rotation270:
		return panelNativeHeight, panelNativeWidth
	default:
		return panelNativeWidth, panelNativeHeight
	}
}

func (p *SimPanel) resize() {
	w, h := p.logicalSize()
	p.window = newMonoBuffer(w, p.pageRows)
	p.pending = newMonoBuffer(w, h)
	p.frame = newMonoBuffer(w, h)
}

func (p *SimPanel) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inited = true
	return nil
}

func (p *SimPanel) SetRotation(rotation drivers.Rotation) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.page >= 0 {
		return errors.New("epaper: rotation change during a frame")
	}
	// The panel keeps its image until the geometry changes.
	if rotation == p.rotation {
		return nil
	}
	p.rotation = rotation
	p.resize()
	return nil
}

func (p *SimPanel) Size() (x, y int16) {
	p.mu.Lock()
	defer p.mu.Unlock()
	w, h := p.logicalSize()
	return int16(w), int16(h)
}

func (p *SimPanel) SetPixel(x, y int16, c color.RGBA) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.page < 0 {
		return
	}
	top := p.page * p.pageRows
	row := int(y) - top
	if row < 0 || row >= p.pageRows {
		return
	}
	p.window.set(int(x), row, IsInk(c))
}

func (p *SimPanel) FillScreen(c color.RGBA) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.page < 0 {
		return
	}
	p.window.fill(IsInk(c))
}

// Display is a no-op: refresh is driven by the final NextPage.
func (p *SimPanel) Display() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.inited {
		return errPanelNotInit
	}
	return nil
}

func (p *SimPanel) FirstPage() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.powered = true
	p.page = 0
	p.window.fill(false)
	p.pending.fill(false)
}

func (p *SimPanel) NextPage() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.page < 0 {
		return false
	}
	p.passes++

	top := p.page * p.pageRows
	for row := 0; row < p.pageRows && top+row < p.pending.h; row++ {
		for x := 0; x < p.pending.w; x++ {
			p.pending.set(x, top+row, p.window.get(x, row))
		}
	}

	p.page++
	if p.page*p.pageRows < p.pending.h {
		p.window.fill(false)
		return true
	}

	copy(p.frame.bits, p.pending.bits)
	p.page = -1
	p.refreshes++
	p.version++
	return false
}

func (p *SimPanel) PowerOff() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.page >= 0 {
		p.page = -1
		p.aborted++
	}
	p.powered = false
}

// Ink reports whether the refreshed image has ink at (x, y).
func (p *SimPanel) Ink(x, y int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frame.get(x, y)
}

// Powered reports whether the panel's booster is on.
func (p *SimPanel) Powered() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.powered
}

// Stats returns the number of page passes, completed refreshes and
// sessions closed before completion.
func (p *SimPanel) Stats() (passes, refreshes, aborted int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.passes, p.refreshes, p.aborted
}

// Snapshot copies the refreshed image into dst (one bool per pixel, row
// major) and returns its size and version. dst is reallocated when short.
func (p *SimPanel) Snapshot(dst []bool) ([]bool, int, int, uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	w, h := p.frame.w, p.frame.h
	if cap(dst) < w*h {
		dst = make([]bool, w*h)
	}
	dst = dst[:w*h]
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst[y*w+x] = p.frame.get(x, y)
		}
	}
	return dst, w, h, p.version
}
