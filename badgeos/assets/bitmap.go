// Package assets holds the 1-bit artwork drawn on the e-ink pages.
//
// The *_bitmap.go files are produced from art/*.png by cmd/mkbitmap.
package assets

//go:generate go run ../../cmd/mkbitmap -name Menu -o menu_bitmap.go art/menu.png
//go:generate go run ../../cmd/mkbitmap -name Badge -o badge_bitmap.go art/badge.png
//go:generate go run ../../cmd/mkbitmap -name Wifi -o wifi_bitmap.go art/wifi.png

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Bitmap is a packed 1-bit image. Each row takes (W+7)/8 bytes, most
// significant bit first; a set bit is ink.
type Bitmap struct {
	W, H int16
	Bits []byte
}

// Stride returns the number of bytes per row.
func (b Bitmap) Stride() int { return (int(b.W) + 7) / 8 }

// At reports whether (x, y) is ink. Points outside the bitmap are paper.
func (b Bitmap) At(x, y int16) bool {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return false
	}
	i := int(y)*b.Stride() + int(x)/8
	if i >= len(b.Bits) {
		return false
	}
	return b.Bits[i]&(0x80>>(uint(x)%8)) != 0
}

// Draw paints the ink pixels of b at (x, y) in c. Paper pixels are left
// untouched.
func (b Bitmap) Draw(d drivers.Displayer, x, y int16, c color.RGBA) {
	stride := b.Stride()
	for row := int16(0); row < b.H; row++ {
		line := b.Bits[int(row)*stride:]
		for col := int16(0); col < b.W; col++ {
			if line[col/8]&(0x80>>(uint(col)%8)) != 0 {
				d.SetPixel(x+col, y+row, c)
			}
		}
	}
}

// InkCount returns the number of ink pixels.
func (b Bitmap) InkCount() int {
	n := 0
	for y := int16(0); y < b.H; y++ {
		for x := int16(0); x < b.W; x++ {
			if b.At(x, y) {
				n++
			}
		}
	}
	return n
}
