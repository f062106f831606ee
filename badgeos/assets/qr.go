package assets

import (
	"fmt"

	"rsc.io/qr"
)

// QuietZone is the blank border, in modules, required around a QR symbol.
const QuietZone = 2

// QR encodes text and scales it to the largest module size that fits in
// a square of side pixels, quiet zone included.
func QR(text string, side int16) (Bitmap, error) {
	code, err := qr.Encode(text, qr.M)
	if err != nil {
		return Bitmap{}, fmt.Errorf("assets: qr %q: %w", text, err)
	}
	modules := code.Size + 2*QuietZone
	scale := int(side) / modules
	if scale < 1 {
		return Bitmap{}, fmt.Errorf("assets: qr %q needs %d px, have %d", text, modules, side)
	}

	w := int16(modules * scale)
	b := Bitmap{W: w, H: w}
	b.Bits = make([]byte, b.Stride()*int(w))
	for y := 0; y < int(w); y++ {
		my := y/scale - QuietZone
		for x := 0; x < int(w); x++ {
			mx := x/scale - QuietZone
			if code.Black(mx, my) {
				b.Bits[y*b.Stride()+x/8] |= 0x80 >> (uint(x) % 8)
			}
		}
	}
	return b, nil
}
