package assets

import (
	"image/color"
	"testing"

	"rsc.io/qr"
)

type recorder struct {
	w, h int16
	ink  map[[2]int16]color.RGBA
}

func newRecorder(w, h int16) *recorder {
	return &recorder{w: w, h: h, ink: map[[2]int16]color.RGBA{}}
}

func (r *recorder) Size() (int16, int16)              { return r.w, r.h }
func (r *recorder) SetPixel(x, y int16, c color.RGBA) { r.ink[[2]int16{x, y}] = c }
func (r *recorder) Display() error                    { return nil }

func TestGeneratedSizes(t *testing.T) {
	for _, tc := range []struct {
		name string
		b    Bitmap
		w, h int16
	}{
		{"menu", Menu, 250, 122},
		{"badge", Badge, 250, 122},
		{"wifi", Wifi, 38, 64},
	} {
		if tc.b.W != tc.w || tc.b.H != tc.h {
			t.Fatalf("%s: size %dx%d, want %dx%d", tc.name, tc.b.W, tc.b.H, tc.w, tc.h)
		}
		if got, want := len(tc.b.Bits), tc.b.Stride()*int(tc.h); got != want {
			t.Fatalf("%s: %d bytes, want %d", tc.name, got, want)
		}
	}
}

func TestArtworkLandmarks(t *testing.T) {
	// Menu text column stays clear; the badge text box is solid ink so
	// white text reads on it.
	for y := int16(55); y < 118; y++ {
		for x := int16(108); x < 244; x++ {
			if Menu.At(x, y) {
				t.Fatalf("menu text area has ink at (%d,%d)", x, y)
			}
		}
	}
	for y := int16(5); y < 45; y++ {
		for x := int16(155); x < 245; x++ {
			if !Badge.At(x, y) {
				t.Fatalf("badge text box has paper at (%d,%d)", x, y)
			}
		}
	}
	if !Wifi.At(19, 30) {
		t.Fatalf("wifi icon has no dot at its centre")
	}
}

func TestDrawOnlyInk(t *testing.T) {
	b := Bitmap{W: 10, H: 2, Bits: []byte{0x80, 0x40, 0x00, 0x00}}
	r := newRecorder(20, 20)
	b.Draw(r, 3, 4, color.RGBA{A: 255})

	if len(r.ink) != 2 {
		t.Fatalf("drew %d pixels, want 2", len(r.ink))
	}
	if _, ok := r.ink[[2]int16{3, 4}]; !ok {
		t.Fatalf("missing pixel (3,4)")
	}
	if _, ok := r.ink[[2]int16{12, 4}]; !ok {
		t.Fatalf("missing pixel (12,4) from the second byte")
	}
	if b.InkCount() != 2 {
		t.Fatalf("InkCount = %d", b.InkCount())
	}
	if b.At(-1, 0) || b.At(10, 0) || b.At(0, 2) {
		t.Fatalf("At outside bounds reported ink")
	}
}

func TestQRMatchesEncoder(t *testing.T) {
	const text = "https://makerfaire.cz"
	b, err := QR(text, 114)
	if err != nil {
		t.Fatalf("QR: %v", err)
	}
	code, _ := qr.Encode(text, qr.M)
	modules := code.Size + 2*QuietZone
	scale := 114 / modules
	if int(b.W) != modules*scale || b.W != b.H {
		t.Fatalf("size %dx%d, want %d", b.W, b.H, modules*scale)
	}
	for my := 0; my < code.Size; my++ {
		for mx := 0; mx < code.Size; mx++ {
			x := int16((mx+QuietZone)*scale + scale/2)
			y := int16((my+QuietZone)*scale + scale/2)
			if b.At(x, y) != code.Black(mx, my) {
				t.Fatalf("module (%d,%d) mismatch", mx, my)
			}
		}
	}
	for i := int16(0); i < int16(QuietZone*scale); i++ {
		if b.At(i, i) {
			t.Fatalf("quiet zone has ink at %d", i)
		}
	}
}

func TestQRTooSmall(t *testing.T) {
	if _, err := QR("https://makerfaire.cz", 10); err == nil {
		t.Fatalf("expected error for a 10px square")
	}
}
