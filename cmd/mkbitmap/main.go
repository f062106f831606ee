//go:build !tinygo

// Command mkbitmap converts a PNG into a packed 1-bit assets.Bitmap
// literal. Dark opaque pixels become ink.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

type options struct {
	name      string
	pkg       string
	width     int
	height    int
	threshold uint
}

func main() {
	var opts options
	var out string
	flag.StringVar(&opts.name, "name", "", "Variable name of the bitmap (required).")
	flag.StringVar(&opts.pkg, "pkg", "assets", "Package of the generated file.")
	flag.StringVar(&out, "o", "", "Output file (default stdout).")
	flag.IntVar(&opts.width, "w", 0, "Scale to this width (0 = keep).")
	flag.IntVar(&opts.height, "h", 0, "Scale to this height (0 = keep).")
	flag.UintVar(&opts.threshold, "threshold", 128, "Luma below which a pixel is ink (0-255).")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: mkbitmap -name Name [-o file.go] [-w W -h H] image.png")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	src := flag.Arg(0)

	f, err := os.Open(src)
	if err != nil {
		fatal(err)
	}
	img, err := png.Decode(f)
	_ = f.Close()
	if err != nil {
		fatal(fmt.Errorf("decode %q: %w", src, err))
	}

	code, err := generate(img, src, opts)
	if err != nil {
		fatal(err)
	}

	if out == "" {
		if _, err := os.Stdout.Write(code); err != nil {
			fatal(err)
		}
		return
	}
	if err := os.WriteFile(out, code, 0o644); err != nil {
		fatal(fmt.Errorf("write %q: %w", out, err))
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "mkbitmap:", err)
	os.Exit(1)
}

// generate returns the gofmt'ed source of a file declaring opts.name as
// the packed form of img.
func generate(img image.Image, src string, opts options) ([]byte, error) {
	if opts.name == "" {
		return nil, errors.New("missing -name")
	}
	if opts.threshold > 255 {
		return nil, fmt.Errorf("threshold %d out of range", opts.threshold)
	}
	img = scale(img, opts.width, opts.height)
	b := img.Bounds()
	if b.Dx() > 0x7FFF || b.Dy() > 0x7FFF {
		return nil, fmt.Errorf("image %dx%d too large", b.Dx(), b.Dy())
	}
	bits := pack(img, uint8(opts.threshold))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by mkbitmap from %s; DO NOT EDIT.\n\n", src)
	fmt.Fprintf(&buf, "package %s\n\n", opts.pkg)
	fmt.Fprintf(&buf, "var %s = Bitmap{\n", opts.name)
	fmt.Fprintf(&buf, "W: %d,\nH: %d,\nBits: []byte{\n", b.Dx(), b.Dy())
	for i, v := range bits {
		fmt.Fprintf(&buf, "0x%02x,", v)
		if i%16 == 15 || i == len(bits)-1 {
			buf.WriteByte('\n')
		} else {
			buf.WriteByte(' ')
		}
	}
	buf.WriteString("},\n}\n")

	code, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return code, nil
}

// scale resizes img when a target size is given. A zero dimension keeps
// the aspect ratio.
func scale(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if w <= 0 && h <= 0 {
		return img
	}
	if w <= 0 {
		w = b.Dx() * h / b.Dy()
	}
	if h <= 0 {
		h = b.Dy() * w / b.Dx()
	}
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// pack returns the rows of img, MSB first, one bit per pixel.
func pack(img image.Image, threshold uint8) []byte {
	b := img.Bounds()
	stride := (b.Dx() + 7) / 8
	bits := make([]byte, stride*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if ink(img.At(b.Min.X+x, b.Min.Y+y), threshold) {
				bits[y*stride+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return bits
}

func ink(c color.Color, threshold uint8) bool {
	_, _, _, a := c.RGBA()
	if a < 0x8000 {
		return false
	}
	g := color.GrayModel.Convert(c).(color.Gray)
	return g.Y < threshold
}
