//go:build !tinygo

package hal

import "strings"

var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// RenderBraille draws the refreshed panel image as braille cells, 2x4
// pixels per rune, and returns the lines with the frame version.
func RenderBraille(p *SimPanel) ([]string, uint64) {
	px, w, h, version := p.Snapshot(nil)
	lines := make([]string, 0, (h+3)/4)
	var b strings.Builder
	for y := 0; y < h; y += 4 {
		b.Reset()
		for x := 0; x < w; x += 2 {
			cell := rune(0x2800)
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					xx, yy := x+dx, y+dy
					if xx < w && yy < h && px[yy*w+xx] {
						cell |= brailleDots[dy][dx]
					}
				}
			}
			b.WriteRune(cell)
		}
		lines = append(lines, b.String())
	}
	return lines, version
}
