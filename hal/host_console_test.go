//go:build !tinygo

package hal

import "testing"

func changed(a, b []byte) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

func TestConsoleWritesText(t *testing.T) {
	c := NewConsole(200, 40)
	before := c.Pixels(nil)
	c.WriteLine("battery: 3.950 V")
	px := c.Pixels(nil)
	if changed(before, px) == 0 {
		t.Fatalf("no text drawn")
	}
	w, h := c.Size()
	if len(px) != w*h*4 {
		t.Fatalf("pixels len = %d, want %d", len(px), w*h*4)
	}
}

func TestConsoleScrollKeepsLatestLineVisible(t *testing.T) {
	c := NewConsole(200, 40)
	blank := c.Pixels(nil)
	for i := 0; i < 20; i++ {
		c.WriteLine("sim: boot cause=timer")
	}
	if changed(blank, c.Pixels(nil)) == 0 {
		t.Fatalf("console blank after scrolling")
	}
}
