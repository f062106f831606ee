package touch

import (
	"testing"

	"makerbadge/hal"
)

type fakeSensor struct {
	pads [hal.TouchPads + 1]uint32
}

func (f *fakeSensor) Read(pad int) uint32                 { return f.pads[pad] }
func (f *fakeSensor) EnableWake(pad int, th uint32) error { return nil }

func TestReadMaskAllCombinations(t *testing.T) {
	for combo := 0; combo < 1<<hal.TouchPads; combo++ {
		f := &fakeSensor{}
		for i := 0; i < hal.TouchPads; i++ {
			f.pads[5-i] = 15000
			if combo&(1<<i) != 0 {
				f.pads[5-i] = 30000
			}
		}
		got := NewReader(f, 20000).ReadMask()
		if got != Mask(combo) {
			t.Fatalf("combo %05b: mask = %05b", combo, got)
		}
	}
}

func TestThresholdIsExclusive(t *testing.T) {
	f := &fakeSensor{}
	f.pads[5] = 20000
	if got := NewReader(f, 20000).ReadMask(); got != 0 {
		t.Fatalf("reading at threshold counted as touch: %05b", got)
	}
	f.pads[5] = 20001
	if got := NewReader(f, 20000).ReadMask(); got != 1 {
		t.Fatalf("mask = %05b, want 00001", got)
	}
}

func TestChannel(t *testing.T) {
	for _, tc := range []struct {
		m    Mask
		want int
	}{
		{0, 0},
		{0b00001, 1},
		{0b00100, 3},
		{0b10000, 5},
		{0b00011, 0},
		{0b10001, 0},
	} {
		if got := tc.m.Channel(); got != tc.want {
			t.Fatalf("Mask(%05b).Channel() = %d, want %d", tc.m, got, tc.want)
		}
	}
}

func TestReadMaskWithSimulator(t *testing.T) {
	h := hal.NewHost(hal.DefaultHostOptions(), hal.NewVirtualClock(), nil)
	h.SimTouch().Hold(2, true)
	if got := NewReader(h.Touch(), 20000).ReadMask(); got != 0b00010 {
		t.Fatalf("mask = %05b, want channel 2", got)
	}
}
