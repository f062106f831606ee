// Package touch samples the five capacitive pads into a channel mask.
package touch

import (
	"math/bits"

	"makerbadge/hal"
)

// Mask has bit i set when menu channel i+1 is touched.
type Mask uint8

const All Mask = 1<<hal.TouchPads - 1

// Channel returns the single touched channel, or 0 when none or several
// are touched.
func (m Mask) Channel() int {
	m &= All
	if bits.OnesCount8(uint8(m)) != 1 {
		return 0
	}
	return bits.TrailingZeros8(uint8(m)) + 1
}

// Reader turns raw pad readings into a Mask.
type Reader struct {
	sensor    hal.TouchSensor
	threshold uint32
}

func NewReader(sensor hal.TouchSensor, threshold uint32) *Reader {
	return &Reader{sensor: sensor, threshold: threshold}
}

// ReadMask samples every pad once. Channel k is wired to pad 6-k.
func (r *Reader) ReadMask() Mask {
	var m Mask
	for i := 0; i < hal.TouchPads; i++ {
		if r.sensor.Read(hal.PadForChannel(i+1)) > r.threshold {
			m |= 1 << i
		}
	}
	return m
}
