//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"
	"time"
)

// MPR121 registers.
const (
	mpr121Addr         = 0x5A
	mpr121RegStatus    = 0x00
	mpr121RegTouchTh   = 0x41
	mpr121RegDebounce  = 0x5B
	mpr121RegConfig1   = 0x5C
	mpr121RegConfig2   = 0x5D
	mpr121RegElecCfg   = 0x5E
	mpr121RegSoftReset = 0x80

	mpr121TouchThreshold   = 12
	mpr121ReleaseThreshold = 6
)

// Touch readings reported to the firmware. The MPR121 decides touch in
// hardware; a touched pad reads well above the firmware threshold.
const (
	touchIdleLevel   = 15000
	touchActiveLevel = 30000
)

// mpr121Touch reads the five pads from an MPR121 on I2C0. Electrode k-1
// is pad k.
type mpr121Touch struct {
	i2c   *machine.I2C
	write [1]byte
	read  [2]byte

	wakePad       int
	wakeThreshold uint32
}

func newMPR121Touch() (*mpr121Touch, error) {
	bus := machine.I2C0
	if err := bus.Configure(machine.I2CConfig{
		SCL:       pinTouchSCL,
		SDA:       pinTouchSDA,
		Frequency: 400_000,
	}); err != nil {
		return nil, fmt.Errorf("touch: i2c: %w", err)
	}
	t := &mpr121Touch{i2c: bus}

	// The controller needs a moment after power-on before it answers.
	const resetTries = 20
	var err error
	for i := 0; i < resetTries; i++ {
		if err = t.writeReg(mpr121RegSoftReset, 0x63); err == nil {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if err != nil {
		return nil, fmt.Errorf("touch: mpr121 not responding: %w", err)
	}

	for e := 0; e < TouchPads; e++ {
		_ = t.writeReg(mpr121RegTouchTh+byte(2*e), mpr121TouchThreshold)
		_ = t.writeReg(mpr121RegTouchTh+byte(2*e)+1, mpr121ReleaseThreshold)
	}
	_ = t.writeReg(mpr121RegDebounce, 0x11)
	_ = t.writeReg(mpr121RegConfig1, 0x10)
	_ = t.writeReg(mpr121RegConfig2, 0x20)
	// Run mode, baseline tracking on, electrodes 0..4.
	if err := t.writeReg(mpr121RegElecCfg, 0x80|TouchPads); err != nil {
		return nil, fmt.Errorf("touch: mpr121 start: %w", err)
	}
	return t, nil
}

func (t *mpr121Touch) writeReg(reg, v byte) error {
	return t.i2c.Tx(mpr121Addr, []byte{reg, v}, nil)
}

func (t *mpr121Touch) status() (uint16, error) {
	t.write[0] = mpr121RegStatus
	if err := t.i2c.Tx(mpr121Addr, t.write[:], t.read[:]); err != nil {
		return 0, err
	}
	return uint16(t.read[0]) | uint16(t.read[1])<<8, nil
}

func (t *mpr121Touch) Read(pad int) uint32 {
	if t == nil || pad < 1 || pad > TouchPads {
		return 0
	}
	s, err := t.status()
	if err != nil {
		return 0
	}
	if s&(1<<(pad-1)) != 0 {
		return touchActiveLevel
	}
	return touchIdleLevel
}

func (t *mpr121Touch) EnableWake(pad int, threshold uint32) error {
	if t == nil {
		return ErrNotImplemented
	}
	if pad < 1 || pad > TouchPads {
		return fmt.Errorf("touch: pad %d out of range", pad)
	}
	t.wakePad = pad
	t.wakeThreshold = threshold
	return nil
}

// wakeTouched reports whether the armed wake pad is touched.
func (t *mpr121Touch) wakeTouched() bool {
	if t == nil || t.wakePad == 0 {
		return false
	}
	return t.Read(t.wakePad) > touchIdleLevel+t.wakeThreshold
}
