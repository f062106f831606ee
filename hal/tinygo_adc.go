//go:build tinygo && baremetal

package hal

import "machine"

// badgeAnalog samples the battery divider. Other channels read zero.
type badgeAnalog struct {
	battery machine.ADC
}

func newBadgeAnalog() *badgeAnalog {
	machine.InitADC()
	a := &badgeAnalog{battery: machine.ADC{Pin: pinBattery}}
	a.battery.Configure(machine.ADCConfig{})
	return a
}

func (a *badgeAnalog) Read(channel int) uint16 {
	if channel != BatteryChannel {
		return 0
	}
	// machine.ADC scales samples to 16 bits.
	return a.battery.Get() >> 4
}
