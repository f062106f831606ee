// Package battery measures the cell voltage through the switched divider.
package battery

import (
	"fmt"

	"makerbadge/badgeos/config"
	"makerbadge/badgeos/power"
	"makerbadge/hal"
)

type Monitor struct {
	adc   hal.Analog
	rail  hal.GPIOPin
	clock hal.Clock
	log   hal.Logger
	cfg   config.BatteryConfig
}

func NewMonitor(h hal.HAL, cfg config.BatteryConfig) *Monitor {
	return &Monitor{
		adc:   h.Analog(),
		rail:  h.Rails().BatteryDisable,
		clock: h.Clock(),
		log:   h.Logger(),
		cfg:   cfg,
	}
}

// Volts converts a raw sample to calibrated volts.
func (m *Monitor) Volts(raw uint16) float64 {
	return m.cfg.Scale * m.uncalibrated(raw)
}

func (m *Monitor) uncalibrated(raw uint16) float64 {
	return 2 * (m.cfg.Reference * float64(raw) / m.cfg.FullScale)
}

// ReadVoltage takes one sample with the divider switched on. Below the
// cutoff it returns no value and a *power.Sleep that ends the cycle.
func (m *Monitor) ReadVoltage() (float64, error) {
	m.setDivider(true)
	m.clock.Sleep(m.cfg.Settle)
	raw := m.adc.Read(hal.BatteryChannel)
	m.setDivider(false)

	v := m.Volts(raw)
	m.log.WriteLineString(fmt.Sprintf("battery: %.3f V uncalibrated, %.3f V, raw %d",
		m.uncalibrated(raw), v, raw))

	if v < m.cfg.Cutoff {
		m.log.WriteLineString(fmt.Sprintf("battery: %.2f V below cutoff %.2f V", v, m.cfg.Cutoff))
		return 0, power.Indefinite("low battery")
	}
	return v, nil
}

func (m *Monitor) setDivider(on bool) {
	if err := hal.ConfigureOutput(m.rail, !on); err != nil {
		m.log.WriteLineString("battery: divider: " + err.Error())
	}
}
