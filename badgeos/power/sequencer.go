package power

import (
	"fmt"

	"makerbadge/hal"

	"tinygo.org/x/drivers"
)

// PanelRotation puts the 2.13" panel in landscape with the connector on
// the left.
const PanelRotation = drivers.Rotation270

// Sequencer powers the badge peripherals up at boot and down on sleep.
type Sequencer struct {
	display hal.EPaper
	rails   hal.Rails
	radio   hal.Radio
	touch   hal.TouchSensor
	power   hal.Power
	log     hal.Logger

	wakePad       int
	wakeThreshold uint32
}

func NewSequencer(h hal.HAL, wakePad int, wakeThreshold uint32) *Sequencer {
	return &Sequencer{
		display:       h.Display(),
		rails:         h.Rails(),
		radio:         h.Radio(),
		touch:         h.Touch(),
		power:         h.Power(),
		log:           h.Logger(),
		wakePad:       wakePad,
		wakeThreshold: wakeThreshold,
	}
}

// PowerUp brings the board into its cycle-start state: LED driver and
// battery divider off, e-ink powered and initialized, radio off, touch
// wake armed.
func (s *Sequencer) PowerUp() {
	s.rail("led", s.rails.LEDDisable, true)
	s.rail("epd", s.rails.EPaperDisable, false)
	if err := s.display.Init(); err != nil {
		s.logf("power: display init: %v", err)
	}
	if err := s.display.SetRotation(PanelRotation); err != nil {
		s.logf("power: display rotation: %v", err)
	}
	s.rail("bat", s.rails.BatteryDisable, true)

	if err := s.radio.SetMode(hal.RadioOff); err != nil {
		s.logf("power: radio off: %v", err)
	}

	if err := s.touch.EnableWake(s.wakePad, s.wakeThreshold); err != nil {
		s.logf("power: touch wake: %v", err)
	}
	s.power.ArmTouch()
}

// EnterSleep powers every peripheral down, arms the timer when req asks
// for one, and enters deep sleep. On hardware it does not return.
// Touch wake stays armed from PowerUp.
func (s *Sequencer) EnterSleep(req *Sleep) {
	if req == nil {
		req = Indefinite("")
	}

	s.display.PowerOff()
	s.rail("led", s.rails.LEDDisable, true)
	s.rail("bat", s.rails.BatteryDisable, true)
	s.rail("epd", s.rails.EPaperDisable, true)

	if err := s.radio.SetMode(hal.RadioOff); err != nil {
		s.logf("power: radio off: %v", err)
	}
	if err := s.radio.Disconnect(); err != nil {
		s.logf("power: radio disconnect: %v", err)
	}

	if !req.Indefinite() {
		s.power.ArmTimer(req.Wake)
	}
	s.logf("power: %s", req.Error())
	s.power.DeepSleep()
}

func (s *Sequencer) rail(name string, pin hal.GPIOPin, disabled bool) {
	if err := hal.ConfigureOutput(pin, disabled); err != nil {
		s.logf("power: %s rail: %v", name, err)
	}
}

// EnableLEDs switches the LED driver rail on.
func (s *Sequencer) EnableLEDs() {
	s.rail("led", s.rails.LEDDisable, false)
}

// EnableBatteryDivider switches the measurement divider on or off.
func (s *Sequencer) EnableBatteryDivider(on bool) {
	s.rail("bat", s.rails.BatteryDisable, !on)
}

func (s *Sequencer) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
