//go:build tinygo && baremetal

package hal

import (
	"machine"
)

// Board wiring of the RP2040 badge.
const (
	pinUARTTX = machine.GP0
	pinUARTRX = machine.GP1

	pinTouchSDA = machine.GP4
	pinTouchSCL = machine.GP5

	pinLEDData        = machine.GP15
	pinLEDDisable     = machine.GP14
	pinEPaperDisable  = machine.GP16
	pinBatteryDisable = machine.GP22

	pinEPaperCS   = machine.GP17
	pinEPaperSCK  = machine.GP18
	pinEPaperSDO  = machine.GP19
	pinEPaperDC   = machine.GP20
	pinEPaperRST  = machine.GP21
	pinEPaperBusy = machine.GP26

	pinBattery = machine.ADC2
)

type badgeHAL struct {
	logger  *uartLogger
	display *badgeEPaper
	leds    *badgeLEDs
	rails   Rails
	radio   nullRadio
	analog  *badgeAnalog
	touch   *mpr121Touch
	power   *badgePower
	mem     scratchRetained
	clock   *tinyGoClock
}

// New returns the badge HAL.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       pinUARTTX,
		RX:       pinUARTRX,
	})
	logger := &uartLogger{uart: uart}
	clock := newTinyGoClock()

	touch, err := newMPR121Touch()
	if err != nil {
		logger.WriteLineString("hal: " + err.Error())
	}

	h := &badgeHAL{
		logger:  logger,
		display: newBadgeEPaper(),
		leds:    newBadgeLEDs(pinLEDData, NumLEDs),
		rails: Rails{
			LEDDisable:     newMachinePin("LED_DISABLE", pinLEDDisable),
			EPaperDisable:  newMachinePin("EPD_POWER_DISABLE", pinEPaperDisable),
			BatteryDisable: newMachinePin("BAT_MEAS_DISABLE", pinBatteryDisable),
		},
		analog: newBadgeAnalog(),
		touch:  touch,
		clock:  clock,
	}
	h.power = newBadgePower(h.mem, touch, clock)
	return h
}

func (h *badgeHAL) Logger() Logger     { return h.logger }
func (h *badgeHAL) Display() EPaper    { return h.display }
func (h *badgeHAL) LEDs() LEDStrip     { return h.leds }
func (h *badgeHAL) Rails() Rails       { return h.rails }
func (h *badgeHAL) Radio() Radio       { return h.radio }
func (h *badgeHAL) Analog() Analog     { return h.analog }
func (h *badgeHAL) Touch() TouchSensor { return h.touch }
func (h *badgeHAL) Power() Power       { return h.power }
func (h *badgeHAL) Retained() Retained { return h.mem }
func (h *badgeHAL) Clock() Clock       { return h.clock }
