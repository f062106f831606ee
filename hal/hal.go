package hal

import (
	"errors"
	"image/color"
	"time"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Board geometry shared by every implementation.
const (
	// TouchPads is the number of capacitive pads, numbered 1..TouchPads.
	TouchPads = 5
	NumLEDs   = 4

	// Landscape panel size (rotation 3).
	PanelWidth  = 250
	PanelHeight = 122

	// BatteryChannel is the analog input behind the battery divider.
	BatteryChannel = 6
)

// EPaper is the paged e-ink panel.
//
// Drawing goes through the embedded drivers.Displayer. Between FirstPage and
// the final NextPage the panel only retains pixels inside the current page
// window; callers replay the full composition once per pass.
type EPaper interface {
	drivers.Displayer
	Init() error
	SetRotation(rotation drivers.Rotation) error
	FillScreen(c color.RGBA)
	// FirstPage powers the panel up and opens the first page window.
	FirstPage()
	// NextPage flushes the current page and reports whether another pass
	// is required. The last call triggers the physical refresh.
	NextPage() bool
	PowerOff()
}

// LEDStrip is a small chain of addressable RGB LEDs.
type LEDStrip interface {
	Len() int
	Set(i int, c color.RGBA)
	Show() error
}

// Rails are the active-low power switches of the board peripherals.
// Writing true to a pin disables the peripheral behind it.
type Rails struct {
	LEDDisable     GPIOPin
	EPaperDisable  GPIOPin
	BatteryDisable GPIOPin
}

// RadioMode selects the radio operating mode.
type RadioMode uint8

const (
	RadioOff RadioMode = iota
	RadioStation
)

func (m RadioMode) String() string {
	switch m {
	case RadioOff:
		return "off"
	case RadioStation:
		return "station"
	default:
		return "unknown"
	}
}

// Radio is a network radio that can list nearby access points.
type Radio interface {
	SetMode(m RadioMode) error
	// Disconnect drops any association and forgets the stored credentials.
	Disconnect() error
	// Scan runs one active scan and returns the number of results.
	Scan() (int, error)
	// Channel returns the channel of scan result i.
	Channel(i int) int
}

// Analog samples analog input channels.
type Analog interface {
	// Read returns a raw 12-bit sample.
	Read(channel int) uint16
}

// TouchSensor samples capacitive touch pads.
type TouchSensor interface {
	Read(pad int) uint32
	// EnableWake registers pad as a deep sleep wake source. There is no
	// callback: the interrupt only wakes the chip.
	EnableWake(pad int, threshold uint32) error
}

// WakeCause is the hardware-reported reason execution started.
type WakeCause uint8

const (
	WakeUnknown WakeCause = iota
	WakeColdBoot
	WakeTimer
	WakeTouch
)

func (c WakeCause) String() string {
	switch c {
	case WakeColdBoot:
		return "cold-boot"
	case WakeTimer:
		return "timer"
	case WakeTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// Power controls wake sources and deep sleep.
type Power interface {
	WakeCause() WakeCause
	ArmTimer(d time.Duration)
	ArmTouch()
	// DeepSleep halts execution. On hardware it never returns; execution
	// restarts from the entry point with only Retained memory preserved.
	DeepSleep()
}

// Retained is the memory domain that survives deep sleep but not power loss.
type Retained interface {
	// Load returns the stored fields; ok is false when the memory holds no
	// valid record (first power-on).
	Load() (mode uint8, wakes uint32, ok bool)
	Store(mode uint8, wakes uint32)
	// Clear invalidates the record.
	Clear()
}

// Clock measures time since boot and performs blocking delays.
type Clock interface {
	Now() time.Duration
	Sleep(d time.Duration)
}

// HAL provides the only contact point between the firmware and the board.
type HAL interface {
	Logger() Logger
	Display() EPaper
	LEDs() LEDStrip
	Rails() Rails
	Radio() Radio
	Analog() Analog
	Touch() TouchSensor
	Power() Power
	Retained() Retained
	Clock() Clock
}

// PadForChannel maps a menu channel (1..TouchPads, as printed next to the
// pads) to the sensor pad number. The pads are wired in reverse order.
func PadForChannel(channel int) int { return TouchPads + 1 - channel }
