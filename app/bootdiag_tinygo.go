//go:build tinygo && bootdebug

package app

import (
	"machine"
	"time"

	"makerbadge/hal"
)

const bootDiagPeriod = 500 * time.Millisecond

// bootDiagStart reports the cycle step on the log and USB CDC until the
// badge sleeps, so a badge stuck with its rails up can be diagnosed
// without a UART adapter.
func bootDiagStart(h hal.HAL) {
	if h == nil {
		return
	}
	l := h.Logger()

	go func() {
		for {
			line := "bootdiag: " + bootDiagLine(h)
			if l != nil {
				l.WriteLineString(line)
			}
			if usb := machine.USBCDC; usb != nil {
				_, _ = usb.Write([]byte(line + "\r\n"))
			}
			h.Clock().Sleep(bootDiagPeriod)
		}
	}()
}
