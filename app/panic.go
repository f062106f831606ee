package app

import (
	"fmt"
	"strings"

	"makerbadge/badgeos/power"
	"makerbadge/badgeos/wake"
	"makerbadge/hal"
)

// recoverToSleep turns a panic anywhere in the cycle into an indefinite
// sleep after logging it, so a fault never leaves the rails powered.
func recoverToSleep(h hal.HAL, res *wake.Result) {
	v := recover()
	if v == nil {
		return
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("app: panic: %v", v))
		l.WriteLineString("app: " + bootDiagLine(h))
		for _, line := range strings.Split(string(panicStack()), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}

	req := power.Indefinite("panic")
	res.Sleep = req
	power.NewSequencer(h, 0, 0).EnterSleep(req)
}
