package app

import (
	"fmt"
	"sync"
	"time"

	"makerbadge/hal"
)

// The cycle step is tracked on every build so a panic can name it; the
// bootdebug build also streams it.
var (
	bootDiagMu    sync.Mutex
	bootDiagStep  string
	bootDiagSince time.Duration
)

func bootDiagSetStep(h hal.HAL, step string) {
	now := h.Clock().Now()
	bootDiagMu.Lock()
	bootDiagStep = step
	bootDiagSince = now
	bootDiagMu.Unlock()
}

// bootDiagLine describes where the cycle is, e.g.
// "cause=timer step=dispatch for 1.2s rails=led=off epd=on bat=off".
func bootDiagLine(h hal.HAL) string {
	bootDiagMu.Lock()
	step, since := bootDiagStep, bootDiagSince
	bootDiagMu.Unlock()
	if step == "" {
		step = "<empty>"
	}
	return fmt.Sprintf("cause=%s step=%s for %s rails=%s",
		h.Power().WakeCause(), step, h.Clock().Now()-since, h.Rails().Describe())
}
