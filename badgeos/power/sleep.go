// Package power sequences peripheral power and the transition into deep
// sleep.
package power

import (
	"errors"
	"strconv"
	"time"
)

// Sleep is the terminal transition of a wake cycle. Operations that may
// end the cycle return it as their error; once a *Sleep is returned the
// caller must unwind without touching peripherals and hand it to
// Sequencer.EnterSleep.
type Sleep struct {
	// Wake arms a timer wake after this long. Zero sleeps until touched
	// or reset.
	Wake time.Duration
	// Reason is a short tag for the log.
	Reason string
}

// After requests a timed sleep.
func After(d time.Duration, reason string) *Sleep {
	return &Sleep{Wake: d, Reason: reason}
}

// Indefinite requests a sleep that only a touch or reset ends.
func Indefinite(reason string) *Sleep {
	return &Sleep{Reason: reason}
}

func (s *Sleep) Indefinite() bool { return s.Wake == 0 }

func (s *Sleep) Error() string {
	msg := "sleep"
	if s.Indefinite() {
		msg += " until touched"
	} else {
		msg += " for " + strconv.FormatFloat(s.Wake.Seconds(), 'f', -1, 64) + "s"
	}
	if s.Reason != "" {
		msg += " (" + s.Reason + ")"
	}
	return msg
}

// AsSleep extracts the sleep request carried by err.
func AsSleep(err error) (*Sleep, bool) {
	var s *Sleep
	if errors.As(err, &s) {
		return s, true
	}
	return nil, false
}
