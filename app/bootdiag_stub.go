//go:build !(tinygo && bootdebug)

package app

import "makerbadge/hal"

func bootDiagStart(hal.HAL) {}
