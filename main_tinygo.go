//go:build tinygo && baremetal

package main

import (
	"makerbadge/app"
	"makerbadge/badgeos/config"
	"makerbadge/hal"
)

func main() {
	app.Run(hal.New(), config.Default())
}
