//go:build !tinygo

package app

import "runtime/debug"

func panicStack() []byte { return debug.Stack() }
