//go:build tinygo

package app

func panicStack() []byte { return nil }
