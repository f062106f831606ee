//go:build tinygo

package hal

// nullRadio is the radio of a board without a supported network chip. It
// can be switched off, and scans report that they are unsupported.
type nullRadio struct{}

func (nullRadio) SetMode(m RadioMode) error {
	if m == RadioOff {
		return nil
	}
	return ErrNotImplemented
}

func (nullRadio) Disconnect() error { return nil }

func (nullRadio) Scan() (int, error) { return 0, ErrNotImplemented }

func (nullRadio) Channel(i int) int {
	_ = i
	return 0
}
