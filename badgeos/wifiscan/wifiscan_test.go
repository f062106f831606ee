package wifiscan

import (
	"errors"
	"testing"
	"time"

	"makerbadge/hal"
)

func TestHistogramAdd(t *testing.T) {
	var h Histogram
	for _, ch := range []int{1, 1, 6, 14, 0, 15, -3, 11} {
		h.Add(ch)
	}
	if h.Total != 5 || h.Dropped != 3 {
		t.Fatalf("total=%d dropped=%d, want 5 and 3", h.Total, h.Dropped)
	}
	sum := 0
	for _, c := range h.Counts {
		sum += c
	}
	if sum != h.Total {
		t.Fatalf("sum(counts)=%d != total=%d", sum, h.Total)
	}
	if h.Count(1) != 2 || h.Count(14) != 1 || h.Count(15) != 0 {
		t.Fatalf("counts = %v", h.Counts)
	}
	if h.Busiest() != 1 {
		t.Fatalf("busiest = %d, want 1", h.Busiest())
	}
}

func TestScanWithSimulator(t *testing.T) {
	host := hal.NewHost(hal.DefaultHostOptions(), hal.NewVirtualClock(), nil)
	host.SimRadio().SetAccessPoints([]int{1, 6, 6, 6, 11, 3, 13, 20})

	hist, err := NewScanner(host, 100*time.Millisecond).Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if hist.Total != 7 || hist.Dropped != 1 || hist.Count(6) != 3 || hist.Busiest() != 6 {
		t.Fatalf("histogram = %+v", hist)
	}
	if got := host.SimRadio().Mode(); got != hal.RadioStation {
		t.Fatalf("radio mode = %s, want station", got)
	}
	if got := host.SimRadio().Disconnects(); got != 1 {
		t.Fatalf("disconnects = %d, want 1", got)
	}
	if got := host.Clock().Now(); got < 100*time.Millisecond {
		t.Fatalf("scan started before the radio settled (%v)", got)
	}
}

func TestScanEmptyEnvironment(t *testing.T) {
	host := hal.NewHost(hal.DefaultHostOptions(), hal.NewVirtualClock(), nil)
	host.SimRadio().SetAccessPoints(nil)
	hist, err := NewScanner(host, 0).Scan()
	if err != nil || hist.Total != 0 || hist.Busiest() != 0 {
		t.Fatalf("hist=%+v err=%v", hist, err)
	}
}

type brokenRadio struct{ hal.Radio }

var errBroken = errors.New("no firmware")

func (brokenRadio) SetMode(hal.RadioMode) error { return nil }
func (brokenRadio) Disconnect() error           { return nil }
func (brokenRadio) Scan() (int, error)          { return 0, errBroken }

func TestScanError(t *testing.T) {
	host := hal.NewHost(hal.DefaultHostOptions(), hal.NewVirtualClock(), nil)
	s := NewScanner(host, 0)
	s.radio = brokenRadio{}
	hist, err := s.Scan()
	if !errors.Is(err, errBroken) {
		t.Fatalf("err = %v, want wrapped errBroken", err)
	}
	if hist.Total != 0 {
		t.Fatalf("histogram not empty on error: %+v", hist)
	}
}
