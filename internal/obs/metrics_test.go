package obs

import (
	"sync"
	"testing"
)

func TestMapMeterCounter(t *testing.T) {
	m := NewMapMeter()
	m.Counter("reqs", 1)
	m.Counter("reqs", 2)
	if got := m.CounterValue("reqs"); got != 3 {
		t.Fatalf("CounterValue = %v, want 3", got)
	}
	if got := m.CounterValue("absent"); got != 0 {
		t.Fatalf("CounterValue absent = %v, want 0", got)
	}
}

func TestMapMeterHistogram(t *testing.T) {
	m := NewMapMeter()
	m.Histogram("bytes", 5)
	m.Histogram("bytes", 7)
	s := m.Samples("bytes")
	if len(s) != 2 || s[0] != 5 || s[1] != 7 {
		t.Fatalf("Samples = %v", s)
	}
}

func TestMapMeterConcurrent(t *testing.T) {
	m := NewMapMeter()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Counter("n", 1)
			}
		}()
	}
	wg.Wait()
	if got := m.CounterValue("n"); got != 1600 {
		t.Fatalf("CounterValue = %v, want 1600", got)
	}
}
