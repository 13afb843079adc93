package obs

import "sync"

// Label is a key/value pair attached to measurements.
type Label struct {
	Key   string
	Value string
}

// Meter is a very small interface for emitting counters/histograms.
// Implementations may no-op or bridge to a metrics system.
type Meter interface {
	Counter(name string, value float64, labels ...Label)
	Histogram(name string, value float64, labels ...Label)
}

// NopMeter is a Meter that discards all measurements.
type NopMeter struct{}

func (NopMeter) Counter(name string, value float64, labels ...Label)   {}
func (NopMeter) Histogram(name string, value float64, labels ...Label) {}

// MapMeter accumulates measurements in memory. Counters sum per name,
// histograms keep every sample. Safe for concurrent use.
type MapMeter struct {
	mu       sync.Mutex
	counters map[string]float64
	samples  map[string][]float64
}

func NewMapMeter() *MapMeter {
	return &MapMeter{
		counters: make(map[string]float64),
		samples:  make(map[string][]float64),
	}
}

func (m *MapMeter) Counter(name string, value float64, labels ...Label) {
	m.mu.Lock()
	m.counters[name] += value
	m.mu.Unlock()
}

func (m *MapMeter) Histogram(name string, value float64, labels ...Label) {
	m.mu.Lock()
	m.samples[name] = append(m.samples[name], value)
	m.mu.Unlock()
}

// CounterValue returns the accumulated total for name.
func (m *MapMeter) CounterValue(name string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}

// Samples returns a copy of the recorded histogram samples for name.
func (m *MapMeter) Samples(name string) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]float64, len(m.samples[name]))
	copy(out, m.samples[name])
	return out
}
