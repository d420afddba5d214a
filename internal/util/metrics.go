package util

import "sync"

const metricsBufferSize = 64

// MetricsGetter allows read access to tracked performance metrics.
type MetricsGetter interface {
	Avg() uint64
	GetLast() uint64
}

// MetricsHandler keeps a ring buffer of the most recent values of a
// performance metric (e.g. render time in µs).
type MetricsHandler struct {
	mtx    sync.Mutex
	values [metricsBufferSize]uint64
	index  int
	count  int
}

// Add records a new value.
func (h *MetricsHandler) Add(value uint64) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.index = (h.index + 1) % metricsBufferSize
	h.values[h.index] = value
	if h.count < metricsBufferSize {
		h.count++
	}
}

// GetLast returns the most recently added value.
func (h *MetricsHandler) GetLast() uint64 {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.values[h.index]
}

// Avg returns the average over the recorded values, or 0 if there are none.
func (h *MetricsHandler) Avg() uint64 {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	if h.count == 0 {
		return 0
	}
	sum := uint64(0)
	for _, v := range h.values {
		sum += v
	}
	return sum / uint64(h.count)
}
