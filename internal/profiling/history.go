package profiling

import "time"

// DefaultHistory is how many frames the overlay averages over
const DefaultHistory = 60

// FrameHistory keeps a rolling window of frame durations
type FrameHistory struct {
	size    int
	samples []time.Duration

	Last time.Duration
	Min  time.Duration
	Max  time.Duration
	Avg  time.Duration
}

// NewFrameHistory creates a window of size samples (DefaultHistory if size <= 0)
func NewFrameHistory(size int) *FrameHistory {
	if size <= 0 {
		size = DefaultHistory
	}
	return &FrameHistory{size: size, samples: make([]time.Duration, 0, size)}
}

// Add records d and recomputes min, max and average over the window
func (h *FrameHistory) Add(d time.Duration) {
	if len(h.samples) >= h.size {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:len(h.samples)-1]
	}
	h.samples = append(h.samples, d)
	h.Last = d

	var total time.Duration
	h.Min, h.Max = d, d
	for _, v := range h.samples {
		total += v
		h.Min = min(h.Min, v)
		h.Max = max(h.Max, v)
	}
	h.Avg = total / time.Duration(len(h.samples))
}

// Len is the number of samples currently in the window
func (h *FrameHistory) Len() int {
	return len(h.samples)
}
