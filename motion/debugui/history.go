package debugui

// History is a fixed-size ring of samples for plotting.
type History struct {
	samples []float32
	offset  int
	filled  bool
}

// NewHistory returns an empty history holding the last size samples.
func NewHistory(size int) *History {
	return &History{samples: make([]float32, max(size, 1))}
}

// Push records a sample, overwriting the oldest once full.
func (h *History) Push(v float32) {
	h.samples[h.offset] = v
	h.offset = (h.offset + 1) % len(h.samples)
	if h.offset == 0 {
		h.filled = true
	}
}

// Len returns the number of samples pushed, up to Cap.
func (h *History) Len() int {
	if h.filled {
		return len(h.samples)
	}
	return h.offset
}

// Ordered copies the samples oldest first into dst, which must hold Cap()
// values. Unfilled slots are zero.
func (h *History) Ordered(dst []float32) []float32 {
	dst = dst[:len(h.samples)]
	n := copy(dst, h.samples[h.offset:])
	copy(dst[n:], h.samples[:h.offset])
	return dst
}

// Cap returns the capacity given to NewHistory.
func (h *History) Cap() int {
	return len(h.samples)
}

// Average returns the mean of the recorded samples.
func (h *History) Average() float32 {
	n := h.Len()
	if n == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.samples[:n] {
		sum += v
	}
	return sum / float32(n)
}
