package buffer

// Ring is a fixed-capacity circular float64 buffer. Pushing beyond the
// capacity overwrites the oldest sample. The zero value is not usable;
// create rings with NewRing.
type Ring struct {
	data   []float64
	write  int
	filled int
}

// NewRing returns a zero-filled Ring with the given capacity.
// A capacity below 1 is clamped to 1.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{data: make([]float64, capacity)}
}

// Push stores v, overwriting the oldest sample once the ring is full,
// and returns the evicted value (0 while the ring is still filling).
func (r *Ring) Push(v float64) float64 {
	old := r.data[r.write]
	r.data[r.write] = v

	r.write++
	if r.write == len(r.data) {
		r.write = 0
	}

	if r.filled < len(r.data) {
		r.filled++
		return 0
	}

	return old
}

// Filled returns the number of valid samples currently stored,
// at most Cap.
func (r *Ring) Filled() int {
	return r.filled
}

// Cap returns the ring capacity.
func (r *Ring) Cap() int {
	return len(r.data)
}

// Zero clears the ring to the freshly created state.
func (r *Ring) Zero() {
	for i := range r.data {
		r.data[i] = 0
	}

	r.write = 0
	r.filled = 0
}
