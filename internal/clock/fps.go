package clock

// DefaultFPSSamples is the ring size used by the engine's FPS estimator.
const DefaultFPSSamples = 32

// FPSCounter keeps a rolling average over the last N instantaneous FPS
// samples. Unfilled slots count as zero, so the average ramps up over the
// first N frames.
type FPSCounter struct {
	samples []float64
	idx     int
	sum     float64
}

// NewFPSCounter creates a counter averaging over n samples (minimum 1).
func NewFPSCounter(n int) *FPSCounter {
	if n < 1 {
		n = 1
	}
	return &FPSCounter{samples: make([]float64, n)}
}

// Add records a sample and returns the updated rolling average.
func (c *FPSCounter) Add(fps float64) float64 {
	c.sum -= c.samples[c.idx]
	c.sum += fps
	c.samples[c.idx] = fps
	c.idx = (c.idx + 1) % len(c.samples)
	return c.Average()
}

// AddFrameTime records a frame that took elapsed seconds. Non-positive
// durations are skipped and leave the average unchanged.
func (c *FPSCounter) AddFrameTime(elapsed float64) float64 {
	if elapsed <= 0 {
		return c.Average()
	}
	return c.Add(1 / elapsed)
}

// Average returns the current rolling average.
func (c *FPSCounter) Average() float64 {
	return c.sum / float64(len(c.samples))
}

// Len returns the ring capacity.
func (c *FPSCounter) Len() int {
	return len(c.samples)
}
