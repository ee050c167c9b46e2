package core

import "fmt"

// Update rate bounds accepted by RuntimeConfig.Validate.
const (
	MinUpdateRate = 1
	MaxUpdateRate = 1000
)

// RuntimeConfig holds the four construction parameters of a framebuffer
// window: pixel size, title and fixed simulation rate.
type RuntimeConfig struct {
	Width      int    // Surface width in pixels
	Height     int    // Surface height in pixels
	Title      string // Base window title
	UpdateRate int    // Fixed updates per simulated second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:      320,
		Height:     240,
		Title:      "picofb",
		UpdateRate: 60,
	}
}

// DT returns the fixed simulation step in seconds.
func (c RuntimeConfig) DT() float64 {
	return 1 / float64(c.UpdateRate)
}

// Validate checks that the configuration can open a window.
func (c RuntimeConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid surface size %dx%d", c.Width, c.Height)
	}
	if c.UpdateRate < MinUpdateRate || c.UpdateRate > MaxUpdateRate {
		return fmt.Errorf("update rate %d outside [%d, %d]", c.UpdateRate, MinUpdateRate, MaxUpdateRate)
	}
	for _, r := range c.Title {
		if r == 0 {
			return fmt.Errorf("title contains a NUL byte")
		}
	}
	return nil
}
