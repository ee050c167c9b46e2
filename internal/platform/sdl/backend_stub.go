//go:build !sdl2

package sdl

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/picofb/internal/engine"
)

// Backend is unavailable in this build.
type Backend struct {
	engine.Backend
}

// New always fails with ErrUnavailable.
func New(logger *log.Logger) (*Backend, error) {
	return nil, ErrUnavailable
}
