//go:build !cgo

package window

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/picofb/internal/engine"
)

// Backend is unavailable in this build.
type Backend struct {
	engine.Backend
}

// New always fails: ebiten needs cgo on this platform.
func New(logger *log.Logger, scale int) (*Backend, error) {
	return nil, errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
