// Package registry provides a global registry for demo program factories.
// Demos register themselves in init() functions, allowing the command to
// discover and run them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/picofb/internal/core"
	"github.com/vovakirdan/picofb/internal/engine"
)

// Demo is a runnable program driven by the engine.
type Demo interface {
	engine.MainLoop

	// ID returns a unique identifier for this demo (e.g., "drawkp", "pause").
	// Used for CLI commands and config overrides.
	ID() string

	// Title returns a human-readable name, used as the window title.
	Title() string

	// Defaults returns the window size and update rate the demo was written for.
	Defaults() core.RuntimeConfig

	// Attach is called once after the framebuffer is created and before the
	// loop starts. Demos open secondary windows or grab the mouse here.
	Attach(fb *engine.Framebuffer) error
}

// DemoInfo contains metadata about a registered demo.
type DemoInfo struct {
	ID       string
	Title    string
	Defaults core.RuntimeConfig
}

// Factory is a function that creates a new instance of a demo.
type Factory func() Demo

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]DemoInfo)
	mu        sync.RWMutex
)

// Register adds a demo factory to the registry.
// Typically called from a demo's init() function.
// Panics if a demo with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: demo %q already registered", id))
	}

	factories[id] = f

	d := f()
	infos[id] = DemoInfo{ID: id, Title: d.Title(), Defaults: d.Defaults()}
}

// List returns information about all registered demos, sorted by ID.
func List() []DemoInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DemoInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new demo by its ID.
// Returns an error if the demo ID is not registered.
func Create(id string) (Demo, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown demo %q", id)
	}

	return f(), nil
}

// Exists checks if a demo with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
