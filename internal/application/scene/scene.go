// Package scene defines the Scene interface for runtime modes.
//
// The runtime owns exactly two scenes, play and pause. Whichever is active
// is initialized lazily and then updated and drawn once per logical frame.
package scene

import (
	"context"

	"github.com/younwookim/art/internal/domain/input"
	"github.com/younwookim/art/internal/infrastructure/assets"
	"github.com/younwookim/art/internal/infrastructure/render"
)

// Scene represents one mode of the runtime (play, pause).
//
// Embed Base to get the bookkeeping methods and no-op Update, Start and
// Stop. Init and Draw have no default and must be written by every scene.
type Scene interface {
	// Init loads what the scene needs. It runs at most once, the first time
	// the scene becomes active, and may block on I/O: the runtime calls it
	// off the frame loop and keeps skipping the scene until it returns.
	Init(ctx context.Context) error

	// Update advances the scene by one logical frame.
	Update() error

	// Draw renders the scene. The surface has already been cleared.
	Draw(surface render.Surface) error

	// Start is called every time the scene becomes the active one.
	Start()

	// Stop is called every time the scene stops being the active one.
	Stop()

	// Attach sets the back-reference to the owning runtime.
	Attach(rt Runtime)

	// IsInitialized reports whether Init has completed successfully.
	IsInitialized() bool

	// MarkInitialized is called by the runtime after Init succeeds.
	MarkInitialized()
}

// Runtime is the owning runtime as seen from a scene.
type Runtime interface {
	Images() assets.ImageStore
	Audio() assets.AudioStore
	Keys() input.Keys

	// Size returns the drawing area in pixels.
	Size() (w, h int)
	TileSize() int

	// Now returns the timestamp of the frame being processed, in ms.
	Now() float64

	// Service returns a custom service registered with the runtime.
	Service(name string) (any, bool)

	Play()
	Pause()
	IsPlaying() bool
}

// Base carries the state every scene needs. Embed it by value.
type Base struct {
	runtime     Runtime
	initialized bool
}

// Attach implements Scene. The back-reference is set once; attaching a
// different runtime afterwards is a programming error.
func (b *Base) Attach(rt Runtime) {
	if b.runtime != nil && b.runtime != rt {
		panic("scene: already attached to another runtime")
	}
	b.runtime = rt
}

// Runtime returns the owning runtime, or nil before the runtime started.
func (b *Base) Runtime() Runtime {
	return b.runtime
}

// IsInitialized implements Scene.
func (b *Base) IsInitialized() bool {
	return b.initialized
}

// MarkInitialized implements Scene.
func (b *Base) MarkInitialized() {
	b.initialized = true
}

// Update implements Scene. It does nothing.
func (b *Base) Update() error {
	return nil
}

// Start implements Scene. It does nothing.
func (b *Base) Start() {}

// Stop implements Scene. It does nothing.
func (b *Base) Stop() {}
