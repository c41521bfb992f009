package art

import (
	"errors"
	"fmt"

	"github.com/younwookim/art/internal/infrastructure/render"
)

var (
	// ErrSurfaceNotFound is returned by Start when the canvas selector
	// resolves to nothing.
	ErrSurfaceNotFound = render.ErrNotFound
	// ErrContextUnavailable is returned by Start when the canvas exists but
	// has no drawing context.
	ErrContextUnavailable = render.ErrContextUnavailable

	ErrAlreadyStarted = errors.New("art: already started")
	ErrNotStarted     = errors.New("art: not started")
)

// InitError reports a scene whose Init failed. The scene never runs and
// Init is not retried.
type InitError struct {
	Scene string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("failed to initialize %s scene: %v", e.Scene, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// StepError reports a scene whose Update or Draw failed during a logical
// frame.
type StepError struct {
	Scene string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s scene step failed: %v", e.Scene, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
