package system

import "github.com/younwookim/art/internal/domain/entity"

// Intent represents an action that an object wants to perform
type Intent interface {
	isIntent()
}

// MoveIntent represents a movement intention
type MoveIntent struct {
	ObjectID entity.ObjectID
	DX, DY   float64 // Pixels to move
}

func (MoveIntent) isIntent() {}

// ToggleIntent asks the runtime to switch between play and pause
type ToggleIntent struct{}

func (ToggleIntent) isIntent() {}
