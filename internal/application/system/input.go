package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/art/internal/domain/entity"
	"github.com/younwookim/art/internal/domain/input"
)

// KeyFunc reports whether a key is held down.
type KeyFunc func(ebiten.Key) bool

// InputSystem turns keyboard state into key snapshots and intents
type InputSystem struct {
	pressed KeyFunc
	speed   float64
	prev    input.Keys
}

// NewInputSystem creates an input system reading the ebiten keyboard.
// speed is the distance in pixels a held arrow key moves per logical frame.
func NewInputSystem(speed float64) *InputSystem {
	return NewInputSystemWithKeys(ebiten.IsKeyPressed, speed)
}

// NewInputSystemWithKeys creates an input system reading keys from pressed.
func NewInputSystemWithKeys(pressed KeyFunc, speed float64) *InputSystem {
	return &InputSystem{pressed: pressed, speed: speed}
}

// Poll reads the current key state. Arrow keys and WASD are equivalent.
func (s *InputSystem) Poll() input.Keys {
	return input.Keys{
		Up:    s.pressed(ebiten.KeyArrowUp) || s.pressed(ebiten.KeyW),
		Right: s.pressed(ebiten.KeyArrowRight) || s.pressed(ebiten.KeyD),
		Down:  s.pressed(ebiten.KeyArrowDown) || s.pressed(ebiten.KeyS),
		Left:  s.pressed(ebiten.KeyArrowLeft) || s.pressed(ebiten.KeyA),
		Space: s.pressed(ebiten.KeySpace),
	}
}

// Intents converts one logical frame of keys into intents for the object
// id. Space toggles only on the frame it goes down.
func (s *InputSystem) Intents(id entity.ObjectID, keys input.Keys) []Intent {
	var intents []Intent

	if dx, dy := keys.Axis(); dx != 0 || dy != 0 {
		intents = append(intents, MoveIntent{
			ObjectID: id,
			DX:       float64(dx) * s.speed,
			DY:       float64(dy) * s.speed,
		})
	}

	if keys.Pressed(s.prev).Space {
		intents = append(intents, ToggleIntent{})
	}
	s.prev = keys

	return intents
}

// Reset forgets the previous frame's keys, so a key still held when a
// scene resumes does not count as a new press.
func (s *InputSystem) Reset(keys input.Keys) {
	s.prev = keys
}
