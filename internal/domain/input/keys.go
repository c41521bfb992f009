// Package input holds the key state shared between the host and scenes.
package input

// Keys is the pressed state of the keys a scene can read.
type Keys struct {
	Up    bool `json:"u,omitempty"`
	Right bool `json:"r,omitempty"`
	Down  bool `json:"d,omitempty"`
	Left  bool `json:"l,omitempty"`
	Space bool `json:"s,omitempty"`
}

// Any reports whether any key is pressed.
func (k Keys) Any() bool {
	return k.Up || k.Right || k.Down || k.Left || k.Space
}

// Axis returns the horizontal and vertical direction (-1, 0 or 1) implied
// by the arrow keys. Opposite keys cancel out.
func (k Keys) Axis() (dx, dy int) {
	if k.Right {
		dx++
	}
	if k.Left {
		dx--
	}
	if k.Down {
		dy++
	}
	if k.Up {
		dy--
	}
	return dx, dy
}

// Pressed returns the keys that are down in k but were up in prev.
func (k Keys) Pressed(prev Keys) Keys {
	return Keys{
		Up:    k.Up && !prev.Up,
		Right: k.Right && !prev.Right,
		Down:  k.Down && !prev.Down,
		Left:  k.Left && !prev.Left,
		Space: k.Space && !prev.Space,
	}
}
