package entity

import (
	"github.com/younwookim/art/internal/domain/collision"
)

// Body is the position and size every object has. Embedding it gives an
// object its ID, Box and a no-op Update.
type Body struct {
	id   ObjectID
	X, Y float64
	W, H float64
}

// NewBody creates a body at x, y with the given size.
func NewBody(id ObjectID, x, y, w, h float64) Body {
	return Body{id: id, X: x, Y: y, W: w, H: h}
}

// ID implements Object.
func (b *Body) ID() ObjectID {
	return b.id
}

// Box implements Object.
func (b *Body) Box() collision.Box {
	return collision.Box{X: b.X, Y: b.Y, Width: b.W, Height: b.H}
}

// Update implements Object. It does nothing.
func (b *Body) Update(now float64) {}

// SetPos moves the body to x, y.
func (b *Body) SetPos(x, y float64) {
	b.X, b.Y = x, y
}

// Move moves the body by dx, dy.
func (b *Body) Move(dx, dy float64) {
	b.X += dx
	b.Y += dy
}
