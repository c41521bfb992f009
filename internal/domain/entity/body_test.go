package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/art/internal/domain/collision"
)

func TestBody_Box(t *testing.T) {
	b := NewBody(7, 10, 20, 12, 14)

	assert.Equal(t, ObjectID(7), b.ID())
	assert.Equal(t, collision.Box{X: 10, Y: 20, Width: 12, Height: 14}, b.Box())
}

func TestBody_Move(t *testing.T) {
	b := NewBody(1, 10, 20, 4, 4)

	b.Move(2, -3)
	assert.Equal(t, 12.0, b.X)
	assert.Equal(t, 17.0, b.Y)

	b.SetPos(0, 0)
	assert.Equal(t, collision.Box{Width: 4, Height: 4}, b.Box())
}
