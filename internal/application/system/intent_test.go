package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/art/internal/domain/entity"
)

func TestMoveIntent(t *testing.T) {
	intent := MoveIntent{
		ObjectID: entity.ObjectID(1),
		DX:       2,
		DY:       -2,
	}

	// Test that it implements Intent interface
	var i Intent = intent
	i.isIntent() // Should not panic

	assert.Equal(t, entity.ObjectID(1), intent.ObjectID)
	assert.Equal(t, 2.0, intent.DX)
	assert.Equal(t, -2.0, intent.DY)
}

func TestToggleIntent(t *testing.T) {
	var i Intent = ToggleIntent{}
	i.isIntent()

	_, ok := i.(ToggleIntent)
	assert.True(t, ok)
}
