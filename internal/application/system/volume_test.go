package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestVolumeControl_Poll(t *testing.T) {
	tests := []struct {
		name string
		down keyboard
		want float64
	}{
		{"nothing", keyboard{}, 0},
		{"minus", keyboard{ebiten.KeyMinus: true}, -0.1},
		{"numpad minus", keyboard{ebiten.KeyNumpadSubtract: true}, -0.1},
		{"equal", keyboard{ebiten.KeyEqual: true}, 0.1},
		{"numpad plus", keyboard{ebiten.KeyNumpadAdd: true}, 0.1},
		{"both cancel", keyboard{ebiten.KeyMinus: true, ebiten.KeyEqual: true}, 0},
		{"other key", keyboard{ebiten.KeySpace: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVolumeControlWithKeys(tt.down.pressed, 0.1)
			assert.InDelta(t, tt.want, v.Poll(), 1e-9)
		})
	}
}

func TestNewVolumeControl(t *testing.T) {
	v := NewVolumeControl(0.25)
	assert.Equal(t, 0.25, v.step)
	assert.NotNil(t, v.justPressed)
}
