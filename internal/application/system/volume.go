package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// VolumeControl turns the minus and equals keys into volume steps.
type VolumeControl struct {
	justPressed KeyFunc
	step        float64
}

// NewVolumeControl creates a volume control reading the ebiten keyboard.
func NewVolumeControl(step float64) *VolumeControl {
	return NewVolumeControlWithKeys(inpututil.IsKeyJustPressed, step)
}

// NewVolumeControlWithKeys creates a volume control where justPressed
// reports keys that went down this frame.
func NewVolumeControlWithKeys(justPressed KeyFunc, step float64) *VolumeControl {
	return &VolumeControl{justPressed: justPressed, step: step}
}

// Poll returns the volume change requested this frame.
func (v *VolumeControl) Poll() float64 {
	var delta float64
	if v.justPressed(ebiten.KeyMinus) || v.justPressed(ebiten.KeyNumpadSubtract) {
		delta -= v.step
	}
	if v.justPressed(ebiten.KeyEqual) || v.justPressed(ebiten.KeyNumpadAdd) {
		delta += v.step
	}
	return delta
}
