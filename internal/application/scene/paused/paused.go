// Package paused provides the pause scene shown while play is suspended.
package paused

import (
	"context"
	"image/color"

	"github.com/younwookim/art/internal/application/scene"
	"github.com/younwookim/art/internal/application/system"
	"github.com/younwookim/art/internal/infrastructure/render"
)

var (
	colorOverlay = color.RGBA{0, 0, 0, 255}
	colorIcon    = color.RGBA{255, 241, 232, 255}
)

// Paused draws a pause icon and resumes play when Space goes down.
type Paused struct {
	scene.Base

	input *system.InputSystem
	blink bool
}

// New creates a pause scene.
func New() *Paused {
	return &Paused{input: system.NewInputSystem(0)}
}

// Init implements scene.Scene. There is nothing to load.
func (p *Paused) Init(context.Context) error {
	return nil
}

// Update resumes play on a Space press. The icon blinks twice a second.
func (p *Paused) Update() error {
	rt := p.Runtime()
	p.blink = int(rt.Now()/500)%2 == 1

	for _, intent := range p.input.Intents(0, rt.Keys()) {
		if _, ok := intent.(system.ToggleIntent); ok {
			rt.Play()
			break
		}
	}
	return nil
}

// Draw implements scene.Scene.
func (p *Paused) Draw(surface render.Surface) error {
	surface.SetOffset(0, 0)

	w, h := p.Runtime().Size()
	surface.FillRect(0, 0, float64(w), float64(h), colorOverlay)
	if p.blink {
		return nil
	}

	// Two bars, each a tile wide and three tiles high.
	ts := float64(p.Runtime().TileSize())
	cx, cy := float64(w)/2, float64(h)/2
	surface.FillRect(cx-ts*1.5, cy-ts*1.5, ts, ts*3, colorIcon)
	surface.FillRect(cx+ts*0.5, cy-ts*1.5, ts, ts*3, colorIcon)
	return nil
}

// Start is called when the scene becomes active
func (p *Paused) Start() {
	p.input.Reset(p.Runtime().Keys())
}
