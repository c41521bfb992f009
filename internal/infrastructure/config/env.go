package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Overrides are the display settings that can be replaced from the
// environment. Unset variables leave the file value alone.
type Overrides struct {
	FrameRate   *int    `envconfig:"ART_FRAME_RATE"`
	Width       *int    `envconfig:"ART_WIDTH"`
	Height      *int    `envconfig:"ART_HEIGHT"`
	Scale       *int    `envconfig:"ART_SCALE"`
	Canvas      *string `envconfig:"ART_CANVAS"`
	DisplayGrid *bool   `envconfig:"ART_DISPLAY_GRID"`
}

// ApplyEnv reads Overrides from the environment into d.
func ApplyEnv(d *DisplayConfig) error {
	var o Overrides
	if err := envconfig.Process("", &o); err != nil {
		return fmt.Errorf("failed to read environment overrides: %w", err)
	}
	o.Apply(d)
	return nil
}

// Apply copies every set override into d.
func (o Overrides) Apply(d *DisplayConfig) {
	if o.FrameRate != nil && *o.FrameRate > 0 {
		d.FrameRate = *o.FrameRate
	}
	if o.Width != nil && *o.Width > 0 {
		d.Width = *o.Width
	}
	if o.Height != nil && *o.Height > 0 {
		d.Height = *o.Height
	}
	if o.Scale != nil && *o.Scale > 0 {
		d.Scale = *o.Scale
	}
	if o.Canvas != nil && *o.Canvas != "" {
		d.Canvas = *o.Canvas
	}
	if o.DisplayGrid != nil {
		d.DisplayGrid = *o.DisplayGrid
	}
}
