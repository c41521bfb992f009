// Package assets provides the image and audio stores scenes draw and play
// from. Everything is loaded up front; lookups are synchronous.
package assets

import (
	"errors"
	"image"
)

// ErrUnknownAsset is returned when a store has nothing under a name.
var ErrUnknownAsset = errors.New("unknown asset")

// ImageStore looks up decoded images by name.
type ImageStore interface {
	Get(name string) (image.Image, error)
}

// AudioStore looks up playable sounds by name.
type AudioStore interface {
	Get(name string) (Sound, error)
}

// Sound is a playable audio handle.
type Sound interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(v float64)
	Volume() float64
}
