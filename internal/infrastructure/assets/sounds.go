package assets

import (
	"bytes"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is the rate every sound is resampled to.
const SampleRate = 44100

// Sounds is an AudioStore of looping WAV tracks played through ebiten.
type Sounds struct {
	sounds map[string]Sound
}

// NewSounds creates an empty store.
func NewSounds() *Sounds {
	return &Sounds{sounds: make(map[string]Sound)}
}

// LoadSounds decodes every WAV file of a manifest (name -> path in fsys).
// ctx is the process-wide audio context; ebiten allows only one.
func LoadSounds(actx *audio.Context, fsys fs.FS, manifest map[string]string) (*Sounds, error) {
	store := NewSounds()
	for name, path := range manifest {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read sound %s: %w", name, err)
		}

		stream, err := wav.DecodeWithSampleRate(actx.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode sound %s: %w", name, err)
		}

		player, err := actx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
		if err != nil {
			return nil, fmt.Errorf("failed to create player for %s: %w", name, err)
		}

		store.Add(name, &track{player: player})
	}
	return store, nil
}

// Add stores a sound under name.
func (s *Sounds) Add(name string, snd Sound) {
	s.sounds[name] = snd
}

// Get implements AudioStore.
func (s *Sounds) Get(name string) (Sound, error) {
	snd, ok := s.sounds[name]
	if !ok {
		return nil, fmt.Errorf("%w: sound %q", ErrUnknownAsset, name)
	}
	return snd, nil
}

type track struct {
	player *audio.Player
}

func (t *track) Play()               { t.player.Play() }
func (t *track) Pause()              { t.player.Pause() }
func (t *track) IsPlaying() bool     { return t.player.IsPlaying() }
func (t *track) SetVolume(v float64) { t.player.SetVolume(v) }
func (t *track) Volume() float64     { return t.player.Volume() }
