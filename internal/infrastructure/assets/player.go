package assets

// Player forwards the events of an audio playback widget (play, pause,
// volume) to one sound. A Player without a sound ignores every event.
type Player struct {
	sound  Sound
	volume float64
}

// NewPlayer creates a player for snd at full volume. snd may be nil.
func NewPlayer(snd Sound) *Player {
	p := &Player{sound: snd, volume: 1}
	if snd != nil {
		snd.SetVolume(p.volume)
	}
	return p
}

// OnPlay starts playback.
func (p *Player) OnPlay() {
	if p.sound != nil && !p.sound.IsPlaying() {
		p.sound.Play()
	}
}

// OnPause pauses playback.
func (p *Player) OnPause() {
	if p.sound != nil && p.sound.IsPlaying() {
		p.sound.Pause()
	}
}

// OnVolume sets the volume, clamped to [0, 1].
func (p *Player) OnVolume(v float64) {
	p.volume = max(0, min(1, v))
	if p.sound != nil {
		p.sound.SetVolume(p.volume)
	}
}

// Switch plays when on is true and pauses otherwise.
func (p *Player) Switch(on bool) {
	if on {
		p.OnPlay()
	} else {
		p.OnPause()
	}
}

// Volume returns the current volume.
func (p *Player) Volume() float64 {
	return p.volume
}

// Playing reports whether the sound is playing.
func (p *Player) Playing() bool {
	return p.sound != nil && p.sound.IsPlaying()
}
