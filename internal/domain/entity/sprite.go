package entity

import (
	"fmt"

	"github.com/younwookim/art/internal/infrastructure/assets"
	"github.com/younwookim/art/internal/infrastructure/render"
)

// Direction is the compass direction a sprite faces. Screen y grows
// downward, so south is +y.
type Direction string

const (
	North     Direction = "n"
	NorthEast Direction = "ne"
	East      Direction = "e"
	SouthEast Direction = "se"
	South     Direction = "s"
	SouthWest Direction = "sw"
	West      Direction = "w"
	NorthWest Direction = "nw"
)

var compass = [3][3]Direction{
	{NorthWest, North, NorthEast},
	{West, "", East},
	{SouthWest, South, SouthEast},
}

// DirectionOf returns the direction of the vector dx, dy, or "" for the
// zero vector.
func DirectionOf(dx, dy float64) Direction {
	return compass[sign(dy)+1][sign(dx)+1]
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Sprite is an object that faces a direction and plays one of several
// named animations over a sprite sheet image.
type Sprite struct {
	Body
	Image     string
	Direction Direction

	animations map[string]*Animation
	current    string
	now        float64
}

// NewSprite creates a sprite facing dir. w and h are the collision size.
func NewSprite(id ObjectID, image string, x, y, w, h float64, dir Direction) *Sprite {
	return &Sprite{
		Body:       NewBody(id, x, y, w, h),
		Image:      image,
		Direction:  dir,
		animations: make(map[string]*Animation),
	}
}

// AddAnimation registers the named animation. The first one added plays
// until Play picks another. frames must not be empty.
func (s *Sprite) AddAnimation(name string, frames []Frame) {
	s.animations[name] = NewAnimation(frames)
	if s.current == "" {
		s.current = name
	}
}

// Animation returns the name of the animation playing.
func (s *Sprite) Animation() string {
	return s.current
}

// Play switches to the named animation, restarting it from its first
// frame. Playing the current animation again does nothing. It reports
// whether the animation exists.
func (s *Sprite) Play(name string) bool {
	anim, ok := s.animations[name]
	if !ok {
		return false
	}
	if name != s.current {
		s.current = name
		anim.Restart(s.now)
	}
	return true
}

// PlayFacing plays "<name>-<direction>" when the sprite has it and name
// otherwise.
func (s *Sprite) PlayFacing(name string) bool {
	if s.Direction != "" && s.Play(name+"-"+string(s.Direction)) {
		return true
	}
	return s.Play(name)
}

// Face turns the sprite toward dx, dy. The zero vector keeps the current
// direction.
func (s *Sprite) Face(dx, dy float64) {
	if d := DirectionOf(dx, dy); d != "" {
		s.Direction = d
	}
}

// Update implements Object.
func (s *Sprite) Update(now float64) {
	s.now = now
	if anim, ok := s.animations[s.current]; ok {
		anim.Update(now)
	}
}

// Draw implements Object.
func (s *Sprite) Draw(surface render.Surface, images assets.ImageStore) error {
	anim, ok := s.animations[s.current]
	if !ok {
		return fmt.Errorf("sprite %d has no animations", s.id)
	}
	img, err := images.Get(s.Image)
	if err != nil {
		return fmt.Errorf("sprite %d: %w", s.id, err)
	}
	drawFrame(surface, img, anim.Current(), s.X, s.Y)
	return nil
}
