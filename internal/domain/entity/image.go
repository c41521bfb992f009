package entity

import (
	"fmt"
	"image"
	"math"

	"github.com/younwookim/art/internal/infrastructure/assets"
	"github.com/younwookim/art/internal/infrastructure/render"
)

// StaticImage draws a named image at its natural size.
type StaticImage struct {
	Body
	Image string
}

// NewStaticImage creates a static image object. w and h are the collision
// size and do not scale the image.
func NewStaticImage(id ObjectID, image string, x, y, w, h float64) *StaticImage {
	return &StaticImage{Body: NewBody(id, x, y, w, h), Image: image}
}

// Draw implements Object.
func (s *StaticImage) Draw(surface render.Surface, images assets.ImageStore) error {
	img, err := images.Get(s.Image)
	if err != nil {
		return fmt.Errorf("static image %d: %w", s.id, err)
	}
	b := img.Bounds()
	dst := image.Rectangle{Max: b.Size()}.Add(pixel(s.X, s.Y))
	surface.DrawImage(img, b, dst)
	return nil
}

// AnimatedImage loops one animation over a sprite sheet image.
type AnimatedImage struct {
	Body
	Image string

	anim *Animation
}

// NewAnimatedImage creates an animation positioned at x, y. Its size is the
// size of the first frame. frames must not be empty.
func NewAnimatedImage(id ObjectID, image string, x, y float64, frames []Frame) *AnimatedImage {
	anim := NewAnimation(frames)
	size := anim.Current().Src.Size()
	return &AnimatedImage{
		Body:  NewBody(id, x, y, float64(size.X), float64(size.Y)),
		Image: image,
		anim:  anim,
	}
}

// Frame returns the index of the frame currently shown.
func (a *AnimatedImage) Frame() int {
	return a.anim.Index()
}

// Update implements Object. It advances at most one frame per call.
func (a *AnimatedImage) Update(now float64) {
	a.anim.Update(now)
}

// Draw implements Object.
func (a *AnimatedImage) Draw(surface render.Surface, images assets.ImageStore) error {
	img, err := images.Get(a.Image)
	if err != nil {
		return fmt.Errorf("animated image %d: %w", a.id, err)
	}
	drawFrame(surface, img, a.anim.Current(), a.X, a.Y)
	return nil
}

func drawFrame(surface render.Surface, img image.Image, f Frame, x, y float64) {
	dst := image.Rectangle{Max: f.Src.Size()}.Add(pixel(x, y))
	surface.DrawImage(img, f.Src, dst)
}

func pixel(x, y float64) image.Point {
	return image.Pt(int(math.Round(x)), int(math.Round(y)))
}
