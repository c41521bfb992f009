package entity

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/art/internal/infrastructure/assets"
	"github.com/younwookim/art/internal/infrastructure/render"
)

type imageMap map[string]image.Image

func (m imageMap) Get(name string) (image.Image, error) {
	img, ok := m[name]
	if !ok {
		return nil, assets.ErrUnknownAsset
	}
	return img, nil
}

// strip returns a w*n x h image whose n cells are filled with the given
// colors, left to right.
func strip(w, h int, colors ...color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w*len(colors), h))
	for i, c := range colors {
		for y := 0; y < h; y++ {
			for x := i * w; x < (i+1)*w; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func threeFrames(durations ...float64) []Frame {
	frames := make([]Frame, len(durations))
	for i, d := range durations {
		frames[i] = Frame{Src: image.Rect(i*4, 0, (i+1)*4, 4), Duration: d}
	}
	return frames
}

func TestAnimatedImage_Advance(t *testing.T) {
	a := NewAnimatedImage(1, "sheet", 0, 0, threeFrames(100, 100, 100))

	tests := []struct {
		now  float64
		want int
	}{
		{50, 0},
		{99, 0},
		{100, 1},
		{150, 1},
		{200, 2},
		{300, 0}, // wraps
		{1000, 1},
		{1001, 1}, // one frame per update, even when far behind
	}

	for _, tt := range tests {
		a.Update(tt.now)
		assert.Equal(t, tt.want, a.Frame(), "now=%v", tt.now)
	}
}

func TestAnimatedImage_PerFrameDuration(t *testing.T) {
	a := NewAnimatedImage(1, "sheet", 0, 0, threeFrames(10, 500, 10))

	a.Update(10)
	require.Equal(t, 1, a.Frame())
	a.Update(400)
	assert.Equal(t, 1, a.Frame(), "second frame lasts 500ms")
	a.Update(510)
	assert.Equal(t, 2, a.Frame())
}

func TestAnimatedImage_SizeFromFirstFrame(t *testing.T) {
	a := NewAnimatedImage(1, "sheet", 3, 5, threeFrames(1, 1, 1))
	assert.Equal(t, 4.0, a.Box().Width)
	assert.Equal(t, 4.0, a.Box().Height)

	assert.Panics(t, func() { NewAnimatedImage(2, "sheet", 0, 0, nil) })
}

func TestAnimatedImage_DrawsCurrentFrame(t *testing.T) {
	images := imageMap{"sheet": strip(4, 4, red, green, blue)}
	canvas := render.NewCanvas(10, 10)
	a := NewAnimatedImage(1, "sheet", 2, 3, threeFrames(100, 100, 100))

	require.NoError(t, a.Draw(canvas, images))
	assert.Equal(t, red, canvas.Image().RGBAAt(2, 3))
	assert.Equal(t, red, canvas.Image().RGBAAt(5, 6))
	assert.Equal(t, color.RGBA{}, canvas.Image().RGBAAt(6, 6))

	a.Update(100)
	require.NoError(t, a.Draw(canvas, images))
	assert.Equal(t, green, canvas.Image().RGBAAt(2, 3))
}

func TestStaticImage_Draw(t *testing.T) {
	images := imageMap{"flag": strip(2, 3, blue)}
	canvas := render.NewCanvas(10, 10)
	s := NewStaticImage(1, "flag", 4, 4, 2, 3)

	require.NoError(t, s.Draw(canvas, images))
	assert.Equal(t, blue, canvas.Image().RGBAAt(4, 4))
	assert.Equal(t, blue, canvas.Image().RGBAAt(5, 6))
	assert.Equal(t, color.RGBA{}, canvas.Image().RGBAAt(6, 4))
}

func TestImages_UnknownName(t *testing.T) {
	canvas := render.NewCanvas(4, 4)

	err := NewStaticImage(1, "nope", 0, 0, 1, 1).Draw(canvas, imageMap{})
	assert.ErrorIs(t, err, assets.ErrUnknownAsset)

	err = NewAnimatedImage(2, "nope", 0, 0, threeFrames(1)).Draw(canvas, imageMap{})
	assert.ErrorIs(t, err, assets.ErrUnknownAsset)
}
