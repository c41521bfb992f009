package render

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{255, 0, 0, 255}

func TestCanvas_Size(t *testing.T) {
	c := NewCanvas(32, 16)
	w, h := c.Size()
	assert.Equal(t, 32, w)
	assert.Equal(t, 16, h)
}

func TestCanvas_FillAndClear(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillRect(0, 0, 10, 10, red)
	assert.Equal(t, red, c.Image().RGBAAt(5, 5))

	c.ClearRect(2, 2, 3, 3)
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(3, 3))
	assert.Equal(t, red, c.Image().RGBAAt(6, 6))
}

func TestCanvas_ClearCompensatesOffset(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillRect(0, 0, 10, 10, red)

	c.Translate(-4, -2)
	ox, oy := c.Offset()
	c.ClearRect(-ox, -oy, 10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			require.Equal(t, color.RGBA{}, c.Image().RGBAAt(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestCanvas_DrawImageScalesAndOffsets(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(2, 2, red) // the one pixel of the 2x2 source rect we draw that is red

	c := NewCanvas(20, 20)
	c.SetOffset(5, 0)
	c.DrawImage(src, image.Rect(2, 2, 4, 4), image.Rect(0, 0, 4, 4))

	// Source pixel (2,2) covers destination 0..2 scaled x2, shifted by 5.
	assert.Equal(t, red, c.Image().RGBAAt(5, 0))
	assert.Equal(t, red, c.Image().RGBAAt(6, 1))
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(8, 3))
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(0, 0))
}

func TestCanvas_StrokeRect(t *testing.T) {
	c := NewCanvas(10, 10)
	c.StrokeRect(1, 1, 5, 5, red)

	assert.Equal(t, red, c.Image().RGBAAt(1, 1))
	assert.Equal(t, red, c.Image().RGBAAt(5, 3))
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(3, 3), "inside stays empty")
}

func TestCanvas_FillPolygon(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Translate(2, 0)
	diamond := []Point{{8, 0}, {16, 8}, {8, 16}, {0, 8}}
	c.FillPolygon(diamond, color.RGBA{0, 0, 255, 255})

	assert.Equal(t, color.RGBA{0, 0, 255, 255}, c.Image().RGBAAt(10, 8), "center")
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(2, 1), "outside the diamond")
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(19, 19))

	c.FillPolygon(diamond[:2], color.RGBA{255, 0, 0, 255})
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, c.Image().RGBAAt(10, 8), "degenerate polygons draw nothing")
}

func TestRegistry_Resolve(t *testing.T) {
	reg := NewRegistry()
	canvas := NewCanvas(4, 4)
	reg.RegisterSurface("#art-canvas", canvas)

	s, err := Open(reg, "#art-canvas")
	require.NoError(t, err)
	assert.Same(t, canvas, s)
}

func TestRegistry_NotFound(t *testing.T) {
	_, err := Open(NewRegistry(), "#missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Open(nil, "#missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistry_ContextUnavailable(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterSurface("#nil", nil)
	reg.Register("#broken", TargetFunc(func() (Surface, error) {
		return nil, errors.New("webgl only")
	}))

	_, err := Open(reg, "#nil")
	assert.ErrorIs(t, err, ErrContextUnavailable)

	_, err = Open(reg, "#broken")
	assert.ErrorIs(t, err, ErrContextUnavailable)
}
