package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas is a Surface over an offscreen ebiten image. The host blits
// it onto the screen every frame, so whatever a scene drew stays visible
// on frames where no logical step ran.
type EbitenCanvas struct {
	img        *ebiten.Image
	offX, offY float64

	// sources caches GPU copies of decoded images.
	sources map[image.Image]*ebiten.Image
}

// NewEbitenCanvas creates an offscreen canvas of the given size.
func NewEbitenCanvas(w, h int) *EbitenCanvas {
	return &EbitenCanvas{
		img:     ebiten.NewImage(w, h),
		sources: make(map[image.Image]*ebiten.Image),
	}
}

// Image returns the offscreen image.
func (c *EbitenCanvas) Image() *ebiten.Image {
	return c.img
}

// ClearRect implements Surface.
func (c *EbitenCanvas) ClearRect(x, y, w, h float64) {
	r := deviceRect(x, y, w, h, c.offX, c.offY).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	c.img.SubImage(r).(*ebiten.Image).Clear()
}

// DrawImage implements Surface.
func (c *EbitenCanvas) DrawImage(src image.Image, srcRect, dstRect image.Rectangle) {
	if src == nil || srcRect.Empty() || dstRect.Empty() {
		return
	}

	sub := c.source(src).SubImage(srcRect).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dstRect.Dx())/float64(srcRect.Dx()), float64(dstRect.Dy())/float64(srcRect.Dy()))
	op.GeoM.Translate(float64(dstRect.Min.X)+c.offX, float64(dstRect.Min.Y)+c.offY)
	c.img.DrawImage(sub, op)
}

func (c *EbitenCanvas) source(src image.Image) *ebiten.Image {
	if e, ok := src.(*ebiten.Image); ok {
		return e
	}
	if e, ok := c.sources[src]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(src)
	c.sources[src] = e
	return e
}

// FillRect implements Surface.
func (c *EbitenCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.img, float32(x+c.offX), float32(y+c.offY), float32(w), float32(h), clr, false)
}

// StrokeRect implements Surface.
func (c *EbitenCanvas) StrokeRect(x, y, w, h float64, clr color.Color) {
	vector.StrokeRect(c.img, float32(x+c.offX), float32(y+c.offY), float32(w), float32(h), 1, clr, false)
}

// FillPolygon implements Surface with a triangle fan, which is exact for
// convex polygons.
func (c *EbitenCanvas) FillPolygon(pts []Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := clr.RGBA()
	vs := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX:   float32(p.X + c.offX),
			DstY:   float32(p.Y + c.offY),
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff,
			ColorA: float32(a) / 0xffff,
		}
	}
	is := make([]uint16, 0, 3*(len(pts)-2))
	for i := 1; i < len(pts)-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	c.img.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

var white *ebiten.Image

func whitePixel() *ebiten.Image {
	if white == nil {
		white = ebiten.NewImage(1, 1)
		white.Fill(color.White)
	}
	return white
}

// Offset implements Surface.
func (c *EbitenCanvas) Offset() (x, y float64) {
	return c.offX, c.offY
}

// SetOffset implements Surface.
func (c *EbitenCanvas) SetOffset(x, y float64) {
	c.offX, c.offY = x, y
}

// Translate implements Surface.
func (c *EbitenCanvas) Translate(dx, dy float64) {
	c.offX += dx
	c.offY += dy
}

// Size implements Surface.
func (c *EbitenCanvas) Size() (w, h int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}
