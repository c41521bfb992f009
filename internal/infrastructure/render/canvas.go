package render

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Canvas is a software Surface backed by an RGBA image. It needs no GPU,
// which makes it the surface of choice for tests and headless runs.
type Canvas struct {
	img        *image.RGBA
	offX, offY float64
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// ClearRect implements Surface.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	r := deviceRect(x, y, w, h, c.offX, c.offY).Intersect(c.img.Bounds())
	xdraw.Draw(c.img, r, image.Transparent, image.Point{}, xdraw.Src)
}

// DrawImage implements Surface. Scaling uses nearest neighbour so pixel art
// stays crisp.
func (c *Canvas) DrawImage(src image.Image, srcRect, dstRect image.Rectangle) {
	if src == nil || srcRect.Empty() || dstRect.Empty() {
		return
	}
	dst := dstRect.Add(image.Pt(int(math.Round(c.offX)), int(math.Round(c.offY))))
	xdraw.NearestNeighbor.Scale(c.img, dst, src, srcRect, xdraw.Over, nil)
}

// FillRect implements Surface.
func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	r := deviceRect(x, y, w, h, c.offX, c.offY).Intersect(c.img.Bounds())
	xdraw.Draw(c.img, r, image.NewUniform(clr), image.Point{}, xdraw.Over)
}

// StrokeRect implements Surface with a one pixel outline.
func (c *Canvas) StrokeRect(x, y, w, h float64, clr color.Color) {
	r := deviceRect(x, y, w, h, c.offX, c.offY)
	if r.Empty() {
		return
	}
	u := image.NewUniform(clr)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		xdraw.Draw(c.img, e.Intersect(c.img.Bounds()), u, image.Point{}, xdraw.Over)
	}
}

// FillPolygon implements Surface.
func (c *Canvas) FillPolygon(pts []Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0].X+c.offX), float32(pts[0].Y+c.offY))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X+c.offX), float32(p.Y+c.offY))
	}
	z.ClosePath()
	z.Draw(c.img, b, image.NewUniform(clr), image.Point{})
}

// Offset implements Surface.
func (c *Canvas) Offset() (x, y float64) {
	return c.offX, c.offY
}

// SetOffset implements Surface.
func (c *Canvas) SetOffset(x, y float64) {
	c.offX, c.offY = x, y
}

// Translate implements Surface.
func (c *Canvas) Translate(dx, dy float64) {
	c.offX += dx
	c.offY += dy
}

// Size implements Surface.
func (c *Canvas) Size() (w, h int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}
