package entity

import (
	"image/color"
	"math"

	"github.com/younwookim/art/internal/domain/collision"
	"github.com/younwookim/art/internal/infrastructure/assets"
	"github.com/younwookim/art/internal/infrastructure/render"
)

// Block is a solid filled rectangle.
type Block struct {
	Body
	Color color.RGBA
}

// NewBlock creates a block.
func NewBlock(id ObjectID, x, y, w, h float64, clr color.RGBA) *Block {
	return &Block{Body: NewBody(id, x, y, w, h), Color: clr}
}

// Draw implements Object.
func (b *Block) Draw(s render.Surface, _ assets.ImageStore) error {
	s.FillRect(b.X, b.Y, b.W, b.H, b.Color)
	return nil
}

// Obstacle is a convex polygon. Its Box is the bounding box, used only for
// coarse checks; contact is decided on the polygon itself.
type Obstacle struct {
	id      ObjectID
	polygon collision.Polygon
	Color   color.RGBA
	// Hit is set by the scene while something touches the obstacle.
	Hit      bool
	HitColor color.RGBA
}

// NewObstacle creates an obstacle from vertices in winding order.
func NewObstacle(id ObjectID, vertices []collision.Vertex, clr color.RGBA) *Obstacle {
	return &Obstacle{
		id:       id,
		polygon:  collision.Polygon{Vertices: vertices},
		Color:    clr,
		HitColor: clr,
	}
}

// ID implements Object.
func (o *Obstacle) ID() ObjectID {
	return o.id
}

// Polygon returns the obstacle's shape.
func (o *Obstacle) Polygon() collision.Polygon {
	return o.polygon
}

// Box implements Object.
func (o *Obstacle) Box() collision.Box {
	if len(o.polygon.Vertices) == 0 {
		return collision.Box{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range o.polygon.Vertices {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}
	return collision.Box{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Update implements Object. It does nothing.
func (o *Obstacle) Update(now float64) {}

// Draw implements Object.
func (o *Obstacle) Draw(s render.Surface, _ assets.ImageStore) error {
	pts := make([]render.Point, len(o.polygon.Vertices))
	for i, v := range o.polygon.Vertices {
		pts[i] = render.Point{X: v.X, Y: v.Y}
	}
	clr := o.Color
	if o.Hit {
		clr = o.HitColor
	}
	s.FillPolygon(pts, clr)
	return nil
}
