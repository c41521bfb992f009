// Package render provides the 2D drawing surfaces scenes draw on and the
// provider that resolves a surface from a canvas selector.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	// ErrNotFound is returned when a selector resolves to nothing.
	ErrNotFound = errors.New("surface not found")
	// ErrContextUnavailable is returned when a target exists but cannot
	// provide a drawing context.
	ErrContextUnavailable = errors.New("drawing context unavailable")
)

// Surface is a 2D drawing context.
//
// Coordinates passed to drawing methods are in user space; the current
// offset is added to get device pixels, so a scene can pan by translating.
type Surface interface {
	// ClearRect makes the given region fully transparent.
	ClearRect(x, y, w, h float64)
	// DrawImage draws srcRect of src scaled into dstRect.
	DrawImage(src image.Image, srcRect, dstRect image.Rectangle)
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h float64, clr color.Color)
	// FillPolygon fills a convex polygon.
	FillPolygon(pts []Point, clr color.Color)

	// Offset returns the translation currently applied to drawing calls.
	Offset() (x, y float64)
	SetOffset(x, y float64)
	Translate(dx, dy float64)

	// Size returns the device size in pixels.
	Size() (w, h int)
}

// Point is a position in user space.
type Point struct {
	X, Y float64
}

// Target is something a selector resolves to, such as a canvas element.
type Target interface {
	Context2D() (Surface, error)
}

// TargetFunc adapts a function to the Target interface.
type TargetFunc func() (Surface, error)

// Context2D calls f.
func (f TargetFunc) Context2D() (Surface, error) {
	return f()
}

// Provider resolves selectors to drawing targets.
type Provider interface {
	Resolve(selector string) (Target, error)
}

// Registry is a map-backed Provider.
type Registry struct {
	targets map[string]Target
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{targets: make(map[string]Target)}
}

// Register binds a target to a selector, replacing any previous binding.
func (r *Registry) Register(selector string, target Target) {
	r.targets[selector] = target
}

// RegisterSurface binds a ready surface to a selector.
func (r *Registry) RegisterSurface(selector string, s Surface) {
	r.Register(selector, TargetFunc(func() (Surface, error) {
		if s == nil {
			return nil, ErrContextUnavailable
		}
		return s, nil
	}))
}

// Resolve implements Provider.
func (r *Registry) Resolve(selector string) (Target, error) {
	t, ok := r.targets[selector]
	if !ok || t == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, selector)
	}
	return t, nil
}

// Open resolves selector and obtains its drawing context.
func Open(p Provider, selector string) (Surface, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: %q (no provider)", ErrNotFound, selector)
	}

	target, err := p.Resolve(selector)
	if err != nil {
		return nil, err
	}

	s, err := target.Context2D()
	if err != nil {
		if errors.Is(err, ErrContextUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrContextUnavailable, err)
	}
	if s == nil {
		return nil, ErrContextUnavailable
	}

	return s, nil
}

// deviceRect converts a user-space rectangle to device pixels, rounding
// outwards.
func deviceRect(x, y, w, h, offX, offY float64) image.Rectangle {
	x0 := x + offX
	y0 := y + offY
	return image.Rect(floor(x0), floor(y0), ceil(x0+w), ceil(y0+h))
}

func floor(f float64) int {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}

func ceil(f float64) int {
	i := int(f)
	if f > 0 && float64(i) != f {
		i++
	}
	return i
}
