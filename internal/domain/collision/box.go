// Package collision provides stateless 2D overlap tests.
//
// Boxes are resolved with an axis-aligned bounding box (AABB) check that
// also reports which side of the first box is blocked. Convex polygons are
// tested with the Separating Axis Theorem (SAT).
package collision

// Vec is a 2D vector in pixels.
type Vec struct {
	X, Y float64
}

// Box is an axis-aligned rectangle. X, Y is the top-left corner.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.Height
}

// Box returns the box itself, so a Box satisfies Boxer.
func (b Box) Box() Box {
	return b
}

// Boxer is anything that has an axis-aligned bound.
type Boxer interface {
	Box() Box
}

// Side names one side of a box.
type Side int

const (
	SideNone Side = iota
	SideRight
	SideLeft
	SideBottom
	SideTop
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SideRight:
		return "Right"
	case SideLeft:
		return "Left"
	case SideBottom:
		return "Bottom"
	case SideTop:
		return "Top"
	default:
		return "None"
	}
}

// Mirror returns the opposite side (left<->right, top<->bottom).
func (s Side) Mirror() Side {
	switch s {
	case SideRight:
		return SideLeft
	case SideLeft:
		return SideRight
	case SideBottom:
		return SideTop
	case SideTop:
		return SideBottom
	default:
		return SideNone
	}
}

// Blocked reports which sides of a box are blocked by another box.
type Blocked struct {
	Top, Right, Bottom, Left bool
}

// Side returns the blocked side, or SideNone.
func (b Blocked) Side() Side {
	switch {
	case b.Right:
		return SideRight
	case b.Left:
		return SideLeft
	case b.Bottom:
		return SideBottom
	case b.Top:
		return SideTop
	default:
		return SideNone
	}
}

// Result describes a detected overlap, seen from the first box.
type Result struct {
	Other   Boxer
	Blocked Blocked
	// Overlap holds the penetration depth on each axis, independent of
	// which side is blocked.
	Overlap Vec
}

// DetectBoxOverlap checks a against b.
//
// Boxes that only touch at an edge do not collide. The blocked side is the
// one with the smallest penetration, which assumes shallow overlaps: a box
// that tunnelled deep into another gets a plausible but not necessarily
// correct side. Neither box is modified.
func DetectBoxOverlap(a, b Box) (Result, bool) {
	return Detect(a, b)
}

// Detect is DetectBoxOverlap for arbitrary Boxers. The returned Result
// refers to b as Other.
func Detect(a, b Boxer) (Result, bool) {
	ab, bb := a.Box(), b.Box()

	colliding := ab.Right() > bb.X && ab.Bottom() > bb.Y && ab.X < bb.Right() && ab.Y < bb.Bottom()
	if !colliding {
		return Result{}, false
	}

	// If b sits on top of a, a is blocked at its top.
	overlapRight := ab.Right() - bb.X
	overlapLeft := bb.Right() - ab.X
	overlapTop := bb.Bottom() - ab.Y
	overlapBottom := ab.Bottom() - bb.Y

	minOverlap := min(overlapLeft, overlapRight, overlapTop, overlapBottom)

	// Ties resolve right, left, bottom, top.
	var blocked Blocked
	switch minOverlap {
	case overlapRight:
		blocked.Right = true
	case overlapLeft:
		blocked.Left = true
	case overlapBottom:
		blocked.Bottom = true
	case overlapTop:
		blocked.Top = true
	}

	return Result{
		Other:   b,
		Blocked: blocked,
		Overlap: Vec{
			X: min(overlapLeft, overlapRight),
			Y: min(overlapTop, overlapBottom),
		},
	}, true
}
