package collision

import "math"

// Vertex is a polygon corner.
type Vertex = Vec

// Polygon is a convex polygon. Vertices must be listed in a consistent
// winding order (edges connect consecutive vertices and wrap around) and
// there must be at least three of them. Results for non-convex or
// degenerate polygons are undefined.
type Polygon struct {
	Vertices []Vertex
}

// BoxToPolygon returns the four corners of a box as a polygon:
// (x,y), (x+w,y), (x+w,y+h), (x,y+h).
func BoxToPolygon(x, y, width, height float64) Polygon {
	return Polygon{Vertices: []Vertex{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x + width, Y: y + height},
		{X: x, Y: y + height},
	}}
}

// Translate returns a copy of p moved by dx, dy.
func (p Polygon) Translate(dx, dy float64) Polygon {
	out := make([]Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = Vertex{X: v.X + dx, Y: v.Y + dy}
	}
	return Polygon{Vertices: out}
}

// ConvexPolygonsOverlap reports whether p1 and p2 overlap.
//
// Both polygons' edge normals are tried as separating axes. Checking only
// one polygon's edges is not enough.
func ConvexPolygonsOverlap(p1, p2 Polygon) bool {
	return minSeparation(p1, p2) <= 0 && minSeparation(p2, p1) <= 0
}

// minSeparation projects every vertex of b onto the outward normal of each
// edge of a, relative to the edge start. It returns the largest of the
// per-edge minimum projections; a positive value means an edge of a
// separates the polygons.
func minSeparation(a, b Polygon) float64 {
	separation := math.Inf(-1)
	n := len(a.Vertices)

	for i := 0; i < n; i++ {
		v1 := a.Vertices[i]
		v2 := a.Vertices[(i+1)%n]

		edge := Vec{X: v2.X - v1.X, Y: v2.Y - v1.Y}
		normal := Vec{X: edge.Y, Y: -edge.X}
		length := math.Hypot(normal.X, normal.Y)
		normal = Vec{X: normal.X / length, Y: normal.Y / length}

		minProj := math.Inf(1)
		for _, vb := range b.Vertices {
			diff := Vec{X: vb.X - v1.X, Y: vb.Y - v1.Y}
			minProj = math.Min(minProj, dot(diff, normal))
		}

		if minProj > separation {
			separation = minProj
		}
	}

	return separation
}

func dot(a, b Vec) float64 {
	return a.X*b.X + a.Y*b.Y
}
