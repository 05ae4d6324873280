package hull

import "github.com/tethys-data/coverage.report/geom"

// Polygon is an open ring of 2D vertices; the boundary closes implicitly
// from the last vertex back to the first.
//
// SourceIndices is either nil or parallel to Vertices, recording the
// position each vertex held in the point sequence the hull was computed
// from. Because every upstream transform is index-preserving, these
// positions are also valid indices into the caller's original trackline.
type Polygon struct {
	Vertices      []geom.Point2D
	SourceIndices []int
}

// Area returns the signed area of the polygon via the shoelace formula:
// positive for counter-clockwise winding, negative for clockwise, zero
// for degenerate rings of fewer than three vertices.
func (p Polygon) Area() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// IsCCW reports whether the polygon winds counter-clockwise.
func (p Polygon) IsCCW() bool {
	return p.Area() > 0
}
