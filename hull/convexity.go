package hull

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// convexityEpsilon is the tolerance for turn cross products. Turns below
// this magnitude count as collinear.
const convexityEpsilon = 1e-10

// ConvexityResult describes the shape of a polygon ring.
type ConvexityResult struct {
	// Convex is true when all non-collinear turns share one direction.
	Convex bool

	// Strict is true when the ring is convex and additionally has no
	// collinear turns at all, so no vertex is redundant.
	Strict bool

	// Winding is +1 for counter-clockwise, -1 for clockwise, 0 for
	// degenerate rings (fewer than three vertices, or all collinear).
	Winding int

	// NumVertices is the ring length analyzed.
	NumVertices int
}

// AnalyzeConvexity walks all consecutive edge pairs of the ring and
// classifies the polygon from the signs of their turn cross products.
// The ring closes implicitly from the last vertex to the first. O(n).
func AnalyzeConvexity(p Polygon) ConvexityResult {
	n := len(p.Vertices)
	result := ConvexityResult{NumVertices: n}
	if n < 3 {
		return result
	}

	var positive, negative, collinear int
	for i := 0; i < n; i++ {
		p0 := p.Vertices[i].Vec()
		p1 := p.Vertices[(i+1)%n].Vec()
		p2 := p.Vertices[(i+2)%n].Vec()

		cross := r2.Cross(r2.Sub(p1, p0), r2.Sub(p2, p1))
		switch {
		case cross > convexityEpsilon:
			positive++
		case cross < -convexityEpsilon:
			negative++
		default:
			collinear++
		}
	}

	if positive == 0 && negative == 0 {
		// No turns at all: a flat ring.
		return result
	}
	if positive > 0 && negative > 0 {
		// Mixed turn directions: concave or self-intersecting.
		return result
	}

	result.Convex = true
	result.Strict = collinear == 0
	if positive > 0 {
		result.Winding = 1
	} else {
		result.Winding = -1
	}
	return result
}

// IsStrictlyConvex reports whether the ring is convex with no collinear
// vertex triples.
func IsStrictlyConvex(p Polygon) bool {
	return AnalyzeConvexity(p).Strict
}
