package hull

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/tethys-data/coverage.report/geom"
)

// ErrDegenerateInput reports a point set that bounds no area, such as all
// points collinear or coincident, for which no concave hull exists.
var ErrDegenerateInput = errors.New("degenerate input: points bound no area")

// ErrAlphaTooSmall reports an alpha radius below the point spacing, which
// leaves no triangle in the alpha shape.
var ErrAlphaTooSmall = errors.New("alpha too small: no triangle within alpha radius")

// AlphaShape computes concave hulls from the alpha shape of the point set.
//
// Algorithm:
//  1. Delaunay-triangulate the distinct input points
//  2. Keep triangles whose circumradius is at most Alpha
//  3. Collect edges used by exactly one kept triangle; these form the
//     shape boundary
//  4. Chain boundary edges into closed loops and take the loop enclosing
//     the largest area as the hull ring, oriented counter-clockwise
//
// Alpha is the circumradius cap in plane-frame units: smaller values
// follow the point set more tightly, larger values approach the convex
// hull. Inputs of three or fewer points are returned unchanged exactly
// like the monotone chain strategy, so degenerate lines behave the same
// under either method.
//
// Failure is explicit, never a silent convex fallback: an alpha below the
// point spacing yields ErrAlphaTooSmall, a point set that bounds no area
// yields ErrDegenerateInput.
type AlphaShape struct {
	alpha float64
}

// NewAlphaShape returns the concave strategy for the given alpha radius.
// Alpha must be positive and finite, otherwise ErrInvalidAlpha.
func NewAlphaShape(alpha float64) (*AlphaShape, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha <= 0 {
		return nil, fmt.Errorf("invalid alpha %v: %w", alpha, ErrInvalidAlpha)
	}
	return &AlphaShape{alpha: alpha}, nil
}

// Alpha returns the configured circumradius cap.
func (as *AlphaShape) Alpha() float64 {
	return as.alpha
}

// ComputeHull returns the alpha-shape boundary of points as an open
// counter-clockwise ring. When keepIndices is set, the polygon records
// the input position of every hull vertex (the first occurrence, for
// duplicated positions). The input slice is left untouched.
func (as *AlphaShape) ComputeHull(points []geom.Point2D, keepIndices bool) (Polygon, error) {
	n := len(points)
	if n <= 3 {
		poly := Polygon{Vertices: append([]geom.Point2D(nil), points...)}
		if keepIndices {
			poly.SourceIndices = make([]int, n)
			for i := range poly.SourceIndices {
				poly.SourceIndices[i] = i
			}
		}
		return poly, nil
	}

	// Exact duplicates would seed zero-area triangles that break the
	// cavity bookkeeping; triangulate distinct positions and remember
	// each one's first input index.
	pts := make([]r2.Vec, 0, n)
	firstIndex := make([]int, 0, n)
	seen := make(map[geom.Point2D]struct{}, n)
	for i, p := range points {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		pts = append(pts, p.Vec())
		firstIndex = append(firstIndex, i)
	}
	if len(pts) < 3 {
		return Polygon{}, fmt.Errorf("alpha shape of %d distinct points: %w", len(pts), ErrDegenerateInput)
	}

	tris := delaunay(pts)
	if len(tris) == 0 {
		return Polygon{}, fmt.Errorf("alpha shape: %w", ErrDegenerateInput)
	}

	shape := make([]triangle, 0, len(tris))
	for _, t := range tris {
		if _, radius, ok := circumcircle(pts[t.a], pts[t.b], pts[t.c]); ok && radius <= as.alpha {
			shape = append(shape, t)
		}
	}
	if len(shape) == 0 {
		return Polygon{}, fmt.Errorf("alpha %v below point spacing: %w", as.alpha, ErrAlphaTooSmall)
	}

	loop, err := boundaryLoop(pts, shape)
	if err != nil {
		return Polygon{}, err
	}

	poly := Polygon{Vertices: make([]geom.Point2D, len(loop))}
	if keepIndices {
		poly.SourceIndices = make([]int, len(loop))
	}
	for i, v := range loop {
		poly.Vertices[i] = geom.Point2DFromVec(pts[v])
		if keepIndices {
			poly.SourceIndices[i] = firstIndex[v]
		}
	}
	return poly, nil
}

// boundaryLoop extracts the outer boundary of the kept triangles: edges
// used by exactly one triangle, chained into closed loops. The loop
// enclosing the largest absolute area wins; smaller loops are interior
// holes or detached fragments and do not contribute to the coverage
// boundary. The winning loop is returned counter-clockwise.
func boundaryLoop(pts []r2.Vec, shape []triangle) ([]int, error) {
	edgeUse := make(map[triEdge]int)
	var order []triEdge
	for _, t := range shape {
		for _, e := range t.edges() {
			if edgeUse[e] == 0 {
				order = append(order, e)
			}
			edgeUse[e]++
		}
	}

	// Boundary adjacency, insertion-ordered so loop walks are
	// deterministic.
	adjacent := make(map[int][]int)
	unused := make(map[triEdge]bool)
	var boundary []triEdge
	for _, e := range order {
		if edgeUse[e] == 1 {
			boundary = append(boundary, e)
			unused[e] = true
			adjacent[e.U] = append(adjacent[e.U], e.V)
			adjacent[e.V] = append(adjacent[e.V], e.U)
		}
	}
	if len(boundary) < 3 {
		return nil, fmt.Errorf("alpha shape boundary has %d edges: %w", len(boundary), ErrDegenerateInput)
	}

	var best []int
	var bestArea float64
	for _, start := range boundary {
		if !unused[start] {
			continue
		}
		unused[start] = false
		loop := []int{start.U, start.V}
		cur := start.V
		closed := false
		for !closed {
			advanced := false
			for _, w := range adjacent[cur] {
				e := newTriEdge(cur, w)
				if !unused[e] {
					continue
				}
				unused[e] = false
				if w == loop[0] {
					closed = true
				} else {
					loop = append(loop, w)
				}
				cur = w
				advanced = true
				break
			}
			if !advanced {
				// Open chain from a pinched boundary; it cannot bound
				// the coverage area.
				break
			}
		}
		if !closed || len(loop) < 3 {
			continue
		}
		if area := math.Abs(loopArea(pts, loop)); area > bestArea {
			bestArea = area
			best = loop
		}
	}
	if best == nil {
		return nil, fmt.Errorf("alpha shape boundary does not close: %w", ErrDegenerateInput)
	}

	if loopArea(pts, best) < 0 {
		for i, j := 0, len(best)-1; i < j; i, j = i+1, j-1 {
			best[i], best[j] = best[j], best[i]
		}
	}
	return best, nil
}

// loopArea is the signed shoelace area of the vertex loop over pts.
func loopArea(pts []r2.Vec, loop []int) float64 {
	var sum float64
	for i := 0; i < len(loop); i++ {
		a := pts[loop[i]]
		b := pts[loop[(i+1)%len(loop)]]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Verify at compile time that *AlphaShape implements Computer.
var _ Computer = (*AlphaShape)(nil)
