package hull

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/tethys-data/coverage.report/geom"
)

// MonotoneChain computes convex hulls with Andrew's monotone chain
// algorithm.
//
// Algorithm:
//  1. Sort the points lexicographically by (x, then y), stable for exact
//     ties
//  2. Sweep left to right building the lower chain, popping the last
//     accepted vertex while the turn towards the candidate is clockwise
//     or collinear
//  3. Sweep right to left building the upper chain the same way
//  4. Concatenate the chains, dropping the duplicated closing vertex
//
// The result winds counter-clockwise and is strictly convex: collinear
// points never survive as vertices. Inputs of three or fewer points are
// returned unchanged whatever their shape, so callers get a degenerate
// "hull" of the points themselves rather than an error.
type MonotoneChain struct{}

// NewMonotoneChain returns the convex hull strategy.
func NewMonotoneChain() *MonotoneChain {
	return &MonotoneChain{}
}

type indexedPoint struct {
	pt  geom.Point2D
	idx int
}

// turn is the z-component of the cross product (a-o) x (b-o): positive
// when o->a->b turns counter-clockwise, negative when clockwise, zero
// when collinear.
func turn(o, a, b indexedPoint) float64 {
	return r2.Cross(r2.Sub(a.pt.Vec(), o.pt.Vec()), r2.Sub(b.pt.Vec(), o.pt.Vec()))
}

// ComputeHull returns the convex hull of points as an open
// counter-clockwise ring. When keepIndices is set, the polygon records
// the input position of every hull vertex. The input slice is left
// untouched.
func (mc *MonotoneChain) ComputeHull(points []geom.Point2D, keepIndices bool) (Polygon, error) {
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

	work := make([]indexedPoint, n)
	for i, p := range points {
		work[i] = indexedPoint{pt: p, idx: i}
	}
	sort.SliceStable(work, func(i, j int) bool {
		if work[i].pt.X != work[j].pt.X {
			return work[i].pt.X < work[j].pt.X
		}
		return work[i].pt.Y < work[j].pt.Y
	})

	chain := make([]indexedPoint, 0, 2*n)

	// Lower chain.
	for i := 0; i < n; i++ {
		for len(chain) >= 2 && turn(chain[len(chain)-2], chain[len(chain)-1], work[i]) <= 0 {
			chain = chain[:len(chain)-1]
		}
		chain = append(chain, work[i])
	}

	// Upper chain. lower marks where the lower chain ended so pops never
	// eat into it.
	lower := len(chain) + 1
	for i := n - 2; i >= 0; i-- {
		for len(chain) >= lower && turn(chain[len(chain)-2], chain[len(chain)-1], work[i]) <= 0 {
			chain = chain[:len(chain)-1]
		}
		chain = append(chain, work[i])
	}

	// The upper chain re-appends the starting vertex; drop it so the ring
	// stays open.
	chain = chain[:len(chain)-1]

	poly := Polygon{Vertices: make([]geom.Point2D, len(chain))}
	if keepIndices {
		poly.SourceIndices = make([]int, len(chain))
	}
	for i, c := range chain {
		poly.Vertices[i] = c.pt
		if keepIndices {
			poly.SourceIndices[i] = c.idx
		}
	}
	return poly, nil
}

// Verify at compile time that *MonotoneChain implements Computer.
var _ Computer = (*MonotoneChain)(nil)
