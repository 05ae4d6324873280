package hull

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// circumcircleEpsilon guards the doubled signed area in the circumcircle
// solve. Triangles flatter than this have no usable circumcircle.
const circumcircleEpsilon = 1e-10

// triangle holds vertex indices into the point slice handed to delaunay.
type triangle struct {
	a, b, c int
}

func (t triangle) edges() [3]triEdge {
	return [3]triEdge{
		newTriEdge(t.a, t.b),
		newTriEdge(t.b, t.c),
		newTriEdge(t.c, t.a),
	}
}

// triEdge is an undirected edge between two vertex indices, normalised so
// U <= V and usable as a map key.
type triEdge struct {
	U, V int
}

func newTriEdge(u, v int) triEdge {
	if u > v {
		u, v = v, u
	}
	return triEdge{U: u, V: v}
}

// circumcircle returns the center and radius of the circle through a, b
// and c. ok is false for (near-)collinear triangles, which have no
// bounded circumcircle.
func circumcircle(a, b, c r2.Vec) (center r2.Vec, radius float64, ok bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < circumcircleEpsilon {
		return r2.Vec{}, 0, false
	}

	aa := r2.Norm2(a)
	bb := r2.Norm2(b)
	cc := r2.Norm2(c)
	center = r2.Vec{
		X: (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d,
		Y: (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d,
	}
	return center, r2.Norm(r2.Sub(center, a)), true
}

// inCircumcircle reports whether p lies strictly inside the circumcircle
// of t. Degenerate triangles contain nothing.
func inCircumcircle(pts []r2.Vec, t triangle, p r2.Vec) bool {
	center, radius, ok := circumcircle(pts[t.a], pts[t.b], pts[t.c])
	if !ok {
		return false
	}
	return r2.Norm(r2.Sub(p, center)) < radius
}

// delaunay triangulates pts with Bowyer-Watson incremental insertion:
// seed a synthetic super-triangle enclosing all points, insert points one
// at a time by removing every triangle whose circumcircle contains the
// point and fanning the cavity boundary back to it, then strip every
// triangle touching the super-triangle.
//
// Returned triangles index into pts. The result is empty when pts has
// fewer than three points or all points are (near-)collinear. Insertion
// follows input order and cavity edges are walked in first-seen order, so
// the triangulation is deterministic.
func delaunay(pts []r2.Vec) []triangle {
	n := len(pts)
	if n < 3 {
		return nil
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	delta := math.Max(maxX-minX, maxY-minY)
	if delta == 0 {
		// All points coincide; any positive extent keeps the
		// super-triangle finite.
		delta = 1
	}
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2

	aug := make([]r2.Vec, n, n+3)
	copy(aug, pts)
	aug = append(aug,
		r2.Vec{X: midX - 20*delta, Y: midY - delta},
		r2.Vec{X: midX, Y: midY + 20*delta},
		r2.Vec{X: midX + 20*delta, Y: midY - delta},
	)

	tris := []triangle{{a: n, b: n + 1, c: n + 2}}

	for p := 0; p < n; p++ {
		pt := aug[p]

		// Triangles whose circumcircle contains the point die and leave
		// a cavity. An interior cavity edge is shared by two dead
		// triangles, a cavity boundary edge by exactly one.
		kept := make([]triangle, 0, len(tris))
		edgeUse := make(map[triEdge]int)
		var cavity []triEdge
		for _, t := range tris {
			if !inCircumcircle(aug, t, pt) {
				kept = append(kept, t)
				continue
			}
			for _, e := range t.edges() {
				if edgeUse[e] == 0 {
					cavity = append(cavity, e)
				}
				edgeUse[e]++
			}
		}

		for _, e := range cavity {
			if edgeUse[e] == 1 {
				kept = append(kept, triangle{a: e.U, b: e.V, c: p})
			}
		}
		tris = kept
	}

	final := tris[:0]
	for _, t := range tris {
		if t.a < n && t.b < n && t.c < n {
			final = append(final, t)
		}
	}
	return final
}
