package hull

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/tethys-data/coverage.report/geom"
)

// onSegmentEpsilon is the maximum perpendicular distance at which a point
// still counts as lying on a polygon edge. Survey coordinates are metres,
// so this only absorbs floating-point noise, not measurement error.
const onSegmentEpsilon = 1e-9

// Position classifies a point relative to a polygon boundary.
type Position int

const (
	// PositionOutside means the point is strictly outside the polygon.
	PositionOutside Position = iota
	// PositionInside means the point is strictly inside the polygon.
	PositionInside
	// PositionBoundary means the point lies on an edge or vertex.
	PositionBoundary
)

// String returns a human-readable name for the position.
func (p Position) String() string {
	switch p {
	case PositionOutside:
		return "outside"
	case PositionInside:
		return "inside"
	case PositionBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}

// Locate classifies pt against poly using even-odd ray casting. Points on
// the boundary, vertices included, report PositionBoundary; each edge is
// tested for exact membership before it is tested for a ray crossing.
//
// Degenerate polygons still classify: a single vertex matches only
// itself, two vertices match the closed segment between them, and an
// empty polygon contains nothing. The polygon may be non-convex; it must
// be a simple ring.
//
// Each call is independent and stateless, so concurrent calls against the
// same polygon are safe.
func Locate(pt geom.Point2D, poly Polygon) Position {
	verts := poly.Vertices
	p := pt.Vec()

	switch len(verts) {
	case 0:
		return PositionOutside
	case 1:
		if onSegment(p, verts[0].Vec(), verts[0].Vec()) {
			return PositionBoundary
		}
		return PositionOutside
	case 2:
		if onSegment(p, verts[0].Vec(), verts[1].Vec()) {
			return PositionBoundary
		}
		return PositionOutside
	}

	// Cheap reject against the ring bounds before walking edges. The
	// bounds are padded so edge points within the membership tolerance
	// are not lost to the pre-check.
	if bounds, ok := geom.BoundRect2(verts); ok {
		if pt.X < bounds.Min.X-onSegmentEpsilon || pt.X > bounds.Max.X+onSegmentEpsilon ||
			pt.Y < bounds.Min.Y-onSegmentEpsilon || pt.Y > bounds.Max.Y+onSegmentEpsilon {
			return PositionOutside
		}
	}

	inside := false
	n := len(verts)
	for i := 0; i < n; i++ {
		a := verts[i].Vec()
		b := verts[(i+1)%n].Vec()
		if onSegment(p, a, b) {
			return PositionBoundary
		}
		if rayIntersectsSegment(p, a, b) {
			inside = !inside
		}
	}
	if inside {
		return PositionInside
	}
	return PositionOutside
}

// Contains reports whether pt is inside or on the boundary of poly.
func Contains(pt geom.Point2D, poly Polygon) bool {
	return Locate(pt, poly) != PositionOutside
}

// onSegment reports whether p lies on the closed segment ab, within
// onSegmentEpsilon perpendicular distance. A zero-length segment reduces
// to a point match.
func onSegment(p, a, b r2.Vec) bool {
	ab := r2.Sub(b, a)
	ap := r2.Sub(p, a)

	len2 := r2.Norm2(ab)
	if len2 < onSegmentEpsilon*onSegmentEpsilon {
		return r2.Norm(ap) <= onSegmentEpsilon
	}
	if math.Abs(r2.Cross(ab, ap))/math.Sqrt(len2) > onSegmentEpsilon {
		return false
	}
	t := r2.Dot(ap, ab) / len2
	return t >= 0 && t <= 1
}

// rayIntersectsSegment reports whether a ray cast from p towards +X
// crosses the segment ab. Adapted from the classic ray-casting
// formulation; the Nextafter nudge lifts the ray off vertex rows so an
// edge pair sharing a vertex is never counted twice.
func rayIntersectsSegment(p, a, b r2.Vec) bool {
	if a.Y > b.Y {
		a, b = b, a
	}
	for p.Y == a.Y || p.Y == b.Y {
		p.Y = math.Nextafter(p.Y, math.Inf(1))
	}
	if p.Y < a.Y || p.Y > b.Y {
		return false
	}
	if a.X > b.X {
		if p.X >= a.X {
			return false
		}
		if p.X < b.X {
			return true
		}
	} else {
		if p.X > b.X {
			return false
		}
		if p.X < a.X {
			return true
		}
	}
	return (p.Y-a.Y)/(p.X-a.X) >= (b.Y-a.Y)/(b.X-a.X)
}
