package projection

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tethys-data/coverage.report/geom"
)

// degenerateSpanEpsilon is the minimum distance between a line's projected
// first and last samples for them to define a usable axis direction.
const degenerateSpanEpsilon = 1e-6

// basisOrthoTolerance bounds |U·V| for a basis to count as orthonormal.
// The axes come out of a normalised cross product, so anything beyond
// rounding noise indicates broken inputs.
const basisOrthoTolerance = 1e-9

// PlaneBasis is an orthonormal 2D frame embedded in a reference plane.
// Ref is the frame origin, U and V are unit in-plane axes with U·V = 0.
//
// A basis is a plain value: build it once with BuildBasis and pass copies
// around. Flattening both tracklines through the same basis value is what
// makes their 2D coordinates comparable.
type PlaneBasis struct {
	Ref r3.Vec
	U   r3.Vec
	V   r3.Vec
}

// BuildBasis constructs the shared 2D frame from one line's projected
// samples. The frame origin is the first projected sample, U points from
// the first to the last projected sample, and V completes the right-handed
// frame via the plane normal.
//
// Construction fails with an error wrapping ErrDegenerateBasis when the
// line has no extent in the plane (fewer than two samples, or coincident
// first and last projections), and with geom.ErrDegeneratePlane for a zero
// plane normal. It never returns NaN axes.
func BuildBasis(projected []geom.Point3D, plane geom.Plane) (PlaneBasis, error) {
	if err := plane.Validate(); err != nil {
		return PlaneBasis{}, fmt.Errorf("failed to build plane basis: %w", err)
	}
	if len(projected) < 2 {
		return PlaneBasis{}, fmt.Errorf("failed to build plane basis from %d points: %w",
			len(projected), ErrDegenerateBasis)
	}

	first := projected[0].Vec()
	last := projected[len(projected)-1].Vec()

	span := r3.Sub(last, first)
	if r3.Norm(span) < degenerateSpanEpsilon {
		return PlaneBasis{}, fmt.Errorf("failed to build plane basis: first and last samples coincide: %w",
			ErrDegenerateBasis)
	}
	u := r3.Unit(span)

	// The cross product only vanishes when the line direction is parallel
	// to the plane normal, which cannot happen for samples that were
	// actually projected into the plane.
	cross := r3.Cross(plane.Normal(), u)
	if r3.Norm(cross) < degenerateSpanEpsilon {
		return PlaneBasis{}, fmt.Errorf("failed to build plane basis: line direction parallel to plane normal: %w",
			ErrDegenerateBasis)
	}
	v := r3.Unit(cross)

	if !scalar.EqualWithinAbs(r3.Dot(u, v), 0, basisOrthoTolerance) {
		return PlaneBasis{}, fmt.Errorf("failed to build plane basis: axes not orthogonal (U·V = %g): %w",
			r3.Dot(u, v), ErrDegenerateBasis)
	}

	return PlaneBasis{Ref: first, U: u, V: v}, nil
}

// Flatten expresses projected samples in the basis frame. The result has
// the same length and order as projected, so 2D index i corresponds to the
// caller's sample index i.
func (b PlaneBasis) Flatten(projected []geom.Point3D) []geom.Point2D {
	out := make([]geom.Point2D, len(projected))
	for i, p := range projected {
		d := r3.Sub(p.Vec(), b.Ref)
		out[i] = geom.Point2D{X: r3.Dot(d, b.U), Y: r3.Dot(d, b.V)}
	}
	return out
}
