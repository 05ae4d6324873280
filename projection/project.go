// Package projection maps trackline samples onto a reference plane and
// into that plane's 2D frame.
//
// The pipeline is: orthogonal projection of every sample onto the plane,
// construction of a shared orthonormal basis from the first line's
// projected samples, then flattening of both lines into basis coordinates.
// All three steps preserve input order, so a flattened point at index i
// always corresponds to the caller's sample at index i.
package projection

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tethys-data/coverage.report/geom"
)

// ProjectOntoPlane returns the orthogonal projection of every sample onto
// the plane. The result has the same length and order as points; the input
// is not modified.
//
// A plane with a zero normal yields an error wrapping
// geom.ErrDegeneratePlane rather than NaN coordinates.
func ProjectOntoPlane(points []geom.Point3D, plane geom.Plane) ([]geom.Point3D, error) {
	if err := plane.Validate(); err != nil {
		return nil, fmt.Errorf("failed to project onto plane: %w", err)
	}

	n := plane.Normal()
	nn := r3.Norm2(n)

	out := make([]geom.Point3D, len(points))
	for i, p := range points {
		// Signed distance along the (scaled) normal, then step back to
		// the foot of the perpendicular.
		t := (r3.Dot(n, p.Vec()) + plane.D) / nn
		out[i] = geom.Point3DFromVec(r3.Sub(p.Vec(), r3.Scale(t, n)))
	}
	return out, nil
}

// ErrDegenerateBasis reports that a plane basis cannot be built from the
// given line, typically because the projected first and last samples
// coincide and therefore define no direction.
var ErrDegenerateBasis = errors.New("degenerate basis: line defines no in-plane direction")
