package geom

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// planeNormalEpsilon is the minimum squared length of the normal vector for
// a plane to be geometrically usable. Below this the plane equation does not
// define a plane and projection would divide by (near) zero.
const planeNormalEpsilon = 1e-12

// ErrDegeneratePlane reports a plane whose normal vector is numerically zero.
var ErrDegeneratePlane = errors.New("degenerate plane: zero normal vector")

// Plane is the reference plane ax + by + cz + d = 0 in survey coordinates.
// The coefficients come from upstream processing (typically a least-squares
// fit over a survey area); this package treats them as given.
type Plane struct {
	A float64
	B float64
	C float64
	D float64
}

// Normal returns the plane normal (a, b, c). The vector is not normalised;
// callers that need a unit normal must scale it themselves after checking
// Validate.
func (pl Plane) Normal() r3.Vec {
	return r3.Vec{X: pl.A, Y: pl.B, Z: pl.C}
}

// Validate reports whether the plane defines usable geometry. A zero normal
// yields ErrDegeneratePlane; every projection entry point checks this so the
// failure surfaces as an error rather than NaN coordinates downstream.
func (pl Plane) Validate() error {
	if r3.Norm2(pl.Normal()) < planeNormalEpsilon {
		return ErrDegeneratePlane
	}
	return nil
}

// Evaluate returns the signed value of the plane equation at p. The sign
// indicates which side of the plane p lies on; the magnitude is scaled by
// the normal length.
func (pl Plane) Evaluate(p Point3D) float64 {
	return pl.A*p.X + pl.B*p.Y + pl.C*p.Z + pl.D
}

// Distance returns the Euclidean distance from p to the plane. The plane
// must have a non-zero normal (see Validate).
func (pl Plane) Distance(p Point3D) float64 {
	return math.Abs(pl.Evaluate(p)) / r3.Norm(pl.Normal())
}
