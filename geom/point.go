// Package geom provides the shared geometric primitives for the coverage
// engine: trackline sample points, plane-frame points, the reference plane,
// and axis-aligned bounds.
//
// Points are plain value types so callers can build tracklines from any
// acquisition source without adapters. Vector arithmetic is delegated to
// gonum's spatial packages rather than reimplemented here.
package geom

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Point3D is a single trackline sample in survey coordinates (metres,
// shared frame). A sample's identity is its position in the trackline
// slice; the engine reports overlap as indices into that slice.
type Point3D struct {
	X float64
	Y float64
	Z float64
}

// Vec returns the point as a gonum r3 vector for spatial arithmetic.
func (p Point3D) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// Point3DFromVec converts a gonum r3 vector back to a sample point.
func Point3DFromVec(v r3.Vec) Point3D {
	return Point3D{X: v.X, Y: v.Y, Z: v.Z}
}

// Point2D is a point expressed in a plane's 2D frame (basis coordinates).
// It is only meaningful relative to the basis that produced it.
type Point2D struct {
	X float64
	Y float64
}

// Vec returns the point as a gonum r2 vector.
func (p Point2D) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Point2DFromVec converts a gonum r2 vector back to a plane-frame point.
func Point2DFromVec(v r2.Vec) Point2D {
	return Point2D{X: v.X, Y: v.Y}
}
