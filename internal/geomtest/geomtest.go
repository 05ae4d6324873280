// Package geomtest provides shared trackline fixtures for tests.
//
// This package centralises synthetic survey-line generators so tests
// across packages can build clouds with footprints simple enough to
// reason about overlap expectations by hand.
package geomtest

import (
	"math/rand"

	"github.com/tethys-data/coverage.report/geom"
)

// RectCircuit returns a closed rectangular survey circuit at height z,
// traversed counter-clockwise from (minX, minY) with perSide points per
// side. Each corner appears once and the starting corner is not
// repeated, so the result has 4*perSide points.
func RectCircuit(minX, minY, maxX, maxY, z float64, perSide int) []geom.Point3D {
	if perSide < 1 {
		perSide = 1
	}
	dx := maxX - minX
	dy := maxY - minY
	pts := make([]geom.Point3D, 0, 4*perSide)
	for i := 0; i < perSide; i++ {
		f := float64(i) / float64(perSide)
		pts = append(pts, geom.Point3D{X: minX + dx*f, Y: minY, Z: z})
	}
	for i := 0; i < perSide; i++ {
		f := float64(i) / float64(perSide)
		pts = append(pts, geom.Point3D{X: maxX, Y: minY + dy*f, Z: z})
	}
	for i := 0; i < perSide; i++ {
		f := float64(i) / float64(perSide)
		pts = append(pts, geom.Point3D{X: maxX - dx*f, Y: maxY, Z: z})
	}
	for i := 0; i < perSide; i++ {
		f := float64(i) / float64(perSide)
		pts = append(pts, geom.Point3D{X: minX, Y: maxY - dy*f, Z: z})
	}
	return pts
}

// Lawnmower returns a boustrophedon survey pattern at height z: passes
// parallel runs of length width along X, spaced along Y, alternating
// direction each pass. Each run has perPass points including both ends.
func Lawnmower(x0, y0, width, spacing, z float64, passes, perPass int) []geom.Point3D {
	if passes < 1 {
		passes = 1
	}
	if perPass < 2 {
		perPass = 2
	}
	pts := make([]geom.Point3D, 0, passes*perPass)
	for p := 0; p < passes; p++ {
		y := y0 + float64(p)*spacing
		for i := 0; i < perPass; i++ {
			f := float64(i) / float64(perPass-1)
			if p%2 == 1 {
				f = 1 - f
			}
			pts = append(pts, geom.Point3D{X: x0 + width*f, Y: y, Z: z})
		}
	}
	return pts
}

// Jitter returns a copy of points with each coordinate displaced by at
// most amp, drawn from a seeded source so fixtures are reproducible.
func Jitter(points []geom.Point3D, amp float64, seed int64) []geom.Point3D {
	rng := rand.New(rand.NewSource(seed))
	out := make([]geom.Point3D, len(points))
	for i, p := range points {
		out[i] = geom.Point3D{
			X: p.X + amp*(2*rng.Float64()-1),
			Y: p.Y + amp*(2*rng.Float64()-1),
			Z: p.Z + amp*(2*rng.Float64()-1),
		}
	}
	return out
}

// Translate returns a copy of points shifted by (dx, dy, dz).
func Translate(points []geom.Point3D, dx, dy, dz float64) []geom.Point3D {
	out := make([]geom.Point3D, len(points))
	for i, p := range points {
		out[i] = geom.Point3D{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
	}
	return out
}
