package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tethys-data/coverage.report/geom"
)

func TestBuildBasisOrthonormal(t *testing.T) {
	testCases := []struct {
		name  string
		plane geom.Plane
		line  []geom.Point3D
	}{
		{
			name:  "horizontal_plane",
			plane: geom.Plane{C: 1},
			line: []geom.Point3D{
				{X: 0, Y: 0, Z: 3},
				{X: 1, Y: 0.5, Z: -2},
				{X: 2, Y: 1, Z: 7},
			},
		},
		{
			name:  "tilted_plane",
			plane: geom.Plane{A: 1, B: 2, C: 2, D: -5},
			line: []geom.Point3D{
				{X: 10, Y: -4, Z: 2},
				{X: -3, Y: 8, Z: 1},
			},
		},
		{
			name:  "scaled_plane_coefficients",
			plane: geom.Plane{A: 0, B: 0, C: 50, D: 0},
			line: []geom.Point3D{
				{X: 1, Y: 1, Z: 1},
				{X: 4, Y: 5, Z: 1},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			projected, err := ProjectOntoPlane(tc.line, tc.plane)
			require.NoError(t, err)

			basis, err := BuildBasis(projected, tc.plane)
			require.NoError(t, err)

			assert.InDelta(t, 1, r3.Norm(basis.U), 1e-12, "U must be unit length")
			assert.InDelta(t, 1, r3.Norm(basis.V), 1e-12, "V must be unit length")
			assert.InDelta(t, 0, r3.Dot(basis.U, basis.V), 1e-12, "U and V must be orthogonal")

			n := r3.Unit(tc.plane.Normal())
			assert.InDelta(t, 0, r3.Dot(basis.U, n), 1e-9, "U must lie in the plane")
			assert.InDelta(t, 0, r3.Dot(basis.V, n), 1e-9, "V must lie in the plane")

			assert.Equal(t, projected[0].Vec(), basis.Ref, "origin must be the first projected sample")
		})
	}
}

func TestBuildBasisDegenerate(t *testing.T) {
	plane := geom.Plane{C: 1}

	testCases := []struct {
		name string
		line []geom.Point3D
	}{
		{"empty_line", nil},
		{"single_point", []geom.Point3D{{X: 1, Y: 2, Z: 0}}},
		{"closed_loop", []geom.Point3D{
			{X: 0, Y: 0, Z: 0},
			{X: 5, Y: 5, Z: 0},
			{X: 0, Y: 0, Z: 0},
		}},
		{"sub_epsilon_span", []geom.Point3D{
			{X: 0, Y: 0, Z: 0},
			{X: 1e-9, Y: 0, Z: 0},
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildBasis(tc.line, plane)
			require.ErrorIs(t, err, ErrDegenerateBasis)
		})
	}

	t.Run("zero_normal", func(t *testing.T) {
		_, err := BuildBasis([]geom.Point3D{{X: 0}, {X: 1}}, geom.Plane{})
		require.ErrorIs(t, err, geom.ErrDegeneratePlane)
	})

	// Endpoints that only coincide after projection are just as degenerate:
	// a vertical drop projects to a single point on a horizontal plane.
	t.Run("coincident_after_projection", func(t *testing.T) {
		line := []geom.Point3D{
			{X: 2, Y: 3, Z: 0},
			{X: 2, Y: 3, Z: 10},
		}
		projected, err := ProjectOntoPlane(line, plane)
		require.NoError(t, err)
		_, err = BuildBasis(projected, plane)
		require.ErrorIs(t, err, ErrDegenerateBasis)
	})
}

func TestFlattenKnownFrame(t *testing.T) {
	// Line along +X on the z=0 plane gives the identity frame: U=(1,0,0),
	// V=(0,1,0) via normal x U.
	plane := geom.Plane{C: 1}
	line := []geom.Point3D{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 2, Z: 0},
		{X: 4, Y: 0, Z: 0},
	}

	basis, err := BuildBasis(line, plane)
	require.NoError(t, err)

	flat := basis.Flatten(line)
	require.Len(t, flat, len(line))

	assert.Equal(t, geom.Point2D{X: 0, Y: 0}, flat[0])
	assert.Equal(t, geom.Point2D{X: 1, Y: 2}, flat[1])
	assert.Equal(t, geom.Point2D{X: 4, Y: 0}, flat[2])
}

func TestFlattenLastSampleOnUAxis(t *testing.T) {
	// By construction U points from the first to the last projected
	// sample, so the last sample flattens to (span, 0).
	plane := geom.Plane{A: 1, B: 1, C: 3, D: -2}
	line := []geom.Point3D{
		{X: 4, Y: -2, Z: 9},
		{X: 0, Y: 1, Z: -3},
		{X: -5, Y: 7, Z: 2},
	}

	projected, err := ProjectOntoPlane(line, plane)
	require.NoError(t, err)
	basis, err := BuildBasis(projected, plane)
	require.NoError(t, err)

	flat := basis.Flatten(projected)
	last := flat[len(flat)-1]

	span := r3.Norm(r3.Sub(projected[len(projected)-1].Vec(), projected[0].Vec()))
	assert.InDelta(t, span, last.X, 1e-9)
	assert.InDelta(t, 0, last.Y, 1e-9)
}

func TestFlattenRoundTrip(t *testing.T) {
	// Ref + x*U + y*V must reconstruct every projected sample exactly.
	plane := geom.Plane{A: 0.5, B: -1, C: 2, D: 3}
	line := []geom.Point3D{
		{X: 3.2, Y: 0.1, Z: -4},
		{X: -1.5, Y: 2.25, Z: 0},
		{X: 8, Y: -3, Z: 2.5},
		{X: 0, Y: 0, Z: 12},
	}

	projected, err := ProjectOntoPlane(line, plane)
	require.NoError(t, err)
	basis, err := BuildBasis(projected, plane)
	require.NoError(t, err)

	for i, f := range basis.Flatten(projected) {
		rebuilt := r3.Add(basis.Ref, r3.Add(r3.Scale(f.X, basis.U), r3.Scale(f.Y, basis.V)))
		assert.InDelta(t, 0, r3.Norm(r3.Sub(rebuilt, projected[i].Vec())), 1e-9,
			"sample %d did not survive the round trip", i)
	}
}
