package geomtest

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tethys-data/coverage.report/geom"
)

func TestRectCircuit(t *testing.T) {
	t.Parallel()

	pts := RectCircuit(0, 0, 10, 4, 7, 5)
	if len(pts) != 20 {
		t.Fatalf("point count = %d, want 20", len(pts))
	}
	if pts[0] != (geom.Point3D{X: 0, Y: 0, Z: 7}) {
		t.Errorf("first point = %+v, want origin corner", pts[0])
	}

	seen := make(map[geom.Point3D]struct{}, len(pts))
	for i, p := range pts {
		if p.Z != 7 {
			t.Errorf("point %d has z = %v, want 7", i, p.Z)
		}
		onEdge := p.X == 0 || p.X == 10 || p.Y == 0 || p.Y == 4
		if !onEdge {
			t.Errorf("point %d = %+v is not on the rectangle perimeter", i, p)
		}
		if _, dup := seen[p]; dup {
			t.Errorf("point %d = %+v appears twice", i, p)
		}
		seen[p] = struct{}{}
	}

	bounds, ok := geom.BoundRect3(pts)
	if !ok {
		t.Fatal("expected bounds for non-empty circuit")
	}
	wantBounds := geom.Rect3{
		Min: geom.Point3D{X: 0, Y: 0, Z: 7},
		Max: geom.Point3D{X: 10, Y: 4, Z: 7},
	}
	if diff := cmp.Diff(wantBounds, bounds); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestRectCircuitClampsPerSide(t *testing.T) {
	t.Parallel()

	pts := RectCircuit(0, 0, 1, 1, 0, 0)
	want := []geom.Point3D{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	if diff := cmp.Diff(want, pts); diff != "" {
		t.Errorf("corner circuit mismatch (-want +got):\n%s", diff)
	}
}

func TestLawnmower(t *testing.T) {
	t.Parallel()

	pts := Lawnmower(0, 0, 4, 2, 1, 3, 3)
	want := []geom.Point3D{
		{X: 0, Y: 0, Z: 1}, {X: 2, Y: 0, Z: 1}, {X: 4, Y: 0, Z: 1},
		{X: 4, Y: 2, Z: 1}, {X: 2, Y: 2, Z: 1}, {X: 0, Y: 2, Z: 1},
		{X: 0, Y: 4, Z: 1}, {X: 2, Y: 4, Z: 1}, {X: 4, Y: 4, Z: 1},
	}
	if diff := cmp.Diff(want, pts); diff != "" {
		t.Errorf("serpentine pattern mismatch (-want +got):\n%s", diff)
	}
}

func TestJitterIsDeterministicAndBounded(t *testing.T) {
	t.Parallel()

	base := Lawnmower(0, 0, 10, 1, 0, 4, 8)
	a := Jitter(base, 0.25, 42)
	b := Jitter(base, 0.25, 42)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different clouds (-a +b):\n%s", diff)
	}

	c := Jitter(base, 0.25, 43)
	if diff := cmp.Diff(a, c); diff == "" {
		t.Error("different seeds produced identical clouds")
	}

	for i := range base {
		if math.Abs(a[i].X-base[i].X) > 0.25 ||
			math.Abs(a[i].Y-base[i].Y) > 0.25 ||
			math.Abs(a[i].Z-base[i].Z) > 0.25 {
			t.Errorf("point %d displaced beyond amplitude: base %+v got %+v", i, base[i], a[i])
		}
	}

	if len(base) > 0 && base[0] != (geom.Point3D{X: 0, Y: 0, Z: 0}) {
		t.Errorf("jitter modified its input: %+v", base[0])
	}
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	in := []geom.Point3D{{X: 1, Y: 2, Z: 3}, {X: -1, Y: 0, Z: 0.5}}
	got := Translate(in, 10, -2, 0.5)
	want := []geom.Point3D{{X: 11, Y: 0, Z: 3.5}, {X: 9, Y: -2, Z: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("translated cloud mismatch (-want +got):\n%s", diff)
	}
	if in[0] != (geom.Point3D{X: 1, Y: 2, Z: 3}) {
		t.Error("translate modified its input")
	}
}
