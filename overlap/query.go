package overlap

import (
	"fmt"

	"github.com/tethys-data/coverage.report/geom"
	"github.com/tethys-data/coverage.report/hull"
	"github.com/tethys-data/coverage.report/projection"
)

// checkQuery validates a line selector and the engine's run state.
func (e *Engine) checkQuery(line int) error {
	if line != Line1 && line != Line2 {
		return fmt.Errorf("line %d: %w", line, ErrInvalidLine)
	}
	if !e.ran {
		return ErrNotRun
	}
	return nil
}

// Count returns how many of the line's points fall inside the hull of
// the other line. Available in both retention modes.
func (e *Engine) Count(line int) (int, error) {
	if err := e.checkQuery(line); err != nil {
		return 0, err
	}
	return len(e.overlap[line]), nil
}

// OverlapIndices returns the indices into the line's original point
// slice whose points fall inside the hull of the other line, ascending.
// Available in both retention modes. The returned slice is a read-only
// view; callers must not modify it.
func (e *Engine) OverlapIndices(line int) ([]int, error) {
	if err := e.checkQuery(line); err != nil {
		return nil, err
	}
	return e.overlap[line], nil
}

// OverlapPoints returns the line's overlap subset as points taken from
// the caller's original line, in input order. The subset is derived
// from the retained index list, so it is available in both retention
// modes. The returned slice is freshly allocated.
func (e *Engine) OverlapPoints(line int) ([]geom.Point3D, error) {
	if err := e.checkQuery(line); err != nil {
		return nil, err
	}
	pts := make([]geom.Point3D, len(e.overlap[line]))
	for i, idx := range e.overlap[line] {
		pts[i] = e.lines[line][idx]
	}
	return pts, nil
}

// Hull returns the line's boundary polygon in the plane frame. Full
// retention only; minimal-memory mode releases the hulls during Run.
func (e *Engine) Hull(line int) (hull.Polygon, error) {
	if err := e.checkQuery(line); err != nil {
		return hull.Polygon{}, err
	}
	if e.opts.MinimalMemory {
		return hull.Polygon{}, ErrReleased
	}
	return e.hulls[line], nil
}

// HullVertexIndices returns the indices into the line's original point
// slice of the points chosen as its hull vertices, in ring order. Full
// retention only; minimal-memory mode never records them. The returned
// slice is a read-only view.
func (e *Engine) HullVertexIndices(line int) ([]int, error) {
	if err := e.checkQuery(line); err != nil {
		return nil, err
	}
	if e.opts.MinimalMemory {
		return nil, ErrReleased
	}
	return e.hulls[line].SourceIndices, nil
}

// ProjectedLine returns the line's orthogonal projection onto the
// plane, one 3D point per input point. Full retention only. The
// returned slice is a read-only view.
func (e *Engine) ProjectedLine(line int) ([]geom.Point3D, error) {
	if err := e.checkQuery(line); err != nil {
		return nil, err
	}
	if e.opts.MinimalMemory {
		return nil, ErrReleased
	}
	return e.projected[line], nil
}

// FlattenedLine returns the line's 2D coordinates in the plane frame,
// one point per input point. Full retention only. The returned slice is
// a read-only view.
func (e *Engine) FlattenedLine(line int) ([]geom.Point2D, error) {
	if err := e.checkQuery(line); err != nil {
		return nil, err
	}
	if e.opts.MinimalMemory {
		return nil, ErrReleased
	}
	return e.flattened[line], nil
}

// Basis returns the plane frame derived from line 1 during Run. It is
// the zero value after a Run that short-circuited on an empty line.
func (e *Engine) Basis() (projection.PlaneBasis, error) {
	if !e.ran {
		return projection.PlaneBasis{}, ErrNotRun
	}
	return e.basis, nil
}

// OverlapBounds2D returns the axis-aligned rectangle in the plane frame
// bounding the union of both lines' overlap points. ok is false when
// either line's overlap is empty. Full retention only; the flattened
// clouds it reads are released in minimal-memory mode.
func (e *Engine) OverlapBounds2D() (r geom.Rect2, ok bool, err error) {
	if !e.ran {
		return geom.Rect2{}, false, ErrNotRun
	}
	if e.opts.MinimalMemory {
		return geom.Rect2{}, false, ErrReleased
	}
	if len(e.overlap[0]) == 0 || len(e.overlap[1]) == 0 {
		return geom.Rect2{}, false, nil
	}

	first := e.flattened[0][e.overlap[0][0]]
	r = geom.Rect2{Min: first, Max: first}
	for line := range e.overlap {
		for _, idx := range e.overlap[line] {
			r = r.Extend(e.flattened[line][idx])
		}
	}
	return r, true, nil
}

// OverlapBounds3D returns the axis-aligned box bounding the union of
// both lines' projected overlap points. ok is false when either line's
// overlap is empty. Full retention only; the projected clouds it reads
// are released in minimal-memory mode.
func (e *Engine) OverlapBounds3D() (r geom.Rect3, ok bool, err error) {
	if !e.ran {
		return geom.Rect3{}, false, ErrNotRun
	}
	if e.opts.MinimalMemory {
		return geom.Rect3{}, false, ErrReleased
	}
	if len(e.overlap[0]) == 0 || len(e.overlap[1]) == 0 {
		return geom.Rect3{}, false, nil
	}

	first := e.projected[0][e.overlap[0][0]]
	r = geom.Rect3{Min: first, Max: first}
	for line := range e.overlap {
		for _, idx := range e.overlap[line] {
			r = r.Extend(e.projected[line][idx])
		}
	}
	return r, true, nil
}
