package overlap

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tethys-data/coverage.report/geom"
	"github.com/tethys-data/coverage.report/hull"
	"github.com/tethys-data/coverage.report/projection"
)

// Line selectors for line-scoped queries.
const (
	Line1 = 0
	Line2 = 1
)

// ErrInvalidLine reports a line selector outside {Line1, Line2}.
var ErrInvalidLine = errors.New("invalid line selector: must be 0 or 1")

// ErrReleased reports a query for an intermediate that minimal-memory
// mode released during Run.
var ErrReleased = errors.New("intermediate released in minimal-memory mode")

// ErrNotRun reports a query on an engine that has not completed a Run.
var ErrNotRun = errors.New("engine has not run")

// Engine detects the overlap between two survey tracklines: for each
// line, the subset of its points that falls inside the hull of the
// other line after both are projected onto a shared plane and expressed
// in a 2D frame derived from line 1.
//
// An engine is built once per line pair with NewEngine, executed with
// Run, and then queried. It is not safe for concurrent use while Run is
// executing; after Run returns, all queries are read-only and safe to
// call from multiple goroutines.
type Engine struct {
	lines [2][]geom.Point3D
	plane geom.Plane
	opts  Options

	computers [2]hull.Computer

	ran       bool
	basis     projection.PlaneBasis
	projected [2][]geom.Point3D
	flattened [2][]geom.Point2D
	hulls     [2]hull.Polygon
	overlap   [2][]int
	stats     RunStats
}

// NewEngine prepares an engine over the two lines and the projection
// plane. The line slices are borrowed, not copied; callers must not
// modify them for the engine's lifetime.
func NewEngine(line1, line2 []geom.Point3D, plane geom.Plane, opts Options) (*Engine, error) {
	if err := plane.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create overlap engine: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create overlap engine: %w", err)
	}

	e := &Engine{
		lines: [2][]geom.Point3D{line1, line2},
		plane: plane,
		opts:  opts,
	}

	switch {
	case opts.Hull != nil:
		e.computers[0], e.computers[1] = opts.Hull, opts.Hull
	case opts.Method == hull.MethodAlphaShape:
		c1, err := hull.NewAlphaShape(opts.GetAlpha1())
		if err != nil {
			return nil, fmt.Errorf("failed to create overlap engine: %w", err)
		}
		c2, err := hull.NewAlphaShape(opts.GetAlpha2())
		if err != nil {
			return nil, fmt.Errorf("failed to create overlap engine: %w", err)
		}
		e.computers[0], e.computers[1] = c1, c2
	default:
		mc := hull.NewMonotoneChain()
		e.computers[0], e.computers[1] = mc, mc
	}
	return e, nil
}

// Run executes the pipeline and returns the per-line overlap counts.
//
// Stage order: project line 1 onto the plane, derive the 2D frame from
// the projected line 1, flatten line 1, project and flatten line 2,
// compute both hulls, classify line 1 against the hull of line 2, then
// classify line 2 against the hull of line 1. Membership in the
// opposite hull alone decides membership in the overlap; a line is
// never tested against its own hull.
//
// In minimal-memory mode each intermediate is dropped right after its
// last consumer: a projected cloud once its line is flattened, a
// flattened cloud and the opposite hull once that line is classified.
// Counts and overlap index lists are kept in both modes.
//
// An empty line yields zero overlap for both lines without error, and
// no intermediates are built. Run may be called again; it recomputes
// everything from the original inputs.
func (e *Engine) Run() (line1Count, line2Count int, err error) {
	e.reset()

	n1, n2 := len(e.lines[0]), len(e.lines[1])
	if n1 == 0 || n2 == 0 {
		tracef("empty line (line1=%d line2=%d points), overlap is empty", n1, n2)
		e.overlap = [2][]int{{}, {}}
		e.stats = RunStats{PointsLine1: n1, PointsLine2: n2}
		e.ran = true
		return 0, 0, nil
	}

	minimal := e.opts.MinimalMemory

	tracef("projecting line 1 onto plane (%d points)", n1)
	proj1, err := projection.ProjectOntoPlane(e.lines[0], e.plane)
	if err != nil {
		opsf("line 1 projection failed: %v", err)
		return 0, 0, err
	}
	e.projected[0] = proj1

	e.basis, err = projection.BuildBasis(proj1, e.plane)
	if err != nil {
		opsf("basis construction failed: %v", err)
		return 0, 0, err
	}

	tracef("flattening line 1 into plane frame")
	e.flattened[0] = e.basis.Flatten(proj1)
	if minimal {
		e.projected[0] = nil
		diagf("released projected cloud for line 1")
	}

	tracef("projecting line 2 onto plane (%d points)", n2)
	proj2, err := projection.ProjectOntoPlane(e.lines[1], e.plane)
	if err != nil {
		opsf("line 2 projection failed: %v", err)
		return 0, 0, err
	}
	e.projected[1] = proj2

	tracef("flattening line 2 into plane frame")
	e.flattened[1] = e.basis.Flatten(proj2)
	if minimal {
		e.projected[1] = nil
		diagf("released projected cloud for line 2")
	}

	keepIndices := !minimal
	for line := range e.hulls {
		e.hulls[line], err = e.computers[line].ComputeHull(e.flattened[line], keepIndices)
		if err != nil {
			opsf("hull computation failed for line %d: %v", line+1, err)
			return 0, 0, fmt.Errorf("failed to compute hull for line %d: %w", line+1, err)
		}
	}
	hullSize1, hullSize2 := len(e.hulls[0].Vertices), len(e.hulls[1].Vertices)
	diagf("hull sizes: line1=%d line2=%d vertices", hullSize1, hullSize2)

	tracef("classifying line 1 against hull of line 2")
	e.overlap[0] = e.classify(e.flattened[0], e.hulls[1])
	if minimal {
		e.flattened[0] = nil
		e.hulls[1] = hull.Polygon{}
		diagf("released flattened cloud for line 1 and hull of line 2")
	}

	tracef("classifying line 2 against hull of line 1")
	e.overlap[1] = e.classify(e.flattened[1], e.hulls[0])
	if minimal {
		e.flattened[1] = nil
		e.hulls[0] = hull.Polygon{}
		diagf("released flattened cloud for line 2 and hull of line 1")
	}

	e.stats = RunStats{
		PointsLine1:   n1,
		PointsLine2:   n2,
		HullVertices1: hullSize1,
		HullVertices2: hullSize2,
		OverlapLine1:  len(e.overlap[0]),
		OverlapLine2:  len(e.overlap[1]),
	}
	e.ran = true
	tracef("overlap counts: line1=%d line2=%d points", len(e.overlap[0]), len(e.overlap[1]))
	return len(e.overlap[0]), len(e.overlap[1]), nil
}

// reset clears all derived state so Run starts from the inputs alone.
func (e *Engine) reset() {
	e.ran = false
	e.basis = projection.PlaneBasis{}
	e.projected = [2][]geom.Point3D{}
	e.flattened = [2][]geom.Point2D{}
	e.hulls = [2]hull.Polygon{}
	e.overlap = [2][]int{}
	e.stats = RunStats{}
}

// classify returns the indices of the flat points inside or on poly, in
// ascending order. With more than one configured worker the scan fans
// out over fixed point ranges into a preallocated mask, so the result
// is identical to the serial scan.
func (e *Engine) classify(flat []geom.Point2D, poly hull.Polygon) []int {
	workers := e.opts.GetWorkers()
	if workers > len(flat) {
		workers = len(flat)
	}
	if workers <= 1 {
		out := make([]int, 0)
		for i, p := range flat {
			if hull.Contains(p, poly) {
				out = append(out, i)
			}
		}
		return out
	}

	inside := make([]bool, len(flat))
	chunk := (len(flat) + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(flat) {
			hi = len(flat)
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if hull.Contains(flat[i], poly) {
					inside[i] = true
				}
			}
		}(lo, hi)
	}
	wg.Wait()

	out := make([]int, 0)
	for i, in := range inside {
		if in {
			out = append(out, i)
		}
	}
	return out
}
