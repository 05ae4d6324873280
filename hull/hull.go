// Package hull computes 2D boundary polygons for trackline point sets and
// classifies points against them.
//
// Two interchangeable strategies are provided behind the Computer
// interface: MonotoneChain builds the convex hull and is fully
// self-contained; AlphaShape builds a concave boundary from a Delaunay
// triangulation and follows the input shape more closely at the cost of an
// alpha tuning parameter. Strategy selection is explicit; an unknown
// selector is a configuration error, never a silent default.
package hull

import (
	"errors"
	"fmt"

	"github.com/tethys-data/coverage.report/geom"
)

// ErrUnknownMethod reports a hull method selector outside the supported
// set. Selection must be explicit; there is no default strategy.
var ErrUnknownMethod = errors.New("unknown hull method")

// ErrInvalidAlpha reports a non-positive alpha radius for the alpha-shape
// strategy.
var ErrInvalidAlpha = errors.New("alpha must be positive")

// Method selects a hull computation strategy.
type Method int

const (
	// MethodMonotoneChain selects the convex hull via Andrew's monotone
	// chain algorithm.
	MethodMonotoneChain Method = iota
	// MethodAlphaShape selects the concave hull via alpha shapes over a
	// Delaunay triangulation.
	MethodAlphaShape
)

// String returns the canonical selector for the method.
func (m Method) String() string {
	switch m {
	case MethodMonotoneChain:
		return "monotone-chain"
	case MethodAlphaShape:
		return "alpha-shape"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a selector string to a Method. Unknown selectors,
// including the empty string, yield an error wrapping ErrUnknownMethod.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "monotone-chain":
		return MethodMonotoneChain, nil
	case "alpha-shape":
		return MethodAlphaShape, nil
	default:
		return 0, fmt.Errorf("invalid hull method %q: expected monotone-chain or alpha-shape: %w",
			s, ErrUnknownMethod)
	}
}

// Computer produces a boundary polygon for a set of plane-frame points.
//
// Implementations must return vertices as an open ring (the boundary
// closes implicitly from the last vertex to the first) and, when
// keepIndices is set, record each vertex's position in the input sequence
// in Polygon.SourceIndices. The input slice is never modified.
type Computer interface {
	ComputeHull(points []geom.Point2D, keepIndices bool) (Polygon, error)
}

// NewComputer returns the strategy for m. alpha parameterizes the
// alpha-shape strategy and is ignored by the monotone chain.
func NewComputer(m Method, alpha float64) (Computer, error) {
	switch m {
	case MethodMonotoneChain:
		return NewMonotoneChain(), nil
	case MethodAlphaShape:
		return NewAlphaShape(alpha)
	default:
		return nil, fmt.Errorf("invalid hull method %d: %w", int(m), ErrUnknownMethod)
	}
}
