package overlap

import (
	"fmt"
	"math"

	"github.com/tethys-data/coverage.report/hull"
)

// Options configures an overlap engine.
//
// The zero value is a valid configuration: monotone-chain hulls, full
// retention, serial classification. The Get* methods provide fallback
// defaults for fields left at zero, so callers can set only what they
// need.
type Options struct {
	// Method selects the hull algorithm applied to both lines.
	Method hull.Method

	// Alpha1 and Alpha2 are the per-line alpha radii for the
	// alpha-shape method. Zero means the default of 1.0. Ignored by
	// the monotone-chain method.
	Alpha1 float64
	Alpha2 float64

	// MinimalMemory releases each pipeline intermediate at a fixed
	// point right after its last consumer. Overlap counts and index
	// lists are unaffected; projected clouds, flattened clouds and
	// hull vertex indices become unavailable to later queries.
	MinimalMemory bool

	// Workers caps the goroutines used to classify points against a
	// hull. Zero or one means serial classification.
	Workers int

	// Hull overrides the computer built from Method and the alphas.
	// When set it is used for both lines and Method, Alpha1 and
	// Alpha2 are ignored.
	Hull hull.Computer
}

// Validate checks the options for values the engine cannot run with.
func (o Options) Validate() error {
	if o.Hull == nil {
		switch o.Method {
		case hull.MethodMonotoneChain, hull.MethodAlphaShape:
		default:
			return fmt.Errorf("invalid hull method %d: %w", int(o.Method), hull.ErrUnknownMethod)
		}
	}
	if err := validateAlpha("alpha1", o.Alpha1); err != nil {
		return err
	}
	if err := validateAlpha("alpha2", o.Alpha2); err != nil {
		return err
	}
	if o.Workers < 0 {
		return fmt.Errorf("invalid workers %d: must be zero or positive", o.Workers)
	}
	return nil
}

func validateAlpha(name string, alpha float64) error {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return fmt.Errorf("invalid %s %v: must be finite", name, alpha)
	}
	if alpha < 0 {
		return fmt.Errorf("invalid %s %v: must be zero (default) or positive", name, alpha)
	}
	return nil
}

// GetAlpha1 returns the alpha radius for line 1, defaulting to 1.0.
func (o Options) GetAlpha1() float64 {
	if o.Alpha1 > 0 {
		return o.Alpha1
	}
	return 1.0
}

// GetAlpha2 returns the alpha radius for line 2, defaulting to 1.0.
func (o Options) GetAlpha2() float64 {
	if o.Alpha2 > 0 {
		return o.Alpha2
	}
	return 1.0
}

// GetWorkers returns the classification worker count, defaulting to 1.
func (o Options) GetWorkers() int {
	if o.Workers > 1 {
		return o.Workers
	}
	return 1
}
