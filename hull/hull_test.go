package hull

import (
	"errors"
	"testing"
)

func TestParseMethod(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		want      Method
		expectErr bool
	}{
		{"monotone_chain", "monotone-chain", MethodMonotoneChain, false},
		{"alpha_shape", "alpha-shape", MethodAlphaShape, false},
		{"empty", "", 0, true},
		{"unknown", "quickhull", 0, true},
		{"wrong_case", "Monotone-Chain", 0, true},
		{"whitespace", " monotone-chain", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMethod(tc.input)
			if tc.expectErr {
				if !errors.Is(err, ErrUnknownMethod) {
					t.Errorf("Expected ErrUnknownMethod for %q, got %v", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ParseMethod(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestMethodStringRoundTrip(t *testing.T) {
	for _, m := range []Method{MethodMonotoneChain, MethodAlphaShape} {
		parsed, err := ParseMethod(m.String())
		if err != nil {
			t.Fatalf("ParseMethod(%q) failed: %v", m.String(), err)
		}
		if parsed != m {
			t.Errorf("Round trip of %v gave %v", m, parsed)
		}
	}
}

func TestNewComputer(t *testing.T) {
	t.Run("monotone_chain", func(t *testing.T) {
		c, err := NewComputer(MethodMonotoneChain, 0)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if _, ok := c.(*MonotoneChain); !ok {
			t.Errorf("Computer is %T, want *MonotoneChain", c)
		}
	})

	t.Run("alpha_shape", func(t *testing.T) {
		c, err := NewComputer(MethodAlphaShape, 1.5)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		as, ok := c.(*AlphaShape)
		if !ok {
			t.Fatalf("Computer is %T, want *AlphaShape", c)
		}
		if as.Alpha() != 1.5 {
			t.Errorf("Alpha = %v, want 1.5", as.Alpha())
		}
	})

	t.Run("alpha_shape_bad_alpha", func(t *testing.T) {
		if _, err := NewComputer(MethodAlphaShape, -1); !errors.Is(err, ErrInvalidAlpha) {
			t.Errorf("Expected ErrInvalidAlpha, got %v", err)
		}
	})

	t.Run("unknown_method", func(t *testing.T) {
		if _, err := NewComputer(Method(42), 1); !errors.Is(err, ErrUnknownMethod) {
			t.Errorf("Expected ErrUnknownMethod, got %v", err)
		}
	})
}
