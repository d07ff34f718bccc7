package assert

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"
)

func Equal[T comparable](t *testing.T, actual, expected T) {
	t.Helper()

	if actual != expected {
		t.Errorf("got: %v; want %v", actual, expected)
	}
}

// InDelta fails when actual and expected differ by more than delta.
func InDelta(t *testing.T, actual, expected, delta float64) {
	t.Helper()

	if math.Abs(actual-expected) > delta {
		t.Errorf("got: %v; want %v (±%v)", actual, expected, delta)
	}
}

func True(t *testing.T, actual bool, message string) {
	t.Helper()

	if !actual {
		t.Errorf("expected true: %s", message)
	}
}

func StringContains(t *testing.T, actual, expectedSubstring string) {
	t.Helper()

	if !strings.Contains(actual, expectedSubstring) {
		t.Errorf("got: %q; expected to contain: %q", actual, expectedSubstring)
	}
}

func NilError(t *testing.T, actual error) {
	t.Helper()

	if actual != nil {
		t.Errorf("got: %v; expected: nil", actual)
	}
}

func ErrorIs(t *testing.T, actual, target error) {
	t.Helper()

	if !errors.Is(actual, target) {
		t.Errorf("got: %v; expected error matching: %v", actual, target)
	}
}

func StringSliceEqual(t *testing.T, actual, expected []string) {
	t.Helper()

	if slices.Compare(actual, expected) != 0 {
		t.Errorf("got [%s], expected: [%s]", strings.Join(actual, ", "), strings.Join(expected, ","+
			" "))
	}
}
