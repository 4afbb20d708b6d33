package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireSymmetric fails t unless data[i] and data[len-1-i] agree within eps.
func RequireSymmetric(t *testing.T, data []float64, eps float64) {
	t.Helper()
	n := len(data)
	for i := 0; i < n/2; i++ {
		if diff := math.Abs(data[i] - data[n-1-i]); diff > eps {
			t.Fatalf("index %d vs %d: %v != %v (diff %v > eps %v)", i, n-1-i, data[i], data[n-1-i], diff, eps)
		}
	}
}

// RequireSum fails t unless the elements of data add up to want within eps.
func RequireSum(t *testing.T, data []float64, want, eps float64) {
	t.Helper()
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	if math.Abs(sum-want) > eps {
		t.Fatalf("sum = %v, want %v (eps %v)", sum, want, eps)
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		maxDiff = math.Max(maxDiff, math.Abs(a[i]-b[i]))
	}
	return maxDiff, nil
}
