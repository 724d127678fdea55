package qrng

import "testing"

// TestChiSquareFull runs a large-sample chi-square goodness-of-fit check
// against a uniform distribution over 256 buckets (the low byte of each
// Uint64 draw). It is expensive, so it only runs when testing.Short() is
// false.
func TestChiSquareFull(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping chi-square scenario in short mode")
	}

	s, err := New([]byte("chi square"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	const buckets = 256
	const draws = 10_000_000
	counts := make([]int, buckets)

	for i := 0; i < draws; i++ {
		counts[byte(s.Uint64())]++
	}

	expected := float64(draws) / float64(buckets)
	var chiSquare float64
	for _, c := range counts {
		diff := float64(c) - expected
		chiSquare += diff * diff / expected
	}

	// 255 degrees of freedom: the 99.9% critical value is roughly 330.
	// A well-mixed generator should land comfortably under that; the
	// threshold below is set higher, at 400, to leave margin against
	// flaky failures, while a systematically biased low byte would still
	// blow well past it.
	const criticalValue = 400.0
	if chiSquare > criticalValue {
		t.Errorf("chi-square statistic = %.2f, want <= %.2f over %d buckets / %d draws",
			chiSquare, criticalValue, buckets, draws)
	}
}
