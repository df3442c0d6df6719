package skinvault

import "testing"

func TestApplyFee(t *testing.T) {
	testCases := []struct {
		name  string
		gross float64
		want  float64
	}{
		{"Zero", 0, 0},
		{"Negative", -5, 0},
		{"Below band pays minimum rate", 0.10, 0.09},   // 0.10 * (1-0.10)
		{"Band floor", 0.20, 0.18},                     // 0.20 * (1-0.10)
		{"Mid band", 10.50, 9.45},
		{"Band ceiling", 1800, 1565.10},                // 1800 * (1-0.1305)
		{"Above band pays maximum rate", 2000, 1739.00}, // 2000 * (1-0.1305)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ApplyFee(M(tc.gross))
			if !got.Equal(M(tc.want)) {
				t.Errorf("ApplyFee(%v) = %v, want %v", tc.gross, got, M(tc.want))
			}
		})
	}
}

func TestApplyFeeMonotonic(t *testing.T) {
	// Net proceeds must never decrease as the gross price increases,
	// inside the band and out of it.
	prev := Money{}
	for _, gross := range []float64{0.01, 0.20, 1, 5, 10, 50, 100, 500, 1000, 1799, 1800, 1801, 5000} {
		net := ApplyFee(M(gross))
		if net.LessThan(prev) {
			t.Fatalf("ApplyFee not monotonic: ApplyFee(%v) = %v < previous %v", gross, net, prev)
		}
		prev = net
	}
}

func TestApplyFeeRounding(t *testing.T) {
	got := ApplyFee(M(0.33))
	// rate at 0.33 is barely above 10%, net must come back with 2 decimals.
	if got.String() != "$0.30" {
		t.Errorf("ApplyFee(0.33) = %v, want $0.30", got)
	}
}
