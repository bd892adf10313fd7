package fees

import "testing"

func TestCommissionAndEarnings(t *testing.T) {
	tests := []struct {
		amount         float64
		wantCommission float64
		wantEarnings   float64
	}{
		{100, 20, 80},
		{0, 0, 0},
		{49.99, 10, 39.99},
		{33.33, 6.67, 26.66},
		{0.05, 0.01, 0.04},
	}

	for _, tt := range tests {
		if got := Commission(tt.amount); got != tt.wantCommission {
			t.Errorf("Commission(%v) = %v, want %v", tt.amount, got, tt.wantCommission)
		}
		if got := Earnings(tt.amount); got != tt.wantEarnings {
			t.Errorf("Earnings(%v) = %v, want %v", tt.amount, got, tt.wantEarnings)
		}
	}
}

func TestSplitSumsToAmount(t *testing.T) {
	for _, amount := range []float64{100, 75.50, 12.34, 0.03} {
		sum := Commission(amount) + Earnings(amount)
		if diff := sum - amount; diff > 0.005 || diff < -0.005 {
			t.Errorf("split of %v sums to %v", amount, sum)
		}
	}
}
