package trips

import (
	"testing"

	"github.com/towdeskhq/towdesk/internal/domain/models"
)

func TestTripRow_DerivesFees(t *testing.T) {
	tests := []struct {
		amount         float64
		wantCommission float64
		wantEarnings   float64
	}{
		{100, 20, 80},
		{49.99, 10, 39.99},
		{0, 0, 0},
	}

	for _, tt := range tests {
		row := tripRow{}.from(models.Trip{Amount: tt.amount})
		if row.Commission != tt.wantCommission {
			t.Errorf("amount %v: Commission = %v, want %v", tt.amount, row.Commission, tt.wantCommission)
		}
		if row.Earnings != tt.wantEarnings {
			t.Errorf("amount %v: Earnings = %v, want %v", tt.amount, row.Earnings, tt.wantEarnings)
		}
	}
}
