package promostore

import (
	"errors"
	"testing"

	"github.com/towdeskhq/towdesk/internal/domain/models"
)

func TestNormalizeAndValidate_Percent(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		wantErr error
		want    float64
	}{
		{"zero rejected", 0, errBadPercent, 0},
		{"negative rejected", -5, errBadPercent, 0},
		{"over 100 rejected", 100.01, errBadPercent, 0},
		{"boundary 100 allowed", 100, nil, 100},
		{"rounded to two decimals", 45.5, nil, 45.5},
		{"rounds long fraction", 33.333, nil, 33.33},
		{"rounds half up", 12.345, nil, 12.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.PromoCode{Code: "tow20", Type: models.PromoPercent, PercentOff: tt.percent}
			got, err := normalizeAndValidate(p)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got.PercentOff != tt.want {
				t.Errorf("PercentOff = %v, want %v", got.PercentOff, tt.want)
			}
		})
	}
}

func TestNormalizeAndValidate_Flat(t *testing.T) {
	p := models.PromoCode{Code: "save5", Type: models.PromoFlat, AmountOff: 5}
	got, err := normalizeAndValidate(p)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if got.AmountOff != 5 {
		t.Errorf("AmountOff = %v", got.AmountOff)
	}

	p.AmountOff = 0
	if _, err := normalizeAndValidate(p); !errors.Is(err, errBadAmount) {
		t.Errorf("zero flat amount err = %v, want errBadAmount", err)
	}
}

func TestNormalizeAndValidate_CodeUppercased(t *testing.T) {
	p := models.PromoCode{Code: " tow20 ", Type: models.PromoFlat, AmountOff: 1}
	got, err := normalizeAndValidate(p)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if got.Code != "TOW20" {
		t.Errorf("Code = %q, want TOW20", got.Code)
	}
}

func TestNormalizeAndValidate_RequiredAndType(t *testing.T) {
	if _, err := normalizeAndValidate(models.PromoCode{Type: models.PromoFlat, AmountOff: 1}); !errors.Is(err, errNoCode) {
		t.Errorf("missing code err = %v", err)
	}
	if _, err := normalizeAndValidate(models.PromoCode{Code: "X", Type: "bogo"}); !errors.Is(err, errBadType) {
		t.Errorf("bad type err = %v", err)
	}
}

func TestNormalizeAndValidate_Limits(t *testing.T) {
	p := models.PromoCode{Code: "X", Type: models.PromoFlat, AmountOff: 1, MaxRedemptions: -1}
	if _, err := normalizeAndValidate(p); !errors.Is(err, errBadLimits) {
		t.Errorf("negative maxRedemptions err = %v", err)
	}
}

func TestNormalizeAndValidate_ClearsOtherDiscount(t *testing.T) {
	p := models.PromoCode{Code: "X", Type: models.PromoPercent, PercentOff: 10, AmountOff: 99}
	got, err := normalizeAndValidate(p)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if got.AmountOff != 0 {
		t.Errorf("AmountOff = %v, want 0 for percent type", got.AmountOff)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{45.5, 45.5},
		{45.555, 45.56},
		{45.554, 45.55},
		{100, 100},
		{0.005, 0.01},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
