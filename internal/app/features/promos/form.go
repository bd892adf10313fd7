package promos

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/towdeskhq/towdesk/internal/domain/models"
)

// promoForm carries the raw form values so an invalid submission can be
// re-rendered exactly as typed.
type promoForm struct {
	Code           string
	Type           string
	PercentOff     string
	AmountOff      string
	MaxRedemptions string
	PerUserLimit   string
	MinSubtotal    string
	Active         bool
	ExpiresAt      string
}

func formFromRequest(r *http.Request) promoForm {
	return promoForm{
		Code:           r.FormValue("code"),
		Type:           r.FormValue("type"),
		PercentOff:     r.FormValue("percent_off"),
		AmountOff:      r.FormValue("amount_off"),
		MaxRedemptions: r.FormValue("max_redemptions"),
		PerUserLimit:   r.FormValue("per_user_limit"),
		MinSubtotal:    r.FormValue("min_subtotal"),
		Active:         r.FormValue("active") == "1",
		ExpiresAt:      r.FormValue("expires_at"),
	}
}

// toModel parses the form into a PromoCode. Numeric parse failures are
// reported per field; range rules live in the store so every write path
// shares them.
func (f promoForm) toModel() (models.PromoCode, error) {
	p := models.PromoCode{
		Code:   f.Code,
		Type:   strings.TrimSpace(f.Type),
		Active: f.Active,
	}

	var err error
	if p.PercentOff, err = parseFloat(f.PercentOff, "percent discount"); err != nil {
		return p, err
	}
	if p.AmountOff, err = parseFloat(f.AmountOff, "flat discount"); err != nil {
		return p, err
	}
	if p.MaxRedemptions, err = parseInt(f.MaxRedemptions, "max redemptions"); err != nil {
		return p, err
	}
	if p.PerUserLimit, err = parseInt(f.PerUserLimit, "per-user limit"); err != nil {
		return p, err
	}
	if p.MinSubtotal, err = parseFloat(f.MinSubtotal, "minimum subtotal"); err != nil {
		return p, err
	}

	if v := strings.TrimSpace(f.ExpiresAt); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return p, fmt.Errorf("expiry date must be YYYY-MM-DD")
		}
		p.ExpiresAt = &t
	}
	return p, nil
}

func parseFloat(s, label string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", label)
	}
	return v, nil
}

func parseInt(s, label string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", label)
	}
	return v, nil
}

func formFromModel(p models.PromoCode) promoForm {
	f := promoForm{
		Code:   p.Code,
		Type:   p.Type,
		Active: p.Active,
	}
	if p.PercentOff != 0 {
		f.PercentOff = strconv.FormatFloat(p.PercentOff, 'f', -1, 64)
	}
	if p.AmountOff != 0 {
		f.AmountOff = strconv.FormatFloat(p.AmountOff, 'f', -1, 64)
	}
	if p.MaxRedemptions != 0 {
		f.MaxRedemptions = strconv.Itoa(p.MaxRedemptions)
	}
	if p.PerUserLimit != 0 {
		f.PerUserLimit = strconv.Itoa(p.PerUserLimit)
	}
	if p.MinSubtotal != 0 {
		f.MinSubtotal = strconv.FormatFloat(p.MinSubtotal, 'f', -1, 64)
	}
	if p.ExpiresAt != nil {
		f.ExpiresAt = p.ExpiresAt.Format("2006-01-02")
	}
	return f
}
