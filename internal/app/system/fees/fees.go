// Package fees derives the platform commission and driver earnings from a
// trip amount. The split is computed wherever it is displayed and is never
// persisted, so a rate change applies to historic trips too.
package fees

import "math"

// CommissionRate is the platform's share of each trip amount.
const CommissionRate = 0.20

// Commission returns the platform's share, rounded to two decimal places.
func Commission(amount float64) float64 {
	return round2(amount * CommissionRate)
}

// Earnings returns the driver's share: the amount minus the commission.
func Earnings(amount float64) float64 {
	return round2(amount - Commission(amount))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
