// Package money fixes the rupee rounding rule used across pricing and
// negotiation: two decimal places, half away from zero.
package money

import "math"

func Round(v float64) float64 {
	return math.Round(v*100) / 100
}
