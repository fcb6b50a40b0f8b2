package service

import "math"

// centavos converts a peso amount to centavos, rounding to the nearest
// centavo so float noise never changes the amount a cashier typed in.
func centavos(pesos float64) int64 {
	return int64(math.Round(pesos * 100))
}
