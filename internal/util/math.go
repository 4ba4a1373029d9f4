package util

import "math"

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// RoundRatio returns round(numerator/denominator * total) using
// round-half-away-from-zero, which is what math.Round implements.
func RoundRatio(numerator, denominator float64, total int) int {
	if denominator == 0 {
		return 0
	}
	return int(math.Round(numerator / denominator * float64(total)))
}
