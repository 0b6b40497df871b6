package model

import "math"

// Round2 rounds to two decimals, half away from zero. Every monetary and
// tonnage figure in the fixtures goes through it.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
