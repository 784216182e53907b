package services

import (
	"math"
	"strings"
)

// containsAny reports whether any of the needles occurs as a substring of s.
func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// round2 rounds to 2 decimals, the precision used at every scoring boundary.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// clamp clamps a value between min and max.
func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
