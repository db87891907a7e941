package profiler

import (
	"math"
	"strconv"
	"strings"
)

// parseFloatFinite parses the trimmed cell as a finite float64 for the
// correlation accumulator, treating missing/non-numeric cells as invalid
// rather than raising, per spec.md §4.6's "missing otherwise" rule.
func parseFloatFinite(cell string) (float64, bool) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
