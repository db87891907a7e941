package column

import (
	"strconv"
	"strings"
)

// isMissing reports whether the already-trimmed cell counts as missing:
// empty, or a case-insensitive match of "null"/"n/a".
func isMissing(trimmed string) bool {
	if trimmed == "" {
		return true
	}
	lower := strings.ToLower(trimmed)
	return lower == "null" || lower == "n/a"
}

// cellKind classifies a single trimmed, non-missing cell in spec order:
// integer, then float, then boolean, then date-shaped, else string.
type cellKind int

const (
	kindInteger cellKind = iota
	kindFloat
	kindBoolean
	kindDate
	kindString
)

func classifyCell(trimmed string) (cellKind, float64, bool) {
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return kindInteger, float64(i), true
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !isNaNOrInf(f) {
		return kindFloat, f, true
	}
	switch strings.ToLower(trimmed) {
	case "true", "false", "t", "f":
		return kindBoolean, 0, false
	}
	if looksLikeDate(trimmed) {
		return kindDate, 0, false
	}
	return kindString, 0, false
}

func isNaNOrInf(f float64) bool {
	return f != f || f > 1.7976931348623157e+308 || f < -1.7976931348623157e+308
}

func looksLikeDate(s string) bool {
	if len(s) < 8 {
		return false
	}
	hasSep := strings.ContainsAny(s, "-/")
	if !hasSep {
		return false
	}
	hasDigit := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			hasDigit = true
			break
		}
	}
	return hasDigit
}
