package quality

// Uniqueness computes distinctEstimate / validCount per spec.md §4.7,
// clamped to <= 1.0 and reported as 1.0 when validCount is 0. isString
// selects the "high cardinality" info issue, which only applies to columns
// inferred as string.
func Uniqueness(distinctEstimate, validCount uint64, isString bool) (float64, []Issue) {
	if validCount == 0 {
		return 1.0, nil
	}
	ratio := float64(distinctEstimate) / float64(validCount)
	if ratio > 1.0 {
		ratio = 1.0
	}
	var issues []Issue
	switch {
	case ratio > 0 && ratio <= 0.02:
		issues = append(issues, Issue{Severity: SeverityWarning, Code: "constant", Message: "column is effectively constant"})
	case isString && ratio > 0.9:
		issues = append(issues, Issue{Severity: SeverityInfo, Code: "high_cardinality", Message: "high cardinality string column"})
	}
	return ratio, issues
}

// IsIdentifierLike reports whether a column counts as identifier-like for
// the composite score's neutral uniqueness weighting: string-typed with
// uniqueness >= 0.9.
func IsIdentifierLike(isString bool, uniqueness float64) bool {
	return isString && uniqueness >= 0.9
}
