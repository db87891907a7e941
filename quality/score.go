package quality

// Score computes the composite column quality score per spec.md §4.7:
// 0.4*completeness + 0.2*uniqueness_weighted + 0.4, minus issue penalties,
// clamped to [0, 1]. uniqueness_weighted is a neutral 0.2 for
// identifier-like string columns in place of uniqueness itself, since high
// uniqueness is expected and desirable for those columns rather than a
// quality signal.
func Score(completeness, uniqueness float64, identifierLike bool, issues []Issue) float64 {
	weighted := uniqueness
	if identifierLike {
		weighted = 1.0
	}
	score := 0.4*completeness + 0.2*weighted + 0.4
	for _, iss := range issues {
		switch iss.Severity {
		case SeverityError:
			score -= 0.3
		case SeverityWarning:
			score -= 0.15
		case SeverityInfo:
			score -= 0.05
		}
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score
}
