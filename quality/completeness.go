package quality

// Completeness computes (count - missing) / count per spec.md §4.7, 1.0
// when count is 0, plus the applicable severity issue, if any.
func Completeness(count, missing uint64) (float64, []Issue) {
	if count == 0 {
		return 1.0, nil
	}
	ratio := float64(count-missing) / float64(count)
	var issues []Issue
	if iss := completenessIssue(ratio); iss != nil {
		issues = append(issues, *iss)
	}
	return ratio, issues
}
