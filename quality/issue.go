// Package quality implements the completeness, uniqueness, PII, and
// duplicate-detection rules of spec C7, plus the composite quality score,
// grounded on the teacher's plain-struct accumulator style (bmkessler-
// streamstats has no quality/validation layer of its own, so this package's
// shape follows the ambient error/config conventions adopted in SPEC_FULL.md
// rather than a specific teacher file).
package quality

// Severity is the ordered severity of a quality issue.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Issue is a single quality finding attached to a column or to the dataset.
type Issue struct {
	Severity Severity
	Code     string
	Message  string
}

func completenessIssue(ratio float64) *Issue {
	switch {
	case ratio < 0.5:
		return &Issue{Severity: SeverityError, Code: "completeness_low", Message: "completeness below 50%"}
	case ratio < 0.9:
		return &Issue{Severity: SeverityWarning, Code: "completeness_moderate", Message: "completeness below 90%"}
	case ratio < 1.0:
		return &Issue{Severity: SeverityInfo, Code: "completeness_partial", Message: "some values missing"}
	default:
		return nil
	}
}
