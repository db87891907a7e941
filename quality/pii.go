package quality

import (
	"math"
	"regexp"
	"strings"
)

// piiKind is evaluated in severity order: SSN > CreditCard > Email > Phone
// > IP > DoB > Postal, matching spec.md §4.7's precedence list.
type piiKind int

const (
	piiSSN piiKind = iota
	piiCreditCard
	piiEmail
	piiPhone
	piiIP
	piiDoB
	piiPostal
)

var piiOrder = []piiKind{piiSSN, piiCreditCard, piiEmail, piiPhone, piiIP, piiDoB, piiPostal}

var piiSeverity = map[piiKind]Severity{
	piiSSN:        SeverityError,
	piiCreditCard: SeverityError,
	piiEmail:      SeverityWarning,
	piiPhone:      SeverityWarning,
	piiIP:         SeverityWarning,
	piiDoB:        SeverityWarning,
	piiPostal:     SeverityInfo,
}

var piiCode = map[piiKind]string{
	piiSSN:        "pii_ssn",
	piiCreditCard: "pii_credit_card",
	piiEmail:      "pii_email",
	piiPhone:      "pii_phone",
	piiIP:         "pii_ip",
	piiDoB:        "pii_dob",
	piiPostal:     "pii_postal",
}

var (
	reSSN        = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
	reCreditCard = regexp.MustCompile(`^\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{1,7}$`)
	reEmail      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	rePhone      = regexp.MustCompile(`^\+?1?[-. ]?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}$`)
	reIPv4       = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)
	reDoB        = regexp.MustCompile(`^\d{4}[-/]\d{2}[-/]\d{2}$`)
	rePostalUS   = regexp.MustCompile(`^\d{5}-\d{4}$`)
	rePostalCA   = regexp.MustCompile(`^[A-Za-z]\d[A-Za-z] ?\d[A-Za-z]\d$`)
)

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func matchesKind(kind piiKind, s string) bool {
	switch kind {
	case piiSSN:
		return len(s) == 11 && countDigits(s) == 9 && reSSN.MatchString(s)
	case piiCreditCard:
		digits := countDigits(s)
		return len(s) > 13 && digits >= 13 && digits <= 19 && reCreditCard.MatchString(s)
	case piiEmail:
		return reEmail.MatchString(s)
	case piiPhone:
		return rePhone.MatchString(s)
	case piiIP:
		return reIPv4.MatchString(s)
	case piiDoB:
		return reDoB.MatchString(s)
	case piiPostal:
		return rePostalUS.MatchString(s) || rePostalCA.MatchString(s)
	}
	return false
}

// nameHint reports whether the lowercased column name suggests the given
// PII kind, with the explicit exclusions from spec.md §4.7 (e.g. "name"
// columns that are actually file/path/table/column/host references).
func nameHint(kind piiKind, lowerName string) bool {
	excluded := func() bool {
		for _, x := range []string{"file", "path", "table", "column", "host"} {
			if strings.Contains(lowerName, x) {
				return true
			}
		}
		return false
	}
	switch kind {
	case piiSSN:
		return strings.Contains(lowerName, "ssn") || strings.Contains(lowerName, "social")
	case piiCreditCard:
		return strings.Contains(lowerName, "card") || strings.Contains(lowerName, "credit")
	case piiEmail:
		return strings.Contains(lowerName, "email") || strings.Contains(lowerName, "mail")
	case piiPhone:
		return strings.Contains(lowerName, "phone") || strings.Contains(lowerName, "mobile") || strings.Contains(lowerName, "tel")
	case piiIP:
		return strings.Contains(lowerName, "ip") && !excluded()
	case piiDoB:
		return strings.Contains(lowerName, "birth") || strings.Contains(lowerName, "dob")
	case piiPostal:
		return strings.Contains(lowerName, "zip") || strings.Contains(lowerName, "postal")
	}
	if !excluded() && strings.Contains(lowerName, "name") {
		return true
	}
	return false
}

// Sample pairs a non-missing cell value with its 1-based source row index,
// used both for PII content-regex evaluation and for row reporting.
type Sample struct {
	Value string
	Row   int
}

// DetectPII evaluates up to 100 samples against the content regex table and
// the column-name heuristic, per spec.md §4.7. It returns at most one
// issue, for the first kind in piiOrder that fires, and the row indices of
// samples that matched that kind. Content
// signal wins: a kind whose regex matches enough samples is reported before
// any fallback is considered. When content alone does not clear the
// threshold, a name hint is used as a fallback signal in its own right (so
// e.g. a column named "email_address" full of unparseable placeholder text
// still flags as a possible email column), and for DoB the hint also lowers
// the match threshold rather than only acting as a zero-match fallback.
func DetectPII(columnName string, samples []Sample) ([]Issue, []int) {
	lowerName := strings.ToLower(columnName)
	n := len(samples)
	for _, kind := range piiOrder {
		hinted := nameHint(kind, lowerName)
		if kind == piiPostal && !hinted {
			// postal requires the column-name hint regardless of content match count
			continue
		}
		var matchedRows []int
		for _, s := range samples {
			if matchesKind(kind, s.Value) {
				matchedRows = append(matchedRows, s.Row)
			}
		}
		threshold := thresholdFor(n, kind, hinted)
		if len(matchedRows) >= threshold {
			return []Issue{{Severity: piiSeverity[kind], Code: piiCode[kind], Message: "possible " + piiCode[kind] + " content"}}, matchedRows
		}
		if hinted && kind != piiPostal {
			// name signal used as fallback when content didn't clear the
			// threshold on its own.
			return []Issue{{Severity: piiSeverity[kind], Code: piiCode[kind], Message: "possible " + piiCode[kind] + " column (name signal)"}}, matchedRows
		}
	}
	return nil, nil
}

// thresholdFor is max(1, ceil(0.3*n)), halved (floor, min 1) for DoB when
// the column-name hint is present, per spec.md's "name signal ... used as
// fallback and (for DoB) to lower the threshold". Other kinds keep the
// name hint purely as the zero-match fallback path in DetectPII rather
// than an early threshold reduction.
func thresholdFor(n int, kind piiKind, hinted bool) int {
	base := int(math.Ceil(0.3 * float64(n)))
	if base < 1 {
		base = 1
	}
	if hinted && kind == piiDoB {
		base = base / 2
		if base < 1 {
			base = 1
		}
	}
	return base
}
