package quality

import "testing"

func TestCompletenessFullColumn(t *testing.T) {
	ratio, issues := Completeness(100, 0)
	if ratio != 1.0 {
		t.Errorf("expected 1.0 got %v", ratio)
	}
	if len(issues) != 0 {
		t.Errorf("expected no issues got %v", issues)
	}
}

func TestCompletenessThresholds(t *testing.T) {
	cases := []struct {
		count, missing uint64
		wantSeverity   Severity
	}{
		{100, 60, SeverityError},   // 0.4
		{100, 20, SeverityWarning}, // 0.8
		{100, 5, SeverityInfo},     // 0.95
	}
	for _, c := range cases {
		_, issues := Completeness(c.count, c.missing)
		if len(issues) != 1 || issues[0].Severity != c.wantSeverity {
			t.Errorf("count=%d missing=%d: expected %v got %v", c.count, c.missing, c.wantSeverity, issues)
		}
	}
}

func TestCompletenessZeroCount(t *testing.T) {
	ratio, issues := Completeness(0, 0)
	if ratio != 1.0 || len(issues) != 0 {
		t.Errorf("expected 1.0/no issues got %v %v", ratio, issues)
	}
}
