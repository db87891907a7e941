package quality

import "testing"

func TestDuplicateDetectorExactRows(t *testing.T) {
	d := NewDuplicateDetector(10)
	rows := [][]string{
		{"a", "1"},
		{"b", "2"},
		{"a", "1"},
		{"c", "3"},
		{"a", "1"},
	}
	var dupFlags []bool
	for _, r := range rows {
		dupFlags = append(dupFlags, d.Observe(r))
	}
	if dupFlags[0] || dupFlags[1] || dupFlags[3] {
		t.Errorf("unexpected duplicate flag on first occurrences: %v", dupFlags)
	}
	if !dupFlags[2] || !dupFlags[4] {
		t.Errorf("expected repeats flagged duplicate: %v", dupFlags)
	}
	if d.Count() != 2 {
		t.Errorf("expected 2 duplicates got %d", d.Count())
	}
	pct, issues := d.Finalize()
	if pct != 40.0 {
		t.Errorf("expected 40%% got %v", pct)
	}
	if len(issues) != 1 || issues[0].Severity != SeverityError {
		t.Errorf("expected error severity above 10%%, got %v", issues)
	}
}

func TestDuplicateDetectorNoDuplicates(t *testing.T) {
	d := NewDuplicateDetector(10)
	d.Observe([]string{"a"})
	d.Observe([]string{"b"})
	pct, issues := d.Finalize()
	if pct != 0 || len(issues) != 0 {
		t.Errorf("expected no duplicates, got pct=%v issues=%v", pct, issues)
	}
}
