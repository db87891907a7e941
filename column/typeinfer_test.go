package column

import "testing"

func TestIsMissing(t *testing.T) {
	for _, v := range []string{"", "null", "NULL", "n/a", "N/A"} {
		if !isMissing(v) {
			t.Errorf("expected %q to be missing", v)
		}
	}
	if isMissing("0") {
		t.Error("expected 0 to not be missing")
	}
}

func TestClassifyCellOrder(t *testing.T) {
	cases := []struct {
		in   string
		want cellKind
	}{
		{"42", kindInteger},
		{"-7", kindInteger},
		{"3.14", kindFloat},
		{"true", kindBoolean},
		{"F", kindBoolean},
		{"2024-01-15", kindDate},
		{"2024/01/15", kindDate},
		{"hello", kindString},
	}
	for _, c := range cases {
		got, _, _ := classifyCell(c.in)
		if got != c.want {
			t.Errorf("classifyCell(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLooksLikeDateRequiresDigitAndLength(t *testing.T) {
	if looksLikeDate("abc-def") {
		t.Error("no digit, should not look like a date")
	}
	if looksLikeDate("1-2") {
		t.Error("too short, should not look like a date")
	}
	if !looksLikeDate("2024-01-15") {
		t.Error("expected valid date shape")
	}
}
