package quality

import (
	"strings"

	"github.com/farmanp/datacert/sketch"
)

// DuplicateDetector does exact row deduplication by hashing the full tuple
// of string cells, with a Bloom filter pre-check (sketch.DuplicateFilter)
// adapted from the teacher's bloomfilter.go to skip the exact hash-set
// lookup whenever the filter reports "definitely not seen". The filter
// never decides a duplicate by itself; only the exact set does.
type DuplicateDetector struct {
	filter *sketch.DuplicateFilter
	seen   map[string]struct{}
	total  uint64
	dups   uint64
}

// NewDuplicateDetector sizes the Bloom pre-check for expectedRows rows at a
// 1% target false-positive rate.
func NewDuplicateDetector(expectedRows uint64) *DuplicateDetector {
	return &DuplicateDetector{
		filter: sketch.NewDuplicateFilter(expectedRows, 0.01),
		seen:   make(map[string]struct{}),
	}
}

func rowKey(cells []string) string {
	return strings.Join(cells, "\x1f")
}

// Observe folds one row's cells into the detector and reports whether the
// row is an exact duplicate of a previously observed row.
func (d *DuplicateDetector) Observe(cells []string) bool {
	d.total++
	key := rowKey(cells)
	b := []byte(key)
	if d.filter.MaybeContains(b) {
		if _, ok := d.seen[key]; ok {
			d.dups++
			return true
		}
	}
	d.filter.Add(b)
	d.seen[key] = struct{}{}
	return false
}

// Count returns the number of exact duplicate rows observed.
func (d *DuplicateDetector) Count() uint64 { return d.dups }

// Finalize returns the duplicate percentage over total rows observed and
// the single severity issue it implies, per spec.md §4.7.
func (d *DuplicateDetector) Finalize() (float64, []Issue) {
	if d.total == 0 {
		return 0, nil
	}
	pct := float64(d.dups) / float64(d.total) * 100
	var issues []Issue
	switch {
	case pct > 10:
		issues = append(issues, Issue{Severity: SeverityError, Code: "duplicates_high", Message: "duplicate rows exceed 10%"})
	case pct > 1:
		issues = append(issues, Issue{Severity: SeverityWarning, Code: "duplicates_moderate", Message: "duplicate rows exceed 1%"})
	case pct > 0:
		issues = append(issues, Issue{Severity: SeverityInfo, Code: "duplicates_present", Message: "duplicate rows present"})
	}
	return pct, issues
}
