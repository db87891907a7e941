// Package report assembles the final JSON-shaped Report from a finalized
// profiler session (spec C9): a meta block, a row/column summary, and one
// column entry per header merging base stats, optional numeric/categorical/
// histogram blocks, quality metrics, and notes. Field presence is explicit:
// json tags with `omitempty` drop absent optional blocks rather than
// emitting them as null, per spec.md §6.
package report

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DatacertVersion is the generator identity surfaced in meta.datacertVersion.
const DatacertVersion = "1.0.0"

// Meta is the report's generator/input/timing block.
type Meta struct {
	GeneratedAt       string `json:"generatedAt"`
	DatacertVersion   string `json:"datacertVersion"`
	FileName          string `json:"fileName"`
	FileSize          int64  `json:"fileSize"`
	ProcessingTimeMs  int64  `json:"processingTimeMs"`
	SessionID         string `json:"sessionId"`
}

// Summary is the dataset-level row/column count block.
type Summary struct {
	TotalRows    uint64 `json:"totalRows"`
	TotalColumns int    `json:"totalColumns"`
}

// NumericStats mirrors column.NumericStats with 6-decimal-rounded,
// json-tagged fields for export.
type NumericStats struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"stdDev"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
	Sum      float64 `json:"sum"`
	P25      float64 `json:"p25"`
	P50      float64 `json:"p50"`
	P75      float64 `json:"p75"`
	P90      float64 `json:"p90"`
	P95      float64 `json:"p95"`
	P99      float64 `json:"p99"`
}

// TopValue is one categorical top-K entry.
type TopValue struct {
	Value      string  `json:"value"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategoricalStats is the top-K table plus unique count.
type CategoricalStats struct {
	TopValues   []TopValue `json:"topValues"`
	UniqueCount int        `json:"uniqueCount"`
}

// Bin is one histogram bucket.
type Bin struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}

// Histogram is the exported equal-width histogram.
type Histogram struct {
	Bins     []Bin   `json:"bins"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	BinWidth float64 `json:"binWidth"`
}

// Stats is the base + optional blocks for one column.
type Stats struct {
	Count        uint64            `json:"count"`
	Missing      uint64            `json:"missing"`
	Distinct     uint64            `json:"distinct"`
	InferredType string            `json:"inferredType"`
	MinLength    *int              `json:"minLength,omitempty"`
	MaxLength    *int              `json:"maxLength,omitempty"`
	Numeric      *NumericStats     `json:"numeric,omitempty"`
	Categorical  *CategoricalStats `json:"categorical,omitempty"`
	Histogram    *Histogram        `json:"histogram,omitempty"`
}

// Quality is the per-column quality block.
type Quality struct {
	Completeness   float64 `json:"completeness"`
	Uniqueness     float64 `json:"uniqueness"`
	IsPotentialPii bool    `json:"isPotentialPii"`
}

// Column is one header's full exported entry.
type Column struct {
	Name    string   `json:"name"`
	Stats   Stats    `json:"stats"`
	Quality Quality  `json:"quality"`
	Notes   []string `json:"notes,omitempty"`
}

// Report is the root exported document.
type Report struct {
	Meta    Meta     `json:"meta"`
	Summary Summary  `json:"summary"`
	Columns []Column `json:"columns"`
}

// NewSessionID returns a fresh session identifier for meta.sessionId,
// labeling the report without participating in any sketch's determinism.
func NewSessionID() string {
	return uuid.NewString()
}

// round6 rounds a float64 to 6 decimal places via multiply-round-divide,
// per spec.md §6's rounding contract.
func round6(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	const factor = 1e6
	return math.Round(f*factor) / factor
}

// RoundNumeric applies the 6-decimal rounding contract to every numeric
// field.
func RoundNumeric(n NumericStats) NumericStats {
	return NumericStats{
		Min:      round6(n.Min),
		Max:      round6(n.Max),
		Mean:     round6(n.Mean),
		Variance: round6(n.Variance),
		StdDev:   round6(n.StdDev),
		Skewness: round6(n.Skewness),
		Kurtosis: round6(n.Kurtosis),
		Sum:      round6(n.Sum),
		P25:      round6(n.P25),
		P50:      round6(n.P50),
		P75:      round6(n.P75),
		P90:      round6(n.P90),
		P95:      round6(n.P95),
		P99:      round6(n.P99),
	}
}

// NowRFC3339 is the meta.generatedAt timestamp source; callers in tests
// can synthesize a fixed time.Time and format it the same way.
func NowRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
