// Package column implements the per-header column profile (spec C3):
// incremental type inference, length extremes, sample collection, and
// orchestration of the C1/C2 accumulators in package sketch, finalized into
// a read-only Stats snapshot consumed by package report.
package column

import (
	"github.com/farmanp/datacert/quality"
	"github.com/farmanp/datacert/sketch"
)

// InferredType is one of the five data shapes a column can resolve to at
// finalize, plus Null for an all-missing column.
type InferredType string

const (
	TypeInteger InferredType = "Integer"
	TypeNumeric InferredType = "Numeric"
	TypeString  InferredType = "String"
	TypeBoolean InferredType = "Boolean"
	TypeDate    InferredType = "Date"
	TypeNull    InferredType = "Null"
)

// NumericStats mirrors the report's 14 numeric fields, rounded to 6
// decimals by package report at export time (not here, so internal
// consumers like correlation prep see full precision).
type NumericStats struct {
	Min      float64
	Max      float64
	Mean     float64
	Variance float64
	StdDev   float64
	Skewness float64
	Kurtosis float64
	Sum      float64
	P25      float64
	P50      float64
	P75      float64
	P90      float64
	P95      float64
	P99      float64
}

// CategoricalStats is the top-10 value/count/percentage table plus the
// capped unique counter.
type CategoricalStats struct {
	TopValues   []TopValue
	UniqueCount int
}

// TopValue is one row of the categorical top-K table.
type TopValue struct {
	Value      string
	Count      int
	Percentage float64
}

// AnomalyRows holds capped, 1-based row indices classified as missing,
// PII-suspect, or outlier.
type AnomalyRows struct {
	Missing []int
	PII     []int
	Outlier []int
}

const anomalyRowCap = 1000

func appendCapped(rows []int, row int) []int {
	if len(rows) >= anomalyRowCap {
		return rows
	}
	return append(rows, row)
}

// Stats is the frozen, read-only result of Profile.Finalize.
type Stats struct {
	Name             string
	Count            uint64
	Missing          uint64
	DistinctEstimate uint64
	InferredType     InferredType
	MinLength        int
	MaxLength        int
	HasLength        bool
	Numeric          *NumericStats
	Categorical      *CategoricalStats
	Histogram        *sketch.Histogram
	SampleValues     []string
	Anomalies        AnomalyRows
	Notes            []string

	Completeness float64
	Uniqueness   float64
	QualityScore float64
	Issues       []quality.Issue
}
