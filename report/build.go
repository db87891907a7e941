package report

import (
	"time"

	"github.com/farmanp/datacert/column"
)

// Input is everything Build needs to assemble one Report: the finalized
// column stats in header order, the file descriptor, and timing.
type Input struct {
	FileName      string
	FileSize      int64
	TotalRows     uint64
	Columns       []column.Stats
	StartedAt     time.Time
	FinishedAt    time.Time
}

// Build merges a finalized session's column stats into the exported
// Report shape, per spec.md §4.9 / §6.
func Build(in Input) Report {
	cols := make([]Column, len(in.Columns))
	for i, cs := range in.Columns {
		cols[i] = buildColumn(cs)
	}
	return Report{
		Meta: Meta{
			GeneratedAt:      NowRFC3339(in.FinishedAt),
			DatacertVersion:  DatacertVersion,
			FileName:         in.FileName,
			FileSize:         in.FileSize,
			ProcessingTimeMs: in.FinishedAt.Sub(in.StartedAt).Milliseconds(),
			SessionID:        NewSessionID(),
		},
		Summary: Summary{
			TotalRows:    in.TotalRows,
			TotalColumns: len(in.Columns),
		},
		Columns: cols,
	}
}

func buildColumn(cs column.Stats) Column {
	stats := Stats{
		Count:        cs.Count,
		Missing:      cs.Missing,
		Distinct:     cs.DistinctEstimate,
		InferredType: string(cs.InferredType),
	}
	if cs.HasLength {
		minLen, maxLen := cs.MinLength, cs.MaxLength
		stats.MinLength = &minLen
		stats.MaxLength = &maxLen
	}
	if cs.Numeric != nil {
		n := RoundNumeric(NumericStats{
			Min: cs.Numeric.Min, Max: cs.Numeric.Max, Mean: cs.Numeric.Mean,
			Variance: cs.Numeric.Variance, StdDev: cs.Numeric.StdDev,
			Skewness: cs.Numeric.Skewness, Kurtosis: cs.Numeric.Kurtosis,
			Sum: cs.Numeric.Sum, P25: cs.Numeric.P25, P50: cs.Numeric.P50,
			P75: cs.Numeric.P75, P90: cs.Numeric.P90, P95: cs.Numeric.P95, P99: cs.Numeric.P99,
		})
		stats.Numeric = &n
	}
	if cs.Categorical != nil {
		values := make([]TopValue, len(cs.Categorical.TopValues))
		for i, v := range cs.Categorical.TopValues {
			values[i] = TopValue{Value: v.Value, Count: v.Count, Percentage: round6(v.Percentage)}
		}
		stats.Categorical = &CategoricalStats{TopValues: values, UniqueCount: cs.Categorical.UniqueCount}
	}
	if cs.Histogram != nil {
		bins := make([]Bin, len(cs.Histogram.Bins))
		for i, b := range cs.Histogram.Bins {
			bins[i] = Bin{Start: round6(b.Start), End: round6(b.End), Count: b.Count}
		}
		stats.Histogram = &Histogram{
			Bins:     bins,
			Min:      round6(cs.Histogram.Min),
			Max:      round6(cs.Histogram.Max),
			BinWidth: round6(cs.Histogram.BinWidth),
		}
	}

	isPII := len(cs.Anomalies.PII) > 0
	return Column{
		Name: cs.Name,
		Stats: stats,
		Quality: Quality{
			Completeness:   round6(cs.Completeness),
			Uniqueness:     round6(cs.Uniqueness),
			IsPotentialPii: isPII,
		},
		Notes: cs.Notes,
	}
}
