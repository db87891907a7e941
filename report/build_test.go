package report

import (
	"testing"
	"time"

	"github.com/farmanp/datacert/column"
)

func TestBuildOmitsAbsentOptionalBlocks(t *testing.T) {
	in := Input{
		FileName:  "data.csv",
		FileSize:  1024,
		TotalRows: 1,
		Columns: []column.Stats{
			{Name: "id", Count: 1, InferredType: column.TypeInteger},
		},
		StartedAt:  time.Unix(0, 0),
		FinishedAt: time.Unix(1, 0),
	}
	rep := Build(in)
	col := rep.Columns[0]
	if col.Stats.Numeric != nil {
		t.Error("expected no numeric block for a column with no numeric stats attached")
	}
	if col.Stats.Categorical != nil {
		t.Error("expected no categorical block")
	}
	if col.Stats.Histogram != nil {
		t.Error("expected no histogram block")
	}
	if len(col.Notes) != 0 {
		t.Error("expected empty notes omitted")
	}
}

func TestBuildRoundsNumericFields(t *testing.T) {
	in := Input{
		Columns: []column.Stats{
			{
				Name:         "n",
				Count:        10,
				InferredType: column.TypeInteger,
				Numeric:      &column.NumericStats{Mean: 1.0 / 3.0},
			},
		},
	}
	rep := Build(in)
	if rep.Columns[0].Stats.Numeric.Mean != 0.333333 {
		t.Errorf("expected rounded mean 0.333333 got %v", rep.Columns[0].Stats.Numeric.Mean)
	}
}

func TestBuildSummaryCounts(t *testing.T) {
	in := Input{
		TotalRows: 42,
		Columns: []column.Stats{
			{Name: "a"}, {Name: "b"},
		},
	}
	rep := Build(in)
	if rep.Summary.TotalRows != 42 || rep.Summary.TotalColumns != 2 {
		t.Errorf("unexpected summary: %+v", rep.Summary)
	}
}
