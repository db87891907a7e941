package profiler

import (
	"time"

	humanize "github.com/dustin/go-humanize"

	"github.com/farmanp/datacert/column"
	"github.com/farmanp/datacert/correlation"
	"github.com/farmanp/datacert/quality"
	"github.com/farmanp/datacert/report"
	"github.com/farmanp/datacert/sketch"
)

// Profiler owns one vector of column profiles plus the row-level quality
// and correlation accumulators, per spec.md §4.4 (C4). A single Profiler
// is single-threaded and owned by one session; see SPEC_FULL.md §5 for why
// no internal locking is needed (unlike the teacher's mutex-guarded
// MomentStats).
type Profiler struct {
	cfg       Config
	headers   []string
	headerIdx map[string]int
	columns   []*column.Profile

	duplicates *quality.DuplicateDetector
	corr       *correlation.Accumulator
	corrIdx    []int // headers index for each tracked correlation column, -1 if untracked
	corrMatrix *correlation.Matrix
	ingestRate *sketch.IngestRateEWMA

	totalRows uint64
	startedAt time.Time
}

// ingestRateLambda damps the ingest-rate diagnostic toward recent batches
// without reacting to every single-batch blip.
const ingestRateLambda = 0.3

// New constructs one column profile per header, in order, plus the
// duplicate detector and (if configured) the correlation accumulator.
func New(headers []string, cfg Config) *Profiler {
	p := &Profiler{
		cfg:       cfg,
		headers:   append([]string(nil), headers...),
		headerIdx: make(map[string]int, len(headers)),
		columns:   make([]*column.Profile, len(headers)),
		startedAt: time.Now(),
	}
	for i, h := range headers {
		p.columns[i] = column.New(h)
		p.headerIdx[h] = i
	}

	expected := cfg.ExpectedRows
	if expected == 0 {
		expected = 1024
	}
	p.duplicates = quality.NewDuplicateDetector(expected)
	p.ingestRate = sketch.NewIngestRateEWMA(ingestRateLambda)

	if len(cfg.CorrelationColumns) > 0 {
		p.corr = correlation.NewAccumulator(cfg.CorrelationColumns)
		p.corrIdx = make([]int, len(cfg.CorrelationColumns))
		headerIdx := make(map[string]int, len(headers))
		for i, h := range headers {
			headerIdx[h] = i
		}
		for i, name := range cfg.CorrelationColumns {
			if idx, ok := headerIdx[name]; ok {
				p.corrIdx[i] = idx
			} else {
				p.corrIdx[i] = -1
			}
		}
	}

	defaultLogger.Infow("profiler session started",
		"columns", len(headers),
		"fileName", cfg.FileName,
		"fileSize", humanize.Bytes(uint64Max0(cfg.FileSize)),
	)
	return p
}

// GrowHeaders appends a column profile for every name in headers not
// already tracked, preserving discovery order. Used by Session for
// sources whose field set is only discovered incrementally (JSON's
// dotted-path flattening, per spec.md §4.5's key-cap rule).
func (p *Profiler) GrowHeaders(headers []string) {
	for _, h := range headers {
		if _, ok := p.headerIdx[h]; ok {
			continue
		}
		p.headerIdx[h] = len(p.headers)
		p.headers = append(p.headers, h)
		p.columns = append(p.columns, column.New(h))
	}
}

func uint64Max0(v int64) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}

// UpdateBatch folds one parser batch into the profiler: every row
// increments total_rows (1-based), each cell is folded into its column by
// positional index, and the row is forwarded to the duplicate detector and
// (if configured) the correlation accumulator.
func (p *Profiler) UpdateBatch(rows [][]string) {
	p.ingestRate.Push(float64(len(rows)))
	defaultLogger.Debugw("batch ingested", "rows", len(rows), "smoothedRate", p.ingestRate.Rate())
	for _, row := range rows {
		p.totalRows++
		rowIdx := int(p.totalRows)
		for i, cell := range row {
			if i >= len(p.columns) {
				break // extra cells beyond known headers are ignored
			}
			p.columns[i].Update(cell, rowIdx)
		}
		p.duplicates.Observe(row)
		p.updateCorrelation(row)
	}
}

func (p *Profiler) updateCorrelation(row []string) {
	if p.corr == nil {
		return
	}
	values := make([]float64, len(p.corrIdx))
	valid := make([]bool, len(p.corrIdx))
	for i, colIdx := range p.corrIdx {
		if colIdx < 0 || colIdx >= len(row) {
			continue
		}
		if f, ok := parseFloatFinite(row[colIdx]); ok {
			values[i] = f
			valid[i] = true
		}
	}
	p.corr.UpdateRow(values, valid)
}

// Finalize freezes every column profile, collects duplicate-row quality
// issues, and assembles the final report. Returns ErrSessionEmpty if no
// row was ever successfully folded in.
func (p *Profiler) Finalize() (report.Report, error) {
	if p.totalRows == 0 {
		return report.Report{}, ErrSessionEmpty
	}
	finishedAt := time.Now()

	colStats := make([]column.Stats, len(p.columns))
	for i, c := range p.columns {
		colStats[i] = c.Finalize()
	}

	if p.corr != nil {
		m := p.corr.Finalize()
		p.corrMatrix = &m
		logCorrelationSummary(m)
	}

	dupPct, dupIssues := p.duplicates.Finalize()
	defaultLogger.Infow("session finalized",
		"totalRows", p.totalRows,
		"duplicatePercentage", dupPct,
		"duplicateIssues", len(dupIssues),
	)

	rep := report.Build(report.Input{
		FileName:   p.cfg.FileName,
		FileSize:   p.cfg.FileSize,
		TotalRows:  p.totalRows,
		Columns:    colStats,
		StartedAt:  p.startedAt,
		FinishedAt: finishedAt,
	})
	return rep, nil
}

// Correlation returns the finalized correlation matrix and true, or a zero
// Matrix and false if no correlation columns were configured or Finalize
// has not yet run. report.Report carries no correlation field (spec.md §6
// scopes the exported report to per-column stats), so this is the only
// way a host retrieves the C6 matrix spec.md §8 scenario 5 and the
// symmetric/unit-diagonal invariant are written against.
func (p *Profiler) Correlation() (correlation.Matrix, bool) {
	if p.corrMatrix == nil {
		return correlation.Matrix{}, false
	}
	return *p.corrMatrix, true
}

func logCorrelationSummary(m correlation.Matrix) {
	defaultLogger.Debugw("correlation matrix computed", "columns", m.Names)
}
