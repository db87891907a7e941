package profiler

import (
	"github.com/farmanp/datacert/correlation"
	"github.com/farmanp/datacert/parser"
	"github.com/farmanp/datacert/report"
	"github.com/farmanp/datacert/structtree"
)

// ParseBatch is the partial-result snapshot returned by every call to
// Session.ParseAndProfileChunk, spec.md §6's ParseBatch type.
type ParseBatch struct {
	Headers        []string
	Rows           [][]string
	MalformedCount uint64
	TotalRows      uint64
	Format         parser.Format
	Structure      parser.StructureState
	ArrayStats     map[string]parser.ArrayLenStat
}

// Session is the host-facing ingestion API of spec.md §6: it auto-detects
// the source format from the first bytes offered, routes every chunk to
// the matching parser.Parser, folds the resulting rows into a Profiler,
// and assembles the final Report. Unlike Profiler (which takes already
// split rows), Session takes raw bytes, matching the
// auto_detect_<format>/parse_and_profile_chunk/finalize contract.
type Session struct {
	cfg Config

	formatKnown bool
	format      parser.Format
	pending     []byte

	active parser.Parser
	json   *parser.JSONParser // kept typed alongside active for Structure()/ArrayFieldLengths()
	tree   *structtree.Analyzer

	prof *Profiler
}

// NewSession returns a session with no format detected yet; the first
// ParseAndProfileChunk call(s) will accumulate bytes until DetectFormat
// succeeds.
func NewSession(cfg Config) *Session {
	return &Session{cfg: cfg}
}

// ParseAndProfileChunk feeds chunk to the session. Before a format is
// detected, bytes are buffered and ErrFormatUndetected is returned; once
// detected, every call routes to the matching parser and folds its rows
// into the profiler, returning the partial-result snapshot.
func (s *Session) ParseAndProfileChunk(chunk []byte) (ParseBatch, error) {
	if !s.formatKnown {
		s.pending = append(s.pending, chunk...)
		f, ok := parser.DetectFormat(s.pending)
		if !ok {
			return ParseBatch{}, ErrFormatUndetected
		}
		s.format = f
		s.formatKnown = true
		s.active = s.newParserFor(f)
		chunk = s.pending
		s.pending = nil
		defaultLogger.Infow("format detected", "format", string(f))
	}

	res, err := s.active.ParseChunk(chunk)
	if err != nil {
		return ParseBatch{}, err
	}
	return s.absorb(res), nil
}

func (s *Session) newParserFor(f parser.Format) parser.Parser {
	switch f {
	case parser.FormatCSV:
		return parser.NewCSVParser()
	case parser.FormatLine:
		return parser.NewLineParser()
	case parser.FormatJSON:
		j := parser.NewJSONParser()
		s.json = j
		s.tree = structtree.NewAnalyzer()
		return j
	case parser.FormatAvro:
		return parser.NewAvroParser()
	case parser.FormatParquet:
		return parser.NewParquetParser()
	default:
		return parser.NewLineParser()
	}
}

// absorb grows the profiler's header set if the parser discovered new
// columns, folds the batch's rows into it, and builds the ParseBatch
// snapshot the host sees.
func (s *Session) absorb(res parser.BatchResult) ParseBatch {
	if s.prof == nil {
		cfg := s.cfg
		s.prof = New(res.Headers, cfg)
	} else {
		s.prof.GrowHeaders(res.Headers)
	}
	if len(res.Rows) > 0 {
		s.prof.UpdateBatch(res.Rows)
	}

	batch := ParseBatch{
		Headers:        res.Headers,
		Rows:           res.Rows,
		MalformedCount: res.MalformedCount,
		TotalRows:      res.TotalRowsSeen,
		Format:         s.format,
	}
	if s.json != nil {
		batch.Structure = s.json.Structure()
		batch.ArrayStats = s.json.ArrayFieldLengths()
		for _, rec := range s.json.LastRecords() {
			fields := make(map[string]structtree.PathValue, len(rec))
			for path, fv := range rec {
				fields[path] = structtree.PathValue{Type: fv.Type, Value: fv.Value}
			}
			s.tree.ObserveRecord(fields)
		}
	}
	return batch
}

// Correlation returns the finalized correlation matrix for the session, or
// false if no correlation columns were configured. Call after Finalize.
func (s *Session) Correlation() (correlation.Matrix, bool) {
	if s.prof == nil {
		return correlation.Matrix{}, false
	}
	return s.prof.Correlation()
}

// StructureAnalysis returns the hierarchical path analysis (C8) for a JSON
// source, or false for any other format or before a JSON structure has
// been observed. Call after Finalize for the complete picture, or earlier
// for a partial, sample-ceiling-bounded snapshot.
func (s *Session) StructureAnalysis() (structtree.Analysis, bool) {
	if s.tree == nil {
		return structtree.Analysis{}, false
	}
	return s.tree.Analyze(), true
}

// Finalize flushes any trailing partial record held by the active parser,
// folds it in, and produces the final Report. Returns ErrFormatUndetected
// if no format was ever established, or ErrSessionEmpty if the format was
// known but zero rows were ever successfully parsed.
func (s *Session) Finalize() (report.Report, error) {
	if !s.formatKnown {
		return report.Report{}, ErrFormatUndetected
	}
	res, err := s.active.Flush()
	if err != nil {
		return report.Report{}, err
	}
	s.absorb(res)
	return s.prof.Finalize()
}
