// Package parser implements the streaming format parsers of spec C5: a
// common chunk/flush contract over delimited text, line-delimited records,
// array-framed JSON (with nested flattening), and columnar/block-encoded
// Avro and Parquet sources, plus the content-classification state machine
// used to recommend tree vs tabular reporting. None of these formats have
// an analogue in the teacher (bmkessler-streamstats carries no I/O layer at
// all), so the ambient shape here follows SPEC_FULL.md's adopted
// conventions (pkg/errors sentinels, zap-style field logging left to
// package profiler) while the format-specific logic is grounded on
// original_source/src/wasm/src/parser/*.rs and the gjson/goavro/parquet-go
// libraries pulled in from the wider retrieval pack.
package parser

import "github.com/pkg/errors"

// ErrFormatUnknown is returned by ParquetParser.Flush when the buffered
// bytes cannot be opened as a Parquet file. The text, JSON and Avro
// parsers never return it; they return empty batches instead.
var ErrFormatUnknown = errors.New("parser: no records recognized for declared format")

// BatchResult is returned by both ParseChunk and Flush.
type BatchResult struct {
	Headers        []string
	Rows           [][]string
	MalformedCount uint64
	TotalRowsSeen  uint64
	FormatMetadata map[string]string
}

// Parser is the common streaming contract implemented by every format
// reader in this package. ParseChunk must never block on I/O; it operates
// purely on the bytes given plus whatever remainder it is carrying.
type Parser interface {
	ParseChunk(chunk []byte) (BatchResult, error)
	Flush() (BatchResult, error)
}
