package parser

import "bytes"

// Format names the container format a session has detected for its byte
// stream, per spec.md §6's auto_detect_<format> family of operations.
type Format string

const (
	FormatUnknown Format = "unknown"
	FormatCSV     Format = "csv"
	FormatLine    Format = "line"
	FormatJSON    Format = "json"
	FormatAvro    Format = "avro"
	FormatParquet Format = "parquet"
)

// minSniffBytes is how many bytes of un-newlined input DetectFormat waits
// for before giving up on line vs. delimited-text disambiguation, rather
// than guessing from a handful of bytes.
const minSniffBytes = 64

var avroMagic = []byte{'O', 'b', 'j', 0x01}
var parquetMagic = []byte("PAR1")

// DetectFormat sniffs the initial bytes of a session's input and reports
// the container format, or false if more bytes are needed before a
// confident call can be made (spec.md §7's Parse-format-unknown case).
func DetectFormat(initial []byte) (Format, bool) {
	if len(initial) >= len(parquetMagic) && bytes.Equal(initial[:len(parquetMagic)], parquetMagic) {
		return FormatParquet, true
	}

	trimmed := bytes.TrimLeft(initial, " \t\r\n")
	if len(trimmed) >= len(avroMagic) && bytes.Equal(trimmed[:len(avroMagic)], avroMagic) {
		return FormatAvro, true
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return FormatJSON, true
	}

	nl := bytes.IndexByte(trimmed, '\n')
	if nl < 0 {
		if len(trimmed) < minSniffBytes {
			return FormatUnknown, false
		}
		nl = len(trimmed)
	}
	sample := trimmed[:nl]
	for _, d := range delimiterCandidates {
		if bytes.IndexByte(sample, d) >= 0 {
			return FormatCSV, true
		}
	}
	return FormatLine, true
}
