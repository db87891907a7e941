package parser

import (
	"bytes"

	"github.com/parquet-go/parquet-go"
)

// ParquetParser implements the columnar contract of spec.md §4.5 for
// Parquet files via parquet-go. Parquet's footer-first layout needs
// random access into the complete file, so unlike the text formats this
// parser buffers every chunk and only decodes once, at Flush; ParseChunk
// itself only ever returns an empty batch while buffering.
type ParquetParser struct {
	buf       bytes.Buffer
	headers   []string
	totalRows uint64
	malformed uint64
}

// NewParquetParser returns an empty Parquet file parser.
func NewParquetParser() *ParquetParser { return &ParquetParser{} }

// ParseChunk buffers chunk; Parquet's footer-first format cannot be
// decoded incrementally, so no rows are emitted until Flush.
func (p *ParquetParser) ParseChunk(chunk []byte) (BatchResult, error) {
	p.buf.Write(chunk)
	return p.result(nil), nil
}

// Flush decodes the fully-buffered file and emits every row, headers
// taken from the embedded schema in field order.
func (p *ParquetParser) Flush() (BatchResult, error) {
	data := p.buf.Bytes()
	if len(data) == 0 {
		return p.result(nil), nil
	}
	file, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return p.result(nil), ErrFormatUnknown
	}

	fields := file.Schema().Fields()
	p.headers = make([]string, len(fields))
	for i, f := range fields {
		p.headers[i] = f.Name()
	}

	var rows [][]string
	for _, rg := range file.RowGroups() {
		reader := rg.Rows()
		buf := make([]parquet.Row, 128)
		for {
			n, readErr := reader.ReadRows(buf)
			for i := 0; i < n; i++ {
				rows = append(rows, stringifyParquetRow(buf[i], len(p.headers)))
				p.totalRows++
			}
			if readErr != nil {
				break
			}
		}
		reader.Close()
	}
	return p.result(rows), nil
}

func stringifyParquetRow(row parquet.Row, width int) []string {
	out := make([]string, width)
	for _, v := range row {
		col := v.Column()
		if col < 0 || col >= width {
			continue
		}
		if v.IsNull() {
			out[col] = ""
			continue
		}
		out[col] = stringifyParquetValue(v)
	}
	return out
}

func stringifyParquetValue(v parquet.Value) string {
	switch v.Kind() {
	case parquet.Boolean:
		return stringifyScalar(v.Boolean())
	case parquet.Int32:
		return stringifyScalar(v.Int32())
	case parquet.Int64:
		return stringifyScalar(v.Int64())
	case parquet.Float:
		return stringifyScalar(v.Float())
	case parquet.Double:
		return stringifyScalar(v.Double())
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	default:
		return v.String()
	}
}

func (p *ParquetParser) result(rows [][]string) BatchResult {
	return BatchResult{
		Headers:        p.headers,
		Rows:           rows,
		MalformedCount: p.malformed,
		TotalRowsSeen:  p.totalRows,
	}
}
