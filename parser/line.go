package parser

import "bytes"

// LineParser implements the line-delimited record contract of spec.md
// §4.5: each non-empty line is one record (single-field row), with a
// trailing partial line carried until the next chunk or Flush.
type LineParser struct {
	remainder []byte
	totalRows uint64
}

// NewLineParser returns an empty line-delimited parser.
func NewLineParser() *LineParser { return &LineParser{} }

// ParseChunk splices the carried remainder with chunk and emits every
// complete, non-empty line.
func (p *LineParser) ParseChunk(chunk []byte) (BatchResult, error) {
	combined := append(p.remainder, chunk...)
	lastNL := bytes.LastIndexByte(combined, '\n')
	if lastNL < 0 {
		p.remainder = combined
		return p.result(nil), nil
	}
	toParse := combined[:lastNL]
	p.remainder = append([]byte(nil), combined[lastNL+1:]...)
	return p.result(p.parseLines(toParse)), nil
}

// Flush parses any retained trailing partial line.
func (p *LineParser) Flush() (BatchResult, error) {
	rest := p.remainder
	p.remainder = nil
	return p.result(p.parseLines(rest)), nil
}

func (p *LineParser) parseLines(data []byte) [][]string {
	if len(data) == 0 {
		return nil
	}
	var out [][]string
	for _, ln := range bytes.Split(data, []byte{'\n'}) {
		if len(ln) == 0 {
			continue
		}
		p.totalRows++
		out = append(out, []string{string(ln)})
	}
	return out
}

func (p *LineParser) result(rows [][]string) BatchResult {
	return BatchResult{
		Rows:          rows,
		TotalRowsSeen: p.totalRows,
	}
}
