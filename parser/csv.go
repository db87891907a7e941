package parser

import (
	"bytes"
	"strings"
)

var delimiterCandidates = []byte{',', '\t', ';', '|'}

// CSVParser implements the delimited-text contract of spec.md §4.5:
// delimiter auto-detection from the first chunk, carried-remainder chunk
// splicing on newline boundaries, and cumulative malformed-row counting
// when a row's field count disagrees with the header's.
type CSVParser struct {
	delim          byte
	delimDetected  bool
	headers        []string
	remainder      []byte
	malformedCount uint64
	totalRows      uint64
}

// NewCSVParser returns a parser that will auto-detect its delimiter from
// the first chunk offered to ParseChunk.
func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

// detectDelimiter scores each candidate over up to the first 10 records:
// record_count * first_record_field_count, only when every scored record
// has the same field count and that count is > 1. Ties resolve to comma.
func detectDelimiter(sample []byte) byte {
	best := byte(',')
	bestScore := -1
	for _, cand := range delimiterCandidates {
		lines := splitLines(sample)
		if len(lines) > 10 {
			lines = lines[:10]
		}
		if len(lines) == 0 {
			continue
		}
		fieldCount := len(bytes.Split(lines[0], []byte{cand}))
		if fieldCount <= 1 {
			continue
		}
		consistent := true
		for _, ln := range lines {
			if len(bytes.Split(ln, []byte{cand})) != fieldCount {
				consistent = false
				break
			}
		}
		if !consistent {
			continue
		}
		score := len(lines) * fieldCount
		if score > bestScore || (score == bestScore && cand == ',') {
			bestScore = score
			best = cand
		}
	}
	return best
}

func splitLines(b []byte) [][]byte {
	b = bytes.TrimRight(b, "\n")
	if len(b) == 0 {
		return nil
	}
	return bytes.Split(b, []byte{'\n'})
}

// ParseChunk feeds new bytes into the parser, splicing with any carried
// remainder and emitting every complete record found up to the last
// newline in the combined buffer.
func (p *CSVParser) ParseChunk(chunk []byte) (BatchResult, error) {
	combined := append(p.remainder, chunk...)

	lastNL := bytes.LastIndexByte(combined, '\n')
	if lastNL < 0 {
		p.remainder = combined
		return p.result(nil), nil
	}
	if !p.delimDetected {
		p.delim = detectDelimiter(combined)
		p.delimDetected = true
	}
	toParse := combined[:lastNL+1]
	p.remainder = append([]byte(nil), combined[lastNL+1:]...)

	rows := p.parseLines(toParse)
	return p.result(rows), nil
}

// Flush parses any retained remainder as a final, possibly unterminated
// record.
func (p *CSVParser) Flush() (BatchResult, error) {
	if len(p.remainder) == 0 {
		return p.result(nil), nil
	}
	rest := p.remainder
	p.remainder = nil
	if !p.delimDetected {
		p.delim = detectDelimiter(rest)
		p.delimDetected = true
	}
	rows := p.parseLines(rest)
	return p.result(rows), nil
}

func (p *CSVParser) parseLines(data []byte) [][]string {
	lines := bytes.Split(bytes.TrimRight(data, "\n"), []byte{'\n'})
	var out [][]string
	for _, ln := range lines {
		if len(ln) == 0 {
			continue
		}
		fields := strings.Split(string(ln), string(p.delim))
		if p.headers == nil {
			p.headers = fields
			continue
		}
		p.totalRows++
		if len(fields) != len(p.headers) {
			p.malformedCount++
			continue
		}
		out = append(out, fields)
	}
	return out
}

func (p *CSVParser) result(rows [][]string) BatchResult {
	return BatchResult{
		Headers:        p.headers,
		Rows:           rows,
		MalformedCount: p.malformedCount,
		TotalRowsSeen:  p.totalRows,
		FormatMetadata: map[string]string{"delimiter": string(p.delim)},
	}
}
