package parser

import (
	"strconv"

	"github.com/tidwall/gjson"
)

const (
	// DefaultFlattenDepth is the nesting depth beyond which sub-objects are
	// serialized as opaque "[object]" markers. Arrays are serialized as
	// "[array:N]" markers at every depth.
	DefaultFlattenDepth = 3
	// DefaultKeyCap bounds the number of distinct dotted-path columns a
	// session will track before dropping newly discovered paths.
	DefaultKeyCap = 500
)

// ArrayLenStat is the min/max/count/total length distribution tracked for
// one array-valued dotted path, per spec.md §4.5's "array field length
// distribution ... tracked separately".
type ArrayLenStat struct {
	Min   int
	Max   int
	Count int
	Total int
}

// FlatValue is one flattened leaf's runtime type tag alongside its
// stringified value, used by callers (structtree.Analyzer, via package
// profiler) that need the per-path type distinct from the tabular string
// projection ParseChunk/Flush return.
type FlatValue struct {
	Type  string
	Value string
}

// JSONParser implements the array-framed record contract of spec.md §4.5:
// top-level value scanning within a `[...]` container, per-item isolation
// via gjson, and dotted-path flattening with a depth cap and a key cap.
type JSONParser struct {
	FlattenDepth int
	KeyCap       int

	started        bool
	finished       bool
	remainder      []byte
	headers        []string
	headerSet      map[string]bool
	malformedCount uint64
	totalRows      uint64
	arrayLens      map[string]*ArrayLenStat
	structure      *StructureDetector
	lastRecords    []map[string]FlatValue
}

// NewJSONParser returns a parser using the spec default depth and key
// caps.
func NewJSONParser() *JSONParser {
	return &JSONParser{
		FlattenDepth: DefaultFlattenDepth,
		KeyCap:       DefaultKeyCap,
		headerSet:    make(map[string]bool),
		arrayLens:    make(map[string]*ArrayLenStat),
		structure:    NewStructureDetector(),
	}
}

// Structure returns the content-classification state accumulated so far
// from every item ingested, independent of the container format itself.
func (p *JSONParser) Structure() StructureState {
	return p.structure.State()
}

// ArrayFieldLengths returns the length distribution recorded so far for
// every array-valued dotted path.
func (p *JSONParser) ArrayFieldLengths() map[string]ArrayLenStat {
	out := make(map[string]ArrayLenStat, len(p.arrayLens))
	for k, v := range p.arrayLens {
		out[k] = *v
	}
	return out
}

// LastRecords returns the typed, path-keyed flattening of every item
// ingested by the most recent ParseChunk or Flush call, for callers
// (structtree.Analyzer) that need per-path type tags rather than the
// tabular string projection used for column profiling.
func (p *JSONParser) LastRecords() []map[string]FlatValue {
	return p.lastRecords
}

// ParseChunk splices chunk onto the carried remainder, locates the opening
// container sentinel if not yet seen, then scans top-level items up to but
// not including a trailing partial item.
func (p *JSONParser) ParseChunk(chunk []byte) (BatchResult, error) {
	p.lastRecords = nil
	if p.finished {
		return p.result(nil), nil
	}
	combined := append(p.remainder, chunk...)

	if !p.started {
		idx := indexByte(combined, '[')
		if idx < 0 {
			p.remainder = combined
			return p.result(nil), nil
		}
		combined = combined[idx+1:]
		p.started = true
	}

	items, rest, closed := scanTopLevelItems(combined)
	p.remainder = rest
	if closed {
		p.finished = true
	}
	rows := p.ingestItems(items)
	return p.result(rows), nil
}

// Flush parses any retained remainder as a final (possibly unterminated)
// batch of items.
func (p *JSONParser) Flush() (BatchResult, error) {
	p.lastRecords = nil
	if p.finished || len(p.remainder) == 0 {
		return p.result(nil), nil
	}
	items, _, _ := scanTopLevelItems(p.remainder)
	p.remainder = nil
	rows := p.ingestItems(items)
	return p.result(rows), nil
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

// scanTopLevelItems walks buf looking for item boundaries at bracket depth
// zero, honoring string escapes and both bracket kinds, per spec.md's
// array-framed scanning rule. It returns every complete top-level item
// found, the unconsumed remainder, and whether the closing `]` was seen.
func scanTopLevelItems(buf []byte) (items [][]byte, remainder []byte, closed bool) {
	depth := 0
	inString := false
	escaped := false
	itemStart := -1
	for i := 0; i < len(buf); i++ {
		c := buf[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
			if itemStart < 0 {
				itemStart = i
			}
		case '[', '{':
			if depth == 0 && itemStart < 0 {
				itemStart = i
			}
			depth++
		case ']', '}':
			depth--
			if depth == 0 && itemStart >= 0 {
				items = append(items, buf[itemStart:i+1])
				itemStart = -1
			}
			if depth < 0 {
				// the container's own closing bracket
				return items, nil, true
			}
		case ',':
			if depth == 0 && itemStart >= 0 {
				items = append(items, buf[itemStart:i])
				itemStart = -1
			}
		default:
			if depth == 0 && itemStart < 0 && !isJSONSpace(c) && c != ',' {
				itemStart = i
			}
		}
	}
	if itemStart >= 0 {
		remainder = append([]byte(nil), buf[itemStart:]...)
	}
	return items, remainder, false
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func (p *JSONParser) ingestItems(items [][]byte) [][]string {
	var rows [][]string
	p.lastRecords = p.lastRecords[:0]
	for _, item := range items {
		p.totalRows++
		if !gjson.ValidBytes(item) {
			p.malformedCount++
			continue
		}
		parsed := gjson.ParseBytes(item)
		p.structure.ObserveItem(parsed)
		row := make(map[string]string)
		typed := make(map[string]FlatValue)
		p.flatten(parsed, "", 0, row, typed)
		rows = append(rows, p.project(row))
		p.lastRecords = append(p.lastRecords, typed)
	}
	return rows
}

// flatten walks a gjson value, emitting dotted-path leaves into row (the
// tabular string projection) and typed (the structtree-oriented type tag
// alongside the same value). Objects are descended until FlattenDepth and
// degrade to an opaque "[object]" marker beyond it; arrays are never
// descended and always become a length-bearing "[array:N]" marker.
func (p *JSONParser) flatten(v gjson.Result, prefix string, depth int, row map[string]string, typed map[string]FlatValue) {
	switch {
	case v.IsObject():
		if depth >= p.FlattenDepth {
			p.addPath(prefix)
			row[prefix] = "[object]"
			typed[prefix] = FlatValue{Type: "object", Value: "[object]"}
			return
		}
		v.ForEach(func(key, val gjson.Result) bool {
			childPrefix := key.String()
			if prefix != "" {
				childPrefix = prefix + "." + key.String()
			}
			p.flatten(val, childPrefix, depth+1, row, typed)
			return true
		})
	case v.IsArray():
		arr := v.Array()
		p.trackArrayLength(prefix, len(arr))
		marker := "[array:" + strconv.Itoa(len(arr)) + "]"
		p.addPath(prefix)
		row[prefix] = marker
		typed[prefix] = FlatValue{Type: "array", Value: marker}
	default:
		p.addPath(prefix)
		row[prefix] = v.String()
		typed[prefix] = FlatValue{Type: gjsonTypeTag(v), Value: v.String()}
	}
}

// gjsonTypeTag reports a coarse runtime type tag for a scalar gjson leaf,
// consumed by structtree.Analyzer's per-path type tracking.
func gjsonTypeTag(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return "null"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "bool"
	default:
		return "string"
	}
}

func (p *JSONParser) trackArrayLength(path string, n int) {
	s, ok := p.arrayLens[path]
	if !ok {
		s = &ArrayLenStat{Min: n, Max: n}
		p.arrayLens[path] = s
	}
	if n < s.Min {
		s.Min = n
	}
	if n > s.Max {
		s.Max = n
	}
	s.Count++
	s.Total += n
}

// addPath registers a newly discovered dotted path as a header column,
// subject to the key cap; once the cap is reached further new paths are
// silently dropped for the remainder of the session.
func (p *JSONParser) addPath(path string) {
	if p.headerSet[path] {
		return
	}
	if len(p.headers) >= p.KeyCap {
		return
	}
	p.headerSet[path] = true
	p.headers = append(p.headers, path)
}

// project maps a flattened row onto the stable header order, leaving
// absent paths as empty strings and dropping any path beyond the key cap
// that this particular row happened to discover.
func (p *JSONParser) project(row map[string]string) []string {
	out := make([]string, len(p.headers))
	for i, h := range p.headers {
		out[i] = row[h]
	}
	return out
}

func (p *JSONParser) result(rows [][]string) BatchResult {
	meta := map[string]string{
		"flatten_depth": strconv.Itoa(p.FlattenDepth),
		"key_cap":       strconv.Itoa(p.KeyCap),
	}
	return BatchResult{
		Headers:        p.headers,
		Rows:           rows,
		MalformedCount: p.malformedCount,
		TotalRowsSeen:  p.totalRows,
		FormatMetadata: meta,
	}
}
