package parser

import (
	"reflect"
	"sort"
	"testing"
)

func TestJSONFlattenSimpleObject(t *testing.T) {
	p := NewJSONParser()
	res, err := p.ParseChunk([]byte(`[{"user": {"name": "Alice", "age": 30}}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Rows) != 1 {
		t.Fatalf("expected 1 row got %d", len(res.Rows))
	}
	headers := append([]string(nil), res.Headers...)
	sort.Strings(headers)
	if !reflect.DeepEqual(headers, []string{"user.age", "user.name"}) {
		t.Errorf("expected flattened headers, got %v", res.Headers)
	}
}

func TestJSONDepthCapProducesOpaqueMarker(t *testing.T) {
	p := NewJSONParser()
	p.FlattenDepth = 2
	input := `[{"a": {"b": {"c": {"d": {"e": 1}}}}}]`
	res, err := p.ParseChunk([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Headers) != 1 || res.Headers[0] != "a.b" {
		t.Fatalf("expected deepest preserved key a.b, got %v", res.Headers)
	}
	if res.Rows[0][0] != "[object]" {
		t.Errorf("expected opaque object marker, got %q", res.Rows[0][0])
	}
}

func TestJSONArrayMarkerHasNoTrailingNewline(t *testing.T) {
	p := NewJSONParser()
	res, _ := p.ParseChunk([]byte(`[{"tags": ["a", "b", "c"]}]`))
	if res.Rows[0][0] != "[array:3]" {
		t.Errorf("expected [array:3] with no trailing newline, got %q", res.Rows[0][0])
	}
}

func TestJSONMultipleTopLevelItemsAndMalformed(t *testing.T) {
	p := NewJSONParser()
	res, _ := p.ParseChunk([]byte(`[{"a": 1}, {"a": 2}, not-json, {"a": 3}]`))
	if len(res.Rows) != 3 {
		t.Fatalf("expected 3 valid rows got %d: %v", len(res.Rows), res.Rows)
	}
	if res.MalformedCount != 1 {
		t.Errorf("expected 1 malformed item got %d", res.MalformedCount)
	}
}

func TestJSONChunkSplicingAcrossItems(t *testing.T) {
	whole := NewJSONParser()
	wholeRes, _ := whole.ParseChunk([]byte(`[{"a":1},{"a":2},{"a":3}]`))

	split := NewJSONParser()
	var rows [][]string
	r1, _ := split.ParseChunk([]byte(`[{"a":1},{"a"`))
	rows = append(rows, r1.Rows...)
	r2, _ := split.ParseChunk([]byte(`:2},{"a":3}]`))
	rows = append(rows, r2.Rows...)

	if len(rows) != len(wholeRes.Rows) {
		t.Fatalf("expected %d rows across split chunks, got %d", len(wholeRes.Rows), len(rows))
	}
}
