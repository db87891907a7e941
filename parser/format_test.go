package parser

import "testing"

func TestDetectFormatJSON(t *testing.T) {
	f, ok := DetectFormat([]byte(`  [{"a":1}]`))
	if !ok || f != FormatJSON {
		t.Fatalf("expected json, got %v ok=%v", f, ok)
	}
}

func TestDetectFormatCSV(t *testing.T) {
	f, ok := DetectFormat([]byte("id,name\n1,Alice\n"))
	if !ok || f != FormatCSV {
		t.Fatalf("expected csv, got %v ok=%v", f, ok)
	}
}

func TestDetectFormatLineWhenNoDelimiter(t *testing.T) {
	f, ok := DetectFormat([]byte("just one bare line of text\n"))
	if !ok || f != FormatLine {
		t.Fatalf("expected line, got %v ok=%v", f, ok)
	}
}

func TestDetectFormatAvroMagic(t *testing.T) {
	f, ok := DetectFormat([]byte("Obj\x01extra-header-bytes"))
	if !ok || f != FormatAvro {
		t.Fatalf("expected avro, got %v ok=%v", f, ok)
	}
}

func TestDetectFormatParquetMagic(t *testing.T) {
	f, ok := DetectFormat([]byte("PAR1restofthefile"))
	if !ok || f != FormatParquet {
		t.Fatalf("expected parquet, got %v ok=%v", f, ok)
	}
}

func TestDetectFormatUndetectedOnShortAmbiguousInput(t *testing.T) {
	_, ok := DetectFormat([]byte("abc"))
	if ok {
		t.Fatalf("expected undetected for short ambiguous input")
	}
}
