package profiler

// Config is the small, zero-value-usable, functional-options-free
// constructor input for a Profiler, matching the ambient stack's "no
// config-loading library" decision (env/flag/file loading is out of
// scope per spec.md §1).
type Config struct {
	// ExpectedRows sizes the duplicate detector's Bloom pre-check; zero
	// falls back to a small default.
	ExpectedRows uint64

	// CorrelationColumns, if non-empty, names the subset of headers the
	// optional correlation accumulator (C6) tracks. An empty slice
	// disables correlation tracking entirely.
	CorrelationColumns []string

	// FileName and FileSize feed meta.fileName / meta.fileSize in the
	// final report.
	FileName string
	FileSize int64
}
