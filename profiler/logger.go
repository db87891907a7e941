package profiler

import "go.uber.org/zap"

// defaultLogger is a no-op logger until a host calls SetLogger, matching
// the teacher's package-level nop-by-default logging convention.
var defaultLogger = zap.NewNop().Sugar()

// SetLogger installs the logger used for the session-start line,
// format-detection notices, per-batch ingest-rate debug lines, and the
// finalize summary (row count and duplicate percentage). Malformed records
// are counted in ParseBatch, not logged.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	defaultLogger = l
}
