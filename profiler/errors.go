package profiler

import "github.com/pkg/errors"

// ErrSessionEmpty is returned by Finalize when the session never received
// a successfully parsed row, the Session-empty taxonomy entry of
// spec.md §7.
var ErrSessionEmpty = errors.New("profiler: finalize called with zero parsed rows")

// ErrFormatUndetected is returned when a parser's format could not be
// established from the bytes offered so far, the Parse-format-unknown
// taxonomy entry; the session remains usable and may resolve once more
// bytes disambiguate it.
var ErrFormatUndetected = errors.New("profiler: source format not yet detected")
