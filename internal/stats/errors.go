package stats

import "errors"

// ErrInvalidArgument marks a caller contract violation: a malformed input shape
// rather than a statistically degenerate sample. Degenerate samples never error.
var ErrInvalidArgument = errors.New("invalid argument")
