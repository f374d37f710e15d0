package dem

import (
	"errors"
	"fmt"
)

// ErrTruncatedData indicates that the file declares more samples than it
// contains. Parse wraps it with the observed and expected counts.
var ErrTruncatedData = errors.New("dem: elevation data is truncated")

// HeaderError reports a required header field that is missing or whose
// value could not be parsed. Value is empty when the field was missing
// entirely.
type HeaderError struct {
	Field string
	Value string
}

func (e *HeaderError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("dem: missing required header %q", e.Field)
	}

	return fmt.Sprintf("dem: invalid value %q for header %q", e.Value, e.Field)
}

// SampleError reports a non-numeric elevation sample. Index is the
// zero-based position of the sample in row-major order.
type SampleError struct {
	Index int
	Token string
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("dem: sample %d is not numeric: %q", e.Index, e.Token)
}
