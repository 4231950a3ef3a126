package summarize

import "errors"

var (
	// ErrUnavailable indicates the model server is unreachable.
	ErrUnavailable = errors.New("summarization server unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("summarization request timed out")

	// ErrEmptyOutput indicates the model returned no usable text.
	ErrEmptyOutput = errors.New("summarization returned empty output")
)
