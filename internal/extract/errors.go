package extract

import (
	"errors"
	"fmt"
)

// ExtractionError is a typed, non-retryable failure of the document
// understanding step: the document itself cannot be extracted. It is surfaced
// to the advisor as a terminal per-illustration failure.
type ExtractionError struct {
	Kind    string // "unsupported_format" | "low_confidence" | "unreadable"
	Message string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed (%s): %s", e.Kind, e.Message)
}

// TransientError is a transport-level failure (service unavailable, timeout,
// 5xx). Eligible for bounded retry with backoff.
type TransientError struct {
	Cause error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("extraction service unavailable: %v", e.Cause)
}

func (e *TransientError) Unwrap() error { return e.Cause }

// IsTransient reports whether err is retryable.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// IsExtraction reports whether err is a typed, non-retryable extraction failure.
func IsExtraction(err error) bool {
	var ee *ExtractionError
	return errors.As(err, &ee)
}
