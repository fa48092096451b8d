// Package errors classifies SDK failures so callers and the background
// executor can tell "retry later" apart from "this will never work".
package errors

import (
	stderrors "errors"
	"fmt"
)

// Category determines how an error should be handled by retry logic.
type Category int

const (
	// Recoverable errors may succeed if retried: 5xx responses, timeouts,
	// connection-level failures.
	Recoverable Category = iota

	// Irrecoverable errors must not be retried: 4xx responses such as
	// 400, 401, 403, 404.
	Irrecoverable
)

func (c Category) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError carries category and HTTP metadata alongside the cause.
type ClassifiedError struct {
	Category   Category
	StatusCode int    // 0 for non-HTTP failures
	Body       string // response body, kept for surfacing server detail
	Underlying error
}

func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ClassifiedError) Unwrap() error { return e.Underlying }

// IsIrrecoverable reports whether err should not be retried.
func IsIrrecoverable(err error) bool {
	var ce *ClassifiedError
	if stderrors.As(err, &ce) {
		return ce.Category == Irrecoverable
	}
	return false
}

// StatusCode extracts the HTTP status from a classified error, 0 otherwise.
func StatusCode(err error) int {
	var ce *ClassifiedError
	if stderrors.As(err, &ce) {
		return ce.StatusCode
	}
	return 0
}
