package errors

import "fmt"

// classify maps an HTTP status to a category. 408 and 429 are the two 4xx
// codes worth retrying; everything else in the 4xx range is final. Unknown
// codes are treated as retryable rather than silently dropped.
func classify(statusCode int) Category {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Recoverable
	}
}

// NewHTTPError builds a classified error for a non-2xx response.
func NewHTTPError(statusCode int, body string, operation string) *ClassifiedError {
	return &ClassifiedError{
		Category:   classify(statusCode),
		StatusCode: statusCode,
		Body:       body,
		Underlying: fmt.Errorf("%s: status %d", operation, statusCode),
	}
}

// NewNetworkError builds a classified error for a transport-level failure.
// These never carry an HTTP status and are always worth retrying.
func NewNetworkError(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s: %w", operation, err),
	}
}
