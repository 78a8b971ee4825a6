package bi

import (
	"fmt"
	"strings"
)

// Error kinds surfaced to the caller as the structured {error, message} pair.
const (
	KindInvalidRange = "InvalidRangeError"
	KindInvalidLimit = "InvalidLimitError"
	KindUpstreamRead = "UpstreamReadError"
)

// Error is a structured engine error. Validation errors are produced before
// any aggregation work starts; upstream errors wrap the failed bulk read.
type Error struct {
	Kind    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newInvalidRangeError(raw string) *Error {
	// Clamped long tokens stay valid input but are not advertised.
	tokens := make([]string, 0, len(orderedRangeNames))
	for _, n := range orderedRangeNames {
		if EnforceMaxLookback(n) != n {
			continue
		}
		tokens = append(tokens, n.String())
	}
	return &Error{
		Kind:    KindInvalidRange,
		Message: fmt.Sprintf("unknown date_range %q, must be one of: %s", raw, strings.Join(tokens, ", ")),
	}
}

func newInvalidLimitError(limit int) *Error {
	return &Error{
		Kind:    KindInvalidLimit,
		Message: fmt.Sprintf("limit %d out of range, must be between %d and %d", limit, MinLimit, MaxLimit),
	}
}

func newUpstreamReadError(err error) *Error {
	return &Error{
		Kind:    KindUpstreamRead,
		Message: fmt.Sprintf("order store read failed: %s", err.Error()),
		cause:   err,
	}
}
