// package errors defines the failure taxonomy of an exchange. Every
// failure is terminal: nothing is retried and nothing is logged, the
// typed value travels to the immediate caller as-is.
package errors

import (
	"strconv"

	"github.com/httpone/httpone/internal/http"
)

// NetworkError reports a transport-level failure: connect, deadline
// arming, request write or response read.
type NetworkError struct {
	Op  string
	Err error
}

// Network wraps err with the operation that hit it.
func Network(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Op + ": " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// InvalidResponseError reports response text that could not be parsed
// into a status line with a numeric code.
type InvalidResponseError struct {
	Reason string
}

func InvalidResponse(reason string) *InvalidResponseError {
	return &InvalidResponseError{Reason: reason}
}

func (e *InvalidResponseError) Error() string {
	return "invalid response: " + e.Reason
}

// StatusError reports a response whose status code is 400 or above.
// The parsed response travels with the error so callers can still
// inspect the headers and body the server sent alongside the failure
// code.
type StatusError struct {
	Code       int
	StatusLine string
	Response   *http.Response
}

func (e *StatusError) Error() string {
	return "http " + strconv.Itoa(e.Code) + " error: server returned " + e.StatusLine
}
