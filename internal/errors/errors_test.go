package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/httpone/httpone/internal/errors"
	"github.com/httpone/httpone/internal/http"
)

func TestNetworkError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := errors.Network("connect to www.example.com:80", cause)
	want := "network error: connect to www.example.com:80: connection refused"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
	if !stderrors.Is(err, cause) {
		t.Error("cause not reachable through Unwrap")
	}
}

func TestInvalidResponseError(t *testing.T) {
	err := errors.InvalidResponse("empty response")
	if err.Error() != "invalid response: empty response" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestStatusError(t *testing.T) {
	err := &errors.StatusError{
		Code:       404,
		StatusLine: "HTTP/1.1 404 Not Found",
		Response:   &http.Response{StatusCode: 404, Body: "nope"},
	}
	want := "http 404 error: server returned HTTP/1.1 404 Not Found"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}

	var statusErr *errors.StatusError
	if !stderrors.As(error(err), &statusErr) {
		t.Fatal("errors.As failed")
	}
	if statusErr.Response.Body != "nope" {
		t.Errorf("attached body = %q", statusErr.Response.Body)
	}
}
