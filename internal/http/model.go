package http

import (
	"context"
	"io"
	"net/http"
)

// Dialer opens the stream a single request/response exchange runs on.
// Implementations hand out a fresh connection per call and must not
// retain it afterwards; the exchange owns the connection and closes it.
type Dialer interface {
	Dial(ctx context.Context, r *PreparedRequest) (io.ReadWriteCloser, error)
	Unwrap() Dialer
}

// Request describes one exchange. It is single-use: build it, send it,
// throw it away.
type Request struct {
	Method string
	// Host is the destination name, optionally carrying an explicit
	// ":port". Without one, port 80 is assumed.
	Host string
	// Path is the request target, sent as-is. No validation against the
	// HTTP grammar is performed on Method or Path.
	Path   string
	Body   interface{}
	Header http.Header
}

// Response is the fully materialized result of one exchange. By the
// time a Response is returned the connection is already closed.
type Response struct {
	// StatusLine is the first line of the response, kept verbatim for
	// diagnostics.
	StatusLine string
	StatusCode int

	// Headers holds the raw header lines in wire order, one
	// "Name: value" entry per line. They are intentionally not split.
	Headers []string
	Body    string
}
