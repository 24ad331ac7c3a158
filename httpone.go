package httpone

import (
	"net/http"

	"github.com/httpone/httpone/internal"
	ierrors "github.com/httpone/httpone/internal/errors"
	ihttp "github.com/httpone/httpone/internal/http"
)

type Client = internal.Client
type Header = http.Header
type Request = ihttp.Request
type PreparedRequest = ihttp.PreparedRequest
type Response = ihttp.Response

type Handler = internal.Handler
type Middleware = internal.Middleware

type NetworkError = ierrors.NetworkError
type InvalidResponseError = ierrors.InvalidResponseError
type StatusError = ierrors.StatusError

// DefaultClient backs the package-level helpers. It is a plain zero
// value: clients hold no state between calls, so sharing one is safe.
var DefaultClient = &Client{}

// Get performs a single GET exchange against host (port 80 unless the
// host carries an explicit ":port") and returns the parsed response.
func Get(host, path string, header Header) (*Response, error) {
	return DefaultClient.Get(host, path, header)
}

// Post performs a single POST exchange carrying body. Content-Length
// and Content-Type are derived from the body and injected before any
// caller headers.
func Post(host, path string, body interface{}, header Header) (*Response, error) {
	return DefaultClient.Post(host, path, body, header)
}
