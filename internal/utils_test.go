package internal_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/httpone/httpone/internal"
	"github.com/httpone/httpone/internal/http"
)

type CombinedReadWriteCloser struct {
	io.Reader
	io.Writer
	io.Closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

type TestDialer struct {
	io.ReadWriteCloser
	err error
}

// Dial implements http.Dialer.
func (t *TestDialer) Dial(ctx context.Context, r *http.PreparedRequest) (io.ReadWriteCloser, error) {
	if t.err != nil {
		return nil, t.err
	}
	return t.ReadWriteCloser, nil
}

// Unwrap implements http.Dialer.
func (t *TestDialer) Unwrap() http.Dialer {
	return nil
}

// SendSingleRequest runs req against a canned 200 response and returns
// a reader yielding the exact bytes the client put on the wire.
func SendSingleRequest(t *testing.T, req *http.Request) io.Reader {
	readResponse, writeResponse := io.Pipe()
	go func() {
		io.Copy(writeResponse, strings.NewReader("HTTP/1.1 200 OK\r\nContent-Length: 0\r\n\r\n"))
		writeResponse.Close()
	}()

	readRequest, writeRequest := io.Pipe()
	c := &internal.Client{}
	c.UseDialer(func(http.Dialer) http.Dialer {
		return &TestDialer{ReadWriteCloser: CombinedReadWriteCloser{
			Reader: readResponse,
			Writer: writeRequest,
			Closer: writeRequest,
		}}
	})
	go func() {
		if _, err := c.CtxDo(context.Background(), req); err != nil {
			t.Error(err)
		}
	}()
	return readRequest
}

// exchange runs req against the canned raw response and returns the
// client's result, draining whatever the client writes.
func exchange(t *testing.T, c *internal.Client, req *http.Request, rawResponse string) (*http.Response, error) {
	t.Helper()
	readResponse, writeResponse := io.Pipe()
	go func() {
		io.Copy(writeResponse, strings.NewReader(rawResponse))
		writeResponse.Close()
	}()

	readRequest, writeRequest := io.Pipe()
	go io.Copy(io.Discard, readRequest)

	c.UseDialer(func(http.Dialer) http.Dialer {
		return &TestDialer{ReadWriteCloser: CombinedReadWriteCloser{
			Reader: readResponse,
			Writer: writeRequest,
			Closer: writeRequest,
		}}
	})
	return c.CtxDo(context.Background(), req)
}
