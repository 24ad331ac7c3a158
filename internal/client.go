package internal

import (
	"context"
	"io"
	"time"

	"github.com/httpone/httpone/internal/dialer"
	herrors "github.com/httpone/httpone/internal/errors"
	"github.com/httpone/httpone/internal/http"
	"github.com/httpone/httpone/internal/transport"
)

type PreparedRequest = http.PreparedRequest

type Handler = func(ctx context.Context, req *PreparedRequest) (*http.Response, error)
type Middleware func(next Handler) Handler

// readTimeout bounds the response read. The deadline is armed right
// after the request is written; a response that takes longer surfaces
// as a network error, never as a partial success.
const readTimeout = 10 * time.Second

// Client performs single-shot HTTP/1.1 exchanges: one fresh connection
// per call, torn down within the call. A zero value Client is ready to
// use and holds no state between calls.
type Client struct {
	middlewares []Middleware
	dialer      http.Dialer
}

// Use appends mw to the end of the chain. The first "Use"d mw executes first
func (c *Client) Use(mws ...Middleware) {
	c.middlewares = append(c.middlewares, mws...)
}

// UseDialer swaps out the [http.Dialer] used by subsequent exchanges,
// usually by wrapping the current one.
func (c *Client) UseDialer(wrap func(http.Dialer) http.Dialer) {
	if c.dialer == nil {
		c.dialer = &dialer.CoreDialer{}
	}
	c.dialer = wrap(c.dialer)
}

func (c *Client) dial(ctx context.Context, req *PreparedRequest) (io.ReadWriteCloser, error) {
	if c.dialer != nil {
		return c.dialer.Dial(ctx, req)
	}
	return (&dialer.CoreDialer{}).Dial(ctx, req)
}

// CtxDo runs one exchange: prepare, dial, write, read to EOF, parse.
// Exactly one attempt is made; nothing is retried. ctx applies to the
// dial, the read is bounded by the fixed read deadline.
func (c *Client) CtxDo(ctx context.Context, req *http.Request) (*http.Response, error) {
	pr, err := req.Prepare()
	if err != nil {
		return nil, err
	}
	next := c.exchange
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		next = c.middlewares[i](next)
	}
	return next(ctx, pr)
}

// Do is CtxDo with a background context.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.CtxDo(context.Background(), req)
}

// Get performs a single GET exchange against host (port 80 unless the
// host carries an explicit ":port").
func (c *Client) Get(host, path string, header http.Header) (*http.Response, error) {
	return c.Do(&http.Request{Method: "GET", Host: host, Path: path, Header: header})
}

// Post performs a single POST exchange carrying body.
func (c *Client) Post(host, path string, body interface{}, header http.Header) (*http.Response, error) {
	return c.Do(&http.Request{Method: "POST", Host: host, Path: path, Body: body, Header: header})
}

func (c *Client) exchange(ctx context.Context, req *PreparedRequest) (*http.Response, error) {
	conn, err := c.dial(ctx, req)
	if err != nil {
		return nil, herrors.Network("connect to "+req.DialAddr, err)
	}
	defer conn.Close()

	var t transport.HTTP1
	if err := t.WriteRequest(conn, req); err != nil {
		return nil, herrors.Network("send request", err)
	}
	// in-memory streams used in tests are not deadline-aware, real
	// connections are
	if d, ok := conn.(interface{ SetReadDeadline(time.Time) error }); ok {
		if err := d.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
			return nil, herrors.Network("set read deadline", err)
		}
	}
	return t.ReadResponse(conn)
}
