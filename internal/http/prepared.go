package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"golang.org/x/net/http/httpguts"
	"golang.org/x/net/idna"
)

// headers the transport injects itself. caller-supplied copies are
// stripped at Prepare so each appears exactly once on the wire, at its
// fixed position.
var reservedHeaders = map[string]bool{
	"host":           true,
	"content-length": true,
	"content-type":   true,
	"connection":     true,
}

type PreparedRequest struct {
	*Request

	// HeaderHost goes on the Host line. The port is omitted when it is
	// the default 80. DialAddr is the host:port the dialer connects to.
	HeaderHost string
	DialAddr   string

	GetBody func() (io.ReadCloser, error)
	Header  http.Header
	// HeaderKeys is Header's key set in sorted order, fixing the
	// serialization order of caller headers.
	HeaderKeys []string

	ContentLength int64
}

func (r *Request) Prepare() (*PreparedRequest, error) {
	host, port := r.Host, "80"
	if h, p, err := net.SplitHostPort(r.Host); err == nil {
		host, port = h, p
	}
	if host == "" {
		return nil, errors.New("empty host")
	}
	if !isASCII(host) {
		a, err := idna.Lookup.ToASCII(host)
		if err != nil {
			return nil, fmt.Errorf("invalid host %q: %v", host, err)
		}
		host = a
	}
	headerHost := host
	if port != "80" {
		headerHost = net.JoinHostPort(host, port)
	}

	headers := r.Header.Clone()
	keys := make([]string, 0, len(headers))
	for k, vs := range headers {
		if reservedHeaders[strings.ToLower(k)] {
			delete(headers, k)
			continue
		}
		if !httpguts.ValidHeaderFieldName(k) {
			return nil, fmt.Errorf("invalid header field name %q", k)
		}
		for _, v := range vs {
			if !httpguts.ValidHeaderFieldValue(v) {
				return nil, fmt.Errorf("invalid value for header field %q", k)
			}
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pr := &PreparedRequest{
		Request: r,

		HeaderHost: headerHost,
		DialAddr:   net.JoinHostPort(host, port),
		Header:     headers,
		HeaderKeys: keys,

		ContentLength: -1,
	}
	if err := pr.updateBody(); err != nil {
		return nil, err
	}
	return pr, nil
}

// should only be called once at [Prepare]
func (r *PreparedRequest) updateBody() (err error) {
	if r.Request.Body == nil {
		r.GetBody = func() (io.ReadCloser, error) {
			return http.NoBody, nil
		}
		return nil
	}
	switch b := r.Request.Body.(type) {
	case string:
		r.ContentLength = int64(len(b))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(b)), nil
		}
	case []byte:
		r.ContentLength = int64(len(b))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(b)), nil
		}
	case *bytes.Buffer: // below is taken from http.NewRequest
		r.ContentLength = int64(b.Len())
		buf := b.Bytes()
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(buf)), nil
		}
	case *bytes.Reader:
		r.ContentLength = int64(b.Len())
		snapshot := *b
		r.GetBody = func() (io.ReadCloser, error) {
			r := snapshot
			return io.NopCloser(&r), nil
		}
	case *strings.Reader:
		r.ContentLength = int64(b.Len())
		snapshot := *b
		r.GetBody = func() (io.ReadCloser, error) {
			r := snapshot
			return io.NopCloser(&r), nil
		}
	case io.Reader:
		sizer, ok := b.(interface{ Size() int64 })
		if !ok {
			// an unsized body would need chunked framing to transmit,
			// which this client does not speak
			return fmt.Errorf("cannot determine content length for body type %T", r.Request.Body)
		}
		r.ContentLength = sizer.Size()
		cb, ok := b.(io.ReadCloser)
		if !ok {
			cb = io.NopCloser(b)
		}
		once := uint32(0)
		r.GetBody = func() (io.ReadCloser, error) {
			if atomic.CompareAndSwapUint32(&once, 0, 1) {
				return cb, nil
			}
			return nil, http.ErrBodyReadAfterClose
		}
	default:
		return fmt.Errorf("unsupported body type: %T", r.Request.Body)
	}
	return nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
