package transport

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	herrors "github.com/httpone/httpone/internal/errors"
	"github.com/httpone/httpone/internal/http"
)

// defaultContentType is stamped on every request that carries a body.
const defaultContentType = "application/json"

// HTTP1 is the one-shot HTTP/1.1 wire codec. The write side serializes
// exactly one request; the read side drains the stream to EOF and
// parses the accumulated text in a single linear pass.
type HTTP1 struct{}

func (t HTTP1) WriteRequest(w io.Writer, r *http.PreparedRequest) error {
	body, err := r.GetBody()
	if err != nil {
		return err
	}
	if body != nil {
		defer body.Close() // request body is ALWAYS closed
	}

	if err := t.writeHeader(w, r); err != nil {
		return err
	}
	if body != nil {
		if _, err := io.Copy(w, body); err != nil {
			return err
		}
	}
	return nil
}

// writeHeader writes the request line and header block of an http 1.1
// request, e.g.:
//
//	POST /submit HTTP/1.1\r\n
//	Host: www.example.com\r\n
//	Content-Length: 7\r\n
//	Content-Type: application/json\r\n
//	X-Trace: cccccc\r\n
//	Connection: close\r\n
//	\r\n
//
// Content-Length and Content-Type appear iff the request has a body.
// Caller headers follow them in sorted key order, so serialization is
// byte-for-byte reproducible.
func (t HTTP1) writeHeader(w io.Writer, r *http.PreparedRequest) error {
	header := bufio.NewWriter(w) // default bufsize is 4096

	if _, err := header.WriteString(r.Method); err != nil {
		return err
	}
	header.WriteByte(' ')
	header.WriteString(r.Path)
	header.WriteString(" HTTP/1.1\r\n")

	header.WriteString("Host: ")
	header.WriteString(r.HeaderHost)
	header.WriteString("\r\n")
	if r.ContentLength != -1 {
		header.WriteString("Content-Length: ")
		header.WriteString(strconv.FormatInt(r.ContentLength, 10))
		header.WriteString("\r\nContent-Type: ")
		header.WriteString(defaultContentType)
		header.WriteString("\r\n")
	}
	for _, k := range r.HeaderKeys {
		for _, v := range r.Header[k] {
			header.WriteString(k)
			header.WriteString(": ")
			header.WriteString(v)
			if _, err := header.WriteString("\r\n"); err != nil {
				return err
			}
		}
	}
	if _, err := header.WriteString("Connection: close\r\n\r\n"); err != nil {
		return err
	}
	return header.Flush()
}

// ReadResponse drains r to EOF and parses the accumulated text. The
// peer signals the end of the exchange by closing the connection,
// which the unconditional "Connection: close" on the write side asks
// it to do.
func (t HTTP1) ReadResponse(r io.Reader) (*http.Response, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, herrors.Network("read response", err)
	}
	return Parse(string(raw))
}

// Parse splits raw response text into status line, header lines and
// body. Header lines run until the first empty line; without one, all
// remaining lines are headers and the body is empty. A status code of
// 400 or above comes back as a *[errors.StatusError] carrying the
// parsed response.
func Parse(raw string) (*http.Response, error) {
	if raw == "" {
		return nil, herrors.InvalidResponse("empty response")
	}
	lines := splitLines(raw)

	statusLine := lines[0]
	code, ok := statusCode(statusLine)
	if !ok {
		return nil, herrors.InvalidResponse("invalid status line")
	}

	var headers []string
	rest := lines[1:]
	for len(rest) > 0 {
		line := rest[0]
		rest = rest[1:]
		if line == "" {
			break
		}
		headers = append(headers, line)
	}

	resp := &http.Response{
		StatusLine: statusLine,
		StatusCode: code,
		Headers:    headers,
		Body:       strings.Join(rest, "\n"),
	}
	if code >= 400 {
		return nil, &herrors.StatusError{Code: code, StatusLine: statusLine, Response: resp}
	}
	return resp, nil
}

// statusCode pulls the second whitespace-delimited token out of the
// status line and parses it as a non-negative decimal code.
func statusCode(statusLine string) (int, bool) {
	fields := strings.Fields(statusLine)
	if len(fields) < 2 {
		return 0, false
	}
	code, err := strconv.Atoi(fields[1])
	if err != nil || code < 0 {
		return 0, false
	}
	return code, true
}

// splitLines breaks raw on line-feed boundaries, dropping one trailing
// "\r" per line. A terminator on the final line does not produce a
// trailing empty line.
func splitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
