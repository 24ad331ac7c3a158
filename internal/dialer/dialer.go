package dialer

import (
	"context"
	"io"
	"net"

	"github.com/httpone/httpone/internal/http"
)

var zeroDialer net.Dialer

// CoreDialer is the default implementation of the [http.Dialer]
// interface. It opens one plaintext TCP connection per call and never
// reuses it; the exchange owns the connection and closes it when the
// response has been read.
type CoreDialer struct {
	// NetDialer, when set, replaces the zero [net.Dialer] used for the
	// actual connect.
	NetDialer *net.Dialer
}

func (d *CoreDialer) Dial(ctx context.Context, r *http.PreparedRequest) (io.ReadWriteCloser, error) {
	nd := d.NetDialer
	if nd == nil {
		nd = &zeroDialer
	}
	return nd.DialContext(ctx, "tcp", r.DialAddr)
}

func (d *CoreDialer) Unwrap() http.Dialer {
	return nil
}
