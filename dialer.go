package httpone

import (
	"github.com/httpone/httpone/internal/dialer"
	ihttp "github.com/httpone/httpone/internal/http"
)

// Dialers are responsible for creating the underlying stream a request
// is written to and the response is read from: here, a fresh plaintext
// TCP connection per exchange.
//
// A Dialer MUST NOT hold active connection states, which means a Dialer
// must be able to be swapped out from a [Client] without pain. Every
// connection it hands out lives for exactly one exchange.
type Dialer = ihttp.Dialer

// CoreDialer is the default implementation of the [Dialer] interface.
// It would be used by a zero value [Client].
type CoreDialer = dialer.CoreDialer
