// package transport contains the implementation of the *message syntax*
// defined by the http RFCs, currently:
//
//	HTTP Semantics (RFC9110) and
//	HTTP/1.1 (RFC9112)
//
// only the connection-per-message subset is implemented: every request
// carries "Connection: close" and every response is read until the peer
// closes the stream. there is no chunked transfer coding and no
// keep-alive; the end of the connection is the end of the message.
package transport
