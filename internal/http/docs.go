// package http contains the request and response types, which are meant
// to be exported. the package is named after net/http on purpose: the
// "semantics" parts of the standard library ([net/http.Header] and
// friends) are reused here, only the message exchange is hand-rolled.
//
// the package also contains some type and value aliases from standard
// library to avoid annoying imports
package http

import (
	"net/http"
)

type Header = http.Header

var NoBody = http.NoBody
