package httprequest

import (
	"net/http"
)

// FromStd builds a Request from a net/http request. Only the path and the
// raw query string are taken from it, tokenization and decoding follow this
// package's rules.
func FromStd(req *http.Request, opts ...Option) (r *Request, err error) {
	r, err = newRequest(req.URL.Path, req.URL.RawQuery, opts)
	return
}
