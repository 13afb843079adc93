package httpd

import (
	"io"

	"dqx0.com/go/rawhttp/httpd/internal/http1"
)

// Response is one HTTP response about to be serialized onto the wire.
//
// Content-Length is never computed here: a handler attaching a non-empty
// body must set it to the body's byte length itself.
type Response struct {
	Proto      string
	StatusCode int
	Reason     string
	Header     Header
	Body       []byte
}

// NewResponse returns a Response for status with the protocol set to
// HTTP/1.1 and the reason phrase taken from the wire table.
func NewResponse(status int) *Response {
	return &Response{
		Proto:      "HTTP/1.1",
		StatusCode: status,
		Reason:     http1.ReasonPhrase(status),
	}
}

// WriteWire serializes the response: status line, header fields in
// insertion order, blank line, raw body.
func (r *Response) WriteWire(w io.Writer) error {
	return http1.WriteResponse(w, r.Proto, r.StatusCode, r.Reason, r.Header.Fields(), r.Body)
}
