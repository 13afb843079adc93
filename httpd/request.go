package httpd

import "context"

// Request represents one parsed HTTP/1.1 request.
//
// Body is the raw decoded byte sequence after the header terminator; it is
// the empty string when the message carried none. Header keys are exactly
// as the client sent them.
type Request struct {
	Method string
	Path   string
	Proto  string
	Header Header
	Body   string

	// RemoteAddr is the peer's address as reported by the connection.
	RemoteAddr string
	// RequestID is the server-generated identifier for this request.
	RequestID string

	ctx context.Context
}

// Context returns the request's context. If nil, returns Background.
func (r *Request) Context() context.Context {
	if r == nil || r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// WithContext returns a shallow copy of r with its context changed to ctx.
func WithContext(r *Request, ctx context.Context) *Request {
	if r == nil {
		return nil
	}
	r2 := *r
	r2.ctx = ctx
	return &r2
}
