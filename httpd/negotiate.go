package httpd

import "strings"

// DefaultEncodings lists the content codings the server advertises.
var DefaultEncodings = []string{"gzip"}

// Negotiate derives the response's negotiated headers from the request.
// It runs after the handler, on every response.
//
// Handler-set fields are kept; only the two negotiated fields below are
// written. If the request carries Accept-Encoding, its value is split on
// commas, each token trimmed, and the first token (in client order)
// matching a supported coding becomes Content-Encoding. If the request
// carries Connection, the value is copied verbatim to the response; the
// same value drives the connection loop's keep-alive decision.
//
// The advertised coding is not applied: the body is written untransformed.
func Negotiate(req *Request, resp *Response, supported []string) {
	if len(supported) == 0 {
		supported = DefaultEncodings
	}
	if ae, ok := req.Header.Lookup("Accept-Encoding"); ok {
		if enc := firstAccepted(ae, supported); enc != "" {
			resp.Header.Set("Content-Encoding", enc)
		}
	}
	if cv, ok := req.Header.Lookup("Connection"); ok {
		resp.Header.Set("Connection", cv)
	}
}

func firstAccepted(accept string, supported []string) string {
	for _, tok := range strings.Split(accept, ",") {
		tok = strings.TrimSpace(tok)
		for _, enc := range supported {
			if tok == enc {
				return tok
			}
		}
	}
	return ""
}
