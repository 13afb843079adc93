package httpd

import (
	"errors"

	"dqx0.com/go/rawhttp/httpd/internal/http1"
)

var (
	// ErrMalformedRequestLine and ErrMalformedHeader are fatal to the
	// connection they occur on: no response is written, the connection is
	// closed.
	ErrMalformedRequestLine = http1.ErrMalformedRequestLine
	ErrMalformedHeader      = http1.ErrMalformedHeader

	// ErrServerClosed is returned by Serve after Shutdown.
	ErrServerClosed = errors.New("httpd: server closed")
)
