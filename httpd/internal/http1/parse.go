package http1

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedRequestLine = errors.New("http1: malformed request line")
	ErrMalformedHeader      = errors.New("http1: malformed header")
)

// ParsedRequest is a minimal representation parsed from the wire.
// Header keys are kept exactly as sent; a repeated key overwrites the
// earlier value.
type ParsedRequest struct {
	Method string
	Path   string
	Proto  string
	Header map[string]string
	Body   string
}

// ParseRequest parses one complete HTTP/1.1 message held in buf.
//
// The buffer must contain the whole message: request line, header lines,
// and optional body, framed by CRLF with an empty line ending the headers.
// The body is everything after the first CRLFCRLF, taken verbatim; it is
// not delimited by Content-Length, so a message split across reads or a
// body extending past the buffer is not supported.
func ParseRequest(buf []byte) (*ParsedRequest, error) {
	msg := string(buf)
	head, body, _ := strings.Cut(msg, "\r\n\r\n")
	lines := strings.Split(head, "\r\n")

	tokens := strings.Split(lines[0], " ")
	if len(tokens) < 3 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRequestLine, lines[0])
	}
	hdr := make(map[string]string)
	for _, line := range lines[1:] {
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
		}
		hdr[name] = value
	}
	return &ParsedRequest{
		Method: tokens[0],
		Path:   tokens[1],
		Proto:  tokens[2],
		Header: hdr,
		Body:   body,
	}, nil
}
