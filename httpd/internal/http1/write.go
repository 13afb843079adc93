package http1

import (
	"fmt"
	"io"
	"strings"
)

// Field is one response header line. Fields are written in slice order.
type Field struct {
	Name  string
	Value string
}

// WriteResponse writes the status line, each field in order, a blank line,
// then the raw body with no trailing terminator. It never injects
// Content-Length or Connection; the caller owns every field.
func WriteResponse(w io.Writer, proto string, status int, reason string, fields []Field, body []byte) error {
	if proto == "" {
		proto = "HTTP/1.1"
	}
	if reason == "" {
		reason = ReasonPhrase(status)
	}
	if _, err := fmt.Fprintf(w, "%s %d %s\r\n", proto, status, reason); err != nil {
		return err
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%s: %s\r\n", f.Name, SanitizeValue(f.Value)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\r\n"); err != nil {
		return err
	}
	if len(body) > 0 {
		if _, err := w.Write(body); err != nil {
			return err
		}
	}
	return nil
}

// ReasonPhrase returns the default reason phrase for a status code, or ""
// for codes outside the table.
func ReasonPhrase(code int) string {
	switch code {
	case 200:
		return "OK"
	case 201:
		return "Created"
	case 204:
		return "No Content"
	case 301:
		return "Moved Permanently"
	case 302:
		return "Found"
	case 304:
		return "Not Modified"
	case 400:
		return "Bad Request"
	case 401:
		return "Unauthorized"
	case 403:
		return "Forbidden"
	case 404:
		return "Not Found"
	case 500:
		return "Internal Server Error"
	case 501:
		return "Not Implemented"
	default:
		return ""
	}
}

// SanitizeValue removes CR/LF and control chars except HTAB.
func SanitizeValue(v string) string {
	if v == "" {
		return v
	}
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == '\r' || c == '\n' || c == 0x7f {
			continue
		}
		if c < 0x20 && c != '\t' {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
