package httpd

import (
	"dqx0.com/go/rawhttp/httpd/internal/http1"
)

// Header is an insertion-ordered set of header fields. Keys are matched
// exactly, case included; Set on an existing key overwrites the value but
// keeps the field's original position. Serialization emits fields in
// first-set order.
type Header struct {
	names []string
	vals  map[string]string
}

// Get returns the value for key, or "" if the key is absent.
func (h *Header) Get(key string) string {
	if h == nil || h.vals == nil {
		return ""
	}
	return h.vals[key]
}

// Lookup returns the value for key and whether the key is present,
// distinguishing an absent field from an empty value.
func (h *Header) Lookup(key string) (string, bool) {
	if h == nil || h.vals == nil {
		return "", false
	}
	v, ok := h.vals[key]
	return v, ok
}

func (h *Header) Set(key, value string) {
	if h.vals == nil {
		h.vals = make(map[string]string)
	}
	if _, ok := h.vals[key]; !ok {
		h.names = append(h.names, key)
	}
	h.vals[key] = value
}

func (h *Header) Del(key string) {
	if h == nil || h.vals == nil {
		return
	}
	if _, ok := h.vals[key]; !ok {
		return
	}
	delete(h.vals, key)
	for i, n := range h.names {
		if n == key {
			h.names = append(h.names[:i], h.names[i+1:]...)
			break
		}
	}
}

func (h *Header) Len() int {
	if h == nil {
		return 0
	}
	return len(h.names)
}

// Fields returns the header as wire fields in insertion order.
func (h *Header) Fields() []http1.Field {
	if h == nil {
		return nil
	}
	out := make([]http1.Field, 0, len(h.names))
	for _, n := range h.names {
		out = append(out, http1.Field{Name: n, Value: h.vals[n]})
	}
	return out
}
