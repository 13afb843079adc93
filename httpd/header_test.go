package httpd

import "testing"

func TestHeaderExactKeys(t *testing.T) {
	h := Header{}
	h.Set("X-Foo", "a")
	if got := h.Get("x-foo"); got != "" {
		t.Fatalf("Get with different case = %q, want empty", got)
	}
	if got := h.Get("X-Foo"); got != "a" {
		t.Fatalf("Get = %q, want %q", got, "a")
	}
}

func TestHeaderOverwriteKeepsPosition(t *testing.T) {
	h := Header{}
	h.Set("A", "1")
	h.Set("B", "2")
	h.Set("C", "3")
	h.Set("B", "9")
	fields := h.Fields()
	if len(fields) != 3 {
		t.Fatalf("len = %d, want 3", len(fields))
	}
	if fields[1].Name != "B" || fields[1].Value != "9" {
		t.Fatalf("fields[1] = %+v", fields[1])
	}
}

func TestHeaderDel(t *testing.T) {
	h := Header{}
	h.Set("A", "1")
	h.Set("B", "2")
	h.Del("A")
	if h.Len() != 1 {
		t.Fatalf("Len = %d, want 1", h.Len())
	}
	if got := h.Get("A"); got != "" {
		t.Fatalf("after Del, Get = %q", got)
	}
	if fields := h.Fields(); len(fields) != 1 || fields[0].Name != "B" {
		t.Fatalf("fields = %+v", fields)
	}
}

func TestHeaderLookupDistinguishesEmpty(t *testing.T) {
	h := Header{}
	h.Set("X-Empty", "")
	if v, ok := h.Lookup("X-Empty"); !ok || v != "" {
		t.Fatalf("Lookup present empty = %q, %v", v, ok)
	}
	if _, ok := h.Lookup("X-Absent"); ok {
		t.Fatal("Lookup absent reported present")
	}
}
