package httpd

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestNegotiate(t *testing.T) {
	convey.Convey("first supported coding in client order wins", t, func() {
		req := &Request{}
		req.Header.Set("Accept-Encoding", "br, gzip")
		resp := NewResponse(200)
		Negotiate(req, resp, nil)
		convey.So(resp.Header.Get("Content-Encoding"), convey.ShouldEqual, "gzip")
	})

	convey.Convey("no supported coding leaves the header unset", t, func() {
		req := &Request{}
		req.Header.Set("Accept-Encoding", "br, zstd")
		resp := NewResponse(200)
		Negotiate(req, resp, nil)
		_, ok := resp.Header.Lookup("Content-Encoding")
		convey.So(ok, convey.ShouldBeFalse)
	})

	convey.Convey("custom supported list honors client order", t, func() {
		req := &Request{}
		req.Header.Set("Accept-Encoding", "deflate, gzip")
		resp := NewResponse(200)
		Negotiate(req, resp, []string{"gzip", "deflate"})
		convey.So(resp.Header.Get("Content-Encoding"), convey.ShouldEqual, "deflate")
	})

	convey.Convey("connection value is copied verbatim", t, func() {
		req := &Request{}
		req.Header.Set("Connection", "Keep-Alive")
		resp := NewResponse(200)
		Negotiate(req, resp, nil)
		convey.So(resp.Header.Get("Connection"), convey.ShouldEqual, "Keep-Alive")
	})

	convey.Convey("no connection header means none is added", t, func() {
		req := &Request{}
		resp := NewResponse(200)
		Negotiate(req, resp, nil)
		_, ok := resp.Header.Lookup("Connection")
		convey.So(ok, convey.ShouldBeFalse)
	})

	convey.Convey("handler headers survive and the body stays untouched", t, func() {
		req := &Request{}
		req.Header.Set("Accept-Encoding", "gzip")
		resp := NewResponse(200)
		resp.Header.Set("Content-Type", "text/plain")
		resp.Header.Set("Content-Length", "5")
		resp.Body = []byte("hello")
		Negotiate(req, resp, nil)
		convey.So(resp.Header.Get("Content-Type"), convey.ShouldEqual, "text/plain")
		convey.So(resp.Header.Get("Content-Encoding"), convey.ShouldEqual, "gzip")
		convey.So(string(resp.Body), convey.ShouldEqual, "hello")
	})
}
