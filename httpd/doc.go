// Package httpd is a small from-scratch HTTP/1.1 server built directly on
// raw TCP byte streams: no net/http, the wire parsing and serialization
// are its own.
//
// Highlights
//   - Wire engine: request-line/header/body parsing with named failure
//     modes, exact-byte response serialization, insertion-ordered headers.
//   - Connections: one goroutine per accepted connection, keep-alive until
//     the peer sends Connection: close or hangs up, optional idle timeout,
//     SO_REUSEPORT on the listener.
//   - Routes: /echo/<msg>, /user-agent, /files/<name> (GET serves, any
//     other method stores) over an afero filesystem, plus a root probe.
//   - Observability: plug-in Logger and Meter interfaces, with a
//     logrus-backed logger included.
//
// Framing limitations, by construction: one Read per exchange, so a
// request must fit the read buffer (default 4096 bytes) and bodies are not
// delimited by Content-Length; no pipelining; no chunked transfer; no TLS;
// no HTTP/2. Content codings are negotiated but never applied to the body.
// Handlers own Content-Length; the serializer never computes it. Malformed
// requests are answered by closing the connection, not with a 400.
//
// Quick start:
//
//	s := &httpd.Server{
//	    Addr:    "localhost:4221",
//	    Handler: &httpd.Routes{FS: afero.NewOsFs(), Dir: "/tmp"},
//	}
//	if err := s.ListenAndServe(); err != nil { log.Fatal(err) }
package httpd
