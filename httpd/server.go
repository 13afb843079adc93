package httpd

import (
	"bufio"
	"context"
	"net"
	"strings"
	"sync"
	"time"

	"dqx0.com/go/rawhttp/httpd/internal/http1"
	"dqx0.com/go/rawhttp/internal/obs"
)

// Handler turns one request into one response. Implementations never touch
// the connection: the returned response is their only output.
type Handler interface {
	Serve(*Request) *Response
}

type HandlerFunc func(*Request) *Response

func (f HandlerFunc) Serve(r *Request) *Response {
	return f(r)
}

type Server struct {
	Addr    string
	Handler Handler

	// Encodings lists the content codings offered during negotiation.
	// Nil means DefaultEncodings.
	Encodings []string

	// ReadBufferBytes caps one exchange's inbound bytes. A request larger
	// than this is truncated; see the package doc for framing limitations.
	ReadBufferBytes int

	// ReadTimeout and IdleTimeout bound the blocking read awaiting a
	// request. Both default to zero, which holds an idle worker forever.
	ReadTimeout time.Duration
	IdleTimeout time.Duration

	Logger obs.Logger
	Meter  obs.Meter

	mu     sync.Mutex
	ln     net.Listener
	active sync.WaitGroup
	closed bool
}

const defaultReadBuffer = 4096

func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = "localhost:4221"
	}
	ln, err := listenReusable(context.Background(), addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on l, one goroutine per connection with no
// cap, until the listener fails or Shutdown closes it.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	s.ln = l
	s.mu.Unlock()
	defer l.Close()
	for {
		c, err := l.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if closed {
				return ErrServerClosed
			}
			return err
		}
		s.meter().Counter("connections_total", 1)
		s.active.Add(1)
		go func() {
			defer s.active.Done()
			s.serveConn(c)
		}()
	}
}

// Shutdown stops accepting and waits for in-flight connections to finish,
// or for ctx to expire. Idle keep-alive connections are not interrupted;
// they hold Shutdown until their peer hangs up or ctx runs out.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	ln := s.ln
	s.mu.Unlock()
	if ln != nil {
		_ = ln.Close()
	}
	done := make(chan struct{})
	go func() {
		s.active.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// serveConn runs one connection's exchange cycle: read a buffer, parse,
// route, negotiate, serialize, write, then either await the next request
// or close. At most one request is in flight per connection.
func (s *Server) serveConn(c net.Conn) {
	defer c.Close()
	connID := genID()
	s.logger().Logf(obs.Debug, "conn %s: open from %s", connID, c.RemoteAddr())
	bw := bufio.NewWriter(c)
	buf := make([]byte, s.readBuffer())
	for {
		if d := s.readDeadline(); d > 0 {
			_ = c.SetReadDeadline(time.Now().Add(d))
		}
		n, err := c.Read(buf)
		if err != nil || n == 0 {
			s.logger().Logf(obs.Debug, "conn %s: closed (%v)", connID, err)
			return
		}

		pr, err := http1.ParseRequest(buf[:n])
		if err != nil {
			// Fail closed: unparseable input gets no response.
			s.logger().Logf(obs.Warn, "conn %s: %v", connID, err)
			s.meter().Counter("parse_errors_total", 1)
			return
		}
		req := &Request{
			Method:     pr.Method,
			Path:       pr.Path,
			Proto:      pr.Proto,
			Body:       pr.Body,
			RemoteAddr: c.RemoteAddr().String(),
			RequestID:  genID(),
		}
		for k, v := range pr.Header {
			req.Header.Set(k, v)
		}
		req = WithContext(req, WithRequestID(context.Background(), req.RequestID))
		s.meter().Counter("requests_total", 1)

		resp := s.handler().Serve(req)
		Negotiate(req, resp, s.Encodings)

		if err := resp.WriteWire(bw); err != nil {
			s.logger().Logf(obs.Warn, "conn %s: write: %v", connID, err)
			return
		}
		if err := bw.Flush(); err != nil {
			s.logger().Logf(obs.Warn, "conn %s: flush: %v", connID, err)
			return
		}
		s.meter().Histogram("response_bytes", float64(len(resp.Body)))
		s.logger().Logf(obs.Info, "conn %s: %s %s -> %d", connID, req.Method, req.Path, resp.StatusCode)

		if strings.EqualFold(req.Header.Get("Connection"), "close") {
			s.logger().Logf(obs.Debug, "conn %s: close requested", connID)
			return
		}
	}
}

func (s *Server) handler() Handler {
	if s.Handler != nil {
		return s.Handler
	}
	return HandlerFunc(func(r *Request) *Response {
		return NewResponse(404)
	})
}

func (s *Server) logger() obs.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return obs.NopLogger{}
}

func (s *Server) meter() obs.Meter {
	if s.Meter != nil {
		return s.Meter
	}
	return obs.NopMeter{}
}

func (s *Server) readBuffer() int {
	if s.ReadBufferBytes <= 0 {
		return defaultReadBuffer
	}
	return s.ReadBufferBytes
}

func (s *Server) readDeadline() time.Duration {
	if s.IdleTimeout > 0 {
		return s.IdleTimeout
	}
	return s.ReadTimeout
}
