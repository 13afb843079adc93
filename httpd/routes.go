package httpd

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"dqx0.com/go/rawhttp/internal/obs"
)

// Routes dispatches requests to the built-in endpoint families.
//
// Dir is joined with the /files/ name verbatim; dot-dot segments are not
// rejected, so a crafted name can address files outside Dir.
type Routes struct {
	FS  afero.Fs // filesystem holding the serving root; nil means the OS fs
	Dir string   // serving root for /files/
	Log obs.Logger
}

// Serve implements Handler. Dispatch priority: /echo/ prefix, /user-agent
// exact, /files/ prefix, / exact, then 404.
func (rt *Routes) Serve(req *Request) *Response {
	switch {
	case strings.HasPrefix(req.Path, "/echo/"):
		return rt.echo(req)
	case req.Path == "/user-agent":
		return rt.userAgent(req)
	case strings.HasPrefix(req.Path, "/files/"):
		return rt.files(req)
	case req.Path == "/":
		return NewResponse(200)
	default:
		return NewResponse(404)
	}
}

func (rt *Routes) echo(req *Request) *Response {
	return textResponse(200, strings.TrimPrefix(req.Path, "/echo/"))
}

func (rt *Routes) userAgent(req *Request) *Response {
	ua, ok := req.Header.Lookup("User-Agent")
	if !ok {
		ua = "Unknown"
	}
	return textResponse(200, ua)
}

func (rt *Routes) files(req *Request) *Response {
	name := strings.TrimPrefix(req.Path, "/files/")
	full := filepath.Join(rt.Dir, name)
	if req.Method == "GET" {
		return rt.readFile(full)
	}
	return rt.writeFile(full, req)
}

func (rt *Routes) readFile(full string) *Response {
	b, err := afero.ReadFile(rt.fs(), full)
	if err != nil {
		if os.IsNotExist(err) {
			return NewResponse(404)
		}
		rt.log().Logf(obs.Error, "read %s: %v", full, err)
		return NewResponse(500)
	}
	rt.log().Logf(obs.Debug, "served %s (%s)", full, humanize.Bytes(uint64(len(b))))
	resp := NewResponse(200)
	resp.Header.Set("Content-Type", "application/octet-stream")
	resp.Header.Set("Content-Length", strconv.Itoa(len(b)))
	resp.Body = b
	return resp
}

// writeFile handles every non-GET method: the request body is stored
// verbatim at the target path, replacing any previous content. Writers to
// the same name on different connections race; last write wins.
func (rt *Routes) writeFile(full string, req *Request) *Response {
	if err := afero.WriteFile(rt.fs(), full, []byte(req.Body), 0o644); err != nil {
		rt.log().Logf(obs.Error, "write %s: %v", full, err)
		return NewResponse(500)
	}
	rt.log().Logf(obs.Debug, "stored %s (%s)", full, humanize.Bytes(uint64(len(req.Body))))
	return NewResponse(201)
}

func (rt *Routes) fs() afero.Fs {
	if rt.FS == nil {
		return afero.NewOsFs()
	}
	return rt.FS
}

func (rt *Routes) log() obs.Logger {
	if rt.Log == nil {
		return obs.NopLogger{}
	}
	return rt.Log
}

func textResponse(status int, body string) *Response {
	resp := NewResponse(status)
	resp.Header.Set("Content-Type", "text/plain")
	resp.Header.Set("Content-Length", strconv.Itoa(len(body)))
	resp.Body = []byte(body)
	return resp
}
