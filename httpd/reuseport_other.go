//go:build !unix

package httpd

import (
	"context"
	"net"
)

// listenReusable on platforms without SO_REUSEPORT falls back to a plain
// listener.
func listenReusable(ctx context.Context, addr string) (net.Listener, error) {
	var lc net.ListenConfig
	return lc.Listen(ctx, "tcp", addr)
}
