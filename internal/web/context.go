package web

import (
	"net"
	"net/http"

	"github.com/JonMunkholm/prejoin/internal/core"
)

// withClient returns r with the client address and User-Agent attached to
// its context. RemoteAddr has already been resolved by TrustedRealIP.
func withClient(r *http.Request) *http.Request {
	ctx := core.ContextWithClient(r.Context(), core.ClientInfo{
		IP:        clientIP(r.RemoteAddr),
		UserAgent: r.UserAgent(),
	})
	return r.WithContext(ctx)
}

// clientIP drops the port from a host:port address. TrustedRealIP leaves a
// bare IP when it rewrote the address, so that is returned unchanged.
func clientIP(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
