package transport

import (
	"context"
	"net"
	"net/http"
	"strings"

	"brightbooks/internal/domain"
	"brightbooks/internal/leads"
)

type ctxKey int

const requestMetaKey ctxKey = iota + 1

// ClientContext derives the client address and user agent from the request
// and stores them in the request context. See ClientIP for how trustProxy
// affects the address.
func ClientContext(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			meta := leads.RequestMeta{
				SourceIP:  ClientIP(r, trustProxy),
				UserAgent: strings.TrimSpace(r.UserAgent()),
			}
			ctx := context.WithValue(r.Context(), requestMetaKey, meta)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestMetaFrom returns the request metadata stored by ClientContext. It
// falls back to an unknown source when the middleware did not run.
func RequestMetaFrom(ctx context.Context) leads.RequestMeta {
	if meta, ok := ctx.Value(requestMetaKey).(leads.RequestMeta); ok {
		return meta
	}
	return leads.RequestMeta{SourceIP: domain.UnknownSourceIP}
}

// ClientIP returns the best guess of the client address for r. With
// trustProxy the first X-Forwarded-For hop wins, then X-Real-IP. The
// connection's remote address is used otherwise. Forwarding headers are
// client controlled unless a proxy overwrites them.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
			if first != "" {
				return first
			}
		}
		if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
			return realIP
		}
	}
	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
			return host
		}
		return r.RemoteAddr
	}
	return domain.UnknownSourceIP
}
