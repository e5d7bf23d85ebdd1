package middleware

import (
	stdhttp "net/http"

	"reparto/internal/platform/logger"
	pnet "reparto/internal/platform/net"
)

// LogContext copies the request id onto the logger context so that
// logger.C(ctx) emits request_id on every line downstream. Mount after
// RequestID so there is an id to copy
func LogContext(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		ctx := r.Context()
		if rid := pnet.RequestID(ctx); rid != "" {
			ctx = logger.WithRequest(ctx, rid)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
