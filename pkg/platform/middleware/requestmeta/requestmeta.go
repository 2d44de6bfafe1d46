// Package requestmeta stamps each request with an id and a request-scoped
// timestamp. It should be applied early in the middleware chain.
package requestmeta

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"veriface/pkg/requestcontext"
)

// RequestIDHeader carries the request id back to the caller.
const RequestIDHeader = "X-Request-Id"

// Middleware assigns a request id (honoring one supplied by the caller) and
// captures the request start time in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		ctx = requestcontext.WithTime(ctx, time.Now())

		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
