package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"kycgate/pkg/requestcontext"
)

// RequestIDHeader is the correlation header honored and echoed by the
// server.
const RequestIDHeader = "X-Request-ID"

// RequestID attaches a correlation ID to every request: the inbound header
// when present, otherwise a fresh UUID. The ID is echoed in the response
// and available to services via requestcontext.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
