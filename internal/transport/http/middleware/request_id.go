package middleware

import (
	"net/http"

	"github.com/google/uuid"

	appctx "github.com/aishki/bazario/internal/pkg/context"
)

const HeaderXRequestID = "X-Request-Id"

// RequestID reuses the caller-supplied request id when present and
// generates one otherwise. The id is echoed back in the response header
// and stored in the request context for log correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderXRequestID)

		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set(HeaderXRequestID, reqID)

		ctx := appctx.WithRequestID(r.Context(), reqID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
