package middleware

import (
	"net/http"

	"github.com/aishki/bazario/internal/transport/http/response"
)

// BodyLimit caps the request body at limit bytes. Handlers reading past
// the cap get an error from MaxBytesReader, which surfaces as a 400.
func BodyLimit(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				response.WriteJSON(w, http.StatusRequestEntityTooLarge, response.ErrorBody{
					Status:  "error",
					Message: "Request body too large",
				})
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
