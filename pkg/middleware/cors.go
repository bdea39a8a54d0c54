package middleware

import (
	"net/http"
	"strings"
)

// CORSOptions configure WithCORS.
type CORSOptions struct {
	// AllowedOrigin is sent as Access-Control-Allow-Origin. Empty means "*".
	AllowedOrigin string
	// AllowedMethods defaults to POST, GET and OPTIONS.
	AllowedMethods []string
}

// WithCORS returns a middleware that sets the CORS headers on every response
// and short-circuits OPTIONS preflight requests with 204 No Content.
// Credentials are only allowed for a concrete origin since browsers reject
// them next to a wildcard.
func WithCORS(opts CORSOptions) func(http.Handler) http.Handler {
	origin := opts.AllowedOrigin
	if origin == "" {
		origin = "*"
	}
	methods := opts.AllowedMethods
	if len(methods) == 0 {
		methods = []string{http.MethodPost, http.MethodGet, http.MethodOptions}
	}
	allowMethods := strings.Join(methods, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			if origin != "*" {
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Add("Vary", "Origin")
			}
			h.Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, Cache-Control, X-Request-Id")
			h.Set("Access-Control-Expose-Headers", "X-Request-Id")
			h.Set("Access-Control-Allow-Methods", allowMethods)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
