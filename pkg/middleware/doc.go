// Package middleware contains the HTTP middlewares and debug handlers mounted
// by the placeholder backend:
//   - WithCORS: answers preflight requests and tags responses for the configured origin.
//   - WithLogger: attaches a request ID and request-scoped logger, then writes an access log.
//   - PprofMux: net/http/pprof under /debug/pprof/.
package middleware
