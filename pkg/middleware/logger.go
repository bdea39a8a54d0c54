package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"earlyaccess/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

// statusRecorder captures the status code written by the downstream handler.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// ClientIP returns the originating client address of r, preferring the first
// X-Forwarded-For entry, then X-Real-IP, then the connection's remote address.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}

type ctxKey struct{}

// requestInfo is what WithLogger records about a request for the handlers
// that only see its context.
type requestInfo struct {
	id        string
	clientIP  string
	userAgent string
}

// RequestID returns the request ID stored by WithLogger, or "".
func RequestID(ctx context.Context) string {
	info, _ := ctx.Value(ctxKey{}).(requestInfo)

	return info.id
}

// ClientInfo returns the client address and user agent of the request
// WithLogger is serving, or empty strings outside of it.
func ClientInfo(ctx context.Context) (clientIP, userAgent string) {
	info, _ := ctx.Value(ctxKey{}).(requestInfo)

	return info.clientIP, info.userAgent
}

// WithLogger injects a request ID and a request-scoped logger into the
// context, echoes the ID in the response and logs an access line once the
// handler returns.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx := context.WithValue(r.Context(), ctxKey{}, requestInfo{
			id:        requestID,
			clientIP:  ClientIP(r),
			userAgent: r.UserAgent(),
		})
		ctx = logger.WithFields(ctx, zap.String("requestID", requestID))
		w.Header().Set(RequestIDHeader, requestID)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.Info(ctx, "Access log",
			zap.Int("status_code", rec.status),
			zap.Float64("latency", time.Since(start).Seconds()),
			zap.String("client_ip", ClientIP(r)),
			zap.String("user_agent", r.UserAgent()),
			zap.String("url", r.URL.String()),
			zap.String("origin", r.Header.Get("Origin")),
			zap.String("method", r.Method),
		)
	})
}
