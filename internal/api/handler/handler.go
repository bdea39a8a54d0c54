// Package handler implements v1specs.Handler, the operations of the
// placeholder backend's OpenAPI document.
package handler

import (
	"context"
	"errors"
	"net/http"

	"earlyaccess/internal/api/specs/v1specs"
	"earlyaccess/internal/signup"
	"earlyaccess/pkg/logger"
	"earlyaccess/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

// Deps are the services the handlers delegate to.
type Deps struct {
	Signup signup.Service
}

// Handler serves the early-access endpoints.
type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

// New returns a Handler backed by deps.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// NewError maps err to the default error response. Semantic errors keep
// their message; anything else becomes a generic internal error and is logged.
func (h Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	kind := serrors.KindOf(err)

	var status int
	var message string
	switch kind {
	case serrors.ErrValidation, serrors.ErrBadRequest:
		status, message = http.StatusBadRequest, "bad request"
	case serrors.ErrNotFound:
		status, message = http.StatusNotFound, "resource not found"
	case serrors.ErrConflict:
		status, message = http.StatusConflict, "resource already exists"
	case serrors.ErrRateLimited:
		status, message = http.StatusTooManyRequests, "too many requests"
	case serrors.ErrUnavailable:
		status, message = http.StatusServiceUnavailable, "service unavailable"
	default:
		logger.Error(ctx, "request failed", zap.Error(err))

		return &v1specs.ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: v1specs.Error{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		message = se.Message()
	}

	return &v1specs.ErrorStatusCode{
		StatusCode: status,
		Response:   v1specs.Error{Code: kind.Error(), Message: message},
	}
}

// HandleError is the server's ogenerrors.ErrorHandler. Requests that fail to
// decode become BAD_REQUEST; everything else goes through NewError so every
// error body has the same shape.
func (h Handler) HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	var decodeErr *ogenerrors.DecodeRequestError
	if errors.As(err, &decodeErr) {
		logger.Debug(ctx, "could not decode request", zap.Error(err))
		err = serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	res := h.NewError(ctx, err)

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	res.Response.Encode(e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Warn(ctx, "could not write error response", zap.Error(err))
	}
}
