package handler

import (
	"context"
	"errors"

	"earlyaccess/internal/api/specs/v1specs"
	"earlyaccess/internal/signup"
	"earlyaccess/pkg/domain"
	"earlyaccess/pkg/middleware"
	"earlyaccess/pkg/serrors"

	"github.com/google/uuid"
)

func DomainSignupToV1Specs(in *domain.Signup, created bool) *v1specs.Signup {
	return &v1specs.Signup{
		ID:        uuid.UUID(in.ID),
		Email:     in.Email.String(),
		CreatedAt: in.CreatedAt,
		Created:   created,
	}
}

// SubmitEarlyAccess registers the posted email. New signups answer 201,
// emails that were already registered answer 200 with the existing signup.
func (h Handler) SubmitEarlyAccess(
	ctx context.Context,
	req *v1specs.EarlyAccessRequest,
) (v1specs.SubmitEarlyAccessRes, error) {
	clientIP, userAgent := middleware.ClientInfo(ctx)

	s, created, err := h.deps.Signup.Register(ctx, signup.Request{
		Email:     req.Email,
		UserAgent: userAgent,
		ClientIP:  clientIP,
	})
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errors.New("signup service returned no signup")
	}

	out := DomainSignupToV1Specs(s, created)
	if created {
		return (*v1specs.SubmitEarlyAccessCreated)(out), nil
	}

	return (*v1specs.SubmitEarlyAccessOK)(out), nil
}

// GetHealth reports whether the signup storage answers.
func (h Handler) GetHealth(ctx context.Context) (*v1specs.Health, error) {
	n, err := h.deps.Signup.Count(ctx)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "storage unavailable")
	}

	return &v1specs.Health{Status: "ok", Signups: n}, nil
}
