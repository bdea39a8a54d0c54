package signup

import (
	"context"

	"earlyaccess/pkg/domain"
)

// Request describes one registration attempt as received by the backend.
type Request struct {
	// Email is the raw address from the request body.
	Email string
	// UserAgent and ClientIP are recorded alongside the signup.
	UserAgent string
	ClientIP  string
}

//go:generate mockgen -package mocksignup -source=interface.go -destination=mock/mocksignup.go *
type Service interface {
	// Register stores the email unless it is already registered. created is
	// false when an existing signup is returned.
	Register(ctx context.Context, req Request) (signup *domain.Signup, created bool, err error)
	// Count returns the number of registered emails.
	Count(ctx context.Context) (int64, error)
}
