// Package signup registers early-access emails on the placeholder backend.
package signup

import (
	"context"
	"errors"
	"fmt"

	"earlyaccess/pkg/domain"
	"earlyaccess/pkg/logger"
	"earlyaccess/pkg/metrics"
	"earlyaccess/pkg/storage"

	"go.uber.org/zap"
)

// Registration results recorded on the signups counter.
const (
	ResultCreated  = "created"
	ResultExisting = "existing"
	ResultRejected = "rejected"
	ResultFailed   = "failed"
)

// service is the concrete implementation of the Service interface.
type service struct {
	storage storage.Storage
	metrics *metrics.Signups
}

// Register normalizes the email and stores it inside a transaction. When the
// email is already registered the stored signup is returned with created=false,
// which makes repeated submissions idempotent.
func (s service) Register(ctx context.Context, req Request) (*domain.Signup, bool, error) {
	email, err := NormalizeEmail(req.Email)
	if err != nil {
		s.metrics.Record(ctx, ResultRejected)

		return nil, false, err
	}

	var (
		signup  *domain.Signup
		created bool
	)
	if err := s.storage.WithTx(ctx, func(tx storage.SignupStorage) error {
		stored, err := tx.StoreSignup(ctx, domain.Signup{
			Email:     email,
			UserAgent: req.UserAgent,
			ClientIP:  req.ClientIP,
		})
		if err != nil {
			return fmt.Errorf("could not store signup: %w", err)
		}
		if stored != nil {
			signup, created = stored, true

			return nil
		}

		// the email is already registered, return the existing row
		existing, err := tx.SignupByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("could not get existing signup: %w", err)
		}
		if existing == nil {
			return fmt.Errorf("signup for %q vanished after conflict", email)
		}
		signup = existing

		return nil
	}); err != nil {
		if !errors.Is(err, storage.ErrConflict) {
			s.metrics.Record(ctx, ResultFailed)

			return nil, false, fmt.Errorf("could not register signup: %w", err)
		}

		// a concurrent request registered the email first
		signup, created = nil, false
		if signup, err = s.storage.SignupByEmail(ctx, email); err != nil || signup == nil {
			s.metrics.Record(ctx, ResultFailed)
			if err == nil {
				err = fmt.Errorf("signup for %q vanished after conflict", email)
			}

			return nil, false, fmt.Errorf("could not register signup: %w", err)
		}
	}

	result := ResultExisting
	if created {
		result = ResultCreated
	}
	s.metrics.Record(ctx, result)
	logger.Info(ctx, "signup registered",
		zap.String("signupID", signup.ID.String()),
		zap.String("result", result))

	return signup, created, nil
}

// Count returns the number of registered emails.
func (s service) Count(ctx context.Context) (int64, error) {
	n, err := s.storage.CountSignups(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count signups: %w", err)
	}

	return n, nil
}

// New creates a Service backed by st that records registrations on m.
func New(st storage.Storage, m *metrics.Signups) Service {
	return &service{
		storage: st,
		metrics: m,
	}
}
