// Package storage defines the persistence interfaces of the placeholder
// backend so that different engines (PostgreSQL, in-memory) can serve it.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"

	"earlyaccess/pkg/domain"
)

// SignupStorage stores early-access signups, unique by email.
type SignupStorage interface {
	// StoreSignup inserts a signup and returns the stored row, including the
	// generated ID and creation time. It returns nil without error when the
	// email is already registered.
	StoreSignup(ctx context.Context, signup domain.Signup) (*domain.Signup, error)
	// SignupByEmail returns the signup registered for email, or nil.
	SignupByEmail(ctx context.Context, email domain.EmailAddress) (*domain.Signup, error)
	// CountSignups returns the number of registered emails.
	CountSignups(ctx context.Context) (int64, error)
}

// Storage is a non-transactional storage handle.
type Storage interface {
	SignupStorage

	// Close releases any resources held by the implementation. The instance
	// must not be used afterwards.
	Close() error
	// WithTx runs cb against a transactional handle, committing when cb
	// returns nil and rolling back otherwise.
	WithTx(ctx context.Context, cb func(tx SignupStorage) error) error
}
