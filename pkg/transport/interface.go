// Package transport defines how a captured email is delivered to the backend.
package transport

import (
	"context"

	"earlyaccess/pkg/domain"
)

// Client delivers one email submission. Implementations must honor ctx
// cancellation so a timed-out submission releases its network resources.
// A nil error means the backend acknowledged the submission.
//
//go:generate mockgen -package mocktransport -source=interface.go -destination=mock/mocktransport.go *
type Client interface {
	Submit(ctx context.Context, email domain.EmailAddress) error
}
