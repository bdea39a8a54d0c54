package domain

import (
	"time"

	"github.com/google/uuid"
)

// SignupID uniquely identifies a stored early-access signup.
type SignupID uuid.UUID

func (id SignupID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID in its canonical uuid form.
func (id SignupID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a canonical uuid.
func (id *SignupID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

// Signup is an email registered through the early-access endpoint.
type Signup struct {
	// ID is the unique identifier of the signup.
	ID SignupID `json:"id"`
	// Email is the address as submitted, after whitespace trimming.
	Email EmailAddress `json:"email"`

	// UserAgent and ClientIP describe where the submission came from.
	UserAgent string `json:"-"`
	ClientIP  string `json:"-"`

	// CreatedAt is the time the email was first registered.
	CreatedAt time.Time `json:"createdAt"`
}
