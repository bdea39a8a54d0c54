package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"earlyaccess/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSignup_JSON(t *testing.T) {
	id := uuid.MustParse("6f1c1e8e-3c55-4b7a-9a40-5d1f5a2f0b11")
	in := domain.Signup{
		ID:        domain.SignupID(id),
		Email:     "a@b.co",
		UserAgent: "ua",
		ClientIP:  "1.2.3.4",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"6f1c1e8e-3c55-4b7a-9a40-5d1f5a2f0b11","email":"a@b.co","createdAt":"2026-01-02T03:04:05Z"}`, string(b))

	var out domain.Signup
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, in.ID, out.ID)
	require.Empty(t, out.ClientIP, "request metadata is never serialized")
}

func TestNewEmailAddress(t *testing.T) {
	require.Equal(t, domain.EmailAddress("a@b.co"), domain.NewEmailAddress("\t a@b.co \n"))
	require.Equal(t, "A@B.co", domain.NewEmailAddress("A@B.co").String())
}
