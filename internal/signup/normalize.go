package signup

import (
	"strings"

	"earlyaccess/pkg/capture"
	"earlyaccess/pkg/domain"
	"earlyaccess/pkg/serrors"
)

// NormalizeEmail returns the canonical form used to de-duplicate signups:
//   - Trim surrounding whitespace
//   - Lower-case the domain part (after the last "@")
//
// The local part is kept as typed since mail servers may treat it case-sensitively.
// Inputs that fail capture.Validate are rejected with serrors.ErrValidation.
func NormalizeEmail(raw string) (domain.EmailAddress, error) {
	email := domain.NewEmailAddress(raw)
	if !capture.Validate(string(email)) {
		return "", serrors.With(serrors.ErrValidation, capture.MessageInvalid)
	}

	at := strings.LastIndex(string(email), "@")
	local, host := string(email)[:at], string(email)[at+1:]

	return domain.EmailAddress(local + "@" + strings.ToLower(host)), nil
}
