package domain

import "strings"

// EmailAddress is a candidate address typed by the user. The only
// normalization ever applied is stripping surrounding whitespace.
type EmailAddress string

// NewEmailAddress returns raw with surrounding whitespace removed.
func NewEmailAddress(raw string) EmailAddress {
	return EmailAddress(strings.TrimSpace(raw))
}

func (e EmailAddress) String() string { return string(e) }
