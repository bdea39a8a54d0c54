package capture

import (
	"regexp"
	"strings"
)

// emailShape accepts "local@domain.suffix" with every part non-empty. It is a
// gate against typos, not an RFC 5322 parser.
var emailShape = regexp.MustCompile(`^.+@.+\..+$`)

// Validate reports whether candidate, stripped of surrounding whitespace, has
// the minimal email shape.
func Validate(candidate string) bool {
	return emailShape.MatchString(strings.TrimSpace(candidate))
}
