package capture

import (
	"fmt"
	"time"

	"earlyaccess/pkg/domain"
)

// DefaultTimeout bounds a submission when Options.Timeout is zero.
const DefaultTimeout = 5 * time.Second

// DefaultFormTarget is the selector the rejection shake is played on.
const DefaultFormTarget = "#earlyAccessForm"

// User-facing status messages.
const (
	MessageInvalid    = "Please enter a valid email address."
	MessageSubmitting = "Submitting…"
	MessageSucceeded  = "You’re in. We’ll email you shortly!"
	MessageFailed     = "Something went wrong. Please try again."
)

// State is the lifecycle position of the controller.
type State int

const (
	Idle State = iota
	Invalid
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Invalid:
		return "invalid"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Tone is the semantic color of a status message.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneSuccess
	ToneError
)

// Color returns the CSS color used for the tone. Neutral resets to the
// stylesheet default.
func (t Tone) Color() string {
	switch t {
	case ToneSuccess:
		return "#b7ffcf"
	case ToneError:
		return "#ffced6"
	default:
		return ""
	}
}

// Policy decides what the user sees when the transport fails or times out.
type Policy string

const (
	// TreatAsSuccess reports transport failures to the user as successes.
	TreatAsSuccess Policy = "treat-as-success"
	// SurfaceError reports transport failures as errors the user can retry.
	SurfaceError Policy = "surface-error"
)

// ParsePolicy converts a configuration value into a Policy. There is no
// implicit default: an empty value is rejected.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case TreatAsSuccess, SurfaceError:
		return p, nil
	case "":
		return "", fmt.Errorf("transport failure policy is required (%q or %q)", TreatAsSuccess, SurfaceError)
	default:
		return "", fmt.Errorf("unknown transport failure policy %q", s)
	}
}

// Outcome is the resolution of one submit call.
type Outcome struct {
	// State is Invalid, Succeeded or Failed.
	State State
	// Email is the trimmed candidate.
	Email domain.EmailAddress
	// Err is the validation or transport error behind the outcome, if any. It
	// is set even when the failure was masked.
	Err error
	// Masked is true when a transport failure was reported as a success.
	Masked bool
}
