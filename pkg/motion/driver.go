// Package motion holds the presentation effects of the early-access page:
// the Driver capability that plays tweens, and the pure computations behind
// the tooltip, the parallax tilt, the entrance timeline and the idle nudge.
//
// Nothing in this package renders anything. Effects are described as Tween
// values and handed to a Driver; when motion is disabled (reduced-motion
// preference, or no driver available) NoopDriver swallows them.
package motion

import (
	"context"
	"time"

	"earlyaccess/pkg/logger"

	"go.uber.org/zap"
)

// Props is a set of animated properties, e.g. {"autoAlpha": 0, "y": 8}.
type Props map[string]any

// Tween describes one property animation on a target.
type Tween struct {
	// Target is a selector identifying the animated element.
	Target string
	// From holds starting values. Nil means "from the current values".
	From Props
	// To holds end values.
	To       Props
	Duration time.Duration
	Ease     string
	// Offset is the start time relative to the beginning of the enclosing
	// timeline. Standalone tweens start at zero.
	Offset time.Duration
	// Repeat counts extra iterations; Yoyo reverses every other iteration.
	Repeat int
	Yoyo   bool
}

// End returns the time at which the first iteration of the tween finishes.
func (t Tween) End() time.Duration { return t.Offset + t.Duration }

// Driver plays tweens. Implementations must not block the caller for the
// duration of the animation.
type Driver interface {
	Play(ctx context.Context, tw Tween)
}

// NoopDriver ignores every tween.
type NoopDriver struct{}

func (NoopDriver) Play(context.Context, Tween) {}

// LogDriver records every tween on the context logger at debug level.
type LogDriver struct{}

func (LogDriver) Play(ctx context.Context, tw Tween) {
	logger.Debug(ctx, "playing tween",
		zap.String("target", tw.Target),
		zap.Any("from", tw.From),
		zap.Any("to", tw.To),
		zap.Duration("offset", tw.Offset),
		zap.Duration("duration", tw.Duration),
		zap.String("ease", tw.Ease))
}

// Select returns d when motion is enabled and d is set, NoopDriver otherwise.
func Select(enabled bool, d Driver) Driver {
	if !enabled || d == nil {
		return NoopDriver{}
	}

	return d
}

// Shake is the horizontal jolt played on the form after a rejected submission.
func Shake(target string) Tween {
	return Tween{
		Target:   target,
		From:     Props{"x": -6},
		To:       Props{"x": 0},
		Duration: 280 * time.Millisecond,
		Ease:     "elastic.out(1, 0.5)",
	}
}
