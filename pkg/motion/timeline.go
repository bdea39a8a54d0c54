package motion

import (
	"context"
	"time"
)

// Step is a timeline entry before scheduling. Shift positions the step
// relative to the current end of the timeline: zero appends, a negative value
// overlaps the previous steps ("-=0.2"), a positive one leaves a gap ("+=0.2").
type Step struct {
	Target   string
	From     Props
	To       Props
	Duration time.Duration
	Ease     string
	Shift    time.Duration
}

// Timeline is a sequence of tweens with resolved absolute offsets.
type Timeline struct {
	Tweens []Tween
}

// NewTimeline schedules steps one after another. Steps without an ease use
// defaultEase. Start times never go below zero.
func NewTimeline(defaultEase string, steps ...Step) Timeline {
	var end time.Duration
	tweens := make([]Tween, 0, len(steps))
	for _, s := range steps {
		start := end + s.Shift
		if start < 0 {
			start = 0
		}
		ease := s.Ease
		if ease == "" {
			ease = defaultEase
		}
		tw := Tween{
			Target:   s.Target,
			From:     s.From,
			To:       s.To,
			Duration: s.Duration,
			Ease:     ease,
			Offset:   start,
		}
		tweens = append(tweens, tw)
		if tw.End() > end {
			end = tw.End()
		}
	}

	return Timeline{Tweens: tweens}
}

// Duration is the time at which the last tween finishes.
func (tl Timeline) Duration() time.Duration {
	var d time.Duration
	for _, tw := range tl.Tweens {
		if tw.End() > d {
			d = tw.End()
		}
	}

	return d
}

// Play hands every tween to d in schedule order. It stops early if ctx is done.
func (tl Timeline) Play(ctx context.Context, d Driver) {
	for _, tw := range tl.Tweens {
		if ctx.Err() != nil {
			return
		}
		d.Play(ctx, tw)
	}
}

// EmailTarget is the selector of the email input.
const EmailTarget = "#email"

func fadeUp(target string, d time.Duration, shift time.Duration) Step {
	return Step{
		Target:   target,
		From:     Props{"autoAlpha": 0, "y": 8, "scale": 0.98},
		Duration: d,
		Shift:    shift,
	}
}

// IntroTimeline is the entrance sequence of the page. It ends by moving focus
// to the email input shortly after the last element settles.
func IntroTimeline() Timeline {
	ms := time.Millisecond

	return NewTimeline("power2.out",
		fadeUp(".header .brand", 350*ms, 0),
		fadeUp(".header .info", 250*ms, -200*ms),
		fadeUp(".quote", 320*ms, -50*ms),
		fadeUp(".tagline", 450*ms, -50*ms),
		Step{
			Target:   ".tagline",
			From:     Props{"textShadow": "0 0 0 rgba(139,162,255,0)"},
			To:       Props{"textShadow": "0 10px 40px rgba(139,162,255,0.25)"},
			Duration: 500 * ms,
			Shift:    -200 * ms,
		},
		fadeUp(".pitch", 400*ms, -180*ms),
		fadeUp(".device", 480*ms, -200*ms),
		fadeUp(".screen-ui", 340*ms, -250*ms),
		Step{
			Target: EmailTarget,
			To:     Props{"focus": true},
			Shift:  200 * ms,
		},
	)
}

// NudgeDelay is how long the page waits before nudging an untouched input.
const NudgeDelay = 6 * time.Second

// ShouldNudge reports whether the idle glow should play: only when the input
// is neither focused nor filled.
func ShouldNudge(focused bool, value string) bool {
	return !focused && value == ""
}

// Nudge is the glow pulse played on the email input.
func Nudge(target string) Tween {
	return Tween{
		Target:   target,
		From:     Props{"boxShadow": "0 0 0 0 rgba(107,130,255,0.0)"},
		To:       Props{"boxShadow": "0 0 0 8px rgba(107,130,255,0.14)"},
		Duration: 400 * time.Millisecond,
		Ease:     "power2.out",
		Repeat:   1,
		Yoyo:     true,
	}
}
