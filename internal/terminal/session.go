package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"earlyaccess/pkg/capture"
	"earlyaccess/pkg/logger"
	"earlyaccess/pkg/motion"

	"go.uber.org/zap"
)

// Form is the part of *capture.Controller a session drives.
type Form interface {
	OnInput(ctx context.Context) bool
	SubmitInput(ctx context.Context) (capture.Outcome, error)
}

// Session reads one candidate per line and submits it through the form.
type Session struct {
	Widget *Widget
	Form   Form
	Driver motion.Driver
	// Intro, when set, is played before the first prompt. Its focus step
	// focuses the widget, which suppresses the nudge.
	Intro *motion.Timeline
	// NudgeDelay is how long after start the nudge is considered, once. It
	// plays only if the prompt is then unfocused and empty. Zero means
	// motion.NudgeDelay.
	NudgeDelay time.Duration
	// Prompt is printed before every read.
	Prompt string
	// Tooltip, when set, is toggled by a HelpLine and closed by an EscapeLine.
	Tooltip *motion.Tooltip
	// Help is printed whenever the tooltip opens.
	Help string
}

// Lines that operate the tooltip instead of being submitted.
const (
	HelpLine   = "?"
	EscapeLine = "esc"
)

// Run processes lines from in until it is exhausted or ctx is done, and
// returns the outcome of every submitted line.
func (s *Session) Run(ctx context.Context, in io.Reader) ([]capture.Outcome, error) {
	delay := s.NudgeDelay
	if delay <= 0 {
		delay = motion.NudgeDelay
	}
	driver := motion.Select(s.Driver != nil, s.Driver)

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	if s.Intro != nil {
		s.Intro.Play(ctx, focusDriver{Driver: driver, widget: s.Widget})
	}

	nudge := time.NewTimer(delay)
	defer nudge.Stop()

	var outcomes []capture.Outcome
	s.prompt()
	for {
		select {
		case <-ctx.Done():
			return outcomes, ctx.Err()
		case <-nudge.C:
			if motion.ShouldNudge(s.Widget.Focused(), s.Widget.Value()) {
				driver.Play(ctx, motion.Nudge(motion.EmailTarget))
			}
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return outcomes, fmt.Errorf("could not read input: %w", err)
					}
				default:
				}

				return outcomes, nil
			}

			if s.handleTooltip(ctx, line) {
				s.prompt()

				continue
			}

			s.Widget.Type(line)
			s.Form.OnInput(ctx)
			outcome, err := s.Form.SubmitInput(ctx)
			if err != nil {
				logger.Warn(ctx, "submission rejected", zap.Error(err))
			} else {
				outcomes = append(outcomes, outcome)
			}

			s.Widget.Blur()
			s.prompt()
		}
	}
}

// focusDriver focuses the widget when a timeline moves focus to the email input.
type focusDriver struct {
	motion.Driver

	widget *Widget
}

func (d focusDriver) Play(ctx context.Context, tw motion.Tween) {
	d.Driver.Play(ctx, tw)
	if focus, _ := tw.To["focus"].(bool); focus && tw.Target == motion.EmailTarget {
		d.widget.Focus()
	}
}

// handleTooltip reports whether line operated the tooltip.
func (s *Session) handleTooltip(ctx context.Context, line string) bool {
	if s.Tooltip == nil {
		return false
	}

	switch line {
	case HelpLine:
		s.Tooltip.Toggle(ctx)
		if s.Tooltip.Expanded() {
			s.print(s.Help + "\n")
		}
	case EscapeLine:
		s.Tooltip.OnKey(ctx, motion.EscapeKey)
	default:
		return false
	}

	return true
}

func (s *Session) prompt() {
	if s.Prompt != "" {
		s.print(s.Prompt)
	}
}

func (s *Session) print(text string) {
	s.Widget.mu.Lock()
	defer s.Widget.mu.Unlock()
	_, _ = io.WriteString(s.Widget.out, text)
}
