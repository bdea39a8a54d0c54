// Package capture implements the early-access email capture widget: input
// validation, a single timeout-guarded submission at a time, and the status
// feedback shown to the user while it happens.
//
// The controller never touches a UI toolkit. It drives three collaborators
// (the input field, the submit affordance and the message region) plus a
// transport.Client, all injected so they can be replaced by test doubles.
package capture

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"earlyaccess/pkg/domain"
	"earlyaccess/pkg/logger"
	"earlyaccess/pkg/metrics"
	"earlyaccess/pkg/motion"
	"earlyaccess/pkg/serrors"
	"earlyaccess/pkg/transport"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Input is the email field.
type Input interface {
	Value() string
	Clear()
	Focus()
}

// Affordance is the submit control.
type Affordance interface {
	SetEnabled(enabled bool)
}

// MessageSink is the status region under the form.
type MessageSink interface {
	SetMessage(text string, tone Tone)
}

// Deps are the collaborators of a Controller. Collaborator methods are called
// while the controller holds its lock, so they must not call back into it.
type Deps struct {
	Input      Input
	Affordance Affordance
	Messages   MessageSink
	Transport  transport.Client
	// Driver plays the rejection shake. Nil disables motion.
	Driver motion.Driver
}

// Options configure a Controller.
type Options struct {
	// Timeout bounds each transport call. Zero means DefaultTimeout.
	Timeout time.Duration
	// OnTransportFailure must be set explicitly, see Policy.
	OnTransportFailure Policy
	// FormTarget is the selector the shake is played on. Empty means DefaultFormTarget.
	FormTarget string
	// Meter records submission metrics. Nil disables them.
	Meter metric.Meter
}

// Controller owns the lifecycle of the capture form. It is safe for
// concurrent use; at most one submission is in flight at any time.
type Controller struct {
	deps    Deps
	opts    Options
	driver  motion.Driver
	metrics *metrics.Capture

	mu    sync.Mutex
	state State
}

// New validates deps and options and returns an Idle controller.
func New(deps Deps, opts Options) (*Controller, error) {
	if deps.Input == nil || deps.Affordance == nil || deps.Messages == nil {
		return nil, errors.New("input, affordance and message sink are required")
	}
	if deps.Transport == nil {
		return nil, errors.New("transport is required")
	}
	policy, err := ParsePolicy(string(opts.OnTransportFailure))
	if err != nil {
		return nil, err
	}
	opts.OnTransportFailure = policy
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.FormTarget == "" {
		opts.FormTarget = DefaultFormTarget
	}
	meter := opts.Meter
	if meter == nil {
		meter = metrics.Meter(nil)
	}
	m, err := metrics.NewCapture(meter)
	if err != nil {
		return nil, fmt.Errorf("could not create capture metrics: %w", err)
	}

	return &Controller{
		deps:    deps,
		opts:    opts,
		driver:  motion.Select(deps.Driver != nil, deps.Driver),
		metrics: m,
		state:   Idle,
	}, nil
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Policy returns the effective transport failure policy.
func (c *Controller) Policy() Policy { return c.opts.OnTransportFailure }

// OnInput handles an edit of the input field: the affordance is enabled only
// while the input validates, and a resting state (Invalid, Succeeded, Failed)
// goes back to Idle. Edits during a submission are ignored. It reports
// whether the input currently validates.
func (c *Controller) OnInput(_ context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Submitting {
		return false
	}
	c.state = Idle
	ok := Validate(c.deps.Input.Value())
	c.deps.Affordance.SetEnabled(ok)

	return ok
}

// SubmitInput submits the current value of the input field.
func (c *Controller) SubmitInput(ctx context.Context) (Outcome, error) {
	return c.Submit(ctx, c.deps.Input.Value())
}

// Submit runs one submission attempt for candidate.
//
// The returned error is non-nil only when the attempt is rejected because
// another submission is in flight (serrors.ErrBusy); nothing changes then.
// Validation and transport failures are recovered here and reported through
// Outcome.Err.
func (c *Controller) Submit(ctx context.Context, candidate string) (Outcome, error) {
	email := domain.NewEmailAddress(candidate)

	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()

		return Outcome{State: Submitting, Email: email}, serrors.With(serrors.ErrBusy, "a submission is already in flight")
	}

	ctx = logger.WithFields(ctx, zap.String("attemptID", uuid.NewString()))

	if !Validate(string(email)) {
		c.deps.Messages.SetMessage(MessageInvalid, ToneError)
		c.deps.Input.Focus()
		c.driver.Play(ctx, motion.Shake(c.opts.FormTarget))
		c.deps.Affordance.SetEnabled(true)
		c.state = Invalid
		c.mu.Unlock()

		logger.Debug(ctx, "rejected invalid email")
		c.metrics.RecordOutcome(ctx, Invalid.String(), false)

		return Outcome{
			State: Invalid,
			Email: email,
			Err:   serrors.With(serrors.ErrValidation, "invalid email address"),
		}, nil
	}

	c.deps.Affordance.SetEnabled(false)
	c.deps.Messages.SetMessage(MessageSubmitting, ToneNeutral)
	c.state = Submitting
	c.mu.Unlock()

	logger.Debug(ctx, "submitting email", zap.Duration("timeout", c.opts.Timeout))
	err := c.send(ctx, email)

	c.mu.Lock()
	defer c.mu.Unlock()

	out := Outcome{Email: email, Err: err}
	switch {
	case err == nil:
		c.succeed()
		out.State = Succeeded
		logger.Info(ctx, "email submitted")
	case c.opts.OnTransportFailure == TreatAsSuccess:
		c.succeed()
		out.State = Succeeded
		out.Masked = true
		logger.Warn(ctx, "transport failure masked as success", zap.Error(err))
	default:
		c.deps.Messages.SetMessage(MessageFailed, ToneError)
		c.deps.Affordance.SetEnabled(true)
		c.state = Failed
		out.State = Failed
		logger.Warn(ctx, "email submission failed", zap.Error(err))
	}
	c.metrics.RecordOutcome(ctx, out.State.String(), out.Masked)

	return out, nil
}

// succeed applies the success feedback. Callers hold c.mu.
func (c *Controller) succeed() {
	c.deps.Input.Clear()
	c.deps.Messages.SetMessage(MessageSucceeded, ToneSuccess)
	c.deps.Affordance.SetEnabled(true)
	c.state = Succeeded
}

// send performs the transport call under the configured timeout. When the
// deadline passes, send returns without waiting for the transport so the
// outcome is decided exactly once; a late result is dropped.
func (c *Controller) send(ctx context.Context, email domain.EmailAddress) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	start := time.Now()
	done := make(chan error, 1)
	go func() {
		done <- c.deps.Transport.Submit(ctx, email)
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}
	err = classify(err, c.opts.Timeout)
	c.metrics.RecordTransport(ctx, time.Since(start), err != nil)

	return err
}

// classify maps a transport result onto the TIMEOUT and TRANSPORT kinds.
func classify(err error, timeout time.Duration) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, serrors.ErrTimeout):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return serrors.Wrap(serrors.ErrTimeout, err, "submission timed out after %s", timeout)
	case errors.Is(err, serrors.ErrTransport):
		return err
	default:
		return serrors.Wrap(serrors.ErrTransport, err, "submission failed")
	}
}
