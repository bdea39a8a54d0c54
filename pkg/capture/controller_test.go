package capture_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"earlyaccess/pkg/capture"
	"earlyaccess/pkg/domain"
	"earlyaccess/pkg/logger"
	"earlyaccess/pkg/motion"
	"earlyaccess/pkg/serrors"
	mocktransport "earlyaccess/pkg/transport/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type message struct {
	text string
	tone capture.Tone
}

// widget is an in-memory stand-in for the form: input, button and message region.
type widget struct {
	mu       sync.Mutex
	value    string
	focused  int
	enabled  []bool
	messages []message
	tweens   []motion.Tween
}

func (w *widget) Value() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.value
}

func (w *widget) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.value = ""
}

func (w *widget) Focus() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.focused++
}

func (w *widget) SetEnabled(enabled bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.enabled = append(w.enabled, enabled)
}

func (w *widget) SetMessage(text string, tone capture.Tone) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.messages = append(w.messages, message{text, tone})
}

func (w *widget) Play(_ context.Context, tw motion.Tween) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tweens = append(w.tweens, tw)
}

func (w *widget) lastEnabled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.enabled[len(w.enabled)-1]
}

func (w *widget) lastMessage() message {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.messages[len(w.messages)-1]
}

func (w *widget) messageCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.messages)
}

func newController(t *testing.T, policy capture.Policy, timeout time.Duration) (
	*capture.Controller, *widget, *mocktransport.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	tr := mocktransport.NewMockClient(ctrl)
	w := &widget{}
	c, err := capture.New(capture.Deps{
		Input:      w,
		Affordance: w,
		Messages:   w,
		Transport:  tr,
		Driver:     w,
	}, capture.Options{Timeout: timeout, OnTransportFailure: policy})
	require.NoError(t, err)

	return c, w, tr
}

func TestNew_RequiresExplicitPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := &widget{}
	deps := capture.Deps{Input: w, Affordance: w, Messages: w, Transport: mocktransport.NewMockClient(ctrl)}

	_, err := capture.New(deps, capture.Options{})
	require.Error(t, err)

	_, err = capture.New(deps, capture.Options{OnTransportFailure: "retry-forever"})
	require.Error(t, err)

	c, err := capture.New(deps, capture.Options{OnTransportFailure: capture.SurfaceError})
	require.NoError(t, err)
	require.Equal(t, capture.Idle, c.State())
	require.Equal(t, capture.SurfaceError, c.Policy())
}

func TestNew_RequiresCollaborators(t *testing.T) {
	w := &widget{}
	_, err := capture.New(capture.Deps{Input: w, Affordance: w, Messages: w},
		capture.Options{OnTransportFailure: capture.SurfaceError})
	require.Error(t, err)

	ctrl := gomock.NewController(t)
	_, err = capture.New(capture.Deps{Transport: mocktransport.NewMockClient(ctrl)},
		capture.Options{OnTransportFailure: capture.SurfaceError})
	require.Error(t, err)
}

func TestParsePolicy(t *testing.T) {
	p, err := capture.ParsePolicy("treat-as-success")
	require.NoError(t, err)
	require.Equal(t, capture.TreatAsSuccess, p)

	p, err = capture.ParsePolicy("surface-error")
	require.NoError(t, err)
	require.Equal(t, capture.SurfaceError, p)

	_, err = capture.ParsePolicy("")
	require.Error(t, err)
	_, err = capture.ParsePolicy("ignore")
	require.Error(t, err)
}

func TestSubmit_InvalidEmailNeverCallsTransport(t *testing.T) {
	// no EXPECT on the transport: any call fails the test
	c, w, _ := newController(t, capture.SurfaceError, time.Second)
	w.value = "not-an-email"

	out, err := c.SubmitInput(context.Background())
	require.NoError(t, err)
	require.Equal(t, capture.Invalid, out.State)
	require.ErrorIs(t, out.Err, serrors.ErrValidation)
	require.Equal(t, capture.Invalid, c.State())

	require.Equal(t, message{capture.MessageInvalid, capture.ToneError}, w.lastMessage())
	require.Equal(t, "Please enter a valid email address.", w.lastMessage().text)
	require.True(t, w.lastEnabled())
	require.Equal(t, 1, w.focused)
	require.Equal(t, "not-an-email", w.value, "input is kept for correction")

	require.Len(t, w.tweens, 1)
	require.Equal(t, capture.DefaultFormTarget, w.tweens[0].Target)
}

func TestSubmit_Success(t *testing.T) {
	c, w, tr := newController(t, capture.SurfaceError, time.Second)
	w.value = "  user@example.com "

	tr.EXPECT().Submit(gomock.Any(), domain.EmailAddress("user@example.com")).Return(nil)

	out, err := c.SubmitInput(context.Background())
	require.NoError(t, err)
	require.Equal(t, capture.Succeeded, out.State)
	require.Equal(t, domain.EmailAddress("user@example.com"), out.Email)
	require.NoError(t, out.Err)
	require.False(t, out.Masked)
	require.Equal(t, capture.Succeeded, c.State())

	require.Empty(t, w.value)
	require.Equal(t, []message{
		{capture.MessageSubmitting, capture.ToneNeutral},
		{capture.MessageSucceeded, capture.ToneSuccess},
	}, w.messages)
	require.Equal(t, []bool{false, true}, w.enabled)
	require.Empty(t, w.tweens)
}

func TestSubmit_TransportFailure_SurfaceError(t *testing.T) {
	c, w, tr := newController(t, capture.SurfaceError, time.Second)
	w.value = "user@example.com"

	tr.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	out, err := c.SubmitInput(context.Background())
	require.NoError(t, err)
	require.Equal(t, capture.Failed, out.State)
	require.ErrorIs(t, out.Err, serrors.ErrTransport)
	require.False(t, out.Masked)

	require.Equal(t, "user@example.com", w.value, "input is kept so the user can retry")
	require.Equal(t, message{capture.MessageFailed, capture.ToneError}, w.lastMessage())
	require.Equal(t, []bool{false, true}, w.enabled)
}

func TestSubmit_TransportFailure_TreatAsSuccess(t *testing.T) {
	c, w, tr := newController(t, capture.TreatAsSuccess, time.Second)
	w.value = "user@example.com"

	tr.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(serrors.With(serrors.ErrTransport, "submit failed with status 500"))

	out, err := c.SubmitInput(context.Background())
	require.NoError(t, err)
	require.Equal(t, capture.Succeeded, out.State)
	require.True(t, out.Masked)
	require.ErrorIs(t, out.Err, serrors.ErrTransport)

	require.Empty(t, w.value)
	require.Equal(t, message{capture.MessageSucceeded, capture.ToneSuccess}, w.lastMessage())
	require.True(t, w.lastEnabled())
}

func TestSubmit_TimeoutAbortsCall(t *testing.T) {
	c, w, tr := newController(t, capture.SurfaceError, 50*time.Millisecond)
	w.value = "user@example.com"

	calls := make(chan context.Context, 1)
	tr.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ domain.EmailAddress) error {
			calls <- ctx
			<-ctx.Done()

			return ctx.Err()
		})

	out, err := c.SubmitInput(context.Background())
	require.NoError(t, err)
	require.Equal(t, capture.Failed, out.State)
	require.ErrorIs(t, out.Err, serrors.ErrTimeout)
	callCtx := <-calls
	<-callCtx.Done()
	require.ErrorIs(t, callCtx.Err(), context.DeadlineExceeded)

	// Submitting + one resolution, nothing more
	require.Equal(t, 2, w.messageCount())
}

func TestSubmit_TimeoutWithUncooperativeTransport(t *testing.T) {
	c, w, tr := newController(t, capture.TreatAsSuccess, 50*time.Millisecond)
	w.value = "user@example.com"

	release := make(chan struct{})
	returned := make(chan struct{})
	tr.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, domain.EmailAddress) error {
			defer close(returned)
			<-release // ignores cancellation

			return nil
		})

	start := time.Now()
	out, err := c.SubmitInput(context.Background())
	require.NoError(t, err)
	require.Less(t, time.Since(start), time.Second)
	require.Equal(t, capture.Succeeded, out.State)
	require.True(t, out.Masked)
	require.ErrorIs(t, out.Err, serrors.ErrTimeout)

	messages := w.messageCount()
	close(release)
	<-returned
	time.Sleep(20 * time.Millisecond)

	require.Equal(t, messages, w.messageCount(), "late transport result must not change anything")
	require.Equal(t, capture.Succeeded, c.State())
}

func TestSubmit_RejectsConcurrentSubmission(t *testing.T) {
	c, w, tr := newController(t, capture.SurfaceError, 5*time.Second)
	w.value = "user@example.com"

	release := make(chan struct{})
	tr.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, domain.EmailAddress) error {
			<-release

			return nil
		}).Times(1)

	first := make(chan capture.Outcome, 1)
	go func() {
		out, _ := c.SubmitInput(context.Background())
		first <- out
	}()

	require.Eventually(t, func() bool { return c.State() == capture.Submitting },
		time.Second, 5*time.Millisecond)
	require.False(t, w.lastEnabled(), "affordance is disabled while in flight")

	out, err := c.Submit(context.Background(), "other@example.com")
	require.ErrorIs(t, err, serrors.ErrBusy)
	require.Equal(t, capture.Submitting, out.State)

	// edits during the submission do not re-enable the affordance
	require.False(t, c.OnInput(context.Background()))
	require.False(t, w.lastEnabled())

	close(release)
	require.Equal(t, capture.Succeeded, (<-first).State)
}

func TestOnInput(t *testing.T) {
	c, w, _ := newController(t, capture.SurfaceError, time.Second)
	ctx := context.Background()

	w.value = "user@"
	require.False(t, c.OnInput(ctx))
	require.False(t, w.lastEnabled())

	w.value = "user@example.com"
	require.True(t, c.OnInput(ctx))
	require.True(t, w.lastEnabled())

	// a rejected attempt goes back to Idle on the next edit
	w.value = "nope"
	_, err := c.SubmitInput(ctx)
	require.NoError(t, err)
	require.Equal(t, capture.Invalid, c.State())

	w.value = "nope@"
	c.OnInput(ctx)
	require.Equal(t, capture.Idle, c.State())
}

func TestSubmit_AgainAfterResolution(t *testing.T) {
	c, w, tr := newController(t, capture.SurfaceError, time.Second)
	ctx := context.Background()

	gomock.InOrder(
		tr.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(errors.New("down")),
		tr.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil),
	)

	w.value = "user@example.com"
	out, err := c.SubmitInput(ctx)
	require.NoError(t, err)
	require.Equal(t, capture.Failed, out.State)

	out, err = c.SubmitInput(ctx)
	require.NoError(t, err)
	require.Equal(t, capture.Succeeded, out.State)
}

func TestStateAndToneStrings(t *testing.T) {
	require.Equal(t, "submitting", capture.Submitting.String())
	require.Equal(t, "state(42)", capture.State(42).String())
	require.Equal(t, "#ffced6", capture.ToneError.Color())
	require.Equal(t, "#b7ffcf", capture.ToneSuccess.Color())
	require.Empty(t, capture.ToneNeutral.Color())
}
