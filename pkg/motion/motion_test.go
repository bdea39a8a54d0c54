package motion_test

import (
	"context"
	"testing"
	"time"

	"earlyaccess/pkg/logger"
	"earlyaccess/pkg/motion"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	tweens []motion.Tween
}

func (r *recorder) Play(_ context.Context, tw motion.Tween) { r.tweens = append(r.tweens, tw) }

func TestSelect(t *testing.T) {
	rec := &recorder{}
	require.Equal(t, motion.NoopDriver{}, motion.Select(false, rec))
	require.Equal(t, motion.NoopDriver{}, motion.Select(true, nil))
	require.Same(t, rec, motion.Select(true, rec))
}

func TestLogDriver_DoesNotPanic(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	require.NotPanics(t, func() {
		motion.LogDriver{}.Play(context.Background(), motion.Shake("#earlyAccessForm"))
	})
}

func TestTooltip(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	tip := motion.NewTooltip("#whatIs", rec)

	require.True(t, tip.Hidden())
	require.False(t, tip.Expanded())

	tip.Toggle(ctx)
	require.False(t, tip.Hidden())
	require.True(t, tip.Expanded())
	require.Len(t, rec.tweens, 1)
	require.Equal(t, 280*time.Millisecond, rec.tweens[0].Duration)

	tip.OnKey(ctx, "Enter")
	require.True(t, tip.Expanded())

	tip.OnKey(ctx, motion.EscapeKey)
	require.True(t, tip.Hidden())
	require.False(t, tip.Expanded())
	require.Len(t, rec.tweens, 2)
	require.Equal(t, 180*time.Millisecond, rec.tweens[1].Duration)

	// hiding twice does not replay the fade out
	tip.Hide(ctx)
	require.Len(t, rec.tweens, 2)
}

func TestTiltAt(t *testing.T) {
	require.Equal(t, motion.Rest, motion.TiltAt(0.5, 0.5))
	require.Equal(t, "perspective(800px) rotateX(0deg) rotateY(0deg) translateZ(0px)", motion.Rest.Transform())

	topLeft := motion.TiltAt(0, 0)
	require.InDelta(t, 5, topLeft.RotateX, 1e-9)
	require.InDelta(t, -7, topLeft.RotateY, 1e-9)
	require.InDelta(t, 12*0.70710678, topLeft.TranslateZ, 1e-6)
	require.InDelta(t, -6, topLeft.GradientX, 1e-9)
	require.InDelta(t, -7, topLeft.GradientY, 1e-9)

	bottomRight := motion.TiltAt(1, 1)
	require.InDelta(t, -5, bottomRight.RotateX, 1e-9)
	require.InDelta(t, 7, bottomRight.RotateY, 1e-9)
	require.Equal(t, "perspective(800px) rotateX(-5deg) rotateY(7deg) translateZ(8.485px)", bottomRight.Transform())
	require.Equal(t, "translate(6px, 7px)", bottomRight.GradientTransform())
}

func TestPointerPosition(t *testing.T) {
	x, y := motion.PointerPosition(150, 50, 100, 0, 200, 100)
	require.InDelta(t, 0.25, x, 1e-9)
	require.InDelta(t, 0.5, y, 1e-9)

	x, y = motion.PointerPosition(10, 10, 0, 0, 0, 0)
	require.Equal(t, 0.5, x)
	require.Equal(t, 0.5, y)
}

func TestDriftStaysNearCenter(t *testing.T) {
	for i := 0; i < 500; i++ {
		x, y := motion.Drift(float64(i) * 0.02)
		require.InDelta(t, 0.5, x, 0.1+1e-9)
		require.InDelta(t, 0.5, y, 0.08+1e-9)
	}
}

func TestParallax(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	p := motion.NewParallax("#device", "#screenGradient", true, rec)

	pose := p.Move(ctx, 1, 0.5)
	require.InDelta(t, 7, pose.RotateY, 1e-9)
	require.Len(t, rec.tweens, 2)
	require.Equal(t, "#device", rec.tweens[0].Target)
	require.Equal(t, pose.Transform(), rec.tweens[0].To["transform"])
	require.Equal(t, "#screenGradient", rec.tweens[1].Target)

	require.Equal(t, motion.Rest, p.Leave(ctx))
	require.Len(t, rec.tweens, 4)

	disabled := &recorder{}
	p = motion.NewParallax("#device", "", false, disabled)
	p.Move(ctx, 0, 0)
	p.Leave(ctx)
	require.Empty(t, disabled.tweens)
}

func TestIntroTimeline(t *testing.T) {
	tl := motion.IntroTimeline()
	require.Len(t, tl.Tweens, 9)

	ms := time.Millisecond
	expected := []time.Duration{0, 150 * ms, 350 * ms, 620 * ms, 870 * ms, 1190 * ms, 1390 * ms, 1620 * ms, 2160 * ms}
	for i, tw := range tl.Tweens {
		require.Equal(t, expected[i], tw.Offset, "offset of step %d (%s)", i, tw.Target)
		require.Equal(t, "power2.out", tw.Ease)
	}
	require.Equal(t, motion.EmailTarget, tl.Tweens[8].Target)
	require.Equal(t, 2160*ms, tl.Duration())
}

func TestNewTimeline_ClampsNegativeStart(t *testing.T) {
	tl := motion.NewTimeline("linear",
		motion.Step{Target: "a", Duration: 100 * time.Millisecond, Shift: -time.Second},
		motion.Step{Target: "b", Duration: 100 * time.Millisecond, Ease: "power1.in"},
	)
	require.Equal(t, time.Duration(0), tl.Tweens[0].Offset)
	require.Equal(t, 100*time.Millisecond, tl.Tweens[1].Offset)
	require.Equal(t, "linear", tl.Tweens[0].Ease)
	require.Equal(t, "power1.in", tl.Tweens[1].Ease)
}

func TestTimelinePlay(t *testing.T) {
	rec := &recorder{}
	motion.IntroTimeline().Play(context.Background(), rec)
	require.Len(t, rec.tweens, 9)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec = &recorder{}
	motion.IntroTimeline().Play(ctx, rec)
	require.Empty(t, rec.tweens)
}

func TestShouldNudge(t *testing.T) {
	require.True(t, motion.ShouldNudge(false, ""))
	require.False(t, motion.ShouldNudge(true, ""))
	require.False(t, motion.ShouldNudge(false, "a@"))

	n := motion.Nudge(motion.EmailTarget)
	require.True(t, n.Yoyo)
	require.Equal(t, 1, n.Repeat)
}
