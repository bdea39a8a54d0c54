package motion

import (
	"context"
	"time"
)

// EscapeKey is the key name that dismisses an open tooltip.
const EscapeKey = "Escape"

// TooltipTarget is the selector of the "what is this" popover.
const TooltipTarget = "#whatIs"

// Tooltip tracks the "what is this" popover next to the info button. Expanded
// mirrors the button's aria-expanded attribute and Hidden the popover's
// aria-hidden attribute.
type Tooltip struct {
	target   string
	driver   Driver
	expanded bool
	hidden   bool
}

// NewTooltip returns a closed tooltip for the given target selector.
func NewTooltip(target string, d Driver) *Tooltip {
	return &Tooltip{
		target: target,
		driver: Select(true, d),
		hidden: true,
	}
}

func (t *Tooltip) Expanded() bool { return t.expanded }

func (t *Tooltip) Hidden() bool { return t.hidden }

// Show opens the tooltip and plays the pop-in tween.
func (t *Tooltip) Show(ctx context.Context) {
	t.hidden = false
	t.expanded = true
	t.driver.Play(ctx, Tween{
		Target:   t.target,
		From:     Props{"autoAlpha": 0, "scale": 0.96, "y": -6},
		To:       Props{"autoAlpha": 1, "scale": 1, "y": 0},
		Duration: 280 * time.Millisecond,
		Ease:     "power2.out",
	})
}

// Hide closes the tooltip. Hiding an already hidden tooltip is a no-op.
func (t *Tooltip) Hide(ctx context.Context) {
	t.expanded = false
	if t.hidden {
		return
	}
	t.driver.Play(ctx, Tween{
		Target:   t.target,
		To:       Props{"autoAlpha": 0, "scale": 0.98, "y": -4},
		Duration: 180 * time.Millisecond,
		Ease:     "power2.in",
	})
	t.hidden = true
}

// Toggle flips the tooltip based on the button's expanded state.
func (t *Tooltip) Toggle(ctx context.Context) {
	if t.expanded {
		t.Hide(ctx)

		return
	}
	t.Show(ctx)
}

// OnKey hides the tooltip when key is Escape and ignores everything else.
func (t *Tooltip) OnKey(ctx context.Context, key string) {
	if key == EscapeKey {
		t.Hide(ctx)
	}
}
