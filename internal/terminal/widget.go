// Package terminal renders the capture form on a line-oriented terminal: the
// typed line is the input value and status messages are printed as they come.
package terminal

import (
	"fmt"
	"io"
	"sync"

	"earlyaccess/pkg/capture"
)

// Widget implements capture.Input, capture.Affordance and capture.MessageSink.
type Widget struct {
	mu      sync.Mutex
	out     io.Writer
	value   string
	enabled bool
	focused bool
}

var (
	_ capture.Input       = (*Widget)(nil)
	_ capture.Affordance  = (*Widget)(nil)
	_ capture.MessageSink = (*Widget)(nil)
)

// New returns a widget printing to out.
func New(out io.Writer) *Widget {
	return &Widget{out: out}
}

// Type replaces the input value, as if the user edited the field.
func (w *Widget) Type(value string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.value = value
	w.focused = true
}

func (w *Widget) Value() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.value
}

func (w *Widget) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.value = ""
}

// Focus marks the field focused; the prompt is re-printed by the caller.
func (w *Widget) Focus() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.focused = true
}

// Focused reports whether the field had focus since the last Blur.
func (w *Widget) Focused() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.focused
}

// Blur drops focus.
func (w *Widget) Blur() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.focused = false
}

func (w *Widget) SetEnabled(enabled bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.enabled = enabled
}

// Enabled reports the submit affordance state.
func (w *Widget) Enabled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.enabled
}

func (w *Widget) SetMessage(text string, tone capture.Tone) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch tone {
	case capture.ToneSuccess:
		_, _ = fmt.Fprintf(w.out, "✔ %s\n", text)
	case capture.ToneError:
		_, _ = fmt.Fprintf(w.out, "✘ %s\n", text)
	default:
		_, _ = fmt.Fprintf(w.out, "… %s\n", text)
	}
}
