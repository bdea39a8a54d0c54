package motion

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Tilt is the 3D pose of the decorative device for a pointer position.
type Tilt struct {
	RotateX    float64 // degrees
	RotateY    float64 // degrees
	TranslateZ float64 // pixels
	// GradientX and GradientY offset the screen gradient, in pixels.
	GradientX float64
	GradientY float64
}

// Rest is the pose when the pointer is centered or has left the hero area.
var Rest = Tilt{} //nolint: gochecknoglobals

// TiltAt maps a pointer position normalized to [0,1]x[0,1] over the hero area
// to the device pose. The center of the area is the rest pose.
func TiltAt(x, y float64) Tilt {
	dx, dy := x-0.5, y-0.5

	return Tilt{
		RotateX:    dy * -10,
		RotateY:    dx * 14,
		TranslateZ: 12 * math.Hypot(dx, dy),
		GradientX:  dx * 12,
		GradientY:  dy * 14,
	}
}

// PointerPosition normalizes client coordinates against the bounding box of
// the hero area. A zero-sized box yields the center.
func PointerPosition(clientX, clientY, left, top, width, height float64) (float64, float64) {
	if width <= 0 || height <= 0 {
		return 0.5, 0.5
	}

	return (clientX - left) / width, (clientY - top) / height
}

// Drift is the autonomous path followed on touch devices, t in radians.
func Drift(t float64) (float64, float64) {
	return 0.5 + math.Sin(t)*0.1, 0.5 + math.Cos(t*0.8)*0.08
}

// Transform renders the device pose as a CSS transform.
func (t Tilt) Transform() string {
	return fmt.Sprintf("perspective(800px) rotateX(%sdeg) rotateY(%sdeg) translateZ(%spx)",
		num(t.RotateX), num(t.RotateY), num(t.TranslateZ))
}

// GradientTransform renders the gradient offset as a CSS translate.
func (t Tilt) GradientTransform() string {
	return fmt.Sprintf("translate(%spx, %spx)", num(t.GradientX), num(t.GradientY))
}

func num(f float64) string {
	// avoid "-0" and float noise such as 4.999999999
	r := math.Round(f*1000) / 1000
	if r == 0 {
		return "0"
	}

	return fmt.Sprintf("%g", r)
}

// Parallax applies tilts to a device and its screen gradient through a driver.
type Parallax struct {
	Device   string
	Gradient string
	driver   Driver
}

// NewParallax returns a Parallax playing through d, or doing nothing when
// motion is disabled.
func NewParallax(device, gradient string, enabled bool, d Driver) *Parallax {
	return &Parallax{Device: device, Gradient: gradient, driver: Select(enabled, d)}
}

// Move tilts towards the normalized pointer position and returns the pose.
func (p *Parallax) Move(ctx context.Context, x, y float64) Tilt {
	t := TiltAt(x, y)
	p.driver.Play(ctx, Tween{
		Target:   p.Device,
		To:       Props{"transform": t.Transform()},
		Duration: 220 * time.Millisecond,
		Ease:     "power3.out",
	})
	if p.Gradient != "" {
		p.driver.Play(ctx, Tween{
			Target:   p.Gradient,
			To:       Props{"x": t.GradientX, "y": t.GradientY},
			Duration: 240 * time.Millisecond,
			Ease:     "power2.out",
		})
	}

	return t
}

// Leave eases the device back to the rest pose.
func (p *Parallax) Leave(ctx context.Context) Tilt {
	p.driver.Play(ctx, Tween{
		Target:   p.Device,
		To:       Props{"transform": Rest.Transform()},
		Duration: 350 * time.Millisecond,
		Ease:     "power2.out",
	})
	if p.Gradient != "" {
		p.driver.Play(ctx, Tween{
			Target:   p.Gradient,
			To:       Props{"x": 0, "y": 0},
			Duration: 350 * time.Millisecond,
			Ease:     "power2.out",
		})
	}

	return Rest
}
