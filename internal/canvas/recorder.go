package canvas

import "github.com/vovakirdan/gravity-dodge/internal/core"

// Kind identifies a drawing command.
type Kind int

const (
	KindRect Kind = iota
	KindCircle
	KindGradient
)

// String returns a human-readable name for the command kind.
func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindGradient:
		return "gradient"
	default:
		return "unknown"
	}
}

// Command is one recorded drawing call.
type Command struct {
	Kind   Kind
	Rect   core.Rect // Rect and gradient bounds; circle bounding box
	Color  core.Color
	Color2 core.Color // Gradient bottom colour
	Alpha  float64
	Radius float64
}

// Recorder is a Surface that stores commands instead of drawing them.
// It is useful for tests and for replaying a frame onto another surface.
type Recorder struct {
	w, h     float64
	commands []Command
}

// NewRecorder creates a recorder with the given surface size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{w: w, h: h}
}

// Size implements Surface.
func (r *Recorder) Size() (float64, float64) {
	return r.w, r.h
}

// FillRect implements Surface.
func (r *Recorder) FillRect(rect core.Rect, c core.Color, alpha float64) {
	r.commands = append(r.commands, Command{Kind: KindRect, Rect: rect, Color: c, Alpha: alpha})
}

// FillCircle implements Surface.
func (r *Recorder) FillCircle(cx, cy, radius float64, c core.Color, alpha float64) {
	r.commands = append(r.commands, Command{
		Kind:   KindCircle,
		Rect:   core.CenteredRect(cx, cy, radius*2, radius*2),
		Color:  c,
		Alpha:  alpha,
		Radius: radius,
	})
}

// FillVerticalGradient implements Surface.
func (r *Recorder) FillVerticalGradient(rect core.Rect, top, bottom core.Color) {
	r.commands = append(r.commands, Command{Kind: KindGradient, Rect: rect, Color: top, Color2: bottom, Alpha: 1})
}

// Commands returns the recorded commands in call order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Replay issues every recorded command on dst, in order.
func (r *Recorder) Replay(dst Surface) {
	for _, c := range r.commands {
		switch c.Kind {
		case KindRect:
			dst.FillRect(c.Rect, c.Color, c.Alpha)
		case KindCircle:
			cx, cy := c.Rect.Center()
			dst.FillCircle(cx, cy, c.Radius, c.Color, c.Alpha)
		case KindGradient:
			dst.FillVerticalGradient(c.Rect, c.Color, c.Color2)
		}
	}
}
