package input

import (
	"time"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/constants"
)

// Repeater paces auto-repeat for held directional buttons. The first repeat
// is allowed after the delay, then one per interval.
type Repeater struct {
	held        constants.VirtualButton
	lastEmit    time.Time
	hasRepeated bool

	delay    time.Duration
	interval time.Duration
}

// NewRepeater creates a Repeater with a 300ms delay and 50ms interval.
func NewRepeater() *Repeater {
	return NewRepeaterWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

func NewRepeaterWithTiming(delay, interval time.Duration) *Repeater {
	return &Repeater{delay: delay, interval: interval}
}

func isDirectional(vb constants.VirtualButton) bool {
	switch vb {
	case constants.VirtualButtonUp, constants.VirtualButtonDown,
		constants.VirtualButtonLeft, constants.VirtualButtonRight:
		return true
	}
	return false
}

// Accept reports whether a key event with the given kernel value should emit.
func (r *Repeater) Accept(vb constants.VirtualButton, value int32, at time.Time) bool {
	switch value {
	case KeyPressed:
		if isDirectional(vb) {
			r.held = vb
			r.lastEmit = at
			r.hasRepeated = false
		}
		return true
	case KeyReleased:
		if vb == r.held {
			r.Reset()
		}
		return false
	case KeyRepeated:
		if !isDirectional(vb) || vb != r.held {
			return false
		}
		threshold := r.interval
		if !r.hasRepeated {
			threshold = r.delay
		}
		if at.Sub(r.lastEmit) < threshold {
			return false
		}
		r.lastEmit = at
		r.hasRepeated = true
		return true
	}
	return false
}

// Held returns the directional button being held, if any.
func (r *Repeater) Held() constants.VirtualButton {
	return r.held
}

// Reset forgets the held button.
func (r *Repeater) Reset() {
	r.held = constants.VirtualButtonUnassigned
	r.hasRepeated = false
	r.lastEmit = time.Time{}
}
