// Package input turns physical key presses into signals.
//
// Key codes are mapped to virtual buttons, and virtual buttons to signals by
// name, so the same bindings work across keypads. On Linux a Reader pulls
// events from an evdev device; elsewhere Open returns ErrUnsupported.
package input

import (
	"errors"
	"fmt"
	"time"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/constants"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/signal"
)

// ErrUnsupported is returned by Open on platforms without evdev.
var ErrUnsupported = errors.New("input: evdev not supported on this platform")

// Sink receives the signals produced by key presses. A dispatch.Dispatcher
// satisfies it.
type Sink interface {
	EmitSignal(id signal.ID, payload []byte) error
}

// Key event values as reported by the kernel.
const (
	KeyReleased int32 = 0
	KeyPressed  int32 = 1
	KeyRepeated int32 = 2
)

// DefaultKeymap maps Linux key codes to virtual buttons.
var DefaultKeymap = map[uint16]constants.VirtualButton{
	1:   constants.VirtualButtonB,      // KEY_ESC
	28:  constants.VirtualButtonA,      // KEY_ENTER
	103: constants.VirtualButtonUp,     // KEY_UP
	105: constants.VirtualButtonLeft,   // KEY_LEFT
	106: constants.VirtualButtonRight,  // KEY_RIGHT
	108: constants.VirtualButtonDown,   // KEY_DOWN
	116: constants.VirtualButtonPower,  // KEY_POWER
	139: constants.VirtualButtonMenu,   // KEY_MENU
	304: constants.VirtualButtonA,      // BTN_SOUTH
	305: constants.VirtualButtonB,      // BTN_EAST
	314: constants.VirtualButtonSelect, // BTN_SELECT
	315: constants.VirtualButtonStart,  // BTN_START
}

// Mapper resolves key events to signals.
type Mapper struct {
	keys    map[uint16]constants.VirtualButton
	signals map[constants.VirtualButton]signal.ID
	repeat  *Repeater
}

// NewMapper builds a Mapper from button name to signal name bindings, for
// example {"A": "scan_result"}. Signals may also be given by number.
func NewMapper(bindings map[string]string) (*Mapper, error) {
	m := &Mapper{
		keys:    DefaultKeymap,
		signals: make(map[constants.VirtualButton]signal.ID, len(bindings)),
		repeat:  NewRepeater(),
	}
	var errs []error
	for button, sig := range bindings {
		vb, ok := constants.ButtonByName(button)
		if !ok {
			errs = append(errs, fmt.Errorf("input: unknown button %q", button))
			continue
		}
		id, ok := signal.Lookup(sig)
		if !ok {
			errs = append(errs, fmt.Errorf("input: button %s: unknown signal %q", button, sig))
			continue
		}
		m.signals[vb] = id
	}
	return m, errors.Join(errs...)
}

// Button returns the virtual button for a key code.
func (m *Mapper) Button(code uint16) constants.VirtualButton {
	return m.keys[code]
}

// Translate reports the signal a key event emits. Only presses of bound
// buttons emit, plus auto-repeat of held directional buttons.
func (m *Mapper) Translate(code uint16, value int32, at time.Time) (signal.ID, constants.VirtualButton, bool) {
	vb := m.Button(code)
	if vb == constants.VirtualButtonUnassigned {
		return 0, vb, false
	}
	if !m.repeat.Accept(vb, value, at) {
		return 0, vb, false
	}
	id, ok := m.signals[vb]
	return id, vb, ok
}
