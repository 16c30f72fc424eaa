package router

import (
	"fmt"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/signal"
)

// Kind classifies an Event. The lifecycle kinds are the events the stack
// itself delivers; everything else arrives as KindCustom.
type Kind uint8

const (
	KindCustom     Kind = iota // Any signal outside the lifecycle band
	KindInit                   // View pushed; Payload carries the open parameter
	KindRefresh                // View became (or stays) the top and should repaint
	KindRestart                // Close-to-target short circuit while Home is on top
	KindDeInit                 // View is leaving the stack
	KindDeactivate             // Another view was pushed over this one
	KindTimer                  // Periodic tick
)

func (k Kind) String() string {
	switch k {
	case KindCustom:
		return "custom"
	case KindInit:
		return "init"
	case KindRefresh:
		return "refresh"
	case KindRestart:
		return "restart"
	case KindDeInit:
		return "deinit"
	case KindDeactivate:
		return "deactivate"
	case KindTimer:
		return "timer"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Event is what a view handler receives.
type Event struct {
	Kind    Kind
	Signal  signal.ID
	Payload []byte
}

// NewEvent wraps a signal, mapping the lifecycle ids onto their kinds.
func NewEvent(id signal.ID, payload []byte) Event {
	ev := Event{Kind: KindCustom, Signal: id, Payload: payload}
	switch id {
	case signal.Init:
		ev.Kind = KindInit
	case signal.Refresh:
		ev.Kind = KindRefresh
	case signal.Restart:
		ev.Kind = KindRestart
	case signal.DeInit:
		ev.Kind = KindDeInit
	case signal.Deactivate:
		ev.Kind = KindDeactivate
	case signal.Timer:
		ev.Kind = KindTimer
	}
	return ev
}

// InitEvent is delivered to a view right after it is pushed.
func InitEvent(param []byte) Event {
	return Event{Kind: KindInit, Signal: signal.Init, Payload: param}
}

func RefreshEvent() Event    { return Event{Kind: KindRefresh, Signal: signal.Refresh} }
func RestartEvent() Event    { return Event{Kind: KindRestart, Signal: signal.Restart} }
func DeInitEvent() Event     { return Event{Kind: KindDeInit, Signal: signal.DeInit} }
func DeactivateEvent() Event { return Event{Kind: KindDeactivate, Signal: signal.Deactivate} }
func TimerEvent() Event      { return Event{Kind: KindTimer, Signal: signal.Timer} }

// Embedded returns the signal carried at the head of the payload, if any.
func (e Event) Embedded() (signal.ID, bool) {
	return signal.Embedded(e.Payload)
}

func (e Event) String() string {
	if e.Kind == KindCustom {
		return e.Signal.String()
	}
	return e.Kind.String()
}
