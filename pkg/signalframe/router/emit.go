package router

import (
	"fmt"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/signal"
)

// EmitSignal delivers a signal to exactly one view.
//
// Lock screen interception is evaluated first. Otherwise the stack is walked
// from the top: the first view that does not answer ErrUnhandled consumes the
// signal. A handler failure is returned as *HandlerError. A signal nobody
// wants, or one emitted on an empty stack, is dropped silently.
//
// If the walk takes more steps than the stack holds plus the routing slack,
// the stack is reset to Home and ErrRoutingOverflow is returned.
func (r *Router) EmitSignal(id signal.ID, payload []byte) error {
	ev := NewEvent(id, payload)

	if lock, ok := r.intercept(ev); ok {
		r.log.Debug("signal intercepted by lock screen", "signal", id.String())
		return handlerErr(lock, ev, invoke(lock, ev))
	}

	s := r.stack
	idx := s.top
	for steps := 0; s.valid(idx); {
		f := s.frames[idx]
		err := invoke(f.view, ev)
		if Classify(err) != Unhandled {
			r.log.Debug("signal handled", "signal", id.String(), "view", r.Name(f.view.ID))
			return handlerErr(f.view, ev, err)
		}

		// The handler may have changed the stack; follow the link it had.
		idx = f.prev
		steps++
		if steps > s.count+r.opts.RoutingSlack {
			r.log.Error("signal routing overflow, resetting view stack",
				"signal", id.String(),
				"steps", steps,
				"depth", s.count,
			)
			if err := r.Reset(); err != nil {
				return fmt.Errorf("%w: reset: %w", ErrRoutingOverflow, err)
			}
			return ErrRoutingOverflow
		}
	}

	return nil
}

// Emit is EmitSignal with a typed payload tag: the payload carries only tag.
func (r *Router) Emit(id signal.ID, tag signal.ID) error {
	return r.EmitSignal(id, signal.Tag(tag))
}
