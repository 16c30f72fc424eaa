package router

import (
	"errors"
	"fmt"
)

// Sentinel errors for stack and routing conditions.
var (
	// ErrUnhandled is returned by a handler that does not want an event.
	// The router keeps searching down the stack.
	ErrUnhandled = errors.New("router: event not handled")

	// ErrAlreadyOpen means the caller tried to open the view that is already active.
	ErrAlreadyOpen = errors.New("router: view already open")

	// ErrNotFound means the view is not on the stack.
	ErrNotFound = errors.New("router: view not on stack")

	// ErrEmptyStack means a close was requested with nothing open.
	ErrEmptyStack = errors.New("router: view stack is empty")

	// ErrRoutingOverflow means routing walked more frames than the stack holds.
	// The stack links are corrupt and the router resets to the Home view.
	ErrRoutingOverflow = errors.New("router: routing overflow")

	// ErrNilView is returned when a nil view is passed to a stack operation.
	ErrNilView = errors.New("router: nil view")
)

// HandlerError reports a view handler that ran but failed. The event still
// counts as delivered; routing is not retried on another view.
type HandlerError struct {
	View  ViewID
	Event Event
	Err   error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("router: view %d failed on %s: %v", e.View, e.Event, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// IsHandlerError checks if err carries a handler failure.
func IsHandlerError(err error) bool {
	var he *HandlerError
	return errors.As(err, &he)
}

// IsUnhandled checks if err is the unhandled sentinel.
func IsUnhandled(err error) bool {
	return errors.Is(err, ErrUnhandled)
}

// Result is the routing outcome of a single handler call.
type Result int

const (
	Handled   Result = iota // Handler consumed the event
	Unhandled               // Handler passed; keep searching
	Failed                  // Handler consumed the event but reported an error
)

func (r Result) String() string {
	switch r {
	case Handled:
		return "handled"
	case Unhandled:
		return "unhandled"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}

// Classify maps a handler's return value onto a Result.
func Classify(err error) Result {
	switch {
	case err == nil:
		return Handled
	case errors.Is(err, ErrUnhandled):
		return Unhandled
	default:
		return Failed
	}
}

// handlerErr wraps a failed handler call, or returns nil when the call
// handled or passed on the event.
func handlerErr(v *View, ev Event, err error) error {
	if Classify(err) != Failed {
		return nil
	}
	return &HandlerError{View: v.ID, Event: ev, Err: err}
}
