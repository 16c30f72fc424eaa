package router

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/constants"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/internal"
)

// Hooks are the collaborator capabilities the router consumes. Any of them
// may be nil.
type Hooks struct {
	IsLockScreenTop        func() bool         // Lock screen is logically on top
	ClearTransientOverlays func()              // Drop hint boxes before a close-to-target
	DebugName              func(ViewID) string // Name used in logs and diagnostics
	IsReentrant            func(ViewID) bool   // View may be pushed again while active
}

// SpliceDeInit selects which view receives DeInit when CloseView removes a
// view from the middle of the stack.
type SpliceDeInit int

const (
	DeInitRemoved   SpliceDeInit = iota // The view being spliced out
	DeInitSuccessor                     // The view directly above the removed one
)

// Options configures a Router.
type Options struct {
	Home             *View        // Target of overflow recovery and the close-to-target short circuit
	Lock             *View        // Receives intercepted signals while the lock screen is on top
	Hooks            Hooks        // Collaborator capabilities
	Logger           *slog.Logger // Defaults to the internal signalframe logger
	DiagnosticsSlots int          // Ring size, defaults to constants.DiagnosticsSlots
	RoutingSlack     int          // Extra routing steps beyond the stack depth, defaults to constants.RoutingSlack
	StrictParamOpen  bool         // OpenViewWithParam rejects an already active view as OpenView does
	SpliceDeInit     SpliceDeInit // DeInit target for CloseView on a non-top view
}

// OpenOptions controls a single Open call.
type OpenOptions struct {
	RejectIfOpen bool // Fail with ErrAlreadyOpen if the view is already active
}

// Router owns a view stack and routes signals through it.
// A Router is not safe for concurrent use; serialize calls through a
// dispatcher when several goroutines produce signals.
type Router struct {
	opts  Options
	stack *Stack
	diag  *Diagnostics
	log   *slog.Logger
}

// New creates a new Router with an empty stack.
func New(opts Options) *Router {
	if opts.Logger == nil {
		opts.Logger = internal.GetInternalLogger()
	}
	if opts.DiagnosticsSlots <= 0 {
		opts.DiagnosticsSlots = constants.DiagnosticsSlots
	}
	if opts.RoutingSlack <= 0 {
		opts.RoutingSlack = constants.RoutingSlack
	}
	return &Router{
		opts:  opts,
		stack: NewStack(),
		diag:  newDiagnostics(opts.DiagnosticsSlots),
		log:   opts.Logger,
	}
}

// Stack returns the view stack for inspection.
func (r *Router) Stack() *Stack {
	return r.stack
}

// Diagnostics returns the push history ring.
func (r *Router) Diagnostics() *Diagnostics {
	return r.diag
}

// Logger returns the logger the router writes to.
func (r *Router) Logger() *slog.Logger {
	return r.log
}

// Top returns the current top view, or nil.
func (r *Router) Top() *View {
	return r.stack.Top()
}

// Home returns the configured Home view.
func (r *Router) Home() *View {
	return r.opts.Home
}

// Name returns the debug name of a view id.
func (r *Router) Name(id ViewID) string {
	if r.opts.Hooks.DebugName != nil {
		return r.opts.Hooks.DebugName(id)
	}
	return fmt.Sprintf("view(%d)", int(id))
}

// CheckIfOpened reports whether v is the active view.
func (r *Router) CheckIfOpened(v *View) bool {
	return v != nil && v.active
}

// CheckIfTop reports whether v is the current top of the stack.
func (r *Router) CheckIfTop(v *View) bool {
	return v != nil && r.stack.Top() == v
}

// OpenView pushes v and makes it the active view. It fails with
// ErrAlreadyOpen if v is already active.
func (r *Router) OpenView(v *View) error {
	return r.Open(v, nil, OpenOptions{RejectIfOpen: true})
}

// OpenViewWithParam pushes v and passes param with its Init event. Unlike
// OpenView it accepts a view that is already active, unless the router was
// built with StrictParamOpen and v is not reentrant.
func (r *Router) OpenViewWithParam(v *View, param []byte) error {
	reject := r.opts.StrictParamOpen
	if reject && v != nil && r.opts.Hooks.IsReentrant != nil {
		reject = !r.opts.Hooks.IsReentrant(v.ID)
	}
	return r.Open(v, param, OpenOptions{RejectIfOpen: reject})
}

// Open pushes v onto the stack. The previous top receives Deactivate, then v
// becomes active and receives Init (carrying param) followed by Refresh.
// Handler failures are returned as *HandlerError after the push completes.
func (r *Router) Open(v *View, param []byte, o OpenOptions) error {
	if v == nil {
		return ErrNilView
	}
	if o.RejectIfOpen && v.active {
		r.log.Error("view already opened", "view", r.Name(v.ID))
		return fmt.Errorf("open %s: %w", r.Name(v.ID), ErrAlreadyOpen)
	}

	old := r.stack.Top()
	snap := Snapshot{ID: v.ID, Name: r.Name(v.ID), WasActive: v.active, Previous: InvalidView}
	if old != nil {
		snap.Previous = old.ID
		// Best effort: the outgoing view's answer does not affect the push.
		_ = r.deliver(old, DeactivateEvent())
		old.active = false
	}

	r.stack.push(v)
	v.active = true
	snap.Depth = r.stack.Len()
	r.diag.record(snap)

	r.log.Debug("open view", "view", snap.Name, "depth", snap.Depth)

	initEv := InitEvent(param)
	refreshEv := RefreshEvent()
	return errors.Join(
		handlerErr(v, initEv, r.deliver(v, initEv)),
		handlerErr(v, refreshEv, r.deliver(v, refreshEv)),
	)
}

// CloseCurrent closes the top view: it receives DeInit and is popped, and the
// view beneath becomes active and receives Refresh.
func (r *Router) CloseCurrent() error {
	top := r.stack.Top()
	if top == nil {
		r.log.Error("close on empty view stack")
		return ErrEmptyStack
	}

	deinitEv := DeInitEvent()
	errDeInit := handlerErr(top, deinitEv, r.deliver(top, deinitEv))
	top.active = false
	r.stack.pop()

	r.log.Debug("close view", "view", r.Name(top.ID), "depth", r.stack.Len())

	next := r.stack.Top()
	if next == nil {
		return errDeInit
	}
	next.active = true
	refreshEv := RefreshEvent()
	return errors.Join(errDeInit, handlerErr(next, refreshEv, r.deliver(next, refreshEv)))
}

// CloseView removes v from the stack. Closing the top behaves like
// CloseCurrent; otherwise v is spliced out of the chain without disturbing
// the active view, and the DeInit target follows Options.SpliceDeInit.
func (r *Router) CloseView(v *View) error {
	if v == nil {
		return ErrNilView
	}
	if r.stack.Top() == v {
		return r.CloseCurrent()
	}

	above, ok := r.findAbove(v)
	if !ok {
		r.log.Error("close view not on stack", "view", r.Name(v.ID))
		return fmt.Errorf("close %s: %w", r.Name(v.ID), ErrNotFound)
	}

	target := v
	if r.opts.SpliceDeInit == DeInitSuccessor {
		target = r.stack.frames[above].view
	}

	deinitEv := DeInitEvent()
	err := handlerErr(target, deinitEv, r.deliver(target, deinitEv))
	v.active = false
	r.stack.unlink(above)

	r.log.Debug("close view", "view", r.Name(v.ID), "depth", r.stack.Len())
	return err
}

// findAbove walks down from the top for the frame whose link points at v.
func (r *Router) findAbove(v *View) (int, bool) {
	s := r.stack
	for idx, steps := s.top, 0; s.valid(idx) && steps <= s.count; idx, steps = s.frames[idx].prev, steps+1 {
		prev := s.frames[idx].prev
		if s.valid(prev) && s.frames[prev].view == v {
			return idx, true
		}
	}
	return noFrame, false
}

// CloseToTarget unwinds the stack down to v and refreshes it. When the Home
// view is on top nothing is closed; v receives Restart instead. Transient
// overlays are cleared first in both cases.
func (r *Router) CloseToTarget(v *View) error {
	if v == nil {
		return ErrNilView
	}
	if r.opts.Hooks.ClearTransientOverlays != nil {
		r.opts.Hooks.ClearTransientOverlays()
	}

	if top := r.stack.Top(); top != nil && top == r.opts.Home {
		ev := RestartEvent()
		return handlerErr(v, ev, r.deliver(v, ev))
	}

	if !r.stack.Contains(v) {
		r.log.Error("close to target not on stack", "view", r.Name(v.ID))
		return fmt.Errorf("close to %s: %w", r.Name(v.ID), ErrNotFound)
	}

	var errs []error
	for budget := r.stack.Len() + r.opts.RoutingSlack; r.stack.Top() != v; budget-- {
		if budget == 0 {
			return fmt.Errorf("close to %s: %w", r.Name(v.ID), ErrRoutingOverflow)
		}
		if err := r.CloseCurrent(); err != nil {
			if errors.Is(err, ErrEmptyStack) {
				return fmt.Errorf("close to %s: %w", r.Name(v.ID), ErrNotFound)
			}
			errs = append(errs, err)
		}
	}

	ev := RefreshEvent()
	errs = append(errs, handlerErr(v, ev, r.deliver(v, ev)))
	return errors.Join(errs...)
}

// Reset drops every frame without notifying the views and reopens Home if one
// is configured. It is the recovery path after a routing overflow.
func (r *Router) Reset() error {
	// Walk the arena, not the chain: a corrupt chain may hide frames.
	for i := range r.stack.frames {
		if f := r.stack.frames[i]; f.live && f.view != nil {
			f.view.active = false
		}
	}
	r.stack.reset()

	if r.opts.Home == nil {
		return nil
	}
	return r.OpenView(r.opts.Home)
}

// Teardown closes every open view from the top down, delivering DeInit to
// each, and clears the diagnostics ring. The router can be reused afterwards.
func (r *Router) Teardown() {
	for steps := r.stack.Len(); steps > 0 && !r.stack.IsEmpty(); steps-- {
		top := r.stack.Top()
		if top == nil {
			break
		}
		_ = r.deliver(top, DeInitEvent())
		top.active = false
		r.stack.pop()
	}
	r.stack.reset()
	r.diag.reset()
}

// deliver hands ev to v. While the lock screen is on top, Refresh and SD card
// events are redirected to the lock view and count as handled.
func (r *Router) deliver(v *View, ev Event) error {
	if lock, ok := r.lockRedirect(ev); ok {
		_ = invoke(lock, ev)
		return nil
	}
	return invoke(v, ev)
}

func invoke(v *View, ev Event) error {
	if v == nil || v.Handler == nil {
		return ErrUnhandled
	}
	return v.Handler.HandleEvent(v, ev)
}
