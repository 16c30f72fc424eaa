package router

import "github.com/BrandonKowalski/signalframe/pkg/signalframe/signal"

// lockTop reports whether the lock screen currently owns input. This is
// independent of the stack: the lock view is an overlay that may sit anywhere
// in the stack, or nowhere.
func (r *Router) lockTop() bool {
	return r.opts.Lock != nil &&
		r.opts.Hooks.IsLockScreenTop != nil &&
		r.opts.Hooks.IsLockScreenTop()
}

// lockRedirect reports whether ev must go to the lock view instead of its
// addressee. Applies to every delivery, including the stack's own Refresh.
func (r *Router) lockRedirect(ev Event) (*View, bool) {
	if !r.lockTop() {
		return nil, false
	}
	if ev.Kind == KindRefresh || ev.Signal == signal.SdCardChanged {
		return r.opts.Lock, true
	}
	return nil, false
}

// intercept decides, before normal routing, whether an emitted signal belongs
// to the lock view.
func (r *Router) intercept(ev Event) (*View, bool) {
	if lock, ok := r.lockRedirect(ev); ok {
		return lock, true
	}
	if !r.lockTop() {
		return nil, false
	}

	// A failed verification goes to the lock screen only when it answers the
	// lock screen's own pin request.
	if ev.Signal == signal.VerifyPasswordFail {
		if res, err := signal.DecodeVerifyResult(ev.Payload); err == nil && res.Signal == signal.VerifyPin {
			return r.opts.Lock, true
		}
	}

	if tag, ok := ev.Embedded(); ok && tag == signal.VerifyPin {
		return r.opts.Lock, true
	}
	return nil, false
}
