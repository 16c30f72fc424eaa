// Package router provides the view stack and signal routing runtime.
//
// Every full-screen UI state is a View: an identity plus a Handler. Views are
// pushed onto a stack with OpenView and removed with CloseCurrent, CloseView or
// CloseToTarget. The top of the stack is the only active view. Signals emitted
// with EmitSignal walk the stack from the top until a handler takes them.
//
// # Basic Usage
//
//	// Define view identifiers as typed constants
//	const (
//	    ViewHome router.ViewID = iota
//	    ViewSettings
//	)
//
//	home := router.NewView(ViewHome, router.HandlerFunc(func(v *router.View, ev router.Event) error {
//	    switch ev.Kind {
//	    case router.KindInit, router.KindRefresh:
//	        return nil
//	    }
//	    return router.ErrUnhandled
//	}))
//
//	r := router.New(router.Options{Home: home})
//	_ = r.OpenView(home)
//	_ = r.OpenView(settings)
//
//	// Settings sees the signal first; Home only if Settings passes.
//	_ = r.EmitSignal(signal.ChangeLanguage, []byte("ko"))
//
// # Lifecycle
//
// Opening a view delivers Deactivate to the previous top, then Init and
// Refresh to the new view. Closing delivers DeInit to the closed view and
// Refresh to the view that becomes active. CloseToTarget while Home is on top
// delivers Restart to the target and closes nothing.
//
// # Handler Results
//
// A handler returns nil (handled), ErrUnhandled (keep searching), or any other
// error (handled, but failed). Failures surface to the caller as *HandlerError
// and never cause the signal to be offered to another view.
//
// # Lock Screen
//
// When Options.Lock is set and Hooks.IsLockScreenTop reports true, Refresh and
// SD card signals, failed pin verifications and any payload tagged with the
// VerifyPin signal go straight to the lock view.
//
// # Concurrency
//
// A Router is single threaded. Hosts with several producers serialize every
// call through one goroutine, see package dispatch.
package router
