package router

// ViewID is a type-safe identifier for screens. It names a screen type, not an
// instance. Applications define their own constants using iota.
type ViewID int

// InvalidView marks the absence of a view in diagnostics snapshots.
const InvalidView ViewID = -1

// Handler reacts to the events the router delivers to a view.
//
// Return nil when the event was handled, ErrUnhandled to let the router try the
// view beneath, or any other error when the event was handled but failed.
// Handlers run on the router's goroutine and must return promptly; they may
// open or close views.
type Handler interface {
	HandleEvent(v *View, ev Event) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(v *View, ev Event) error

func (f HandlerFunc) HandleEvent(v *View, ev Event) error {
	return f(v, ev)
}

// View is a full-screen UI state. Each screen module owns one View for its
// lifetime; the router only links it into the stack while it is open.
type View struct {
	ID      ViewID
	Handler Handler

	active bool
}

// NewView creates a view with the given identity and handler.
func NewView(id ViewID, h Handler) *View {
	return &View{ID: id, Handler: h}
}

// IsActive reports whether the view is the current top of a router.
func (v *View) IsActive() bool {
	return v.active
}
