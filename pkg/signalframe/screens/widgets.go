package screens

import (
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/router"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/views"
)

// Widgets is the widget toolkit as the screens see it: an opaque capability
// that builds and tears down a view's widgets. Layout lives behind it.
type Widgets interface {
	Create(id router.ViewID, title string)
	Destroy(id router.ViewID)
	ClearHintBoxes()
}

// LogWidgets is a Widgets that only logs. It backs the simulator and tests.
type LogWidgets struct {
	Log *slog.Logger

	created   atomic.Int64
	destroyed atomic.Int64
	cleared   atomic.Int64
}

func (w *LogWidgets) Create(id router.ViewID, title string) {
	w.created.Inc()
	if w.Log != nil {
		w.Log.Debug("create widgets", "view", views.Name(id), "title", title)
	}
}

func (w *LogWidgets) Destroy(id router.ViewID) {
	w.destroyed.Inc()
	if w.Log != nil {
		w.Log.Debug("destroy widgets", "view", views.Name(id))
	}
}

func (w *LogWidgets) ClearHintBoxes() {
	w.cleared.Inc()
	if w.Log != nil {
		w.Log.Debug("clear hint boxes")
	}
}

// Live returns the number of views whose widgets are currently built.
func (w *LogWidgets) Live() int64 {
	return w.created.Load() - w.destroyed.Load()
}

// Cleared returns how many times hint boxes were cleared.
func (w *LogWidgets) Cleared() int64 {
	return w.cleared.Load()
}
