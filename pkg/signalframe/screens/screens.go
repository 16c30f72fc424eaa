// Package screens provides the view handlers behind the registry: the init,
// home, settings and lock screens with real behaviour, and a passive handler
// for every other screen. Widget construction is delegated to a Widgets
// capability.
package screens

import (
	"log/slog"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/internal"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/locale"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/router"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/signal"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/views"
)

// Navigator is the part of the router the screens drive.
type Navigator interface {
	OpenView(v *router.View) error
	OpenViewWithParam(v *router.View, param []byte) error
	CloseCurrent() error
	CloseToTarget(v *router.View) error
	EmitSignal(id signal.ID, payload []byte) error
}

// Options configures a screen set.
type Options struct {
	Widgets   Widgets           // Defaults to a LogWidgets
	Localizer *locale.Localizer // Required for titles and language changes
	Logger    *slog.Logger      // Defaults to the internal signalframe logger
}

// Set is the registered collection of screens.
type Set struct {
	Registry *views.Registry
	Lock     *LockScreen

	nav     Navigator
	widgets Widgets
	loc     *locale.Localizer
	log     *slog.Logger
}

// New registers every screen. The set must be bound to a router with Bind
// before any view is opened.
func New(opts Options) *Set {
	if opts.Logger == nil {
		opts.Logger = internal.GetInternalLogger()
	}
	if opts.Widgets == nil {
		opts.Widgets = &LogWidgets{Log: opts.Logger}
	}

	s := &Set{
		Registry: views.NewRegistry(),
		widgets:  opts.Widgets,
		loc:      opts.Localizer,
		log:      opts.Logger,
	}
	s.Lock = newLockScreen(s)

	for id := router.ViewID(0); id < views.Total; id++ {
		s.Registry.Register(id, &passive{set: s}, 0)
	}
	s.Registry.
		Register(views.Init, &initScreen{set: s}, 0).
		Register(views.Home, &homeScreen{set: s}, 0).
		Register(views.Setting, &settingScreen{set: s}, 0).
		Register(views.Lock, s.Lock, views.FlagReentrant)
	return s
}

// Bind attaches the router the screens navigate with.
func (s *Set) Bind(nav Navigator) {
	s.nav = nav
}

// View returns the singleton view for id.
func (s *Set) View(id router.ViewID) *router.View {
	return s.Registry.View(id)
}

// Hooks returns the router hooks backed by this set.
func (s *Set) Hooks() router.Hooks {
	return router.Hooks{
		IsLockScreenTop:        s.Lock.IsTop,
		ClearTransientOverlays: s.widgets.ClearHintBoxes,
		DebugName:              views.Name,
		IsReentrant:            s.Registry.Reentrant,
	}
}

func (s *Set) title(id router.ViewID) string {
	if s.loc == nil {
		return views.Name(id)
	}
	return s.loc.Title(id)
}

// lifecycle applies the widget side of the lifecycle events shared by every
// screen. It reports false for events it does not cover.
func (s *Set) lifecycle(v *router.View, ev router.Event) bool {
	switch ev.Kind {
	case router.KindInit:
		s.widgets.Create(v.ID, s.title(v.ID))
	case router.KindDeInit:
		s.widgets.Destroy(v.ID)
	case router.KindRefresh, router.KindRestart, router.KindDeactivate:
	default:
		return false
	}
	return true
}

// passive screens build their widgets and leave every signal to the views
// beneath.
type passive struct {
	set *Set
}

func (p *passive) HandleEvent(v *router.View, ev router.Event) error {
	if p.set.lifecycle(v, ev) {
		return nil
	}
	return router.ErrUnhandled
}

// initScreen is the boot view. It leaves once the account state is known.
type initScreen struct {
	set *Set
}

func (s *initScreen) HandleEvent(v *router.View, ev router.Event) error {
	if s.set.lifecycle(v, ev) {
		return nil
	}
	switch ev.Signal {
	case signal.SetupViewStart:
		return s.set.nav.OpenView(s.set.View(views.Setup))
	case signal.InitGetAccountInfo:
		// Payload carries the number of wallets on the device.
		if len(ev.Payload) == 0 || ev.Payload[0] == 0 {
			return s.set.nav.OpenView(s.set.View(views.Setup))
		}
		if err := s.set.nav.OpenView(s.set.View(views.Home)); err != nil {
			return err
		}
		s.set.Lock.TurnOn(signal.VerifyPin)
		return nil
	}
	return router.ErrUnhandled
}

// homeScreen is the wallet home and the bottom of normal navigation.
type homeScreen struct {
	set *Set
}

func (s *homeScreen) HandleEvent(v *router.View, ev router.Event) error {
	if ev.Kind == router.KindRestart {
		s.set.log.Debug("home restart")
	}
	if s.set.lifecycle(v, ev) {
		return nil
	}
	switch ev.Signal {
	case signal.UsbTransportRequest:
		return s.set.nav.OpenViewWithParam(s.set.View(views.USBTransport), ev.Payload)
	case signal.ScanResult:
		return s.set.nav.OpenViewWithParam(s.set.View(views.TransactionDetail), ev.Payload)
	case signal.LockDevice, signal.ScreenOnVerify:
		// The lock screen is not on the stack while hidden.
		return s.set.Lock.HandleEvent(s.set.View(views.Lock), ev)
	}
	return router.ErrUnhandled
}

// settingScreen applies device settings; the language is the one it owns.
type settingScreen struct {
	set *Set
}

func (s *settingScreen) HandleEvent(v *router.View, ev router.Event) error {
	if s.set.lifecycle(v, ev) {
		return nil
	}
	if ev.Signal != signal.ChangeLanguage {
		return router.ErrUnhandled
	}
	if s.set.loc == nil {
		return router.ErrUnhandled
	}
	if err := s.set.loc.SetLanguage(string(ev.Payload)); err != nil {
		return err
	}
	s.set.log.Info("language changed", "language", s.set.loc.Language().String())
	// Rebuild with the new title.
	s.set.widgets.Destroy(v.ID)
	s.set.widgets.Create(v.ID, s.set.title(v.ID))
	return nil
}
