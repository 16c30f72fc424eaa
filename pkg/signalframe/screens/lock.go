package screens

import (
	"encoding/binary"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/router"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/signal"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/views"
)

// MaxLoginErrors is the number of failed unlock attempts before the device
// is locked out.
const MaxLoginErrors = 10

// lockoutWarning is the number of remaining attempts below which each failure
// shows the lock-out countdown.
const lockoutWarning = 5

// LockScreen is the unlock overlay. It is shown and hidden with TurnOn and
// TurnOff rather than pushed, so it may be visible over any view; the router
// asks IsTop to decide whether to redirect signals to it.
type LockScreen struct {
	set *Set

	shown   atomic.Bool
	purpose atomic.Uint32 // Signal the pending verification answers
	errors  atomic.Uint32
	built   atomic.Bool
}

func newLockScreen(s *Set) *LockScreen {
	return &LockScreen{set: s}
}

// IsTop reports whether the lock screen is visible.
func (l *LockScreen) IsTop() bool {
	return l.shown.Load()
}

// Purpose returns the signal the current verification was requested for.
func (l *LockScreen) Purpose() signal.ID {
	return signal.ID(l.purpose.Load())
}

// ErrorCount returns the failed attempts reported since the last success.
func (l *LockScreen) ErrorCount() int {
	return int(l.errors.Load())
}

// TurnOn shows the lock screen for the verification named by purpose.
func (l *LockScreen) TurnOn(purpose signal.ID) {
	if !l.built.Swap(true) {
		l.set.widgets.Create(views.Lock, l.set.title(views.Lock))
	}
	l.purpose.Store(uint32(purpose))
	l.shown.Store(true)
	l.set.log.Debug("lock screen on", "purpose", purpose.String())
}

// TurnOff hides the lock screen and refreshes whatever is beneath it.
func (l *LockScreen) TurnOff() error {
	l.shown.Store(false)
	l.set.log.Debug("lock screen off")
	return l.set.nav.EmitSignal(signal.Refresh, signal.Tag(signal.VerifyPin))
}

// ToHome hides the lock screen and unwinds to Home.
func (l *LockScreen) ToHome() error {
	l.shown.Store(false)
	return l.set.nav.CloseToTarget(l.set.View(views.Home))
}

func (l *LockScreen) HandleEvent(v *router.View, ev router.Event) error {
	switch ev.Kind {
	case router.KindInit:
		l.built.Store(true)
		l.set.widgets.Create(v.ID, l.set.title(v.ID))
		if tag, ok := ev.Embedded(); ok {
			l.TurnOn(tag)
		}
		return nil
	case router.KindDeInit:
		if l.built.Swap(false) {
			l.set.widgets.Destroy(v.ID)
		}
		l.shown.Store(false)
		return nil
	case router.KindRefresh, router.KindRestart, router.KindDeactivate, router.KindTimer:
		return nil
	}

	switch ev.Signal {
	case signal.SdCardChanged:
		return nil
	case signal.ScreenOnVerify:
		tag, ok := ev.Embedded()
		if !ok {
			tag = signal.VerifyPin
		}
		l.TurnOn(tag)
		return nil
	case signal.LockDevice:
		l.TurnOn(signal.VerifyPin)
		return nil
	case signal.VerifyPasswordPass:
		return l.unlocked()
	case signal.VerifyPasswordFail:
		res, err := signal.DecodeVerifyResult(ev.Payload)
		if err != nil {
			return err
		}
		return l.failed(res)
	}
	return router.ErrUnhandled
}

func (l *LockScreen) unlocked() error {
	l.errors.Store(0)
	if l.set.View(views.Home).IsActive() {
		return l.TurnOff()
	}
	l.shown.Store(false)
	return l.set.nav.OpenView(l.set.View(views.Home))
}

func (l *LockScreen) failed(res signal.VerifyResult) error {
	l.errors.Store(uint32(res.ErrorCount))
	l.set.log.Warn("unlock failed", "errors", res.ErrorCount, "purpose", res.Signal.String())

	left := MaxLoginErrors - int(res.ErrorCount)
	if left >= lockoutWarning {
		return nil
	}
	lockDevice := l.set.View(views.LockDevice)
	if lockDevice.IsActive() {
		// Already counting down.
		return nil
	}
	if left <= 0 {
		return l.set.nav.OpenView(lockDevice)
	}
	return l.set.nav.OpenViewWithParam(lockDevice, binary.LittleEndian.AppendUint16(nil, uint16(left)))
}
