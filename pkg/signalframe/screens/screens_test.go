package screens

import (
	"errors"
	"testing"

	"golang.org/x/text/language"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/locale"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/router"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/signal"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/views"
)

type harness struct {
	t       *testing.T
	set     *Set
	router  *router.Router
	widgets *LogWidgets
	loc     *locale.Localizer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	loc, err := locale.New("en")
	if err != nil {
		t.Fatal(err)
	}
	w := &LogWidgets{}
	set := New(Options{Widgets: w, Localizer: loc})
	r := router.New(router.Options{
		Home:  set.View(views.Home),
		Lock:  set.View(views.Lock),
		Hooks: set.Hooks(),
	})
	set.Bind(r)
	return &harness{t: t, set: set, router: r, widgets: w, loc: loc}
}

// boot opens Init and reports one wallet, leaving Home under the lock screen.
func (h *harness) boot() {
	h.t.Helper()
	if err := h.router.OpenView(h.set.View(views.Init)); err != nil {
		h.t.Fatal(err)
	}
	if err := h.router.EmitSignal(signal.InitGetAccountInfo, []byte{1}); err != nil {
		h.t.Fatal(err)
	}
}

func (h *harness) emit(id signal.ID, payload []byte) {
	h.t.Helper()
	if err := h.router.EmitSignal(id, payload); err != nil {
		h.t.Fatalf("emit %s: %v", id, err)
	}
}

func (h *harness) wantTop(id router.ViewID) {
	h.t.Helper()
	top := h.router.Top()
	if top == nil || top.ID != id {
		got := router.InvalidView
		if top != nil {
			got = top.ID
		}
		h.t.Fatalf("top = %s, want %s", views.Name(got), views.Name(id))
	}
}

func TestEveryViewRegistered(t *testing.T) {
	h := newHarness(t)
	if h.set.Registry.Len() != int(views.Total) {
		t.Fatalf("registered %d views, want %d", h.set.Registry.Len(), views.Total)
	}
	if !h.set.Registry.Reentrant(views.Lock) {
		t.Error("lock must be reentrant")
	}
}

func TestStrictOpenHonoursReentrantViews(t *testing.T) {
	set := New(Options{Widgets: &LogWidgets{}})
	r := router.New(router.Options{
		Home:            set.View(views.Home),
		Hooks:           set.Hooks(),
		StrictParamOpen: true,
	})
	set.Bind(r)

	if err := r.OpenView(set.View(views.Home)); err != nil {
		t.Fatal(err)
	}
	if err := r.OpenViewWithParam(set.View(views.Home), []byte{1}); !errors.Is(err, router.ErrAlreadyOpen) {
		t.Errorf("home: expected ErrAlreadyOpen, got %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := r.OpenViewWithParam(set.View(views.Lock), signal.Tag(signal.VerifyPin)); err != nil {
			t.Fatalf("lock open %d: %v", i, err)
		}
	}
	if r.Stack().Len() != 3 {
		t.Errorf("depth = %d, want home and two lock frames", r.Stack().Len())
	}
}

func TestBootWithWallet(t *testing.T) {
	h := newHarness(t)
	h.boot()

	h.wantTop(views.Home)
	if !h.set.Lock.IsTop() {
		t.Fatal("lock screen must be shown after boot")
	}
	if h.set.Lock.Purpose() != signal.VerifyPin {
		t.Errorf("purpose = %s", h.set.Lock.Purpose())
	}
	if got := h.widgets.Live(); got != 3 {
		t.Errorf("live widgets = %d, want init, home and lock", got)
	}
}

func TestBootWithoutWallet(t *testing.T) {
	h := newHarness(t)
	if err := h.router.OpenView(h.set.View(views.Init)); err != nil {
		t.Fatal(err)
	}
	h.emit(signal.InitGetAccountInfo, []byte{0})
	h.wantTop(views.Setup)
	if h.set.Lock.IsTop() {
		t.Error("no lock screen without a wallet")
	}
}

func TestUnlock(t *testing.T) {
	h := newHarness(t)
	h.boot()

	h.emit(signal.VerifyPasswordPass, signal.VerifyResult{Signal: signal.VerifyPin}.Encode())

	if h.set.Lock.IsTop() {
		t.Fatal("lock screen still shown after unlock")
	}
	h.wantTop(views.Home)
}

func TestUnlockFailures(t *testing.T) {
	h := newHarness(t)
	h.boot()

	h.emit(signal.VerifyPasswordFail, signal.VerifyResult{Signal: signal.VerifyPin, ErrorCount: 3}.Encode())
	if h.set.Lock.ErrorCount() != 3 {
		t.Errorf("error count = %d", h.set.Lock.ErrorCount())
	}
	h.wantTop(views.Home)

	// Fewer than five attempts left shows the countdown.
	h.emit(signal.VerifyPasswordFail, signal.VerifyResult{Signal: signal.VerifyPin, ErrorCount: 7}.Encode())
	h.wantTop(views.LockDevice)
	if !h.set.Lock.IsTop() {
		t.Error("lock screen must stay up")
	}

	// Further failures up to the lock-out reuse the countdown frame.
	for count := uint16(8); count <= MaxLoginErrors; count++ {
		h.emit(signal.VerifyPasswordFail, signal.VerifyResult{Signal: signal.VerifyPin, ErrorCount: count}.Encode())
	}
	h.wantTop(views.LockDevice)
	if h.router.Stack().Len() != 3 {
		t.Errorf("depth = %d, want init, home and lock device", h.router.Stack().Len())
	}
	if h.set.Lock.ErrorCount() != MaxLoginErrors {
		t.Errorf("error count = %d", h.set.Lock.ErrorCount())
	}
}

func TestFailureForOtherRequestIsNotIntercepted(t *testing.T) {
	h := newHarness(t)
	h.boot()

	// Home does not take verification results, so nobody handles it.
	h.emit(signal.VerifyPasswordFail, signal.VerifyResult{Signal: signal.SetPin, ErrorCount: 9}.Encode())
	if h.set.Lock.ErrorCount() != 0 {
		t.Error("lock screen counted a failure it did not request")
	}
	h.wantTop(views.Home)
}

func TestLockDeviceFromHome(t *testing.T) {
	h := newHarness(t)
	h.boot()
	h.emit(signal.VerifyPasswordPass, signal.VerifyResult{Signal: signal.VerifyPin}.Encode())

	h.emit(signal.ScreenOnVerify, signal.Tag(signal.ScreenGoHomePass))
	if !h.set.Lock.IsTop() || h.set.Lock.Purpose() != signal.ScreenGoHomePass {
		t.Fatalf("lock shown=%v purpose=%s", h.set.Lock.IsTop(), h.set.Lock.Purpose())
	}

	if err := h.set.Lock.ToHome(); err != nil {
		t.Fatal(err)
	}
	if h.set.Lock.IsTop() {
		t.Error("ToHome must hide the lock screen")
	}
	if h.widgets.Cleared() != 1 {
		t.Errorf("hint boxes cleared %d times", h.widgets.Cleared())
	}
}

func TestChangeLanguage(t *testing.T) {
	h := newHarness(t)
	h.boot()
	h.emit(signal.VerifyPasswordPass, signal.VerifyResult{Signal: signal.VerifyPin}.Encode())

	if err := h.router.OpenView(h.set.View(views.Setting)); err != nil {
		t.Fatal(err)
	}
	h.emit(signal.ChangeLanguage, []byte("ko"))
	if h.loc.Language() != language.Korean {
		t.Fatalf("language = %s", h.loc.Language())
	}

	err := h.router.EmitSignal(signal.ChangeLanguage, []byte("not a tag!"))
	if !router.IsHandlerError(err) {
		t.Fatalf("expected a handler error, got %v", err)
	}
	if !errors.Is(err, locale.ErrUnsupportedLanguage) {
		t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
	}
	if h.loc.Language() != language.Korean {
		t.Error("failed change must keep the language")
	}
}

func TestPassiveScreensFallThrough(t *testing.T) {
	h := newHarness(t)
	h.boot()
	h.emit(signal.VerifyPasswordPass, signal.VerifyResult{Signal: signal.VerifyPin}.Encode())

	if err := h.router.OpenView(h.set.View(views.Scan)); err != nil {
		t.Fatal(err)
	}
	// Scan is passive; Home takes the result and opens the detail view.
	h.emit(signal.ScanResult, []byte("ur:crypto-psbt"))
	h.wantTop(views.TransactionDetail)

	if err := h.router.CloseToTarget(h.set.View(views.Home)); err != nil {
		t.Fatal(err)
	}
	h.wantTop(views.Home)
	// Init and Home remain built, plus the lock overlay.
	if got := h.widgets.Live(); got != 3 {
		t.Errorf("live widgets = %d", got)
	}
}
