package router

import (
	"errors"
	"fmt"
	"testing"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/signal"
)

// recorder logs every event a view receives and answers custom signals from
// a per-signal table. Signals not in the table are unhandled.
type recorder struct {
	log     *[]string
	name    string
	answers map[signal.ID]error
	onEvent func(ev Event)
}

func (rec *recorder) HandleEvent(v *View, ev Event) error {
	*rec.log = append(*rec.log, rec.name+":"+ev.String())
	if rec.onEvent != nil {
		rec.onEvent(ev)
	}
	if ev.Kind != KindCustom {
		if err, ok := rec.answers[ev.Signal]; ok {
			return err
		}
		return nil
	}
	if err, ok := rec.answers[ev.Signal]; ok {
		return err
	}
	return ErrUnhandled
}

type fixture struct {
	t      *testing.T
	log    []string
	views  map[string]*View
	router *Router
	locked bool
	clears int
}

func newFixture(t *testing.T, opts Options, names ...string) *fixture {
	t.Helper()
	f := &fixture{t: t, views: make(map[string]*View)}
	for i, name := range names {
		f.views[name] = NewView(ViewID(i), &recorder{log: &f.log, name: name})
	}
	byID := make(map[ViewID]string)
	for name, v := range f.views {
		byID[v.ID] = name
	}
	if v, ok := f.views["home"]; ok && opts.Home == nil {
		opts.Home = v
	}
	if v, ok := f.views["lock"]; ok && opts.Lock == nil {
		opts.Lock = v
	}
	opts.Hooks.IsLockScreenTop = func() bool { return f.locked }
	opts.Hooks.ClearTransientOverlays = func() { f.clears++ }
	opts.Hooks.DebugName = func(id ViewID) string { return byID[id] }
	f.router = New(opts)
	return f
}

func (f *fixture) view(name string) *View {
	f.t.Helper()
	v, ok := f.views[name]
	if !ok {
		f.t.Fatalf("no view %q", name)
	}
	return v
}

func (f *fixture) answer(name string, id signal.ID, err error) {
	rec := f.view(name).Handler.(*recorder)
	if rec.answers == nil {
		rec.answers = make(map[signal.ID]error)
	}
	rec.answers[id] = err
}

func (f *fixture) open(names ...string) {
	f.t.Helper()
	for _, name := range names {
		if err := f.router.OpenView(f.view(name)); err != nil {
			f.t.Fatalf("OpenView(%s): %v", name, err)
		}
	}
}

func (f *fixture) takeLog() []string {
	out := f.log
	f.log = nil
	return out
}

func (f *fixture) stackNames() []string {
	var out []string
	for _, v := range f.router.Stack().Views() {
		out = append(out, f.router.Name(v.ID))
	}
	return out
}

func (f *fixture) assertSingleActive() {
	f.t.Helper()
	active := 0
	for name, v := range f.views {
		if v.IsActive() {
			active++
			if f.router.Top() != v {
				f.t.Errorf("%s is active but not on top", name)
			}
		}
	}
	if f.router.Stack().IsEmpty() {
		if active != 0 {
			f.t.Errorf("%d active views on an empty stack", active)
		}
		return
	}
	if active != 1 {
		f.t.Errorf("%d active views, want exactly 1", active)
	}
}

func assertLog(t *testing.T, got []string, want ...string) {
	t.Helper()
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("events\n got: %v\nwant: %v", got, want)
	}
}

func TestOpenViewLifecycleOrder(t *testing.T) {
	f := newFixture(t, Options{}, "home", "settings")

	f.open("home")
	assertLog(t, f.takeLog(), "home:init", "home:refresh")

	f.open("settings")
	assertLog(t, f.takeLog(), "home:deactivate", "settings:init", "settings:refresh")

	if !f.router.CheckIfTop(f.view("settings")) || f.router.CheckIfTop(f.view("home")) {
		t.Error("settings should be the only top")
	}
	f.assertSingleActive()
}

func TestOpenViewAlreadyOpen(t *testing.T) {
	f := newFixture(t, Options{}, "home")
	f.open("home")
	f.takeLog()

	err := f.router.OpenView(f.view("home"))
	if !errors.Is(err, ErrAlreadyOpen) {
		t.Fatalf("expected ErrAlreadyOpen, got %v", err)
	}
	if f.router.Stack().Len() != 1 {
		t.Errorf("stack depth = %d, want 1", f.router.Stack().Len())
	}
	assertLog(t, f.takeLog())
}

func TestOpenViewWithParamIsPermissive(t *testing.T) {
	f := newFixture(t, Options{}, "home", "lock")
	f.open("home")

	var got []byte
	f.view("lock").Handler.(*recorder).onEvent = func(ev Event) {
		if ev.Kind == KindInit {
			got = ev.Payload
		}
	}

	param := signal.Tag(signal.VerifyPin)
	if err := f.router.OpenViewWithParam(f.view("lock"), param); err != nil {
		t.Fatal(err)
	}
	if string(got) != string(param) {
		t.Errorf("init payload = %v, want %v", got, param)
	}

	// Re-entrant open of the active lock view is accepted.
	if err := f.router.OpenViewWithParam(f.view("lock"), param); err != nil {
		t.Fatalf("second OpenViewWithParam: %v", err)
	}
	if d := f.router.Stack().Len(); d != 3 {
		t.Errorf("stack depth = %d, want 3", d)
	}
	f.assertSingleActive()

	// Closing one frame leaves the lock view on top and active.
	if err := f.router.CloseCurrent(); err != nil {
		t.Fatal(err)
	}
	if !f.router.CheckIfOpened(f.view("lock")) || !f.router.CheckIfTop(f.view("lock")) {
		t.Error("lock should still be the active top")
	}
	f.assertSingleActive()
}

func TestOpenViewWithParamStrict(t *testing.T) {
	f := newFixture(t, Options{StrictParamOpen: true}, "home")
	f.open("home")

	err := f.router.OpenViewWithParam(f.view("home"), []byte{1})
	if !errors.Is(err, ErrAlreadyOpen) {
		t.Fatalf("expected ErrAlreadyOpen, got %v", err)
	}
}

func TestOpenViewWithParamStrictReentrant(t *testing.T) {
	var opts Options
	opts.StrictParamOpen = true
	opts.Hooks.IsReentrant = func(id ViewID) bool { return id == 1 }
	f := newFixture(t, opts, "home", "lock")
	f.open("home", "lock")

	if err := f.router.OpenViewWithParam(f.view("lock"), []byte{1}); err != nil {
		t.Fatalf("reentrant view rejected: %v", err)
	}
	if f.router.Stack().Len() != 3 {
		t.Errorf("depth = %d, want 3", f.router.Stack().Len())
	}
	f.open("home")
	if err := f.router.OpenViewWithParam(f.view("home"), []byte{1}); !errors.Is(err, ErrAlreadyOpen) {
		t.Errorf("expected ErrAlreadyOpen, got %v", err)
	}
}

func TestOpenRejectFlagPerCall(t *testing.T) {
	f := newFixture(t, Options{}, "home")
	f.open("home")

	if err := f.router.Open(f.view("home"), nil, OpenOptions{RejectIfOpen: true}); !errors.Is(err, ErrAlreadyOpen) {
		t.Errorf("RejectIfOpen: expected ErrAlreadyOpen, got %v", err)
	}
	if err := f.router.Open(f.view("home"), nil, OpenOptions{}); err != nil {
		t.Errorf("permissive open: %v", err)
	}
}

func TestOpenNilView(t *testing.T) {
	r := New(Options{})
	if err := r.OpenView(nil); !errors.Is(err, ErrNilView) {
		t.Errorf("expected ErrNilView, got %v", err)
	}
	if err := r.CloseView(nil); !errors.Is(err, ErrNilView) {
		t.Errorf("expected ErrNilView, got %v", err)
	}
}

func TestCheckIfOpenedAroundClose(t *testing.T) {
	f := newFixture(t, Options{}, "home", "settings")
	f.open("home", "settings")

	if !f.router.CheckIfOpened(f.view("settings")) {
		t.Fatal("settings should be opened right after OpenView")
	}
	if err := f.router.CloseCurrent(); err != nil {
		t.Fatal(err)
	}
	if f.router.CheckIfOpened(f.view("settings")) {
		t.Error("settings should not be opened after CloseCurrent")
	}
	if !f.router.CheckIfOpened(f.view("home")) {
		t.Error("home should be active again")
	}
}

func TestCloseCurrentLifecycleOrder(t *testing.T) {
	f := newFixture(t, Options{}, "home", "settings")
	f.open("home", "settings")
	f.takeLog()

	if err := f.router.CloseCurrent(); err != nil {
		t.Fatal(err)
	}
	assertLog(t, f.takeLog(), "settings:deinit", "home:refresh")
	f.assertSingleActive()
}

func TestCloseCurrentEmpty(t *testing.T) {
	r := New(Options{})
	if err := r.CloseCurrent(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("expected ErrEmptyStack, got %v", err)
	}
}

func TestRoundTripLeavesNoLinks(t *testing.T) {
	f := newFixture(t, Options{}, "a", "b")
	f.open("a", "b")

	for i := 0; i < 2; i++ {
		if err := f.router.CloseCurrent(); err != nil {
			t.Fatal(err)
		}
	}

	s := f.router.Stack()
	if !s.IsEmpty() || s.Len() != 0 || f.router.Top() != nil {
		t.Fatalf("stack not empty: len=%d top=%v", s.Len(), f.router.Top())
	}
	for i, fr := range s.frames {
		if fr.live || fr.view != nil || fr.prev != noFrame {
			t.Errorf("frame %d still linked: %+v", i, fr)
		}
	}
	f.assertSingleActive()
}

func TestSingleActiveOverSequences(t *testing.T) {
	f := newFixture(t, Options{}, "home", "a", "b", "c")
	steps := []struct {
		op   string
		view string
	}{
		{"open", "home"}, {"open", "a"}, {"open", "b"}, {"close", ""},
		{"open", "c"}, {"open", "b"}, {"close", ""}, {"close", ""},
		{"open", "b"}, {"close", ""}, {"close", ""}, {"close", ""},
	}
	for i, st := range steps {
		var err error
		if st.op == "open" {
			err = f.router.OpenView(f.view(st.view))
		} else {
			err = f.router.CloseCurrent()
		}
		if err != nil {
			t.Fatalf("step %d %s %s: %v", i, st.op, st.view, err)
		}
		f.assertSingleActive()
	}
	if !f.router.Stack().IsEmpty() {
		t.Errorf("stack should be empty, has %v", f.stackNames())
	}
}

func TestCloseViewTop(t *testing.T) {
	f := newFixture(t, Options{}, "home", "settings")
	f.open("home", "settings")
	f.takeLog()

	if err := f.router.CloseView(f.view("settings")); err != nil {
		t.Fatal(err)
	}
	assertLog(t, f.takeLog(), "settings:deinit", "home:refresh")
}

func TestCloseViewSplice(t *testing.T) {
	tests := []struct {
		name   string
		splice SpliceDeInit
		deinit string
	}{
		{"removed", DeInitRemoved, "b:deinit"},
		{"successor", DeInitSuccessor, "c:deinit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{SpliceDeInit: tt.splice}, "a", "b", "c")
			f.open("a", "b", "c")
			f.takeLog()

			if err := f.router.CloseView(f.view("b")); err != nil {
				t.Fatal(err)
			}
			assertLog(t, f.takeLog(), tt.deinit)

			if got := fmt.Sprint(f.stackNames()); got != "[c a]" {
				t.Errorf("stack = %s, want [c a]", got)
			}
			if f.router.Stack().Len() != 2 {
				t.Errorf("depth = %d, want 2", f.router.Stack().Len())
			}
			if !f.router.CheckIfTop(f.view("c")) {
				t.Error("top must not change on a splice")
			}
			f.assertSingleActive()

			// The splice relinked c onto a.
			if err := f.router.CloseCurrent(); err != nil {
				t.Fatal(err)
			}
			if !f.router.CheckIfTop(f.view("a")) {
				t.Error("a should be top after closing c")
			}
		})
	}
}

func TestCloseViewNotFound(t *testing.T) {
	f := newFixture(t, Options{}, "home", "settings", "other")
	f.open("home", "settings")

	err := f.router.CloseView(f.view("other"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if f.router.Stack().Len() != 2 {
		t.Error("stack must be untouched")
	}
}

func TestCloseToTargetFromHomeRestarts(t *testing.T) {
	f := newFixture(t, Options{}, "home")
	f.open("home")
	f.takeLog()

	if err := f.router.CloseToTarget(f.view("home")); err != nil {
		t.Fatal(err)
	}
	assertLog(t, f.takeLog(), "home:restart")
	if f.router.Stack().Len() != 1 {
		t.Errorf("no pops expected, depth = %d", f.router.Stack().Len())
	}
	if f.clears != 1 {
		t.Errorf("overlays cleared %d times, want 1", f.clears)
	}
}

func TestCloseToTargetUnwinds(t *testing.T) {
	f := newFixture(t, Options{}, "home", "a", "b", "c")
	f.open("home", "a", "b", "c")
	f.takeLog()

	if err := f.router.CloseToTarget(f.view("a")); err != nil {
		t.Fatal(err)
	}
	assertLog(t, f.takeLog(),
		"c:deinit", "b:refresh",
		"b:deinit", "a:refresh",
		"a:refresh",
	)
	if got := fmt.Sprint(f.stackNames()); got != "[a home]" {
		t.Errorf("stack = %s", got)
	}
	if f.clears != 1 {
		t.Errorf("overlays cleared %d times, want 1", f.clears)
	}
	f.assertSingleActive()
}

func TestCloseToTargetMissing(t *testing.T) {
	f := newFixture(t, Options{}, "home", "a", "b")
	f.open("home", "a")

	if err := f.router.CloseToTarget(f.view("b")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if f.router.Stack().Len() != 2 {
		t.Error("stack must be untouched")
	}
}

func TestEmitEmptyStack(t *testing.T) {
	r := New(Options{})
	if err := r.EmitSignal(signal.UsbConnected, nil); err != nil {
		t.Errorf("emit on empty stack: %v", err)
	}
}

func TestEmitDeliveredToTop(t *testing.T) {
	f := newFixture(t, Options{}, "home", "settings")
	f.open("home")
	if err := f.router.OpenViewWithParam(f.view("settings"), []byte("p")); err != nil {
		t.Fatal(err)
	}
	f.answer("settings", signal.ChangeLanguage, nil)
	f.answer("home", signal.ChangeLanguage, nil)
	f.takeLog()

	if err := f.router.EmitSignal(signal.ChangeLanguage, []byte("ru")); err != nil {
		t.Fatal(err)
	}
	assertLog(t, f.takeLog(), "settings:change_language")
}

func TestEmitFallsThrough(t *testing.T) {
	f := newFixture(t, Options{}, "home", "a", "b")
	f.open("home", "a", "b")
	f.answer("home", signal.UsbConnected, nil)
	f.takeLog()

	if err := f.router.EmitSignal(signal.UsbConnected, nil); err != nil {
		t.Fatal(err)
	}
	assertLog(t, f.takeLog(), "b:usb_connected", "a:usb_connected", "home:usb_connected")
}

func TestEmitNobodyWantsIt(t *testing.T) {
	f := newFixture(t, Options{}, "home", "a")
	f.open("home", "a")
	f.takeLog()

	if err := f.router.EmitSignal(signal.ScanResult, nil); err != nil {
		t.Errorf("unwanted signal should be dropped silently, got %v", err)
	}
	assertLog(t, f.takeLog(), "a:scan_result", "home:scan_result")
}

func TestEmitHandlerErrorStopsRouting(t *testing.T) {
	boom := errors.New("boom")
	f := newFixture(t, Options{}, "home", "a")
	f.open("home", "a")
	f.answer("a", signal.ScanResult, boom)
	f.answer("home", signal.ScanResult, nil)
	f.takeLog()

	err := f.router.EmitSignal(signal.ScanResult, nil)
	if !IsHandlerError(err) || !errors.Is(err, boom) {
		t.Fatalf("expected HandlerError wrapping boom, got %v", err)
	}
	var he *HandlerError
	if errors.As(err, &he) && he.View != f.view("a").ID {
		t.Errorf("HandlerError.View = %d", he.View)
	}
	assertLog(t, f.takeLog(), "a:scan_result")
}

func TestOpenSurfacesHandlerError(t *testing.T) {
	boom := errors.New("init failed")
	f := newFixture(t, Options{}, "home")
	f.answer("home", signal.Init, boom)

	err := f.router.OpenView(f.view("home"))
	if !IsHandlerError(err) || !errors.Is(err, boom) {
		t.Fatalf("expected HandlerError, got %v", err)
	}
	if !f.router.CheckIfTop(f.view("home")) {
		t.Error("push must complete despite the failure")
	}
	f.assertSingleActive()
}

func TestEmitHandlerClosesItself(t *testing.T) {
	f := newFixture(t, Options{}, "home", "a")
	f.open("home", "a")
	f.answer("home", signal.ScanCancelled, nil)

	rec := f.view("a").Handler.(*recorder)
	rec.onEvent = func(ev Event) {
		if ev.Signal == signal.ScanCancelled {
			_ = f.router.CloseCurrent()
		}
	}
	f.takeLog()

	if err := f.router.EmitSignal(signal.ScanCancelled, nil); err != nil {
		t.Fatal(err)
	}
	assertLog(t, f.takeLog(),
		"a:scan_cancelled", "a:deinit", "home:refresh", "home:scan_cancelled",
	)
}

func TestLockInterceptsRefresh(t *testing.T) {
	f := newFixture(t, Options{}, "home", "settings", "lock")
	f.open("home", "settings")
	f.answer("lock", signal.Refresh, ErrUnhandled)
	f.locked = true
	f.takeLog()

	if err := f.router.EmitSignal(signal.Refresh, nil); err != nil {
		t.Fatal(err)
	}
	assertLog(t, f.takeLog(), "lock:refresh")
}

func TestLockInterceptsSdCard(t *testing.T) {
	f := newFixture(t, Options{}, "home", "lock")
	f.open("home")
	f.answer("home", signal.SdCardChanged, nil)
	f.locked = true
	f.takeLog()

	if err := f.router.EmitSignal(signal.SdCardChanged, nil); err != nil {
		t.Fatal(err)
	}
	assertLog(t, f.takeLog(), "lock:sdcard_changed")
}

func TestLockVerifyPasswordFail(t *testing.T) {
	f := newFixture(t, Options{}, "home", "settings", "lock")
	f.open("home", "settings")
	f.answer("settings", signal.VerifyPasswordFail, nil)
	f.answer("lock", signal.VerifyPasswordFail, nil)
	f.locked = true
	f.takeLog()

	fromPin := signal.VerifyResult{Signal: signal.VerifyPin, ErrorCount: 1}.Encode()
	if err := f.router.EmitSignal(signal.VerifyPasswordFail, fromPin); err != nil {
		t.Fatal(err)
	}
	assertLog(t, f.takeLog(), "lock:verify_password_fail")

	fromSettings := signal.VerifyResult{Signal: signal.SetPin, ErrorCount: 1}.Encode()
	if err := f.router.EmitSignal(signal.VerifyPasswordFail, fromSettings); err != nil {
		t.Fatal(err)
	}
	assertLog(t, f.takeLog(), "settings:verify_password_fail")
}

func TestLockEmbeddedVerifyPin(t *testing.T) {
	f := newFixture(t, Options{}, "home", "lock")
	f.open("home")
	f.answer("home", signal.VerifyPasswordPass, nil)
	f.answer("lock", signal.VerifyPasswordPass, nil)
	f.takeLog()

	payload := signal.Tag(signal.VerifyPin)

	// Unlocked: normal routing.
	if err := f.router.EmitSignal(signal.VerifyPasswordPass, payload); err != nil {
		t.Fatal(err)
	}
	assertLog(t, f.takeLog(), "home:verify_password_pass")

	f.locked = true
	if err := f.router.EmitSignal(signal.VerifyPasswordPass, payload); err != nil {
		t.Fatal(err)
	}
	assertLog(t, f.takeLog(), "lock:verify_password_pass")
}

func TestLockRedirectsLifecycleRefresh(t *testing.T) {
	f := newFixture(t, Options{}, "home", "settings", "lock")
	f.open("home")
	f.locked = true
	f.takeLog()

	f.open("settings")
	assertLog(t, f.takeLog(), "home:deactivate", "settings:init", "lock:refresh")
}

func TestLockWithoutLockViewIsIgnored(t *testing.T) {
	var log []string
	home := NewView(0, &recorder{log: &log, name: "home"})
	r := New(Options{Hooks: Hooks{IsLockScreenTop: func() bool { return true }}})
	if err := r.OpenView(home); err != nil {
		t.Fatal(err)
	}
	log = nil

	if err := r.EmitSignal(signal.Refresh, nil); err != nil {
		t.Fatal(err)
	}
	assertLog(t, log, "home:refresh")
}

func TestRoutingOverflowResetsToHome(t *testing.T) {
	f := newFixture(t, Options{}, "home", "a", "b")
	f.open("home", "a", "b")

	// Corrupt the chain: the bottom frame points back at the top.
	s := f.router.Stack()
	bottom := s.top
	for s.frames[bottom].prev != noFrame {
		bottom = s.frames[bottom].prev
	}
	s.frames[bottom].prev = s.top
	f.takeLog()

	err := f.router.EmitSignal(signal.ScanResult, nil)
	if !errors.Is(err, ErrRoutingOverflow) {
		t.Fatalf("expected ErrRoutingOverflow, got %v", err)
	}
	if got := fmt.Sprint(f.stackNames()); got != "[home]" {
		t.Errorf("stack after reset = %s, want [home]", got)
	}
	f.assertSingleActive()
}

func TestDiagnosticsRingWraps(t *testing.T) {
	names := make([]string, 21)
	for i := range names {
		names[i] = fmt.Sprintf("v%02d", i)
	}
	f := newFixture(t, Options{}, names...)
	f.open(names...)

	s := f.router.Stack()
	if s.Len() != 21 {
		t.Fatalf("depth = %d, want 21", s.Len())
	}
	views := s.Views()
	for i, v := range views {
		want := f.view(names[len(names)-1-i])
		if v != want {
			t.Fatalf("frame %d = %s, want %s", i, f.router.Name(v.ID), f.router.Name(want.ID))
		}
	}
	f.assertSingleActive()

	d := f.router.Diagnostics()
	if d.Cap() != 20 || d.Len() != 20 || d.Total() != 21 {
		t.Fatalf("diagnostics cap=%d len=%d total=%d", d.Cap(), d.Len(), d.Total())
	}
	entries := d.Entries()
	if entries[0].Name != "v01" || entries[19].Name != "v20" {
		t.Errorf("ring holds %s..%s, want v01..v20", entries[0].Name, entries[19].Name)
	}
	if entries[19].Previous != f.view("v19").ID || entries[19].Depth != 21 {
		t.Errorf("last snapshot = %+v", entries[19])
	}

	for i := 0; i < 21; i++ {
		if err := f.router.CloseCurrent(); err != nil {
			t.Fatalf("close %d: %v", i, err)
		}
		f.assertSingleActive()
	}
	if !s.IsEmpty() {
		t.Error("stack should be empty")
	}
}

func TestTeardown(t *testing.T) {
	f := newFixture(t, Options{}, "home", "a")
	f.open("home", "a")
	f.takeLog()

	f.router.Teardown()
	assertLog(t, f.takeLog(), "a:deinit", "home:deinit")
	if !f.router.Stack().IsEmpty() || f.router.Diagnostics().Len() != 0 {
		t.Error("teardown should leave an empty router")
	}
	f.assertSingleActive()

	// Reusable after teardown.
	f.open("home")
	f.assertSingleActive()
}

func TestIndependentRouters(t *testing.T) {
	f1 := newFixture(t, Options{}, "home")
	f2 := newFixture(t, Options{}, "home")
	f1.open("home")

	if !f2.router.Stack().IsEmpty() {
		t.Error("routers must not share state")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want Result
	}{
		{nil, Handled},
		{ErrUnhandled, Unhandled},
		{fmt.Errorf("wrapped: %w", ErrUnhandled), Unhandled},
		{errors.New("x"), Failed},
	}
	for _, tt := range tests {
		if got := Classify(tt.err); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func TestNewEventKinds(t *testing.T) {
	tests := []struct {
		id   signal.ID
		want Kind
	}{
		{signal.Init, KindInit},
		{signal.Refresh, KindRefresh},
		{signal.Restart, KindRestart},
		{signal.DeInit, KindDeInit},
		{signal.Deactivate, KindDeactivate},
		{signal.Timer, KindTimer},
		{signal.ChangeLanguage, KindCustom},
	}
	for _, tt := range tests {
		if got := NewEvent(tt.id, nil).Kind; got != tt.want {
			t.Errorf("NewEvent(%s).Kind = %s, want %s", tt.id, got, tt.want)
		}
	}
}
