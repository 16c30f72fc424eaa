package signalframe

import (
	"context"
	"errors"
	"fmt"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/dispatch"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/input"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/internal"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/locale"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/router"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/screens"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/views"
)

// Runtime is an assembled UI: screens registered, router configured with the
// Home and Lock views, and a dispatcher ready to run.
type Runtime struct {
	Config     Config
	Locale     *locale.Localizer
	Screens    *screens.Set
	Router     *router.Router
	Dispatcher *dispatch.Dispatcher
}

// Options adjusts a Runtime beyond its Config.
type Options struct {
	Widgets screens.Widgets // Defaults to a logging implementation
}

// New assembles a Runtime from cfg.
func New(cfg Config, opts Options) (*Runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, NewInfrastructureError("config", err)
	}

	loc, err := locale.New(cfg.Language)
	if err != nil {
		return nil, NewInfrastructureError("load_locale", err)
	}

	log := internal.GetInternalLogger()
	set := screens.New(screens.Options{
		Widgets:   opts.Widgets,
		Localizer: loc,
		Logger:    log,
	})

	splice := router.DeInitRemoved
	if cfg.SpliceDeInit == internal.SpliceSuccessor {
		splice = router.DeInitSuccessor
	}
	r := router.New(router.Options{
		Home:             set.View(views.Home),
		Lock:             set.View(views.Lock),
		Hooks:            set.Hooks(),
		Logger:           log,
		DiagnosticsSlots: cfg.DiagnosticsSlots,
		RoutingSlack:     cfg.RoutingSlack,
		StrictParamOpen:  cfg.StrictParamOpen,
		SpliceDeInit:     splice,
	})
	set.Bind(r)

	d := dispatch.New(r, dispatch.Options{
		QueueLength: cfg.QueueLength,
		TimerPeriod: cfg.TimerPeriod(),
		Logger:      log,
	})

	return &Runtime{
		Config:     cfg,
		Locale:     loc,
		Screens:    set,
		Router:     r,
		Dispatcher: d,
	}, nil
}

// Boot queues the opening of the Init view.
func (rt *Runtime) Boot() error {
	return rt.Dispatcher.OpenView(rt.Screens.View(views.Init))
}

// OpenInput opens the configured input device, feeding the dispatcher.
func (rt *Runtime) OpenInput() (*input.Reader, error) {
	mapper, err := input.NewMapper(rt.Config.Input.Buttons)
	if err != nil {
		return nil, NewInfrastructureError("input_bindings", err)
	}
	rd, err := input.Open(rt.Config.Input.Device, rt.Config.Input.Grab, mapper, rt.Dispatcher)
	if err != nil {
		return nil, NewInfrastructureError("open_input", err)
	}
	return rd, nil
}

// Run runs the dispatcher until ctx is done. With withInput set the input
// device is read too; if it fails the runtime stops. Views still open are
// torn down before Run returns.
func (rt *Runtime) Run(ctx context.Context, withInput bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inputErr := make(chan error, 1)
	if withInput {
		rd, err := rt.OpenInput()
		if err != nil {
			return err
		}
		defer rd.Close()
		go func() {
			err := rd.Run(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				cancel()
			}
			inputErr <- err
		}()
	}

	err := rt.Dispatcher.Run(ctx)
	rt.Router.Teardown()

	if withInput {
		if ierr := <-inputErr; ierr != nil && !errors.Is(ierr, context.Canceled) {
			return NewInfrastructureError("read_input", ierr)
		}
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("signalframe: dispatcher: %w", err)
	}
	return nil
}
