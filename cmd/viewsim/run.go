package main

import (
	"context"
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/router"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/scenario"
)

var (
	runOpts struct {
		input bool
		boot  bool
	}

	runCmd = &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "Run the UI, optionally replaying a scenario",
		Long: "Start the dispatcher and replay the scenario's steps on it. With --input the " +
			"evdev device from the config feeds button signals until interrupted.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sc *scenario.Scenario
			if len(args) == 1 {
				var err error
				if sc, err = scenario.Load(args[0]); err != nil {
					return err
				}
			}
			return run(cmd.Context(), sc)
		},
	}
)

func init() {
	runCmd.Flags().BoolVarP(&runOpts.input, "input", "i", false, "read buttons from the configured input device")
	runCmd.Flags().BoolVar(&runOpts.boot, "boot", false, "open the init view before the scenario")
}

func run(parent context.Context, sc *scenario.Scenario) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	rt, err := signalframe.New(cfg, signalframe.Options{})
	if err != nil {
		return err
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := ossignal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Calls are abandoned if the runtime stops on its own, e.g. when the
	// input device cannot be opened.
	calls, cancelCalls := context.WithCancel(ctx)
	defer cancelCalls()

	var runErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		runErr = rt.Run(ctx, runOpts.input)
		cancelCalls()
	}()
	finish := func(err error) error {
		stop()
		<-done
		if err == nil || runErr != nil {
			return runErr
		}
		return err
	}

	if runOpts.boot || sc == nil {
		if err := rt.Boot(); err != nil {
			return finish(err)
		}
	}

	if sc != nil {
		runner := &scenario.Runner{Screens: rt.Screens, Out: os.Stdout}
		for i, st := range sc.Steps {
			err := rt.Dispatcher.Call(calls, func(r *router.Router) error {
				return runner.Step(r, st)
			})
			if err != nil {
				return finish(&scenario.StepError{Index: i, Op: st.Op, Err: err})
			}
		}
		fmt.Printf("%s: %d steps passed\n", sc.Name, len(sc.Steps))
	}

	if runOpts.input {
		<-done
		return runErr
	}
	err = rt.Dispatcher.Call(calls, func(r *router.Router) error {
		scenario.Dump(os.Stdout, r)
		return nil
	})
	return finish(err)
}
