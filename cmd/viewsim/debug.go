package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/router"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/scenario"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/views"
)

var (
	debugStack []string

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Open or close views by name or number and print the stack",
	}

	debugOpenCmd = &cobra.Command{
		Use:   "open <view>...",
		Short: "Open each view in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return debugRun(append(debugStack, args...), nil)
		},
	}

	debugCloseCmd = &cobra.Command{
		Use:   "close <view>",
		Short: "Close a view from the stack built with --stack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return debugRun(debugStack, args)
		},
	}
)

func init() {
	debugCmd.PersistentFlags().StringSliceVarP(&debugStack, "stack", "s", []string{"home"}, "views to open first, bottom to top")
	debugCmd.AddCommand(debugOpenCmd, debugCloseCmd)
}

// debugRun applies the operations directly on the router; nothing else is
// running, so the dispatcher is not needed.
func debugRun(open, closing []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	rt, err := signalframe.New(cfg, signalframe.Options{})
	if err != nil {
		return err
	}
	r := rt.Router

	lookup := func(name string) (*router.View, error) {
		id, ok := views.ParseID(name)
		if !ok {
			return nil, fmt.Errorf("unknown view %q", name)
		}
		return rt.Screens.View(id), nil
	}

	for _, name := range open {
		v, err := lookup(name)
		if err != nil {
			return err
		}
		if err := r.OpenView(v); err != nil {
			fmt.Fprintf(os.Stderr, "open %s: %v\n", name, err)
		}
	}
	for _, name := range closing {
		v, err := lookup(name)
		if err != nil {
			return err
		}
		if err := r.CloseView(v); err != nil {
			fmt.Fprintf(os.Stderr, "close %s: %v\n", name, err)
		}
	}

	scenario.Dump(os.Stdout, r)
	r.Teardown()
	return nil
}
