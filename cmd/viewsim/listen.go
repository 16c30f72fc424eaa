package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/input"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/signal"
)

var (
	listenDevice string

	listenCmd = &cobra.Command{
		Use:   "listen",
		Short: "Print the signals the input device produces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			if listenDevice != "" {
				cfg.Input.Device = listenDevice
			}

			mapper, err := input.NewMapper(cfg.Input.Buttons)
			if err != nil {
				return err
			}
			rd, err := input.Open(cfg.Input.Device, false, mapper, printSink{})
			if err != nil {
				return err
			}
			defer rd.Close()

			ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			fmt.Printf("listening on %s, interrupt to stop\n", cfg.Input.Device)
			if err := rd.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
)

func init() {
	listenCmd.Flags().StringVarP(&listenDevice, "device", "d", "", "evdev device (default: config input.device)")
}

type printSink struct{}

func (printSink) EmitSignal(id signal.ID, payload []byte) error {
	fmt.Printf("%-28s %d\n", id, uint16(id))
	return nil
}
