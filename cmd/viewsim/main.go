// Command viewsim drives the signalframe view stack from a terminal, replaying
// navigation scenarios against the real screens.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe"
)

var (
	configPath string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:           "viewsim",
		Short:         "Simulate the hardware wallet view stack",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file (default: $SIGNALFRAME_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")
	rootCmd.AddCommand(runCmd, viewsCmd, debugCmd, listenCmd)
}

// setup loads the config and initializes logging.
func setup() (signalframe.Config, error) {
	cfg, err := signalframe.LoadConfig(configPath)
	if err != nil {
		return cfg, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	signalframe.Init(cfg)
	return cfg, nil
}

func main() {
	err := rootCmd.Execute()
	signalframe.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "viewsim:", err)
		os.Exit(1)
	}
}
