// Package signalframe is the view-stack and signal-routing runtime of a
// hardware wallet UI.
//
// The router package owns the view stack and delivers signals to exactly one
// view. This package wires it to the localized screens and to the dispatcher
// that serializes producers onto the UI goroutine.
package signalframe

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/constants"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/internal"
)

// Config is the runtime configuration. See LoadConfig.
type Config = internal.Config

// InputConfig describes the physical input device.
type InputConfig = internal.InputConfig

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return internal.DefaultConfig()
}

// LoadConfig reads a TOML config file over the defaults. An empty path falls
// back to the SIGNALFRAME_CONFIG environment variable.
func LoadConfig(path string) (Config, error) {
	cfg, err := internal.LoadConfig(path)
	if err != nil {
		return cfg, NewInfrastructureError("load_config", err)
	}
	return cfg, nil
}

// Init configures logging from cfg. Call it before New so the log file is
// in place before the first logger is requested.
func Init(cfg Config) {
	if cfg.LogPath != "" {
		internal.SetLogPath(cfg.LogPath)
	}

	level := internal.ParseLevel(cfg.LogLevel)
	internal.SetLogLevel(level)
	if constants.IsDevMode() || os.Getenv(constants.LogLevelEnvVar) != "" {
		internal.SetInternalLogLevel(level)
	} else {
		internal.SetInternalLogLevel(max(level, slog.LevelWarn))
	}
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
