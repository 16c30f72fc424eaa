package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/constants"
)

// InputConfig describes the physical input device.
type InputConfig struct {
	Device string `toml:"device"`
	Grab   bool   `toml:"grab"`
	// Buttons maps virtual button names to the signal they emit.
	Buttons map[string]string `toml:"buttons"`
}

// Config is the runtime configuration, read from TOML.
type Config struct {
	LogLevel         string      `toml:"log_level"`
	LogPath          string      `toml:"log_path"`
	Language         string      `toml:"language"`
	QueueLength      int         `toml:"queue_length"`
	TimerPeriodMS    int         `toml:"timer_period_ms"`
	DiagnosticsSlots int         `toml:"diagnostics_slots"`
	RoutingSlack     int         `toml:"routing_slack"`
	StrictParamOpen  bool        `toml:"strict_param_open"`
	SpliceDeInit     string      `toml:"splice_deinit"` // "removed" or "successor"
	Input            InputConfig `toml:"input"`
}

// Splice values.
const (
	SpliceRemoved   = "removed"
	SpliceSuccessor = "successor"
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel:         "warn",
		Language:         constants.DefaultLanguage,
		QueueLength:      constants.DefaultQueueLength,
		TimerPeriodMS:    int(constants.TimerPeriod / time.Millisecond),
		DiagnosticsSlots: constants.DiagnosticsSlots,
		RoutingSlack:     constants.RoutingSlack,
		SpliceDeInit:     SpliceRemoved,
		Input: InputConfig{
			Device: constants.DefaultInputDevice,
			Buttons: map[string]string{
				"A":     "scan_result",
				"B":     "lock_device",
				"Menu":  "usb_transport_request",
				"Power": "lock_device",
			},
		},
	}
}

// LoadConfig reads path over the defaults. An empty path falls back to the
// file named by the config environment variable, then to the defaults alone.
// The log level environment variable overrides the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(constants.ConfigPathEnvVar)
	}
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			GetInternalLogger().Warn("unknown config keys", "path", path, "keys", strings.Join(keys, ","))
		}
	}

	if lvl := os.Getenv(constants.LogLevelEnvVar); lvl != "" {
		cfg.LogLevel = lvl
	}

	return cfg, cfg.Validate()
}

// Validate reports settings that cannot be applied.
func (c Config) Validate() error {
	var errs []error
	if c.QueueLength <= 0 {
		errs = append(errs, fmt.Errorf("queue_length must be positive, got %d", c.QueueLength))
	}
	if c.TimerPeriodMS <= 0 {
		errs = append(errs, fmt.Errorf("timer_period_ms must be positive, got %d", c.TimerPeriodMS))
	}
	if c.RoutingSlack <= 0 {
		errs = append(errs, fmt.Errorf("routing_slack must be positive, got %d", c.RoutingSlack))
	}
	switch c.SpliceDeInit {
	case "", SpliceRemoved, SpliceSuccessor:
	default:
		errs = append(errs, fmt.Errorf("splice_deinit must be %q or %q, got %q", SpliceRemoved, SpliceSuccessor, c.SpliceDeInit))
	}
	return errors.Join(errs...)
}

// TimerPeriod returns the timer signal period.
func (c Config) TimerPeriod() time.Duration {
	return time.Duration(c.TimerPeriodMS) * time.Millisecond
}
