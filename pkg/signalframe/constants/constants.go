// Package constants defines shared constants, types, and configuration values
// used throughout signalframe.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// LogLevelEnvVar overrides the configured log level.
const LogLevelEnvVar = "SIGNALFRAME_LOG_LEVEL"

// ConfigPathEnvVar names the TOML config file used when no path is given.
const ConfigPathEnvVar = "SIGNALFRAME_CONFIG"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Router and dispatcher defaults.
const (
	DiagnosticsSlots   = 20          // Pushes kept by the diagnostics ring
	RoutingSlack       = 10          // Extra routing steps allowed beyond the stack depth
	TimerPeriod        = time.Second // Nominal period of the Timer signal
	DefaultQueueLength = 16          // Dispatcher message queue capacity
	DefaultLanguage    = "en"
	DefaultInputDevice = "/dev/input/event1"
)

// VirtualButton represents an abstract input button, mapped from physical hardware.
// This abstraction lets the same signal bindings work across keypads.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonPower
)

var buttonNames = [...]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
	VirtualButtonPower:      "Power",
}

// GetName returns the name used for the button in config files.
func (vb VirtualButton) GetName() string {
	if vb >= 0 && int(vb) < len(buttonNames) {
		return buttonNames[vb]
	}
	return "Unknown"
}

// ButtonByName resolves a button from its GetName value, case sensitive.
func ButtonByName(name string) (VirtualButton, bool) {
	for vb := VirtualButtonUp; vb <= VirtualButtonPower; vb++ {
		if vb.GetName() == name {
			return vb, true
		}
	}
	return VirtualButtonUnassigned, false
}
