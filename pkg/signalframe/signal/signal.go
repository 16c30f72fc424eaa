// Package signal defines the numeric signal namespace shared by every producer
// and every view handler.
//
// Signals are small integers partitioned into contiguous bands, one per
// subsystem. Each band starts 50 after the terminator of the band before it, so
// a subsystem that needs new signals claims a fresh band rather than reusing
// values from a neighbour.
package signal

import (
	"fmt"
	"strconv"
)

// ID is a signal identifier.
type ID uint16

// Lifecycle signals delivered by the view stack itself. They can also be
// emitted like any other signal, e.g. a Refresh after the lock screen closes.
const (
	LifecycleBase ID = iota
	Init
	DeInit
	Refresh
	Restart
	Deactivate
	Timer
	LifecycleEnd
)

const (
	InitBase ID = 100 + iota
	InitGetAccountInfo
	SdCardChanged
	UsbStateChanged
	BatteryChanged
	LowPower
	InitEnd
)

const (
	LockBase ID = InitEnd + 50 + iota
	VerifyPin
	ScreenOnVerify
	ScreenGoHomePass
	FingerprintResult
	LockDevice
	LockEnd
)

const (
	SetupBase ID = LockEnd + 50 + iota
	SetupViewStart
	SetupEntropyDone
	SetupEnd
)

const (
	CreateWalletBase ID = SetupEnd + 50 + iota
	UpdateMnemonic
	WriteSePass
	WriteSeFail
	CreateWalletEnd
)

const (
	ScanBase ID = CreateWalletEnd + 50 + iota
	ScanResult
	ScanCancelled
	ScanEnd
)

const (
	VerifyBase ID = ScanEnd + 50 + iota
	VerifyPasswordPass
	VerifyPasswordFail
	VerifyEnd
)

const (
	FirmwareUpdateBase ID = VerifyEnd + 50 + iota
	FirmwareUpdateProgress
	FirmwareUpdateDone
	FirmwareUpdateEnd
)

const (
	SettingBase ID = FirmwareUpdateEnd + 50 + iota
	ChangeLanguage
	SetPin
	RepeatPin
	ChangePasswordPass
	ChangePasswordFail
	SettingEnd
)

const (
	UsbBase ID = SettingEnd + 50 + iota
	UsbConnected
	UsbDisconnected
	UsbTransportRequest
	UsbEnd
)

// Band is a contiguous range of signal ids owned by one subsystem.
// Base and End are reserved markers; usable ids lie strictly between them.
type Band struct {
	Name string
	Base ID
	End  ID
}

// Contains reports whether id lies inside the band, markers included.
func (b Band) Contains(id ID) bool {
	return id >= b.Base && id <= b.End
}

// Bands lists every claimed band in ascending order.
var Bands = []Band{
	{Name: "lifecycle", Base: LifecycleBase, End: LifecycleEnd},
	{Name: "init", Base: InitBase, End: InitEnd},
	{Name: "lock", Base: LockBase, End: LockEnd},
	{Name: "setup", Base: SetupBase, End: SetupEnd},
	{Name: "create_wallet", Base: CreateWalletBase, End: CreateWalletEnd},
	{Name: "scan", Base: ScanBase, End: ScanEnd},
	{Name: "verify", Base: VerifyBase, End: VerifyEnd},
	{Name: "firmware_update", Base: FirmwareUpdateBase, End: FirmwareUpdateEnd},
	{Name: "setting", Base: SettingBase, End: SettingEnd},
	{Name: "usb", Base: UsbBase, End: UsbEnd},
}

// BandOf returns the band id belongs to.
func BandOf(id ID) (Band, bool) {
	for _, b := range Bands {
		if b.Contains(id) {
			return b, true
		}
	}
	return Band{}, false
}

// IsLifecycle reports whether id is one of the stack lifecycle signals.
func IsLifecycle(id ID) bool {
	return id > LifecycleBase && id < LifecycleEnd
}

var names = map[ID]string{
	Init:                   "init",
	DeInit:                 "deinit",
	Refresh:                "refresh",
	Restart:                "restart",
	Deactivate:             "deactivate",
	Timer:                  "timer",
	InitGetAccountInfo:     "init_get_account_info",
	SdCardChanged:          "sdcard_changed",
	UsbStateChanged:        "usb_state_changed",
	BatteryChanged:         "battery_changed",
	LowPower:               "low_power",
	VerifyPin:              "verify_pin",
	ScreenOnVerify:         "screen_on_verify",
	ScreenGoHomePass:       "screen_go_home_pass",
	FingerprintResult:      "fingerprint_result",
	LockDevice:             "lock_device",
	SetupViewStart:         "setup_view_start",
	SetupEntropyDone:       "setup_entropy_done",
	UpdateMnemonic:         "update_mnemonic",
	WriteSePass:            "write_se_pass",
	WriteSeFail:            "write_se_fail",
	ScanResult:             "scan_result",
	ScanCancelled:          "scan_cancelled",
	VerifyPasswordPass:     "verify_password_pass",
	VerifyPasswordFail:     "verify_password_fail",
	FirmwareUpdateProgress: "firmware_update_progress",
	FirmwareUpdateDone:     "firmware_update_done",
	ChangeLanguage:         "change_language",
	SetPin:                 "set_pin",
	RepeatPin:              "repeat_pin",
	ChangePasswordPass:     "change_password_pass",
	ChangePasswordFail:     "change_password_fail",
	UsbConnected:           "usb_connected",
	UsbDisconnected:        "usb_disconnected",
	UsbTransportRequest:    "usb_transport_request",
}

func (id ID) String() string {
	if n, ok := names[id]; ok {
		return n
	}
	return fmt.Sprintf("signal(%d)", uint16(id))
}

// Lookup resolves a signal by its name as printed by String.
// Plain decimal numbers are accepted as well.
func Lookup(name string) (ID, bool) {
	for id, n := range names {
		if n == name {
			return id, true
		}
	}
	v, err := strconv.ParseUint(name, 10, 16)
	if err != nil {
		return 0, false
	}
	return ID(v), true
}
