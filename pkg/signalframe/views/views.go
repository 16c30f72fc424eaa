// Package views holds the view registry: the identifiers of every screen the
// device can show, their debug names, and the singleton View for each.
package views

import (
	"sort"
	"strconv"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/router"
)

const (
	Init router.ViewID = iota
	Lock
	Home
	Setup
	CreateWallet
	CreateShare
	ImportShare
	SinglePhrase
	ImportSinglePhrase
	ConnectWallet
	Setting
	QRCode
	Passphrase
	BitcoinReceive
	EthereumReceive
	StandardReceive
	ExportPubkey
	ForgetPasscode
	LockDevice
	FirmwareUpdate
	WebAuth
	Purpose
	SystemSetting
	WebAuthResult
	About
	AboutKeystone
	AboutTerms
	AboutInfo
	WipeDevice
	WalletTutorial
	SelfDestruct
	Inactive
	Display
	Tutorial
	Connection
	MultiAccountsReceive
	KeyDerivationRequest
	Scan
	TransactionDetail
	TransactionSignature
	USBTransport
	DiceRolls
	DevicePubKey
	DeviceUpdateSuccess
	Total
)

var names = [...]string{
	Init:                 "init",
	Lock:                 "lock",
	Home:                 "home",
	Setup:                "setup",
	CreateWallet:         "create_wallet",
	CreateShare:          "create_share",
	ImportShare:          "import_share",
	SinglePhrase:         "single_phrase",
	ImportSinglePhrase:   "import_single_phrase",
	ConnectWallet:        "connect_wallet",
	Setting:              "setting",
	QRCode:               "qrcode",
	Passphrase:           "passphrase",
	BitcoinReceive:       "bitcoin_receive",
	EthereumReceive:      "ethereum_receive",
	StandardReceive:      "standard_receive",
	ExportPubkey:         "export_pubkey",
	ForgetPasscode:       "forget_passcode",
	LockDevice:           "lock_device",
	FirmwareUpdate:       "firmware_update",
	WebAuth:              "web_auth",
	Purpose:              "purpose",
	SystemSetting:        "system_setting",
	WebAuthResult:        "web_auth_result",
	About:                "about",
	AboutKeystone:        "about_keystone",
	AboutTerms:           "about_terms",
	AboutInfo:            "about_info",
	WipeDevice:           "wipe_device",
	WalletTutorial:       "wallet_tutorial",
	SelfDestruct:         "self_destruct",
	Inactive:             "inactive",
	Display:              "display",
	Tutorial:             "tutorial",
	Connection:           "connection",
	MultiAccountsReceive: "multi_accounts_receive",
	KeyDerivationRequest: "key_derivation_request",
	Scan:                 "scan",
	TransactionDetail:    "transaction_detail",
	TransactionSignature: "transaction_signature",
	USBTransport:         "usb_transport",
	DiceRolls:            "dice_rolls",
	DevicePubKey:         "device_pub_key",
	DeviceUpdateSuccess:  "device_update_success",
}

// Name returns the debug name of a view id.
func Name(id router.ViewID) string {
	if id >= 0 && int(id) < len(names) {
		return names[id]
	}
	if id == router.InvalidView {
		return "none"
	}
	return "unknown(" + strconv.Itoa(int(id)) + ")"
}

// ParseID resolves a view by debug name or by number.
func ParseID(s string) (router.ViewID, bool) {
	for i, n := range names {
		if n == s {
			return router.ViewID(i), true
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= int(Total) {
		return router.InvalidView, false
	}
	return router.ViewID(n), true
}

// Flags are static properties of a registered view.
type Flags uint8

const (
	// FlagReentrant views may be opened with a parameter while already
	// active, even on a router built with StrictParamOpen.
	FlagReentrant Flags = 1 << iota
)

type entry struct {
	view  *router.View
	flags Flags
}

// Registry maps view ids to their singleton views.
type Registry struct {
	entries map[router.ViewID]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[router.ViewID]entry)}
}

// Register adds a view. Registering an id twice replaces the earlier view.
func (r *Registry) Register(id router.ViewID, h router.Handler, flags Flags) *Registry {
	r.entries[id] = entry{view: router.NewView(id, h), flags: flags}
	return r
}

// Lookup returns the view registered for id.
func (r *Registry) Lookup(id router.ViewID) (*router.View, bool) {
	e, ok := r.entries[id]
	return e.view, ok
}

// View returns the view registered for id, or nil.
func (r *Registry) View(id router.ViewID) *router.View {
	return r.entries[id].view
}

// Flags returns the flags of a registered view.
func (r *Registry) Flags(id router.ViewID) Flags {
	return r.entries[id].flags
}

// Reentrant reports whether id is registered with FlagReentrant.
func (r *Registry) Reentrant(id router.ViewID) bool {
	return r.Flags(id)&FlagReentrant != 0
}

// IDs returns every registered id in ascending order.
func (r *Registry) IDs() []router.ViewID {
	ids := make([]router.ViewID, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of registered views.
func (r *Registry) Len() int {
	return len(r.entries)
}
