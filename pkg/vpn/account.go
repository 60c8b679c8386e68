package vpn

import (
	"fmt"
	"time"
)

// Device is a device registered on an account.
type Device struct {
	ID      string
	Name    string
	Created time.Time
}

// DeviceStateKind is the login state of this device.
type DeviceStateKind int

const (
	DeviceLoggedIn DeviceStateKind = iota + 1
	DeviceLoggedOut
	DeviceRevoked
)

func (k DeviceStateKind) String() string {
	switch k {
	case DeviceLoggedIn:
		return "logged in"
	case DeviceLoggedOut:
		return "logged out"
	case DeviceRevoked:
		return "revoked"
	default:
		return "unknown"
	}
}

// DeviceState is the login state of this device. AccountNumber and Device are
// only set for DeviceLoggedIn.
type DeviceState struct {
	Kind          DeviceStateKind
	AccountNumber string
	Device        *Device
}

// DeviceEventCause is why the device state changed.
type DeviceEventCause int

const (
	DeviceEventLoggedIn DeviceEventCause = iota + 1
	DeviceEventLoggedOut
	DeviceEventRevoked
	DeviceEventUpdated
	DeviceEventRotatedKey
)

type DeviceEvent struct {
	Cause DeviceEventCause
	State DeviceState
}

// DeviceRemoval identifies a device to remove.
type DeviceRemoval struct {
	AccountNumber string
	DeviceID      string
}

// AccountData is account information from the API.
type AccountData struct {
	ID     string
	Expiry time.Time
}

// AccountErrorKind classifies account call failures.
type AccountErrorKind int

const (
	AccountInvalid AccountErrorKind = iota + 1
	AccountTooManyDevices
	AccountListDevices
	AccountCommunication
)

func (k AccountErrorKind) String() string {
	switch k {
	case AccountInvalid:
		return "invalid-account"
	case AccountTooManyDevices:
		return "too-many-devices"
	case AccountListDevices:
		return "list-devices"
	case AccountCommunication:
		return "communication"
	default:
		return "unknown"
	}
}

// AccountError is a classified account call failure.
type AccountError struct {
	Kind AccountErrorKind
	Err  error
}

func (e *AccountError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *AccountError) Unwrap() error { return e.Err }

// AccountDataResult is the outcome of an account data lookup. Exactly one of
// Data and Err is set.
type AccountDataResult struct {
	Data *AccountData
	Err  *AccountError
}

// VoucherResultKind is the outcome of a voucher submission.
type VoucherResultKind int

const (
	VoucherSuccess VoucherResultKind = iota + 1
	VoucherInvalid
	VoucherAlreadyUsed
	VoucherError
)

func (k VoucherResultKind) String() string {
	switch k {
	case VoucherSuccess:
		return "success"
	case VoucherInvalid:
		return "invalid"
	case VoucherAlreadyUsed:
		return "already-used"
	case VoucherError:
		return "error"
	default:
		return "unknown"
	}
}

// VoucherResult is the outcome of a voucher submission. NewExpiry and
// SecondsAdded are set for VoucherSuccess.
type VoucherResult struct {
	Kind         VoucherResultKind
	NewExpiry    time.Time
	SecondsAdded uint64
}

// AppVersionInfo reports whether the running app version is supported.
type AppVersionInfo struct {
	Supported        bool
	SuggestedUpgrade *SuggestedUpgrade
}

type SuggestedUpgrade struct {
	Version   string
	Changelog string
	Beta      bool
}
