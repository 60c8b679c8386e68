package vpn

import "time"

// DaemonEvent is one message of the daemon event feed.
type DaemonEvent interface {
	Accept(v DaemonEventVisitor)
	// Kind is the short event name used in logs and metrics.
	Kind() string
}

// DaemonEventVisitor handles every daemon event variant.
type DaemonEventVisitor interface {
	TunnelState(TunnelStateEvent)
	Settings(SettingsEvent)
	RelayList(RelayListEvent)
	VersionInfo(VersionInfoEvent)
	Device(DeviceStateEvent)
	DeviceRemoval(DeviceRemovalEvent)
	NewAccessMethod(NewAccessMethodEvent)
}

type TunnelStateEvent struct{ State TunnelState }

type SettingsEvent struct{ Settings Settings }

type RelayListEvent struct{ RelayList RelayList }

type VersionInfoEvent struct{ Info AppVersionInfo }

type DeviceStateEvent struct{ Event DeviceEvent }

type DeviceRemovalEvent struct {
	AccountNumber string
	Devices       []Device
}

type NewAccessMethodEvent struct{ Setting AccessMethodSetting }

func (e TunnelStateEvent) Accept(v DaemonEventVisitor)     { v.TunnelState(e) }
func (e SettingsEvent) Accept(v DaemonEventVisitor)        { v.Settings(e) }
func (e RelayListEvent) Accept(v DaemonEventVisitor)       { v.RelayList(e) }
func (e VersionInfoEvent) Accept(v DaemonEventVisitor)     { v.VersionInfo(e) }
func (e DeviceStateEvent) Accept(v DaemonEventVisitor)     { v.Device(e) }
func (e DeviceRemovalEvent) Accept(v DaemonEventVisitor)   { v.DeviceRemoval(e) }
func (e NewAccessMethodEvent) Accept(v DaemonEventVisitor) { v.NewAccessMethod(e) }

func (TunnelStateEvent) Kind() string     { return "tunnel_state" }
func (SettingsEvent) Kind() string        { return "settings" }
func (RelayListEvent) Kind() string       { return "relay_list" }
func (VersionInfoEvent) Kind() string     { return "version_info" }
func (DeviceStateEvent) Kind() string     { return "device" }
func (DeviceRemovalEvent) Kind() string   { return "device_removal" }
func (NewAccessMethodEvent) Kind() string { return "new_access_method" }

// AppUpgradeEvent is one message of the app upgrade feed.
type AppUpgradeEvent interface {
	Accept(v AppUpgradeEventVisitor)
	Kind() string
}

// AppUpgradeEventVisitor handles every upgrade event variant.
type AppUpgradeEventVisitor interface {
	DownloadStarting(UpgradeDownloadStarting)
	DownloadProgress(UpgradeDownloadProgress)
	Aborted(UpgradeAborted)
	VerifyingInstaller(UpgradeVerifyingInstaller)
	VerifiedInstaller(UpgradeVerifiedInstaller)
	Error(UpgradeError)
}

type UpgradeDownloadStarting struct{}

type UpgradeDownloadProgress struct {
	Server   string
	Progress uint32
	// TimeLeft is nil until the daemon has an estimate.
	TimeLeft *time.Duration
}

type UpgradeAborted struct{}

type UpgradeVerifyingInstaller struct{}

type UpgradeVerifiedInstaller struct{}

// UpgradeErrorKind classifies an upgrade failure.
type UpgradeErrorKind int

const (
	UpgradeGeneralError UpgradeErrorKind = iota + 1
	UpgradeDownloadFailed
	UpgradeVerificationFailed
)

type UpgradeError struct{ Reason UpgradeErrorKind }

func (e UpgradeDownloadStarting) Accept(v AppUpgradeEventVisitor)   { v.DownloadStarting(e) }
func (e UpgradeDownloadProgress) Accept(v AppUpgradeEventVisitor)   { v.DownloadProgress(e) }
func (e UpgradeAborted) Accept(v AppUpgradeEventVisitor)            { v.Aborted(e) }
func (e UpgradeVerifyingInstaller) Accept(v AppUpgradeEventVisitor) { v.VerifyingInstaller(e) }
func (e UpgradeVerifiedInstaller) Accept(v AppUpgradeEventVisitor)  { v.VerifiedInstaller(e) }
func (e UpgradeError) Accept(v AppUpgradeEventVisitor)              { v.Error(e) }

func (UpgradeDownloadStarting) Kind() string   { return "download_starting" }
func (UpgradeDownloadProgress) Kind() string   { return "download_progress" }
func (UpgradeAborted) Kind() string            { return "aborted" }
func (UpgradeVerifyingInstaller) Kind() string { return "verifying_installer" }
func (UpgradeVerifiedInstaller) Kind() string  { return "verified_installer" }
func (UpgradeError) Kind() string              { return "error" }
