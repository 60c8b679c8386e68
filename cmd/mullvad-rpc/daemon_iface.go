package main

import (
	"context"

	"github.com/gezibash/mullvad-rpc/pkg/rpc"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

// Daemon is the subset of *rpc.Client the commands use.
type Daemon interface {
	ConnectTunnel(ctx context.Context) (bool, error)
	DisconnectTunnel(ctx context.Context) (bool, error)
	ReconnectTunnel(ctx context.Context) (bool, error)
	GetTunnelState(ctx context.Context) (vpn.TunnelState, error)

	CreateNewAccount(ctx context.Context) (string, error)
	LoginAccount(ctx context.Context, accountNumber string) error
	LogoutAccount(ctx context.Context) error
	GetAccountData(ctx context.Context, accountNumber string) (vpn.AccountDataResult, error)
	GetAccountHistory(ctx context.Context) (*string, error)
	ClearAccountHistory(ctx context.Context) error
	SubmitVoucher(ctx context.Context, voucher string) (vpn.VoucherResult, error)

	GetDevice(ctx context.Context) (vpn.DeviceState, error)
	ListDevices(ctx context.Context, accountNumber string) ([]vpn.Device, error)
	RemoveDevice(ctx context.Context, r vpn.DeviceRemoval) error

	GetSettings(ctx context.Context) (vpn.Settings, error)
	SetAllowLAN(ctx context.Context, allow bool) error
	SetAutoConnect(ctx context.Context, auto bool) error
	SetBlockWhenDisconnected(ctx context.Context, block bool) error
	SetEnableIPv6(ctx context.Context, enable bool) error
	SetDNSOptions(ctx context.Context, d vpn.DNSOptions) error

	CreateCustomList(ctx context.Context, name string, locations []vpn.GeographicLocation) (string, error)
	DeleteCustomList(ctx context.Context, id string) error

	GetRelayLocations(ctx context.Context) (vpn.RelayList, error)
	GetCurrentVersion(ctx context.Context) (string, error)
	GetVersionInfo(ctx context.Context) (vpn.AppVersionInfo, error)

	SubscribeDaemonEvents(ctx context.Context, l *rpc.Listener[vpn.DaemonEvent]) (uint64, error)
	UnsubscribeDaemonEvents(l *rpc.Listener[vpn.DaemonEvent]) bool
	SubscribeAppUpgradeEvents(ctx context.Context, l *rpc.Listener[vpn.AppUpgradeEvent]) (uint64, error)
	UnsubscribeAppUpgradeEvents(l *rpc.Listener[vpn.AppUpgradeEvent]) bool
}

var _ Daemon = (*rpc.Client)(nil)
