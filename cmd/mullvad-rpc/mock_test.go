package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/viper"

	"github.com/gezibash/mullvad-rpc/pkg/rpc"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

type mockDaemon struct {
	connectTunnelFn      func(ctx context.Context) (bool, error)
	disconnectTunnelFn   func(ctx context.Context) (bool, error)
	reconnectTunnelFn    func(ctx context.Context) (bool, error)
	getTunnelStateFn     func(ctx context.Context) (vpn.TunnelState, error)
	createNewAccountFn   func(ctx context.Context) (string, error)
	loginAccountFn       func(ctx context.Context, accountNumber string) error
	logoutAccountFn      func(ctx context.Context) error
	getAccountDataFn     func(ctx context.Context, accountNumber string) (vpn.AccountDataResult, error)
	getAccountHistoryFn  func(ctx context.Context) (*string, error)
	clearAccountHistFn   func(ctx context.Context) error
	submitVoucherFn      func(ctx context.Context, voucher string) (vpn.VoucherResult, error)
	getDeviceFn          func(ctx context.Context) (vpn.DeviceState, error)
	listDevicesFn        func(ctx context.Context, accountNumber string) ([]vpn.Device, error)
	removeDeviceFn       func(ctx context.Context, r vpn.DeviceRemoval) error
	getSettingsFn        func(ctx context.Context) (vpn.Settings, error)
	setAllowLANFn        func(ctx context.Context, allow bool) error
	setAutoConnectFn     func(ctx context.Context, auto bool) error
	setBlockFn           func(ctx context.Context, block bool) error
	setEnableIPv6Fn      func(ctx context.Context, enable bool) error
	setDNSOptionsFn      func(ctx context.Context, d vpn.DNSOptions) error
	createCustomListFn   func(ctx context.Context, name string, locations []vpn.GeographicLocation) (string, error)
	deleteCustomListFn   func(ctx context.Context, id string) error
	getRelayLocationsFn  func(ctx context.Context) (vpn.RelayList, error)
	getCurrentVersionFn  func(ctx context.Context) (string, error)
	getVersionInfoFn     func(ctx context.Context) (vpn.AppVersionInfo, error)
	subscribeEventsFn    func(ctx context.Context, l *rpc.Listener[vpn.DaemonEvent]) (uint64, error)
	unsubscribeEventsFn  func(l *rpc.Listener[vpn.DaemonEvent]) bool
	subscribeUpgradeFn   func(ctx context.Context, l *rpc.Listener[vpn.AppUpgradeEvent]) (uint64, error)
	unsubscribeUpgradeFn func(l *rpc.Listener[vpn.AppUpgradeEvent]) bool
}

func (m *mockDaemon) ConnectTunnel(ctx context.Context) (bool, error) {
	return m.connectTunnelFn(ctx)
}

func (m *mockDaemon) DisconnectTunnel(ctx context.Context) (bool, error) {
	return m.disconnectTunnelFn(ctx)
}

func (m *mockDaemon) ReconnectTunnel(ctx context.Context) (bool, error) {
	return m.reconnectTunnelFn(ctx)
}

func (m *mockDaemon) GetTunnelState(ctx context.Context) (vpn.TunnelState, error) {
	return m.getTunnelStateFn(ctx)
}

func (m *mockDaemon) CreateNewAccount(ctx context.Context) (string, error) {
	return m.createNewAccountFn(ctx)
}

func (m *mockDaemon) LoginAccount(ctx context.Context, accountNumber string) error {
	return m.loginAccountFn(ctx, accountNumber)
}

func (m *mockDaemon) LogoutAccount(ctx context.Context) error {
	return m.logoutAccountFn(ctx)
}

func (m *mockDaemon) GetAccountData(ctx context.Context, accountNumber string) (vpn.AccountDataResult, error) {
	return m.getAccountDataFn(ctx, accountNumber)
}

func (m *mockDaemon) GetAccountHistory(ctx context.Context) (*string, error) {
	return m.getAccountHistoryFn(ctx)
}

func (m *mockDaemon) ClearAccountHistory(ctx context.Context) error {
	return m.clearAccountHistFn(ctx)
}

func (m *mockDaemon) SubmitVoucher(ctx context.Context, voucher string) (vpn.VoucherResult, error) {
	return m.submitVoucherFn(ctx, voucher)
}

func (m *mockDaemon) GetDevice(ctx context.Context) (vpn.DeviceState, error) {
	return m.getDeviceFn(ctx)
}

func (m *mockDaemon) ListDevices(ctx context.Context, accountNumber string) ([]vpn.Device, error) {
	return m.listDevicesFn(ctx, accountNumber)
}

func (m *mockDaemon) RemoveDevice(ctx context.Context, r vpn.DeviceRemoval) error {
	return m.removeDeviceFn(ctx, r)
}

func (m *mockDaemon) GetSettings(ctx context.Context) (vpn.Settings, error) {
	return m.getSettingsFn(ctx)
}

func (m *mockDaemon) SetAllowLAN(ctx context.Context, allow bool) error {
	return m.setAllowLANFn(ctx, allow)
}

func (m *mockDaemon) SetAutoConnect(ctx context.Context, auto bool) error {
	return m.setAutoConnectFn(ctx, auto)
}

func (m *mockDaemon) SetBlockWhenDisconnected(ctx context.Context, block bool) error {
	return m.setBlockFn(ctx, block)
}

func (m *mockDaemon) SetEnableIPv6(ctx context.Context, enable bool) error {
	return m.setEnableIPv6Fn(ctx, enable)
}

func (m *mockDaemon) SetDNSOptions(ctx context.Context, d vpn.DNSOptions) error {
	return m.setDNSOptionsFn(ctx, d)
}

func (m *mockDaemon) CreateCustomList(ctx context.Context, name string, locations []vpn.GeographicLocation) (string, error) {
	return m.createCustomListFn(ctx, name, locations)
}

func (m *mockDaemon) DeleteCustomList(ctx context.Context, id string) error {
	return m.deleteCustomListFn(ctx, id)
}

func (m *mockDaemon) GetRelayLocations(ctx context.Context) (vpn.RelayList, error) {
	return m.getRelayLocationsFn(ctx)
}

func (m *mockDaemon) GetCurrentVersion(ctx context.Context) (string, error) {
	return m.getCurrentVersionFn(ctx)
}

func (m *mockDaemon) GetVersionInfo(ctx context.Context) (vpn.AppVersionInfo, error) {
	return m.getVersionInfoFn(ctx)
}

func (m *mockDaemon) SubscribeDaemonEvents(ctx context.Context, l *rpc.Listener[vpn.DaemonEvent]) (uint64, error) {
	return m.subscribeEventsFn(ctx, l)
}

func (m *mockDaemon) UnsubscribeDaemonEvents(l *rpc.Listener[vpn.DaemonEvent]) bool {
	if m.unsubscribeEventsFn == nil {
		return true
	}
	return m.unsubscribeEventsFn(l)
}

func (m *mockDaemon) SubscribeAppUpgradeEvents(ctx context.Context, l *rpc.Listener[vpn.AppUpgradeEvent]) (uint64, error) {
	return m.subscribeUpgradeFn(ctx, l)
}

func (m *mockDaemon) UnsubscribeAppUpgradeEvents(l *rpc.Listener[vpn.AppUpgradeEvent]) bool {
	if m.unsubscribeUpgradeFn == nil {
		return true
	}
	return m.unsubscribeUpgradeFn(l)
}

// execute runs the root command with args against d and returns stdout and
// stderr.
func execute(t *testing.T, d Daemon, args ...string) (string, string, error) {
	t.Helper()
	return executeContext(t, context.Background(), d, args...)
}

func executeContext(t *testing.T, ctx context.Context, d Daemon, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := &app{v: viper.New(), daemon: d, stdout: &stdout, stderr: &stderr}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func ptr[T any](v T) *T { return &v }
