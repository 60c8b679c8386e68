package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

const account = "1234123412341234"

func loggedIn(context.Context) (vpn.DeviceState, error) {
	return vpn.DeviceState{
		Kind:          vpn.DeviceLoggedIn,
		AccountNumber: account,
		Device:        &vpn.Device{ID: "dev-1", Name: "happy otter"},
	}, nil
}

func TestAccountInfoCmd(t *testing.T) {
	expiry := time.Now().Add(30 * 24 * time.Hour)
	md := &mockDaemon{
		getDeviceFn: loggedIn,
		getAccountDataFn: func(_ context.Context, number string) (vpn.AccountDataResult, error) {
			if number != account {
				t.Errorf("account = %q, want %q", number, account)
			}
			return vpn.AccountDataResult{Data: &vpn.AccountData{ID: "acc", Expiry: expiry}}, nil
		},
	}

	out, _, err := execute(t, md, "account", "info")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"logged in", "happy otter", account, expiry.Local().Format(time.DateOnly)} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAccountInfoCmd_LookupError(t *testing.T) {
	md := &mockDaemon{
		getDeviceFn: loggedIn,
		getAccountDataFn: func(context.Context, string) (vpn.AccountDataResult, error) {
			return vpn.AccountDataResult{Err: &vpn.AccountError{Kind: vpn.AccountInvalid}}, nil
		},
	}

	out, _, err := execute(t, md, "account", "info")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "invalid-account") {
		t.Errorf("output = %q", out)
	}
}

func TestAccountInfoCmd_LoggedOut(t *testing.T) {
	md := &mockDaemon{
		getDeviceFn: func(context.Context) (vpn.DeviceState, error) {
			return vpn.DeviceState{Kind: vpn.DeviceLoggedOut}, nil
		},
	}

	out, _, err := execute(t, md, "account", "info")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "logged out") || strings.Contains(out, "Expires") {
		t.Errorf("output = %q", out)
	}
}

func TestAccountLoginCmd(t *testing.T) {
	var got string
	md := &mockDaemon{
		loginAccountFn: func(_ context.Context, number string) error {
			got = number
			return nil
		},
	}

	out, _, err := execute(t, md, "account", "login", account)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != account {
		t.Errorf("login account = %q", got)
	}
	if !strings.Contains(out, "Logged in") {
		t.Errorf("output = %q", out)
	}
}

func TestAccountLoginCmd_RequiresArg(t *testing.T) {
	if _, _, err := execute(t, &mockDaemon{}, "account", "login"); err == nil {
		t.Fatal("expected argument error")
	}
}

func TestAccountCreateAndLogout(t *testing.T) {
	md := &mockDaemon{
		createNewAccountFn: func(context.Context) (string, error) { return account, nil },
		logoutAccountFn:    func(context.Context) error { return nil },
	}

	out, _, err := execute(t, md, "account", "create")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.Contains(out, account) {
		t.Errorf("create output = %q", out)
	}
	out, _, err = execute(t, md, "account", "logout")
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !strings.Contains(out, "Logged out") {
		t.Errorf("logout output = %q", out)
	}
}

func TestAccountHistoryCmd(t *testing.T) {
	cleared := false
	md := &mockDaemon{
		getAccountHistoryFn: func(context.Context) (*string, error) { return ptr(account), nil },
		clearAccountHistFn: func(context.Context) error {
			cleared = true
			return nil
		},
	}

	out, _, err := execute(t, md, "account", "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, account) {
		t.Errorf("history output = %q", out)
	}
	if _, _, err := execute(t, md, "account", "history", "--clear"); err != nil {
		t.Fatalf("history --clear: %v", err)
	}
	if !cleared {
		t.Error("history was not cleared")
	}
}

func TestAccountVoucherCmd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		md := &mockDaemon{
			submitVoucherFn: func(_ context.Context, code string) (vpn.VoucherResult, error) {
				return vpn.VoucherResult{
					Kind:         vpn.VoucherSuccess,
					SecondsAdded: 30 * 24 * 3600,
					NewExpiry:    time.Date(2027, 1, 1, 12, 0, 0, 0, time.UTC),
				}, nil
			},
		}
		out, _, err := execute(t, md, "account", "voucher", "ABCD-EFGH")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Voucher redeemed") || !strings.Contains(out, "30") {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("already used", func(t *testing.T) {
		md := &mockDaemon{
			submitVoucherFn: func(context.Context, string) (vpn.VoucherResult, error) {
				return vpn.VoucherResult{Kind: vpn.VoucherAlreadyUsed}, nil
			},
		}
		_, errOut, err := execute(t, md, "account", "voucher", "ABCD-EFGH")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(errOut, "already-used") {
			t.Errorf("stderr = %q", errOut)
		}
	})
}

func TestAccountDevicesCmd(t *testing.T) {
	md := &mockDaemon{
		getDeviceFn: loggedIn,
		listDevicesFn: func(_ context.Context, number string) ([]vpn.Device, error) {
			if number != account {
				t.Errorf("account = %q", number)
			}
			return []vpn.Device{
				{ID: "dev-1", Name: "happy otter", Created: time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)},
				{ID: "dev-2", Name: "brave fox"},
			}, nil
		},
	}

	out, _, err := execute(t, md, "account", "devices")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"happy otter", "brave fox", "dev-2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAccountDevicesCmd_LoggedOutNeedsAccount(t *testing.T) {
	md := &mockDaemon{
		getDeviceFn: func(context.Context) (vpn.DeviceState, error) {
			return vpn.DeviceState{Kind: vpn.DeviceRevoked}, nil
		},
	}

	_, errOut, err := execute(t, md, "account", "devices")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(errOut, "pass an account number") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestAccountRevokeCmd(t *testing.T) {
	var got vpn.DeviceRemoval
	md := &mockDaemon{
		removeDeviceFn: func(_ context.Context, r vpn.DeviceRemoval) error {
			got = r
			return nil
		},
	}

	if _, _, err := execute(t, md, "account", "revoke", "dev-2", "--account", account); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AccountNumber != account || got.DeviceID != "dev-2" {
		t.Errorf("removal = %+v", got)
	}
}

func TestAccountRevokeCmd_DaemonError(t *testing.T) {
	md := &mockDaemon{
		getDeviceFn:    loggedIn,
		removeDeviceFn: func(context.Context, vpn.DeviceRemoval) error { return errors.New("not found") },
	}

	if _, _, err := execute(t, md, "account", "revoke", "dev-9"); err == nil {
		t.Fatal("expected error")
	}
}
