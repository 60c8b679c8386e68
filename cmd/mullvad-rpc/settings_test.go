package main

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

func TestSettingsGetCmd(t *testing.T) {
	md := &mockDaemon{
		getSettingsFn: func(context.Context) (vpn.Settings, error) {
			return vpn.Settings{
				AllowLAN:    true,
				AutoConnect: false,
				Tunnel: vpn.TunnelOptions{
					WireGuard: vpn.WireGuardOptions{MTU: ptr(uint32(1280))},
					DNS:       vpn.DNSOptions{State: vpn.DNSDefault, Default: vpn.DefaultDNSOptions{BlockAds: true, BlockMalware: true}},
				},
				Obfuscation: vpn.ObfuscationSettings{Selected: vpn.ObfuscationAuto},
				BridgeState: vpn.BridgeOff,
				CustomLists: []vpn.CustomList{{ID: "1", Name: "work"}},
			}, nil
		},
	}

	out, _, err := execute(t, md, "settings", "get", "-o", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var env struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	checks := map[string]any{
		"allow_lan":         true,
		"auto_connect":      false,
		"dns":               "default, blocking ads, malware",
		"mtu":               "1280",
		"quantum_resistant": "auto",
		"obfuscation":       "auto",
		"bridge":            "off",
		"custom_lists":      float64(1),
	}
	for k, want := range checks {
		if env.Data[k] != want {
			t.Errorf("%s = %v, want %v", k, env.Data[k], want)
		}
	}
}

func TestSettingsToggleCmds(t *testing.T) {
	got := map[string]bool{}
	record := func(name string) func(context.Context, bool) error {
		return func(_ context.Context, on bool) error {
			got[name] = on
			return nil
		}
	}
	md := &mockDaemon{
		setAllowLANFn:    record("lan"),
		setAutoConnectFn: record("auto-connect"),
		setBlockFn:       record("lockdown"),
		setEnableIPv6Fn:  record("ipv6"),
	}

	for _, args := range [][]string{
		{"settings", "lan", "on"},
		{"settings", "auto-connect", "off"},
		{"settings", "lockdown", "true"},
		{"settings", "ipv6", "no"},
	} {
		if _, _, err := execute(t, md, args...); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
	}
	want := map[string]bool{"lan": true, "auto-connect": false, "lockdown": true, "ipv6": false}
	for k, v := range want {
		if on, ok := got[k]; !ok || on != v {
			t.Errorf("%s = %v (set %v), want %v", k, on, ok, v)
		}
	}
}

func TestSettingsToggleCmd_InvalidValue(t *testing.T) {
	called := false
	md := &mockDaemon{setAllowLANFn: func(context.Context, bool) error {
		called = true
		return nil
	}}

	_, errOut, err := execute(t, md, "settings", "lan", "maybe")
	if err == nil {
		t.Fatal("expected error")
	}
	if called {
		t.Error("daemon called with invalid value")
	}
	if !strings.Contains(errOut, "expected on or off") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestSettingsDNSCmd(t *testing.T) {
	t.Run("custom servers", func(t *testing.T) {
		var got vpn.DNSOptions
		md := &mockDaemon{setDNSOptionsFn: func(_ context.Context, d vpn.DNSOptions) error {
			got = d
			return nil
		}}
		if _, _, err := execute(t, md, "settings", "dns", "10.64.0.1", "::1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.State != vpn.DNSCustom || len(got.Custom) != 2 || got.Custom[0] != "10.64.0.1" {
			t.Errorf("dns = %+v", got)
		}
	})

	t.Run("default with blockers", func(t *testing.T) {
		var got vpn.DNSOptions
		md := &mockDaemon{setDNSOptionsFn: func(_ context.Context, d vpn.DNSOptions) error {
			got = d
			return nil
		}}
		if _, _, err := execute(t, md, "settings", "dns", "--block-ads", "--block-trackers"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.State != vpn.DNSDefault || !got.Default.BlockAds || !got.Default.BlockTrackers || got.Default.BlockMalware {
			t.Errorf("dns = %+v", got)
		}
	})

	t.Run("invalid address", func(t *testing.T) {
		md := &mockDaemon{setDNSOptionsFn: func(context.Context, vpn.DNSOptions) error {
			t.Error("daemon called with invalid address")
			return nil
		}}
		if _, _, err := execute(t, md, "settings", "dns", "not-an-ip"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestParseToggle(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"on", true, false},
		{"ON", true, false},
		{"yes", true, false},
		{"1", true, false},
		{"off", false, false},
		{"false", false, false},
		{"maybe", false, true},
	}
	for _, tt := range tests {
		got, err := parseToggle(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseToggle(%q) = %v, %v", tt.in, got, err)
		}
	}
}
