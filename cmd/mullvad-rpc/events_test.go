package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	rpcerrors "github.com/gezibash/mullvad-rpc/pkg/errors"
	"github.com/gezibash/mullvad-rpc/pkg/rpc"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

func TestEventsCmd_StreamsUntilStreamFails(t *testing.T) {
	unsubscribed := false
	md := &mockDaemon{
		subscribeEventsFn: func(_ context.Context, l *rpc.Listener[vpn.DaemonEvent]) (uint64, error) {
			go func() {
				l.OnEvent(vpn.TunnelStateEvent{State: vpn.TunnelConnecting{}})
				l.OnError(fmt.Errorf("decode event: %w", rpcerrors.ErrInvalidResponse))
				l.OnEvent(vpn.TunnelStateEvent{State: connectedState()})
				l.OnError(rpcerrors.ErrStreamEnded)
			}()
			return 1, nil
		},
		unsubscribeEventsFn: func(*rpc.Listener[vpn.DaemonEvent]) bool {
			unsubscribed = true
			return false
		},
	}

	out, _, err := execute(t, md, "events", "-o", "json")
	if !errors.Is(err, rpcerrors.ErrStreamEnded) {
		t.Fatalf("error = %v, want ErrStreamEnded", err)
	}
	if !unsubscribed {
		t.Error("listener was not unsubscribed")
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Three event lines, then the indented error envelope.
	if len(lines) < 4 {
		t.Fatalf("got %d lines, want 3 events and an error:\n%s", len(lines), out)
	}
	if !strings.Contains(strings.Join(lines[3:], "\n"), `"type": "events-error"`) {
		t.Errorf("missing error envelope:\n%s", out)
	}
	kinds := make([]string, 0, 3)
	for _, line := range lines[:3] {
		var ev struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Fatalf("unmarshal %q: %v", line, err)
		}
		kinds = append(kinds, ev.Kind)
	}
	if strings.Join(kinds, ",") != "tunnel_state,malformed,tunnel_state" {
		t.Errorf("kinds = %v", kinds)
	}
	if !strings.Contains(lines[1], "invalid") {
		t.Errorf("malformed event should carry the decode error: %s", lines[1])
	}
}

func TestEventsCmd_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	md := &mockDaemon{
		subscribeEventsFn: func(_ context.Context, l *rpc.Listener[vpn.DaemonEvent]) (uint64, error) {
			go func() {
				l.OnEvent(vpn.VersionInfoEvent{Info: vpn.AppVersionInfo{Supported: true}})
				time.Sleep(20 * time.Millisecond)
				cancel()
			}()
			return 1, nil
		},
	}

	out, _, err := executeContext(t, ctx, md, "events")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "version_info supported: yes") {
		t.Errorf("output = %q", out)
	}
}

func TestEventsCmd_SubscribeFails(t *testing.T) {
	md := &mockDaemon{
		subscribeEventsFn: func(context.Context, *rpc.Listener[vpn.DaemonEvent]) (uint64, error) {
			return 0, rpcerrors.ErrNoConnection
		},
	}

	if _, _, err := execute(t, md, "events"); !errors.Is(err, rpcerrors.ErrNoConnection) {
		t.Fatalf("error = %v, want ErrNoConnection", err)
	}
}

func TestEventsCmd_Upgrades(t *testing.T) {
	left := 90 * time.Second
	md := &mockDaemon{
		subscribeUpgradeFn: func(_ context.Context, l *rpc.Listener[vpn.AppUpgradeEvent]) (uint64, error) {
			go func() {
				l.OnEvent(vpn.UpgradeDownloadStarting{})
				l.OnEvent(vpn.UpgradeDownloadProgress{Server: "cdn.mullvad.net", Progress: 40, TimeLeft: &left})
				l.OnEvent(vpn.UpgradeError{Reason: vpn.UpgradeVerificationFailed})
				l.OnError(rpcerrors.ErrStreamEnded)
			}()
			return 1, nil
		},
	}

	out, _, err := execute(t, md, "events", "--upgrades")
	if !errors.Is(err, rpcerrors.ErrStreamEnded) {
		t.Fatalf("error = %v, want ErrStreamEnded", err)
	}
	for _, want := range []string{
		"download_starting download starting",
		"download_progress downloading from cdn.mullvad.net: 40%, 1m30s left",
		"error verification failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEventView(t *testing.T) {
	tests := []struct {
		name string
		ev   vpn.DaemonEvent
		want string
	}{
		{"relay list", vpn.RelayListEvent{RelayList: relayList()}, "relay list updated, 3 relays"},
		{"upgrade", vpn.VersionInfoEvent{Info: vpn.AppVersionInfo{SuggestedUpgrade: &vpn.SuggestedUpgrade{Version: "2026.4"}}}, "upgrade available: 2026.4"},
		{
			"device",
			vpn.DeviceStateEvent{Event: vpn.DeviceEvent{State: vpn.DeviceState{Kind: vpn.DeviceLoggedIn, Device: &vpn.Device{Name: "happy otter"}}}},
			"logged in as happy otter",
		},
		{"removal", vpn.DeviceRemovalEvent{Devices: []vpn.Device{{Name: "a"}, {Name: "b"}}}, "2 devices remain"},
		{"access method", vpn.NewAccessMethodEvent{Setting: vpn.AccessMethodSetting{Name: "Direct"}}, "using access method Direct"},
		{"settings", vpn.SettingsEvent{}, "settings changed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := viewEvent(tt.ev).text; got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEventsCmd_Filter(t *testing.T) {
	md := &mockDaemon{
		subscribeEventsFn: func(_ context.Context, l *rpc.Listener[vpn.DaemonEvent]) (uint64, error) {
			go func() {
				l.OnEvent(vpn.TunnelStateEvent{State: vpn.TunnelConnecting{}})
				l.OnEvent(vpn.SettingsEvent{})
				l.OnEvent(vpn.TunnelStateEvent{State: connectedState()})
				l.OnError(rpcerrors.ErrStreamEnded)
			}()
			return 1, nil
		},
	}

	out, _, err := execute(t, md, "events", "--filter", `kind == "tunnel_state" && event.state == "connected"`)
	if !errors.Is(err, rpcerrors.ErrStreamEnded) {
		t.Fatalf("error = %v, want ErrStreamEnded", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 || !strings.Contains(lines[0], "connected se-got-wg-001") {
		t.Errorf("output = %q", out)
	}
}

func TestEventsCmd_InvalidFilter(t *testing.T) {
	md := &mockDaemon{
		subscribeEventsFn: func(context.Context, *rpc.Listener[vpn.DaemonEvent]) (uint64, error) {
			t.Error("subscribed with an invalid filter")
			return 0, nil
		},
	}

	_, errOut, err := execute(t, md, "events", "--filter", "kind ==")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(errOut, "cel compile") {
		t.Errorf("stderr = %q", errOut)
	}
}
