package main

import (
	"context"
	"strings"
	"testing"

	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

func TestRootCmd_InvalidConfigFailsBeforeConnecting(t *testing.T) {
	_, errOut, err := execute(t, nil, "status", "--log-format", "xml")
	if err == nil {
		t.Fatal("expected config error")
	}
	if !strings.Contains(errOut, "log_format") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRootCmd_MarkdownOutput(t *testing.T) {
	md := &mockDaemon{
		getTunnelStateFn: func(context.Context) (vpn.TunnelState, error) {
			return vpn.TunnelDisconnected{}, nil
		},
	}

	out, _, err := execute(t, md, "--output", "markdown", "status")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "---\n") || !strings.Contains(out, "**State:** disconnected") {
		t.Errorf("output = %q", out)
	}
}

func TestRootCmd_ErrorAsJSONGoesToStdout(t *testing.T) {
	md := &mockDaemon{
		connectTunnelFn: func(context.Context) (bool, error) { return false, context.DeadlineExceeded },
	}

	out, errOut, err := execute(t, md, "connect", "-o", "json")
	if err == nil {
		t.Fatal("expected error")
	}
	if errOut != "" {
		t.Errorf("stderr = %q, want empty", errOut)
	}
	if !strings.Contains(out, `"type": "connect-error"`) || !strings.Contains(out, "deadline exceeded") {
		t.Errorf("stdout = %q", out)
	}
}
