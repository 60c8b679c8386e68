package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gezibash/mullvad-rpc/internal/cli"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the tunnel state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "status", func(ctx context.Context) error {
				state, err := a.daemon.GetTunnelState(ctx)
				if err != nil {
					return err
				}
				v := viewTunnel(state)
				kv := a.output().KV("tunnel-state").SetStatus("State", v.state, v.tone)
				if v.relay != "" {
					kv.Set("Relay", v.relay)
				}
				if v.endpoint != "" {
					kv.Set("Endpoint", v.endpoint)
				}
				if v.location != "" {
					kv.Set("Location", v.location)
				}
				if len(v.features) > 0 {
					kv.Set("Features", v.features)
				}
				if v.detail != "" {
					kv.Set("Detail", v.detail)
				}
				return kv.Render()
			})
		},
	}
}

// tunnelAction builds connect, disconnect and reconnect. The daemon reports
// whether the request changed anything.
func tunnelAction(a *app, use, short, changed, unchanged string, call func(context.Context) (bool, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, use, func(ctx context.Context) error {
				ok, err := call(ctx)
				if err != nil {
					return err
				}
				msg, tone := unchanged, cli.ToneNeutral
				if ok {
					msg, tone = changed, cli.ToneGood
				}
				return a.output().Result(use, msg).WithTone(tone).With("Changed", ok).Render()
			})
		},
	}
}

func newConnectCmd(a *app) *cobra.Command {
	return tunnelAction(a, "connect", "Connect the tunnel", "Connecting", "Already connected or connecting",
		func(ctx context.Context) (bool, error) { return a.daemon.ConnectTunnel(ctx) })
}

func newDisconnectCmd(a *app) *cobra.Command {
	return tunnelAction(a, "disconnect", "Disconnect the tunnel", "Disconnecting", "Already disconnected",
		func(ctx context.Context) (bool, error) { return a.daemon.DisconnectTunnel(ctx) })
}

func newReconnectCmd(a *app) *cobra.Command {
	return tunnelAction(a, "reconnect", "Reconnect the tunnel to a new relay", "Reconnecting", "Not connected",
		func(ctx context.Context) (bool, error) { return a.daemon.ReconnectTunnel(ctx) })
}
