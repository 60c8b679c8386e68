package main

import (
	"context"
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change daemon settings",
	}
	cmd.AddCommand(
		newSettingsGetCmd(a),
		toggleCmd(a, "lan", "Allow access to the local network", Daemon.SetAllowLAN),
		toggleCmd(a, "auto-connect", "Connect when the daemon starts", Daemon.SetAutoConnect),
		toggleCmd(a, "lockdown", "Block traffic while disconnected", Daemon.SetBlockWhenDisconnected),
		toggleCmd(a, "ipv6", "Route IPv6 through the tunnel", Daemon.SetEnableIPv6),
		newSettingsDNSCmd(a),
	)
	return cmd
}

func newSettingsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "settings.get", func(ctx context.Context) error {
				s, err := a.daemon.GetSettings(ctx)
				if err != nil {
					return err
				}
				kv := a.output().KV("settings").
					Set("Allow LAN", s.AllowLAN).
					Set("Auto Connect", s.AutoConnect).
					Set("Lockdown", s.BlockWhenDisconnected).
					Set("IPv6", s.Tunnel.EnableIPv6).
					Set("Beta Releases", s.ShowBetaReleases).
					Set("DNS", dnsSummary(s.Tunnel.DNS)).
					Set("Obfuscation", s.Obfuscation.Selected.String()).
					Set("Bridge", s.BridgeState.String()).
					Set("Quantum Resistant", optionalBool(s.Tunnel.WireGuard.QuantumResistant)).
					Set("DAITA", s.Tunnel.WireGuard.Daita.Enabled).
					Set("MTU", optionalUint(s.Tunnel.WireGuard.MTU)).
					Set("Split Tunnel", s.SplitTunnel.Enabled).
					Set("Custom Lists", len(s.CustomLists))
				return kv.Render()
			})
		},
	}
}

func toggleCmd(a *app, name, short string, set func(Daemon, context.Context, bool) error) *cobra.Command {
	return &cobra.Command{
		Use:       name + " <on|off>",
		Short:     short,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := parseToggle(args[0])
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.run(cmd, "settings."+name, func(ctx context.Context) error {
				if err := set(a.daemon, ctx, on); err != nil {
					return err
				}
				return a.output().Result("settings", "Updated "+name).With(name, on).Render()
			})
		},
	}
}

func parseToggle(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
	return b, nil
}

func newSettingsDNSCmd(a *app) *cobra.Command {
	var blockers vpn.DefaultDNSOptions
	cmd := &cobra.Command{
		Use:   "dns [server...]",
		Short: "Use default DNS with content blockers, or custom servers",
		Long: "With no servers the daemon's default DNS is used and the --block-* flags\n" +
			"select content blockers. With servers, DNS queries go to those addresses.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := vpn.DNSOptions{State: vpn.DNSDefault, Default: blockers}
			if len(args) > 0 {
				for _, arg := range args {
					addr, err := netip.ParseAddr(arg)
					if err != nil {
						return a.fail(cmd, fmt.Errorf("invalid dns server %q", arg))
					}
					opts.Custom = append(opts.Custom, addr.String())
				}
				opts.State = vpn.DNSCustom
			}
			return a.run(cmd, "settings.dns", func(ctx context.Context) error {
				if err := a.daemon.SetDNSOptions(ctx, opts); err != nil {
					return err
				}
				return a.output().Result("settings", "Updated DNS").With("DNS", dnsSummary(opts)).Render()
			})
		},
	}
	f := cmd.Flags()
	f.BoolVar(&blockers.BlockAds, "block-ads", false, "block ads")
	f.BoolVar(&blockers.BlockTrackers, "block-trackers", false, "block trackers")
	f.BoolVar(&blockers.BlockMalware, "block-malware", false, "block malware")
	f.BoolVar(&blockers.BlockAdultContent, "block-adult", false, "block adult content")
	f.BoolVar(&blockers.BlockGambling, "block-gambling", false, "block gambling")
	f.BoolVar(&blockers.BlockSocialMedia, "block-social", false, "block social media")
	return cmd
}

func dnsSummary(d vpn.DNSOptions) string {
	if d.State == vpn.DNSCustom {
		return "custom " + strings.Join(d.Custom, ", ")
	}
	var blocked []string
	for _, b := range []struct {
		on   bool
		name string
	}{
		{d.Default.BlockAds, "ads"},
		{d.Default.BlockTrackers, "trackers"},
		{d.Default.BlockMalware, "malware"},
		{d.Default.BlockAdultContent, "adult"},
		{d.Default.BlockGambling, "gambling"},
		{d.Default.BlockSocialMedia, "social"},
	} {
		if b.on {
			blocked = append(blocked, b.name)
		}
	}
	if len(blocked) == 0 {
		return "default"
	}
	return "default, blocking " + strings.Join(blocked, ", ")
}

func optionalBool(b *bool) string {
	if b == nil {
		return "auto"
	}
	return yesNo(*b)
}

func optionalUint(v *uint32) string {
	if v == nil {
		return "auto"
	}
	return strconv.FormatUint(uint64(*v), 10)
}
