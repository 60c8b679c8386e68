package rpc

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
	"github.com/gezibash/mullvad-rpc/internal/convert"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

// GetSettings returns the daemon settings.
func (c *Client) GetSettings(ctx context.Context) (vpn.Settings, error) {
	resp, err := callEmpty[pb.Settings](ctx, c.conn, pb.ManagementService_GetSettings_FullMethodName)
	if err != nil {
		return vpn.Settings{}, err
	}
	return convert.SettingsFromWire(resp)
}

// SetRelaySettings replaces the relay constraints or the custom relay.
func (c *Client) SetRelaySettings(ctx context.Context, r vpn.RelaySettings) error {
	in, err := convert.RelaySettingsToWire(r)
	if err != nil {
		return err
	}
	return invokeEmpty(ctx, c.conn, pb.ManagementService_SetRelaySettings_FullMethodName, in)
}

func (c *Client) setBool(ctx context.Context, method string, v bool) error {
	_, err := callBool[emptypb.Empty](ctx, c.conn, method, v)
	return err
}

// SetAllowLAN toggles local network sharing.
func (c *Client) SetAllowLAN(ctx context.Context, allow bool) error {
	return c.setBool(ctx, pb.ManagementService_SetAllowLan_FullMethodName, allow)
}

// SetShowBetaReleases toggles beta release notifications.
func (c *Client) SetShowBetaReleases(ctx context.Context, show bool) error {
	return c.setBool(ctx, pb.ManagementService_SetShowBetaReleases_FullMethodName, show)
}

// SetEnableIPv6 toggles IPv6 inside the tunnel.
func (c *Client) SetEnableIPv6(ctx context.Context, enable bool) error {
	return c.setBool(ctx, pb.ManagementService_SetEnableIpv6_FullMethodName, enable)
}

// SetBlockWhenDisconnected toggles the lockdown mode.
func (c *Client) SetBlockWhenDisconnected(ctx context.Context, block bool) error {
	return c.setBool(ctx, pb.ManagementService_SetBlockWhenDisconnected_FullMethodName, block)
}

// SetAutoConnect toggles connecting on daemon start.
func (c *Client) SetAutoConnect(ctx context.Context, auto bool) error {
	return c.setBool(ctx, pb.ManagementService_SetAutoConnect_FullMethodName, auto)
}

// SetEnableDaita toggles DAITA.
func (c *Client) SetEnableDaita(ctx context.Context, enable bool) error {
	return c.setBool(ctx, pb.ManagementService_SetEnableDaita_FullMethodName, enable)
}

// SetDaitaDirectOnly restricts DAITA to relays that support it directly.
func (c *Client) SetDaitaDirectOnly(ctx context.Context, directOnly bool) error {
	return c.setBool(ctx, pb.ManagementService_SetDaitaDirectOnly_FullMethodName, directOnly)
}

// SetBridgeState selects when bridges are used.
func (c *Client) SetBridgeState(ctx context.Context, s vpn.BridgeState) error {
	in, err := convert.BridgeStateToWire(s)
	if err != nil {
		return err
	}
	return invokeEmpty(ctx, c.conn, pb.ManagementService_SetBridgeState_FullMethodName, in)
}

// SetBridgeSettings replaces the bridge constraints or custom bridge.
func (c *Client) SetBridgeSettings(ctx context.Context, b vpn.BridgeSettings) error {
	in, err := convert.BridgeSettingsToWire(b)
	if err != nil {
		return err
	}
	return invokeEmpty(ctx, c.conn, pb.ManagementService_SetBridgeSettings_FullMethodName, in)
}

// SetObfuscationSettings replaces the obfuscation settings.
func (c *Client) SetObfuscationSettings(ctx context.Context, o vpn.ObfuscationSettings) error {
	in, err := convert.ObfuscationSettingsToWire(o)
	if err != nil {
		return err
	}
	return invokeEmpty(ctx, c.conn, pb.ManagementService_SetObfuscationSettings_FullMethodName, in)
}

// SetOpenVPNMssfix sets the OpenVPN mssfix value. Nil restores the default.
func (c *Client) SetOpenVPNMssfix(ctx context.Context, mssfix *uint32) error {
	_, err := callUint32[emptypb.Empty](ctx, c.conn, pb.ManagementService_SetOpenvpnMssfix_FullMethodName, unsetZero(mssfix))
	return err
}

// SetWireguardMTU sets the WireGuard MTU. Nil restores the default.
func (c *Client) SetWireguardMTU(ctx context.Context, mtu *uint32) error {
	_, err := callUint32[emptypb.Empty](ctx, c.conn, pb.ManagementService_SetWireguardMtu_FullMethodName, unsetZero(mtu))
	return err
}

// The daemon reads zero as unset.
func unsetZero(v *uint32) uint32 {
	if v == nil {
		return 0
	}
	return *v
}

// SetQuantumResistant sets quantum-resistant tunnels. Nil selects automatic.
func (c *Client) SetQuantumResistant(ctx context.Context, enabled *bool) error {
	return invokeEmpty(ctx, c.conn, pb.ManagementService_SetQuantumResistantTunnel_FullMethodName, convert.QuantumResistantToWire(enabled))
}

// SetDNSOptions replaces the DNS options.
func (c *Client) SetDNSOptions(ctx context.Context, d vpn.DNSOptions) error {
	in, err := convert.DNSOptionsToWire(d)
	if err != nil {
		return err
	}
	return invokeEmpty(ctx, c.conn, pb.ManagementService_SetDnsOptions_FullMethodName, in)
}

// ApplyJSONSettings imports settings from a JSON patch.
func (c *Client) ApplyJSONSettings(ctx context.Context, blob string) error {
	_, err := callString[emptypb.Empty](ctx, c.conn, pb.ManagementService_ApplyJsonSettings_FullMethodName, blob)
	return err
}

// ClearAllRelayOverrides removes every relay IP override.
func (c *Client) ClearAllRelayOverrides(ctx context.Context) error {
	_, err := callEmpty[emptypb.Empty](ctx, c.conn, pb.ManagementService_ClearAllRelayOverrides_FullMethodName)
	return err
}

// AddSplitTunnelApp excludes an application from the tunnel.
func (c *Client) AddSplitTunnelApp(ctx context.Context, path string) error {
	_, err := callString[emptypb.Empty](ctx, c.conn, pb.ManagementService_AddSplitTunnelApp_FullMethodName, path)
	return err
}

// RemoveSplitTunnelApp stops excluding an application.
func (c *Client) RemoveSplitTunnelApp(ctx context.Context, path string) error {
	_, err := callString[emptypb.Empty](ctx, c.conn, pb.ManagementService_RemoveSplitTunnelApp_FullMethodName, path)
	return err
}

// SetSplitTunnelState toggles split tunneling.
func (c *Client) SetSplitTunnelState(ctx context.Context, enabled bool) error {
	return c.setBool(ctx, pb.ManagementService_SetSplitTunnelState_FullMethodName, enabled)
}
