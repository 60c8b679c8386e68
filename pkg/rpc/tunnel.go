package rpc

import (
	"context"

	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
	"github.com/gezibash/mullvad-rpc/internal/convert"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

// ConnectTunnel asks the daemon to connect the tunnel. It reports whether the
// request changed the target state.
func (c *Client) ConnectTunnel(ctx context.Context) (bool, error) {
	resp, err := callEmpty[wrapperspb.BoolValue](ctx, c.conn, pb.ManagementService_ConnectTunnel_FullMethodName)
	if err != nil {
		return false, err
	}
	return resp.GetValue(), nil
}

// DisconnectTunnel asks the daemon to disconnect the tunnel.
func (c *Client) DisconnectTunnel(ctx context.Context) (bool, error) {
	resp, err := callEmpty[wrapperspb.BoolValue](ctx, c.conn, pb.ManagementService_DisconnectTunnel_FullMethodName)
	if err != nil {
		return false, err
	}
	return resp.GetValue(), nil
}

// ReconnectTunnel asks the daemon to reconnect the tunnel.
func (c *Client) ReconnectTunnel(ctx context.Context) (bool, error) {
	resp, err := callEmpty[wrapperspb.BoolValue](ctx, c.conn, pb.ManagementService_ReconnectTunnel_FullMethodName)
	if err != nil {
		return false, err
	}
	return resp.GetValue(), nil
}

// GetTunnelState returns the current tunnel state.
func (c *Client) GetTunnelState(ctx context.Context) (vpn.TunnelState, error) {
	resp, err := callEmpty[pb.TunnelState](ctx, c.conn, pb.ManagementService_GetTunnelState_FullMethodName)
	if err != nil {
		return nil, err
	}
	return convert.TunnelStateFromWire(resp)
}
