package rpc

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
	"github.com/gezibash/mullvad-rpc/internal/convert"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

// GetRelayLocations returns the relay list known to the daemon.
func (c *Client) GetRelayLocations(ctx context.Context) (vpn.RelayList, error) {
	resp, err := callEmpty[pb.RelayList](ctx, c.conn, pb.ManagementService_GetRelayLocations_FullMethodName)
	if err != nil {
		return vpn.RelayList{}, err
	}
	return convert.RelayListFromWire(resp)
}

// GetCurrentVersion returns the daemon version string.
func (c *Client) GetCurrentVersion(ctx context.Context) (string, error) {
	resp, err := callEmpty[wrapperspb.StringValue](ctx, c.conn, pb.ManagementService_GetCurrentVersion_FullMethodName)
	if err != nil {
		return "", err
	}
	return resp.GetValue(), nil
}

// GetVersionInfo returns whether the running version is supported and any
// suggested upgrade.
func (c *Client) GetVersionInfo(ctx context.Context) (vpn.AppVersionInfo, error) {
	resp, err := callEmpty[pb.AppVersionInfo](ctx, c.conn, pb.ManagementService_GetVersionInfo_FullMethodName)
	if err != nil {
		return vpn.AppVersionInfo{}, err
	}
	return convert.AppVersionInfoFromWire(resp)
}

func (c *Client) getBool(ctx context.Context, method string) (bool, error) {
	resp, err := callEmpty[wrapperspb.BoolValue](ctx, c.conn, method)
	if err != nil {
		return false, err
	}
	return resp.GetValue(), nil
}

// IsPerformingPostUpgrade reports whether the daemon is migrating after an upgrade.
func (c *Client) IsPerformingPostUpgrade(ctx context.Context) (bool, error) {
	return c.getBool(ctx, pb.ManagementService_IsPerformingPostUpgrade_FullMethodName)
}

// NeedFullDiskPermissions reports whether the daemon lacks full disk access.
func (c *Client) NeedFullDiskPermissions(ctx context.Context) (bool, error) {
	return c.getBool(ctx, pb.ManagementService_NeedFullDiskPermissions_FullMethodName)
}

// CheckVolumes asks the daemon to rescan mounted volumes for split tunneling.
func (c *Client) CheckVolumes(ctx context.Context) error {
	_, err := callEmpty[emptypb.Empty](ctx, c.conn, pb.ManagementService_CheckVolumes_FullMethodName)
	return err
}

// PrepareRestart tells the daemon the app is about to restart it. With
// shutdown set the daemon also stops the tunnel.
func (c *Client) PrepareRestart(ctx context.Context, shutdown bool) error {
	_, err := callBool[emptypb.Empty](ctx, c.conn, pb.ManagementService_PrepareRestart_FullMethodName, shutdown)
	return err
}

// AppUpgrade starts downloading and installing the suggested upgrade.
func (c *Client) AppUpgrade(ctx context.Context) error {
	_, err := callEmpty[emptypb.Empty](ctx, c.conn, pb.ManagementService_AppUpgrade_FullMethodName)
	return err
}

// AppUpgradeAbort cancels a running upgrade.
func (c *Client) AppUpgradeAbort(ctx context.Context) error {
	_, err := callEmpty[emptypb.Empty](ctx, c.conn, pb.ManagementService_AppUpgradeAbort_FullMethodName)
	return err
}
