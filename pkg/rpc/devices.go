package rpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
	"github.com/gezibash/mullvad-rpc/internal/convert"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

var listDevicesErrors = map[codes.Code]vpn.AccountErrorKind{
	codes.Unauthenticated: vpn.AccountInvalid,
}

// GetDevice returns the login state of this device.
func (c *Client) GetDevice(ctx context.Context) (vpn.DeviceState, error) {
	resp, err := callEmpty[pb.DeviceState](ctx, c.conn, pb.ManagementService_GetDevice_FullMethodName)
	if err != nil {
		return vpn.DeviceState{}, err
	}
	return convert.DeviceStateFromWire(resp)
}

// UpdateDevice asks the daemon to refresh this device from the API.
func (c *Client) UpdateDevice(ctx context.Context) error {
	_, err := callEmpty[emptypb.Empty](ctx, c.conn, pb.ManagementService_UpdateDevice_FullMethodName)
	return err
}

// ListDevices returns the devices of an account. Daemon failures are returned
// as *vpn.AccountError.
func (c *Client) ListDevices(ctx context.Context, accountNumber string) ([]vpn.Device, error) {
	resp, err := callString[pb.DeviceList](ctx, c.conn, pb.ManagementService_ListDevices_FullMethodName, accountNumber)
	if err != nil {
		aerr := accountError(err, listDevicesErrors)
		if ae, ok := aerr.(*vpn.AccountError); ok && ae.Kind == vpn.AccountCommunication {
			ae.Kind = vpn.AccountListDevices
		}
		return nil, aerr
	}
	return convert.DevicesFromWire(resp)
}

// RemoveDevice removes a device from an account.
func (c *Client) RemoveDevice(ctx context.Context, r vpn.DeviceRemoval) error {
	in, err := convert.DeviceRemovalToWire(r)
	if err != nil {
		return err
	}
	return invokeEmpty(ctx, c.conn, pb.ManagementService_RemoveDevice_FullMethodName, in)
}
