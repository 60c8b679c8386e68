package rpc

import (
	"context"

	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
	"github.com/gezibash/mullvad-rpc/internal/convert"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

// AddAPIAccessMethod stores a new access method and returns its id.
func (c *Client) AddAPIAccessMethod(ctx context.Context, s vpn.NewAccessMethodSetting) (string, error) {
	in, err := convert.NewAccessMethodSettingToWire(s)
	if err != nil {
		return "", err
	}
	resp, err := call[pb.NewAccessMethodSetting, pb.UUID](ctx, c.conn, pb.ManagementService_AddApiAccessMethod_FullMethodName, in)
	if err != nil {
		return "", err
	}
	return convert.UUIDFromWire(resp)
}

// UpdateAPIAccessMethod replaces a stored access method.
func (c *Client) UpdateAPIAccessMethod(ctx context.Context, s vpn.AccessMethodSetting) error {
	in, err := convert.AccessMethodSettingToWire(s)
	if err != nil {
		return err
	}
	return invokeEmpty(ctx, c.conn, pb.ManagementService_UpdateApiAccessMethod_FullMethodName, in)
}

func (c *Client) byID(ctx context.Context, method, id string) error {
	in, err := convert.UUIDToWire(id)
	if err != nil {
		return err
	}
	return invokeEmpty(ctx, c.conn, method, in)
}

// RemoveAPIAccessMethod deletes a custom access method.
func (c *Client) RemoveAPIAccessMethod(ctx context.Context, id string) error {
	return c.byID(ctx, pb.ManagementService_RemoveApiAccessMethod_FullMethodName, id)
}

// SetAPIAccessMethod makes the daemon use the access method with id.
func (c *Client) SetAPIAccessMethod(ctx context.Context, id string) error {
	return c.byID(ctx, pb.ManagementService_SetApiAccessMethod_FullMethodName, id)
}

// GetCurrentAPIAccessMethod returns the access method in use.
func (c *Client) GetCurrentAPIAccessMethod(ctx context.Context) (vpn.AccessMethodSetting, error) {
	resp, err := callEmpty[pb.AccessMethodSetting](ctx, c.conn, pb.ManagementService_GetCurrentApiAccessMethod_FullMethodName)
	if err != nil {
		return vpn.AccessMethodSetting{}, err
	}
	return convert.AccessMethodSettingFromWire(resp)
}

// TestAPIAccessMethodByID reports whether the API is reachable through a
// stored access method.
func (c *Client) TestAPIAccessMethodByID(ctx context.Context, id string) (bool, error) {
	in, err := convert.UUIDToWire(id)
	if err != nil {
		return false, err
	}
	resp, err := call[pb.UUID, wrapperspb.BoolValue](ctx, c.conn, pb.ManagementService_TestApiAccessMethodById_FullMethodName, in)
	if err != nil {
		return false, err
	}
	return resp.GetValue(), nil
}

// TestCustomAPIAccessMethod reports whether the API is reachable through an
// unsaved proxy.
func (c *Client) TestCustomAPIAccessMethod(ctx context.Context, p vpn.CustomProxy) (bool, error) {
	in, err := convert.CustomProxyToWire(p)
	if err != nil {
		return false, err
	}
	resp, err := call[pb.CustomProxy, wrapperspb.BoolValue](ctx, c.conn, pb.ManagementService_TestCustomApiAccessMethod_FullMethodName, in)
	if err != nil {
		return false, err
	}
	return resp.GetValue(), nil
}
