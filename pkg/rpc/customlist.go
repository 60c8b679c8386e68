package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
	"github.com/gezibash/mullvad-rpc/internal/convert"
	rpcerrors "github.com/gezibash/mullvad-rpc/pkg/errors"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

// CreateCustomList creates a named custom list and returns its id. A taken
// name yields an error wrapping errors.ErrCustomListExists.
func (c *Client) CreateCustomList(ctx context.Context, name string, locations []vpn.GeographicLocation) (string, error) {
	in, err := convert.NewCustomListToWire(name, locations)
	if err != nil {
		return "", err
	}
	resp, err := call[pb.CustomList, wrapperspb.StringValue](ctx, c.conn, pb.ManagementService_CreateCustomList_FullMethodName, in)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return "", fmt.Errorf("%w: %q", rpcerrors.ErrCustomListExists, name)
		}
		return "", err
	}
	return convert.UUIDFromWire(&pb.UUID{Value: resp.GetValue()})
}

// DeleteCustomList deletes the custom list with id.
func (c *Client) DeleteCustomList(ctx context.Context, id string) error {
	in, err := convert.UUIDToWire(id)
	if err != nil {
		return err
	}
	_, err = callString[emptypb.Empty](ctx, c.conn, pb.ManagementService_DeleteCustomList_FullMethodName, in.Value)
	return err
}

// UpdateCustomList replaces the name and locations of an existing list.
func (c *Client) UpdateCustomList(ctx context.Context, l vpn.CustomList) error {
	in, err := convert.CustomListToWire(l)
	if err != nil {
		return err
	}
	if err := invokeEmpty(ctx, c.conn, pb.ManagementService_UpdateCustomList_FullMethodName, in); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("%w: %q", rpcerrors.ErrCustomListExists, l.Name)
		}
		return err
	}
	return nil
}
