package rpc

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
)

// Every helper makes exactly one attempt. Status errors are returned as-is so
// callers can map codes to domain outcomes.

func call[Req, Resp any](ctx context.Context, c *Conn, method string, in *Req) (*Resp, error) {
	ch, err := c.ready()
	if err != nil {
		return nil, err
	}
	return pb.Invoke[Req, Resp](ctx, ch, method, in)
}

func callEmpty[Resp any](ctx context.Context, c *Conn, method string) (*Resp, error) {
	return call[emptypb.Empty, Resp](ctx, c, method, &emptypb.Empty{})
}

func callString[Resp any](ctx context.Context, c *Conn, method, v string) (*Resp, error) {
	return call[wrapperspb.StringValue, Resp](ctx, c, method, wrapperspb.String(v))
}

func callBool[Resp any](ctx context.Context, c *Conn, method string, v bool) (*Resp, error) {
	return call[wrapperspb.BoolValue, Resp](ctx, c, method, wrapperspb.Bool(v))
}

func callUint32[Resp any](ctx context.Context, c *Conn, method string, v uint32) (*Resp, error) {
	return call[wrapperspb.UInt32Value, Resp](ctx, c, method, wrapperspb.UInt32(v))
}

// invokeEmpty is call for methods whose response carries nothing.
func invokeEmpty[Req any](ctx context.Context, c *Conn, method string, in *Req) error {
	_, err := call[Req, emptypb.Empty](ctx, c, method, in)
	return err
}
